// Package legalsearch ranks a legal document corpus in-process, without
// running the HTTP service.
//
// The client loads the built-in corpus (or a YAML corpus of your own) once
// and answers queries with the same matching, scoring and snippet rules
// as the server.
//
//	client, _ := legalsearch.New()
//	results, _ := client.Search(ctx, "employment rights")
//	for _, r := range results {
//	    fmt.Println(r.ID, r.Score, r.Snippet)
//	}
//
//	doc, err := client.Document(ctx, "doc1")
//	if errors.Is(err, legalsearch.ErrDocumentNotFound) { ... }
package legalsearch
