package document

import _ "embed"

// legalCorpus is the built-in corpus of ten legal reference documents.
//
//go:embed corpus/legal.yaml
var legalCorpus []byte
