package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/fatih/color"

	legalsearch "github.com/kailas-cloud/legalsearch/pkg/sdk"
)

var (
	idStyle    = color.New(color.FgCyan, color.Bold)
	titleStyle = color.New(color.Bold)
	scoreStyle = color.New(color.FgGreen)
	matchStyle = color.New(color.FgYellow, color.Bold)
	dimStyle   = color.New(color.Faint)
)

func printResults(w io.Writer, q string, results []legalsearch.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No documents match %q\n", strings.TrimSpace(q))
		return
	}

	terms := strings.Fields(strings.Map(unicode.ToLower, q))
	for i, r := range results {
		fmt.Fprintf(w, "%2d. %s  %s  %s\n",
			i+1, idStyle.Sprint(r.ID), titleStyle.Sprint(r.Title), scoreStyle.Sprintf("%.3f", r.Score))
		fmt.Fprintf(w, "    %s\n", highlight(r.Snippet, terms, matchStyle.Sprint))
	}
	fmt.Fprintln(w, dimStyle.Sprintf("%d result(s)", len(results)))
}

func printDocument(w io.Writer, d legalsearch.Document) {
	fmt.Fprintf(w, "%s  %s\n", idStyle.Sprint(d.ID), titleStyle.Sprint(d.Title))
	fmt.Fprintln(w, dimStyle.Sprint(d.Summary))
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Content)
}

// highlight paints every case-insensitive occurrence of terms in s.
// Overlapping matches are merged into one painted span.
func highlight(s string, terms []string, paint func(a ...any) string) string {
	if s == "" || len(terms) == 0 {
		return s
	}
	text := []rune(s)
	lowered := []rune(strings.Map(unicode.ToLower, s))

	marked := make([]bool, len(text))
	for _, term := range terms {
		t := []rune(term)
		if len(t) == 0 {
			continue
		}
		for i := 0; i+len(t) <= len(lowered); i++ {
			if runesEqual(lowered[i:i+len(t)], t) {
				for j := i; j < i+len(t); j++ {
					marked[j] = true
				}
			}
		}
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		j := i
		for j < len(text) && marked[j] == marked[i] {
			j++
		}
		if marked[i] {
			b.WriteString(paint(string(text[i:j])))
		} else {
			b.WriteString(string(text[i:j]))
		}
		i = j
	}
	return b.String()
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
