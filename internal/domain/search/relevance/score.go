package relevance

import (
	"math"
	"strings"
)

// saturationHits is the number of hits per term treated as fully dense.
const saturationHits = 10

// Score computes a query-dependent relevance in [0, 1], rounded to 3 decimals.
//
// The non-overlapping occurrence counts of all terms are summed and divided by
// saturationHits per term (capped at 1), then compressed with
// ln(1+10x)/ln(11), which maps 0 to 0 and 1 to 1 with diminishing returns.
func Score(query, content string) float64 {
	if query == "" || content == "" {
		return 0
	}
	terms := Terms(query)
	if len(terms) == 0 {
		return 0
	}

	text := lower(content)
	total := 0
	for _, term := range terms {
		total += strings.Count(text, term)
	}
	if total == 0 {
		return 0
	}

	base := math.Min(float64(total)/float64(len(terms)*saturationHits), 1)
	score := math.Min(1, math.Log(1+base*saturationHits)/math.Log(saturationHits+1))
	return round3(score)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
