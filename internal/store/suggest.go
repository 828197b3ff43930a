package store

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known value.
const maxSuggestDistance = 3

// Suggest proposes the name or specialization closest to query when query
// is a near miss. It returns "" when the query already matches something,
// is empty, or nothing is close enough.
func (s *Store) Suggest(ctx context.Context, query string) (string, error) {
	q := strings.ToLower(query)
	if strings.TrimSpace(q) == "" {
		return "", nil
	}
	docs, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, d := range docs {
		if d.Matches(q) {
			return "", nil
		}
		for _, candidate := range []string{d.Specialization, d.Name} {
			dist := closestWord(q, candidate)
			if dist < bestDist {
				best, bestDist = candidate, dist
			}
		}
	}
	return best, nil
}

// closestWord compares q against the whole candidate and each of its words
// and keeps the smallest distance.
func closestWord(q, candidate string) int {
	lc := strings.ToLower(candidate)
	best := levenshtein.ComputeDistance(q, lc)
	for _, w := range strings.Fields(lc) {
		w = strings.Trim(w, ".,")
		if d := levenshtein.ComputeDistance(q, w); d < best {
			best = d
		}
	}
	return best
}
