// rank.go
// Copyright (C) 2026 gaddag contributors

// This file implements the deterministic ranking spec.md's
// generate_moves requires: highest score first, ties broken by the
// canonical (sorted) placement key so that repeated runs over the same
// board and rack produce the same order. Adapted from the teacher's
// robot.go, whose byScore only orders by score and leaves ties
// unspecified.

package gaddag

import (
	"fmt"
	"sort"
	"strings"
)

// sortedMove returns placements sorted by (Row, Col), the canonical
// form used both for deduplication and for the tie-break key.
func sortedMove(m Move) Move {
	out := make(Move, len(m))
	copy(out, m)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// canonicalKey builds a string uniquely identifying a sorted Move, used
// both to deduplicate moves reachable from more than one anchor and as
// the lexicographic tie-break in ranking.
func canonicalKey(m Move) string {
	var sb strings.Builder
	for _, p := range m {
		letter := p.Tile.Letter
		if p.Tile.IsBlank {
			fmt.Fprintf(&sb, "%d,%d,?%c;", p.Row, p.Col, letter)
		} else {
			fmt.Fprintf(&sb, "%d,%d,%c;", p.Row, p.Col, letter)
		}
	}
	return sb.String()
}

// byScoreThenKey sorts Solutions by descending score, breaking ties by
// ascending canonical key so the result order is fully deterministic.
type byScoreThenKey []Solution

func (b byScoreThenKey) Len() int      { return len(b) }
func (b byScoreThenKey) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b byScoreThenKey) Less(i, j int) bool {
	if b[i].Score != b[j].Score {
		return b[i].Score > b[j].Score
	}
	return canonicalKey(b[i].Move) < canonicalKey(b[j].Move)
}

// rankSolutions sorts solutions in place and truncates to limit
// solutions when limit is non-nil.
func rankSolutions(solutions []Solution, limit *int) []Solution {
	sort.Stable(byScoreThenKey(solutions))
	if limit != nil && *limit >= 0 && *limit < len(solutions) {
		solutions = solutions[:*limit]
	}
	return solutions
}
