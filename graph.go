// graph.go
// Copyright (C) 2026 gaddag contributors

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

// This file implements WordGraph, a GADDAG (Gordon 1983) built in memory
// by repeatedly inserting every rotation of every dictionary word. The
// teacher's dawg.go loads a prebuilt DAWG from an embedded binary file
// and navigates it with the Navigator interface in navigators.go; this
// module instead builds its own graph directly from words at runtime,
// since callers add words one at a time (spec's WordGraph.add_word).
//
// The per-arc completion marker follows the construction rule found in
// the Rust prototype this module was distilled from (dag.rs,
// Arc::add_word): the arc that terminates a rotated word-path records
// its own label as the letter that completes a word there. Because an
// arc's label never changes once created, that marker can only ever be
// "on" or "off" for a given arc -- so rather than keep a full bitmap per
// arc (the letter_set of spec.md's prose), each edge simply stores a
// final bool alongside its label, which is equivalent and considerably
// lighter. See DESIGN.md for the worked-through equivalence.
package gaddag

import "fmt"

type edge struct {
	label rune
	final bool
	dest  *node
}

type node struct {
	children map[rune]*edge
}

func newNode() *node {
	return &node{children: make(map[rune]*edge)}
}

// WordGraph is a GADDAG over a fixed Alphabet.
type WordGraph struct {
	alphabet *Alphabet
	root     *node
	words    int
}

// NewWordGraph returns an empty WordGraph over the given alphabet.
func NewWordGraph(alphabet *Alphabet) *WordGraph {
	return &WordGraph{alphabet: alphabet, root: newNode()}
}

// Alphabet returns the alphabet this graph was built over.
func (g *WordGraph) Alphabet() *Alphabet {
	return g.alphabet
}

// Arc is an immutable handle to a position in the graph, returned by
// InitialArc and NextArc. The zero Arc is not meaningful on its own; it
// is only ever produced by a failed NextArc, whose ok result must be
// checked.
type Arc struct {
	e    *edge
	dest *node
}

// InitialArc returns the root of the graph, from which any rotated word
// path can be walked via repeated NextArc calls.
func (g *WordGraph) InitialArc() Arc {
	return Arc{dest: g.root}
}

// NextArc returns the arc reached by following the edge labeled s from
// a, if one exists.
func (a Arc) NextArc(s rune) (Arc, bool) {
	if a.dest == nil {
		return Arc{}, false
	}
	e, ok := a.dest.children[s]
	if !ok {
		return Arc{}, false
	}
	return Arc{e: e, dest: e.dest}, true
}

// Completes reports whether letter is in a's letter-set, i.e. whether a
// is the arc that was labeled letter when some word-path terminated
// there. Spec.md describes this as set membership; since an arc's own
// label never changes, a non-root arc's letter-set is always either
// empty or exactly {a's own label}, so Completes reduces to comparing
// letter against that label.
func (a Arc) Completes(letter rune) bool {
	return a.e != nil && a.e.final && a.e.label == letter
}

// IsTerminal reports whether a word-path ends exactly at a, regardless
// of which letter completes it. Used when there is no following
// fragment to check a specific letter against.
func (a Arc) IsTerminal() bool {
	return a.e != nil && a.e.final
}

// Valid reports whether a was produced by a successful NextArc or by
// InitialArc (as opposed to the zero value returned alongside a false
// ok).
func (a Arc) Valid() bool {
	return a.dest != nil
}

// AddWord inserts word into the graph. For a word c1...cn, this inserts
// one path per split index i in [1, n]: the reverse of the first i
// letters, a delimiter if the split leaves a non-empty tail, then the
// remaining letters verbatim. Shared prefixes across these paths (and
// across words) share the same arcs, since AddWord walks from the root
// and only creates an edge the first time it is needed. Re-adding the
// same word is a no-op.
func (g *WordGraph) AddWord(word string) error {
	runes := []rune(word)
	if len(runes) == 0 {
		return newError(ErrInvalidWord, "word must not be empty")
	}
	for _, r := range runes {
		if !g.alphabet.Contains(r) {
			return newError(ErrInvalidWord, fmt.Sprintf("letter %q is not in the alphabet", r))
		}
	}
	n := len(runes)
	added := false
	for i := 1; i <= n; i++ {
		seq := make([]rune, 0, n+1)
		for j := i - 1; j >= 0; j-- {
			seq = append(seq, runes[j])
		}
		if i < n {
			seq = append(seq, delim)
		}
		seq = append(seq, runes[i:]...)

		cur := g.root
		var last *edge
		for _, sym := range seq {
			e, ok := cur.children[sym]
			if !ok {
				e = &edge{label: sym, dest: newNode()}
				cur.children[sym] = e
				added = true
			}
			last = e
			cur = e.dest
		}
		if last.label != delim {
			if !last.final {
				added = true
			}
			last.final = true
		}
	}
	if added {
		g.words++
	}
	return nil
}

// WordCount returns the number of distinct words successfully added via
// AddWord. Re-adding a word already in the graph does not change it.
func (g *WordGraph) WordCount() int {
	return g.words
}
