// movegen.go
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

// This file implements MoveGenerator: the Appel-Jacobson Gen/GoOn
// recursive walk described in spec.md section 4.3, run over every
// anchor cell in both directions. The teacher's own movegen.go built
// the same algorithm (ExtendRightNavigator, Axis.genMovesFromAnchor) on
// top of its DAWG-only Navigator abstraction and a LeftPart
// precomputation pass; this version walks the GADDAG (graph.go)
// directly, which is what makes the single Gen/GoOn recursion possible
// without a separate leftward precomputation stage. The fan-out
// structure -- one goroutine per anchor/axis pair, collected in a
// mutex-guarded dedup set -- follows the teacher's GameState.GenerateMoves, which
// spawns one goroutine per row and one per column.
package gaddag

import (
	"sort"
	"sync"
)

// rackState is a mutable multiset of available rack letters, consumed
// as Gen/GoOn descend and restored as they return (each recursive call
// gets its own copy, taken up front, since Gen tries several
// alternative letters from the same rack state).
type rackState struct {
	counts map[rune]int
	blanks int
}

func newRackState(rack []RackLetter) *rackState {
	rs := &rackState{counts: make(map[rune]int)}
	for _, rl := range rack {
		if rl.IsBlank {
			rs.blanks++
		} else {
			rs.counts[rl.Letter]++
		}
	}
	return rs
}

func (r *rackState) clone() *rackState {
	nr := &rackState{counts: make(map[rune]int, len(r.counts)), blanks: r.blanks}
	for k, v := range r.counts {
		nr.counts[k] = v
	}
	return nr
}

func (r *rackState) withoutLetter(letter rune) *rackState {
	nr := r.clone()
	nr.counts[letter]--
	return nr
}

func (r *rackState) withoutBlank() *rackState {
	nr := r.clone()
	nr.blanks--
	return nr
}

func (r *rackState) distinctLetters() []rune {
	out := make([]rune, 0, len(r.counts))
	for l, n := range r.counts {
		if n > 0 {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *rackState) hasBlank() bool { return r.blanks > 0 }

// walker runs the Gen/GoOn recursion for a single (anchor, direction)
// pair, reporting completed moves to a shared, mutex-guarded set.
type walker struct {
	bi       *BoardIndex
	graph    *WordGraph
	alphabet *Alphabet
	dir      Direction
	anchorR  int
	anchorC  int

	mu     *sync.Mutex
	seen   map[string]bool
	found  *[]Move
}

func (w *walker) cellAt(offset int) (row, col int, ok bool) {
	if w.dir == Horizontal {
		row, col = w.anchorR, w.anchorC+offset
	} else {
		row, col = w.anchorR+offset, w.anchorC
	}
	return row, col, w.bi.inBounds(row, col)
}

func (w *walker) crossSetAt(row, col int) *LetterSet {
	return w.bi.CrossSet(row, col, w.dir)
}

func (w *walker) run(rack *rackState) {
	w.Gen(0, rack, w.graph.InitialArc(), nil)
}

// Gen inspects the cell at anchor+offset. If it already holds a tile,
// it walks the graph across it and passes that tile to GoOn with no new
// placement, so GoOn can still record a move whose word ends on an
// existing tile. If it is empty,
// it tries every rack letter allowed by the cell's cross-set (every
// letter, if the cross-set is unconstrained).
func (w *walker) Gen(offset int, rack *rackState, arc Arc, placements []TilePlacement) {
	row, col, ok := w.cellAt(offset)
	if !ok {
		return
	}

	if tile := w.bi.TileAt(row, col); tile != nil {
		next, exists := arc.NextArc(tile.Letter)
		if !exists {
			return
		}
		w.GoOn(tile.Letter, offset, rack, next, placements, nil)
		return
	}

	cs := w.crossSetAt(row, col)

	for _, letter := range rack.distinctLetters() {
		if cs != nil && !cs.Has(w.alphabet, letter) {
			continue
		}
		next, exists := arc.NextArc(letter)
		if !exists {
			continue
		}
		placement := TilePlacement{Row: row, Col: col, Tile: TileLetter{Letter: letter}}
		w.GoOn(letter, offset, rack.withoutLetter(letter), next, placements, &placement)
	}

	if rack.hasBlank() {
		var candidates []rune
		if cs != nil {
			candidates = cs.Members(w.alphabet)
		} else {
			candidates = w.alphabet.Letters()
		}
		for _, letter := range candidates {
			next, exists := arc.NextArc(letter)
			if !exists {
				continue
			}
			placement := TilePlacement{Row: row, Col: col, Tile: TileLetter{IsBlank: true, Letter: letter}}
			w.GoOn(letter, offset, rack.withoutBlank(), next, placements, &placement)
		}
	}
}

// GoOn extends the placements accumulated so far with the tile just
// matched (if it was a new one), records a move when the arc just
// reached completes a word and the adjacent cell in the walking
// direction is empty or off-board, then continues the walk: further in
// the same direction if the board has more cells there, and -- only
// while walking leftward/upward -- pivoting to the rightward/downward
// half via the arc's delimiter edge, per the GADDAG's reversed-prefix
// encoding.
func (w *walker) GoOn(letter rune, offset int, rack *rackState, arc Arc, placements []TilePlacement, newPlacement *TilePlacement) {
	next := placements
	if newPlacement != nil {
		next = make([]TilePlacement, 0, len(placements)+1)
		if offset <= 0 {
			next = append(next, *newPlacement)
			next = append(next, placements...)
		} else {
			next = append(next, placements...)
			next = append(next, *newPlacement)
		}
	}

	if offset <= 0 {
		adjRow, adjCol, onBoard := w.cellAt(offset - 1)
		edgeOpen := !onBoard || w.bi.isEmpty(adjRow, adjCol)
		// While still walking leftward/upward, the cell just beyond the
		// anchor on the right/downward side has not been consumed yet;
		// if it already holds a tile, the real board word continues past
		// the anchor, and recording here would validate only a prefix of
		// it. Require that side to be empty or off-board too.
		rightRow, rightCol, rightOnBoard := w.cellAt(1)
		rightOpen := !rightOnBoard || w.bi.isEmpty(rightRow, rightCol)
		if arc.Completes(letter) && edgeOpen && rightOpen {
			w.record(next)
		}
		if onBoard {
			w.Gen(offset-1, rack, arc, next)
		}
		// Pivot only when the cell beyond the leftward/upward end is
		// empty or off-board; otherwise the board word continues past it.
		if pivot, ok := arc.NextArc(delim); ok && edgeOpen {
			w.Gen(1, rack, pivot, next)
		}
		return
	}

	adjRow, adjCol, onBoard := w.cellAt(offset + 1)
	edgeOpen := !onBoard || w.bi.isEmpty(adjRow, adjCol)
	if arc.Completes(letter) && edgeOpen {
		w.record(next)
	}
	if onBoard {
		w.Gen(offset+1, rack, arc, next)
	}
}

func (w *walker) record(placements []TilePlacement) {
	move := sortedMove(placements)
	key := canonicalKey(move)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen[key] {
		return
	}
	w.seen[key] = true
	*w.found = append(*w.found, move)
}

// GenerateMoves enumerates every legal move available to rack on bi,
// spawning one goroutine per anchor cell per direction, mirroring the
// teacher's GameState.GenerateMoves fan-out. Moves are deduplicated by
// canonical placement key (the same move can be reachable from more
// than one anchor), scored with scoring, then ranked by descending
// score with a lexicographic tie-break and truncated to limit solutions
// when limit is non-nil.
func GenerateMoves(bi *BoardIndex, graph *WordGraph, alphabet *Alphabet, scoring *ScoringConfig, rack []RackLetter, limit *int) []Solution {
	anchors := bi.AnchorCells()

	var mu sync.Mutex
	seen := make(map[string]bool)
	var found []Move

	var wg sync.WaitGroup
	for _, a := range anchors {
		for _, dir := range [2]Direction{Horizontal, Vertical} {
			wg.Add(1)
			go func(a Coordinate, dir Direction) {
				defer wg.Done()
				w := &walker{
					bi:       bi,
					graph:    graph,
					alphabet: alphabet,
					dir:      dir,
					anchorR:  a.Row,
					anchorC:  a.Col,
					mu:       &mu,
					seen:     seen,
					found:    &found,
				}
				w.run(newRackState(rack))
			}(a, dir)
		}
	}
	wg.Wait()

	solutions := make([]Solution, 0, len(found))
	for _, m := range found {
		dir := MoveDirection(bi, m)
		solutions = append(solutions, Solution{Move: m, Score: scoring.Score(bi, dir, m)})
	}
	return rankSolutions(solutions, limit)
}

// MoveDirection reports the axis a completed Move was formed along, for
// scoring purposes: horizontal when every placement shares a row,
// vertical when every placement shares a column. A single-tile move
// shares both, so its axis is ambiguous from the placement alone;
// following the teacher's move.go (TileMove.Init), it is resolved by
// comparing the length of the existing horizontal run through that
// cell against the existing vertical run, picking whichever is longer
// (ties go to horizontal). Getting this wrong for a lone tile would
// make Score treat the other axis's real word as a phantom single-
// letter "main word" on top of the genuine cross word.
func MoveDirection(bi *BoardIndex, m Move) Direction {
	if len(m) == 0 {
		return Horizontal
	}
	row := m[0].Row
	multiRow := false
	for _, p := range m[1:] {
		if p.Row != row {
			multiRow = true
			break
		}
	}
	if len(m) > 1 {
		if multiRow {
			return Vertical
		}
		return Horizontal
	}

	r, c := m[0].Row, m[0].Col
	beforeH, afterH := bi.crossFragments(r, c, Horizontal)
	beforeV, afterV := bi.crossFragments(r, c, Vertical)
	hcross := len(beforeH) + len(afterH)
	vcross := len(beforeV) + len(afterV)
	if hcross >= vcross {
		return Horizontal
	}
	return Vertical
}

