// solver.go
// Copyright (C) 2026 gaddag contributors

// This file implements Solver, the facade spec.md's External Interfaces
// section describes: a single entry point that owns a WordGraph and a
// BoardIndex and exposes add_word/place_tiles/generate_moves. It plays
// the same role the teacher's Game (game.go) plays for a full two-player
// game, but deliberately narrower: no bag, no turn order, no player
// state, per spec.md's explicit Non-goals. Per spec.md's Concurrency and
// Resource Model, mutation (AddWord, PlaceTiles) is exclusive and reads
// (GenerateMoves) may run concurrently with each other but not with a
// mutation; an RWMutex expresses that directly.

package gaddag

import "sync"

// Solver is the top-level façade over a WordGraph and a BoardIndex.
type Solver struct {
	mu       sync.RWMutex
	alphabet *Alphabet
	graph    *WordGraph
	board    *BoardIndex
	scoring  *ScoringConfig
}

// NewSolver builds a Solver over a board of the given size, using
// alphabet for both the dictionary and the rack/board letters, and
// scoring as the injected scoring policy.
func NewSolver(rows, cols int, alphabet *Alphabet, scoring *ScoringConfig) (*Solver, error) {
	graph := NewWordGraph(alphabet)
	board, err := NewBoardIndex(rows, cols, alphabet, graph)
	if err != nil {
		return nil, err
	}
	return &Solver{alphabet: alphabet, graph: graph, board: board, scoring: scoring}, nil
}

// AddWord adds word to the dictionary. It takes the exclusive lock, so
// it waits for running GenerateMoves calls and other mutations to finish
// and blocks new ones until it returns.
func (s *Solver) AddWord(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.AddWord(word)
}

// PlaceTiles validates and commits a move to the board.
func (s *Solver) PlaceTiles(placements []TilePlacement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.PlaceTiles(placements)
}

// GenerateMoves returns every legal move available to rack, ranked by
// descending score with a deterministic tie-break, truncated to limit
// solutions when limit is non-nil.
func (s *Solver) GenerateMoves(rack []RackLetter, limit *int) []Solution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return GenerateMoves(s.board, s.graph, s.alphabet, s.scoring, rack, limit)
}

// Board exposes the underlying BoardIndex for read-only inspection
// (e.g. TileAt, AnchorCells) by callers that need to render the board.
func (s *Solver) Board() *BoardIndex {
	return s.board
}

// Alphabet returns the alphabet this Solver was built with.
func (s *Solver) Alphabet() *Alphabet {
	return s.alphabet
}
