// solver_test.go
// Copyright (C) 2026 gaddag contributors

package gaddag

import "testing"

func TestSolverAddWordAndGenerateMoves(t *testing.T) {
	solver, err := NewSolver(15, 15, EnglishAlphabet, flatScoring(15, 15))
	if err != nil {
		t.Fatalf("NewSolver error: %v", err)
	}
	if err := solver.AddWord("care"); err != nil {
		t.Fatalf("AddWord error: %v", err)
	}

	solutions := solver.GenerateMoves(rackOf("carexyz"), nil)
	if len(solutions) == 0 {
		t.Fatalf("GenerateMoves() returned no solutions")
	}
	for _, sol := range solutions {
		if sol.Score != 8 {
			t.Errorf("Score = %d, want 8", sol.Score)
		}
	}
}

func TestSolverPlaceTilesThenGenerateMoves(t *testing.T) {
	solver, err := NewSolver(15, 15, EnglishAlphabet, flatScoring(15, 15))
	if err != nil {
		t.Fatalf("NewSolver error: %v", err)
	}
	for _, w := range []string{"care", "ate"} {
		if err := solver.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q) error: %v", w, err)
		}
	}
	if err := solver.PlaceTiles(tileLetters("care")); err != nil {
		t.Fatalf("PlaceTiles error: %v", err)
	}
	if solver.Board().NumTiles() != 4 {
		t.Errorf("NumTiles() = %d, want 4", solver.Board().NumTiles())
	}

	solutions := solver.GenerateMoves(rackOf("at"), nil)
	if len(solutions) == 0 {
		t.Errorf("expected at least one solution extending the board")
	}
}

func TestSolverRejectsInvalidWord(t *testing.T) {
	solver, err := NewSolver(15, 15, EnglishAlphabet, flatScoring(15, 15))
	if err != nil {
		t.Fatalf("NewSolver error: %v", err)
	}
	if err := solver.AddWord(""); err == nil {
		t.Errorf("expected error adding empty word")
	}
}

func TestSolverAlphabetAndBoardAccessors(t *testing.T) {
	solver, err := NewSolver(11, 11, EnglishAlphabet, flatScoring(11, 11))
	if err != nil {
		t.Fatalf("NewSolver error: %v", err)
	}
	if solver.Alphabet() != EnglishAlphabet {
		t.Errorf("Alphabet() did not return the alphabet passed to NewSolver")
	}
	if solver.Board().Rows() != 11 || solver.Board().Cols() != 11 {
		t.Errorf("Board() dimensions = %dx%d, want 11x11", solver.Board().Rows(), solver.Board().Cols())
	}
}
