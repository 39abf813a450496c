// boardindex_test.go
// Copyright (C) 2026 gaddag contributors

package gaddag

import "testing"

func newTestBoard(t *testing.T, rows, cols int, words ...string) (*BoardIndex, *WordGraph) {
	t.Helper()
	g := NewWordGraph(EnglishAlphabet)
	for _, w := range words {
		if err := g.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q) error: %v", w, err)
		}
	}
	bi, err := NewBoardIndex(rows, cols, EnglishAlphabet, g)
	if err != nil {
		t.Fatalf("NewBoardIndex error: %v", err)
	}
	return bi, g
}

func tileLetters(s string) Move {
	m := make(Move, len(s))
	for i, r := range s {
		m[i] = TilePlacement{Row: 7, Col: 7 + i, Tile: TileLetter{Letter: r}}
	}
	return m
}

func TestNewBoardIndexRejectsEvenDimensions(t *testing.T) {
	if _, err := NewBoardIndex(14, 15, EnglishAlphabet, NewWordGraph(EnglishAlphabet)); err == nil {
		t.Errorf("expected error for even rows")
	} else if kind, _ := KindOf(err); kind != ErrInvalidDimensions {
		t.Errorf("kind = %v, want ErrInvalidDimensions", kind)
	}
}

func TestNewBoardIndexCentreIsSoleAnchor(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15)
	anchors := bi.AnchorCells()
	if len(anchors) != 1 || anchors[0] != (Coordinate{7, 7}) {
		t.Errorf("AnchorCells() = %v, want [{7 7}]", anchors)
	}
}

func TestPlaceTilesRejectsFirstMoveOffCentre(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15, "ca")
	move := Move{
		{Row: 0, Col: 0, Tile: TileLetter{Letter: 'c'}},
		{Row: 0, Col: 1, Tile: TileLetter{Letter: 'a'}},
	}
	if err := bi.PlaceTiles(move); err == nil {
		t.Fatalf("expected ErrIllegalFirstMove")
	} else if kind, _ := KindOf(err); kind != ErrIllegalFirstMove {
		t.Errorf("kind = %v, want ErrIllegalFirstMove", kind)
	}
}

func TestPlaceTilesRejectsSingleTileFirstMove(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15)
	move := Move{{Row: 7, Col: 7, Tile: TileLetter{Letter: 'a'}}}
	if err := bi.PlaceTiles(move); err == nil {
		t.Fatalf("expected ErrIllegalFirstMove")
	} else if kind, _ := KindOf(err); kind != ErrIllegalFirstMove {
		t.Errorf("kind = %v, want ErrIllegalFirstMove", kind)
	}
}

func TestPlaceTilesAcceptsValidOpeningMove(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15, "care")
	if err := bi.PlaceTiles(tileLetters("care")); err != nil {
		t.Fatalf("PlaceTiles error: %v", err)
	}
	if bi.NumTiles() != 4 {
		t.Errorf("NumTiles() = %d, want 4", bi.NumTiles())
	}
	for i, r := range "care" {
		if tl := bi.TileAt(7, 7+i); tl == nil || tl.Letter != r {
			t.Errorf("TileAt(7, %d) = %v, want %q", 7+i, tl, r)
		}
	}
}

func TestPlaceTilesRejectsDisconnectedMove(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15, "care", "dog")
	if err := bi.PlaceTiles(tileLetters("care")); err != nil {
		t.Fatalf("PlaceTiles(care) error: %v", err)
	}
	move := Move{
		{Row: 0, Col: 0, Tile: TileLetter{Letter: 'd'}},
		{Row: 0, Col: 1, Tile: TileLetter{Letter: 'o'}},
		{Row: 0, Col: 2, Tile: TileLetter{Letter: 'g'}},
	}
	if err := bi.PlaceTiles(move); err == nil {
		t.Fatalf("expected ErrDisconnectedMove")
	} else if kind, _ := KindOf(err); kind != ErrDisconnectedMove {
		t.Errorf("kind = %v, want ErrDisconnectedMove", kind)
	}
}

func TestPlaceTilesRejectsOccupiedCell(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15, "care")
	if err := bi.PlaceTiles(tileLetters("care")); err != nil {
		t.Fatalf("PlaceTiles(care) error: %v", err)
	}
	move := Move{{Row: 7, Col: 7, Tile: TileLetter{Letter: 'x'}}}
	if err := bi.PlaceTiles(move); err == nil {
		t.Fatalf("expected ErrOccupiedCell")
	} else if kind, _ := KindOf(err); kind != ErrOccupiedCell {
		t.Errorf("kind = %v, want ErrOccupiedCell", kind)
	}
}

func TestAnchorInvariantAfterPlacement(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15, "care")
	if err := bi.PlaceTiles(tileLetters("care")); err != nil {
		t.Fatalf("PlaceTiles error: %v", err)
	}
	want := map[Coordinate]bool{
		{6, 7}: true, {6, 8}: true, {6, 9}: true, {6, 10}: true,
		{8, 7}: true, {8, 8}: true, {8, 9}: true, {8, 10}: true,
		{7, 6}: true, {7, 11}: true,
	}
	got := bi.AnchorCells()
	if len(got) != len(want) {
		t.Fatalf("AnchorCells() = %v (%d cells), want %d cells", got, len(got), len(want))
	}
	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected anchor %v", c)
		}
	}
}

func TestCrossSetAllowsDictionaryCrossWord(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15, "to", "at")
	if err := bi.PlaceTiles(tileLetters("to")); err != nil {
		t.Fatalf("PlaceTiles error: %v", err)
	}
	// (6,7) sits directly above the 't' of "to" at (7,7); placing 'a'
	// there should spell "at" reading downward.
	cs := bi.CrossSet(6, 7, Horizontal)
	if cs == nil {
		t.Fatalf("CrossSet(6,7,Horizontal) = nil, want a constrained set")
	}
	if !cs.Has(EnglishAlphabet, 'a') {
		t.Errorf("expected 'a' to be a legal cross letter at (6,7) to spell \"at\"")
	}
	if cs.Has(EnglishAlphabet, 'z') {
		t.Errorf("did not expect 'z' to be a legal cross letter at (6,7)")
	}
}

func TestCrossSetUnconstrainedAwayFromTiles(t *testing.T) {
	bi, _ := newTestBoard(t, 15, 15, "care")
	if err := bi.PlaceTiles(tileLetters("care")); err != nil {
		t.Fatalf("PlaceTiles error: %v", err)
	}
	if cs := bi.CrossSet(0, 0, Horizontal); cs != nil {
		t.Errorf("CrossSet(0,0,Horizontal) = %v, want nil (unconstrained)", cs)
	}
}
