// graph_test.go
// Copyright (C) 2026 gaddag contributors

package gaddag

import "testing"

func walk(arc Arc, seq []rune) (Arc, bool) {
	cur := arc
	for _, r := range seq {
		next, ok := cur.NextArc(r)
		if !ok {
			return Arc{}, false
		}
		cur = next
	}
	return cur, true
}

func TestAddWordRejectsEmptyAndOutOfAlphabet(t *testing.T) {
	g := NewWordGraph(NewAlphabet("abc"))
	if kind, ok := KindOf(g.AddWord("")); !ok || kind != ErrInvalidWord {
		t.Errorf("AddWord(\"\") kind = %v, ok=%v, want ErrInvalidWord", kind, ok)
	}
	if kind, ok := KindOf(g.AddWord("abz")); !ok || kind != ErrInvalidWord {
		t.Errorf("AddWord(\"abz\") kind = %v, ok=%v, want ErrInvalidWord", kind, ok)
	}
}

func TestAddWordThenFindsEveryRotation(t *testing.T) {
	g := NewWordGraph(EnglishAlphabet)
	if err := g.AddWord("care"); err != nil {
		t.Fatalf("AddWord(care) error: %v", err)
	}

	// Split i=4 (whole word reversed, no delimiter): "erac".
	if arc, ok := walk(g.InitialArc(), []rune("erac")); !ok || !arc.Completes('c') {
		t.Errorf("reverse('care') path did not complete on 'c'")
	}
	// Split i=1: reverse("c") + delim + "are" = "c\x00are".
	if arc, ok := walk(g.InitialArc(), []rune{'c', delim, 'a', 'r', 'e'}); !ok || !arc.Completes('e') {
		t.Errorf("split-at-1 path for 'care' did not complete on 'e'")
	}
	// A word never added must not be found.
	if _, ok := walk(g.InitialArc(), []rune("xyz")); ok {
		t.Errorf("found a path for a word never added")
	}
}

func TestAddWordIsIdempotent(t *testing.T) {
	g := NewWordGraph(EnglishAlphabet)
	if err := g.AddWord("cat"); err != nil {
		t.Fatalf("AddWord(cat) error: %v", err)
	}
	if err := g.AddWord("cat"); err != nil {
		t.Fatalf("AddWord(cat) second time error: %v", err)
	}
	if arc, ok := walk(g.InitialArc(), []rune("tac")); !ok || !arc.Completes('c') {
		t.Errorf("'cat' path broken after re-adding")
	}
}

func TestArcCompletesOnlyOnOwnLabel(t *testing.T) {
	g := NewWordGraph(EnglishAlphabet)
	if err := g.AddWord("ta"); err != nil {
		t.Fatalf("AddWord error: %v", err)
	}
	arc, ok := walk(g.InitialArc(), []rune("at"))
	if !ok {
		t.Fatalf("expected reverse('ta') path to exist")
	}
	if !arc.Completes('t') {
		t.Errorf("Completes('t') = false, want true")
	}
	if arc.Completes('x') {
		t.Errorf("Completes('x') = true, want false")
	}
}

func TestWordCount(t *testing.T) {
	g := NewWordGraph(EnglishAlphabet)
	words := []string{"cat", "car", "care"}
	for _, w := range words {
		if err := g.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q) error: %v", w, err)
		}
	}
	if g.WordCount() != len(words) {
		t.Errorf("WordCount() = %d, want %d", g.WordCount(), len(words))
	}
}
