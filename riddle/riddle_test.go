// riddle_test.go
// Copyright (C) 2026 gaddag contributors

package riddle

import (
	"math/rand"
	"testing"
	"time"

	gaddag "github.com/crosswordforge/gaddag"
)

func smallWordList() []string {
	return []string{
		"cat", "car", "care", "ate", "eat", "tea", "sea", "seat",
		"rat", "rate", "art", "tar", "star", "stare", "rose", "nose",
		"note", "tone", "one", "ten", "net", "ant", "tan", "pan",
		"pen", "den", "end", "dent", "tend", "send", "bend", "lend",
	}
}

func newTestParams(t *testing.T) GenerationParams {
	t.Helper()
	alphabet := gaddag.EnglishAlphabet
	graph := gaddag.NewWordGraph(alphabet)
	for _, w := range smallWordList() {
		if err := graph.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q) error: %v", w, err)
		}
	}
	return GenerationParams{
		Alphabet:      alphabet,
		Graph:         graph,
		Scoring:       gaddag.DefaultEnglishScoring(),
		Rows:          15,
		Cols:          15,
		RackSize:      7,
		TileCounts:    DefaultEnglishTileCounts(),
		BlankCount:    2,
		Rand:          rand.New(rand.NewSource(1)),
		TimeLimit:     2 * time.Second,
		NumWorkers:    2,
		NumCandidates: 20,
	}
}

func lenientHeuristics() HeuristicConfig {
	return HeuristicConfig{
		MinTiles:       0,
		MaxTiles:       10,
		MinMoves:       1,
		MinBestScore:   1,
		MinWordLength:  2,
		BingoBonus:     15.0,
		ScoreGapBonus:  1.2,
		NumCoversBonus: 2.0,
	}
}

func TestDefaultEnglishTileCountsSumsTo98(t *testing.T) {
	total := 0
	for _, n := range DefaultEnglishTileCounts() {
		total += n
	}
	// 98 letter tiles plus 2 blanks is the standard English 100-tile set.
	if total != 98 {
		t.Errorf("sum of tile counts = %d, want 98", total)
	}
}

func TestBagStateDrawDepletesBag(t *testing.T) {
	params := GenerationParams{TileCounts: map[rune]int{'a': 2}, BlankCount: 1}
	bag := newBagState(params)
	rng := rand.New(rand.NewSource(42))

	drawn := bag.draw(rng, 5)
	if len(drawn) != 3 {
		t.Fatalf("draw(5) from a 3-tile bag returned %d tiles, want 3", len(drawn))
	}
	if bag.total != 0 {
		t.Errorf("bag.total = %d after draining, want 0", bag.total)
	}
	more := bag.draw(rng, 1)
	if len(more) != 0 {
		t.Errorf("draw from an empty bag returned %d tiles, want 0", len(more))
	}
}

func TestGenerateRiddleProducesAPlayableCandidate(t *testing.T) {
	params := newTestParams(t)
	r, stats, err := GenerateRiddle(params, lenientHeuristics())
	if err != nil {
		t.Fatalf("GenerateRiddle error: %v (stats: %+v)", err, stats)
	}
	if r.Solution.Word == "" {
		t.Errorf("riddle has no solution word")
	}
	if r.Solution.Score <= 0 {
		t.Errorf("Solution.Score = %d, want > 0", r.Solution.Score)
	}
	if len(r.Board) != params.Rows {
		t.Errorf("len(Board) = %d, want %d", len(r.Board), params.Rows)
	}
	if r.Analysis.TotalMoves == 0 {
		t.Errorf("Analysis.TotalMoves = 0, want > 0")
	}
}

func TestGenerateRiddleFailsWhenHeuristicsAreUnsatisfiable(t *testing.T) {
	params := newTestParams(t)
	params.TimeLimit = 300 * time.Millisecond
	impossible := lenientHeuristics()
	impossible.MinBestScore = 1_000_000
	if _, _, err := GenerateRiddle(params, impossible); err == nil {
		t.Errorf("expected GenerateRiddle to fail when no candidate can reach MinBestScore")
	}
}
