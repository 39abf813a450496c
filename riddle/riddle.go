// riddle.go
// Copyright (C) 2026 gaddag contributors

// This package generates practice puzzles from the core move-generation
// engine: a board position plus a rack with a non-obvious best move,
// suitable for presenting to a human as "find the best play". It is
// adapted from the teacher's riddle.go, which plays out a simulated
// two-robot game until the board reaches a target tile count and scores
// the resulting position against a HeuristicConfig. That version drove
// its simulation off a full Game (turn order, a shared Bag, two
// HighScoreRobots); this one has no game/turn-order/bag layer to drive
// with (per spec.md's Non-goals for the core), so it replaces the
// robot-vs-robot simulation with repeated random-rack draws against a
// private bagState, each played with its own best move from
// gaddag.GenerateMoves. The heuristic filtering, concurrent worker
// pool, context-based time budget and final ranking are otherwise the
// same shape as the teacher's GenerateRiddle.
package riddle

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	gaddag "github.com/crosswordforge/gaddag"
)

// GenerationParams holds everything needed to generate candidate
// positions: the shared, read-only dictionary and scoring policy, the
// board shape, and the synthetic tile supply used to draw random racks.
type GenerationParams struct {
	Alphabet   *gaddag.Alphabet
	Graph      *gaddag.WordGraph
	Scoring    *gaddag.ScoringConfig
	Rows, Cols int
	RackSize   int

	TileCounts map[rune]int // letters available in a fresh bag
	BlankCount int

	Rand *rand.Rand // source of randomness; must not be shared across goroutines

	TimeLimit     time.Duration
	NumWorkers    int
	NumCandidates int
}

// HeuristicConfig defines what makes a generated position a "good"
// riddle.
type HeuristicConfig struct {
	MinTiles      int
	MaxTiles      int
	MinMoves      int
	MinBestScore  int
	MinWordLength int

	BingoBonus     float64
	ScoreGapBonus  float64
	NumCoversBonus float64

	// SolutionFilter, if set, rejects a candidate whose best word does
	// not satisfy it (e.g. membership in a "common words" subset).
	SolutionFilter func(word string) bool
}

// DefaultHeuristics is a reasonable baseline configuration.
var DefaultHeuristics = HeuristicConfig{
	MinTiles:       30,
	MaxTiles:       50,
	MinMoves:       16,
	MinBestScore:   20,
	MinWordLength:  3,
	BingoBonus:     15.0,
	ScoreGapBonus:  1.2,
	NumCoversBonus: 2.0,
}

// DefaultEnglishTileCounts mirrors the teacher's standard English tile
// distribution (bag.go's initEnglishTileSet "tiles" counts), used to
// draw random racks when generating candidates. The blank count (2) is
// reported separately via GenerationParams.BlankCount.
func DefaultEnglishTileCounts() map[rune]int {
	return map[rune]int{
		'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12,
		'f': 2, 'g': 3, 'h': 2, 'i': 9, 'j': 1,
		'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8,
		'p': 2, 'q': 1, 'r': 6, 's': 4, 't': 6,
		'u': 4, 'v': 2, 'w': 2, 'x': 1, 'y': 2,
		'z': 1,
	}
}

// Solution is the answer to the riddle.
type Solution struct {
	Word  string
	Coord string
	Score int
}

// Analysis reports metrics about the riddle's move possibilities.
type Analysis struct {
	TotalMoves          int
	BestMoveScore       int
	SecondBestMoveScore int
	AverageScore        float64
	IsBingo             bool
}

// Riddle is a single generated practice puzzle.
type Riddle struct {
	ID       uuid.UUID
	Board    []string
	Rack     string
	Solution Solution
	Analysis Analysis
}

// RiddleCandidate pairs a Riddle with its internal ranking score.
type RiddleCandidate struct {
	Riddle *Riddle
	Score  float64
}

// Stats accumulates rejection reasons across every candidate attempted,
// for diagnosing why generation is slow to converge. All fields are
// updated with atomic.AddInt64 since many worker goroutines write to
// the same Stats concurrently.
type Stats struct {
	Candidates       int64
	NoValidMove      int64
	ContextCancelled int64
	TooFewMoves      int64
	TooLowBestScore  int64
	TooShortWord     int64
	WordRejected     int64
}

type bagState struct {
	counts map[rune]int
	blanks int
	total  int
}

func newBagState(params GenerationParams) *bagState {
	b := &bagState{counts: make(map[rune]int, len(params.TileCounts)), blanks: params.BlankCount}
	for r, n := range params.TileCounts {
		b.counts[r] = n
		b.total += n
	}
	b.total += b.blanks
	return b
}

// draw removes up to n tiles from the bag at random (without
// replacement) and returns them as RackLetters. It returns fewer than n
// tiles if the bag runs out.
func (b *bagState) draw(rng *rand.Rand, n int) []gaddag.RackLetter {
	out := make([]gaddag.RackLetter, 0, n)
	for i := 0; i < n && b.total > 0; i++ {
		pick := rng.Intn(b.total)
		if pick < b.blanks {
			b.blanks--
			b.total--
			out = append(out, gaddag.RackLetter{IsBlank: true})
			continue
		}
		pick -= b.blanks
		for letter, count := range b.counts {
			if count == 0 {
				continue
			}
			if pick < count {
				b.counts[letter]--
				b.total--
				out = append(out, gaddag.RackLetter{Letter: letter})
				break
			}
			pick -= count
		}
	}
	return out
}

func coord(row, col int, dir gaddag.Direction) string {
	axis := "H"
	if dir == gaddag.Vertical {
		axis = "V"
	}
	return fmt.Sprintf("%d,%d,%s", row, col, axis)
}

// generateCandidate plays random racks against a fresh board until it
// reaches a randomly chosen target tile count within
// [MinTiles, MaxTiles], then evaluates the next rack drawn as the
// riddle itself.
func generateCandidate(ctx context.Context, params GenerationParams, heuristics HeuristicConfig, stats *Stats) (*RiddleCandidate, error) {
	board, err := gaddag.NewBoardIndex(params.Rows, params.Cols, params.Alphabet, params.Graph)
	if err != nil {
		return nil, err
	}
	bag := newBagState(params)

	span := heuristics.MaxTiles - heuristics.MinTiles
	target := heuristics.MinTiles
	if span > 0 {
		target += params.Rand.Intn(span + 1)
	}

	for board.NumTiles() < target {
		rack := bag.draw(params.Rand, params.RackSize)
		if len(rack) == 0 {
			atomic.AddInt64(&stats.NoValidMove, 1)
			return nil, nil
		}
		solutions := gaddag.GenerateMoves(board, params.Graph, params.Alphabet, params.Scoring, rack, nil)
		if len(solutions) == 0 {
			atomic.AddInt64(&stats.NoValidMove, 1)
			return nil, nil
		}
		if err := board.PlaceTiles(solutions[0].Move); err != nil {
			atomic.AddInt64(&stats.NoValidMove, 1)
			return nil, nil
		}

		select {
		case <-ctx.Done():
			atomic.AddInt64(&stats.ContextCancelled, 1)
			return nil, ctx.Err()
		default:
		}
	}

	puzzleRack := bag.draw(params.Rand, params.RackSize)
	if len(puzzleRack) == 0 {
		atomic.AddInt64(&stats.NoValidMove, 1)
		return nil, nil
	}
	solutions := gaddag.GenerateMoves(board, params.Graph, params.Alphabet, params.Scoring, puzzleRack, nil)
	numMoves := len(solutions)
	if numMoves < heuristics.MinMoves {
		atomic.AddInt64(&stats.TooFewMoves, 1)
		return nil, nil
	}

	best := solutions[0]
	if best.Score < heuristics.MinBestScore {
		atomic.AddInt64(&stats.TooLowBestScore, 1)
		return nil, nil
	}

	dir := gaddag.MoveDirection(board, best.Move)
	word, _ := gaddag.FormedWords(board, dir, best.Move)
	if len([]rune(word)) < heuristics.MinWordLength {
		atomic.AddInt64(&stats.TooShortWord, 1)
		return nil, nil
	}
	if heuristics.SolutionFilter != nil && !heuristics.SolutionFilter(word) {
		atomic.AddInt64(&stats.WordRejected, 1)
		return nil, nil
	}

	secondBest := best.Score
	if numMoves > 1 {
		secondBest = solutions[1].Score
	}
	total := 0
	for _, s := range solutions {
		total += s.Score
	}

	isBingo := len(best.Move) >= params.RackSize

	riddle := &Riddle{
		ID:    uuid.New(),
		Board: boardStrings(board),
		Rack:  rackString(puzzleRack),
		Solution: Solution{
			Word:  word,
			Coord: coord(best.Move[0].Row, best.Move[0].Col, dir),
			Score: best.Score,
		},
		Analysis: Analysis{
			TotalMoves:          numMoves,
			BestMoveScore:       best.Score,
			SecondBestMoveScore: secondBest,
			AverageScore:        float64(total) / float64(numMoves),
			IsBingo:             isBingo,
		},
	}

	rankScore := float64(best.Score)
	rankScore += float64(len(best.Move)) * heuristics.NumCoversBonus
	rankScore += float64(best.Score-secondBest) * heuristics.ScoreGapBonus
	if isBingo {
		rankScore += heuristics.BingoBonus
	}

	return &RiddleCandidate{Riddle: riddle, Score: rankScore}, nil
}

func boardStrings(board *gaddag.BoardIndex) []string {
	out := make([]string, board.Rows())
	for r := 0; r < board.Rows(); r++ {
		rs := make([]rune, board.Cols())
		for c := 0; c < board.Cols(); c++ {
			if t := board.TileAt(r, c); t != nil {
				rs[c] = t.Letter
			} else {
				rs[c] = '.'
			}
		}
		out[r] = string(rs)
	}
	return out
}

func rackString(rack []gaddag.RackLetter) string {
	rs := make([]rune, len(rack))
	for i, rl := range rack {
		if rl.IsBlank {
			rs[i] = '?'
		} else {
			rs[i] = rl.Letter
		}
	}
	return string(rs)
}

// GenerateRiddle runs NumWorkers candidate generators concurrently
// until NumCandidates have been produced or TimeLimit elapses, and
// returns the highest-ranked one found.
func GenerateRiddle(params GenerationParams, heuristics HeuristicConfig) (*Riddle, *Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), params.TimeLimit)
	defer cancel()

	stats := &Stats{}
	candidateChan := make(chan *RiddleCandidate, 100)

	var wg sync.WaitGroup
	wg.Add(params.NumWorkers)
	for i := 0; i < params.NumWorkers; i++ {
		workerParams := params
		workerParams.Rand = rand.New(rand.NewSource(params.Rand.Int63()))
		go func(p GenerationParams) {
			defer wg.Done()
			for atomic.LoadInt64(&stats.Candidates) < int64(p.NumCandidates) {
				select {
				case <-ctx.Done():
					return
				default:
					candidate, err := generateCandidate(ctx, p, heuristics, stats)
					if err == nil && candidate != nil {
						candidateChan <- candidate
						atomic.AddInt64(&stats.Candidates, 1)
					}
				}
			}
		}(workerParams)
	}

	go func() {
		wg.Wait()
		close(candidateChan)
	}()

	var candidates []*RiddleCandidate
	for c := range candidateChan {
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil, stats, fmt.Errorf("could not generate a suitable riddle in the allotted time")
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates[0].Riddle, stats, nil
}
