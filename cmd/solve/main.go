// main.go
// Copyright (C) 2026 gaddag contributors

// Example program for exercising the gaddag module: loads a word list,
// places an opening word, then asks the solver for the best plays
// available to a rack. Adapted from the teacher's main/main.go, which
// drove a simulated two-robot game from the command line; this drives
// a single-player move-generation query instead, since the core has no
// game/turn-order layer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	gaddag "github.com/crosswordforge/gaddag"
)

func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words, scanner.Err()
}

func parseRack(s string) []gaddag.RackLetter {
	rack := make([]gaddag.RackLetter, 0, len(s))
	for _, r := range strings.ToLower(s) {
		if r == '?' {
			rack = append(rack, gaddag.RackLetter{IsBlank: true})
		} else {
			rack = append(rack, gaddag.RackLetter{Letter: r})
		}
	}
	return rack
}

func main() {
	dictPath := flag.String("d", "", "path to a newline-delimited word list (required)")
	rows := flag.Int("rows", 15, "board row count")
	cols := flag.Int("cols", 15, "board column count")
	rack := flag.String("rack", "", "rack letters, '?' for a blank (required)")
	opening := flag.String("opening", "", "optional word to place across the board center before solving")
	limit := flag.Int("limit", 10, "maximum number of ranked solutions to print")
	flag.Parse()

	if *dictPath == "" || *rack == "" {
		fmt.Fprintln(os.Stderr, "usage: solve -d words.txt -rack ABCDEFG [-opening WORD]")
		os.Exit(1)
	}

	words, err := loadWords(*dictPath)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}

	solver, err := gaddag.NewSolver(*rows, *cols, gaddag.EnglishAlphabet, gaddag.DefaultEnglishScoring())
	if err != nil {
		log.Fatalf("creating solver: %v", err)
	}
	for _, w := range words {
		if err := solver.AddWord(w); err != nil {
			log.Fatalf("adding word %q: %v", w, err)
		}
	}
	log.Printf("loaded %d words from %s", len(words), *dictPath)

	if *opening != "" {
		center := solver.Board().Cols() / 2
		row := solver.Board().Rows() / 2
		placements := make([]gaddag.TilePlacement, 0, len(*opening))
		for i, r := range strings.ToLower(*opening) {
			placements = append(placements, gaddag.TilePlacement{Row: row, Col: center + i, Tile: gaddag.TileLetter{Letter: r}})
		}
		if err := solver.PlaceTiles(placements); err != nil {
			log.Fatalf("placing opening word %q: %v", *opening, err)
		}
	}

	rackLetters := parseRack(*rack)
	n := *limit
	solutions := solver.GenerateMoves(rackLetters, &n)

	fmt.Println(solver.Board().String())
	fmt.Printf("\n%d solution(s) for rack %q:\n", len(solutions), *rack)
	for i, sol := range solutions {
		dir := gaddag.MoveDirection(solver.Board(), sol.Move)
		first := sol.Move[0]
		fmt.Printf("%2d. score %3d  %s at (%d,%d)\n", i+1, sol.Score, dir, first.Row, first.Col)
	}
}
