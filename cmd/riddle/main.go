// main.go
// Copyright (C) 2026 gaddag contributors

// Generates practice puzzles and stores them in Datastore. Mirrors the
// teacher's go-app/main.go environment-variable configuration pattern,
// reading DICTIONARY_PATH and GOOGLE_CLOUD_PROJECT, extended with
// godotenv so a .env file can supply them during local development, and
// wires the riddle and persist
// packages together as the GenerateRiddle -> DatastoreStore pipeline
// this command exists to drive.
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	gaddag "github.com/crosswordforge/gaddag"
	"github.com/crosswordforge/gaddag/persist"
	"github.com/crosswordforge/gaddag/riddle"
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
		if w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	dictPath := flag.String("d", os.Getenv("DICTIONARY_PATH"), "path to a newline-delimited word list (required)")
	rows := flag.Int("rows", 15, "board row count")
	cols := flag.Int("cols", 15, "board column count")
	rackSize := flag.Int("rack-size", 7, "rack size")
	timeLimit := flag.Duration("time-limit", 10*time.Second, "generation time budget")
	workers := flag.Int("workers", 4, "number of concurrent generator workers")
	candidates := flag.Int("candidates", 200, "number of candidates to sample before picking the best")
	flag.Parse()

	if *dictPath == "" {
		log.Fatal("usage: riddle -d words.txt")
	}

	words, err := loadWords(*dictPath)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}

	alphabet := gaddag.EnglishAlphabet
	graph := gaddag.NewWordGraph(alphabet)
	for _, w := range words {
		if err := graph.AddWord(w); err != nil {
			log.Fatalf("adding word %q: %v", w, err)
		}
	}
	log.Printf("loaded %d words from %s", len(words), *dictPath)

	params := riddle.GenerationParams{
		Alphabet:      alphabet,
		Graph:         graph,
		Scoring:       gaddag.DefaultEnglishScoring(),
		Rows:          *rows,
		Cols:          *cols,
		RackSize:      *rackSize,
		TileCounts:    riddle.DefaultEnglishTileCounts(),
		BlankCount:    2,
		Rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
		TimeLimit:     *timeLimit,
		NumWorkers:    *workers,
		NumCandidates: *candidates,
	}

	r, stats, err := riddle.GenerateRiddle(params, riddle.DefaultHeuristics)
	if err != nil {
		log.Fatalf("generating riddle: %v", err)
	}
	log.Printf("generated riddle %s: best move scores %d over %d candidates (rejected: %+v)",
		r.ID, r.Solution.Score, stats.Candidates, stats)

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		log.Println("GOOGLE_CLOUD_PROJECT not set, skipping persistence")
		return
	}
	ctx := context.Background()
	store, err := persist.NewDatastoreStore(ctx, projectID)
	if err != nil {
		log.Fatalf("connecting to datastore: %v", err)
	}
	defer store.Close()
	if err := store.Put(ctx, r); err != nil {
		log.Fatalf("storing riddle: %v", err)
	}
	log.Printf("stored riddle %s", r.ID)
}
