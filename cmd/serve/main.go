// main.go
// Copyright (C) 2026 gaddag contributors

// A minimal HTTP front end for the solver, adapted from the teacher's
// go-app/main.go and server.go: a single POST endpoint that accepts a
// rack and returns ranked moves as JSON, with the same bearer-token and
// PORT-from-environment conventions the teacher's App Engine service
// uses. Request/response bodies are new, generalized types (spec.md's
// core has no notion of a "game" or "player" for server.go's request
// shape to describe).
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"

	gaddag "github.com/crosswordforge/gaddag"
)

var authHeader string

type moveRequest struct {
	Rack string `json:"rack"`
	// Opening, if set, is placed across the board center before the
	// rack is solved. Intended for exercising the server against an
	// otherwise-empty board.
	Opening string `json:"opening,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

type placementResponse struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Letter  string `json:"letter"`
	IsBlank bool   `json:"isBlank"`
}

type moveResponse struct {
	Score      int                 `json:"score"`
	Direction  string              `json:"direction"`
	Placements []placementResponse `json:"placements"`
}

func toResponse(sol gaddag.Solution, bi *gaddag.BoardIndex) moveResponse {
	out := moveResponse{Score: sol.Score, Direction: gaddag.MoveDirection(bi, sol.Move).String()}
	for _, p := range sol.Move {
		out.Placements = append(out.Placements, placementResponse{
			Row: p.Row, Col: p.Col, Letter: string(p.Tile.Letter), IsBlank: p.Tile.IsBlank,
		})
	}
	return out
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

func newHandler(solver *gaddag.Solver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		if authHeader != "" && r.Header.Get("Authorization") != authHeader {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req moveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Opening != "" {
			center := solver.Board().Cols() / 2
			row := solver.Board().Rows() / 2
			placements := make([]gaddag.TilePlacement, 0, len(req.Opening))
			for i, c := range strings.ToLower(req.Opening) {
				placements = append(placements, gaddag.TilePlacement{Row: row, Col: center + i, Tile: gaddag.TileLetter{Letter: c}})
			}
			if err := solver.PlaceTiles(placements); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		limit := req.Limit
		if limit <= 0 {
			limit = 20
		}
		solutions := solver.GenerateMoves(parseRack(req.Rack), &limit)
		resp := make([]moveResponse, 0, len(solutions))
		for _, s := range solutions {
			resp = append(resp, toResponse(s, solver.Board()))
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Printf("encoding response: %v", err)
		}
	}
}

func warmup(w http.ResponseWriter, r *http.Request) {
	log.Println("warmup request received")
}

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
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.Printf("gaddag move service starting, Go version %s", runtime.Version())

	if *dictPath == "" {
		log.Fatal("usage: serve -d words.txt (or set DICTIONARY_PATH)")
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

	if key := os.Getenv("ACCESS_KEY"); key != "" {
		authHeader = "Bearer " + key
	}

	http.HandleFunc("/_ah/warmup", warmup)
	http.HandleFunc("/moves", newHandler(solver))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on port %s", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", port), nil); err != nil {
		log.Fatal(err)
	}
}
