// store.go
// Copyright (C) 2026 gaddag contributors

// This package persists generated riddles to Google Cloud Datastore,
// keyed by their UUID. The teacher ships as an App Engine service
// (go-app/main.go) and generates riddles for later serving (riddle.go);
// this is the persistence layer that deployment implies but the
// teacher never checked in. It is kept separate from the riddle and
// core packages behind the Store interface so that neither depends on
// Datastore directly, honoring spec.md's explicit persistence Non-goal
// for the move-generation core.
package persist

import (
	"context"
	"fmt"

	"cloud.google.com/go/datastore"
	"github.com/google/uuid"

	"github.com/crosswordforge/gaddag/riddle"
)

const riddleKind = "Riddle"

// Store persists and retrieves generated riddles.
type Store interface {
	Put(ctx context.Context, r *riddle.Riddle) error
	Get(ctx context.Context, id uuid.UUID) (*riddle.Riddle, error)
}

// DatastoreStore is a Store backed by Google Cloud Datastore.
type DatastoreStore struct {
	client *datastore.Client
}

// NewDatastoreStore dials Datastore for the given GCP project.
func NewDatastoreStore(ctx context.Context, projectID string) (*DatastoreStore, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("persist: connecting to datastore: %w", err)
	}
	return &DatastoreStore{client: client}, nil
}

// riddleEntity is the Datastore-shaped projection of a riddle.Riddle:
// Datastore has no native nested-struct properties for arbitrary
// depth without a registered PropertyLoadSaver, so the nested
// Solution/Analysis fields are flattened here.
type riddleEntity struct {
	Board []string `datastore:"board,noindex"`
	Rack  string   `datastore:"rack"`

	SolutionWord  string `datastore:"solutionWord,noindex"`
	SolutionCoord string `datastore:"solutionCoord,noindex"`
	SolutionScore int    `datastore:"solutionScore"`

	TotalMoves          int     `datastore:"totalMoves,noindex"`
	BestMoveScore       int     `datastore:"bestMoveScore"`
	SecondBestMoveScore int     `datastore:"secondBestMoveScore,noindex"`
	AverageScore        float64 `datastore:"averageScore,noindex"`
	IsBingo             bool    `datastore:"isBingo"`
}

func toEntity(r *riddle.Riddle) *riddleEntity {
	return &riddleEntity{
		Board:               r.Board,
		Rack:                r.Rack,
		SolutionWord:        r.Solution.Word,
		SolutionCoord:       r.Solution.Coord,
		SolutionScore:       r.Solution.Score,
		TotalMoves:          r.Analysis.TotalMoves,
		BestMoveScore:       r.Analysis.BestMoveScore,
		SecondBestMoveScore: r.Analysis.SecondBestMoveScore,
		AverageScore:        r.Analysis.AverageScore,
		IsBingo:             r.Analysis.IsBingo,
	}
}

func fromEntity(id uuid.UUID, e *riddleEntity) *riddle.Riddle {
	return &riddle.Riddle{
		ID:    id,
		Board: e.Board,
		Rack:  e.Rack,
		Solution: riddle.Solution{
			Word:  e.SolutionWord,
			Coord: e.SolutionCoord,
			Score: e.SolutionScore,
		},
		Analysis: riddle.Analysis{
			TotalMoves:          e.TotalMoves,
			BestMoveScore:       e.BestMoveScore,
			SecondBestMoveScore: e.SecondBestMoveScore,
			AverageScore:        e.AverageScore,
			IsBingo:             e.IsBingo,
		},
	}
}

func keyFor(id uuid.UUID) *datastore.Key {
	return datastore.NameKey(riddleKind, id.String(), nil)
}

// Put stores r under its own ID, overwriting any existing entity.
func (s *DatastoreStore) Put(ctx context.Context, r *riddle.Riddle) error {
	_, err := s.client.Put(ctx, keyFor(r.ID), toEntity(r))
	return err
}

// Get retrieves the riddle stored under id.
func (s *DatastoreStore) Get(ctx context.Context, id uuid.UUID) (*riddle.Riddle, error) {
	var e riddleEntity
	if err := s.client.Get(ctx, keyFor(id), &e); err != nil {
		return nil, fmt.Errorf("persist: fetching riddle %s: %w", id, err)
	}
	return fromEntity(id, &e), nil
}

// Close releases the underlying Datastore client.
func (s *DatastoreStore) Close() error {
	return s.client.Close()
}
