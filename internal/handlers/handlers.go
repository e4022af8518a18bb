package handlers

import (
	"context"

	"wordlookup/internal/models"
)

// Lookuper fetches one word from the dictionary. *dictionary.Client satisfies it.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (*models.LookupResult, error)
}

// OutcomeRecorder counts lookup outcomes. *metrics.Recorder satisfies it.
type OutcomeRecorder interface {
	RecordWordLookup(word, outcome string)
}

// TopWordsSource lists the most looked-up words. *db.DB satisfies it.
type TopWordsSource interface {
	GetTopWords(ctx context.Context, limit int) ([]models.WordLookup, error)
}

type noopRecorder struct{}

func (noopRecorder) RecordWordLookup(string, string) {}
