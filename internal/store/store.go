package store

import (
	"context"
	"errors"
	"time"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

var (
	ErrNotFound = errors.New("not found")
)

// QuestionSetSummary is a question set without its questions.
type QuestionSetSummary struct {
	ID            string
	Title         string
	QuestionCount int
	CreatedAt     time.Time
}

// Store persists question sets. Quiz progress is never stored.
type Store interface {
	SaveQuestionSet(ctx context.Context, set *questionbank.QuestionSet) error
	GetQuestionSet(ctx context.Context, id string) (*questionbank.QuestionSet, error)
	ListQuestionSets(ctx context.Context) ([]QuestionSetSummary, error)
	LatestQuestionSetID(ctx context.Context) (string, error)
	DeleteQuestionSet(ctx context.Context, id string) error
	Close() error
}
