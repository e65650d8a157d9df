// Package loader fetches question sets from external sources. Every loader
// either returns a validated set or a *LoadError, never a partial set.
package loader

import (
	"context"
	"fmt"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

// Loader fetches a fixed question resource.
type Loader interface {
	Load(ctx context.Context) (*questionbank.QuestionSet, error)
}

// LoadError is returned when a question resource could not be retrieved or
// parsed, so callers can tell a bad document from an unreachable source.
type LoadError struct {
	Source  string
	Reason  string
	Wrapped error
}

func (e *LoadError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Source, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("load %s: %s", e.Source, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}

// Func adapts a plain function to the Loader interface.
type Func func(ctx context.Context) (*questionbank.QuestionSet, error)

func (f Func) Load(ctx context.Context) (*questionbank.QuestionSet, error) {
	return f(ctx)
}
