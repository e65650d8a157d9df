package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
	quizsession "github.com/remaimber-it/mcquiz/internal/domain/quiz_session"
	"github.com/remaimber-it/mcquiz/internal/loader"
	"github.com/remaimber-it/mcquiz/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func twoQuestionSet(t *testing.T) *questionbank.QuestionSet {
	t.Helper()
	set := questionbank.New("Polity")
	require.NoError(t, set.AddQuestion("Q1", []string{"A", "B"}, 1, "E1"))
	require.NoError(t, set.AddQuestion("Q2", []string{"A", "B", "C"}, 0, "E2"))
	return set
}

// scriptedLoader returns the queued results in order.
type scriptedLoader struct {
	results []func() (*questionbank.QuestionSet, error)
	calls   int
}

func (l *scriptedLoader) Load(ctx context.Context) (*questionbank.QuestionSet, error) {
	next := l.results[l.calls]
	l.calls++
	return next()
}

func TestQuizRunner_LoadSuccess(t *testing.T) {
	set := twoQuestionSet(t)
	r := service.NewQuizRunner(loader.Func(func(ctx context.Context) (*questionbank.QuestionSet, error) {
		return set, nil
	}), discardLogger(), time.Second)

	assert.Equal(t, quizsession.PhaseLoading, r.View().Phase)

	require.NoError(t, r.Load(context.Background()))

	v := r.View()
	assert.Equal(t, quizsession.PhaseInProgress, v.Phase)
	require.NotNil(t, v.Question)
	assert.Equal(t, "Q1", v.Question.Prompt)
}

func TestQuizRunner_LoadFailureThenRetry(t *testing.T) {
	set := twoQuestionSet(t)
	l := &scriptedLoader{results: []func() (*questionbank.QuestionSet, error){
		func() (*questionbank.QuestionSet, error) {
			return nil, &loader.LoadError{Source: "test", Reason: "request failed", Wrapped: errors.New("connection refused")}
		},
		func() (*questionbank.QuestionSet, error) { return set, nil },
	}}

	var logs bytes.Buffer
	r := service.NewQuizRunner(l, slog.New(slog.NewJSONHandler(&logs, nil)), 0)

	require.NoError(t, r.Load(context.Background()))
	v := r.View()
	assert.Equal(t, quizsession.PhaseError, v.Phase)
	assert.Equal(t, service.LoadFailureMessage, v.ErrorReason)
	assert.Contains(t, logs.String(), "connection refused", "cause is logged, not shown")

	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, quizsession.PhaseInProgress, r.View().Phase)
	assert.Equal(t, 2, l.calls)
}

func TestQuizRunner_EmptySet(t *testing.T) {
	r := service.NewQuizRunner(loader.Func(func(ctx context.Context) (*questionbank.QuestionSet, error) {
		return questionbank.New("empty"), nil
	}), discardLogger(), 0)

	require.NoError(t, r.Load(context.Background()))

	v := r.View()
	assert.Equal(t, quizsession.PhaseError, v.Phase)
	assert.Equal(t, quizsession.ReasonNoQuestions, v.ErrorReason)
}

func TestQuizRunner_LoadTimeout(t *testing.T) {
	r := service.NewQuizRunner(loader.Func(func(ctx context.Context) (*questionbank.QuestionSet, error) {
		<-ctx.Done()
		return nil, &loader.LoadError{Source: "slow", Reason: "request failed", Wrapped: ctx.Err()}
	}), discardLogger(), 10*time.Millisecond)

	require.NoError(t, r.Load(context.Background()))
	assert.Equal(t, quizsession.PhaseError, r.View().Phase)
}

func TestQuizRunner_LoadWhileRunningIsRejected(t *testing.T) {
	set := twoQuestionSet(t)
	calls := 0
	r := service.NewQuizRunner(loader.Func(func(ctx context.Context) (*questionbank.QuestionSet, error) {
		calls++
		return set, nil
	}), discardLogger(), 0)

	require.NoError(t, r.Load(context.Background()))

	err := r.Load(context.Background())
	assert.ErrorIs(t, err, quizsession.ErrInvalidTransition)
	assert.Equal(t, 1, calls, "loader must not run again")
}

func TestQuizRunner_FullRun(t *testing.T) {
	set := twoQuestionSet(t)
	r := service.NewQuizRunner(loader.Func(func(ctx context.Context) (*questionbank.QuestionSet, error) {
		return set, nil
	}), discardLogger(), 0)
	require.NoError(t, r.Load(context.Background()))

	require.NoError(t, r.Select(1))
	require.NoError(t, r.Select(0)) // ignored
	r.Next()
	require.NoError(t, r.Select(2))
	r.Next()
	r.Next() // ignored once complete

	v := r.View()
	require.Equal(t, quizsession.PhaseComplete, v.Phase)
	assert.Equal(t, quizsession.Summary{Score: 1, Total: 2, Correct: 1, Incorrect: 1, Percentage: 50.0}, *v.Summary)

	require.NoError(t, r.Restart())
	assert.Equal(t, 0, r.Session().Score())
	assert.Equal(t, quizsession.PhaseInProgress, r.View().Phase)
}

func TestQuizRunner_SelectOutOfRange(t *testing.T) {
	set := twoQuestionSet(t)
	r := service.NewQuizRunner(loader.Func(func(ctx context.Context) (*questionbank.QuestionSet, error) {
		return set, nil
	}), discardLogger(), 0)
	require.NoError(t, r.Load(context.Background()))

	assert.ErrorIs(t, r.Select(7), quizsession.ErrInvalidOption)
	assert.False(t, r.Session().IsAnswered())
}

func TestQuizRunner_RestartBeforeLoad(t *testing.T) {
	r := service.NewQuizRunner(loader.Func(func(ctx context.Context) (*questionbank.QuestionSet, error) {
		return nil, errors.New("unused")
	}), discardLogger(), 0)

	assert.ErrorIs(t, r.Restart(), quizsession.ErrInvalidTransition)
}
