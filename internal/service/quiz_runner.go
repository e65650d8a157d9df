// internal/service/quiz_runner.go
package service

import (
	"context"
	"log/slog"
	"time"

	quizsession "github.com/remaimber-it/mcquiz/internal/domain/quiz_session"
	"github.com/remaimber-it/mcquiz/internal/loader"
)

// LoadFailureMessage is what the user sees when the question resource could
// not be fetched or parsed. The underlying error is only logged.
const LoadFailureMessage = "Unable to load questions. Please try again later."

// QuizRunner drives one QuizSession: it runs the external loader and feeds
// the outcome back through the session's load callbacks, and forwards user
// actions. Like the session it wraps, it is meant for a single goroutine.
type QuizRunner struct {
	loader      loader.Loader
	session     *quizsession.QuizSession
	logger      *slog.Logger
	loadTimeout time.Duration
}

// NewQuizRunner creates a runner with a fresh session in the loading phase.
// A zero loadTimeout means loads are bounded only by the caller's context.
func NewQuizRunner(l loader.Loader, logger *slog.Logger, loadTimeout time.Duration) *QuizRunner {
	return &QuizRunner{
		loader:      l,
		session:     quizsession.New(),
		logger:      logger,
		loadTimeout: loadTimeout,
	}
}

// Load fetches the question set and resolves the loading phase. It is also
// the retry path after a failure. Load failures are not returned: they move
// the session to the error phase. Only a forbidden transition is an error.
func (r *QuizRunner) Load(ctx context.Context) error {
	if err := r.session.BeginLoad(); err != nil {
		return err
	}

	if r.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.loadTimeout)
		defer cancel()
	}

	start := time.Now()
	set, err := r.loader.Load(ctx)
	if err != nil {
		r.logger.Error("failed to load questions",
			"error", err,
			"duration", time.Since(start),
		)
		return r.session.OnLoadFailed(LoadFailureMessage)
	}

	if err := r.session.OnLoadSucceeded(set); err != nil {
		r.logger.Warn("question set unusable",
			"questions", set.Len(),
			"error", err,
		)
		return nil
	}

	r.logger.Info("questions loaded",
		"set_id", set.ID,
		"title", set.Title,
		"questions", set.Len(),
		"duration", time.Since(start),
	)
	return nil
}

// Select locks an answer for the current question.
func (r *QuizRunner) Select(optionIndex int) error {
	wasAnswered := r.session.IsAnswered()
	if err := r.session.SelectAnswer(optionIndex); err != nil {
		return err
	}

	if !wasAnswered && r.session.IsAnswered() {
		r.logger.Debug("answer locked",
			"question", r.session.CurrentIndex()+1,
			"option", optionIndex,
			"correct", r.session.IsCorrect(optionIndex),
			"score", r.session.Score(),
		)
	}
	return nil
}

// Next advances past the current question once it is answered.
func (r *QuizRunner) Next() {
	if r.session.Phase() != quizsession.PhaseInProgress {
		return
	}
	r.session.Advance()

	if pct, ok := r.session.FinalPercentage(); ok {
		r.logger.Info("quiz complete",
			"score", r.session.Score(),
			"total", r.session.Len(),
			"percentage", pct,
		)
	}
}

// Restart replays the loaded question set from the start.
func (r *QuizRunner) Restart() error {
	if err := r.session.Restart(); err != nil {
		return err
	}
	r.logger.Info("quiz restarted", "questions", r.session.Len())
	return nil
}

func (r *QuizRunner) View() quizsession.View {
	return r.session.View()
}

func (r *QuizRunner) Session() *quizsession.QuizSession {
	return r.session
}
