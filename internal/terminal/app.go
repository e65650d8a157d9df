package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	quizsession "github.com/remaimber-it/mcquiz/internal/domain/quiz_session"
	"github.com/remaimber-it/mcquiz/internal/service"
)

// App reads commands line by line and feeds them to a QuizRunner.
type App struct {
	runner   *service.QuizRunner
	in       *bufio.Scanner
	renderer *Renderer
}

func NewApp(runner *service.QuizRunner, in io.Reader, out io.Writer) *App {
	return &App{
		runner:   runner,
		in:       bufio.NewScanner(in),
		renderer: NewRenderer(out),
	}
}

// Run loads the questions and processes input until the user quits, the
// input ends, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.renderer.Render(a.runner.View())
	if err := a.runner.Load(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.renderer.Render(a.runner.View())

		if !a.in.Scan() {
			return a.in.Err()
		}
		input := strings.TrimSpace(a.in.Text())

		if isQuit(input) {
			return nil
		}
		if err := a.handle(ctx, input); err != nil {
			return err
		}
	}
}

func (a *App) handle(ctx context.Context, input string) error {
	v := a.runner.View()

	switch v.Phase {
	case quizsession.PhaseError:
		if input == "" || strings.EqualFold(input, "r") {
			return a.runner.Load(ctx)
		}
		a.renderer.Notice("Type r to try again or q to quit.")

	case quizsession.PhaseInProgress:
		if v.Question.Answered {
			if input == "" || strings.EqualFold(input, "n") {
				a.runner.Next()
				return nil
			}
			a.renderer.Notice("Type n to continue or q to quit.")
			return nil
		}

		idx, ok := quizsession.ParseOptionLabel(input)
		if !ok || idx >= len(v.Question.Options) {
			a.renderer.Notice(fmt.Sprintf("Choose one of %s-%s.",
				v.Question.Options[0].Label, v.Question.Options[len(v.Question.Options)-1].Label))
			return nil
		}
		return a.runner.Select(idx)

	case quizsession.PhaseComplete:
		if strings.EqualFold(input, "r") {
			return a.runner.Restart()
		}
		a.renderer.Notice("Type r to restart or q to quit.")
	}

	return nil
}

func isQuit(input string) bool {
	return strings.EqualFold(input, "q") || strings.EqualFold(input, "quit")
}
