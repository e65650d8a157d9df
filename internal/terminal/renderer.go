// Package terminal is a line-based terminal front end for a quiz session.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	quizsession "github.com/remaimber-it/mcquiz/internal/domain/quiz_session"
)

const (
	defaultTitle     = "Practice Quiz"
	progressBarWidth = 30
)

var (
	titleStyle     = color.New(color.FgHiBlue, color.Bold)
	mutedStyle     = color.New(color.Faint)
	promptStyle    = color.New(color.Bold)
	correctStyle   = color.New(color.FgGreen, color.Bold)
	incorrectStyle = color.New(color.FgRed, color.Bold)
	scoreStyle     = color.New(color.FgBlue, color.Bold)
	errorStyle     = color.New(color.FgRed)
	progressStyle  = color.New(color.FgGreen)
)

// Renderer draws quiz views as plain text with ANSI colors.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render draws v and the commands valid in its phase.
func (r *Renderer) Render(v quizsession.View) {
	switch v.Phase {
	case quizsession.PhaseLoading:
		fmt.Fprintln(r.out, "Loading questions...")
	case quizsession.PhaseError:
		r.renderError(v)
	case quizsession.PhaseInProgress:
		r.renderQuestion(v)
	case quizsession.PhaseComplete:
		r.renderSummary(v)
	}
}

func (r *Renderer) renderError(v quizsession.View) {
	errorStyle.Fprintln(r.out, "Oops!")
	if v.ErrorReason != "" {
		fmt.Fprintln(r.out, v.ErrorReason)
	}
	fmt.Fprintln(r.out)
	mutedStyle.Fprintln(r.out, "[r] Try Again   [q] Quit")
}

func (r *Renderer) renderQuestion(v quizsession.View) {
	q := v.Question

	titleStyle.Fprintln(r.out, title(v))
	progressStyle.Fprintln(r.out, ProgressBar(q.Progress, progressBarWidth))
	fmt.Fprintf(r.out, "Question %d of %d   ", q.Number, q.Total)
	scoreStyle.Fprintf(r.out, "Score: %d\n", q.Score)
	fmt.Fprintln(r.out)

	promptStyle.Fprintln(r.out, q.Prompt)
	fmt.Fprintln(r.out)

	for _, opt := range q.Options {
		line := fmt.Sprintf("  %s) %s", opt.Label, opt.Text)
		switch opt.State {
		case quizsession.OptionCorrect:
			correctStyle.Fprintln(r.out, line+"  ✔")
		case quizsession.OptionIncorrect:
			incorrectStyle.Fprintln(r.out, line+"  ✘")
		case quizsession.OptionNeutral:
			mutedStyle.Fprintln(r.out, line)
		default:
			fmt.Fprintln(r.out, line)
		}
	}
	fmt.Fprintln(r.out)

	if !q.Answered {
		mutedStyle.Fprintf(r.out, "Choose %s-%s (or a number), [q] Quit\n",
			q.Options[0].Label, q.Options[len(q.Options)-1].Label)
		return
	}

	if q.AnsweredCorrectly {
		correctStyle.Fprintln(r.out, "Correct!")
	} else {
		incorrectStyle.Fprintln(r.out, "Incorrect.")
	}
	if q.Explanation != "" {
		promptStyle.Fprintln(r.out, "Explanation:")
		fmt.Fprintln(r.out, q.Explanation)
	}
	fmt.Fprintln(r.out)

	next := "Next Question"
	if q.IsLast {
		next = "View Results"
	}
	mutedStyle.Fprintf(r.out, "[n] %s   [q] Quit\n", next)
}

func (r *Renderer) renderSummary(v quizsession.View) {
	s := v.Summary

	titleStyle.Fprintln(r.out, "Quiz Complete!")
	fmt.Fprintln(r.out)
	scoreStyle.Fprintf(r.out, "  %d/%d\n", s.Score, s.Total)
	fmt.Fprintf(r.out, "  Score: %s\n", FormatPercentage(s.Percentage))
	fmt.Fprintln(r.out)

	promptStyle.Fprintln(r.out, "Performance Summary:")
	fmt.Fprint(r.out, "  Correct Answers:   ")
	correctStyle.Fprintln(r.out, s.Correct)
	fmt.Fprint(r.out, "  Incorrect Answers: ")
	incorrectStyle.Fprintln(r.out, s.Incorrect)
	fmt.Fprint(r.out, "  Accuracy:          ")
	scoreStyle.Fprintln(r.out, FormatPercentage(s.Percentage))
	fmt.Fprintln(r.out)

	mutedStyle.Fprintln(r.out, "[r] Restart Quiz   [q] Quit")
}

// Notice prints a one-line hint, e.g. after unusable input.
func (r *Renderer) Notice(msg string) {
	errorStyle.Fprintln(r.out, msg)
}

func title(v quizsession.View) string {
	if v.Title != "" {
		return v.Title
	}
	return defaultTitle
}

// ProgressBar renders fraction (0..1) as a fixed-width bar.
func ProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// FormatPercentage prints a percentage with one decimal place, e.g. 33.3%.
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
