package quizsession

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

// Phase is the coarse state of a quiz session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseInProgress
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseInProgress:
		return "in_progress"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	// ErrInvalidTransition is returned by the load callbacks, Restart and
	// BeginLoad when the current phase forbids them. State is left unchanged.
	ErrInvalidTransition = errors.New("invalid phase transition")

	// ErrInvalidOption means the caller passed an option index outside the
	// current question's options.
	ErrInvalidOption = errors.New("option index out of range")
)

// ReasonNoQuestions is the error reason recorded when a load yields no questions.
const ReasonNoQuestions = "no questions available"

const noSelection = -1

// QuizSession owns the progress, the locked answer and the score of one quiz
// run. It is not safe for concurrent use; a single driver feeds it events in
// arrival order.
type QuizSession struct {
	phase         Phase
	title         string
	questions     []questionbank.Question
	currentIndex  int
	selectedIndex int
	score         int
	errReason     string
}

// New creates a session in PhaseLoading.
func New() *QuizSession {
	return &QuizSession{
		phase:         PhaseLoading,
		selectedIndex: noSelection,
	}
}

// ============================================================================
// Load events
// ============================================================================

// OnLoadSucceeded starts the quiz with the given set. An empty or invalid set
// moves the session to PhaseError instead, and the validation error is
// returned so the driver can log it.
func (s *QuizSession) OnLoadSucceeded(set *questionbank.QuestionSet) error {
	if s.phase != PhaseLoading {
		return fmt.Errorf("%w: load succeeded while %s", ErrInvalidTransition, s.phase)
	}

	if err := set.Validate(); err != nil {
		reason := err.Error()
		if errors.Is(err, questionbank.ErrEmptyQuestionSet) {
			reason = ReasonNoQuestions
		}
		s.phase = PhaseError
		s.errReason = reason
		return err
	}

	s.title = set.Title
	s.questions = make([]questionbank.Question, len(set.Questions))
	for i, q := range set.Questions {
		q.Options = slices.Clone(q.Options)
		s.questions[i] = q
	}
	s.errReason = ""
	s.reset()
	return nil
}

// OnLoadFailed records reason and moves the session to PhaseError.
func (s *QuizSession) OnLoadFailed(reason string) error {
	if s.phase != PhaseLoading {
		return fmt.Errorf("%w: load failed while %s", ErrInvalidTransition, s.phase)
	}

	s.phase = PhaseError
	s.errReason = reason
	return nil
}

// BeginLoad re-enters PhaseLoading for a retry. Score and progress are only
// reset by the next successful load.
func (s *QuizSession) BeginLoad() error {
	switch s.phase {
	case PhaseLoading:
		return nil
	case PhaseError:
		s.phase = PhaseLoading
		s.errReason = ""
		return nil
	default:
		return fmt.Errorf("%w: retry while %s", ErrInvalidTransition, s.phase)
	}
}

// ============================================================================
// User actions
// ============================================================================

// SelectAnswer locks optionIndex as the answer to the current question and
// scores it. Only the first selection per question counts; later calls, and
// calls outside PhaseInProgress, are ignored.
func (s *QuizSession) SelectAnswer(optionIndex int) error {
	if s.phase != PhaseInProgress {
		return nil
	}

	q := s.questions[s.currentIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidOption, optionIndex, len(q.Options))
	}

	if s.IsAnswered() {
		return nil
	}

	s.selectedIndex = optionIndex
	if q.IsCorrect(optionIndex) {
		s.score++
	}
	return nil
}

// Advance moves to the next question, or completes the quiz after the last
// one. It does nothing until the current question is answered.
func (s *QuizSession) Advance() {
	if s.phase != PhaseInProgress || !s.IsAnswered() {
		return
	}

	if s.currentIndex == len(s.questions)-1 {
		s.phase = PhaseComplete
		return
	}

	s.currentIndex++
	s.selectedIndex = noSelection
}

// Restart begins the same question set again from the first question.
func (s *QuizSession) Restart() error {
	if len(s.questions) == 0 {
		return fmt.Errorf("%w: restart while %s without questions", ErrInvalidTransition, s.phase)
	}

	s.reset()
	return nil
}

func (s *QuizSession) reset() {
	s.currentIndex = 0
	s.selectedIndex = noSelection
	s.score = 0
	s.phase = PhaseInProgress
}

// ============================================================================
// State
// ============================================================================

func (s *QuizSession) Phase() Phase        { return s.phase }
func (s *QuizSession) Title() string       { return s.title }
func (s *QuizSession) Score() int          { return s.score }
func (s *QuizSession) CurrentIndex() int   { return s.currentIndex }
func (s *QuizSession) ErrorReason() string { return s.errReason }
func (s *QuizSession) Len() int            { return len(s.questions) }

// SelectedIndex returns the locked answer, if any.
func (s *QuizSession) SelectedIndex() (int, bool) {
	if s.selectedIndex == noSelection {
		return 0, false
	}
	return s.selectedIndex, true
}

// CurrentQuestion returns the question being shown while the quiz is running.
func (s *QuizSession) CurrentQuestion() (questionbank.Question, bool) {
	if s.phase != PhaseInProgress {
		return questionbank.Question{}, false
	}
	return s.questions[s.currentIndex], true
}

// ============================================================================
// Derived values
// ============================================================================

func (s *QuizSession) IsAnswered() bool {
	return s.selectedIndex != noSelection
}

// IsCorrect reports whether optionIndex is the correct option of the current question.
func (s *QuizSession) IsCorrect(optionIndex int) bool {
	q, ok := s.CurrentQuestion()
	return ok && q.IsCorrect(optionIndex)
}

// ProgressFraction is (currentIndex+1)/len(questions), or 0 before a load.
func (s *QuizSession) ProgressFraction() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.currentIndex+1) / float64(len(s.questions))
}

// FinalPercentage is the score as a percentage rounded to one decimal place.
// It is only available once the quiz is complete.
func (s *QuizSession) FinalPercentage() (float64, bool) {
	if s.phase != PhaseComplete {
		return 0, false
	}
	return Percentage(s.score, len(s.questions)), true
}

// Percentage returns score/total*100 rounded to one decimal place.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(score) * 100 / float64(total)
	return math.Round(pct*10) / 10
}
