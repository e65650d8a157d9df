package questionbank

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// MinOptions is the smallest number of answer options a question may offer.
const MinOptions = 2

var (
	ErrEmptyQuestionSet = errors.New("question set has no questions")
	ErrInvalidQuestion  = errors.New("invalid question")
)

// Question is a single multiple-choice question. It is never mutated once
// it belongs to a loaded QuestionSet.
type Question struct {
	ID           string
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Validate checks the question invariants: a prompt, at least MinOptions
// options and a correct index that points into Options.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("%w: prompt cannot be empty", ErrInvalidQuestion)
	}
	if len(q.Options) < MinOptions {
		return fmt.Errorf("%w: need at least %d options, got %d", ErrInvalidQuestion, MinOptions, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: correct index %d out of range [0, %d)", ErrInvalidQuestion, q.CorrectIndex, len(q.Options))
	}
	return nil
}

// IsCorrect reports whether optionIndex is the correct choice.
func (q Question) IsCorrect(optionIndex int) bool {
	return optionIndex == q.CorrectIndex
}

// QuestionSet is the ordered collection of questions driving one quiz run.
type QuestionSet struct {
	ID        string
	Title     string
	Questions []Question
}

func New(title string) *QuestionSet {
	return &QuestionSet{
		ID:        uuid.NewString(),
		Title:     title,
		Questions: []Question{},
	}
}

// AddQuestion validates and appends a question. The options slice is copied.
func (qs *QuestionSet) AddQuestion(prompt string, options []string, correctIndex int, explanation string) error {
	q := Question{
		ID:           uuid.NewString(),
		Prompt:       prompt,
		Options:      append([]string(nil), options...),
		CorrectIndex: correctIndex,
		Explanation:  explanation,
	}
	if err := q.Validate(); err != nil {
		return err
	}

	qs.Questions = append(qs.Questions, q)
	return nil
}

func (qs *QuestionSet) Len() int {
	if qs == nil {
		return 0
	}
	return len(qs.Questions)
}

// Validate reports ErrEmptyQuestionSet for a set without questions, and
// otherwise every invalid question at once.
func (qs *QuestionSet) Validate() error {
	if qs.Len() == 0 {
		return ErrEmptyQuestionSet
	}

	var result *multierror.Error
	for i, q := range qs.Questions {
		if err := q.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("question %d: %w", i+1, err))
		}
	}
	return result.ErrorOrNil()
}
