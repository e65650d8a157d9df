package questionbank_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

func TestNewQuestionSet(t *testing.T) {
	set := questionbank.New("Indian Polity")

	if set.Title != "Indian Polity" {
		t.Errorf("expected title %q, got %q", "Indian Polity", set.Title)
	}

	if set.ID == "" {
		t.Error("expected non-empty ID")
	}

	if set.Len() != 0 {
		t.Errorf("expected empty question set, got %d questions", set.Len())
	}
}

func TestAddQuestion(t *testing.T) {
	set := questionbank.New("Geography")

	err := set.AddQuestion("Longest river in India?", []string{"Ganga", "Godavari"}, 0, "The Ganga is about 2,525 km long.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", set.Len())
	}

	q := set.Questions[0]
	if q.Prompt != "Longest river in India?" {
		t.Errorf("expected prompt %q, got %q", "Longest river in India?", q.Prompt)
	}
	if q.ID == "" {
		t.Error("expected question ID to be generated")
	}
	if !q.IsCorrect(0) || q.IsCorrect(1) {
		t.Error("expected only option 0 to be correct")
	}
}

func TestAddQuestion_CopiesOptions(t *testing.T) {
	set := questionbank.New("Geography")
	options := []string{"A", "B"}

	if err := set.AddQuestion("Q", options, 1, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	options[0] = "mutated"
	if set.Questions[0].Options[0] != "A" {
		t.Error("expected stored options to be independent of the caller's slice")
	}
}

func TestAddQuestion_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		options []string
		correct int
	}{
		{"empty prompt", "", []string{"A", "B"}, 0},
		{"single option", "Q", []string{"A"}, 0},
		{"no options", "Q", nil, 0},
		{"negative index", "Q", []string{"A", "B"}, -1},
		{"index past end", "Q", []string{"A", "B"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := questionbank.New("Test")

			err := set.AddQuestion(tt.prompt, tt.options, tt.correct, "")
			if !errors.Is(err, questionbank.ErrInvalidQuestion) {
				t.Fatalf("expected ErrInvalidQuestion, got %v", err)
			}

			if set.Len() != 0 {
				t.Error("expected no questions after failed add")
			}
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	set := questionbank.New("Empty")

	if err := set.Validate(); !errors.Is(err, questionbank.ErrEmptyQuestionSet) {
		t.Errorf("expected ErrEmptyQuestionSet, got %v", err)
	}

	var nilSet *questionbank.QuestionSet
	if err := nilSet.Validate(); !errors.Is(err, questionbank.ErrEmptyQuestionSet) {
		t.Errorf("expected ErrEmptyQuestionSet for nil set, got %v", err)
	}
}

func TestValidate_ReportsEveryInvalidQuestion(t *testing.T) {
	set := &questionbank.QuestionSet{
		Questions: []questionbank.Question{
			{Prompt: "ok", Options: []string{"A", "B"}, CorrectIndex: 1},
			{Prompt: "bad index", Options: []string{"A", "B"}, CorrectIndex: 5},
			{Prompt: "", Options: []string{"A", "B"}},
		},
	}

	err := set.Validate()
	if !errors.Is(err, questionbank.ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"question 2", "question 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got %q", want, msg)
		}
	}
	if strings.Contains(msg, "question 1:") {
		t.Errorf("valid question reported as invalid: %q", msg)
	}
}
