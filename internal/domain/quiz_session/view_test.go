package quizsession_test

import (
	"testing"

	quizsession "github.com/remaimber-it/mcquiz/internal/domain/quiz_session"
)

func TestOptionStates_BeforeAnswer(t *testing.T) {
	s := startedSession(t, 2)

	for i, st := range s.OptionStates() {
		if st != quizsession.OptionSelectable {
			t.Errorf("option %d: expected selectable, got %s", i, st)
		}
	}
}

func TestOptionStates_WrongAnswer(t *testing.T) {
	s := startedSession(t, 2)
	s.SelectAnswer(0)

	want := []quizsession.OptionState{
		quizsession.OptionIncorrect,
		quizsession.OptionNeutral,
		quizsession.OptionCorrect,
		quizsession.OptionNeutral,
	}
	got := s.OptionStates()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestOptionStates_RightAnswer(t *testing.T) {
	s := startedSession(t, 1)
	s.SelectAnswer(1)

	for i, st := range s.OptionStates() {
		want := quizsession.OptionNeutral
		if i == 1 {
			want = quizsession.OptionCorrect
		}
		if st != want {
			t.Errorf("option %d: expected %s, got %s", i, want, st)
		}
	}
}

func TestOptionStates_NoneOutsideQuiz(t *testing.T) {
	if states := quizsession.New().OptionStates(); states != nil {
		t.Errorf("expected nil states while loading, got %v", states)
	}
}

func TestView_InProgress(t *testing.T) {
	s := startedSession(t, 1, 0)

	v := s.View()
	if v.Phase != quizsession.PhaseInProgress {
		t.Fatalf("expected in_progress, got %s", v.Phase)
	}
	if v.Question == nil || v.Summary != nil {
		t.Fatal("expected only a question view")
	}

	q := v.Question
	if q.Number != 1 || q.Total != 2 || q.IsLast {
		t.Errorf("unexpected counters: number=%d total=%d last=%v", q.Number, q.Total, q.IsLast)
	}
	if q.Options[0].Label != "A" || q.Options[3].Label != "D" {
		t.Errorf("unexpected labels %q..%q", q.Options[0].Label, q.Options[3].Label)
	}
	if q.Answered || q.Explanation != "" {
		t.Error("expected explanation hidden before answering")
	}

	s.SelectAnswer(1)
	q = s.View().Question
	if !q.Answered || !q.AnsweredCorrectly {
		t.Error("expected answered correctly")
	}
	if q.Explanation != "Explanation A" {
		t.Errorf("expected explanation revealed, got %q", q.Explanation)
	}
	if q.Score != 1 {
		t.Errorf("expected score 1, got %d", q.Score)
	}

	s.Advance()
	q = s.View().Question
	if !q.IsLast || q.Progress != 1 {
		t.Errorf("expected last question at full progress, got last=%v progress=%v", q.IsLast, q.Progress)
	}
}

func TestView_Complete(t *testing.T) {
	s := startedSession(t, 0, 0, 0, 0)
	for _, choice := range []int{0, 0, 0, 1} {
		s.SelectAnswer(choice)
		s.Advance()
	}

	v := s.View()
	if v.Question != nil || v.Summary == nil {
		t.Fatal("expected only a summary")
	}

	want := quizsession.Summary{Score: 3, Total: 4, Correct: 3, Incorrect: 1, Percentage: 75.0}
	if *v.Summary != want {
		t.Errorf("expected %+v, got %+v", want, *v.Summary)
	}
}

func TestView_Error(t *testing.T) {
	s := quizsession.New()
	s.OnLoadFailed("Unable to load questions.")

	v := s.View()
	if v.Phase != quizsession.PhaseError || v.ErrorReason != "Unable to load questions." {
		t.Errorf("unexpected view %+v", v)
	}
	if v.Question != nil || v.Summary != nil {
		t.Error("expected no question or summary in error phase")
	}
}

func TestOptionLabel(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "27"}
	for i, want := range tests {
		if got := quizsession.OptionLabel(i); got != want {
			t.Errorf("OptionLabel(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestParseOptionLabel(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"A", 0, true},
		{"c", 2, true},
		{"1", 0, true},
		{"4", 3, true},
		{"0", 0, false},
		{"", 0, false},
		{"?", 0, false},
		{"ab", 0, false},
	}

	for _, tt := range tests {
		got, ok := quizsession.ParseOptionLabel(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseOptionLabel(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
