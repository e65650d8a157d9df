package quizsession

import "strconv"

// OptionState classifies an option for feedback styling.
type OptionState int

const (
	// OptionSelectable is every option before the question is answered.
	OptionSelectable OptionState = iota
	OptionCorrect
	OptionIncorrect
	OptionNeutral
)

func (o OptionState) String() string {
	switch o {
	case OptionSelectable:
		return "selectable"
	case OptionCorrect:
		return "correct"
	case OptionIncorrect:
		return "incorrect"
	case OptionNeutral:
		return "neutral"
	default:
		return "option_state(" + strconv.Itoa(int(o)) + ")"
	}
}

// OptionStates classifies each option of the current question. Before an
// answer is locked every option is selectable; afterwards the correct option
// is marked correct, a wrong choice incorrect, and the rest neutral.
func (s *QuizSession) OptionStates() []OptionState {
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}

	states := make([]OptionState, len(q.Options))
	if !s.IsAnswered() {
		return states
	}

	for i := range q.Options {
		switch {
		case q.IsCorrect(i):
			states[i] = OptionCorrect
		case i == s.selectedIndex:
			states[i] = OptionIncorrect
		default:
			states[i] = OptionNeutral
		}
	}
	return states
}

// View is everything a presentation layer needs to draw the session.
type View struct {
	Phase       Phase
	Title       string
	ErrorReason string
	Question    *QuestionView // set in PhaseInProgress
	Summary     *Summary      // set in PhaseComplete
}

type QuestionView struct {
	Number   int // 1-based
	Total    int
	Score    int
	Progress float64
	Prompt   string
	Options  []OptionView
	Answered bool
	// AnsweredCorrectly and Explanation are only meaningful once Answered.
	AnsweredCorrectly bool
	Explanation       string
	IsLast            bool
}

type OptionView struct {
	Label string
	Text  string
	State OptionState
}

type Summary struct {
	Score      int
	Total      int
	Correct    int
	Incorrect  int
	Percentage float64
}

// View computes the current view model. Nothing in it is stored.
func (s *QuizSession) View() View {
	v := View{
		Phase:       s.phase,
		Title:       s.title,
		ErrorReason: s.errReason,
	}

	switch s.phase {
	case PhaseInProgress:
		q := s.questions[s.currentIndex]
		states := s.OptionStates()

		options := make([]OptionView, len(q.Options))
		for i, text := range q.Options {
			options[i] = OptionView{
				Label: OptionLabel(i),
				Text:  text,
				State: states[i],
			}
		}

		qv := &QuestionView{
			Number:   s.currentIndex + 1,
			Total:    len(s.questions),
			Score:    s.score,
			Progress: s.ProgressFraction(),
			Prompt:   q.Prompt,
			Options:  options,
			Answered: s.IsAnswered(),
			IsLast:   s.currentIndex == len(s.questions)-1,
		}
		if qv.Answered {
			qv.AnsweredCorrectly = q.IsCorrect(s.selectedIndex)
			qv.Explanation = q.Explanation
		}
		v.Question = qv

	case PhaseComplete:
		pct, _ := s.FinalPercentage()
		v.Summary = &Summary{
			Score:      s.score,
			Total:      len(s.questions),
			Correct:    s.score,
			Incorrect:  len(s.questions) - s.score,
			Percentage: pct,
		}
	}

	return v
}

// OptionLabel returns the display label for an option: A, B, C, ... and the
// 1-based number past Z.
func OptionLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return strconv.Itoa(i + 1)
}

// ParseOptionLabel maps a label typed by the user (a letter or a 1-based
// number) back to an option index. It does not check the range.
func ParseOptionLabel(label string) (int, bool) {
	if len(label) == 1 {
		c := label[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return int(c - 'A'), true
		case c >= 'a' && c <= 'z':
			return int(c - 'a'), true
		}
	}

	n, err := strconv.Atoi(label)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
