package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromName picks a document format from a file name or URL path.
func FormatFromName(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is the wire shape of a question resource:
//
//	{"title": "...", "questions": [{"question": "...", "options": [...], "correct": 1, "explanation": "..."}]}
type Document struct {
	Title     string             `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []DocumentQuestion `json:"questions" yaml:"questions"`
}

type DocumentQuestion struct {
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Correct     *int     `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

var (
	errMissingQuestions = errors.New(`document has no "questions" list`)
	errTrailingData     = errors.New("unexpected data after document")
)

// rawDocument tells a missing question list apart from an empty one.
type rawDocument struct {
	Title     string         `json:"title" yaml:"title"`
	Questions *[]rawQuestion `json:"questions" yaml:"questions"`
}

// rawQuestion reads the correct index as a number so 1 and 1.0 both decode.
type rawQuestion struct {
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Correct     *float64 `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// Decode reads a single document and converts it into a validated question
// set. Anything after the document makes it malformed.
func Decode(r io.Reader, format Format) (*questionbank.QuestionSet, error) {
	var raw rawDocument

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", errTrailingData)
		}
	default:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json: %w", errTrailingData)
		}
	}

	if raw.Questions == nil {
		return nil, errMissingQuestions
	}

	doc := Document{Title: raw.Title, Questions: make([]DocumentQuestion, len(*raw.Questions))}
	for i, q := range *raw.Questions {
		dq := DocumentQuestion{Question: q.Question, Options: q.Options, Explanation: q.Explanation}
		if q.Correct != nil {
			if *q.Correct != math.Trunc(*q.Correct) {
				return nil, fmt.Errorf("question %d: %w: correct index %v is not a whole number", i+1, questionbank.ErrInvalidQuestion, *q.Correct)
			}
			correct := int(*q.Correct)
			dq.Correct = &correct
		}
		doc.Questions[i] = dq
	}
	return doc.ToQuestionSet()
}

// ToQuestionSet validates every question and builds a question set. A
// document with an empty list is well formed and yields an empty set.
func (d Document) ToQuestionSet() (*questionbank.QuestionSet, error) {
	set := questionbank.New(d.Title)
	for i, q := range d.Questions {
		if q.Correct == nil {
			return nil, fmt.Errorf("question %d: %w: missing \"correct\"", i+1, questionbank.ErrInvalidQuestion)
		}
		if err := set.AddQuestion(q.Question, q.Options, *q.Correct, q.Explanation); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return set, nil
}

// NewDocument converts a question set back into its wire shape.
func NewDocument(set *questionbank.QuestionSet) Document {
	doc := Document{
		Title:     set.Title,
		Questions: make([]DocumentQuestion, len(set.Questions)),
	}
	for i, q := range set.Questions {
		correct := q.CorrectIndex
		doc.Questions[i] = DocumentQuestion{
			Question:    q.Prompt,
			Options:     q.Options,
			Correct:     &correct,
			Explanation: q.Explanation,
		}
	}
	return doc
}
