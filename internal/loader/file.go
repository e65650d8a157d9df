package loader

import (
	"context"
	"os"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

// FileLoader reads a question document from the local filesystem.
type FileLoader struct {
	path string
}

var _ Loader = (*FileLoader)(nil)

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(ctx context.Context) (*questionbank.QuestionSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: l.path, Reason: "cancelled", Wrapped: err}
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, &LoadError{Source: l.path, Reason: "open failed", Wrapped: err}
	}
	defer f.Close()

	set, err := Decode(f, FormatFromName(l.path))
	if err != nil {
		return nil, &LoadError{Source: l.path, Reason: "invalid document", Wrapped: err}
	}
	return set, nil
}
