package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
	"github.com/remaimber-it/mcquiz/internal/store"
)

// SetGetter is the store method StoreLoader needs.
type SetGetter interface {
	GetQuestionSet(ctx context.Context, id string) (*questionbank.QuestionSet, error)
	LatestQuestionSetID(ctx context.Context) (string, error)
}

// StoreLoader reads a question set from a question-set store. An empty set
// ID means the most recently saved set.
type StoreLoader struct {
	store  SetGetter
	setID  string
	source string
}

var _ Loader = (*StoreLoader)(nil)

func NewStoreLoader(s SetGetter, setID string) *StoreLoader {
	return &StoreLoader{store: s, setID: setID, source: "store:" + setID}
}

func (l *StoreLoader) Load(ctx context.Context) (*questionbank.QuestionSet, error) {
	id := l.setID
	if id == "" {
		latest, err := l.store.LatestQuestionSetID(ctx)
		if err != nil {
			return nil, &LoadError{Source: l.source, Reason: "no question set available", Wrapped: err}
		}
		id = latest
	}

	set, err := l.store.GetQuestionSet(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &LoadError{Source: l.source, Reason: "question set not found", Wrapped: err}
	}
	if err != nil {
		return nil, &LoadError{Source: l.source, Reason: "store read failed", Wrapped: err}
	}
	return set, nil
}

// Options configure FromSource.
type Options struct {
	HTTPClient    *http.Client
	ObjectStorage ObjectStorageConfig
}

// FromSource picks a loader for source:
//
//	http(s)://host/questions.json   HTTPLoader
//	s3://bucket/path/questions.yaml ObjectLoader
//	sqlite:///path/to.db?set=<id>   StoreLoader (latest set when set is omitted)
//	file:///path or a plain path    FileLoader
//
// The returned closer releases resources held by the loader (the SQLite
// handle); it is never nil.
func FromSource(source string, opts Options) (Loader, func() error, error) {
	noop := func() error { return nil }

	u, err := url.Parse(source)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain paths, including Windows drive letters.
		return NewFileLoader(source), noop, nil
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewHTTPLoader(source, opts.HTTPClient), noop, nil

	case "file":
		return NewFileLoader(u.Path), noop, nil

	case "s3":
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, nil, fmt.Errorf("s3 source %q: need s3://bucket/key", source)
		}
		if opts.ObjectStorage.Endpoint == "" {
			return nil, nil, fmt.Errorf("s3 source %q: no object storage endpoint configured", source)
		}
		client, err := NewMinioClient(opts.ObjectStorage)
		if err != nil {
			return nil, nil, fmt.Errorf("s3 source %q: %w", source, err)
		}
		return NewObjectLoader(client, u.Host, key), noop, nil

	case "sqlite":
		dbPath := u.Host + u.Path
		if dbPath == "" {
			return nil, nil, fmt.Errorf("sqlite source %q: missing database path", source)
		}
		db, err := store.NewSQLite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite source %q: %w", source, err)
		}
		return NewStoreLoader(db, u.Query().Get("set")), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}
