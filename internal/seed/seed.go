// Package seed imports question documents from a directory at startup.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
	"github.com/remaimber-it/mcquiz/internal/loader"
	"github.com/remaimber-it/mcquiz/internal/store"
	"github.com/remaimber-it/mcquiz/internal/worker"
)

type Result struct {
	Imported []string // file names
	Skipped  []string // titles already present
	Failed   []string
}

type outcome struct {
	set *questionbank.QuestionSet
	err error
}

type Seeder struct {
	store   store.Store
	logger  *slog.Logger
	workers int
}

func NewSeeder(s store.Store, logger *slog.Logger, workers int) *Seeder {
	return &Seeder{store: s, logger: logger, workers: workers}
}

// Run parses every .json, .yaml and .yml file in dir in parallel and saves
// each valid set whose title is not stored yet. Files that fail to parse
// or validate are reported in the returned error; the rest still import.
func (s *Seeder) Run(ctx context.Context, dir string) (Result, error) {
	var result Result

	files, err := documentFiles(dir)
	if err != nil {
		return result, err
	}
	if len(files) == 0 {
		return result, nil
	}

	existing, err := s.existingTitles(ctx)
	if err != nil {
		return result, err
	}

	pool := worker.NewPool[outcome](s.workers, len(files))
	for _, name := range files {
		path := filepath.Join(dir, name)
		pool.Submit(name, func() outcome {
			set, err := loader.NewFileLoader(path).Load(ctx)
			if err == nil {
				err = set.Validate()
			}
			return outcome{set: set, err: err}
		})
	}
	pool.Close()

	outcomes := make(map[string]outcome, len(files))
	for r := range pool.Results() {
		outcomes[r.JobID] = r.Output
	}

	// Save in file-name order so repeated runs store sets identically.
	var errs *multierror.Error
	for _, name := range files {
		o := outcomes[name]
		if o.err != nil {
			s.logger.Warn("seed file rejected", "file", name, "error", o.err)
			result.Failed = append(result.Failed, name)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, o.err))
			continue
		}

		if o.set.Title == "" {
			o.set.Title = strings.TrimSuffix(name, filepath.Ext(name))
		}
		if existing[o.set.Title] {
			s.logger.Debug("seed set already present", "file", name, "title", o.set.Title)
			result.Skipped = append(result.Skipped, o.set.Title)
			continue
		}

		if err := s.store.SaveQuestionSet(ctx, o.set); err != nil {
			return result, fmt.Errorf("save %s: %w", name, err)
		}
		existing[o.set.Title] = true
		result.Imported = append(result.Imported, name)
		s.logger.Info("seeded question set", "file", name, "set_id", o.set.ID, "questions", o.set.Len())
	}

	return result, errs.ErrorOrNil()
}

func (s *Seeder) existingTitles(ctx context.Context) (map[string]bool, error) {
	summaries, err := s.store.ListQuestionSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list question sets: %w", err)
	}
	titles := make(map[string]bool, len(summaries))
	for _, sum := range summaries {
		titles[sum.Title] = true
	}
	return titles, nil
}

func documentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read seed dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
