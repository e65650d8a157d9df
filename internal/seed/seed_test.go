package seed_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/mcquiz/internal/seed"
	"github.com/remaimber-it/mcquiz/internal/store"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeeder_Run(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "capitals.json", `{"title": "Capitals", "questions": [
		{"question": "Capital of India?", "options": ["Mumbai", "New Delhi"], "correct": 1, "explanation": "New Delhi."}
	]}`)
	writeFile(t, dir, "rivers.yaml", `questions:
  - question: Longest river?
    options: [Nile, Amazon, Yangtze]
    correct: 0
    explanation: By most measures.
`)
	writeFile(t, dir, "broken.json", `{"questions": [{"question": "q", "options": ["a"], "correct": 0}]}`)
	writeFile(t, dir, "empty.yml", `questions: []`)
	writeFile(t, dir, "notes.txt", `ignored`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	s := newStore(t)
	seeder := seed.NewSeeder(s, slog.New(slog.NewTextHandler(io.Discard, nil)), 3)
	ctx := context.Background()

	result, err := seeder.Run(ctx, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.json")
	assert.Contains(t, err.Error(), "empty.yml")
	assert.Equal(t, []string{"capitals.json", "rivers.yaml"}, result.Imported)
	assert.Equal(t, []string{"broken.json", "empty.yml"}, result.Failed)

	summaries, err := s.ListQuestionSets(ctx)
	require.NoError(t, err)
	titles := make([]string, 0, len(summaries))
	for _, sum := range summaries {
		titles = append(titles, sum.Title)
	}
	assert.ElementsMatch(t, []string{"Capitals", "rivers"}, titles)

	// A second run skips sets that are already stored.
	result, _ = seeder.Run(ctx, dir)
	assert.Empty(t, result.Imported)
	assert.ElementsMatch(t, []string{"Capitals", "rivers"}, result.Skipped)

	summaries, err = s.ListQuestionSets(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}

func TestSeeder_EmptyDir(t *testing.T) {
	seeder := seed.NewSeeder(newStore(t), slog.New(slog.NewTextHandler(io.Discard, nil)), 2)

	result, err := seeder.Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
}

func TestSeeder_MissingDir(t *testing.T) {
	seeder := seed.NewSeeder(newStore(t), slog.New(slog.NewTextHandler(io.Discard, nil)), 2)

	_, err := seeder.Run(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
