// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

const schema = `
CREATE TABLE IF NOT EXISTS question_sets (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    set_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    prompt TEXT NOT NULL,
    options TEXT NOT NULL,
    correct_index INTEGER NOT NULL,
    explanation TEXT NOT NULL,
    FOREIGN KEY (set_id) REFERENCES question_sets(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_questions_set ON questions(set_id, position);
`

type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (or creates) the database at dbPath and applies the schema.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}

	db, err := sql.Open("sqlite", dbPath+sep+"_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Question sets
// ============================================================================

// SaveQuestionSet inserts the set and its questions in one transaction.
func (s *SQLiteStore) SaveQuestionSet(ctx context.Context, set *questionbank.QuestionSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO question_sets (id, title, created_at) VALUES (?, ?, ?)",
		set.ID, set.Title, s.now().UnixNano(),
	); err != nil {
		return err
	}

	for i, q := range set.Questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (id, set_id, position, prompt, options, correct_index, explanation)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			q.ID, set.ID, i, q.Prompt, string(optionsJSON), q.CorrectIndex, q.Explanation,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetQuestionSet(ctx context.Context, id string) (*questionbank.QuestionSet, error) {
	var set questionbank.QuestionSet
	err := s.db.QueryRowContext(ctx, "SELECT id, title FROM question_sets WHERE id = ?", id).Scan(&set.ID, &set.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, prompt, options, correct_index, explanation FROM questions WHERE set_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set.Questions = []questionbank.Question{}
	for rows.Next() {
		var q questionbank.Question
		var optionsJSON string
		if err := rows.Scan(&q.ID, &q.Prompt, &optionsJSON, &q.CorrectIndex, &q.Explanation); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
			return nil, fmt.Errorf("question %s: decode options: %w", q.ID, err)
		}
		set.Questions = append(set.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &set, nil
}

func (s *SQLiteStore) ListQuestionSets(ctx context.Context) ([]QuestionSetSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.title, s.created_at, COUNT(q.id)
		FROM question_sets s
		LEFT JOIN questions q ON q.set_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at DESC, s.rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []QuestionSetSummary{}
	for rows.Next() {
		var sum QuestionSetSummary
		var createdAt int64
		if err := rows.Scan(&sum.ID, &sum.Title, &createdAt, &sum.QuestionCount); err != nil {
			return nil, err
		}
		sum.CreatedAt = time.Unix(0, createdAt).UTC()
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// LatestQuestionSetID returns the most recently saved set.
func (s *SQLiteStore) LatestQuestionSetID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM question_sets ORDER BY created_at DESC, rowid DESC LIMIT 1",
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return id, err
}

func (s *SQLiteStore) DeleteQuestionSet(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Delete questions explicitly; the cascade needs foreign_keys on.
	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE set_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM question_sets WHERE id = ?", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
