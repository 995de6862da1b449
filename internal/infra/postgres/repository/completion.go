package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
	"github.com/haneulbit/korean-vocab-bot/internal/infra/postgres"
)

// CompletionRepository is the durable completion store. It keeps the set of
// completed session ids and one progress record per session; nothing else is
// persisted by the application.
type CompletionRepository struct {
	db postgres.DBTX
	tr *postgres.Transactor
}

// NewCompletionRepository creates a new CompletionRepository.
func NewCompletionRepository(db postgres.DBTX, tr *postgres.Transactor) *CompletionRepository {
	return &CompletionRepository{db: db, tr: tr}
}

// GetCompletedIDs retrieves the identifiers of all completed sessions.
func (r *CompletionRepository) GetCompletedIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT session_id FROM completed_sessions`)
	if err != nil {
		return nil, fmt.Errorf("get completed ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan completed id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetCompletedIDs replaces the stored completed-set with the given ids.
func (r *CompletionRepository) SetCompletedIDs(ctx context.Context, ids []string) error {
	return r.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM completed_sessions WHERE session_id <> ALL($1::text[])`, ids); err != nil {
			return fmt.Errorf("delete stale completed ids: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO completed_sessions (session_id)
			SELECT unnest($1::text[])
			ON CONFLICT (session_id) DO NOTHING
		`, ids); err != nil {
			return fmt.Errorf("insert completed ids: %w", err)
		}

		return nil
	})
}

// GetProgress retrieves the progress record for a session. A session without
// a stored record yields the zero record, not an error.
func (r *CompletionRepository) GetProgress(ctx context.Context, sessionID string) (entities.SessionProgress, error) {
	query := `
		SELECT words_learned, words_reviewed, accuracy
		FROM session_progress
		WHERE session_id = $1
	`

	var p entities.SessionProgress
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&p.WordsLearned,
		&p.WordsReviewed,
		&p.Accuracy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.SessionProgress{}, nil
		}
		return entities.SessionProgress{}, fmt.Errorf("get progress: %w", err)
	}

	return p, nil
}

// SetProgress creates or overwrites the progress record for a session.
func (r *CompletionRepository) SetProgress(ctx context.Context, sessionID string, p entities.SessionProgress) error {
	query := `
		INSERT INTO session_progress (session_id, words_learned, words_reviewed, accuracy, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (session_id) DO UPDATE SET
			words_learned = EXCLUDED.words_learned,
			words_reviewed = EXCLUDED.words_reviewed,
			accuracy = EXCLUDED.accuracy,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, sessionID, p.WordsLearned, p.WordsReviewed, p.Accuracy)
	if err != nil {
		return fmt.Errorf("set progress: %w", err)
	}

	return nil
}

// ClearAll removes the completed-set and every progress record.
func (r *CompletionRepository) ClearAll(ctx context.Context) error {
	return r.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM session_progress`); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM completed_sessions`); err != nil {
			return fmt.Errorf("clear completed sessions: %w", err)
		}
		return nil
	})
}
