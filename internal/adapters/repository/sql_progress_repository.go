package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

var _ domain.ProgressRepository = (*SQLProgressRepository)(nil)

// SQLProgressRepository keeps one row per user holding the completed day IDs
// as a JSON document.
type SQLProgressRepository struct {
	db *sqlx.DB
}

func NewSQLProgressRepository(db *sqlx.DB) *SQLProgressRepository {
	return &SQLProgressRepository{db: db}
}

func (r *SQLProgressRepository) Load(ctx context.Context, userID string) (domain.UserProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`SELECT completed_days FROM reading_progress WHERE user_id = ?`)

	var raw []byte
	if err := r.db.QueryRowxContext(ctx, query, userID).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewUserProgress(), nil
		}
		return domain.UserProgress{}, fmt.Errorf("repository: load progress failed: %w", err)
	}

	var progress domain.UserProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		return domain.UserProgress{}, fmt.Errorf("repository: decode progress for %s: %w", userID, err)
	}
	return progress, nil
}

func (r *SQLProgressRepository) Save(ctx context.Context, userID string, progress domain.UserProgress) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("repository: encode progress: %w", err)
	}

	query := r.db.Rebind(`
		INSERT INTO reading_progress (user_id, completed_days, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET completed_days = excluded.completed_days, updated_at = excluded.updated_at
	`)

	if _, err := r.db.ExecContext(ctx, query, userID, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("repository: save progress failed: %w", err)
	}
	return nil
}
