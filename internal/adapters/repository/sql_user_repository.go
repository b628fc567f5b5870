package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

var _ domain.UserRepository = (*SQLUserRepository)(nil)

// SQLUserRepository stores accounts in postgres or sqlite. Queries are
// written with '?' and rebound for the driver.
type SQLUserRepository struct {
	db *sqlx.DB
}

func NewSQLUserRepository(db *sqlx.DB) *SQLUserRepository {
	return &SQLUserRepository{
		db: db,
	}
}

type userRow struct {
	ID             string    `db:"id"`
	Email          string    `db:"email"`
	Name           string    `db:"name"`
	CredentialKind string    `db:"credential_kind"`
	PasswordHash   *string   `db:"password_hash"`
	Provider       *string   `db:"provider"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (row userRow) toDomain() (*domain.User, error) {
	cred, err := domain.CredentialFromFields(row.CredentialKind, row.PasswordHash, row.Provider)
	if err != nil {
		return nil, fmt.Errorf("repository: user %s: %w", row.ID, err)
	}

	return &domain.User{
		ID:         row.ID,
		Email:      row.Email,
		Name:       row.Name,
		Credential: cred,
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}, nil
}

func (r *SQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	kind, hash, provider := user.CredentialFields()

	query := r.db.Rebind(`
		INSERT INTO users (id, email, name, credential_kind, password_hash, provider, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		kind,
		hash,
		provider,
		user.CreatedAt.UTC(),
		user.UpdatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("repository: create user failed: %w", err)
	}

	return nil
}

func (r *SQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email", email)
}

func (r *SQLUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, "id", id)
}

func (r *SQLUserRepository) getOne(ctx context.Context, column, value string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := r.db.Rebind(`
		SELECT id, email, name, credential_kind, password_hash, provider, created_at, updated_at
		FROM users
		WHERE ` + column + ` = ?
	`)

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user by %s failed: %w", column, err)
	}

	return row.toDomain()
}
