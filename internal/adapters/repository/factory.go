package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

type Options struct {
	Backend        string
	PostgresDriver string
	PostgresDSN    string
	SQLitePath     string
}

// Repositories is the storage wiring the API runs with. DB is nil for the
// memory backend.
type Repositories struct {
	Backend  string
	Users    domain.UserRepository
	Progress domain.ProgressRepository
	DB       *sqlx.DB
}

func NewRepositories(ctx context.Context, opts Options, logger *zap.SugaredLogger) (*Repositories, error) {
	switch opts.Backend {
	case BackendMemory:
		logger.Warnw("using in-memory storage, data is lost on restart")
		return &Repositories{
			Backend:  BackendMemory,
			Users:    NewInMemoryUserRepository(),
			Progress: NewInMemoryProgressRepository(),
		}, nil

	case BackendPostgres, BackendSQLite:
		var (
			db  *sqlx.DB
			err error
		)
		if opts.Backend == BackendPostgres {
			db, err = OpenPostgres(opts.PostgresDriver, opts.PostgresDSN)
		} else {
			db, err = OpenSQLite(opts.SQLitePath)
		}
		if err != nil {
			return nil, err
		}

		if err := Migrate(ctx, db, opts.Backend); err != nil {
			db.Close()
			return nil, err
		}

		logger.Infow("storage ready", "backend", opts.Backend)
		return &Repositories{
			Backend:  opts.Backend,
			Users:    NewSQLUserRepository(db),
			Progress: NewSQLProgressRepository(db),
			DB:       db,
		}, nil
	}

	return nil, fmt.Errorf("repository: unknown storage backend %q", opts.Backend)
}

// WithCache puts a redis read-through cache in front of progress reads.
func (r *Repositories) WithCache(rdb *redis.Client, logger *zap.SugaredLogger) {
	if rdb == nil {
		return
	}
	r.Progress = NewCachedProgressRepository(r.Progress, rdb, logger)
}

func (r *Repositories) Ping(ctx context.Context) error {
	if r.DB == nil {
		return nil
	}
	return r.DB.PingContext(ctx)
}

func (r *Repositories) Close() error {
	if r.DB == nil {
		return nil
	}
	return r.DB.Close()
}
