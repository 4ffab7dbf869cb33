// Package repomanager builds the process-lifetime stores for the configured
// identity backend, runs schema migrations and loads the persona seed.
package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/dbx"
	"github.com/dmitrijs2005/skillswap/internal/server/migrations"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/conversations"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type RepositoryManager interface {
	Users() users.Repository
	Conversations() conversations.Repository
	Close() error
}

type manager struct {
	users         users.Repository
	conversations conversations.Repository
	db            *sql.DB
}

func (m *manager) Users() users.Repository                 { return m.users }
func (m *manager) Conversations() conversations.Repository { return m.conversations }

func (m *manager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

// seams for tests
var (
	openSQLite     = dbx.OpenSQLite
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
)

// New constructs the stores for backend ("memory" or "sqlite"). The
// conversation store is always in memory.
func New(ctx context.Context, backend, dsn string) (RepositoryManager, error) {
	m := &manager{conversations: conversations.NewMemoryRepository()}

	switch backend {
	case "", BackendMemory:
		m.users = users.NewMemoryRepository()
	case BackendSQLite:
		db, err := openSQLite(dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		m.db = db
		m.users = users.NewSQLiteRepository(db)
	default:
		return nil, fmt.Errorf("unknown identity backend %q", backend)
	}

	return m, nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Seed inserts the given users in order. Users whose email is already taken
// are skipped so a shared database can be seeded more than once.
func Seed(ctx context.Context, repo users.Repository, list []*models.User) (int, error) {
	added := 0
	for _, u := range list {
		if _, err := repo.Add(ctx, u); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				continue
			}
			return added, fmt.Errorf("seed %s: %w", u.Email, err)
		}
		added++
	}
	return added, nil
}
