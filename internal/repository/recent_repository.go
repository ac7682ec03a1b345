package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_searches (
	owner    TEXT    NOT NULL,
	position INTEGER NOT NULL,
	term     TEXT    NOT NULL,
	PRIMARY KEY (owner, position)
)`

// RecentSearchRepository syncs recent searches through Postgres, keyed by
// owner (the device id), so they follow a user across reinstalls.
type RecentSearchRepository struct {
	db    *pgxpool.Pool
	owner string
}

func NewRecentSearchRepository(db *pgxpool.Pool, owner string) *RecentSearchRepository {
	return &RecentSearchRepository{db: db, owner: owner}
}

// EnsureSchema creates the table if it does not exist.
func (r *RecentSearchRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create recent_searches: %w", err)
	}
	return nil
}

// RunAtomic executes a function within a transaction
func (r *RecentSearchRepository) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback is a no-op once Commit succeeds.
	defer tx.Rollback(ctx)

	ctx = context.WithValue(ctx, txKey{}, tx)

	if err := fn(ctx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type txKey struct{}

func (r *RecentSearchRepository) getExecutor(ctx context.Context) PgxExecutor {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.db
}

// PgxExecutor is an interface that matches both *pgx.Conn/Pool and pgx.Tx
type PgxExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LoadRecent returns the owner's terms, newest first.
func (r *RecentSearchRepository) LoadRecent(ctx context.Context) ([]string, error) {
	rows, err := r.getExecutor(ctx).Query(ctx, "SELECT term FROM recent_searches WHERE owner = $1 ORDER BY position", r.owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent searches: %w", err)
	}
	terms, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent searches: %w", err)
	}
	return terms, nil
}

// SaveRecent replaces the owner's list in one transaction.
func (r *RecentSearchRepository) SaveRecent(ctx context.Context, terms []string) error {
	return r.RunAtomic(ctx, func(ctx context.Context) error {
		if err := r.deleteAll(ctx); err != nil {
			return err
		}
		for i, term := range terms {
			_, err := r.getExecutor(ctx).Exec(ctx, "INSERT INTO recent_searches (owner, position, term) VALUES ($1, $2, $3)", r.owner, i, term)
			if err != nil {
				return fmt.Errorf("failed to insert recent search: %w", err)
			}
		}
		return nil
	})
}

func (r *RecentSearchRepository) ClearRecent(ctx context.Context) error {
	return r.deleteAll(ctx)
}

func (r *RecentSearchRepository) deleteAll(ctx context.Context) error {
	_, err := r.getExecutor(ctx).Exec(ctx, "DELETE FROM recent_searches WHERE owner = $1", r.owner)
	if err != nil {
		return fmt.Errorf("failed to clear recent searches: %w", err)
	}
	return nil
}
