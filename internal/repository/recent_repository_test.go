package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsanano/shop-client/internal/recent"
	"fsanano/shop-client/internal/repository"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	require.NoError(t, err, "Unable to connect to database")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(context.Background()), "Unable to ping database")
	return pool
}

func TestRecentSearchRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	repo := repository.NewRecentSearchRepository(pool, "test-device")
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.ClearRecent(ctx))

	require.NoError(t, repo.SaveRecent(ctx, []string{"bag", "shoes"}))
	terms, err := repo.LoadRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bag", "shoes"}, terms)

	// Replacing shrinks the list rather than appending.
	require.NoError(t, repo.SaveRecent(ctx, []string{"hat"}))
	terms, err = repo.LoadRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hat"}, terms)

	require.NoError(t, repo.ClearRecent(ctx))
	terms, err = repo.LoadRecent(ctx)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestRecentSearchRepository_BacksList(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	repo := repository.NewRecentSearchRepository(pool, "test-device-list")
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.ClearRecent(ctx))

	l := recent.New(repo, 2)
	for _, term := range []string{"a", "b", "a", "c"} {
		require.NoError(t, l.Save(ctx, term))
	}

	reloaded := recent.New(repo, 2)
	reloaded.Load(ctx)
	assert.Equal(t, []string{"c", "a"}, reloaded.Terms())
}
