package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/testutils"
)

// setupPostgres connects to the test database and returns a clean store.
// Skips when no postgres instance is reachable at the configured DSN.
func setupPostgres(t *testing.T) (*PostgresStore, *bun.DB) {
	t.Helper()

	cfg := testutils.NewTestConfig()
	cfg.Store.Postgres.DSN = testutils.GetDSN()

	db := NewPostgresConn(cfg.Store.Postgres.DSN)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Skipf("postgres not available at %s: %v", cfg.Store.Postgres.DSN, err)
	}
	testutils.SetUpDBLogging(db, log)

	ps, err := NewPostgresStore(db)
	require.NoError(t, err)

	_, err = db.NewTruncateTable().Model((*PgCommandRecord)(nil)).Exec(ctx)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = ps.Close()
	})
	return ps, db
}

func TestPostgresStorePutGet(t *testing.T) {
	ps, _ := setupPostgres(t)
	ctx := context.Background()

	record := newRecord("clock me in " + testutils.GenerateRandomString(8))
	require.NoError(t, ps.Put(ctx, record))

	got, err := ps.Get(ctx, record.UUID)
	require.NoError(t, err)
	assert.Equal(t, record.UUID, got.UUID)
	assert.Equal(t, record.CommandText, got.CommandText)
	assert.Equal(t, record.Action, got.Action)
	assert.Equal(t, record.Language, got.Language)
}

func TestPostgresStoreGetNotFound(t *testing.T) {
	ps, _ := setupPostgres(t)

	_, err := ps.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPostgresStoreListNewestFirst(t *testing.T) {
	ps, _ := setupPostgres(t)
	ctx := context.Background()

	records := testutils.GenerateTestRecords(10)
	for i := range records {
		require.NoError(t, ps.Put(ctx, &records[i]))
	}

	listed, err := ps.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, listed, 5)
	assert.Equal(t, records[len(records)-1].UUID, listed[0].UUID)
}

func TestPostgresStorePurgeDeleted(t *testing.T) {
	ps, db := setupPostgres(t)
	ctx := context.Background()

	records := testutils.GenerateTestRecords(4)
	for i := range records {
		require.NoError(t, ps.Put(ctx, &records[i]))
	}

	// Soft delete one row, then purge it for real.
	_, err := db.NewDelete().
		Model((*PgCommandRecord)(nil)).
		Where("uuid = ?", records[0].UUID).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, ps.PurgeDeleted(ctx))

	count, err := db.NewSelect().
		Model((*PgCommandRecord)(nil)).
		WhereAllWithDeleted().
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	listed, err := ps.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestPostgresStorePutNil(t *testing.T) {
	ps, _ := setupPostgres(t)
	assert.Error(t, ps.Put(context.Background(), nil))
}
