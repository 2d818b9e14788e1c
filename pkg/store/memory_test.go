package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/testutils"
)

func newRecord(text string) *models.CommandRecord {
	return &models.CommandRecord{
		UUID:        uuid.New(),
		CreatedAt:   time.Now().UTC(),
		CommandText: text,
		Action:      "view_attendance",
		Success:     true,
		Language:    "en",
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore(10)
	ctx := context.Background()

	record := newRecord("show my attendance")
	require.NoError(t, s.Put(ctx, record))

	got, err := s.Get(ctx, record.UUID)
	require.NoError(t, err)
	assert.Equal(t, record.CommandText, got.CommandText)
	assert.Equal(t, record.UUID, got.UUID)
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore(10)

	_, err := s.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, newRecord("first")))
	require.NoError(t, s.Put(ctx, newRecord("second")))
	require.NoError(t, s.Put(ctx, newRecord("third")))

	records, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "third", records[0].CommandText)
	assert.Equal(t, "second", records[1].CommandText)
}

func TestMemoryStoreBounded(t *testing.T) {
	s := NewMemoryStore(3)
	ctx := context.Background()

	oldest := newRecord("oldest")
	require.NoError(t, s.Put(ctx, oldest))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Put(ctx, newRecord("newer")))
	}

	records, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = s.Get(ctx, oldest.UUID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryStorePutNil(t *testing.T) {
	s := NewMemoryStore(3)
	assert.Error(t, s.Put(context.Background(), nil))
}

func TestMemoryStoreBulk(t *testing.T) {
	s := NewMemoryStore(50)
	ctx := context.Background()

	records := testutils.GenerateTestRecords(25)
	for i := range records {
		require.NoError(t, s.Put(ctx, &records[i]))
	}

	listed, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 25)

	got, err := s.Get(ctx, records[10].UUID)
	require.NoError(t, err)
	assert.Equal(t, records[10].CommandText, got.CommandText)
}
