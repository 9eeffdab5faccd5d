package event

import (
	"context"
	"testing"

	"github.com/luach/luach/internal/test_utils"
	"github.com/stretchr/testify/assert"
)

func setupTestRepository(t *testing.T) *EventRepoImpl {
	t.Helper()
	db := test_utils.SetupTestDB(t)
	return NewEventRepo(db)
}

func TestRepo_StoreAssignsIncrementingIds(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	first, err := repo.Store(ctx, Event{Title: "one", Start: "2024-03-13T09:00:00", End: "2024-03-13T10:00:00"})
	assert.NoError(t, err)
	second, err := repo.Store(ctx, Event{Title: "two", Start: "2024-03-14T09:00:00", End: "2024-03-14T10:00:00"})
	assert.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestRepo_GetAllEmpty(t *testing.T) {
	repo := setupTestRepository(t)

	events, err := repo.GetAll(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestRepo_GetAllReturnsEveryRow(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	stored := []Event{
		{Title: "Meeting", Start: "2024-03-13T09:00:00", End: "2024-03-13T10:00:00"},
		{Title: "Lunch", Start: "2024-03-13T12:00:00", End: "2024-03-13T13:00:00"},
		{Title: "Review", Start: "2024-03-15T16:00:00", End: "2024-03-15T17:00:00"},
	}
	for _, e := range stored {
		_, err := repo.Store(ctx, e)
		assert.NoError(t, err)
	}

	events, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, events, len(stored))

	byTitle := make(map[string]Event, len(events))
	for _, e := range events {
		byTitle[e.Title] = e
	}
	for _, want := range stored {
		got, ok := byTitle[want.Title]
		assert.True(t, ok, "stored event %q should be listed", want.Title)
		assert.Equal(t, want.Start, got.Start)
		assert.Equal(t, want.End, got.End)
	}
}

func TestRepo_GetByIdReturnsExactRow(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	id, err := repo.Store(ctx, Event{Title: "Meeting", Start: "2024-03-13T09:00:00", End: "2024-03-13T10:00:00"})
	assert.NoError(t, err)

	e, err := repo.GetById(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "Meeting", e.Title)
	assert.Equal(t, "2024-03-13T09:00:00", e.Start)
	assert.Equal(t, "2024-03-13T10:00:00", e.End)
}

func TestRepo_GetByIdNotFound(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.GetById(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepo_DeleteRemovesRow(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	id, err := repo.Store(ctx, Event{Title: "Meeting", Start: "2024-03-13T09:00:00", End: "2024-03-13T10:00:00"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, id))

	_, err = repo.GetById(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepo_DeleteUnknownIdIsNoError(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	_, err := repo.Store(ctx, Event{Title: "Meeting", Start: "2024-03-13T09:00:00", End: "2024-03-13T10:00:00"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, 9999))

	events, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRepo_DuplicateRowsAllowed(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	e := Event{Title: "Meeting", Start: "2024-03-13T09:00:00", End: "2024-03-13T10:00:00"}
	_, err := repo.Store(ctx, e)
	assert.NoError(t, err)
	_, err = repo.Store(ctx, e)
	assert.NoError(t, err)

	events, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
}
