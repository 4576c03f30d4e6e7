package service

import (
	"context"
	"errors"
	"testing"

	"quiz-board/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotKey = "quizboard:game:snapshot:v1"

func sampleSnapshot() *domain.Snapshot {
	board := testBoard()
	board[0].Questions[1].Answered = true
	return &domain.Snapshot{
		ID:           "01HZY3Q4B8J6T2W0N6V3XK9F7D",
		Categories:   board,
		Scores:       domain.Scores{Player1: 3, Player2: 0},
		ActivePlayer: domain.Player2,
		PlayerNames:  domain.PlayerNames{Player1: "Ada", Player2: "Linus"},
	}
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache()
	store := NewSnapshotStore(c)

	want := sampleSnapshot()
	require.NoError(t, store.Save(ctx, want))
	assert.Contains(t, c.data, snapshotKey)

	got, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear(ctx))
	_, ok = store.Load(ctx)
	assert.False(t, ok)
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(newMemoryCache())

	first := sampleSnapshot()
	require.NoError(t, store.Save(ctx, first))

	second := sampleSnapshot()
	second.Scores.Player2 = 5
	second.ActivePlayer = domain.Player1
	require.NoError(t, store.Save(ctx, second))

	got, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestSnapshotStore_LoadAbsent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(c *memoryCache)
	}{
		{"no record", func(c *memoryCache) {}},
		{"empty record", func(c *memoryCache) { c.data[snapshotKey] = "" }},
		{"unparsable record", func(c *memoryCache) { c.data[snapshotKey] = "{not json" }},
		{"wrong shape", func(c *memoryCache) { c.data[snapshotKey] = `{"scores": "lots"}` }},
		{"invalid active player", func(c *memoryCache) {
			c.data[snapshotKey] = `{"id":"x","categories":[{"name":"a","questions":[]}],"activePlayer":7}`
		}},
		{"invalid question", func(c *memoryCache) {
			c.data[snapshotKey] = `{"id":"x","categories":[{"name":"a","questions":[{"prompt":"p","pointValue":9,"kind":"choice","choice":{"options":["a"],"correctIndex":0}}]}],"activePlayer":1}`
		}},
		{"store failure", func(c *memoryCache) { c.getErr = errors.New("connection reset") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newMemoryCache()
			tt.setup(c)
			snapshot, ok := NewSnapshotStore(c).Load(ctx)
			assert.False(t, ok)
			assert.Nil(t, snapshot)
		})
	}
}

func TestSnapshotStore_OldSchemaIgnored(t *testing.T) {
	c := newMemoryCache()
	c.data["quizboard:game:snapshot:v0"] = `{"id":"old"}`

	_, ok := NewSnapshotStore(c).Load(context.Background())
	assert.False(t, ok)
}

func TestSnapshotStore_SaveErrors(t *testing.T) {
	ctx := context.Background()

	c := newMemoryCache()
	c.setErr = errors.New("disk full")
	err := NewSnapshotStore(c).Save(ctx, sampleSnapshot())
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeStoreUnavailable, domainErr.Code)
	assert.ErrorIs(t, err, c.setErr)

	err = NewSnapshotStore(newMemoryCache()).Save(ctx, nil)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}

func TestNoopSnapshotStore(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(nil)

	assert.NoError(t, store.Save(ctx, sampleSnapshot()))
	_, ok := store.Load(ctx)
	assert.False(t, ok)
	assert.NoError(t, store.Clear(ctx))
	assert.NoError(t, store.Ping(ctx))
}
