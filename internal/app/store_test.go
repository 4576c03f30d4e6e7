package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"quiz-board/internal/config"
	"quiz-board/internal/domain"
	"quiz-board/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSnapshotCache_None(t *testing.T) {
	c, closeFn, err := OpenSnapshotCache(context.Background(), &config.Config{Store: config.StoreConfig{Backend: config.StoreNone}})
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, closeFn())
}

func TestOpenSnapshotCache_Unknown(t *testing.T) {
	_, _, err := OpenSnapshotCache(context.Background(), &config.Config{Store: config.StoreConfig{Backend: "etcd"}})
	assert.Error(t, err)
}

func TestOpenSnapshotCache_Redis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, _, err := OpenSnapshotCache(ctx, &config.Config{Store: config.StoreConfig{Backend: config.StoreRedis}})
	assert.Error(t, err, "an empty redis address is rejected")
}

func TestOpenSnapshotCache_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Store: config.StoreConfig{
		Backend:     config.StoreSQLite,
		DSN:         "file:" + filepath.Join(t.TempDir(), "board.db"),
		AutoMigrate: true,
	}}

	c, closeFn, err := OpenSnapshotCache(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", "v1", 0))
	require.NoError(t, c.Set(ctx, "k", "v2", 0))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, c.Ping(ctx))
}

// A game saved through SQLite survives a restart of the process.
func TestSQLiteSnapshotResume(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Store: config.StoreConfig{
		Backend:     config.StoreSQLite,
		DSN:         "file:" + filepath.Join(t.TempDir(), "board.db"),
		AutoMigrate: true,
	}}
	board := func() domain.Board {
		return domain.Board{
			{Name: "History", Questions: []domain.Question{
				domain.NewChoiceQuestion("Which year?", 3, []string{"A", "B", "C", "D"}, 2),
			}},
		}
	}

	c, closeFn, err := OpenSnapshotCache(ctx, cfg)
	require.NoError(t, err)
	game := service.NewGameService(ctx, boardSource(board), service.NewSnapshotStore(c))
	_, _ = game.ConfirmNames(ctx, "Ada", "Linus")
	_, _ = game.OpenQuestion(ctx, 0, 0)
	_, _ = game.SubmitAnswer(ctx, 2)
	_, _ = game.CloseQuestion(ctx)
	require.NoError(t, closeFn())

	c, closeFn, err = OpenSnapshotCache(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()
	resumed := service.NewGameService(ctx, boardSource(board), service.NewSnapshotStore(c)).State()

	assert.Equal(t, domain.ModeOverview, resumed.Mode)
	assert.Equal(t, 3, resumed.Scores.Player1)
	assert.Equal(t, domain.Player2, resumed.ActivePlayer)
	assert.Equal(t, "Linus", resumed.PlayerNames.Player2)
	assert.True(t, resumed.AllAnswered)
}

type boardSource func() domain.Board

func (f boardSource) Board() domain.Board { return f() }
