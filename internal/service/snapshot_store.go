package service

import (
	"context"
	"encoding/json"
	"errors"

	"quiz-board/internal/cache"
	"quiz-board/internal/domain"
	"quiz-board/internal/logger"

	"go.uber.org/zap"
)

// SnapshotSchemaVersion is part of the storage key. Bump it whenever the
// snapshot shape changes so older records are ignored instead of misread.
const SnapshotSchemaVersion = "v1"

// SnapshotStore persists the single resumable game.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	// Load reports false when there is nothing usable to resume.
	Load(ctx context.Context) (*domain.Snapshot, bool)
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}

type snapshotStoreImpl struct {
	cache domain.Cache
	key   string
}

// NewSnapshotStore writes snapshots through the given cache.
// A nil cache yields a store that keeps nothing.
func NewSnapshotStore(c domain.Cache) SnapshotStore {
	if c == nil {
		logger.Get().Warn("SnapshotStore initialized with nil cache. Games will not be resumable.")
		return &noopSnapshotStore{}
	}
	return &snapshotStoreImpl{
		cache: c,
		key:   cache.GenerateCacheKey("game", "snapshot", SnapshotSchemaVersion),
	}
}

func (s *snapshotStoreImpl) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return domain.NewInvalidInputError("cannot save nil snapshot")
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return domain.NewInternalError("failed to marshal snapshot", err)
	}
	if err := s.cache.Set(ctx, s.key, string(data), 0); err != nil {
		return domain.NewStoreUnavailableError(err).WithContext("key", s.key)
	}
	logger.Get().Debug("Snapshot saved", zap.String("key", s.key), zap.String("game_id", snapshot.ID))
	return nil
}

func (s *snapshotStoreImpl) Load(ctx context.Context) (*domain.Snapshot, bool) {
	data, err := s.cache.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("No snapshot to resume", zap.String("key", s.key))
		} else {
			logger.Get().Warn("Failed to read snapshot, starting fresh", zap.String("key", s.key), zap.Error(err))
		}
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		logger.Get().Warn("Discarding unparsable snapshot", zap.String("key", s.key), zap.Error(err))
		return nil, false
	}
	if err := snapshot.Validate(); err != nil {
		logger.Get().Warn("Discarding invalid snapshot", zap.String("key", s.key), zap.Error(err))
		return nil, false
	}
	return &snapshot, true
}

func (s *snapshotStoreImpl) Clear(ctx context.Context) error {
	if err := s.cache.Delete(ctx, s.key); err != nil {
		return domain.NewStoreUnavailableError(err).WithContext("key", s.key)
	}
	return nil
}

func (s *snapshotStoreImpl) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

type noopSnapshotStore struct{}

func (noopSnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error { return nil }

func (noopSnapshotStore) Load(ctx context.Context) (*domain.Snapshot, bool) { return nil, false }

func (noopSnapshotStore) Clear(ctx context.Context) error { return nil }

func (noopSnapshotStore) Ping(ctx context.Context) error { return nil }
