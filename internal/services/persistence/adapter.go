package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/achievement"
	"github.com/mcoot/pocketcasino/internal/storage"
)

// Adapter reads and writes the player record through a storage backend
type Adapter struct {
	storage storage.Storage
	key     string
	logger  *slog.Logger
}

// NewAdapter creates an adapter saving under key (StateKey when empty)
func NewAdapter(st storage.Storage, key string, logger *slog.Logger) *Adapter {
	if key == "" {
		key = StateKey
	}
	return &Adapter{
		storage: st,
		key:     key,
		logger:  logger,
	}
}

// Key returns the storage key in use
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the saved record, or the initial record when nothing usable
// is stored. It never fails; problems are logged and the session starts fresh.
func (a *Adapter) Load(ctx context.Context) *model.Progression {
	data, err := a.storage.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Info("no saved state, starting fresh", slog.String("key", a.key))
		} else {
			a.logger.Warn("failed to read saved state, starting fresh",
				slog.String("key", a.key),
				slog.String("error", err.Error()),
			)
		}
		return Initial()
	}

	p, err := Decode(data)
	if err != nil {
		a.logger.Warn("discarding malformed saved state",
			slog.String("key", a.key),
			slog.String("error", err.Error()),
		)
		return Initial()
	}

	a.logger.Debug("loaded saved state",
		slog.String("key", a.key),
		slog.Int64("coins", p.Coins),
	)
	return p
}

// Save writes the record, replacing whatever was stored
func (a *Adapter) Save(ctx context.Context, p *model.Progression) error {
	data, err := Encode(p)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := a.storage.Set(ctx, a.key, data); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Initial returns the first-run record with a locked catalog
func Initial() *model.Progression {
	return model.NewProgression(achievement.Catalog())
}
