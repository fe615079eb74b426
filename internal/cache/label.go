package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaekwang-park/todo-labels/internal/model"
	"github.com/jaekwang-park/todo-labels/internal/repository"
)

const labelAllField = "all"

// LabelRepository caches the label listing.
type LabelRepository struct {
	base  repository.LabelRepository
	cache versionedCache
}

func NewLabelRepository(base repository.LabelRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *LabelRepository {
	if base == nil {
		panic("cache.NewLabelRepository: base repository is nil")
	}
	return &LabelRepository{base: base, cache: newVersionedCache(client, ttl, logger)}
}

func (c *LabelRepository) Create(ctx context.Context, payload model.CreateLabel) (model.Label, error) {
	label, err := c.base.Create(ctx, payload)
	if err != nil {
		return model.Label{}, err
	}

	c.cache.invalidate(ctx, labelNS)
	return label, nil
}

func (c *LabelRepository) All(ctx context.Context) ([]model.Label, error) {
	version, ok := c.cache.version(ctx, labelNS)
	key := labelNS.key(version, labelAllField)

	var labels []model.Label
	if ok && c.cache.load(ctx, key, &labels) {
		return labels, nil
	}

	labels, err := c.base.All(ctx)
	if err != nil {
		return nil, err
	}

	if ok {
		c.cache.store(ctx, key, labels)
	}
	return labels, nil
}

// Delete also invalidates cached todos, which may still reference the label.
func (c *LabelRepository) Delete(ctx context.Context, id int64) error {
	if err := c.base.Delete(ctx, id); err != nil {
		return err
	}

	c.cache.invalidate(ctx, labelNS, todoNS)
	return nil
}

var _ repository.LabelRepository = (*LabelRepository)(nil)
