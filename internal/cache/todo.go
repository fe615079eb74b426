package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaekwang-park/todo-labels/internal/model"
	"github.com/jaekwang-park/todo-labels/internal/repository"
)

const todoAllField = "all"

// TodoRepository wraps a repository.TodoRepository with a Redis-backed
// read-through cache. Every successful write moves the todo namespace to a
// new version, and a label deletion does the same since hydrated todos embed
// label names.
type TodoRepository struct {
	base  repository.TodoRepository
	cache versionedCache
}

func NewTodoRepository(base repository.TodoRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *TodoRepository {
	if base == nil {
		panic("cache.NewTodoRepository: base repository is nil")
	}
	return &TodoRepository{base: base, cache: newVersionedCache(client, ttl, logger)}
}

func (c *TodoRepository) Create(ctx context.Context, payload model.CreateTodo) (model.TodoEntity, error) {
	todo, err := c.base.Create(ctx, payload)
	if err != nil {
		return model.TodoEntity{}, err
	}

	c.cache.invalidate(ctx, todoNS)
	return todo, nil
}

func (c *TodoRepository) Find(ctx context.Context, id int64) (model.TodoEntity, error) {
	version, ok := c.cache.version(ctx, todoNS)
	key := todoNS.key(version, strconv.FormatInt(id, 10))

	var todo model.TodoEntity
	if ok && c.cache.load(ctx, key, &todo) {
		return todo, nil
	}

	todo, err := c.base.Find(ctx, id)
	if err != nil {
		return model.TodoEntity{}, err
	}

	if ok {
		c.cache.store(ctx, key, todo)
	}
	return todo, nil
}

func (c *TodoRepository) All(ctx context.Context) ([]model.TodoEntity, error) {
	version, ok := c.cache.version(ctx, todoNS)
	key := todoNS.key(version, todoAllField)

	var todos []model.TodoEntity
	if ok && c.cache.load(ctx, key, &todos) {
		return todos, nil
	}

	todos, err := c.base.All(ctx)
	if err != nil {
		return nil, err
	}

	if ok {
		c.cache.store(ctx, key, todos)
	}
	return todos, nil
}

func (c *TodoRepository) Update(ctx context.Context, id int64, payload model.UpdateTodo) (model.TodoEntity, error) {
	todo, err := c.base.Update(ctx, id, payload)
	if err != nil {
		return model.TodoEntity{}, err
	}

	c.cache.invalidate(ctx, todoNS)
	return todo, nil
}

func (c *TodoRepository) Delete(ctx context.Context, id int64) error {
	if err := c.base.Delete(ctx, id); err != nil {
		return err
	}

	c.cache.invalidate(ctx, todoNS)
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
