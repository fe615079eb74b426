package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaekwang-park/todo-labels/internal/cache"
	"github.com/jaekwang-park/todo-labels/internal/config"
	todohttp "github.com/jaekwang-park/todo-labels/internal/http"
	"github.com/jaekwang-park/todo-labels/internal/repository"
	"github.com/jaekwang-park/todo-labels/internal/service"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

type stores struct {
	todos  repository.TodoRepository
	labels repository.LabelRepository
}

func run(ctx context.Context) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	driver, dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"log_level", cfg.LogLevel,
		"database", driver,
		"cache", cfg.Redis.URL != "",
	)

	st, closeStore, err := openStores(ctx, cfg.DB, driver, dsn, logger)
	if err != nil {
		return err
	}
	defer closeStore.Close()

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, cache will fall through", "error", err)
		}
		cancel()

		st.todos = cache.NewTodoRepository(st.todos, client, cfg.Redis.TTL, logger)
		st.labels = cache.NewLabelRepository(st.labels, client, cfg.Redis.TTL, logger)
		logger.Info("redis cache enabled", "addr", opts.Addr, "ttl", cfg.Redis.TTL)
	}

	// Services
	todoSvc := service.NewTodoService(st.todos)
	labelSvc := service.NewLabelService(st.labels)

	// HTTP Server
	srv := todohttp.NewServer(cfg.ServerPort, cfg.AllowedOrigin, logger, todoSvc, labelSvc)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStores builds the repositories selected by DATABASE_URL. The returned
// closer releases the database pool, if any.
func openStores(ctx context.Context, cfg config.DBConfig, driver, dsn string, logger *slog.Logger) (stores, io.Closer, error) {
	if driver == config.DriverMemory {
		store := repository.NewMemoryStore()
		logger.Info("using in-memory store")
		return stores{todos: store.Todos(), labels: store.Labels()}, nopCloser{}, nil
	}

	db, err := repository.NewDB(ctx, driver, dsn, repository.PoolConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return stores{}, nil, err
	}
	logger.Info("database connected", "driver", driver)

	if cfg.EnsureSchema {
		if err := repository.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return stores{}, nil, err
		}
		logger.Info("database schema ensured")
	}

	return stores{todos: repository.NewSQLTodo(db), labels: repository.NewSQLLabel(db)}, db, nil
}
