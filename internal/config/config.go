package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

var validEnvs = map[string]bool{
	"local": true,
	"alpha": true,
	"beta":  true,
	"prod":  true,
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	ServerPort    string
	AppEnv        string
	LogLevel      string
	AllowedOrigin string
	DB            DBConfig
	Redis         RedisConfig
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", c.ServerPort, err)
	}
	if !validEnvs[c.AppEnv] {
		return fmt.Errorf("invalid APP_ENV %q: must be one of local, alpha, beta, prod", c.AppEnv)
	}
	if c.AllowedOrigin == "" {
		return fmt.Errorf("ALLOWED_ORIGIN is required")
	}
	if u, err := url.Parse(c.AllowedOrigin); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid ALLOWED_ORIGIN %q: must be an absolute http(s) URL", c.AllowedOrigin)
	}
	if c.DB.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if _, _, err := c.DB.DSN(); err != nil {
		return err
	}
	if c.Redis.URL != "" {
		if _, err := redis.ParseURL(c.Redis.URL); err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
	}
	return nil
}

type DBConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	EnsureSchema    bool
}

// DSN resolves DATABASE_URL into a database/sql driver name and the
// connection string that driver expects. memory:// yields DriverMemory and
// an empty dsn.
func (d DBConfig) DSN() (driver, dsn string, err error) {
	scheme, rest, ok := strings.Cut(d.URL, ":")
	if !ok {
		return "", "", fmt.Errorf("invalid DATABASE_URL %q: missing scheme", d.URL)
	}

	switch strings.ToLower(scheme) {
	case "memory":
		return DriverMemory, "", nil
	case "postgres", "postgresql":
		if _, err := url.Parse(d.URL); err != nil {
			return "", "", fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		return DriverPostgres, d.URL, nil
	case "mysql":
		dsn, err := mysqlDSN(d.URL)
		if err != nil {
			return "", "", err
		}
		return DriverMySQL, dsn, nil
	case "sqlite":
		path := strings.TrimPrefix(rest, "//")
		if path == "" {
			return "", "", fmt.Errorf("invalid DATABASE_URL %q: missing sqlite path", d.URL)
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return DriverSQLite, path + sep + "_pragma=foreign_keys(1)", nil
	default:
		return "", "", fmt.Errorf("invalid DATABASE_URL: unsupported scheme %q", scheme)
	}
}

func mysqlDSN(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = net.JoinHostPort(u.Hostname(), "3306")
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.ParseTime = true
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	for key, values := range u.Query() {
		if len(values) > 0 {
			if cfg.Params == nil {
				cfg.Params = make(map[string]string)
			}
			cfg.Params[key] = values[0]
		}
	}
	if cfg.DBName == "" {
		return "", fmt.Errorf("invalid DATABASE_URL: missing mysql database name")
	}
	return cfg.FormatDSN(), nil
}

type RedisConfig struct {
	URL string
	TTL time.Duration
}

// LoadDotEnv reads KEY=value pairs from path into the process environment.
// Variables already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func Load() (Config, error) {
	maxOpen, err := envInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := envInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, err
	}
	lifetime, err := envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	if err != nil {
		return Config{}, err
	}
	ttl, err := envDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ServerPort:    envOrDefault("SERVER_PORT", "8080"),
		AppEnv:        envOrDefault("APP_ENV", "local"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
		DB: DBConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    maxOpen,
			MaxIdleConns:    maxIdle,
			ConnMaxLifetime: lifetime,
			EnsureSchema:    strings.EqualFold(envOrDefault("DB_ENSURE_SCHEMA", "true"), "true"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
			TTL: ttl,
		},
	}, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, v)
	}
	return n, nil
}

func envDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative duration", key, v)
	}
	return d, nil
}
