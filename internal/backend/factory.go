package backend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mindful/internal/cache"
	"mindful/internal/kv"
	"mindful/internal/storage"
	"mindful/internal/storage/postgres"
	"mindful/internal/storage/redis"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		result *BackendResult
		err    error
	)
	switch config.Type {
	case MemoryBackend:
		result = &BackendResult{Store: kv.NewMemoryStore()}
		f.logger.Info("Initialized memory backend")
	case FileBackend:
		result, err = f.createFileBackend(config)
	case SQLiteBackend:
		result, err = f.createSQLiteBackend(config)
	case RedisBackend:
		result, err = f.createRedisBackend(config)
	case PostgresBackend:
		result, err = f.createPostgresBackend(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, err
	}

	if config.CacheTTL > 0 {
		result = f.withCache(result, config)
	}
	return result, nil
}

func (f *DefaultFactory) createFileBackend(config Config) (*BackendResult, error) {
	dataDir := config.DataDirectory
	if dataDir == "" {
		dataDir = "data" // Default directory
	}

	store, err := kv.NewFileStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	f.logger.Info("Initialized file backend", "data_directory", dataDir)
	return &BackendResult{Store: store, Cleanup: store.Close}, nil
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*BackendResult, error) {
	store, err := storage.NewSQLiteStore(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return &BackendResult{Store: store, Cleanup: store.Close}, nil
}

func (f *DefaultFactory) createRedisBackend(config Config) (*BackendResult, error) {
	store, err := redis.New(redis.Config{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis store: %w", err)
	}

	f.logger.Info("Initialized Redis backend", "addr", config.RedisAddr, "db", config.RedisDB)
	return &BackendResult{Store: store, Cleanup: store.Close}, nil
}

func (f *DefaultFactory) createPostgresBackend(ctx context.Context, config Config) (*BackendResult, error) {
	store, err := postgres.New(ctx, config.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Postgres store: %w", err)
	}

	f.logger.Info("Initialized Postgres backend")
	return &BackendResult{Store: store, Cleanup: store.Close}, nil
}

// withCache puts an LRU read cache in front of the store and sweeps expired
// entries in the background until cleanup.
func (f *DefaultFactory) withCache(result *BackendResult, config Config) *BackendResult {
	lru := cache.NewLRUCache[[]byte](config.CacheSize, config.CacheTTL)
	manager := cache.NewManager(f.logger)
	manager.Register(lru)
	manager.StartCleanup(sweepInterval(config.CacheTTL))

	store := kv.NewCachedStore(result.Store, lru)
	f.logger.Info("Enabled read cache", "ttl", config.CacheTTL, "size", config.CacheSize)

	return &BackendResult{
		Store: store,
		Cleanup: func() error {
			manager.Stop()
			return store.Close()
		},
	}
}

func sweepInterval(ttl time.Duration) time.Duration {
	return max(ttl, time.Second)
}
