// Package cli provides the initialization shared by the mindful commands:
// logging, configuration, store and journal setup, and signal handling.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mindful/internal/amqp"
	"mindful/internal/backend"
	"mindful/internal/config"
	"mindful/internal/kv"
	"mindful/internal/ledger"
	"mindful/internal/log"
)

// SetupLogger initializes structured logging on stderr at the given level.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	cfg := log.DefaultConfig()
	cfg.Level = lvl
	cfg.Component = log.ComponentCLI

	logger := log.New(cfg)
	log.SetDefault(logger)
	if err != nil {
		logger.Warn("Unknown log level, using info", log.FieldError, err)
	}
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// Session bundles an open journal with the resources behind it.
type Session struct {
	Journal  *ledger.Journal
	Store    kv.Store
	Notifier *amqp.Client
	Seeded   ledger.SeedReport

	backend *backend.BackendResult
}

// Close releases the notifier and the store.
func (s *Session) Close() error {
	var errs []error
	if s.Notifier != nil {
		if err := s.Notifier.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}
	if err := s.backend.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	return errors.Join(errs...)
}

// OpenStore creates the store selected by cfg.
func OpenStore(ctx context.Context, logger *log.Logger, cfg *config.Config) (*backend.BackendResult, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	factory := backend.NewFactory(logger.WithComponent(log.ComponentBackend).Logger)
	return factory.CreateBackend(ctx, backendCfg)
}

// OpenNotifier connects the change feed. A broker that cannot be reached
// only disables publishing.
func OpenNotifier(logger *log.Logger, cfg *config.Config) *amqp.Client {
	if !cfg.AMQPEnabled() {
		return nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("Failed to initialize AMQP client, continuing without change feed", log.FieldError, err)
		return nil
	}
	logger.Info("Initialized AMQP client", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	return client
}

// OpenJournal opens the store, the optional change feed and the journal,
// seeding defaults when cfg asks for it.
func OpenJournal(ctx context.Context, logger *log.Logger, cfg *config.Config) (*Session, error) {
	result, err := OpenStore(ctx, logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Session{Store: result.Store, backend: result}
	opts := []ledger.Option{
		ledger.WithKeys(kv.NewKeys(cfg.KeyPrefix)),
		ledger.WithLogger(logger),
	}
	if s.Notifier = OpenNotifier(logger, cfg); s.Notifier != nil {
		opts = append(opts, ledger.WithNotifier(s.Notifier))
	}

	s.Journal, err = ledger.Open(ctx, result.Store, opts...)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if cfg.SeedOnStart {
		s.Seeded, err = s.Journal.Seed(ctx)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("seed journal: %w", err)
		}
		if s.Seeded.Any() {
			logger.Info("Seeded journal defaults", log.FieldCount, len(s.Seeded.Seeded))
		}
	}
	return s, nil
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context that will be cancelled on shutdown signals,
// and a channel that signals when shutdown is complete.
func GracefulShutdown(logger *log.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		cancel()

		finished := make(chan struct{})
		go func() {
			if cleanup != nil {
				cleanup()
			}
			close(finished)
		}()

		select {
		case <-finished:
			logger.Info("Shutdown complete")
		case <-time.After(timeout):
			logger.Warn("Shutdown timeout reached")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
