// Package store persists products, goals and leads in an embedded Badger
// database. Each collection lives under one key as a JSON array, and every
// mutation rewrites the whole array inside a single read-write transaction.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/launchplanner/launchplanner-server/internal/domain"
)

// EventEmitter is the interface for emitting SSE events.
// Store uses this to broadcast changes without depending on SSE implementation details.
type EventEmitter interface {
	Emit(event any)
}

// NoopEmitter is a no-op implementation of EventEmitter for testing.
type NoopEmitter struct{}

// Emit implements EventEmitter.Emit as a no-op.
func (NoopEmitter) Emit(_ any) {}

// NewNoopEmitter creates a new no-op emitter for testing.
func NewNoopEmitter() EventEmitter {
	return NoopEmitter{}
}

// OperationRecorder receives one call per finished store operation.
// *metrics.Metrics satisfies it.
type OperationRecorder interface {
	RecordStoreOp(collection, op, result string)
}

type noopRecorder struct{}

func (noopRecorder) RecordStoreOp(string, string, string) {}

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// SSE event emitter for broadcasting changes.
	eventEmitter EventEmitter
	metrics      OperationRecorder

	now func() time.Time

	products *Collection[domain.Product]
	goals    *Collection[domain.Goal]
	leads    *Collection[domain.Lead]
}

// New creates a new Store instance with the given database path and event emitter.
// A nil logger discards store logs.
func New(path string, logger *slog.Logger, emitter EventEmitter) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	return open(opts, logger, emitter)
}

// ErrDatabaseLocked is returned when another process, usually the running
// server, holds the Badger directory lock.
var ErrDatabaseLocked = errors.New("database is in use by another process")

// NewReadOnly opens an existing database for inspection. Mutations fail.
// Badger still takes the directory lock, so the server must be stopped first.
func NewReadOnly(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.ReadOnly = true

	return open(opts, logger, NewNoopEmitter())
}

func open(opts badger.Options, logger *slog.Logger, emitter EventEmitter) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if emitter == nil {
		emitter = NewNoopEmitter()
	}

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, fmt.Errorf("%w: %s: %w", ErrDatabaseLocked, opts.Dir, err)
		}
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{
		db:           db,
		logger:       logger,
		eventEmitter: emitter,
		metrics:      noopRecorder{},
		now:          time.Now,
		products:     newCollection[domain.Product](KeyProducts, productID),
		goals:        newCollection[domain.Goal](KeyGoals, goalID),
		leads:        newCollection[domain.Lead](KeyLeads, leadID),
	}

	logger.Info("Badger database opened successfully",
		slog.String("path", opts.Dir),
		slog.Bool("read_only", opts.ReadOnly))

	return s, nil
}

// SetMetrics installs a recorder for per-operation metrics.
// This is set after store creation so CLIs can skip metrics entirely.
func (s *Store) SetMetrics(recorder OperationRecorder) {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	s.metrics = recorder
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	s.logger.Info("Closing database connection")
	return s.db.Close()
}

// Ping reports whether the database can serve reads.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return fmt.Errorf("database is closed")
	}
	return s.db.View(func(txn *badger.Txn) error {
		_, err := s.products.load(txn)
		return err
	})
}

// view runs fn in a read-only transaction and records the outcome.
func (s *Store) view(ctx context.Context, collection, op string, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.View(fn)
	return s.finish(collection, op, err)
}

// update runs fn in a read-write transaction. Badger aborts the commit with
// ErrConflict when a key fn read was committed by someone else meanwhile.
func (s *Store) update(ctx context.Context, collection, op string, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(fn)
	return s.finish(collection, op, err)
}

func (s *Store) finish(collection, op string, err error) error {
	err = translateError(err, collection, op)
	s.metrics.RecordStoreOp(collection, op, resultOf(err))

	if isStoreFailure(err) {
		s.logger.Error("store operation failed",
			slog.String("collection", collection),
			slog.String("op", op),
			slog.String("error", err.Error()))
	}
	return err
}
