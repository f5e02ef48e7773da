// Package repository wires the persistence interfaces the application uses.
// The simulation core never touches these: analyzers take plain data, and
// callers load that data through the repositories here.
package repository

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pascolabs/neuralsim/internal/profile"
	"github.com/pascolabs/neuralsim/internal/storage"
	"github.com/pascolabs/neuralsim/internal/types"
)

// CharacterRepo provides stored character cards.
type CharacterRepo interface {
	GetByID(ctx context.Context, id string) (*types.Character, error)
	GetDefault(ctx context.Context) (*types.Character, error)
	Save(ctx context.Context, character *types.Character) error
}

// SessionRepo provides the append-only message log per chat session.
type SessionRepo interface {
	AppendMessage(ctx context.Context, sessionID string, msg types.Message) error
	GetMessages(ctx context.Context, sessionID string, limit int) ([]types.Message, error)
}

// SnapshotMatch is one similar historical state returned by vector lookup.
type SnapshotMatch = storage.SnapshotMatch

// SnapshotRepo persists per-minute profile snapshots and finds similar
// historical states by psycho-state vector.
type SnapshotRepo interface {
	SaveSnapshot(ctx context.Context, sessionID string, minute int64, snapshot *profile.NeuralProfile, character *types.Character) error
	FindSimilarStates(ctx context.Context, vector []float32, topK int) ([]SnapshotMatch, error)
}

// Store holds the DB pool and repositories.
type Store struct {
	db         *gorm.DB
	Characters CharacterRepo
	Sessions   SessionRepo
	Snapshots  SnapshotRepo
}

// NewStore initializes the PostgreSQL pool and repositories.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:         db,
		Characters: storage.NewCharacterRepo(db),
		Sessions:   storage.NewSessionRepo(db),
		Snapshots:  storage.NewSnapshotRepo(db),
	}, nil
}

// DB exposes the underlying pool.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the pool.
func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
