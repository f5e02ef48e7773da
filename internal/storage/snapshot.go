package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/pascolabs/neuralsim/internal/profile"
	"github.com/pascolabs/neuralsim/internal/types"
)

// stateVectorDims is the dimensionality of the psycho-state vector.
const stateVectorDims = 8

type snapshotModel struct {
	ID          int `gorm:"primaryKey"`
	SessionID   string
	CharacterID string
	// Minute is the virtual-clock minute bucket the snapshot was taken in.
	Minute    int64
	Profile   json.RawMessage  `gorm:"type:jsonb"`
	Embedding *pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time
}

func (snapshotModel) TableName() string {
	return "profile_snapshots"
}

// SnapshotMatch is one similar historical state.
type SnapshotMatch struct {
	SessionID  string          `json:"session_id"`
	Minute     int64           `json:"minute"`
	Profile    json.RawMessage `json:"profile"`
	Similarity float64         `json:"similarity"`
}

// SnapshotRepo persists per-minute profile snapshots.
type SnapshotRepo struct {
	db *gorm.DB
}

// NewSnapshotRepo returns a SnapshotRepo.
func NewSnapshotRepo(db *gorm.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// SaveSnapshot stores one profile snapshot with its state vector.
func (r *SnapshotRepo) SaveSnapshot(ctx context.Context, sessionID string, minute int64, snapshot *profile.NeuralProfile, character *types.Character) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is required")
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	vector := pgvector.NewVector(StateVector(snapshot, character))

	characterID := ""
	if character != nil {
		characterID = character.ID
	}
	record := snapshotModel{
		SessionID:   sessionID,
		CharacterID: characterID,
		Minute:      minute,
		Profile:     payload,
		Embedding:   &vector,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// FindSimilarStates returns the topK stored snapshots nearest to the given
// state vector by cosine distance.
func (r *SnapshotRepo) FindSimilarStates(ctx context.Context, vector []float32, topK int) ([]SnapshotMatch, error) {
	if len(vector) == 0 {
		return nil, nil
	}
	if topK <= 0 {
		topK = 5
	}

	query := `
		SELECT session_id, minute, profile,
		       1 - (embedding <=> $1) AS similarity
		FROM profile_snapshots
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2`

	var results []SnapshotMatch
	if err := r.db.WithContext(ctx).
		Raw(query, pgvector.NewVector(vector), topK).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar states: %w", err)
	}
	return results, nil
}

// StateVector maps a profile onto a fixed-dimension vector: normalized
// psyche and relationship scores plus trait axes. A deterministic function
// of its inputs, no model inference involved, so stored vectors are
// reproducible from the snapshot alone.
func StateVector(snapshot *profile.NeuralProfile, character *types.Character) []float32 {
	vector := make([]float32, stateVectorDims)
	if snapshot != nil {
		vector[0] = float32(snapshot.Psyche.Score) / 100
		vector[1] = (float32(snapshot.Social.Score) + 100) / 200
		vector[2] = float32(snapshot.Psyche.EmotionalIntelligence) / 100
	}
	if character != nil {
		traits := character.Personality
		vector[3] = float32(traits.Openness) / 100
		vector[4] = float32(traits.Conscientiousness) / 100
		vector[5] = float32(traits.Extraversion) / 100
		vector[6] = float32(traits.Agreeableness) / 100
		vector[7] = float32(traits.Neuroticism) / 100
	}
	return vector
}
