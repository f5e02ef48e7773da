// Package storage implements the gorm-backed repositories. Character cards
// are stored as versioned JSONB documents; decoding goes through the card
// codec so legacy memory formats keep working.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pascolabs/neuralsim/internal/types"
)

type characterModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Role      string
	Card      json.RawMessage `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (characterModel) TableName() string {
	return "characters"
}

// CharacterRepo accesses character card data.
type CharacterRepo struct {
	db *gorm.DB
}

// NewCharacterRepo returns a CharacterRepo.
func NewCharacterRepo(db *gorm.DB) *CharacterRepo {
	return &CharacterRepo{db: db}
}

// GetByID fetches and decodes a character card by ID.
func (r *CharacterRepo) GetByID(ctx context.Context, id string) (*types.Character, error) {
	var model characterModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get character by id: %w", err)
	}
	return characterFromModel(model)
}

// GetDefault fetches the first available character.
func (r *CharacterRepo) GetDefault(ctx context.Context) (*types.Character, error) {
	var model characterModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Limit(1).First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to get default character: %w", err)
	}
	return characterFromModel(model)
}

// Save upserts a character card at the current schema version.
func (r *CharacterRepo) Save(ctx context.Context, character *types.Character) error {
	if character == nil || character.ID == "" {
		return fmt.Errorf("character with id is required")
	}
	card, err := types.EncodeCard(character)
	if err != nil {
		return fmt.Errorf("failed to encode character card: %w", err)
	}
	model := characterModel{
		ID:   character.ID,
		Name: character.Name,
		Role: character.Role,
		Card: card,
	}
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	return nil
}

func characterFromModel(model characterModel) (*types.Character, error) {
	character, err := types.DecodeCard(model.Card)
	if err != nil {
		return nil, fmt.Errorf("failed to decode character card %s: %w", model.ID, err)
	}
	if character.ID == "" {
		character.ID = model.ID
	}
	character.CreatedAt = model.CreatedAt
	character.UpdatedAt = model.UpdatedAt
	return character, nil
}
