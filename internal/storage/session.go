package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pascolabs/neuralsim/internal/types"
)

type sessionMessageModel struct {
	ID        int `gorm:"primaryKey"`
	SessionID string
	MessageID string
	Role      string
	Text      string
	// Timestamp is virtual time, milliseconds since epoch.
	Timestamp int64
	ImageURL  string
	SpeakerID string
	CreatedAt time.Time
}

func (sessionMessageModel) TableName() string {
	return "session_messages"
}

// SessionRepo accesses the append-only message log.
type SessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo returns a SessionRepo.
func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// AppendMessage appends one message to a session log.
func (r *SessionRepo) AppendMessage(ctx context.Context, sessionID string, msg types.Message) error {
	record := sessionMessageModel{
		SessionID: sessionID,
		MessageID: msg.ID,
		Role:      string(msg.Role),
		Text:      msg.Text,
		Timestamp: msg.Timestamp,
		ImageURL:  msg.ImageURL,
		SpeakerID: msg.SpeakerID,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// GetMessages returns the trailing limit messages of a session in
// chronological order. limit <= 0 returns the whole log.
func (r *SessionRepo) GetMessages(ctx context.Context, sessionID string, limit int) ([]types.Message, error) {
	query := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []sessionMessageModel
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	messages := make([]types.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, types.Message{
			ID:        record.MessageID,
			Role:      types.Role(record.Role),
			Text:      record.Text,
			Timestamp: record.Timestamp,
			ImageURL:  record.ImageURL,
			SpeakerID: record.SpeakerID,
		})
	}

	// Oldest -> newest
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
