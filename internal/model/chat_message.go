package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a staff chat message relayed to HR by the email worker.
// IsForwarded flips once the relay email has been delivered.
type ChatMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserName    string    `gorm:"not null"`
	Message     string    `gorm:"type:text;not null"`
	IsForwarded bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}
