package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a sales-pipeline lead. Payment and Price are free-form text:
// the upstream data set stores them that way and imports must round-trip.
type Client struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	Email         string    `gorm:"not null;default:'primer@gmail.com'"`
	Phone         string    `gorm:"not null"`
	Stage         string    `gorm:"not null"`
	Payment       string    `gorm:"not null;default:'paid'"`
	Price         string    `gorm:"not null;default:'2200'"`
	SportCategory *string
	Trainer       *string
	Year          *string
	Month         *string
	Day           *string
	Comment       string
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}
