package model

import (
	"time"

	"github.com/google/uuid"
)

// PipelineStage groups clients into a named step of the sales pipeline.
type PipelineStage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Clients []Client `gorm:"many2many:pipeline_stage_clients"`
}
