package repository

import (
	"context"

	"github.com/beknazar93/CRM2/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StageRepository interface {
	Create(ctx context.Context, s *model.PipelineStage) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PipelineStage, error)
	List(ctx context.Context) ([]model.PipelineStage, error)
	Update(ctx context.Context, s *model.PipelineStage) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceClients rewrites the stage↔client association set.
	ReplaceClients(ctx context.Context, s *model.PipelineStage, clients []model.Client) error
}

type stageRepo struct{ db *gorm.DB }

func NewStageRepository(db *gorm.DB) StageRepository { return &stageRepo{db: db} }

func (r *stageRepo) Create(ctx context.Context, s *model.PipelineStage) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *stageRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PipelineStage, error) {
	var s model.PipelineStage
	err := r.db.WithContext(ctx).Preload("Clients").First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *stageRepo) List(ctx context.Context) ([]model.PipelineStage, error) {
	var stages []model.PipelineStage
	err := r.db.WithContext(ctx).Preload("Clients").Order("name ASC").Find(&stages).Error
	return stages, err
}

func (r *stageRepo) Update(ctx context.Context, s *model.PipelineStage) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *stageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Clients").Delete(&model.PipelineStage{ID: id}).Error
}

func (r *stageRepo) ReplaceClients(ctx context.Context, s *model.PipelineStage, clients []model.Client) error {
	return r.db.WithContext(ctx).Model(s).Association("Clients").Replace(clients)
}
