package service

import (
	"context"
	"fmt"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"
	"github.com/beknazar93/CRM2/internal/repository"

	"github.com/google/uuid"
)

type StageService interface {
	Create(ctx context.Context, req dto.CreateStageRequest) (*dto.StageResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.StageResponse, error)
	List(ctx context.Context) ([]dto.StageResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStageRequest) (*dto.StageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type stageService struct {
	stages  repository.StageRepository
	clients repository.ClientRepository
}

func NewStageService(stages repository.StageRepository, clients repository.ClientRepository) StageService {
	return &stageService{stages: stages, clients: clients}
}

func (s *stageService) Create(ctx context.Context, req dto.CreateStageRequest) (*dto.StageResponse, error) {
	stage := &model.PipelineStage{
		Name:        req.Name,
		Description: req.Description,
	}
	if len(req.ClientIDs) > 0 {
		clients, err := s.resolveClients(ctx, req.ClientIDs)
		if err != nil {
			return nil, err
		}
		stage.Clients = clients
	}
	if err := s.stages.Create(ctx, stage); err != nil {
		return nil, err
	}
	return stageToResponse(stage), nil
}

func (s *stageService) Get(ctx context.Context, id uuid.UUID) (*dto.StageResponse, error) {
	stage, err := s.stages.FindByID(ctx, id)
	if err != nil {
		return nil, ErrStageNotFound
	}
	return stageToResponse(stage), nil
}

func (s *stageService) List(ctx context.Context) ([]dto.StageResponse, error) {
	stages, err := s.stages.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StageResponse, 0, len(stages))
	for i := range stages {
		resp = append(resp, *stageToResponse(&stages[i]))
	}
	return resp, nil
}

func (s *stageService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStageRequest) (*dto.StageResponse, error) {
	stage, err := s.stages.FindByID(ctx, id)
	if err != nil {
		return nil, ErrStageNotFound
	}
	if req.Name != nil {
		stage.Name = *req.Name
	}
	if req.Description != nil {
		stage.Description = *req.Description
	}
	if err := s.stages.Update(ctx, stage); err != nil {
		return nil, err
	}
	if req.ClientIDs != nil {
		clients, err := s.resolveClients(ctx, req.ClientIDs)
		if err != nil {
			return nil, err
		}
		if err := s.stages.ReplaceClients(ctx, stage, clients); err != nil {
			return nil, err
		}
		stage.Clients = clients
	}
	return stageToResponse(stage), nil
}

func (s *stageService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.stages.FindByID(ctx, id); err != nil {
		return ErrStageNotFound
	}
	return s.stages.Delete(ctx, id)
}

func (s *stageService) resolveClients(ctx context.Context, rawIDs []string) ([]model.Client, error) {
	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidClientID, raw)
		}
		ids = append(ids, id)
	}
	clients, err := s.clients.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(clients) != len(ids) {
		return nil, ErrClientNotFound
	}
	return clients, nil
}

func stageToResponse(stage *model.PipelineStage) *dto.StageResponse {
	clients := make([]dto.ClientResponse, 0, len(stage.Clients))
	for i := range stage.Clients {
		clients = append(clients, *clientToResponse(&stage.Clients[i]))
	}
	return &dto.StageResponse{
		ID:          stage.ID.String(),
		Name:        stage.Name,
		Description: stage.Description,
		Clients:     clients,
	}
}
