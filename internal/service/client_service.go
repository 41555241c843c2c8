package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"
	"github.com/beknazar93/CRM2/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	List(ctx context.Context, filter dto.ClientFilter) (*dto.ClientListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Cleanup removes clients whose record is older than retentionDays.
	Cleanup(ctx context.Context, retentionDays int) (*dto.CleanupClientsResponse, error)
	// ImportCSV bulk-creates clients from a CSV stream with a header row.
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportClientsResponse, error)
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	exists, err := s.repo.ExistsDuplicate(ctx, req.Name, req.SportCategory, req.Month, req.Year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &DuplicateClientError{
			Name:          req.Name,
			SportCategory: deref(req.SportCategory),
			Month:         deref(req.Month),
			Year:          deref(req.Year),
		}
	}

	c := &model.Client{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Stage:         req.Stage,
		Payment:       req.Payment,
		Price:         req.Price,
		SportCategory: req.SportCategory,
		Trainer:       req.Trainer,
		Year:          req.Year,
		Month:         req.Month,
		Day:           req.Day,
		Comment:       req.Comment,
	}
	if c.Email == "" {
		c.Email = "primer@gmail.com"
	}
	if c.Payment == "" {
		c.Payment = "paid"
	}
	if c.Price == "" {
		c.Price = "2200"
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClientNotFound
	}
	return clientToResponse(c), nil
}

func (s *clientService) List(ctx context.Context, filter dto.ClientFilter) (*dto.ClientListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	clients, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, *clientToResponse(&clients[i]))
	}
	return &dto.ClientListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClientNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Stage != nil {
		c.Stage = *req.Stage
	}
	if req.Payment != nil {
		c.Payment = *req.Payment
	}
	if req.Price != nil {
		c.Price = *req.Price
	}
	if req.SportCategory != nil {
		c.SportCategory = req.SportCategory
	}
	if req.Trainer != nil {
		c.Trainer = req.Trainer
	}
	if req.Year != nil {
		c.Year = req.Year
	}
	if req.Month != nil {
		c.Month = req.Month
	}
	if req.Day != nil {
		c.Day = req.Day
	}
	if req.Comment != nil {
		c.Comment = *req.Comment
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrClientNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *clientService) Cleanup(ctx context.Context, retentionDays int) (*dto.CleanupClientsResponse, error) {
	if retentionDays <= 0 {
		retentionDays = 60
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("old clients removed")
	return &dto.CleanupClientsResponse{
		Deleted: deleted,
		Message: fmt.Sprintf("%d clients deleted.", deleted),
	}, nil
}

// importBatchSize keeps each INSERT under a sane parameter count.
const importBatchSize = 200

func (s *clientService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportClientsResponse, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"name", "email", "phone", "stage"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}
	optional := func(record []string, name string) *string {
		v := field(record, name)
		if v == "" {
			return nil
		}
		return &v
	}

	var clients []model.Client
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		clients = append(clients, model.Client{
			Name:          field(record, "name"),
			Email:         field(record, "email"),
			Phone:         field(record, "phone"),
			Stage:         field(record, "stage"),
			Payment:       field(record, "payment"),
			Price:         field(record, "price"),
			SportCategory: optional(record, "sport_category"),
			Trainer:       optional(record, "trainer"),
			Year:          optional(record, "year"),
			Month:         optional(record, "month"),
			Day:           optional(record, "day"),
			Comment:       field(record, "comment"),
		})
	}

	if len(clients) > 0 {
		if err := s.repo.CreateInBatches(ctx, clients, importBatchSize); err != nil {
			return nil, err
		}
	}
	log.Info().Int("imported", len(clients)).Msg("clients imported from csv")
	return &dto.ImportClientsResponse{Imported: len(clients)}, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Stage:         c.Stage,
		Payment:       c.Payment,
		Price:         c.Price,
		SportCategory: c.SportCategory,
		Trainer:       c.Trainer,
		Year:          c.Year,
		Month:         c.Month,
		Day:           c.Day,
		Comment:       c.Comment,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}
