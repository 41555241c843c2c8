package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/infra"
	"github.com/beknazar93/CRM2/internal/model"
	"github.com/beknazar93/CRM2/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	analyticsCacheKey = "analytics:summary"
	analyticsCacheTTL = 60 * time.Second
)

type DashboardService interface {
	Dashboard(role model.Role) (*dto.DashboardResponse, error)
	ClientManagerDashboard() *dto.ClientManagerDashboardResponse
	Analytics(ctx context.Context) (*dto.AnalyticsResponse, error)
	// AnalyticsReportPDF renders the analytics summary as a PDF and returns
	// the path of the generated file.
	AnalyticsReportPDF(ctx context.Context) (string, error)
}

type dashboardService struct {
	clients        repository.ClientRepository
	sales          repository.SaleRepository
	rdb            *redis.Client
	pdfStoragePath string
}

func NewDashboardService(clients repository.ClientRepository, sales repository.SaleRepository, rdb *redis.Client, pdfStoragePath string) DashboardService {
	return &dashboardService{clients: clients, sales: sales, rdb: rdb, pdfStoragePath: pdfStoragePath}
}

var dashboardNames = map[model.Role]string{
	model.RoleAdmin:          "Administrator Dashboard",
	model.RoleClientManager:  "Client Manager Dashboard",
	model.RoleProductManager: "Product Manager Dashboard",
	model.RoleHRManager:      "HR Manager Dashboard",
	model.RoleEmployee:       "Employee Dashboard",
}

func (s *dashboardService) Dashboard(role model.Role) (*dto.DashboardResponse, error) {
	name, ok := dashboardNames[role]
	if !ok {
		return nil, ErrUnknownRole
	}
	return &dto.DashboardResponse{Dashboard: name}, nil
}

func (s *dashboardService) ClientManagerDashboard() *dto.ClientManagerDashboardResponse {
	return &dto.ClientManagerDashboardResponse{
		Message: "Welcome to the client manager dashboard",
		Tasks: []dto.DashboardTask{
			{ID: 1, Task: "Prepare the client report"},
			{ID: 2, Task: "Call with client ABC"},
		},
	}
}

// Analytics returns the admin summary, cached in Redis for a minute so
// dashboard polling does not hammer the aggregate queries.
func (s *dashboardService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, analyticsCacheKey).Result(); err == nil {
			var resp dto.AnalyticsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	totalClients, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.sales.SumSalePrice(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalyticsResponse{
		TotalClients: totalClients,
		TotalRevenue: totalRevenue,
	}

	if s.rdb != nil {
		if encoded, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, analyticsCacheKey, encoded, analyticsCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("analytics cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *dashboardService) AnalyticsReportPDF(ctx context.Context) (string, error) {
	summary, err := s.Analytics(ctx)
	if err != nil {
		return "", err
	}
	return infra.GenerateAnalyticsPDF(summary.TotalClients, summary.TotalRevenue, s.pdfStoragePath)
}
