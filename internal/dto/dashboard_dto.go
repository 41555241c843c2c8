package dto

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	Dashboard string `json:"dashboard"`
}

type DashboardTask struct {
	ID   int    `json:"id"`
	Task string `json:"task"`
}

type ClientManagerDashboardResponse struct {
	Message string          `json:"message"`
	Tasks   []DashboardTask `json:"tasks"`
}

// AnalyticsResponse is the admin summary: client head count and gross
// revenue (SUM of sale prices).
type AnalyticsResponse struct {
	TotalClients int64           `json:"total_clients"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
