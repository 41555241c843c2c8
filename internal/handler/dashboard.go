package handler

import (
	"net/http"

	"github.com/beknazar93/CRM2/internal/apierror"
	"github.com/beknazar93/CRM2/internal/middleware"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Dashboard routes the caller to their role's dashboard name.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Dashboard(claims.Role)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("No dashboard for this role"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) ClientManagerDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ClientManagerDashboard())
}

// Analytics returns the admin summary, served from a short-lived cache.
func (h *DashboardHandler) Analytics(c *gin.Context) {
	resp, err := h.svc.Analytics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnalyticsReport renders the analytics summary as a downloadable PDF.
func (h *DashboardHandler) AnalyticsReport(c *gin.Context) {
	path, err := h.svc.AnalyticsReportPDF(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=analytics_report.pdf")
	c.File(path)
}
