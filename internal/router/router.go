package router

import (
	"time"

	"github.com/beknazar93/CRM2/internal/config"
	"github.com/beknazar93/CRM2/internal/handler"
	"github.com/beknazar93/CRM2/internal/infra"
	"github.com/beknazar93/CRM2/internal/middleware"
	"github.com/beknazar93/CRM2/internal/model"
	"github.com/beknazar93/CRM2/internal/repository"
	"github.com/beknazar93/CRM2/internal/service"
	"github.com/beknazar93/CRM2/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New builds the Gin engine with all routes, middleware, and dependencies
// wired. It is the composition root of the HTTP layer.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, breaker *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimiter(300, time.Minute))

	// Repositories
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	stageRepo := repository.NewStageRepository(db)
	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Services
	dispatcher := worker.NewDispatcher(rdb)
	catalogSvc := service.NewCatalogService(productRepo, saleRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo)
	clientSvc := service.NewClientService(clientRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	stageSvc := service.NewStageService(stageRepo, clientRepo)
	authSvc := service.NewAuthService(userRepo, cfg)
	dashboardSvc := service.NewDashboardService(clientRepo, saleRepo, rdb, cfg.PDFStoragePath)
	chatSvc := service.NewChatService(chatRepo, dispatcher)

	// Handlers
	productH := handler.NewProductHandler(catalogSvc)
	saleH := handler.NewSaleHandler(saleSvc)
	clientH := handler.NewClientHandler(clientSvc, cfg.ClientRetentionDays)
	employeeH := handler.NewEmployeeHandler(employeeSvc)
	stageH := handler.NewStageHandler(stageSvc)
	authH := handler.NewAuthHandler(authSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	chatH := handler.NewChatHandler(chatSvc)
	healthH := handler.NewHealthHandler(db, rdb, breaker)

	r.GET("/health", healthH.Check)

	v1 := r.Group("/v1")

	// Public routes
	v1.POST("/auth/register", authH.Register)
	v1.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)
	v1.POST("/auth/refresh", authH.Refresh)
	v1.POST("/chat", chatH.Post) // website widget posts without a token

	// Authenticated routes
	auth := v1.Group("")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret))

	auth.GET("/profile", authH.Profile)
	auth.GET("/dashboard", dashboardH.Dashboard)
	auth.GET("/dashboard/client-manager",
		middleware.RequireRole(model.RoleAdmin, model.RoleClientManager),
		dashboardH.ClientManagerDashboard)

	// Clients
	clientRoles := middleware.RequireRole(model.RoleAdmin, model.RoleClientManager, model.RoleHRManager)
	auth.POST("/clients", clientRoles, clientH.Create)
	auth.GET("/clients", clientRoles, clientH.List)
	auth.POST("/clients/import", clientRoles, clientH.Import)
	// Fixed paths must be registered before /clients/:id.
	auth.DELETE("/clients/cleanup", middleware.RequireRole(model.RoleAdmin), clientH.Cleanup)
	auth.GET("/clients/:id", clientRoles, clientH.Get)
	auth.PUT("/clients/:id", clientRoles, clientH.Update)
	auth.DELETE("/clients/:id", clientRoles, clientH.Delete)

	// Products: reads for any authenticated user, writes for product roles.
	productRoles := middleware.RequireRole(model.RoleAdmin, model.RoleProductManager, model.RoleHRManager)
	auth.GET("/products", productH.List)
	auth.GET("/products/:id", productH.Get)
	auth.POST("/products", productRoles, productH.Create)
	auth.PUT("/products/:id", productRoles, productH.Update)
	auth.DELETE("/products/:id", productRoles, productH.Delete)
	auth.POST("/products/bulk-delete", middleware.RequireRole(model.RoleAdmin), productH.BulkDelete)

	// Sales (immutable: no update or delete routes)
	auth.POST("/sales", productRoles, saleH.Create)
	auth.GET("/sales", saleH.List)
	auth.GET("/sales/:id", saleH.Get)

	// Employees
	hrRoles := middleware.RequireRole(model.RoleAdmin, model.RoleHRManager)
	auth.POST("/employees", hrRoles, employeeH.Create)
	auth.GET("/employees", hrRoles, employeeH.List)
	auth.GET("/employees/:id", hrRoles, employeeH.Get)
	auth.PUT("/employees/:id", hrRoles, employeeH.Update)
	auth.DELETE("/employees/:id", hrRoles, employeeH.Delete)

	// Pipeline stages
	auth.POST("/stages", clientRoles, stageH.Create)
	auth.GET("/stages", clientRoles, stageH.List)
	auth.GET("/stages/:id", clientRoles, stageH.Get)
	auth.PUT("/stages/:id", clientRoles, stageH.Update)
	auth.DELETE("/stages/:id", clientRoles, stageH.Delete)

	// Chat inbox
	auth.GET("/chat", hrRoles, chatH.List)

	// Analytics (admin only)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	auth.GET("/analytics", adminOnly, dashboardH.Analytics)
	auth.GET("/analytics/report.pdf", adminOnly, dashboardH.AnalyticsReport)

	return r
}
