// Package app assembles the HTTP router from the services and handlers.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "dealbook/internal/docs" // Import swagger docs
	"dealbook/internal/flash"
	"dealbook/internal/handlers"
	"dealbook/internal/middleware"
	"dealbook/internal/services"
	"dealbook/internal/storage"
	"dealbook/internal/web"
)

// Options holds what the router needs at startup.
type Options struct {
	DB        *gorm.DB
	Store     storage.Store
	Flash     *flash.Flasher
	MaxUpload int64
}

// NewRouter wires the services, handlers and routes.
func NewRouter(opts Options) (*gin.Engine, error) {
	tmpl, err := web.Templates(opts.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize services
	db := opts.DB
	creditorService := services.NewCreditorService(db, opts.Store)
	agreementService := services.NewAgreementService(db, opts.Store)
	portfolioService := services.NewPortfolioService(db)
	dashboardService := services.NewDashboardService(db)
	exportService := services.NewExportService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, opts.Flash)
	agreementHandler := handlers.NewAgreementHandler(agreementService, creditorService, auditService, opts.Flash, opts.MaxUpload)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, agreementService, auditService, opts.Flash)
	creditorHandler := handlers.NewCreditorHandler(creditorService, auditService, opts.Flash)
	exportHandler := handlers.NewExportHandler(exportService)
	apiHandler := handlers.NewAPIHandler(dashboardService, agreementService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.SetHTMLTemplate(tmpl)
	router.NoRoute(handlers.NotFound)

	// Dashboard
	router.GET("/", dashboardHandler.Show)

	// Agreement routes
	router.GET("/agreements/new/", agreementHandler.New)
	router.POST("/agreements/new/", agreementHandler.Create)
	router.GET("/agreements/:id/edit/", agreementHandler.Edit)
	router.POST("/agreements/:id/edit/", agreementHandler.Update)
	router.GET("/agreements/:id/delete/", agreementHandler.ConfirmDelete)
	router.POST("/agreements/:id/delete/", agreementHandler.Delete)

	// Portfolio routes
	router.GET("/agreements/:id/portfolio/new/", portfolioHandler.New)
	router.POST("/agreements/:id/portfolio/new/", portfolioHandler.Create)
	router.GET("/portfolio/:id/edit/", portfolioHandler.Edit)
	router.POST("/portfolio/:id/edit/", portfolioHandler.Update)
	router.GET("/portfolio/:id/delete/", portfolioHandler.ConfirmDelete)
	router.POST("/portfolio/:id/delete/", portfolioHandler.Delete)

	// Creditor routes
	router.GET("/creditors/", creditorHandler.List)
	router.GET("/creditors/new/", creditorHandler.New)
	router.POST("/creditors/new/", creditorHandler.Create)
	router.GET("/creditors/:id/edit/", creditorHandler.Edit)
	router.POST("/creditors/:id/edit/", creditorHandler.Update)
	router.GET("/creditors/:id/delete/", creditorHandler.ConfirmDelete)
	router.POST("/creditors/:id/delete/", creditorHandler.Delete)

	// Reports
	router.GET("/export/agreements.xlsx", exportHandler.Agreements)

	// Uploaded documents are served by the app only for the local store;
	// bucket objects are linked directly.
	if local, ok := opts.Store.(*storage.LocalStore); ok {
		router.Static("/media", local.Root())
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// JSON API
	api := router.Group("/api", middleware.ErrorHandler())
	api.GET("/health", apiHandler.Health)
	api.GET("/v1/agreements", apiHandler.ListAgreements)
	api.GET("/v1/agreements/:id", apiHandler.GetAgreement)

	return router, nil
}
