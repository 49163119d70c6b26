package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/config"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/database"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/middleware"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/assets"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/audits"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/directory"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/maintenance"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/reports"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/web"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	assetService := assets.NewService(assetRepo, movementRepo, cfg)
	assetHandler := assets.NewHandler(assetService)

	directoryHandler := directory.NewHandler(locationRepo, userRepo, purchaseRepo)
	reportsHandler := reports.NewHandler(assetRepo, auditRepo)

	maintenanceService := maintenance.NewService(maintenanceRepo, assetRepo)
	maintenanceHandler := maintenance.NewHandler(maintenanceService)

	auditService := audits.NewService(auditRepo, assetRepo, locationRepo)
	auditHandler := audits.NewHandler(auditService)

	webHandler := web.NewHandler(assetService)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.LoadHTMLGlob("templates/*.html")

	api := r.Group("/api")
	{
		assetHandler.RegisterRoutes(api)
		maintenanceHandler.RegisterRoutes(api)
		directoryHandler.RegisterRoutes(api)
		reportsHandler.RegisterRoutes(api)
		auditHandler.RegisterRoutes(api)
	}

	webHandler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
