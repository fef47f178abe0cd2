package main

import (
	"net/http"

	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/storefront/docs"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/db"
	api "github.com/rogerio-castellano/storefront/internal/http"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

// @title Storefront POC API
// @version 1.0
// @description REST API serving the storefront catalog and accepting mock orders.
// @host localhost:8080
// @BasePath /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load configuration", zap.Error(err))
	}

	var catalog repo.CatalogRepository
	var orders repo.OrderRepository

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("could not connect to database", zap.Error(err))
		}
		defer database.Close()
		catalog = repo.NewPostgresCatalogRepository(database)
		orders = repo.NewPostgresOrderRepository(database)
	} else {
		fileCatalog, err := repo.NewFileCatalogRepository(cfg.ProductsPath, logger)
		if err != nil {
			logger.Fatal("could not load product catalog", zap.Error(err))
		}
		if err := fileCatalog.Watch(); err != nil {
			logger.Warn("catalog file watching disabled", zap.Error(err))
		}
		defer fileCatalog.Close()
		catalog = fileCatalog
		orders = repo.NewInMemoryOrderRepository()
	}

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.StartCleanupLoop()

	h := handlers.NewServer(catalog, orders, logger)
	router := api.NewRouter(h, limiter, cfg.PublicDir)

	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
