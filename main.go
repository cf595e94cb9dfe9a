package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cgpa-agent/config"
	httpLayer "cgpa-agent/http"
	"cgpa-agent/repository"
	"cgpa-agent/service"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("CGPA_AGENT_CONFIG"))
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	scale := cfg.GradeScale()

	projectionRepo := repository.NewProjectionRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr)
	} else {
		cache = repository.NewMockCache()
	}

	projectionService := service.NewProjectionService(projectionRepo, scale)
	projectionHandler := httpLayer.NewProjectionHandler(projectionService)

	presetService := service.NewPresetService(scale)
	presetHandler := httpLayer.NewPresetHandler(presetService)

	insightService := service.NewInsightService()
	insightsHandler := httpLayer.NewInsightsHandler(insightService)

	simulationService := service.NewSimulationService(insightService, cache, scale)
	simulationHandler := httpLayer.NewSimulationHandler(simulationService)
	exportHandler := httpLayer.NewExportHandler(simulationService)

	rateLimiter := httpLayer.NewRateLimiter(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/cgpa/project",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(projectionHandler.Project),
		),
	)

	mux.Handle(
		"/cgpa/preset",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(presetHandler.Generate),
		),
	)

	mux.Handle(
		"/cgpa/simulate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(simulationHandler.Simulate),
		),
	)

	mux.Handle(
		"/cgpa/simulate/export",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(exportHandler.Export),
		),
	)

	mux.Handle(
		"/cgpa/insights",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(insightsHandler.Insights),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
