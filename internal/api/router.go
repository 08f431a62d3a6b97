package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/farm-market/internal/api/handlers"
	"github.com/baharkarakas/farm-market/internal/config"
	"github.com/baharkarakas/farm-market/internal/metrics"
	"github.com/baharkarakas/farm-market/internal/middleware"
	"github.com/baharkarakas/farm-market/internal/models"
	"github.com/baharkarakas/farm-market/internal/services"
)

type RouterDeps struct {
	Cfg      config.Config
	Users    *services.UserService
	Crops    *services.CropService
	Messages *services.MessageService
	Prices   *services.MarketService
	// Ping backs /health; nil always reports healthy.
	Ping handlers.Pinger
	// Limiter defaults to the in-process limiter at Cfg.RateRPS.
	Limiter func(http.Handler) http.Handler
}

func NewRouter(d RouterDeps) http.Handler {
	limiter := d.Limiter
	if limiter == nil {
		limiter = middleware.RateLimit(d.Cfg.RateRPS)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.Logging, middleware.HTTPMetrics, limiter)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// health & metrics
	r.Get("/health", handlers.NewHealthHandler(d.Ping).Health)
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(d.Users)
	cropH := handlers.NewCropHandler(d.Crops)
	msgH := handlers.NewMessageHandler(d.Messages)
	marketH := handlers.NewMarketHandler(d.Prices)
	authn := middleware.NewAuthMiddleware(d.Users)

	farmerOnly := func(msg string) func(http.Handler) http.Handler {
		return middleware.RequireRole(models.RoleFarmer, msg)
	}

	r.Route("/api", func(r chi.Router) {
		// ---------- public ----------
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Get("/crops", cropH.List)
		r.Get("/market-prices", marketH.List)
		r.Post("/init-market-prices", marketH.Init)

		// ---------- bearer token ----------
		r.Group(func(r chi.Router) {
			r.Use(authn.Auth)

			r.With(farmerOnly("Only farmers can post crops")).Post("/crops", cropH.Create)
			r.With(farmerOnly("Only farmers can access this")).Get("/crops/my-crops", cropH.Mine)
			r.Delete("/crops/{id}", cropH.Delete)
			r.Put("/crops/{id}/status", cropH.UpdateStatus)

			r.With(middleware.RequireRole(models.RoleBuyer, "Only buyers can send messages")).Post("/messages", msgH.Send)
			r.With(farmerOnly("Only farmers can access this")).Get("/messages/received", msgH.Received)
		})
	})

	return r
}
