package main

import (
	"log"

	"dayjob-record/internal/auth"
	"dayjob-record/internal/config"
	"dayjob-record/internal/database"
	"dayjob-record/internal/handlers"
	"dayjob-record/internal/options"
	"dayjob-record/internal/realtime"
	"dayjob-record/internal/routes"
	"dayjob-record/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	database.InitDB(cfg.DBPath, cfg.DBLogLevel)

	auth.Configure(auth.Settings{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TokenTTL: cfg.TokenTTL,
	})

	h := handlers.New(
		store.New(database.GetDB(), store.Options{ItemCacheTTL: cfg.ItemCacheTTL}),
		realtime.GetHub(),
		options.Shared(cfg.OptionsPath),
		handlers.Config{
			ReportLocale: cfg.ReportLocale,
			PasswordHash: cfg.AuthPasswordHash,
		},
	)
	ginRoutes := routes.SetupRoutes(h, cfg.AuthEnabled())

	log.Printf("Server starting on %s (auth enabled: %t)", cfg.Port, cfg.AuthEnabled())
	log.Println("API endpoints:")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/options")
	log.Println("  GET    /api/tasks")
	log.Println("  GET    /api/tasks/:id")
	log.Println("  POST   /api/tasks")
	log.Println("  PUT    /api/tasks/:id")
	log.Println("  PATCH  /api/tasks/:id/visibility")
	log.Println("  DELETE /api/tasks/:id")
	log.Println("  GET    /api/tasks/:id/items")
	log.Println("  POST   /api/tasks/:id/items")
	log.Println("  PUT    /api/items/:id")
	log.Println("  DELETE /api/items/:id")
	log.Println("  POST   /api/reports")
	log.Println("  GET    /api/stats")
	log.Println("  GET    /api/ws")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
