package main

import (
	"log"
	"time"

	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/initializers"
	"github.com/endabelyu/nakama-api/middlewares"
	"github.com/endabelyu/nakama-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	if cfg.SeedDB {
		if err := initializers.SeedProducts(db); err != nil {
			log.Fatalf("Database seeding failed: %v", err)
		}
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://nakama.endabelyu.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.PrometheusMiddleware())

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, db, cfg)
	routes.UserRoutes(server, db)
	routes.ProductRoutes(server, db, cfg)
	routes.CartRoutes(server, db, cfg)
	routes.OrderRoutes(server, db, cfg)

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
