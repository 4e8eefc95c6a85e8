package routes

import (
	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/controllers"
	"github.com/endabelyu/nakama-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRoutes(server *gin.Engine, db *gorm.DB, cfg *config.Config) {
	auth := server.Group("/auth")
	{
		auth.POST("/register", controllers.Register(db))
		auth.POST("/login", controllers.Login(db, cfg))
		auth.GET("/me", middlewares.RequireAuth(cfg.JWTSecret), controllers.GetProfile(db))
	}
}
