package routes

import (
	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/controllers"
	"github.com/endabelyu/nakama-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProductRoutes(server *gin.Engine, db *gorm.DB, cfg *config.Config) {
	server.GET("/products", controllers.GetProducts(db))
	server.GET("/products/:slug", controllers.GetProductBySlug(db))

	admin := server.Group("/products")
	admin.Use(middlewares.RequireAuth(cfg.JWTSecret), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateProduct(db))
		admin.PATCH("/:id", controllers.UpdateProduct(db))
		admin.DELETE("/:id", controllers.DeleteProduct(db))
		admin.POST("/:id/images", controllers.UploadProductImages(db, cfg))
	}
}
