package routes

import (
	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/controllers"
	"github.com/endabelyu/nakama-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CartRoutes(server *gin.Engine, db *gorm.DB, cfg *config.Config) {
	carts := server.Group("/carts")
	carts.Use(middlewares.RequireAuth(cfg.JWTSecret))
	{
		carts.GET("", controllers.GetCart(db))
		carts.POST("/items", controllers.AddCartItem(db))
		carts.PUT("/items/:id", controllers.UpdateCartItem(db))
		carts.PATCH("/items/:id", controllers.UpdateCartItem(db))
		carts.PUT("/items/selected/:id", controllers.SelectCartItem(db))
		carts.PUT("/items/selectedAll/:cartId", controllers.SelectAllCartItems(db))
		carts.DELETE("/items/:id", controllers.RemoveCartItem(db))
	}
}
