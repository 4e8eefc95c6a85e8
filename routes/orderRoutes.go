package routes

import (
	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/controllers"
	"github.com/endabelyu/nakama-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OrderRoutes(server *gin.Engine, db *gorm.DB, cfg *config.Config) {
	orders := server.Group("/orders")
	orders.Use(middlewares.RequireAuth(cfg.JWTSecret))
	{
		orders.POST("/payment/:cartId", controllers.CheckoutCart(db, cfg))
		orders.GET("", controllers.GetOrders(db))
		orders.GET("/:orderId", controllers.GetOrderByID(db))
	}
}
