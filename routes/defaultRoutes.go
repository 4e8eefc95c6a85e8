package routes

import (
	"github.com/endabelyu/nakama-api/controllers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/health", controllers.HealthCheck)
	server.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
