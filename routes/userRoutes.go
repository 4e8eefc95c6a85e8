package routes

import (
	"github.com/endabelyu/nakama-api/controllers"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UserRoutes(server *gin.Engine, db *gorm.DB) {
	users := server.Group("/users")
	{
		users.GET("", controllers.GetUsers(db))
		users.GET("/:id", controllers.GetUserByID(db))
	}
}
