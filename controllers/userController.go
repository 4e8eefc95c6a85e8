package controllers

import (
	"net/http"
	"strconv"

	"github.com/endabelyu/nakama-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
		q := ctx.Query("q")
		sort := ctx.DefaultQuery("sort", "asc")

		users, pagination, err := services.GetUsers(db, page, limit, q, sort)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Users fetched successfully", gin.H{
			"users":      users,
			"pagination": pagination,
		})
	}
}

func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		user, err := services.GetUserByID(db, userID)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "User fetched successfully", user)
	}
}
