package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/endabelyu/nakama-api/apperrors"
	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/middlewares"
	"github.com/endabelyu/nakama-api/models"
	"github.com/endabelyu/nakama-api/services"
	"github.com/endabelyu/nakama-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgInvalidInput          = "invalid input"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "internal server error"
	msgUserNotInContext      = "user not found in context"

	// Login tokens live this long in the cookie, in seconds.
	tokenCookieMaxAge = 30 * 24 * 60 * 60
)

// sendSuccess writes the uniform success envelope. Data may be nil.
func sendSuccess(ctx *gin.Context, status int, message string, data any) {
	body := gin.H{"ok": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	ctx.JSON(status, body)
}

// sendError maps a service error to its HTTP status and writes the failure
// envelope. Internal causes are logged, never exposed.
func sendError(ctx *gin.Context, err error) {
	message := err.Error()
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Kind == apperrors.KindInternal {
			log.Println("Internal error:", appErr)
			message = msgInternalServerError
		}
	}
	ctx.JSON(apperrors.StatusCode(err), gin.H{"ok": false, "message": message})
}

func sendErrorMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"ok": false, "message": message})
}

// requestUserID reads the authenticated user id, aborting with 401 when the
// auth middleware did not run.
func requestUserID(ctx *gin.Context) (uint, bool) {
	userID, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorMessage(ctx, http.StatusUnauthorized, msgUserNotInContext)
	}
	return userID, ok
}

// Register handles user registration. The password/confirm-password match is
// enforced by the binding, so a mismatch never reaches the service.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var payload models.RegisterData
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := services.Register(db, payload)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusCreated, "User registered successfully", user)
	}
}

// Login verifies credentials and issues a bearer token, returned in the body
// and set as the "token" cookie.
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var payload models.LoginData
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := services.Login(db, payload)
		if err != nil {
			sendError(ctx, err)
			return
		}

		token, err := utils.GenerateToken(user, cfg.JWTSecret)
		if err != nil {
			log.Println("JWT generation error:", err)
			sendErrorMessage(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
			return
		}

		ctx.SetCookie("token", token, tokenCookieMaxAge, "/", "", false, true)
		sendSuccess(ctx, http.StatusOK, "Login successful", gin.H{
			"token": token,
			"user":  user.Public(),
		})
	}
}

// GetProfile returns the caller's public projection.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}

		user, err := services.GetProfile(db, userID)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Profile fetched successfully", user)
	}
}
