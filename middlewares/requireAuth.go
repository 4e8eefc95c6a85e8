package middlewares

import (
	"net/http"
	"strings"

	"github.com/endabelyu/nakama-api/utils"
	"github.com/gin-gonic/gin"
)

// RequireAuth verifies the caller's token, taken from the "token" cookie or
// the Authorization bearer header, and stores the claims and user id on the
// request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie("token")
		if err != nil || token == "" {
			authHeader := ctx.GetHeader("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				token = after
			}
		}

		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":      false,
				"message": "Not allowed. Token is required",
			})
			return
		}

		claims, err := utils.ParseToken(token, jwtSecret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":      false,
				"message": "Not allowed. Token is invalid",
			})
			return
		}

		userID, ok := utils.UserIDFromClaims(claims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":      false,
				"message": "Not allowed. Token is invalid",
			})
			return
		}

		ctx.Set("user", claims)
		ctx.Set("userId", userID)
		ctx.Next()
	}
}

// UserID reads the authenticated user id set by RequireAuth.
func UserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get("userId")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
