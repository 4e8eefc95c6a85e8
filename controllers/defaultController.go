package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Nakama API, a store for one-piece premium merchandise.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create user account and cart
- POST "/auth/login" - Access user account
- GET "/auth/me" - Get caller profile

USERS
- GET "/users" - Get all users
- GET "/users/:id" - Get user by ID

PRODUCT
- GET "/products" - Get all products
- GET "/products/:slug" - Get product by slug
- POST "/products" - Create new product (admin)
- PATCH "/products/:id" - Update product (admin)
- DELETE "/products/:id" - Delete product (admin)
- POST "/products/:id/images" - Upload product images (admin)

CART
- GET "/carts" - Get current user's cart with totals
- POST "/carts/items" - Add product to cart
- PUT/PATCH "/carts/items/:id" - Update cart item quantity
- PUT "/carts/items/selected/:id" - Toggle item selection
- PUT "/carts/items/selectedAll/:cartId" - Toggle all item selections
- DELETE "/carts/items/:id" - Remove cart item

ORDER
- POST "/orders/payment/:cartId" - Checkout selected cart items
- GET "/orders" - Get caller's orders
- GET "/orders/:orderId" - Get order by ID`

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "message": message})
}

func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
