package controllers

import (
	"net/http"

	"github.com/endabelyu/nakama-api/models"
	"github.com/endabelyu/nakama-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCart returns the caller's cart with selected-item totals, creating an
// empty cart on first access.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}

		cart, totals, err := services.GetOrCreateCart(db, userID)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Cart fetched successfully", gin.H{
			"cart":       cart,
			"totalItem":  totals.TotalItem,
			"totalPrice": totals.TotalPrice,
		})
	}
}

func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}

		var payload models.AddCartItemData
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		item, err := services.AddItem(db, userID, payload.ProductID, payload.Quantity)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, item.Product.Name+" added to cart", item)
	}
}

func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}
		itemID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		var payload models.UpdateCartItemData
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		item, err := services.UpdateItemQuantity(db, userID, itemID, payload.Quantity)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Cart item updated successfully", item)
	}
}

func SelectCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}
		itemID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		var payload models.SelectCartItemData
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		item, allSelected, err := services.SetItemSelected(db, userID, itemID, *payload.Selected)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Cart item selection updated", gin.H{
			"item":        item,
			"allSelected": allSelected,
		})
	}
}

func SelectAllCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}
		cartID, ok := parseIDParam(ctx, "cartId")
		if !ok {
			return
		}

		var payload models.SelectCartItemData
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		cart, err := services.SetAllSelected(db, userID, cartID, *payload.Selected)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Cart selection updated", cart)
	}
}

func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}
		itemID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		item, err := services.RemoveItem(db, userID, itemID)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Product: "+item.Product.Name+" successfully deleted", nil)
	}
}
