package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/middlewares"
	"github.com/endabelyu/nakama-api/models"
	"github.com/endabelyu/nakama-api/services"
	"github.com/endabelyu/nakama-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CheckoutCart creates an order from the selected items of the caller's cart.
// Payment is simulated, so the returned order is already completed.
func CheckoutCart(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}
		cartID, ok := parseIDParam(ctx, "cartId")
		if !ok {
			return
		}

		order, err := services.Checkout(db, userID, cartID)
		middlewares.RecordCheckout(err == nil)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendOrderConfirmation(cfg, order)

		sendSuccess(ctx, http.StatusOK, "Buy Product and order created successfully", order)
	}
}

// sendOrderConfirmation emails the receipt. Failures only get logged; the
// order already exists.
func sendOrderConfirmation(cfg *config.Config, order models.Order) {
	var customer models.OrderCustomer
	if err := json.Unmarshal(order.Customer, &customer); err != nil || customer.Email == "" {
		return
	}

	items := make([]utils.OrderEmailItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, utils.OrderEmailItem{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Price:    item.ProductPrice,
		})
	}

	err := utils.SendOrderConfirmationEmail(cfg, customer.Email, utils.OrderEmailData{
		Name:        customer.Name,
		OrderNumber: order.OrderNumber,
		TotalPrice:  order.TotalPrice,
		Items:       items,
	})
	if err != nil {
		log.Println("Error sending order confirmation email:", err)
	}
}

func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}

		orders, err := services.GetOrders(db, userID)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Get orders data successfully", orders)
	}
}

func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := requestUserID(ctx)
		if !ok {
			return
		}
		orderID, ok := parseIDParam(ctx, "orderId")
		if !ok {
			return
		}

		order, err := services.GetOrderByID(db, userID, orderID)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Get order detail successfully", order)
	}
}
