package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/endabelyu/nakama-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func registerAndLogin(t *testing.T, server *gin.Engine, email string) string {
	t.Helper()

	recorder := doJSON(t, server, http.MethodPost, "/auth/register", "", registerBody(email))
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, server, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "Password123!",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var loginData struct {
		Token string `json:"token"`
	}
	env := decodeEnvelope(t, recorder)
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	return loginData.Token
}

func seedProduct(t *testing.T, db *gorm.DB, slug string, price, stock int) models.Product {
	t.Helper()

	product := models.Product{Slug: slug, Name: "Product " + slug, Price: price, Stock: stock}
	require.NoError(t, db.Create(&product).Error)
	return product
}

type cartPayload struct {
	Cart       models.Cart `json:"cart"`
	TotalItem  int         `json:"totalItem"`
	TotalPrice int         `json:"totalPrice"`
}

func fetchCart(t *testing.T, server *gin.Engine, token string) cartPayload {
	t.Helper()

	recorder := doJSON(t, server, http.MethodGet, "/carts", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload cartPayload
	env := decodeEnvelope(t, recorder)
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	return payload
}

func TestCartFlowOverHTTP(t *testing.T) {
	server, db := setupTestServer(t)
	token := registerAndLogin(t, server, "luffy@example.com")
	product := seedProduct(t, db, "luffy-hat", 250000, 5)

	// Empty cart with zeroed totals on first read.
	payload := fetchCart(t, server, token)
	assert.Empty(t, payload.Cart.Items)
	assert.Zero(t, payload.TotalPrice)

	recorder := doJSON(t, server, http.MethodPost, "/carts/items", token, gin.H{
		"productId": product.ID,
		"quantity":  2,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var item models.CartItem
	env := decodeEnvelope(t, recorder)
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, 2, item.Quantity)

	// New items are unselected, so totals stay zero.
	payload = fetchCart(t, server, token)
	require.Len(t, payload.Cart.Items, 1)
	assert.Zero(t, payload.TotalItem)

	recorder = doJSON(t, server, http.MethodPut,
		fmt.Sprintf("/carts/items/selected/%d", item.ID), token, gin.H{"selected": true})
	require.Equal(t, http.StatusOK, recorder.Code)

	payload = fetchCart(t, server, token)
	assert.Equal(t, 1, payload.TotalItem)
	assert.Equal(t, 2*250000, payload.TotalPrice)
	assert.True(t, payload.Cart.AllSelected)

	recorder = doJSON(t, server, http.MethodPatch,
		fmt.Sprintf("/carts/items/%d", item.ID), token, gin.H{"quantity": 6})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(t, server, http.MethodPost,
		fmt.Sprintf("/orders/payment/%d", payload.Cart.ID), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var order models.Order
	env = decodeEnvelope(t, recorder)
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, 2*250000, order.TotalPrice)

	// Cart drained by checkout.
	payload = fetchCart(t, server, token)
	assert.Empty(t, payload.Cart.Items)
}

func TestUpdateCartItemQuantityViaPutAndPatch(t *testing.T) {
	server, db := setupTestServer(t)
	token := registerAndLogin(t, server, "luffy@example.com")
	product := seedProduct(t, db, "luffy-hat", 250000, 5)

	recorder := doJSON(t, server, http.MethodPost, "/carts/items", token, gin.H{
		"productId": product.ID,
		"quantity":  1,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var item models.CartItem
	env := decodeEnvelope(t, recorder)
	require.NoError(t, json.Unmarshal(env.Data, &item))

	// PUT and PATCH are aliases for quantity updates; the PUT route also
	// coexists with the static PUT selection routes on the same engine.
	recorder = doJSON(t, server, http.MethodPut,
		fmt.Sprintf("/carts/items/%d", item.ID), token, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated models.CartItem
	env = decodeEnvelope(t, recorder)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 3, updated.Quantity)

	recorder = doJSON(t, server, http.MethodPut,
		fmt.Sprintf("/carts/items/selected/%d", item.ID), token, gin.H{"selected": true})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodPatch,
		fmt.Sprintf("/carts/items/%d", item.ID), token, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestCheckoutWithNothingSelectedOverHTTP(t *testing.T) {
	server, db := setupTestServer(t)
	token := registerAndLogin(t, server, "luffy@example.com")
	product := seedProduct(t, db, "luffy-hat", 250000, 5)

	recorder := doJSON(t, server, http.MethodPost, "/carts/items", token, gin.H{
		"productId": product.ID,
		"quantity":  1,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := fetchCart(t, server, token)
	recorder = doJSON(t, server, http.MethodPost,
		fmt.Sprintf("/orders/payment/%d", payload.Cart.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.False(t, env.Ok)
}

func TestCartItemNotFoundOverHTTP(t *testing.T) {
	server, _ := setupTestServer(t)
	token := registerAndLogin(t, server, "luffy@example.com")

	recorder := doJSON(t, server, http.MethodDelete, "/carts/items/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, server, http.MethodPost, "/carts/items", token, gin.H{
		"productId": 9999,
		"quantity":  1,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
