package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloura/storefront/internal/catalog"
	"github.com/veloura/storefront/internal/dispatch"
	"github.com/veloura/storefront/internal/http/controller"
	"github.com/veloura/storefront/internal/model"
	"github.com/veloura/storefront/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := catalog.NewStore([]model.Product{
		{ID: 1, Name: "Aurora Puffer Jacket", Price: 3299, Category: "jackets"},
		{ID: 2, Name: "Harbor Denim Jacket", Price: 4299, Category: "jackets"},
		{ID: 3, Name: "Summit Leather Jacket", Price: 5499, Category: "jackets"},
	})
	dispatcher := dispatch.New("923005551234", "orders@veloura.example", dispatch.EmailMailto, "")
	svc := service.NewStorefrontService(store, dispatcher, nil)

	catalogCtr := controller.NewCatalogController(svc)
	orderCtr := controller.NewOrderController(svc)

	router := gin.New()
	router.GET("/products", catalogCtr.ListProducts)
	orders := router.Group("/order")
	{
		orders.POST("/select", orderCtr.Select)
		orders.POST("/quantity", orderCtr.SetQuantity)
		orders.POST("/submit", orderCtr.Submit)
		orders.POST("/close", orderCtr.Close)
	}
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ping", controller.New().Ping)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestListProducts(t *testing.T) {
	router := newTestRouter()

	t.Run("filters and sorts via query parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products?search=jacket&sort=price-desc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp controller.ListProductsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 3, resp.Count)
		assert.Equal(t, 5499, resp.Products[0].Price)
		assert.Equal(t, 3299, resp.Products[2].Price)
	})

	t.Run("zero matches returns an empty list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products?search=snowboard", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp controller.ListProductsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Count)
		assert.Empty(t, resp.Products)
	})

	t.Run("unknown sort key is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products?sort=rating", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderFlow(t *testing.T) {
	t.Run("select unknown id returns 404", func(t *testing.T) {
		router := newTestRouter()

		w := postJSON(t, router, "/order/select", gin.H{"product_id": 999})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "product not found")
	})

	t.Run("quantity without selection returns 409", func(t *testing.T) {
		router := newTestRouter()

		w := postJSON(t, router, "/order/quantity", gin.H{"quantity": 2})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("non-integer quantity clamps to 1", func(t *testing.T) {
		router := newTestRouter()
		require.Equal(t, http.StatusOK, postJSON(t, router, "/order/select", gin.H{"product_id": 2}).Code)

		w := postJSON(t, router, "/order/quantity", gin.H{"quantity": 2.5})

		require.Equal(t, http.StatusOK, w.Code)
		var resp controller.SelectionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Quantity)
		assert.Equal(t, 4299, resp.Total)
	})

	t.Run("submit with missing fields returns 422 naming them", func(t *testing.T) {
		router := newTestRouter()
		require.Equal(t, http.StatusOK, postJSON(t, router, "/order/select", gin.H{"product_id": 2}).Code)

		w := postJSON(t, router, "/order/submit", gin.H{
			"phone":   "0300 1234567",
			"size":    "M",
			"channel": "whatsapp",
		})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp controller.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"name", "address"}, resp.MissingFields)
	})

	t.Run("full flow dispatches a whatsapp link", func(t *testing.T) {
		router := newTestRouter()
		require.Equal(t, http.StatusOK, postJSON(t, router, "/order/select", gin.H{"product_id": 2}).Code)
		require.Equal(t, http.StatusOK, postJSON(t, router, "/order/quantity", gin.H{"quantity": 2}).Code)

		w := postJSON(t, router, "/order/submit", gin.H{
			"name":    "Amna Khan",
			"phone":   "0300 1234567",
			"address": "12 Canal Road, Lahore",
			"size":    "M",
			"channel": "whatsapp",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var action dispatch.ChannelAction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &action))
		assert.Equal(t, dispatch.ChannelWhatsApp, action.Channel)
		assert.Contains(t, action.URL, "https://wa.me/923005551234?text=")
		assert.Contains(t, action.URL, "8598")

		// closing the modal clears the selection for the next order
		assert.Equal(t, http.StatusOK, postJSON(t, router, "/order/close", nil).Code)
		assert.Equal(t, http.StatusConflict, postJSON(t, router, "/order/quantity", gin.H{"quantity": 2}).Code)
	})
}
