package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmsoc-api/cart"
	"farmsoc-api/models"
)

type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *memoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

type catalogStub struct {
	products map[string]models.Product
}

func (c *catalogStub) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return &p, nil
}

func newCartTestRouter(t *testing.T) (*gin.Engine, *cart.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := cart.NewManager(newMemoryKV())
	t.Cleanup(carts.Shutdown)

	catalog := &catalogStub{products: map[string]models.Product{
		"p1": {ID: "p1", Name: "Organic Tomatoes", Price: decimal.RequireFromString("2.99"), Unit: "kg"},
		"p2": {ID: "p2", Name: "Alphonso Mangoes", Price: decimal.RequireFromString("8.99"), Unit: "dozen"},
	}}
	ctrl := NewCartController(carts, catalog)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "u1")
	})
	router.GET("/cart", ctrl.GetCart)
	router.DELETE("/cart", ctrl.ClearCart)
	router.POST("/cart/items", ctrl.AddItem)
	router.PATCH("/cart/items/:productId", ctrl.UpdateItem)
	router.DELETE("/cart/items/:productId", ctrl.RemoveItem)
	return router, carts
}

type cartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Items []cart.Line `json:"items"`
		Total string      `json:"total"`
	} `json:"data"`
}

func doCartRequest(t *testing.T, router *gin.Engine, method, path string, body any) (int, cartResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp cartResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func TestGetCartStartsEmpty(t *testing.T) {
	router, _ := newCartTestRouter(t)

	code, resp := doCartRequest(t, router, http.MethodGet, "/cart", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data.Items)
	assert.Equal(t, "0", resp.Data.Total)
}

func TestAddItemMergesDuplicateProduct(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p1", Quantity: 1})
	code, resp := doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p1", Quantity: 2})

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, 3, resp.Data.Items[0].Quantity)
	assert.Equal(t, "8.97", resp.Data.Total)
}

func TestAddItemUnknownProductReturns404(t *testing.T) {
	router, _ := newCartTestRouter(t)

	code, resp := doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "missing", Quantity: 1})

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Success)
}

func TestUpdateItemClampsQuantity(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p1", Quantity: 3})
	code, resp := doCartRequest(t, router, http.MethodPatch, "/cart/items/p1", models.UpdateCartItemRequest{Quantity: 0})

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, 1, resp.Data.Items[0].Quantity)
}

func TestUpdateItemUnknownProductIsNoOp(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p1", Quantity: 2})
	code, resp := doCartRequest(t, router, http.MethodPatch, "/cart/items/ghost", models.UpdateCartItemRequest{Quantity: 5})

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "p1", resp.Data.Items[0].Product.ID)
	assert.Equal(t, 2, resp.Data.Items[0].Quantity)
}

func TestRemoveItemRecomputesTotal(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p1", Quantity: 1})
	doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p2", Quantity: 1})
	code, resp := doCartRequest(t, router, http.MethodDelete, "/cart/items/p1", nil)

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "p2", resp.Data.Items[0].Product.ID)
	assert.Equal(t, "8.99", resp.Data.Total)
}

func TestRemoveItemUnknownProductIsNoOp(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p1", Quantity: 2})
	code, resp := doCartRequest(t, router, http.MethodDelete, "/cart/items/ghost", nil)

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, 2, resp.Data.Items[0].Quantity)
}

func TestClearCartEmptiesEverything(t *testing.T) {
	router, _ := newCartTestRouter(t)

	doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p1", Quantity: 2})
	doCartRequest(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: "p2", Quantity: 1})
	code, resp := doCartRequest(t, router, http.MethodDelete, "/cart", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Data.Items)
	assert.Equal(t, "0", resp.Data.Total)
}
