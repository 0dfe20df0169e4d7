package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmanature-storefront/internal/cart"
	"pharmanature-storefront/internal/models"
	"pharmanature-storefront/internal/repository"
)

// stubCatalog implements ProductFinder over a fixed product set.
type stubCatalog struct {
	products map[int]*models.Product
	order    []int
}

func newStubCatalog(products ...*models.Product) *stubCatalog {
	s := &stubCatalog{products: make(map[int]*models.Product)}
	for _, p := range products {
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *stubCatalog) FindByID(_ context.Context, id int) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *stubCatalog) FindByIDs(_ context.Context, ids []int) ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubCatalog) FindAll(_ context.Context, _, pageSize int, _, _, _ string) ([]*models.Product, int64, error) {
	out := make([]*models.Product, 0, len(s.order))
	for _, id := range s.order {
		if len(out) == pageSize {
			break
		}
		out = append(out, s.products[id])
	}
	return out, int64(len(s.order)), nil
}

func newCartRouter(catalog ProductFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCartHandler(cart.NewStore(time.Minute), catalog)

	router := gin.New()
	router.GET("/v1/cart", h.GetCart)
	router.POST("/v1/cart/items", h.AddItem)
	router.PATCH("/v1/cart/items/:id", h.UpdateQuantity)
	router.DELETE("/v1/cart/items/:id", h.RemoveItem)
	router.DELETE("/v1/cart", h.ClearCart)
	return router
}

func doCartRequest(t *testing.T, router *gin.Engine, method, path, session string, body interface{}) (*httptest.ResponseRecorder, CartSummary) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var summary CartSummary
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	}
	return w, summary
}

func testProducts() *stubCatalog {
	return newStubCatalog(
		&models.Product{ID: 1, Name: "Oméga-3", Price: 45.500, ImageURL: "/img/omega3.jpg"},
		&models.Product{ID: 2, Name: "Créatine", Price: 89.000, ImageURL: "/img/creatine.jpg"},
	)
}

func TestCartAddItemAndTotals(t *testing.T) {
	router := newCartRouter(testProducts())

	w, summary := doCartRequest(t, router, http.MethodPost, "/v1/cart/items", "", map[string]interface{}{
		"product_id": 1, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	session := w.Header().Get(SessionHeader)
	require.NotEmpty(t, session)
	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, 91.000, summary.Subtotal)

	w, summary = doCartRequest(t, router, http.MethodPost, "/v1/cart/items", session, map[string]interface{}{
		"product_id": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session, w.Header().Get(SessionHeader))

	require.Len(t, summary.Items, 2)
	assert.Equal(t, "Oméga-3", summary.Items[0].Name)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 180.000, summary.Subtotal)
	assert.Equal(t, 0.0, summary.ShippingFee)
	assert.Equal(t, 180.000, summary.GrandTotal)
	assert.Equal(t, 100.0, summary.ShippingProgressPercent)
	assert.Equal(t, 0.0, summary.RemainingForFreeShipping)
}

func TestCartTotalsBelowThresholdRounded(t *testing.T) {
	router := newCartRouter(testProducts())

	w, summary := doCartRequest(t, router, http.MethodPost, "/v1/cart/items", "", map[string]interface{}{
		"product_id": 1, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 45.500, summary.Subtotal)
	assert.Equal(t, 74.500, summary.RemainingForFreeShipping)
	assert.Equal(t, 37.917, summary.ShippingProgressPercent)
	assert.Equal(t, 7.000, summary.ShippingFee)
	assert.Equal(t, 52.500, summary.GrandTotal)
}

func TestCartAddUnknownProduct(t *testing.T) {
	router := newCartRouter(testProducts())

	w, _ := doCartRequest(t, router, http.MethodPost, "/v1/cart/items", "", map[string]interface{}{
		"product_id": 99,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddNonPositiveQuantityIsNoOp(t *testing.T) {
	router := newCartRouter(testProducts())

	w, summary := doCartRequest(t, router, http.MethodPost, "/v1/cart/items", "", map[string]interface{}{
		"product_id": 1, "quantity": -2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.ItemCount)
}

func TestCartUpdateQuantityToZeroRemoves(t *testing.T) {
	router := newCartRouter(testProducts())

	w, _ := doCartRequest(t, router, http.MethodPost, "/v1/cart/items", "", map[string]interface{}{
		"product_id": 1, "quantity": 2,
	})
	session := w.Header().Get(SessionHeader)

	w, summary := doCartRequest(t, router, http.MethodPatch, "/v1/cart/items/1", session, map[string]interface{}{
		"quantity": 0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, summary.Items)
}

func TestCartRemoveItemIdempotent(t *testing.T) {
	router := newCartRouter(testProducts())

	w, _ := doCartRequest(t, router, http.MethodPost, "/v1/cart/items", "", map[string]interface{}{
		"product_id": 1,
	})
	session := w.Header().Get(SessionHeader)

	w, summary := doCartRequest(t, router, http.MethodDelete, "/v1/cart/items/1", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, summary.Items)

	w, summary = doCartRequest(t, router, http.MethodDelete, "/v1/cart/items/1", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, summary.Items)
}

func TestCartClear(t *testing.T) {
	router := newCartRouter(testProducts())

	w, _ := doCartRequest(t, router, http.MethodPost, "/v1/cart/items", "", map[string]interface{}{
		"product_id": 1, "quantity": 3,
	})
	session := w.Header().Get(SessionHeader)

	w, summary := doCartRequest(t, router, http.MethodDelete, "/v1/cart", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.ItemCount)
	assert.Equal(t, 7.000, summary.GrandTotal)
}

func TestCartEmptyGet(t *testing.T) {
	router := newCartRouter(testProducts())

	w, summary := doCartRequest(t, router, http.MethodGet, "/v1/cart", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(SessionHeader))
	assert.Equal(t, 0, summary.ItemCount)
	assert.Equal(t, 120.000, summary.RemainingForFreeShipping)
	assert.Equal(t, 0.0, summary.ShippingProgressPercent)
}
