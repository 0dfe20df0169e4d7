package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pharmanature-storefront/internal/cart"
	"pharmanature-storefront/internal/repository"
)

// SessionHeader carries the cart session id. Requests without it (or with an
// expired id) get a fresh session whose id is echoed back in the response.
const SessionHeader = "X-Cart-Session"

type CartHandler struct {
	sessions *cart.Store
	products ProductFinder
}

func NewCartHandler(sessions *cart.Store, products ProductFinder) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		products: products,
	}
}

// CartSummary is the presentation view of a cart. Monetary amounts are
// rounded to three decimals here and nowhere earlier.
type CartSummary struct {
	Items                    []cart.Item `json:"items"`
	ItemCount                int         `json:"item_count"`
	Subtotal                 float64     `json:"subtotal"`
	RemainingForFreeShipping float64     `json:"remaining_for_free_shipping"`
	ShippingProgressPercent  float64     `json:"shipping_progress_percent"`
	ShippingFee              float64     `json:"shipping_fee"`
	GrandTotal               float64     `json:"grand_total"`
}

func summarize(c *cart.Cart) CartSummary {
	return CartSummary{
		Items:                    c.Items(),
		ItemCount:                c.ItemCount(),
		Subtotal:                 cart.Round3(c.Subtotal()),
		RemainingForFreeShipping: cart.Round3(c.RemainingForFreeShipping()),
		ShippingProgressPercent:  cart.Round3(c.ShippingProgressPercent()),
		ShippingFee:              cart.Round3(c.ShippingFee()),
		GrandTotal:               cart.Round3(c.GrandTotal()),
	}
}

// session resolves the caller's cart, minting a session when needed, and
// echoes the effective id so the client can persist it.
func (h *CartHandler) session(c *gin.Context) *cart.Cart {
	id, crt := h.sessions.GetOrCreate(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, id)
	return crt
}

// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	crt := h.session(c)
	c.JSON(http.StatusOK, summarize(crt))
}

type addItemInput struct {
	ProductID int  `json:"product_id" binding:"required,gt=0"`
	Quantity  *int `json:"quantity"`
}

// POST /v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qty := 1
	if input.Quantity != nil {
		qty = *input.Quantity
	}

	product, err := h.products.FindByID(c.Request.Context(), input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logrus.WithError(err).WithField("id", input.ProductID).Error("resolve cart product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	crt := h.session(c)
	if qty <= 0 {
		// Non-positive quantities are ignored, not rejected.
		logrus.WithFields(logrus.Fields{
			"product_id": input.ProductID,
			"quantity":   qty,
		}).Debug("ignoring non-positive cart quantity")
	}
	crt.AddItem(product, qty)

	c.JSON(http.StatusOK, summarize(crt))
}

type updateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// PATCH /v1/cart/items/:id
//
// Setting the quantity to zero or below removes the line. An unknown id is
// a silent no-op, same as the aggregate itself.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var input updateQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	crt := h.session(c)
	crt.UpdateQuantity(id, input.Quantity)

	c.JSON(http.StatusOK, summarize(crt))
}

// DELETE /v1/cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	crt := h.session(c)
	crt.RemoveItem(id)

	c.JSON(http.StatusOK, summarize(crt))
}

// DELETE /v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	crt := h.session(c)
	crt.Clear()
	c.JSON(http.StatusOK, summarize(crt))
}
