package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"pharmanature-storefront/internal/cache"
	"pharmanature-storefront/internal/models"
	"pharmanature-storefront/internal/repository"
)

// ProductFinder is the slice of the product repository the offers and cart
// handlers need. Narrow on purpose so tests can supply a stub catalog.
type ProductFinder interface {
	FindByID(ctx context.Context, id int) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []int) ([]*models.Product, error)
	FindAll(ctx context.Context, page, pageSize int, category, sortBy, sortOrder string) ([]*models.Product, int64, error)
}

// OffersStore abstracts the singleton config document persistence.
type OffersStore interface {
	Get(ctx context.Context) (*models.StoredOffersConfig, error)
	Save(ctx context.Context, cfg *models.OffersConfig) error
}

type OffersHandler struct {
	store    OffersStore
	products ProductFinder
	cache    *cache.Cache
	validate *validator.Validate
}

func NewOffersHandler(store OffersStore, products ProductFinder, c *cache.Cache) *OffersHandler {
	return &OffersHandler{
		store:    store,
		products: products,
		cache:    c,
		validate: validator.New(),
	}
}

const offersCacheKey = "offers:config"

// resolved fetches the stored document and fills missing fields with their
// defaults, so callers always see a fully populated configuration.
func (h *OffersHandler) resolved(ctx context.Context) (models.OffersConfig, error) {
	stored, err := h.store.Get(ctx)
	if err != nil {
		return models.OffersConfig{}, err
	}
	return models.ResolveOffersConfig(stored), nil
}

// GET /v1/offers
func (h *OffersHandler) GetOffers(c *gin.Context) {
	if cached, found := h.cache.Get(offersCacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	cfg, err := h.resolved(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("get offers config failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offers config"})
		return
	}

	h.cache.Set(offersCacheKey, cfg, 5*time.Minute)
	c.JSON(http.StatusOK, cfg)
}

// PUT /v1/offers
func (h *OffersHandler) UpdateOffers(c *gin.Context) {
	var cfg models.OffersConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.validate.Struct(cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.Save(c.Request.Context(), &cfg); err != nil {
		logrus.WithError(err).Error("save offers config failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save offers config"})
		return
	}

	h.cache.Delete(offersCacheKey)
	h.cache.DeleteByPrefix("offers:grid")

	c.JSON(http.StatusOK, cfg)
}

// GET /v1/offers/grid
//
// Resolves the all-offers grid: with manual selection on, exactly the
// configured ids in their configured order (stale ids skipped); otherwise
// the first `limit` products of the catalog's default ordering.
func (h *OffersHandler) GetOffersGrid(c *gin.Context) {
	const cacheKey = "offers:grid"

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	cfg, err := h.resolved(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("get offers config failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offers config"})
		return
	}
	grid := cfg.AllOffersGrid

	var products []*models.Product
	if grid.UseManualSelection {
		products, err = h.products.FindByIDs(c.Request.Context(), grid.ManualProductIDs)
	} else {
		products, _, err = h.products.FindAll(c.Request.Context(), 1, grid.Limit, "", "", "")
	}
	if err != nil {
		logrus.WithError(err).Error("load offers grid failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load offers grid"})
		return
	}

	response := gin.H{
		"title":       grid.Title,
		"title_color": grid.TitleColor,
		"enabled":     grid.Enabled,
		"products":    products,
	}

	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// GET /v1/offers/deal
//
// The deal-of-the-day product. A stale product id is a 404, not a server
// error: the reference is soft and validated only at lookup time.
func (h *OffersHandler) GetDealOfTheDay(c *gin.Context) {
	cfg, err := h.resolved(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("get offers config failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offers config"})
		return
	}

	deal := cfg.DealOfTheDay
	product, err := h.products.FindByID(c.Request.Context(), deal.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "deal product not found"})
			return
		}
		logrus.WithError(err).WithField("id", deal.ProductID).Error("get deal product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get deal product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":       deal.Title,
		"title_color": deal.TitleColor,
		"badge_text":  deal.BadgeText,
		"enabled":     deal.Enabled,
		"product":     product,
	})
}
