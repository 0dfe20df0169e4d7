package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pharmanature-storefront/internal/cache"
	"pharmanature-storefront/internal/repository"
)

type CategoryHandler struct {
	repo  *repository.CategoryRepository
	cache *cache.Cache
}

func NewCategoryHandler(repo *repository.CategoryRepository, c *cache.Cache) *CategoryHandler {
	return &CategoryHandler{
		repo:  repo,
		cache: c,
	}
}

// GET /v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	const cacheKey = "categories:list"

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	categories, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list categories failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	response := gin.H{"data": categories}
	h.cache.Set(cacheKey, response, 10*time.Minute)
	c.JSON(http.StatusOK, response)
}

// GET /v1/categories/:name
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	name := c.Param("name")

	category, err := h.repo.FindByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		logrus.WithError(err).WithField("name", name).Error("get category failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get category"})
		return
	}

	c.JSON(http.StatusOK, category)
}
