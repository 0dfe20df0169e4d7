package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"pharmanature-storefront/internal/cache"
	"pharmanature-storefront/internal/models"
	"pharmanature-storefront/internal/repository"
)

type ProductHandler struct {
	repo  *repository.ProductRepository
	cache *cache.Cache
}

func NewProductHandler(repo *repository.ProductRepository, c *cache.Cache) *ProductHandler {
	return &ProductHandler{
		repo:  repo,
		cache: c,
	}
}

// POST /v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product

	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.repo.Create(c.Request.Context(), &product); err != nil {
		logrus.WithError(err).Error("create product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusCreated, product)
}

// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	cacheKey := fmt.Sprintf("product:%d", id)

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logrus.WithError(err).WithField("id", id).Error("get product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	h.cache.Set(cacheKey, product, 5*time.Minute)
	c.JSON(http.StatusOK, product)
}

// GET /v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	category := c.Query("category")
	sortBy := c.DefaultQuery("sort_by", "created_at")
	sortOrder := c.DefaultQuery("sort_order", "desc")

	cacheKey := fmt.Sprintf(
		"products:list:p%d_s%d_cat:%s_sort:%s_%s",
		page, pageSize, category, sortBy, sortOrder,
	)

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, total, err := h.repo.FindAll(
		c.Request.Context(),
		page,
		pageSize,
		category,
		sortBy,
		sortOrder,
	)
	if err != nil {
		logrus.WithError(err).Error("list products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	response := gin.H{
		"data":      products,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"total_pages": func() int64 {
			if pageSize == 0 {
				return 1
			}
			tp := total / int64(pageSize)
			if total%int64(pageSize) != 0 {
				tp++
			}
			return tp
		}(),
	}

	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// PATCH /v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateMap := bson.M{}
	if update.Name != nil {
		updateMap["name"] = *update.Name
	}
	if update.Brand != nil {
		updateMap["brand"] = *update.Brand
	}
	if update.Description != nil {
		updateMap["description"] = *update.Description
	}
	if update.Category != nil {
		updateMap["category"] = *update.Category
	}
	if update.Price != nil {
		updateMap["price"] = *update.Price
	}
	if update.OldPrice != nil {
		updateMap["old_price"] = *update.OldPrice
	}
	if update.Discount != nil {
		updateMap["discount"] = *update.Discount
	}
	if update.Quantity != nil {
		updateMap["quantity"] = *update.Quantity
	}
	if update.ImageURL != nil {
		updateMap["image_url"] = *update.ImageURL
	}
	if update.Images != nil {
		updateMap["images"] = update.Images
	}
	if update.Specifications != nil {
		updateMap["specifications"] = update.Specifications
	}

	if len(updateMap) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, updateMap); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logrus.WithError(err).WithField("id", id).Error("update product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%d", id))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DELETE /v1/products/:id (soft delete)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.repo.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logrus.WithError(err).WithField("id", id).Error("delete product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%d", id))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
