package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"pharmanature-storefront/internal/cache"
	"pharmanature-storefront/internal/cart"
	"pharmanature-storefront/internal/handlers"
	"pharmanature-storefront/internal/repository"
)

// RegisterRoutes wires repositories, caches and handlers onto the router.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cartTTL time.Duration) {
	products := repository.NewProductRepository(db)
	categories := repository.NewCategoryRepository(db)
	offers := repository.NewOffersRepository(db)

	responseCache := cache.New(5 * time.Minute)
	sessions := cart.NewStore(cartTTL)

	productHandler := handlers.NewProductHandler(products, responseCache)
	categoryHandler := handlers.NewCategoryHandler(categories, responseCache)
	offersHandler := handlers.NewOffersHandler(offers, products, responseCache)
	cartHandler := handlers.NewCartHandler(sessions, products)

	v1 := router.Group("/v1")
	{
		v1.POST("/products", productHandler.CreateProduct)
		v1.GET("/products", productHandler.ListProducts)
		v1.GET("/products/:id", productHandler.GetProduct)
		v1.PATCH("/products/:id", productHandler.UpdateProduct)
		v1.DELETE("/products/:id", productHandler.DeleteProduct)

		v1.GET("/categories", categoryHandler.ListCategories)
		v1.GET("/categories/:name", categoryHandler.GetCategory)

		v1.GET("/offers", offersHandler.GetOffers)
		v1.PUT("/offers", offersHandler.UpdateOffers)
		v1.GET("/offers/grid", offersHandler.GetOffersGrid)
		v1.GET("/offers/deal", offersHandler.GetDealOfTheDay)

		v1.GET("/cart", cartHandler.GetCart)
		v1.POST("/cart/items", cartHandler.AddItem)
		v1.PATCH("/cart/items/:id", cartHandler.UpdateQuantity)
		v1.DELETE("/cart/items/:id", cartHandler.RemoveItem)
		v1.DELETE("/cart", cartHandler.ClearCart)
	}
}
