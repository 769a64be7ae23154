// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopkart/backend/internal/config"
	"github.com/shopkart/backend/internal/handlers"
	"github.com/shopkart/backend/internal/middleware"
	"github.com/shopkart/backend/internal/services"
	"github.com/shopkart/backend/internal/store"
	"github.com/shopkart/backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	blobStore := store.NewGormStore(db)

	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(blobStore, catalogService)
	wishlistService := services.NewWishlistService(blobStore)
	paymentService := services.NewPaymentService(cfg)
	notificationService := services.NewNotificationService(db)
	orderService := services.NewOrderService(db, cartService, notificationService)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	checkoutHandler := handlers.NewCheckoutHandler(orderService, paymentService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.OptionalAuth())
	r.Use(middleware.SessionKeys(cfg.Storefront.CartStorageKey, cfg.Storefront.WishlistStorageKey))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		v1.GET("/categories", catalogHandler.GetCategories)

		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		// Wishlist routes
		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.DELETE("", wishlistHandler.ClearWishlist)
			wishlist.POST("/items", wishlistHandler.AddItem)
			wishlist.DELETE("/items/:productId", wishlistHandler.RemoveItem)
		}

		// Checkout
		v1.POST("/checkout", middleware.CheckoutRateLimit(), checkoutHandler.Checkout)

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}
	}

	return r
}
