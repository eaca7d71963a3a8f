package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the storefront facade. Handlers are thin:
// they bind the payload, call one store operation and shape the response.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = deps.CORSOrigins
		cfg.AllowCredentials = true
		router.Use(cors.New(cfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Pinger))

	a := deps.App

	auth := router.Group("/auth")
	{
		auth.POST("/register", registerHandler(a))
		auth.POST("/login", loginHandler(a))
		auth.POST("/logout", logoutHandler(a))
		auth.GET("/me", meHandler(a))
	}

	products := router.Group("/products")
	{
		products.GET("", listProductsHandler(a))
		products.GET("/:id", getProductHandler(a))
		products.GET("/:id/reviews", listReviewsHandler(a))
		products.POST("/:id/reviews", postReviewHandler(a))
	}

	cartGroup := router.Group("/cart")
	{
		cartGroup.GET("", getCartHandler(a))
		cartGroup.DELETE("", clearCartHandler(a))
		cartGroup.POST("/items", addCartItemHandler(a))
		cartGroup.PATCH("/items/:productId", updateCartItemHandler(a))
		cartGroup.DELETE("/items/:productId", removeCartItemHandler(a))
	}

	wishlistGroup := router.Group("/wishlist")
	{
		wishlistGroup.GET("", getWishlistHandler(a))
		wishlistGroup.POST("/toggle", toggleWishlistHandler(a))
		wishlistGroup.DELETE("/:productId", removeWishlistItemHandler(a))
	}

	return router
}
