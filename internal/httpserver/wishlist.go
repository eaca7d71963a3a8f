package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitsish/aaishop-ibm-project/internal/app"
)

type toggleWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// The wishlist requires a session. The store itself treats an unbound toggle
// as a silent no-op; at the HTTP boundary that policy surfaces as a 401 so
// the front-end knows to open its login form.
func requireSession(a *app.App, c *gin.Context) bool {
	if _, ok := a.Identity.Current(); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in to use the wishlist"})
		return false
	}
	return true
}

func getWishlistHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(a, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":      a.Wishlist.Entries(),
			"totalItems": a.Wishlist.TotalItems(),
		})
	}
}

func toggleWishlistHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(a, c) {
			return
		}
		var req toggleWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, ok := a.Catalog.GetByID(req.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		a.Wishlist.Toggle(*p)
		c.JSON(http.StatusOK, gin.H{
			"items": a.Wishlist.Entries(),
			"saved": a.Wishlist.Has(p.ID),
		})
	}
}

func removeWishlistItemHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireSession(a, c) {
			return
		}
		a.Wishlist.Remove(c.Param("productId"))
		c.JSON(http.StatusOK, gin.H{
			"items":      a.Wishlist.Entries(),
			"totalItems": a.Wishlist.TotalItems(),
		})
	}
}
