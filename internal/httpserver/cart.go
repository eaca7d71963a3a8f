package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitsish/aaishop-ibm-project/internal/app"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func cartView(a *app.App) gin.H {
	return gin.H{
		"items":           a.Cart.Entries(),
		"totalItems":      a.Cart.TotalItems(),
		"totalPriceCents": a.Cart.TotalPriceCents(),
	}
}

func getCartHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(a))
	}
}

func addCartItemHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, ok := a.Catalog.GetByID(req.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		a.Cart.Add(*p, req.Size, req.Color)
		c.JSON(http.StatusOK, cartView(a))
	}
}

func updateCartItemHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		a.Cart.UpdateQuantity(c.Param("productId"), req.Quantity)
		c.JSON(http.StatusOK, cartView(a))
	}
}

func removeCartItemHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Cart.Remove(c.Param("productId"))
		c.JSON(http.StatusOK, cartView(a))
	}
}

func clearCartHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Cart.Clear()
		c.JSON(http.StatusOK, cartView(a))
	}
}
