package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitsish/aaishop-ibm-project/internal/app"
	"github.com/gitsish/aaishop-ibm-project/internal/catalog"
)

func listProductsHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := a.Catalog.List(catalog.Filter{
			Category: c.Query("category"),
			Query:    c.Query("q"),
		})
		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"count":      len(products),
			"categories": catalog.Categories,
		})
	}
}

func getProductHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := a.Catalog.GetByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}
