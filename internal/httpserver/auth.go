package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gitsish/aaishop-ibm-project/internal/app"
	"github.com/gitsish/aaishop-ibm-project/internal/domain"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id, err := a.Identity.Register(req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": id})
	}
}

func loginHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id, err := a.Identity.Login(req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": id})
	}
}

func logoutHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Identity.Logout()
		c.Status(http.StatusNoContent)
	}
}

func meHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := a.Identity.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": id})
	}
}
