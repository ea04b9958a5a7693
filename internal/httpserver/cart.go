package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"g2-storefront/internal/domain"
	cartsvc "g2-storefront/internal/service/cart"
	catalogsvc "g2-storefront/internal/service/catalog"
)

type cartResponse struct {
	Items      []domain.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int64             `json:"totalPrice"`
	IsOpen     bool              `json:"isOpen"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := cart.Lines
	if items == nil {
		items = []domain.CartLine{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
		IsOpen:     cart.Open,
	}
}

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := svc.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func addCartItemHandler(svc *cartsvc.Service, catalog *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ProductID string `json:"productId"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}

		p, err := catalog.Get(c.Request.Context(), body.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}

		cart := svc.AddItem(c.Request.Context(), sessionID(c), p.Summary())
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func updateCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Quantity *int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}

		cart := svc.UpdateQuantity(c.Request.Context(), sessionID(c), c.Param("id"), *body.Quantity)
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func removeCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := svc.RemoveItem(c.Request.Context(), sessionID(c), c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := svc.Clear(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func setDrawerHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Open *bool `json:"open"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Open == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "open required"})
			return
		}

		cart := svc.SetDrawerOpen(c.Request.Context(), sessionID(c), *body.Open)
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}
