package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutsvc "g2-storefront/internal/service/checkout"
)

func checkoutHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info checkoutsvc.CustomerInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		result, err := svc.Checkout(c.Request.Context(), sessionID(c), info)
		if err != nil {
			var verr *checkoutsvc.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
				return
			}
			if errors.Is(err, checkoutsvc.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"whatsappUrl": result.URL,
			"cart":        toCartResponse(result.Cart),
		})
	}
}

func enquiryHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info checkoutsvc.EnquiryInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		url, err := svc.Enquiry(info)
		if err != nil {
			var verr *checkoutsvc.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "enquiry failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"whatsappUrl": url})
	}
}

func chatLinkHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"whatsappUrl": svc.ChatLink()})
	}
}
