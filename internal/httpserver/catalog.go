package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"g2-storefront/internal/domain"
	catalogsvc "g2-storefront/internal/service/catalog"
)

func criteriaFromQuery(c *gin.Context) catalogsvc.Criteria {
	criteria := catalogsvc.DefaultCriteria()
	if q := c.Query("q"); q != "" {
		criteria.Query = q
	}
	if category := c.Query("category"); category != "" {
		criteria.Category = category
	}
	if brand := c.Query("brand"); brand != "" {
		criteria.Brand = brand
	}
	switch sort := c.Query("sort"); sort {
	case catalogsvc.SortFeatured, catalogsvc.SortPriceLow, catalogsvc.SortPriceHigh, catalogsvc.SortNewest:
		criteria.Sort = sort
	}
	return criteria
}

func listProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), criteriaFromQuery(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"total": len(products), "products": products})
	}
}

func getProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func relatedProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		related, err := svc.Related(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load related products"})
			return
		}
		if related == nil {
			related = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": related})
	}
}

func bestSellersHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.BestSellers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list best sellers"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func categoriesHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func brandsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		brands, err := svc.Brands(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list brands"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"brands": brands})
	}
}
