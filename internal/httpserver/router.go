package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cartsvc "g2-storefront/internal/service/cart"
	catalogsvc "g2-storefront/internal/service/catalog"
	checkoutsvc "g2-storefront/internal/service/checkout"
)

// Deps carries the services the routes are built on.
type Deps struct {
	CatalogSvc  *catalogsvc.Service
	CartSvc     *cartsvc.Service
	CheckoutSvc *checkoutsvc.Service
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.Use(sessionMiddleware())

	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	api.GET("/products/:id/related", relatedProductsHandler(deps.CatalogSvc))
	api.GET("/best-sellers", bestSellersHandler(deps.CatalogSvc))
	api.GET("/categories", categoriesHandler(deps.CatalogSvc))
	api.GET("/brands", brandsHandler(deps.CatalogSvc))

	api.GET("/cart", getCartHandler(deps.CartSvc))
	api.POST("/cart/items", addCartItemHandler(deps.CartSvc, deps.CatalogSvc))
	api.PUT("/cart/items/:id", updateCartItemHandler(deps.CartSvc))
	api.DELETE("/cart/items/:id", removeCartItemHandler(deps.CartSvc))
	api.DELETE("/cart", clearCartHandler(deps.CartSvc))
	api.PUT("/cart/drawer", setDrawerHandler(deps.CartSvc))

	api.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
	api.POST("/enquiry", enquiryHandler(deps.CheckoutSvc))
	api.GET("/chat-link", chatLinkHandler(deps.CheckoutSvc))

	return router, nil
}
