package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"g2-storefront/internal/config"
	"g2-storefront/internal/db"
	"g2-storefront/internal/httpserver"
	productrepo "g2-storefront/internal/repository/product"
	cartsvc "g2-storefront/internal/service/cart"
	catalogsvc "g2-storefront/internal/service/catalog"
	checkoutsvc "g2-storefront/internal/service/checkout"
	"g2-storefront/internal/session"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var dbpool *pgxpool.Pool
	var productRepo productrepo.Repository
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		dbpool = pool
		productRepo = productrepo.NewPostgres(pool, logger)
		logger.Printf("catalog source: postgres")
	} else {
		repo, err := productrepo.NewStatic()
		if err != nil {
			logger.Fatalf("load embedded catalog: %v", err)
		}
		productRepo = repo
		logger.Printf("catalog source: embedded")
	}

	var storage session.Storage
	if cfg.RedisAddr != "" {
		redisStorage, err := session.NewRedis(ctx, cfg.RedisAddr, cfg.SessionTTL)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer redisStorage.Close()
		storage = redisStorage
		logger.Printf("session storage: redis (ttl %s)", cfg.SessionTTL)
	} else {
		storage = session.NewMemory()
		logger.Printf("session storage: in-memory")
	}

	catalogService := catalogsvc.New(productRepo)
	cartService := cartsvc.New(storage, logger)
	cartService.Subscribe(func(e cartsvc.Event) {
		logger.Printf("cart %s: session=%s item=%s total_items=%d",
			e.Action, e.SessionID, e.ItemID, e.TotalItems)
	})
	checkoutService := checkoutsvc.New(cartService, checkoutsvc.Options{
		WhatsAppNumber: cfg.WhatsAppNumber,
		StoreName:      cfg.StoreName,
		ClearCart:      cfg.ClearCartOnHandoff,
	}, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
