package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/spectexnika/listing-api/internal/config"
	"github.com/spectexnika/listing-api/internal/database"
	"github.com/spectexnika/listing-api/internal/handlers"
	"github.com/spectexnika/listing-api/internal/services"
	"github.com/spectexnika/listing-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	recordStore, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up storage: %v", err)
	}
	defer closeStore()

	catalogService := services.NewCatalogService(recordStore)
	relayService := services.NewRelayService(cfg.BotWebhookURL, cfg.BotMessageWebhookURL, cfg.RelayTimeout)

	dev := !cfg.IsProduction()
	productHandler := handlers.NewProductHandler(catalogService, dev)
	equipmentHandler := handlers.NewEquipmentHandler(catalogService, dev)
	newsHandler := handlers.NewNewsHandler(catalogService, dev)
	hotOffersHandler := handlers.NewHotOffersHandler(catalogService, dev)
	notifyHandler := handlers.NewNotifyHandler(relayService, cfg.UploadDir)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api")

	api.Get("/news/paginated", newsHandler.ListPaginated)
	api.Get("/news", newsHandler.ListAll)
	api.Get("/news/:id", newsHandler.Get)
	api.Post("/news/:id/increment-view", newsHandler.IncrementView)
	api.Post("/news/:id/toggle-like", newsHandler.ToggleLike)

	api.Get("/products/paginated", productHandler.ListPaginated)
	api.Post("/products/:id/increment-view", productHandler.IncrementView)
	api.Post("/products/:id/toggle-like", productHandler.ToggleLike)

	api.Get("/equipment", equipmentHandler.ListAll)
	api.Get("/equipment/paginated", equipmentHandler.ListPaginated)
	api.Post("/equipment/:id/increment-view", equipmentHandler.IncrementView)
	api.Post("/equipment/:id/toggle-like", equipmentHandler.ToggleLike)

	api.Get("/hot-offers", hotOffersHandler.List)
	api.Get("/hot-offers/paginated", hotOffersHandler.ListPaginated)
	api.Get("/hot-offers/product/:slug", hotOffersHandler.GetBySlug)
	api.Post("/hot-offers/:slug/increment-view", hotOffersHandler.IncrementViewBySlug)

	api.Get("/ads/:slug", hotOffersHandler.GetBySlug)
	api.Post("/ads/:slug/increment-view", hotOffersHandler.IncrementViewBySlug)

	api.Post("/notifications", notifyHandler.Send)
	api.Post("/notifications/ping", notifyHandler.Ping)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	// Relay cleanup normally removes spooled uploads; the sweeper catches
	// files orphaned by a crash between spool and relay.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			sweepUploads(cfg.UploadDir, 24*time.Hour)
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

func newStore(ctx context.Context, cfg *config.Config) (store.RecordStore, func(), error) {
	switch cfg.StorageDriver {
	case "file", "":
		fs := store.NewFileStore(map[string]string{
			store.Products:  cfg.ProductsFile,
			store.Equipment: cfg.EquipmentFile,
			store.News:      cfg.NewsFile,
		})
		return fs, func() {}, nil

	case "postgres":
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store.NewPostgresStore(db), db.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(client), func() { _ = client.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func sweepUploads(dir string, maxAge time.Duration) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				log.Printf("sweep: failed to remove stale upload %s: %v", path, err)
			}
		}
	}
}
