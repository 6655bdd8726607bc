package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopManagement/internal/config"
	"shopManagement/internal/db"
	"shopManagement/internal/httpapi"
	"shopManagement/repository"
	"shopManagement/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	// Open DB (creates the file and schema on first run)
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	users := repository.NewUserRepository(d)
	products := repository.NewProductRepository(d)
	carts := repository.NewCartRepository(d)
	orders := repository.NewOrderRepository(d)

	app := httpapi.New(cfg,
		service.NewUserService(users),
		service.NewCatalogService(products),
		service.NewCartService(products, carts, orders),
	)

	go func() {
		if err := app.Listen(cfg.HTTP.Address); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()
	log.Printf("HTTP server listening on %s", cfg.HTTP.Address)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
