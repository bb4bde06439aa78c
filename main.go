package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"synergia-booking/config"
	"synergia-booking/database"
	"synergia-booking/handlers"
	"synergia-booking/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	var store database.Store
	var client *database.Client

	switch cfg.Store {
	case config.MongoStore:
		client = database.NewClient(cfg.MongoURL)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		collection, err := client.Collection(ctx, cfg.Database, cfg.Collection)
		cancel()
		if err != nil {
			log.Fatalf("database error: %v", err)
		}
		store = database.NewMongoStore(collection)
	case config.MemoryStore:
		if cfg.LocalDBPath == "" {
			store = database.NewMemoryStore()
			break
		}
		local, err := database.NewLocalStore(cfg.LocalDBPath)
		if err != nil {
			log.Fatalf("database error: %v", err)
		}
		store = local
	}

	appConfig := router.NewConfig()
	appConfig.DisableStartupMessage = true
	app := fiber.New(appConfig)
	router.SetupRoutes(app, handlers.New(store, cfg.DBTimeout))

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Server is running on http://localhost:%s (%s store)", cfg.Port, cfg.Store)
		errChan <- app.Listen(":" + cfg.Port)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Printf("Server error: %v", err)
	case sig := <-stop:
		log.Printf("Received signal %s, shutting down", sig)
		if err := app.Shutdown(); err != nil {
			log.Printf("Could not shut down the server: %v", err)
		}
	}

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Print(err)
		}
	}
}
