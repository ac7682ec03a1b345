package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fsanano/shop-client/internal/app"
	"fsanano/shop-client/internal/config"
	"fsanano/shop-client/internal/handler"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Wire client, state and services
	ctx := context.Background()
	a, err := app.New(ctx, cfg, log.Default())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()

	if a.Restore(ctx) {
		fmt.Printf("Signed in as %s\n", a.State.Auth().User.Username)
	} else {
		fmt.Println("No saved session, serving signed out")
	}

	h := handler.NewHandler(a.Services)

	// 3. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 4. Run Server with Graceful Shutdown
	go func() {
		fmt.Printf("Starting gateway on port %s (upstream %s)\n", cfg.ServerPort, cfg.API.BaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
