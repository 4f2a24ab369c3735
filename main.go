package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	intconfig "github.com/c51838777-max/santakrit/internal/config"
	router "github.com/c51838777-max/santakrit/internal/http"
	"github.com/c51838777-max/santakrit/internal/http/handlers"
	"github.com/c51838777-max/santakrit/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	// A dead database is not fatal: the adapter probes it and falls back
	// to the local cache when unreachable.
	db, err := intconfig.ConnectDB(env)
	if err != nil {
		log.Printf("warning: database unavailable, serving from local cache: %v", err)
	}
	defer intconfig.CloseDB()

	adapter := store.Open(&store.RemoteStore{DB: db}, store.NewCache(env.CacheDir))
	defer adapter.Close()
	adapter.Watch(env.WatchInterval)

	passHash, err := bcrypt.GenerateFromPassword([]byte(env.SlipPass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash slip passphrase: %v", err)
	}

	handlers.Configure(adapter, env, passHash)

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running at http://localhost%s (store mode: %s)", env.AppAddr, adapter.Mode())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
