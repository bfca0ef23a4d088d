//go:generate go get -u github.com/valyala/quicktemplate/qtc
//go:generate qtc -dir=views

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bios-Marcel/bookadoctor/api"
	"github.com/Bios-Marcel/bookadoctor/config"
	"github.com/Bios-Marcel/bookadoctor/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// The bolt file will be created if it doesn't exist.
	sessions, err := store.OpenSessions(cfg.Storage.BoltPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sessions.Close()

	var state store.State = store.NewMemoryState()
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis connection failed, keeping sessions in memory: %v", err)
		} else {
			log.Printf("Redis connected, sharing sessions via %s", cfg.Redis.Addr)
			state = store.NewRedisState(redisClient, cfg.Redis.TTL)
		}
	}

	srv := newServer(cfg, api.NewClient(cfg.API.BaseURL, cfg.API.Timeout), store.New(state, sessions))
	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s, backend at %s", cfg.Server.Port, cfg.API.BaseURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Shutdown failed: %v", err)
	}
}
