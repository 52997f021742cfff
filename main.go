package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "brtc-gateway/internal/config"
	router "brtc-gateway/internal/http"
	h "brtc-gateway/internal/http/handlers"
	"brtc-gateway/internal/services"
	"brtc-gateway/internal/upstream"
	"brtc-gateway/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	utils.InitLogger(env.GinMode == gin.ReleaseMode)
	defer utils.SyncLogger()

	client := upstream.New(env.APIBaseURL, env.APIToken, env.UpstreamTimeout)

	board := &services.DepartureBoard{API: client, Interval: env.RefreshInterval}
	if err := board.Start(context.Background()); err != nil {
		// The board recovers per-bus on its refresh ticks; an upstream
		// outage at boot must not keep the gateway down.
		log.Printf("warning: departure board start failed: %v", err)
	}
	defer board.Stop()

	r := router.NewRouter(env, h.New(client, board))

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Gateway listening on http://localhost%s (upstream %s)", env.AppAddr, env.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
