package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/sessionnotes/config"
	"github.com/yoockh/sessionnotes/internal/api/handlers"
	"github.com/yoockh/sessionnotes/internal/api/middleware"
	"github.com/yoockh/sessionnotes/internal/api/routes"
	"github.com/yoockh/sessionnotes/internal/logger"
	"github.com/yoockh/sessionnotes/internal/repositories/memory"
	"github.com/yoockh/sessionnotes/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load("8080")
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, closeProviders := buildProviders(ctx, cfg, log)
	defer closeProviders()

	svc := services.NewSessionService(memory.NewSessionRepo(), p, services.SessionOptions{
		StageTimeout:      cfg.UpstreamTimeout,
		MissingCredential: cfg.MissingCredential(),
	}, log)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log, "Internal Server Error"))
	routes.RegisterRoutes(r, routes.Deps{
		Session: handlers.NewSessionHandler(svc),
		Logger:  log,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.WithField("port", cfg.Port).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
}
