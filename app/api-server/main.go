package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/sessionnotes/config"
	"github.com/yoockh/sessionnotes/internal/api/handlers"
	"github.com/yoockh/sessionnotes/internal/api/middleware"
	"github.com/yoockh/sessionnotes/internal/api/routes"
	"github.com/yoockh/sessionnotes/internal/logger"
	"github.com/yoockh/sessionnotes/internal/services"
	"github.com/yoockh/sessionnotes/internal/supabase"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load("3000")
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	sb, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	if err != nil {
		log.WithError(err).Fatal("supabase")
	}
	log.WithField("project_url", sb.ProjectURL()).Info("supabase client ready")

	r := gin.New()
	r.Use(
		middleware.RequestLogger(log),
		middleware.Recovery(log, "Internal Server Error"),
		middleware.CORS(cfg.FrontendURL),
	)
	routes.RegisterAppRoutes(r, routes.AppDeps{
		App: handlers.NewAppHandler(services.NewAppService(sb)),
	})

	log.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
