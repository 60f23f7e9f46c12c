package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/sessionnotes/internal/api/handlers"
	"github.com/yoockh/sessionnotes/internal/api/middleware"
	"github.com/yoockh/sessionnotes/internal/web"
)

type Deps struct {
	Session *handlers.SessionHandler
	Logger  *logrus.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", web.Index)

	// /api/sessions is the path the bundled page and older clients use.
	for _, prefix := range []string{"/sessions", "/api/sessions"} {
		g := r.Group(prefix)
		g.GET("", d.Session.List)
		g.POST("", middleware.Recovery(d.Logger, "Failed to process session"), d.Session.Create)
		g.GET("/:session_id", d.Session.Get)
	}
}

type AppDeps struct {
	App *handlers.AppHandler
}

func RegisterAppRoutes(r *gin.Engine, d AppDeps) {
	r.GET("/", d.App.Hello)
	r.GET("/supabase", d.App.Supabase)
}
