package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/sessionnotes/internal/services"
)

type AppHandler struct {
	svc services.AppService
}

func NewAppHandler(svc services.AppService) *AppHandler {
	return &AppHandler{svc: svc}
}

func (h *AppHandler) Hello(c *gin.Context) {
	c.String(http.StatusOK, h.svc.Hello())
}

func (h *AppHandler) Supabase(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SupabaseInfo())
}
