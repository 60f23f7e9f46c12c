package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/sessionnotes/internal/models"
	"github.com/yoockh/sessionnotes/internal/services"
	"github.com/yoockh/sessionnotes/internal/utils"
)

type SessionHandler struct {
	svc services.SessionService
}

func NewSessionHandler(svc services.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

type ListSessionsResponse struct {
	Sessions []models.PublicSession `json:"sessions"`
}

func (h *SessionHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListSessionsResponse{Sessions: out})
}

func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.svc.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Create ingests the multipart field "file". A missing file is passed on as a
// nil upload so the service can report configuration problems first.
func (h *SessionHandler) Create(c *gin.Context) {
	up, err := readUpload(c)
	if err != nil {
		if cfgErr := h.svc.Ready(); cfgErr != nil {
			err = cfgErr
		}
		writeError(c, err)
		return
	}

	sess, err := h.svc.Ingest(c.Request.Context(), up)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// readUpload returns nil, nil when the request simply has no file. A body that
// claims to be multipart but cannot be read is an error.
func readUpload(c *gin.Context) (*services.Upload, error) {
	fh, err := c.FormFile("file")
	switch {
	case err == nil:
	case errors.Is(err, http.ErrMissingFile),
		errors.Is(err, http.ErrNotMultipart),
		errors.Is(err, http.ErrMissingBoundary):
		return nil, nil
	default:
		return nil, utils.E(utils.CodeInternal, "SessionHandler.Create", "Failed to process session", err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "SessionHandler.Create", "Failed to process session", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "SessionHandler.Create", "Failed to process session", err)
	}

	return &services.Upload{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	}, nil
}
