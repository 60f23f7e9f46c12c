package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func TestRequestLoggerFields(t *testing.T) {
	l, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestLogger(l))
	r.POST("/sessions", func(c *gin.Context) {
		_ = c.Error(errors.New("transcription failed"))
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewBufferString("audio"))
	req.Header.Set(RequestIDHeader, "req-7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "req-7", entry.Data["request_id"])
	assert.Equal(t, "/sessions", entry.Data["route"])
	assert.Equal(t, int64(5), entry.Data["bytes_in"])
	assert.Contains(t, entry.Data["errors"], "transcription failed")
}

func TestRequestLoggerUnmatchedRoute(t *testing.T) {
	l, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestLogger(l))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "unmatched", entry.Data["route"])
	assert.Equal(t, "/nope", entry.Data["path"])
	assert.NotContains(t, entry.Data, "bytes_in")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
