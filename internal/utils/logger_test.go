package utils

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN", "development"))
	assert.Equal(t, slog.LevelInfo, parseLevel("", "production"))
	assert.Equal(t, slog.LevelDebug, parseLevel("", "development"))
}

func TestLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	router := gin.New()
	router.Use(ContextLogger(logger), LoggerMiddleware(logger))
	router.GET("/missing/:id", func(c *gin.Context) {
		assert.NotSame(t, logger, GetLoggerFromContext(c, logger))
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing/7", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "path=/missing/:id")
	assert.Contains(t, buf.String(), "status_code=404")
}
