//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blueprint-api/internal/handler/middleware"
	"blueprint-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerFromConfig(t *testing.T) {
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	require.NotNil(t, logger)
	assert.NotNil(t, logger.GetSlogLogger())
}

func TestLoggingMiddlewareAssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.NewTestConfig().Log)

	var requestID string
	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		requestID = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, requestID)
	// "20060102150405-" timestamp prefix plus the random hex suffix.
	assert.Len(t, requestID, 23)
}
