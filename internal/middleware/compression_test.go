package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	payload := strings.Repeat("catering menu line ", 200)

	router := gin.New()
	router.Use(Compression())
	router.GET("/menu", func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})

	t.Run("compresses when client accepts gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
		assert.Less(t, w.Body.Len(), len(payload))

		reader, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		decompressed, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, payload, string(decompressed))
	})

	t.Run("passes through without gzip support", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, payload, w.Body.String())
	})
}
