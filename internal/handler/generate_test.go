package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortwave/internal/config"
	"shortwave/internal/model"
	"shortwave/internal/service"
	"shortwave/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGenerateRouter() (*gin.Engine, *store.LinkStore) {
	links := store.NewLinkStore()
	svc := service.NewShortLinkService(links, "https://s.example.com", config.ShortenerConfig{
		KeyLength:   6,
		MaxAttempts: 10,
	})
	handler := NewGenerateHandler(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/api/v1/shortlink/generate", handler.Generate)
	return router, links
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateHandler_Generate(t *testing.T) {
	router, links := newGenerateRouter()

	t.Run("invalid JSON body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/shortlink/generate", bytes.NewBuffer([]byte("{invalid json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Contains(t, resp.Message, "Invalid request")
	})

	t.Run("missing URL field", func(t *testing.T) {
		w := postJSON(router, "/api/v1/shortlink/generate", map[string]string{"other": "value"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed URL", func(t *testing.T) {
		w := postJSON(router, "/api/v1/shortlink/generate", map[string]string{"url": "not a url"})

		// Caught by the url binding tag before the service runs
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid URL success", func(t *testing.T) {
		w := postJSON(router, "/api/v1/shortlink/generate", map[string]string{"url": "https://example.com"})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "success", resp.Message)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "https://example.com", data["original_url"])
		assert.Len(t, data["short_code"], 6)
		assert.Contains(t, data["short_link"], "https://s.example.com/")
		assert.Equal(t, 1, links.Count())
	})

	t.Run("distinct codes per request", func(t *testing.T) {
		codes := make(map[string]bool)
		for i := 0; i < 10; i++ {
			w := postJSON(router, "/api/v1/shortlink/generate", map[string]string{"url": "https://example.com/page"})
			require.Equal(t, http.StatusOK, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			codes[resp.Data.(map[string]interface{})["short_code"].(string)] = true
		}
		assert.Len(t, codes, 10)
	})
}

func TestResponse(t *testing.T) {
	t.Run("success response", func(t *testing.T) {
		resp := Response{
			Code:    0,
			Message: "success",
			Data:    "test data",
		}

		jsonBytes, err := json.Marshal(resp)
		require.NoError(t, err)

		var unmarshaled Response
		err = json.Unmarshal(jsonBytes, &unmarshaled)
		require.NoError(t, err)

		assert.Equal(t, 0, unmarshaled.Code)
		assert.Equal(t, "success", unmarshaled.Message)
		assert.Equal(t, "test data", unmarshaled.Data)
	})

	t.Run("response without data omits field", func(t *testing.T) {
		resp := Response{
			Code:    0,
			Message: "success",
		}

		jsonBytes, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.NotContains(t, string(jsonBytes), "data")
	})

	t.Run("error response", func(t *testing.T) {
		resp := ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
		}

		jsonBytes, err := json.Marshal(resp)
		require.NoError(t, err)

		var unmarshaled ErrorResponse
		err = json.Unmarshal(jsonBytes, &unmarshaled)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, unmarshaled.Code)
		assert.Equal(t, "Invalid request", unmarshaled.Message)
	})
}

func TestGenerateRequest(t *testing.T) {
	req := model.GenerateRequest{
		URL: "https://example.com",
	}

	jsonBytes, err := json.Marshal(req)
	require.NoError(t, err)

	var unmarshaled model.GenerateRequest
	err = json.Unmarshal(jsonBytes, &unmarshaled)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", unmarshaled.URL)
}
