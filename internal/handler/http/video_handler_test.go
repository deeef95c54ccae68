package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mikiasgoitom/Clipture/internal/handler/http"
	dto "github.com/mikiasgoitom/Clipture/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/Clipture/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

// setupVideoRouter wires the catalog routes with a stub auth middleware that
// injects the given user ID into the request context.
func setupVideoRouter(h handler.VideoHandlerInterface, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	})
	r.POST("/videos", h.AddVideoHandler)
	r.GET("/videos", h.GetVideosHandler)
	r.GET("/videos/:videoID", h.GetVideoDetailHandler)
	return r
}

func TestAddVideoHandler(t *testing.T) {
	mockUsecase := mocks.NewMockVideoUsecase()
	h := handler.NewVideoHandler(mockUsecase)
	r := setupVideoRouter(h, "uploader-1")
	payload := dto.AddVideoRequest{
		Title:    "Test Clip",
		URL:      "https://videos.example.com/test-clip.mp4",
		Duration: 42,
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "mock-video-id")
}

func TestAddVideoHandler_InvalidURL(t *testing.T) {
	mockUsecase := mocks.NewMockVideoUsecase()
	h := handler.NewVideoHandler(mockUsecase)
	r := setupVideoRouter(h, "uploader-1")
	payload := dto.AddVideoRequest{
		Title: "Test Clip",
		URL:   "not-a-url",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "videourl")
}

func TestAddVideoHandler_Unauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockVideoUsecase()
	h := handler.NewVideoHandler(mockUsecase)
	r := setupVideoRouter(h, "")
	payload := dto.AddVideoRequest{
		Title: "Test Clip",
		URL:   "https://videos.example.com/test-clip.mp4",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not authenticated")
}

func TestGetVideosHandler(t *testing.T) {
	mockUsecase := mocks.NewMockVideoUsecase()
	h := handler.NewVideoHandler(mockUsecase)
	r := setupVideoRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?page=1&pageSize=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_count":1`)
	assert.Contains(t, w.Body.String(), "mock-video-id")
}

func TestGetVideosHandler_InvalidPage(t *testing.T) {
	mockUsecase := mocks.NewMockVideoUsecase()
	h := handler.NewVideoHandler(mockUsecase)
	r := setupVideoRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?page=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid page number")
}

func TestGetVideosHandler_InvalidSortOrder(t *testing.T) {
	mockUsecase := mocks.NewMockVideoUsecase()
	h := handler.NewVideoHandler(mockUsecase)
	r := setupVideoRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?sortOrder=sideways", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVideoDetailHandler(t *testing.T) {
	mockUsecase := mocks.NewMockVideoUsecase()
	h := handler.NewVideoHandler(mockUsecase)
	r := setupVideoRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/mock-video-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-video-id")
}

func TestGetVideoDetailHandler_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockVideoUsecase()
	mockUsecase.VideoMissing = true
	h := handler.NewVideoHandler(mockUsecase)
	r := setupVideoRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}
