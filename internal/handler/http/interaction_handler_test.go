package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mikiasgoitom/Clipture/internal/handler/http"
	mocks "github.com/mikiasgoitom/Clipture/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

// setupInteractionRouter wires the interaction routes with a stub auth
// middleware that injects the given username into the request context.
func setupInteractionRouter(h handler.InteractionHandlerInterface, username string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.Use(func(c *gin.Context) {
		if username != "" {
			c.Set("username", username)
		}
		c.Next()
	})
	r.POST("/videos/:videoID/like", h.LikeVideoHandler)
	r.POST("/videos/:videoID/unlike", h.UnlikeVideoHandler)
	r.GET("/videos/:videoID/likedby", h.LikedByHandler)
	return r
}

func TestLikeVideo(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "testuser")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/mock-video-id/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"like_count":1`)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestLikeVideo_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	mockUsecase.VideoMissing = true
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "testuser")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/missing/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}

func TestLikeVideo_AlreadyLiked(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	mockUsecase.AlreadyLiked = true
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "testuser")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/mock-video-id/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Video already liked")
}

func TestLikeVideo_StoreFailure(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	mockUsecase.ShouldFailStore = true
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "testuser")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/mock-video-id/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to like video")
}

func TestLikeVideo_Unauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/mock-video-id/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not authenticated")
}

func TestUnlikeVideo(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "testuser")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/mock-video-id/unlike", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-video-id")
}

func TestUnlikeVideo_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	mockUsecase.VideoMissing = true
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "testuser")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/missing/unlike", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}

func TestUnlikeVideo_NotLiked(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	mockUsecase.NotLiked = true
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "testuser")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/videos/mock-video-id/unlike", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Video not liked")
}

func TestLikedBy(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/mock-video-id/likedby", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"video_id":"mock-video-id"`)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestLikedBy_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockLikeUsecase()
	mockUsecase.VideoMissing = true
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/missing/likedby", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}
