package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Clipture/internal/handler/http/dto"
	"github.com/mikiasgoitom/Clipture/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Clipture/internal/usecase/contract"
)

// InteractionHandlerInterface defines the methods for the interaction handler
// to allow interface-based dependency injection (for testing/mocking)
type InteractionHandlerInterface interface {
	LikeVideoHandler(*gin.Context)
	UnlikeVideoHandler(*gin.Context)
	LikedByHandler(*gin.Context)
}

// Ensure InteractionHandler implements InteractionHandlerInterface
var _ InteractionHandlerInterface = (*InteractionHandler)(nil)

type InteractionHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewInteractionHandler(likeUsecase usecasecontract.ILikeUseCase) *InteractionHandler {
	return &InteractionHandler{
		likeUsecase: likeUsecase,
	}
}

// LikeVideoHandler lets the authenticated user like a video. Responds 200
// with the updated video, 404 if the video does not exist, 400 if the user
// has already liked it.
func (h *InteractionHandler) LikeVideoHandler(c *gin.Context) {
	videoID := c.Param("videoID")
	username, ok := currentUsername(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	video, err := h.likeUsecase.Like(c.Request.Context(), videoID, username)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVideoNotFound):
			ErrorHandler(c, http.StatusNotFound, "Video not found")
		case errors.Is(err, usecase.ErrAlreadyLiked):
			ErrorHandler(c, http.StatusBadRequest, "Video already liked")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to like video")
		}
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToVideoResponse(video))
}

// UnlikeVideoHandler lets the authenticated user take back a like. Responds
// 200 with the updated video, 404 if the video does not exist, 400 if the
// user has not liked it.
func (h *InteractionHandler) UnlikeVideoHandler(c *gin.Context) {
	videoID := c.Param("videoID")
	username, ok := currentUsername(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	video, err := h.likeUsecase.Unlike(c.Request.Context(), videoID, username)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVideoNotFound):
			ErrorHandler(c, http.StatusNotFound, "Video not found")
		case errors.Is(err, usecase.ErrNotLiked):
			ErrorHandler(c, http.StatusBadRequest, "Video not liked")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Failed to unlike video")
		}
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToVideoResponse(video))
}

// LikedByHandler returns the usernames that have liked the video. Responds
// 404 if the video does not exist.
func (h *InteractionHandler) LikedByHandler(c *gin.Context) {
	videoID := c.Param("videoID")

	likedBy, err := h.likeUsecase.LikedBy(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, usecase.ErrVideoNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Video not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to retrieve likers")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LikedByResponse{VideoID: videoID, LikedBy: likedBy})
}
