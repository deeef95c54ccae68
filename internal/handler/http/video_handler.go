package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Clipture/internal/handler/http/dto"
	"github.com/mikiasgoitom/Clipture/internal/usecase"
)

// VideoHandlerInterface defines the methods for the video handler to allow
// interface-based dependency injection (for testing/mocking)
type VideoHandlerInterface interface {
	AddVideoHandler(*gin.Context)
	GetVideosHandler(*gin.Context)
	GetVideoDetailHandler(*gin.Context)
}

// Ensure VideoHandler implements VideoHandlerInterface
var _ VideoHandlerInterface = (*VideoHandler)(nil)

type VideoHandler struct {
	videoUsecase usecase.IVideoUseCase
}

func NewVideoHandler(videoUsecase usecase.IVideoUseCase) *VideoHandler {
	return &VideoHandler{
		videoUsecase: videoUsecase,
	}
}

// AddVideoHandler adds a new video to the catalog.
func (h *VideoHandler) AddVideoHandler(c *gin.Context) {
	var req dto.AddVideoRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	uploaderIDAny, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	uploaderID, ok := uploaderIDAny.(string)
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Invalid user ID format in token")
		return
	}

	video, err := h.videoUsecase.AddVideo(c.Request.Context(), req.Title, req.URL, req.Duration, uploaderID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to add video")
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToVideoResponse(video))
}

// GetVideosHandler returns one page of the catalog.
func (h *VideoHandler) GetVideosHandler(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	sortBy := c.DefaultQuery("sortBy", "created_at")
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		ErrorHandler(c, http.StatusBadRequest, "Invalid sort order. Use 'asc' or 'desc' ")
		return
	}

	videos, total, currentPage, totalPages, err := h.videoUsecase.ListVideos(c.Request.Context(), page, pageSize, sortBy, sortOrder)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list videos")
		return
	}

	resp := dto.PaginatedVideoResponse{
		Videos:      make([]dto.VideoResponse, 0, len(videos)),
		TotalCount:  total,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	}
	for i := range videos {
		resp.Videos = append(resp.Videos, dto.ToVideoResponse(&videos[i]))
	}

	SuccessHandler(c, http.StatusOK, resp)
}

// GetVideoDetailHandler returns a single video by ID.
func (h *VideoHandler) GetVideoDetailHandler(c *gin.Context) {
	videoID := c.Param("videoID")

	video, err := h.videoUsecase.GetVideo(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, usecase.ErrVideoNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Video not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to retrieve video")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToVideoResponse(video))
}
