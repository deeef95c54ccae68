package dto

import (
	"time"

	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
)

// Request DTOs for Video Handlers

// AddVideoRequest defines the structure for adding a new video to the catalog
type AddVideoRequest struct {
	Title    string `json:"title" binding:"required"`
	URL      string `json:"url" binding:"required,videourl"`
	Duration int64  `json:"duration" binding:"omitempty,gte=0"`
}

// Response DTOs

// VideoResponse defines the standard JSON response for a single video
type VideoResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Duration   int64     `json:"duration"`
	UploaderID string    `json:"uploader_id"`
	LikeCount  int64     `json:"like_count"`
	LikedBy    []string  `json:"liked_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PaginatedVideoResponse defines the structure for a paginated list of videos.
type PaginatedVideoResponse struct {
	Videos      []VideoResponse `json:"videos"`
	TotalCount  int             `json:"total_count"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
}

// LikedByResponse carries the liker set of a video.
type LikedByResponse struct {
	VideoID string   `json:"video_id"`
	LikedBy []string `json:"liked_by"`
}

// ToVideoResponse converts *entity.Video to a VideoResponse
func ToVideoResponse(video *entity.Video) VideoResponse {
	likedBy := video.Likers()
	return VideoResponse{
		ID:         video.ID,
		Title:      video.Title,
		URL:        video.URL,
		Duration:   video.Duration,
		UploaderID: video.UploaderID,
		LikeCount:  video.LikeCount,
		LikedBy:    likedBy,
		CreatedAt:  video.CreatedAt,
		UpdatedAt:  video.UpdatedAt,
	}
}
