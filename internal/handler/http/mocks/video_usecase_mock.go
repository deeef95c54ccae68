package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
	"github.com/mikiasgoitom/Clipture/internal/usecase"
)

// MockVideoUsecase is a mock implementation of the IVideoUseCase interface
type MockVideoUsecase struct {
	// Control mock behavior
	ShouldFailAddVideo bool
	VideoMissing       bool
	ShouldFailList     bool

	// Return values
	MockVideo entity.Video
}

// Ensure MockVideoUsecase implements the correct interface for handler.NewVideoHandler
var _ usecase.IVideoUseCase = (*MockVideoUsecase)(nil)

func NewMockVideoUsecase() *MockVideoUsecase {
	return &MockVideoUsecase{
		MockVideo: entity.Video{
			ID:        "mock-video-id",
			Title:     "Test Clip",
			URL:       "https://videos.example.com/test-clip.mp4",
			Duration:  42,
			LikeCount: 0,
			LikedBy:   []string{},
		},
	}
}

func (m *MockVideoUsecase) AddVideo(ctx context.Context, title, url string, duration int64, uploaderID string) (*entity.Video, error) {
	if m.ShouldFailAddVideo {
		return nil, errors.New("add video failed")
	}
	return &m.MockVideo, nil
}

func (m *MockVideoUsecase) GetVideo(ctx context.Context, videoID string) (*entity.Video, error) {
	if m.VideoMissing {
		return nil, usecase.ErrVideoNotFound
	}
	return &m.MockVideo, nil
}

func (m *MockVideoUsecase) ListVideos(ctx context.Context, page, pageSize int, sortBy, sortOrder string) ([]entity.Video, int, int, int, error) {
	if m.ShouldFailList {
		return nil, 0, 0, 0, errors.New("list videos failed")
	}
	return []entity.Video{m.MockVideo}, 1, page, 1, nil
}
