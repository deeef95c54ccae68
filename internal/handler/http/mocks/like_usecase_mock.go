package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
	"github.com/mikiasgoitom/Clipture/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Clipture/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of the ILikeUseCase interface
type MockLikeUsecase struct {
	// Control mock behavior
	VideoMissing    bool
	AlreadyLiked    bool
	NotLiked        bool
	ShouldFailStore bool

	// Return values
	MockVideo entity.Video
}

// Ensure MockLikeUsecase implements the correct interface for handler.NewInteractionHandler
var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{
		MockVideo: entity.Video{
			ID:        "mock-video-id",
			Title:     "Test Clip",
			URL:       "https://videos.example.com/test-clip.mp4",
			LikeCount: 1,
			LikedBy:   []string{"testuser"},
		},
	}
}

func (m *MockLikeUsecase) Like(ctx context.Context, videoID, username string) (*entity.Video, error) {
	if m.VideoMissing {
		return nil, usecase.ErrVideoNotFound
	}
	if m.AlreadyLiked {
		return nil, usecase.ErrAlreadyLiked
	}
	if m.ShouldFailStore {
		return nil, errors.New("store failure")
	}
	return &m.MockVideo, nil
}

func (m *MockLikeUsecase) Unlike(ctx context.Context, videoID, username string) (*entity.Video, error) {
	if m.VideoMissing {
		return nil, usecase.ErrVideoNotFound
	}
	if m.NotLiked {
		return nil, usecase.ErrNotLiked
	}
	if m.ShouldFailStore {
		return nil, errors.New("store failure")
	}
	return &m.MockVideo, nil
}

func (m *MockLikeUsecase) LikedBy(ctx context.Context, videoID string) ([]string, error) {
	if m.VideoMissing {
		return nil, usecase.ErrVideoNotFound
	}
	if m.ShouldFailStore {
		return nil, errors.New("store failure")
	}
	return m.MockVideo.Likers(), nil
}
