package usecase_test

import (
	"context"
	"testing"

	"github.com/mikiasgoitom/Clipture/internal/usecase"
	"github.com/stretchr/testify/assert"
)

// fakeUUIDGen returns predictable IDs.
type fakeUUIDGen struct {
	next string
}

func (g *fakeUUIDGen) NewUUID() string {
	if g.next == "" {
		return "generated-id"
	}
	return g.next
}

func TestAddVideo(t *testing.T) {
	repo := newFakeVideoRepo()
	uc := usecase.NewVideoUseCase(repo, &fakeUUIDGen{next: "v1"}, noopLogger{})

	video, err := uc.AddVideo(context.Background(), "Test Clip", "https://videos.example.com/test.mp4", 42, "uploader-1")

	assert.NoError(t, err)
	assert.Equal(t, "v1", video.ID)
	assert.Equal(t, "uploader-1", video.UploaderID)
	// new videos start with an empty like aggregate
	assert.Equal(t, int64(0), video.LikeCount)
	assert.NotNil(t, video.LikedBy)
	assert.Empty(t, video.LikedBy)

	stored := repo.get("v1")
	assert.Equal(t, "Test Clip", stored.Title)
}

func TestAddVideo_MissingTitle(t *testing.T) {
	repo := newFakeVideoRepo()
	uc := usecase.NewVideoUseCase(repo, &fakeUUIDGen{}, noopLogger{})

	video, err := uc.AddVideo(context.Background(), "", "https://videos.example.com/test.mp4", 42, "uploader-1")

	assert.Nil(t, video)
	assert.Error(t, err)
}

func TestGetVideo(t *testing.T) {
	repo := newFakeVideoRepo()
	seedVideo(repo, "v1", "alice")
	uc := usecase.NewVideoUseCase(repo, &fakeUUIDGen{}, noopLogger{})

	video, err := uc.GetVideo(context.Background(), "v1")

	assert.NoError(t, err)
	assert.Equal(t, "v1", video.ID)
	assert.Equal(t, int64(1), video.LikeCount)
}

func TestGetVideo_NotFound(t *testing.T) {
	repo := newFakeVideoRepo()
	uc := usecase.NewVideoUseCase(repo, &fakeUUIDGen{}, noopLogger{})

	video, err := uc.GetVideo(context.Background(), "missing")

	assert.Nil(t, video)
	assert.ErrorIs(t, err, usecase.ErrVideoNotFound)
}

func TestListVideos(t *testing.T) {
	repo := newFakeVideoRepo()
	seedVideo(repo, "v1")
	seedVideo(repo, "v2", "alice")
	uc := usecase.NewVideoUseCase(repo, &fakeUUIDGen{}, noopLogger{})

	videos, total, page, totalPages, err := uc.ListVideos(context.Background(), 1, 10, "created_at", "desc")

	assert.NoError(t, err)
	assert.Len(t, videos, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, totalPages)
}

func TestListVideos_ClampsPagination(t *testing.T) {
	repo := newFakeVideoRepo()
	seedVideo(repo, "v1")
	uc := usecase.NewVideoUseCase(repo, &fakeUUIDGen{}, noopLogger{})

	// out-of-range values fall back to the defaults instead of failing
	_, _, page, _, err := uc.ListVideos(context.Background(), -3, 5000, "", "sideways")

	assert.NoError(t, err)
	assert.Equal(t, 1, page)
}
