package contract

import (
	"context"

	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
)

// CachedVideosPage is the cached payload for list endpoints.
type CachedVideosPage struct {
	Videos []entity.Video `json:"videos"`
	Total  int            `json:"total"`
}

// IVideoCache defines caching operations for videos.
type IVideoCache interface {
	// Detail (by ID)
	GetVideoByID(ctx context.Context, id string) (*entity.Video, bool, error)
	SetVideoByID(ctx context.Context, id string, video *entity.Video) error
	InvalidateVideoByID(ctx context.Context, id string) error

	// List pages (key built by usecase)
	GetVideosPage(ctx context.Context, key string) (*CachedVideosPage, bool, error)
	SetVideosPage(ctx context.Context, key string, page *CachedVideosPage) error
	InvalidateVideoLists(ctx context.Context) error
}
