package contract

import (
	"context"

	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
)

// IVideoRepository defines the interface for video persistence. The like
// engine only depends on FindByID and Save; the catalog endpoints use the
// rest.
type IVideoRepository interface {
	// CreateVideo persists a new video record.
	CreateVideo(ctx context.Context, video *entity.Video) error
	// FindByID retrieves a video by its ID.
	FindByID(ctx context.Context, id string) (*entity.Video, error)
	// Save overwrites the stored video identified by video.ID and returns
	// the persisted record.
	Save(ctx context.Context, video *entity.Video) (*entity.Video, error)
	// ListVideos returns one page of videos plus the total count.
	ListVideos(ctx context.Context, page, pageSize int, sortBy, sortOrder string) ([]entity.Video, int, error)
}
