package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
)

type ILikeUseCase interface {
	Like(ctx context.Context, videoID, username string) (*entity.Video, error)
	Unlike(ctx context.Context, videoID, username string) (*entity.Video, error)
	LikedBy(ctx context.Context, videoID string) ([]string, error)
}
