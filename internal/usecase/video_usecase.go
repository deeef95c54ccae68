package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mikiasgoitom/Clipture/internal/domain/contract"
	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Clipture/internal/usecase/contract"
)

// IVideoUseCase defines catalog-related business logic
type IVideoUseCase interface {
	AddVideo(ctx context.Context, title, url string, duration int64, uploaderID string) (*entity.Video, error)
	GetVideo(ctx context.Context, videoID string) (*entity.Video, error)
	ListVideos(ctx context.Context, page, pageSize int, sortBy, sortOrder string) (videos []entity.Video, totalCount int, currentPage int, totalPages int, err error)
}

// VideoUseCaseImpl implements the IVideoUseCase interface
type VideoUseCaseImpl struct {
	videoRepo  contract.IVideoRepository
	uuidgen    contract.IUUIDGenerator
	logger     usecasecontract.IAppLogger
	videoCache contract.IVideoCache
	// simple metrics
	detailHits uint64
	detailMiss uint64
	listHits   uint64
	listMiss   uint64
}

// NewVideoUseCase creates a new instance of VideoUseCase
func NewVideoUseCase(videoRepo contract.IVideoRepository, uuidgenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *VideoUseCaseImpl {
	return &VideoUseCaseImpl{
		videoRepo: videoRepo,
		uuidgen:   uuidgenerator,
		logger:    logger,
	}
}

// check if VideoUseCaseImpl implements the IVideoUseCase
var _ IVideoUseCase = (*VideoUseCaseImpl)(nil)

// SetVideoCache injects the optional cache store.
func (uc *VideoUseCaseImpl) SetVideoCache(cache contract.IVideoCache) {
	uc.videoCache = cache
}

// buildVideosListCacheKey builds a stable key for list endpoint caching
func buildVideosListCacheKey(page, pageSize int, sortBy, sortOrder string) string {
	return fmt.Sprintf("videos:list:p=%d:s=%d:sb=%s:so=%s", page, pageSize, sortBy, sortOrder)
}

// AddVideo creates a new catalog entry. New videos start with a zero like
// count and an empty liker set.
func (uc *VideoUseCaseImpl) AddVideo(ctx context.Context, title, url string, duration int64, uploaderID string) (*entity.Video, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if url == "" {
		return nil, errors.New("url is required")
	}
	if uploaderID == "" {
		return nil, errors.New("uploader ID is required")
	}

	video := &entity.Video{
		ID:         uc.uuidgen.NewUUID(),
		Title:      title,
		URL:        url,
		Duration:   duration,
		UploaderID: uploaderID,
		LikeCount:  0,
		LikedBy:    []string{},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uc.videoRepo.CreateVideo(ctx, video); err != nil {
		uc.logger.Errorf("failed to create video: %v", err)
		return nil, fmt.Errorf("failed to add video")
	}

	if uc.videoCache != nil {
		if err := uc.videoCache.InvalidateVideoLists(ctx); err != nil {
			uc.logger.Warnf("failed to invalidate cached video lists: %v", err)
		}
	}

	return video, nil
}

// GetVideo retrieves a single video by ID, through the cache when one is
// configured.
func (uc *VideoUseCaseImpl) GetVideo(ctx context.Context, videoID string) (*entity.Video, error) {
	if uc.videoCache != nil {
		cached, found, err := uc.videoCache.GetVideoByID(ctx, videoID)
		if err != nil {
			uc.logger.Warnf("video cache lookup failed for %s: %v", videoID, err)
		}
		if found {
			atomic.AddUint64(&uc.detailHits, 1)
			metrics.VideoCacheRequests.WithLabelValues("detail", "hit").Inc()
			return cached, nil
		}
		atomic.AddUint64(&uc.detailMiss, 1)
		metrics.VideoCacheRequests.WithLabelValues("detail", "miss").Inc()
	}

	video, err := uc.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) || err.Error() == "video not found" {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to retrieve video %s: %w", videoID, err)
	}

	if uc.videoCache != nil {
		if err := uc.videoCache.SetVideoByID(ctx, videoID, video); err != nil {
			uc.logger.Warnf("failed to cache video %s: %v", videoID, err)
		}
	}

	return video, nil
}

// ListVideos returns one page of the catalog.
func (uc *VideoUseCaseImpl) ListVideos(ctx context.Context, page, pageSize int, sortBy, sortOrder string) ([]entity.Video, int, int, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	if sortBy == "" {
		sortBy = "created_at"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	cacheKey := buildVideosListCacheKey(page, pageSize, sortBy, sortOrder)
	if uc.videoCache != nil {
		cached, found, err := uc.videoCache.GetVideosPage(ctx, cacheKey)
		if err != nil {
			uc.logger.Warnf("video list cache lookup failed: %v", err)
		}
		if found {
			atomic.AddUint64(&uc.listHits, 1)
			metrics.VideoCacheRequests.WithLabelValues("list", "hit").Inc()
			totalPages := (cached.Total + pageSize - 1) / pageSize
			return cached.Videos, cached.Total, page, totalPages, nil
		}
		atomic.AddUint64(&uc.listMiss, 1)
		metrics.VideoCacheRequests.WithLabelValues("list", "miss").Inc()
	}

	videos, total, err := uc.videoRepo.ListVideos(ctx, page, pageSize, sortBy, sortOrder)
	if err != nil {
		uc.logger.Errorf("failed to list videos: %v", err)
		return nil, 0, 0, 0, fmt.Errorf("failed to list videos: %w", err)
	}

	if uc.videoCache != nil {
		if err := uc.videoCache.SetVideosPage(ctx, cacheKey, &contract.CachedVideosPage{Videos: videos, Total: total}); err != nil {
			uc.logger.Warnf("failed to cache video list page: %v", err)
		}
	}

	totalPages := (total + pageSize - 1) / pageSize
	return videos, total, page, totalPages, nil
}
