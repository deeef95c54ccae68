package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mikiasgoitom/Clipture/internal/domain/contract"
	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
	"github.com/mikiasgoitom/Clipture/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Clipture/internal/usecase/contract"
)

// ErrVideoNotFound is returned when the referenced video does not exist.
var ErrVideoNotFound = errors.New("video not found")

// ErrAlreadyLiked is returned when a user likes a video they have already liked.
var ErrAlreadyLiked = errors.New("video already liked by user")

// ErrNotLiked is returned when a user unlikes a video they have not liked.
var ErrNotLiked = errors.New("video not liked by user")

// LikeUsecase handles the business logic for liking and unliking videos.
// All check-then-mutate-then-save sequences against one video are serialized
// through a per-video lock, so the like count and the liker set can never
// drift apart under concurrent requests. Operations on different videos do
// not block each other.
type LikeUsecase struct {
	videoRepo  contract.IVideoRepository
	videoCache contract.IVideoCache
	logger     usecasecontract.IAppLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(videoRepo contract.IVideoRepository, logger usecasecontract.IAppLogger) *LikeUsecase {
	return &LikeUsecase{
		videoRepo: videoRepo,
		logger:    logger,
		locks:     make(map[string]*sync.Mutex),
	}
}

// check if LikeUsecase implements the ILikeUseCase
var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

// SetVideoCache injects an optional cache whose entries are invalidated on
// every successful transition.
func (u *LikeUsecase) SetVideoCache(cache contract.IVideoCache) {
	u.videoCache = cache
}

// videoLock returns the mutex guarding the given video's like state.
func (u *LikeUsecase) videoLock(videoID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.locks[videoID]
	if !ok {
		l = &sync.Mutex{}
		u.locks[videoID] = l
	}
	return l
}

// Like records a like by username on the given video. It returns
// ErrVideoNotFound if the video does not exist and ErrAlreadyLiked if the
// user has already liked it; neither failure writes to the store.
func (u *LikeUsecase) Like(ctx context.Context, videoID, username string) (*entity.Video, error) {
	lock := u.videoLock(videoID)
	lock.Lock()
	defer lock.Unlock()

	video, err := u.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) || err.Error() == "video not found" {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to retrieve video %s: %w", videoID, err)
	}

	if !video.AddLiker(username) {
		metrics.LikeConflictsTotal.Inc()
		return nil, ErrAlreadyLiked
	}
	video.UpdatedAt = time.Now()

	saved, err := u.videoRepo.Save(ctx, video)
	if err != nil {
		u.logger.Errorf("failed to save like by %s on video %s: %v", username, videoID, err)
		return nil, fmt.Errorf("failed to save video %s: %w", videoID, err)
	}

	metrics.VideoLikesTotal.Inc()
	u.invalidateCache(ctx, videoID)
	return saved, nil
}

// Unlike reverses a previous like by username on the given video. It returns
// ErrVideoNotFound if the video does not exist and ErrNotLiked if the user
// has not liked it; neither failure writes to the store.
func (u *LikeUsecase) Unlike(ctx context.Context, videoID, username string) (*entity.Video, error) {
	lock := u.videoLock(videoID)
	lock.Lock()
	defer lock.Unlock()

	video, err := u.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) || err.Error() == "video not found" {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to retrieve video %s: %w", videoID, err)
	}

	if !video.RemoveLiker(username) {
		metrics.LikeConflictsTotal.Inc()
		return nil, ErrNotLiked
	}
	video.UpdatedAt = time.Now()

	saved, err := u.videoRepo.Save(ctx, video)
	if err != nil {
		u.logger.Errorf("failed to save unlike by %s on video %s: %v", username, videoID, err)
		return nil, fmt.Errorf("failed to save video %s: %w", videoID, err)
	}

	metrics.VideoUnlikesTotal.Inc()
	u.invalidateCache(ctx, videoID)
	return saved, nil
}

// LikedBy returns the usernames that have liked the given video. The result
// is a copy; mutating it does not affect the stored liker set.
func (u *LikeUsecase) LikedBy(ctx context.Context, videoID string) ([]string, error) {
	video, err := u.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) || err.Error() == "video not found" {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to retrieve video %s: %w", videoID, err)
	}
	return video.Likers(), nil
}

func (u *LikeUsecase) invalidateCache(ctx context.Context, videoID string) {
	if u.videoCache == nil {
		return
	}
	if err := u.videoCache.InvalidateVideoByID(ctx, videoID); err != nil {
		u.logger.Warnf("failed to invalidate cached video %s: %v", videoID, err)
	}
	if err := u.videoCache.InvalidateVideoLists(ctx); err != nil {
		u.logger.Warnf("failed to invalidate cached video lists: %v", err)
	}
}
