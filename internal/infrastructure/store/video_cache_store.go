package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Clipture/internal/domain/contract"
	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
)

type VideoCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

// check in compile time if VideoCacheStore implements IVideoCache
var _ contract.IVideoCache = (*VideoCacheStore)(nil)

func NewVideoCacheStore(rdb *redis.Client) *VideoCacheStore {
	return &VideoCacheStore{
		rdb:       rdb,
		detailTTL: 60 * time.Minute,
		listTTL:   30 * time.Minute,
	}
}

func videoDetailKey(id string) string { return fmt.Sprintf("video:id:%s", id) }

func (c *VideoCacheStore) GetVideoByID(ctx context.Context, id string) (*entity.Video, bool, error) {
	b, err := c.rdb.Get(ctx, videoDetailKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var video entity.Video
	if err := json.Unmarshal(b, &video); err != nil {
		return nil, false, nil
	}
	return &video, true, nil
}

func (c *VideoCacheStore) SetVideoByID(ctx context.Context, id string, video *entity.Video) error {
	data, err := json.Marshal(video)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoDetailKey(id), data, c.detailTTL).Err()
}

func (c *VideoCacheStore) InvalidateVideoByID(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, videoDetailKey(id)).Err()
}

func (c *VideoCacheStore) GetVideosPage(ctx context.Context, key string) (*contract.CachedVideosPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedVideosPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *VideoCacheStore) SetVideosPage(ctx context.Context, key string, page *contract.CachedVideosPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

func (c *VideoCacheStore) InvalidateVideoLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "videos:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
