package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Clipture/internal/domain/contract"
	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
)

// ErrVideoNotFound is returned when a video is not found in the database.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository represents the MongoDB implementation of the IVideoRepository interface.
type VideoRepository struct {
	collection *mongo.Collection
}

// check in compile time if VideoRepository implements IVideoRepository
var _ contract.IVideoRepository = (*VideoRepository)(nil)

// NewVideoRepository creates and returns a new VideoRepository instance.
func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{
		collection: db.Collection("videos"),
	}
}

// CreateVideo inserts a new video record.
func (r *VideoRepository) CreateVideo(ctx context.Context, video *entity.Video) error {
	if video.LikedBy == nil {
		video.LikedBy = []string{}
	}
	_, err := r.collection.InsertOne(ctx, video)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}
	return nil
}

// FindByID retrieves a video by its ID.
func (r *VideoRepository) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	var video entity.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to retrieve video: %w", err)
	}
	if video.LikedBy == nil {
		video.LikedBy = []string{}
	}
	return &video, nil
}

// Save overwrites the stored video identified by video.ID.
func (r *VideoRepository) Save(ctx context.Context, video *entity.Video) (*entity.Video, error) {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": video.ID}, video)
	if err != nil {
		return nil, fmt.Errorf("failed to save video: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

// ListVideos returns one page of videos plus the total count.
func (r *VideoRepository) ListVideos(ctx context.Context, page, pageSize int, sortBy, sortOrder string) ([]entity.Video, int, error) {
	order := -1
	if sortOrder == "asc" {
		order = 1
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}
	defer cursor.Close(ctx)

	videos := []entity.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, 0, fmt.Errorf("failed to decode videos: %w", err)
	}
	for i := range videos {
		if videos[i].LikedBy == nil {
			videos[i].LikedBy = []string{}
		}
	}

	return videos, int(total), nil
}
