package entity

import (
	"time"
)

// Video represents a catalog entry together with its like aggregate.
// LikeCount and LikedBy are always mutated together so that the count
// never drifts from the membership set.
type Video struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Title      string    `bson:"title" json:"title"`
	URL        string    `bson:"url" json:"url"`
	Duration   int64     `bson:"duration" json:"duration"` // seconds
	UploaderID string    `bson:"uploader_id" json:"uploader_id"`
	LikeCount  int64     `bson:"like_count" json:"like_count"`
	LikedBy    []string  `bson:"liked_by" json:"liked_by"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// HasLiker reports whether the given username has already liked this video.
func (v *Video) HasLiker(username string) bool {
	for _, u := range v.LikedBy {
		if u == username {
			return true
		}
	}
	return false
}

// AddLiker records a like by username. It returns false without changing
// anything if the user has already liked the video; otherwise it inserts
// the username and increments LikeCount in the same step.
func (v *Video) AddLiker(username string) bool {
	if v.HasLiker(username) {
		return false
	}
	v.LikedBy = append(v.LikedBy, username)
	v.LikeCount++
	return true
}

// RemoveLiker reverses a like by username. It returns false without changing
// anything if the user has not liked the video; otherwise it removes the
// username and decrements LikeCount in the same step.
func (v *Video) RemoveLiker(username string) bool {
	for i, u := range v.LikedBy {
		if u == username {
			v.LikedBy = append(v.LikedBy[:i], v.LikedBy[i+1:]...)
			v.LikeCount--
			return true
		}
	}
	return false
}

// Likers returns a copy of the liker set so callers cannot mutate the
// video's state through the returned slice.
func (v *Video) Likers() []string {
	likers := make([]string, len(v.LikedBy))
	copy(likers, v.LikedBy)
	return likers
}
