package entity_test

import (
	"testing"

	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestAddLiker(t *testing.T) {
	v := entity.Video{ID: "v1", LikedBy: []string{}}

	assert.True(t, v.AddLiker("alice"))
	assert.Equal(t, int64(1), v.LikeCount)
	assert.True(t, v.HasLiker("alice"))

	// a second like by the same user changes nothing
	assert.False(t, v.AddLiker("alice"))
	assert.Equal(t, int64(1), v.LikeCount)
	assert.Equal(t, []string{"alice"}, v.LikedBy)
}

func TestRemoveLiker(t *testing.T) {
	v := entity.Video{ID: "v1", LikeCount: 2, LikedBy: []string{"alice", "bob"}}

	assert.True(t, v.RemoveLiker("alice"))
	assert.Equal(t, int64(1), v.LikeCount)
	assert.False(t, v.HasLiker("alice"))

	// removing a user who never liked changes nothing
	assert.False(t, v.RemoveLiker("alice"))
	assert.Equal(t, int64(1), v.LikeCount)
	assert.Equal(t, []string{"bob"}, v.LikedBy)
}

func TestLikers_ReturnsCopy(t *testing.T) {
	v := entity.Video{ID: "v1", LikeCount: 1, LikedBy: []string{"alice"}}

	likers := v.Likers()
	likers[0] = "mallory"

	assert.Equal(t, []string{"alice"}, v.LikedBy)
}
