package seed

import (
	"testing"

	"pamps/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	return db
}

func TestSeed(t *testing.T) {
	db := setupSeedDB(t)

	err := Seed(db, Options{
		NumUsers:   5,
		NumPosts:   10,
		NumReplies: 8,
		// TRUNCATE is Postgres-only, skip cleanup on sqlite
		ShouldClean: false,
	})
	require.NoError(t, err)

	var userCount, rootCount, replyCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Where("parent_id IS NULL").Count(&rootCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Where("parent_id IS NOT NULL").Count(&replyCount).Error)

	// Random usernames may collide and get skipped
	assert.LessOrEqual(t, userCount, int64(5))
	assert.Positive(t, userCount)
	assert.Equal(t, int64(10), rootCount)
	assert.Equal(t, int64(8), replyCount)

	// Every reply must point at an existing root post
	var orphans int64
	require.NoError(t, db.Model(&models.Post{}).
		Where("parent_id IS NOT NULL AND parent_id NOT IN (?)",
			db.Model(&models.Post{}).Select("id").Where("parent_id IS NULL")).
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestRandomPastTime(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 2, NumPosts: 5, NumReplies: 3}))

	var replies []models.Post
	require.NoError(t, db.Where("parent_id IS NOT NULL").Find(&replies).Error)

	for _, reply := range replies {
		var parent models.Post
		require.NoError(t, db.First(&parent, *reply.ParentID).Error)
		assert.False(t, reply.CreatedAt.Before(parent.CreatedAt),
			"reply %d predates its parent", reply.ID)
	}
}
