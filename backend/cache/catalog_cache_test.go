package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"coursetracker/backend/config"
	"coursetracker/backend/models"
	"coursetracker/backend/store"
	"coursetracker/backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*CatalogCache, *store.CatalogRepo) {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client, err := NewRedisClient(ctx, &config.Config{RedisAddr: addr, RedisDB: 15})
	require.NoError(t, err)
	t.Cleanup(func() {
		client.Del(ctx, coursesKey)
		client.Close()
	})
	require.NoError(t, client.Del(ctx, coursesKey).Err())

	db, err := utils.OpenMemoryDB(uuid.NewString())
	require.NoError(t, err)
	repo := store.NewCatalogRepo(db)
	return NewCatalogCache(repo, client, time.Minute, utils.NewNopLogger()), repo
}

func TestCatalogCache_ServesCachedListing(t *testing.T) {
	ctx := context.Background()
	c, repo := newTestCache(t)

	_, err := c.CreateCourse(ctx, &models.Course{Title: "Go"})
	require.NoError(t, err)

	courses, err := c.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)

	// Written behind the cache's back, so the cached listing is still served.
	_, err = repo.CreateCourse(ctx, &models.Course{Title: "Rust"})
	require.NoError(t, err)

	courses, err = c.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestCatalogCache_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	course, err := c.CreateCourse(ctx, &models.Course{Title: "Go"})
	require.NoError(t, err)
	_, err = c.ListCourses(ctx)
	require.NoError(t, err)

	_, err = c.AppendTopic(ctx, course.ID, models.Topic{Title: "Syntax"})
	require.NoError(t, err)
	require.NoError(t, c.IncrementEnrolled(ctx, course.ID))

	courses, err := c.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, []string{"Syntax"}, courses[0].TopicTitles())
	assert.Equal(t, 1, courses[0].EnrolledCount)
}
