package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"coursetracker/backend/models"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/redis/go-redis/v9"
)

const coursesKey = "catalog:courses"

// CatalogCache keeps the full course listing in redis in front of another
// CatalogStore. Every write through it drops the cached listing. Redis
// failures are logged and the call falls through to the wrapped store.
type CatalogCache struct {
	services.CatalogStore

	client *redis.Client
	ttl    time.Duration
	log    *utils.Logger
}

var _ services.CatalogStore = (*CatalogCache)(nil)

func NewCatalogCache(next services.CatalogStore, client *redis.Client, ttl time.Duration, log *utils.Logger) *CatalogCache {
	return &CatalogCache{
		CatalogStore: next,
		client:       client,
		ttl:          ttl,
		log:          log.With("component", "CatalogCache"),
	}
}

func (c *CatalogCache) ListCourses(ctx context.Context) ([]models.Course, error) {
	data, err := c.client.Get(ctx, coursesKey).Bytes()
	switch {
	case err == nil:
		var courses []models.Course
		if err := json.Unmarshal(data, &courses); err == nil {
			return courses, nil
		}
		c.log.Warn("dropping undecodable catalog cache entry", "key", coursesKey)
	case !errors.Is(err, redis.Nil):
		c.log.Warn("catalog cache read failed", "error", err)
	}

	courses, err := c.CatalogStore.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(courses); err == nil {
		if err := c.client.Set(ctx, coursesKey, data, c.ttl).Err(); err != nil {
			c.log.Warn("catalog cache write failed", "error", err)
		}
	}
	return courses, nil
}

func (c *CatalogCache) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	out, err := c.CatalogStore.CreateCourse(ctx, course)
	c.invalidate(ctx)
	return out, err
}

func (c *CatalogCache) AppendTopic(ctx context.Context, courseID string, t models.Topic) (*models.Course, error) {
	out, err := c.CatalogStore.AppendTopic(ctx, courseID, t)
	c.invalidate(ctx)
	return out, err
}

func (c *CatalogCache) IncrementEnrolled(ctx context.Context, courseID string) error {
	err := c.CatalogStore.IncrementEnrolled(ctx, courseID)
	c.invalidate(ctx)
	return err
}

func (c *CatalogCache) invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, coursesKey).Err(); err != nil {
		c.log.Warn("catalog cache invalidate failed", "error", err)
	}
}
