package videocache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/bensedjadrafik-ux/vitube-app/internal/model"
)

// Lister is the read side of the video catalog.
type Lister interface {
	List(ctx context.Context) ([]*model.Video, error)
}

const listKey = "videos"

// Wrap puts a short-lived LRU in front of the listing query. A size or
// ttl of zero disables caching and the wrapper becomes a passthrough.
func Wrap(next Lister, size int, ttl time.Duration) *CachedLister {
	c := &CachedLister{next: next}
	if size > 0 && ttl > 0 {
		c.cache = expirable.NewLRU[string, []*model.Video](size, nil, ttl)
	}
	return c
}

type CachedLister struct {
	next  Lister
	cache *expirable.LRU[string, []*model.Video]
}

func (c *CachedLister) List(ctx context.Context) ([]*model.Video, error) {
	if c.cache == nil {
		return c.next.List(ctx)
	}
	if cached, ok := c.cache.Get(listKey); ok {
		logutil.GetLogger(ctx).Debug("video list cache hit", zap.Int("count", len(cached)))
		return cached, nil
	}
	videos, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Add(listKey, videos)
	return videos, nil
}

// Purge drops the cached listing, used after any write that would make
// it stale.
func (c *CachedLister) Purge() {
	if c.cache != nil {
		c.cache.Purge()
	}
}
