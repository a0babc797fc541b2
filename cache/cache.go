package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Pages keeps rendered-page payloads in Redis under tag-derived keys so
// mutating handlers can drop the stale copies. Freshness only: a nil client
// turns every method into a no-op.
type Pages struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPages(rdb *redis.Client, ttl time.Duration) *Pages {
	return &Pages{rdb: rdb, ttl: ttl}
}

func key(tag string) string { return "page:" + tag }

func (p *Pages) Get(ctx context.Context, tag string) (string, bool) {
	if p == nil || p.rdb == nil {
		return "", false
	}
	val, err := p.rdb.Get(ctx, key(tag)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (p *Pages) Set(ctx context.Context, tag, payload string) {
	if p == nil || p.rdb == nil {
		return
	}
	if err := p.rdb.Set(ctx, key(tag), payload, p.ttl).Err(); err != nil {
		log.Printf("⚠️ page cache set failed for %s: %v", tag, err)
	}
}

// Invalidate drops the cached pages for the given tags.
func (p *Pages) Invalidate(ctx context.Context, tags ...string) {
	if p == nil || p.rdb == nil || len(tags) == 0 {
		return
	}
	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = key(tag)
	}
	if err := p.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("⚠️ page cache invalidation failed: %v", err)
	}
}

// Tag helpers used by the controllers.

func ProductTag(id uint) string          { return fmt.Sprintf("product:%d", id) }
func CategoryTag(id uint) string         { return fmt.Sprintf("category:%d", id) }
func OrderTag(id uint) string            { return fmt.Sprintf("order:%d", id) }
func UserOrdersTag(userID string) string { return "orders:user:" + userID }

const (
	TagProducts   = "products"
	TagCategories = "categories"
	TagOrders     = "orders"
	TagSettings   = "settings"
	TagHome       = "home"
)
