package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func testPages(t *testing.T) *Pages {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPages(rdb, time.Minute)
}

func cachedRouter(p *Pages, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", p.Cached(FixedTag(TagProducts)), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"products": []string{"mug"}})
	})
	return r
}

func TestCachedServesStoredCopy(t *testing.T) {
	p := testPages(t)
	hits := 0
	r := cachedRouter(p, &hits)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/products", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/products", nil))

	if hits != 1 {
		t.Fatalf("handler ran %d times, want 1 (second request served from cache)", hits)
	}
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status codes = %d, %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("cached body %q differs from fresh body %q", second.Body.String(), first.Body.String())
	}
}

func TestCachedBypassesFilteredRequests(t *testing.T) {
	p := testPages(t)
	hits := 0
	r := cachedRouter(p, &hits)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?page=2", nil))
	}

	if hits != 2 {
		t.Fatalf("handler ran %d times, want 2 (query strings must not be cached)", hits)
	}
}

func TestInvalidateDropsStoredCopy(t *testing.T) {
	p := testPages(t)
	ctx := context.Background()

	p.Set(ctx, TagProducts, "stale listing")
	if _, ok := p.Get(ctx, TagProducts); !ok {
		t.Fatal("Set then Get should hit")
	}

	p.Invalidate(ctx, TagProducts)
	if _, ok := p.Get(ctx, TagProducts); ok {
		t.Fatal("Get after Invalidate should miss")
	}
}

func TestCachedInvalidationRoundTrip(t *testing.T) {
	p := testPages(t)
	hits := 0
	r := cachedRouter(p, &hits)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products", nil))
	p.Invalidate(context.Background(), TagProducts)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products", nil))

	if hits != 2 {
		t.Fatalf("handler ran %d times, want 2 (invalidation must force a re-render)", hits)
	}
}
