package cache

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cached serves a GET endpoint from Redis when a stored copy exists and
// stores fresh 200 responses for the next reader. Requests carrying a query
// string bypass the cache entirely, so filtered and paginated listings stay
// live; only the unfiltered default payload is ever cached, under the same
// tag the mutating handlers invalidate.
func (p *Pages) Cached(tag func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p == nil || p.rdb == nil || c.Request.URL.RawQuery != "" {
			c.Next()
			return
		}

		t := tag(c)
		if payload, ok := p.Get(c.Request.Context(), t); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(payload))
			c.Abort()
			return
		}

		w := &bufferedWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() == http.StatusOK {
			p.Set(c.Request.Context(), t, w.buf.String())
		}
	}
}

// FixedTag keys every request on the route under one tag.
func FixedTag(tag string) func(*gin.Context) string {
	return func(*gin.Context) string { return tag }
}

// ParamTag keys requests by a path parameter so detail pages land on the
// same keys ProductTag and CategoryTag produce for invalidation.
func ParamTag(prefix, param string) func(*gin.Context) string {
	return func(c *gin.Context) string { return prefix + ":" + c.Param(param) }
}

type bufferedWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
