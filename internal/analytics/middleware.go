package analytics

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ThemeKey is the gin context key handlers set to the rendered theme.
const ThemeKey = "analytics.theme"

// skipPrefixes are never counted.
var skipPrefixes = []string{
	"/live",
	"/stats",
	"/healthz",
	"/favicon",
}

// Middleware records page views in the background. It skips requests that
// send DNT: 1, internal routes, and anything that did not render the page.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range skipPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		theme := c.GetString(ThemeKey)
		if theme == "" {
			// Assets and 404s.
			return
		}
		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Record(ctx, ip, ua, path, theme); err != nil {
				log.Printf("analytics: %v", err)
			}
		}()
	}
}

// Wait blocks until background recordings finish.
func (s *Store) Wait() {
	s.wg.Wait()
}

// StartCleanup deletes expired rows now and then once a day until ctx is
// done.
func (s *Store) StartCleanup(ctx context.Context, months int) {
	run := func() {
		n, err := s.Cleanup(ctx, months)
		if err != nil {
			log.Printf("analytics: %v", err)
			return
		}
		if n > 0 {
			log.Printf("analytics: removed %d visitor records older than %d months", n, months)
		}
	}
	go func() {
		run()
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
