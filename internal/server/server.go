// Package server hosts the portfolio page over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhiramvad/portfolio/internal/analytics"
	"github.com/abhiramvad/portfolio/internal/catalog"
	"github.com/abhiramvad/portfolio/internal/config"
	"github.com/abhiramvad/portfolio/internal/live"
	"github.com/abhiramvad/portfolio/internal/page"
	"github.com/abhiramvad/portfolio/internal/theme"
	"github.com/abhiramvad/portfolio/internal/view"
)

const shutdownTimeout = 10 * time.Second

// Server serves one catalog.
type Server struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	store   *analytics.Store
	live    *live.Handler
	router  *gin.Engine
}

// New builds the router. store may be nil, which disables visitor tracking
// and the stats endpoint.
func New(cfg *config.Config, cat *catalog.Catalog, store *analytics.Store, debug bool) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: cat,
		store:   store,
	}
	if cfg.LiveSessions {
		s.live = live.NewHandler(cat, debug, page.WithToggleLink(toggleLink))
	}
	s.router = s.routes()
	return s
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(view.Templates())

	if s.store != nil {
		r.Use(s.store.Middleware())
		r.GET("/stats", s.handleStats)
	}

	r.GET("/", s.handleIndex)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.live != nil {
		r.GET("/live", gin.WrapH(s.live))
	}

	// Photo, resume and anything else the catalog references.
	assets := http.FileServer(http.Dir(s.cfg.AssetsDir))
	r.NoRoute(func(c *gin.Context) {
		method, path := c.Request.Method, c.Request.URL.Path
		if (method != http.MethodGet && method != http.MethodHead) || strings.HasSuffix(path, "/") {
			c.Status(http.StatusNotFound)
			return
		}
		assets.ServeHTTP(c.Writer, c.Request)
	})

	return r
}

func (s *Server) handleIndex(c *gin.Context) {
	var opts []page.Option
	if dark, ok := theme.ParseMode(c.Query("theme")); ok {
		opts = append(opts, page.WithDark(dark))
	}
	opts = append(opts, page.WithLive(s.live != nil), page.WithToggleLink(toggleLink))
	p := page.New(s.catalog, opts...)

	props := p.Props()

	mode := theme.ModeName(props.Dark)
	c.Set(analytics.ThemeKey, mode)
	c.HTML(http.StatusOK, view.PageTemplate, view.NewData(props))
}

// toggleLink points at the page in the other theme. Live pages keep it as
// the fallback when the socket is unavailable.
func toggleLink(dark bool) string {
	return "/?theme=" + theme.ModeName(!dark)
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		log.Printf("server: loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Run serves on the configured port until ctx ends.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.router,
	}

	serveErr := make(chan error, 1)
	log.Printf("server: listening on %s (catalog %s)", srv.Addr, s.catalog.Name)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Println("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
