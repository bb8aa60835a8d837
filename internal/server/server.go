package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"skateshop/storefront/internal/catalog"
	"skateshop/storefront/internal/client"
	"skateshop/storefront/internal/domain"
	"skateshop/storefront/internal/render"
	"skateshop/storefront/web"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// Server exposes the storefront pages and the catalog actions over HTTP.
type Server struct {
	echo      *echo.Echo
	store     *catalog.Store
	renderer  *render.Renderer
	notifier  client.InquiryNotifier
	hierarchy domain.Hierarchy
}

// New registers the routes. notifier may be nil, in which case contact
// submissions are refused.
func New(store *catalog.Store, renderer *render.Renderer, notifier client.InquiryNotifier, hierarchy domain.Hierarchy) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		store:     store,
		renderer:  renderer,
		notifier:  notifier,
		hierarchy: hierarchy,
	}

	e.Use(requestLogger)

	e.GET("/", s.Storefront)
	e.GET("/admin", s.Admin)
	e.GET("/contact", s.Contact)
	e.POST("/contact", s.SendInquiry)
	e.GET("/categories/:main/subcategories", s.SubCategories)
	e.GET("/products", s.ListProducts)
	e.POST("/products", s.AddProduct)
	e.POST("/products/:id/remove", s.RemoveProduct)
	e.StaticFS("/assets", web.Assets())

	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("🛹 Storefront listening on %s", addr)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server stopped: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Shutting down storefront...")
	return s.echo.Shutdown(shutdownCtx)
}
