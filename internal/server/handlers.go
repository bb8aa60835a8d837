package server

import (
	"errors"
	"net/http"
	"strings"

	"skateshop/storefront/internal/catalog"
	"skateshop/storefront/internal/domain"
	"skateshop/storefront/internal/render"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

// listing returns the full list, or the filtered subsequence when the
// request names a category field and value.
func (s *Server) listing(c echo.Context) []domain.Product {
	field := c.QueryParam("field")
	if field == "" {
		return s.renderer.Displayed()
	}

	f, ok := domain.ParseCategoryField(field)
	if !ok {
		return []domain.Product{}
	}
	return s.store.Filter(f, c.QueryParam("value"))
}

func (s *Server) writePage(c echo.Context, page *render.Page) error {
	html, err := page.HTML()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTML(http.StatusOK, html)
}

func (s *Server) Storefront(c echo.Context) error {
	page, err := s.renderer.Compose(render.PageIndex, s.listing(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return s.writePage(c, page)
}

func (s *Server) Admin(c echo.Context) error {
	page, err := s.renderer.Compose(render.PageAdmin, s.listing(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if main := c.QueryParam("main"); main != "" {
		page.Change(render.MainCategorySelectID, main)
	}
	return s.writePage(c, page)
}

func (s *Server) Contact(c echo.Context) error {
	page, err := s.renderer.Compose(render.PageContact, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return s.writePage(c, page)
}

// SubCategories returns the dependent selector's options for a main
// category. Unknown categories get 204 so the client keeps its options.
// The router has already decoded the path parameter.
func (s *Server) SubCategories(c echo.Context) error {
	subs, ok := s.hierarchy.SubNames(c.Param("main"))
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}

	html, err := render.OptionsHTML(render.BuildSelectView(render.SubCategoryPlaceholder, subs))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTML(http.StatusOK, html)
}

func (s *Server) ListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, s.listing(c))
}

func (s *Server) AddProduct(c echo.Context) error {
	price, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("price")))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	_, err = s.store.Add(c.Request().Context(), domain.NewProduct{
		Title:       c.FormValue("title"),
		Price:       price,
		Description: c.FormValue("description"),
		Main:        c.FormValue("main"),
		Sub:         c.FormValue("sub"),
		Type:        c.FormValue("type"),
		Image:       strings.TrimSpace(c.FormValue("image")),
	})
	if errors.Is(err, catalog.ErrNegativePrice) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		// The product is listed; only the write-through failed.
		log.Warnf("Product added without being persisted: %v", err)
	}

	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (s *Server) RemoveProduct(c echo.Context) error {
	if err := s.store.Remove(c.Request().Context(), c.Param("id")); err != nil {
		log.Warnf("Product removed without being persisted: %v", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) SendInquiry(c echo.Context) error {
	if s.notifier == nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "contact form is not configured"})
	}

	var inquiry domain.Inquiry
	if err := c.Bind(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid inquiry"})
	}

	resp, err := s.notifier.SendInquiry(c.Request().Context(), inquiry)
	if err != nil {
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}
