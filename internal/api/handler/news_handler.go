package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/core/ports"
)

// FeedRefresher is the interface the handler uses to schedule background
// keyword refreshes after serving a cached response.
type FeedRefresher interface {
	Enqueue(keyword string)
}

type NewsHandler struct {
	newsService ports.NewsService
	refresher   FeedRefresher
}

func NewNewsHandler(newsService ports.NewsService, refresher FeedRefresher) *NewsHandler {
	return &NewsHandler{newsService: newsService, refresher: refresher}
}

// Search handles GET /api/news: merged articles for a keyword.
//
// @Summary      Search aggregated news
// @Tags         news
// @Produce      json
// @Param        keyword  query     string  true  "Search keyword"
// @Success      200      {array}   domain.News
// @Failure      400      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Router       /api/news [get]
func (h *NewsHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "keyword is required")
	}

	result, err := h.newsService.Search(c.Request().Context(), keyword)
	if err != nil {
		return err
	}

	// A cache hit may be stale; refresh it off the request path.
	if result.FromCache {
		h.refresher.Enqueue(keyword)
	}
	return c.JSON(http.StatusOK, result.Articles)
}

// Regional handles GET /api/chungbuk_news: the curated regional article
// list, newest first.
//
// @Summary      List regional news
// @Tags         news
// @Produce      json
// @Success      200  {array}  domain.News
// @Router       /api/chungbuk_news [get]
func (h *NewsHandler) Regional(c echo.Context) error {
	articles, err := h.newsService.Regional(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Trend handles GET /api/news/trend: keyword search-interest series.
//
// @Summary      Keyword trend
// @Tags         news
// @Produce      json
// @Param        keyword  query     string  true  "Keyword"
// @Success      200      {array}   domain.KeywordTrend
// @Failure      400      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Router       /api/news/trend [get]
func (h *NewsHandler) Trend(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "keyword is required")
	}

	points, err := h.newsService.Trend(c.Request().Context(), keyword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, points)
}
