package handlers

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/maisonlumiere/boutique/internal/logging"
	"github.com/maisonlumiere/boutique/internal/service/search"
	"github.com/maisonlumiere/boutique/internal/storage"
	"github.com/maisonlumiere/boutique/internal/util"
)

// SearchHandler answers catalog search. It prefers the Elasticsearch index
// and falls back to the store's substring scan when none is configured.
type SearchHandler struct {
	Store storage.Store
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search.search")

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_failed", "status", 400, "reason", "query required")
		return echo.NewHTTPError(http.StatusBadRequest, "query required")
	}

	if h.ES == nil {
		products, err := h.Store.SearchProducts(ctx, q)
		if err != nil {
			l.Error("search_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
		}
		return c.JSON(http.StatusOK, echo.Map{"total": len(products), "products": products})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		l.Error("search_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
