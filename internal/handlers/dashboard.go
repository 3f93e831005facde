package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/maisonlumiere/boutique/internal/logging"
	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/storage"
	"github.com/maisonlumiere/boutique/internal/transport"
)

type DashboardHandler struct {
	Store storage.Store
}

// GetStats aggregates the admin dashboard counters in one pass over orders
// and products. Unparseable order totals count as zero revenue.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.get_stats")

	orders, err := h.Store.GetOrders(ctx)
	if err != nil {
		l.Error("get_stats_failed", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute stats")
	}
	products, err := h.Store.GetProducts(ctx)
	if err != nil {
		l.Error("get_stats_failed", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute stats")
	}

	stats := transport.DashboardStats{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}

	customers := make(map[string]struct{})
	for _, o := range orders {
		if total, err := strconv.ParseFloat(o.TotalAmount, 64); err == nil {
			stats.TotalRevenue += total
		}
		if o.CustomerEmail != "" {
			customers[o.CustomerEmail] = struct{}{}
		}
		if o.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	stats.TotalCustomers = len(customers)

	return c.JSON(http.StatusOK, stats)
}
