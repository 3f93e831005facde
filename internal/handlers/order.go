package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/maisonlumiere/boutique/internal/logging"
	"github.com/maisonlumiere/boutique/internal/metrics"
	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/mykafka"
	"github.com/maisonlumiere/boutique/internal/storage"
	"github.com/maisonlumiere/boutique/internal/transport"
)

type OrderHandler struct {
	Store    storage.Store
	Producer *mykafka.Producer
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	if status := c.QueryParam("status"); status != "" {
		items, err := h.Store.GetOrdersByStatus(ctx, status)
		if err != nil {
			l.Error("get_orders_failed", "status", 500, "reason", "status filter failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot filter orders")
		}
		return c.JSON(http.StatusOK, items)
	}

	items, err := h.Store.GetOrders(ctx)
	if err != nil {
		l.Error("get_orders_failed", "status", 500, "reason", "cannot list orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	order, err := h.Store.GetOrder(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("get_order_failed", "status", 404, "reason", "order not found")
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		l.Error("get_order_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get order")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if len(req.Items) == 0 {
		l.Warn("create_order_failed", "status", 400, "reason", "items required")
		return echo.NewHTTPError(http.StatusBadRequest, "items required")
	}
	if req.Status != "" && !models.ValidOrderStatus(req.Status) {
		l.Warn("create_order_failed", "status", 400, "reason", "unknown status")
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}

	total := req.TotalAmount
	if total == "" {
		var sum float64
		for _, it := range req.Items {
			price, err := strconv.ParseFloat(it.Price, 64)
			if err != nil {
				l.Warn("create_order_failed", "status", 400, "reason", "bad item price", "error", err)
				return echo.NewHTTPError(http.StatusBadRequest, "bad item price")
			}
			sum += price * float64(it.Quantity)
		}
		total = fmt.Sprintf("%.2f", sum)
	}

	order := models.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		TotalAmount:     total,
		Status:          req.Status,
	}

	created, err := h.Store.CreateOrder(ctx, &order)
	if err != nil {
		l.Error("create_order_failed", "status", 500, "reason", "cannot store order", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store order")
	}

	metrics.OrdersCreated.Inc()
	publish(c, h.Producer, "order_events", created.ID, map[string]any{
		"type":     "order_created",
		"orderID":  created.ID,
		"total":    created.TotalAmount,
		"customer": created.CustomerEmail,
	})

	l.Info("create_order_success", "order_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	// Any known status may follow any other; only unknown values are rejected.
	if !models.ValidOrderStatus(req.Status) {
		l.Warn("update_status_failed", "status", 400, "reason", "unknown status")
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}

	order, err := h.Store.UpdateOrderStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("update_status_failed", "status", 404, "reason", "order not found")
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		l.Error("update_status_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update order")
	}

	publish(c, h.Producer, "order_events", order.ID, map[string]any{
		"type":    "order_status_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})

	l.Info("update_status_success", "order_id", order.ID, "order_status", order.Status)
	return c.JSON(http.StatusOK, order)
}
