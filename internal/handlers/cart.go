package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maisonlumiere/boutique/internal/logging"
	"github.com/maisonlumiere/boutique/internal/metrics"
	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/mykafka"
	"github.com/maisonlumiere/boutique/internal/storage"
	"github.com/maisonlumiere/boutique/internal/transport"
)

type CartHandler struct {
	Store    storage.Store
	Producer *mykafka.Producer
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	sessionID := c.Param("sessionId")
	if sessionID == "" {
		l.Warn("get_cart_failed", "status", 400, "reason", "session id required")
		return echo.NewHTTPError(http.StatusBadRequest, "session id required")
	}

	items, err := h.Store.GetCartItems(ctx, sessionID)
	if err != nil {
		l.Error("get_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list cart")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.SessionID == "" || req.ProductID == "" || req.Quantity < 1 {
		l.Warn("add_to_cart_failed", "status", 400, "reason", "sessionId, productId and quantity>=1 required")
		return echo.NewHTTPError(http.StatusBadRequest, "sessionId, productId and quantity>=1 required")
	}

	item := models.CartItem{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	stored, err := h.Store.AddToCart(ctx, &item)
	if err != nil {
		l.Error("add_to_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add to cart")
	}

	metrics.CartAdds.Inc()
	publish(c, h.Producer, "cart_events", stored.SessionID, map[string]any{
		"type":      "cart_item_added",
		"itemID":    stored.ID,
		"productID": stored.ProductID,
		"quantity":  stored.Quantity,
	})

	l.Info("add_to_cart_success", "item_id", stored.ID, "quantity", stored.Quantity)
	return c.JSON(http.StatusCreated, stored)
}

func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_item")

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	// The store accepts any quantity; callers clamp to >=1 before sending.
	item, err := h.Store.UpdateCartItem(ctx, c.Param("id"), req.Quantity)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("update_item_failed", "status", 404, "reason", "item not found")
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		l.Error("update_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart item")
	}

	l.Info("update_item_success", "item_id", item.ID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	id := c.Param("id")
	if err := h.Store.RemoveFromCart(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.Warn("remove_item_failed", "status", 404, "reason", "item not found")
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		l.Error("remove_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove cart item")
	}

	publish(c, h.Producer, "cart_events", id, map[string]any{
		"type":   "cart_item_removed",
		"itemID": id,
	})

	l.Info("remove_item_success", "item_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear_cart")

	sessionID := c.Param("sessionId")
	if sessionID == "" {
		l.Warn("clear_cart_failed", "status", 400, "reason", "session id required")
		return echo.NewHTTPError(http.StatusBadRequest, "session id required")
	}

	// Idempotent: clearing an empty session is a no-op, not an error.
	if err := h.Store.ClearCart(ctx, sessionID); err != nil {
		l.Error("clear_cart_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot clear cart")
	}

	publish(c, h.Producer, "cart_events", sessionID, map[string]any{
		"type":      "cart_cleared",
		"sessionID": sessionID,
	})

	l.Info("clear_cart_success", "session_id", sessionID)
	return c.NoContent(http.StatusNoContent)
}
