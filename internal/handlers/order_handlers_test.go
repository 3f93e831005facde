package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/transport"
)

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Street:  "1 Rue de la Paix",
		City:    "Paris",
		State:   "IDF",
		ZipCode: "75002",
		Country: "France",
	}
}

func TestCreateOrder_DefaultsAndTotal(t *testing.T) {
	store := newTestStore()
	h := &OrderHandler{Store: store}

	req := transport.CreateOrderRequest{
		CustomerName:    "Ada",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: testAddress(),
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Golden Elegance", Price: "125.00", Quantity: 2},
			{ProductID: "p2", Name: "Crystal Rose", Price: "150.00", Quantity: 1},
		},
	}
	rec, c := doJSONRequest(t, http.MethodPost, "/api/orders", req)
	require.NoError(t, h.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Order
	decodeJSON(t, rec, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.OrderStatusPending, created.Status)
	require.Equal(t, "400.00", created.TotalAmount)
	require.Len(t, created.Items, 2)
}

func TestCreateOrder_RequiresItems(t *testing.T) {
	h := &OrderHandler{Store: newTestStore()}

	_, c := doJSONRequest(t, http.MethodPost, "/api/orders", transport.CreateOrderRequest{
		CustomerEmail: "ada@example.com",
	})
	err := h.CreateOrder(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	store := newTestStore()
	h := &OrderHandler{Store: store}

	rec, c := doJSONRequest(t, http.MethodPost, "/api/orders", transport.CreateOrderRequest{
		CustomerEmail: "ada@example.com",
		Items:         []models.OrderItem{{ProductID: "p1", Price: "10.00", Quantity: 1}},
	})
	require.NoError(t, h.CreateOrder(c))
	var created models.Order
	decodeJSON(t, rec, &created)

	rec, c = doJSONRequest(t, http.MethodPatch, "/api/orders/"+created.ID+"/status", transport.UpdateOrderStatusRequest{
		Status: models.OrderStatusShipped,
	})
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.UpdateOrderStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Order
	decodeJSON(t, rec, &updated)
	require.Equal(t, models.OrderStatusShipped, updated.Status)

	// unknown status values are rejected at the HTTP layer
	_, c = doJSONRequest(t, http.MethodPatch, "/api/orders/"+created.ID+"/status", transport.UpdateOrderStatusRequest{
		Status: "teleported",
	})
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	err := h.UpdateOrderStatus(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, he.Code)

	_, c = doJSONRequest(t, http.MethodPatch, "/api/orders/missing/status", transport.UpdateOrderStatusRequest{
		Status: models.OrderStatusShipped,
	})
	c.SetParamNames("id")
	c.SetParamValues("missing")
	err = h.UpdateOrderStatus(c)
	he, ok = err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetOrders_StatusFilter(t *testing.T) {
	store := newTestStore()
	h := &OrderHandler{Store: store}

	rec, c := doJSONRequest(t, http.MethodPost, "/api/orders", transport.CreateOrderRequest{
		CustomerEmail: "a@example.com",
		Items:         []models.OrderItem{{ProductID: "p1", Price: "10.00", Quantity: 1}},
	})
	require.NoError(t, h.CreateOrder(c))
	var first models.Order
	decodeJSON(t, rec, &first)

	_, c = doJSONRequest(t, http.MethodPost, "/api/orders", transport.CreateOrderRequest{
		CustomerEmail: "b@example.com",
		Items:         []models.OrderItem{{ProductID: "p2", Price: "20.00", Quantity: 1}},
	})
	require.NoError(t, h.CreateOrder(c))

	rec, c = doJSONRequest(t, http.MethodPatch, "/api/orders/"+first.ID+"/status", transport.UpdateOrderStatusRequest{
		Status: models.OrderStatusCancelled,
	})
	c.SetParamNames("id")
	c.SetParamValues(first.ID)
	require.NoError(t, h.UpdateOrderStatus(c))

	rec, c = doJSONRequest(t, http.MethodGet, "/api/orders?status=cancelled", nil)
	require.NoError(t, h.GetOrders(c))
	var cancelled []models.Order
	decodeJSON(t, rec, &cancelled)
	require.Len(t, cancelled, 1)
	require.Equal(t, first.ID, cancelled[0].ID)

	rec, c = doJSONRequest(t, http.MethodGet, "/api/orders", nil)
	require.NoError(t, h.GetOrders(c))
	var all []models.Order
	decodeJSON(t, rec, &all)
	require.Len(t, all, 2)
}
