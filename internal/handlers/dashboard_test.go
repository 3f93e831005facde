package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/transport"
)

func TestDashboardStats(t *testing.T) {
	store := newTestStore()
	orders := &OrderHandler{Store: store}
	products := &ProductHandler{Store: store}
	h := &DashboardHandler{Store: store}

	_, c := doJSONRequest(t, http.MethodPost, "/api/products", transport.CreateProductRequest{
		Name: "Test", Price: "10.00",
	})
	require.NoError(t, products.CreateProduct(c))

	// two orders from the same customer, one from another
	for _, req := range []transport.CreateOrderRequest{
		{CustomerEmail: "ada@example.com", Items: []models.OrderItem{{ProductID: "p1", Price: "100.00", Quantity: 1}}},
		{CustomerEmail: "ada@example.com", Items: []models.OrderItem{{ProductID: "p2", Price: "50.00", Quantity: 1}}},
		{CustomerEmail: "grace@example.com", Items: []models.OrderItem{{ProductID: "p1", Price: "100.00", Quantity: 2}}},
	} {
		_, c := doJSONRequest(t, http.MethodPost, "/api/orders", req)
		require.NoError(t, orders.CreateOrder(c))
	}

	rec, c := doJSONRequest(t, http.MethodGet, "/api/dashboard/stats", nil)
	require.NoError(t, h.GetStats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var stats transport.DashboardStats
	decodeJSON(t, rec, &stats)
	require.Equal(t, 3, stats.TotalOrders)
	require.Equal(t, 1, stats.TotalProducts)
	require.Equal(t, 2, stats.TotalCustomers)
	require.Equal(t, 3, stats.PendingOrders)
	require.InDelta(t, 350.0, stats.TotalRevenue, 0.001)
}
