package transport

import "github.com/maisonlumiere/boutique/internal/models"

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	InStock     *bool    `json:"inStock"`
	Rating      string   `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Tags        []string `json:"tags"`
	Ingredients string   `json:"ingredients"`
}

type PatchProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	InStock     *bool     `json:"inStock"`
	Rating      *string   `json:"rating"`
	ReviewCount *int      `json:"reviewCount"`
	Tags        *[]string `json:"tags"`
	Ingredients *string   `json:"ingredients"`
}

type CreateOrderRequest struct {
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	Items           []models.OrderItem     `json:"items"`
	TotalAmount     string                 `json:"totalAmount"`
	Status          string                 `json:"status"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateBlogPostRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	Published *bool  `json:"published"`
}

type PatchBlogPostRequest struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	Image     *string `json:"image"`
	Category  *string `json:"category"`
	Author    *string `json:"author"`
	Published *bool   `json:"published"`
}

type AddToCartRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type DashboardStats struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	PendingOrders  int     `json:"pendingOrders"`
}
