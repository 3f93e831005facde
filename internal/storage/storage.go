package storage

import (
	"context"
	"errors"

	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/transport"
)

// ErrNotFound is returned when no record exists for the given id or slug.
// Callers map it to a 404; nothing at this layer treats absence as fatal.
var ErrNotFound = errors.New("not found")

// Store owns the four collections. Implementations never validate across
// collections: adding a cart item does not check the product exists, and
// deleting a product leaves order snapshots and cart references alone.
type Store interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error)
	PatchProduct(ctx context.Context, req transport.PatchProductRequest, id string) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)

	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error)
	GetOrdersByStatus(ctx context.Context, status string) ([]models.Order, error)

	GetBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	CreateBlogPost(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	PatchBlogPost(ctx context.Context, req transport.PatchBlogPostRequest, id string) (*models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) error
	GetPublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error)

	GetCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error)
	AddToCart(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, id string, quantity int) (*models.CartItem, error)
	RemoveFromCart(ctx context.Context, id string) error
	ClearCart(ctx context.Context, sessionID string) error
}
