package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/transport"
)

// MemoryStore keeps every collection in process memory. It is the default
// backend: state is volatile and gone on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	products  map[string]models.Product
	orders    map[string]models.Order
	blogPosts map[string]models.BlogPost
	cartItems map[string]models.CartItem

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:  make(map[string]models.Product),
		orders:    make(map[string]models.Order),
		blogPosts: make(map[string]models.BlogPost),
		cartItems: make(map[string]models.CartItem),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) GetProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		items = append(items, p)
	}
	return items, nil
}

func (s *MemoryStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prod.ID == "" {
		prod.ID = uuid.NewString()
	}
	prod.CreatedAt = s.now()
	s.products[prod.ID] = *prod
	return prod, nil
}

func (s *MemoryStore) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prod, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Image != nil {
		prod.Image = *req.Image
	}
	if req.Category != nil {
		prod.Category = *req.Category
	}
	if req.InStock != nil {
		prod.InStock = *req.InStock
	}
	if req.Rating != nil {
		prod.Rating = *req.Rating
	}
	if req.ReviewCount != nil {
		prod.ReviewCount = *req.ReviewCount
	}
	if req.Tags != nil {
		prod.Tags = *req.Tags
	}
	if req.Ingredients != nil {
		prod.Ingredients = *req.Ingredients
	}

	s.products[id] = prod
	return &prod, nil
}

func (s *MemoryStore) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *MemoryStore) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Product, 0)
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			items = append(items, p)
		}
	}
	return items, nil
}

func (s *MemoryStore) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	items := make([]models.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			items = append(items, p)
		}
	}
	return items, nil
}

func (s *MemoryStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		items = append(items, o)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (s *MemoryStore) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	now := s.now()
	order.CreatedAt = now
	order.UpdatedAt = now
	s.orders[order.ID] = *order
	return order, nil
}

func (s *MemoryStore) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = s.now()
	s.orders[id] = order
	return &order, nil
}

func (s *MemoryStore) GetOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.Status == status {
			items = append(items, o)
		}
	}
	return items, nil
}

func (s *MemoryStore) GetBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.BlogPost, 0, len(s.blogPosts))
	for _, p := range s.blogPosts {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *MemoryStore) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.blogPosts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.blogPosts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateBlogPost(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := s.now()
	post.CreatedAt = now
	post.UpdatedAt = now
	s.blogPosts[post.ID] = *post
	return post, nil
}

func (s *MemoryStore) PatchBlogPost(ctx context.Context, req transport.PatchBlogPostRequest, id string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.blogPosts[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	post.UpdatedAt = s.now()

	s.blogPosts[id] = post
	return &post, nil
}

func (s *MemoryStore) DeleteBlogPost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogPosts[id]; !ok {
		return ErrNotFound
	}
	delete(s.blogPosts, id)
	return nil
}

func (s *MemoryStore) GetPublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.BlogPost, 0)
	for _, p := range s.blogPosts {
		if p.Published {
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *MemoryStore) GetCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, 0)
	for _, it := range s.cartItems {
		if it.SessionID == sessionID {
			items = append(items, it)
		}
	}
	return items, nil
}

// AddToCart merges into an existing session+product row instead of creating
// a duplicate. The read-modify-write runs under the write lock.
func (s *MemoryStore) AddToCart(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.cartItems {
		if existing.SessionID == item.SessionID && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			s.cartItems[id] = existing
			return &existing, nil
		}
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = s.now()
	s.cartItems[item.ID] = *item
	return item, nil
}

func (s *MemoryStore) UpdateCartItem(ctx context.Context, id string, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return &item, nil
}

func (s *MemoryStore) RemoveFromCart(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cartItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.cartItems, id)
	return nil
}

func (s *MemoryStore) ClearCart(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, it := range s.cartItems {
		if it.SessionID == sessionID {
			delete(s.cartItems, id)
		}
	}
	return nil
}
