package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/maisonlumiere/boutique/internal/models"
	"github.com/maisonlumiere/boutique/internal/transport"
)

// GormStore is the persistent backend. Semantics match MemoryStore; the
// linear scans become WHERE clauses.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// AutoMigrate creates the four tables.
func (s *GormStore) AutoMigrate() error {
	return s.DB.AutoMigrate(&models.Product{}, &models.Order{}, &models.BlogPost{}, &models.CartItem{})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) GetProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := s.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var prod models.Product
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&prod).Error; err != nil {
		return nil, notFound(err)
	}
	return &prod, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := s.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *GormStore) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id string) (*models.Product, error) {
	var prod models.Product
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&prod).Error; err != nil {
		return nil, notFound(err)
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

	if err := s.DB.WithContext(ctx).Save(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (s *GormStore) DeleteProduct(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var items []models.Product
	if err := s.DB.WithContext(ctx).
		Where("LOWER(category) = LOWER(?)", category).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	like := "%" + query + "%"
	var items []models.Product
	if err := s.DB.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)", like, like, like).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	var items []models.Order
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := s.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (s *GormStore) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, notFound(err)
	}
	order.Status = status
	if err := s.DB.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) GetOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var items []models.Order
	if err := s.DB.WithContext(ctx).Where("status = ?", status).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	var items []models.BlogPost
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (s *GormStore) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.DB.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

func (s *GormStore) CreateBlogPost(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if err := s.DB.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *GormStore) PatchBlogPost(ctx context.Context, req transport.PatchBlogPostRequest, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, notFound(err)
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

	if err := s.DB.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *GormStore) DeleteBlogPost(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.BlogPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetPublishedBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	var items []models.BlogPost
	if err := s.DB.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.DB.WithContext(ctx).Where("session_id = ?", sessionID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) AddToCart(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("session_id = ? AND product_id = ?", item.SessionID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("session_id = ? AND product_id = ?", item.SessionID, item.ProductID).First(item).Error
		}
		return tx.Create(item).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GormStore) UpdateCartItem(ctx context.Context, id string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	if err := s.DB.WithContext(ctx).Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return &item, nil
}

func (s *GormStore) RemoveFromCart(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ClearCart(ctx context.Context, sessionID string) error {
	return s.DB.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
