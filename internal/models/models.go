package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five known statuses.
// Transitions between them are unrestricted.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Product struct {
	ID          string    `gorm:"primaryKey"      json:"id"`
	Name        string    `gorm:"not null"        json:"name"`
	Description string    `gorm:"not null"        json:"description"`
	Price       string    `gorm:"not null"        json:"price"`
	Image       string    `gorm:"not null"        json:"image"`
	Category    string    `gorm:"index;not null"  json:"category"`
	InStock     bool      `gorm:"default:true"    json:"inStock"`
	Rating      string    `gorm:"default:0"       json:"rating"`
	ReviewCount int       `gorm:"default:0"       json:"reviewCount"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	Ingredients string    `json:"ingredients,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// OrderItem is a snapshot of the product at order time, not a live
// reference. Later product edits or deletes never touch it.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

type Order struct {
	ID              string          `gorm:"primaryKey"                     json:"id"`
	CustomerName    string          `gorm:"not null"                       json:"customerName"`
	CustomerEmail   string          `gorm:"not null"                       json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone,omitempty"`
	ShippingAddress ShippingAddress `gorm:"serializer:json"                json:"shippingAddress"`
	Items           []OrderItem     `gorm:"serializer:json"                json:"items"`
	TotalAmount     string          `gorm:"not null"                       json:"totalAmount"`
	Status          string          `gorm:"index;not null;default:pending" json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

type BlogPost struct {
	ID        string    `gorm:"primaryKey"      json:"id"`
	Title     string    `gorm:"not null"        json:"title"`
	Slug      string    `gorm:"unique;not null" json:"slug"`
	Excerpt   string    `gorm:"not null"        json:"excerpt"`
	Content   string    `gorm:"not null"        json:"content"`
	Image     string    `gorm:"not null"        json:"image"`
	Category  string    `gorm:"not null"        json:"category"`
	Author    string    `gorm:"not null"        json:"author"`
	Published bool      `gorm:"default:false"   json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// CartItem references a product rather than copying it; the reference may
// dangle if the product is deleted later.
type CartItem struct {
	ID        string    `gorm:"primaryKey"                               json:"id"`
	SessionID string    `gorm:"uniqueIndex:idx_session_product;not null" json:"sessionId"`
	ProductID string    `gorm:"uniqueIndex:idx_session_product;not null" json:"productId"`
	Quantity  int       `gorm:"default:1"                                json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}
