package storage

import (
	"context"
	"fmt"

	"github.com/maisonlumiere/boutique/internal/models"
)

// Seed primes an empty store with the sample catalog and blog content so a
// fresh process has something to show. It is skipped when products already
// exist, so it is safe against a persistent backend.
func Seed(ctx context.Context, s Store) error {
	existing, err := s.GetProducts(ctx)
	if err != nil {
		return fmt.Errorf("seed: list products: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	products := []models.Product{
		{
			Name:        "Golden Elegance",
			Description: "A sophisticated blend of jasmine, vanilla, and amber",
			Price:       "125.00",
			Image:       "https://images.unsplash.com/photo-1563170351-be82bc888aa4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
			Category:    "Floral",
			InStock:     true,
			Rating:      "4.9",
			ReviewCount: 127,
			Tags:        []string{"luxury", "floral", "evening"},
			Ingredients: "Jasmine, Vanilla, Amber, Rose Petals",
		},
		{
			Name:        "Crystal Rose",
			Description: "Delicate rose petals with hints of bergamot and musk",
			Price:       "150.00",
			Image:       "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
			Category:    "Rose",
			InStock:     true,
			Rating:      "4.7",
			ReviewCount: 89,
			Tags:        []string{"limited", "rose", "romantic"},
			Ingredients: "Rose Petals, Bergamot, Musk, White Tea",
		},
		{
			Name:        "Midnight Oud",
			Description: "Rich oud wood with spices and dark chocolate notes",
			Price:       "200.00",
			Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
			Category:    "Oud",
			InStock:     true,
			Rating:      "5.0",
			ReviewCount: 156,
			Tags:        []string{"new", "oud", "intense"},
			Ingredients: "Oud Wood, Spices, Dark Chocolate, Sandalwood",
		},
	}
	for i := range products {
		if _, err := s.CreateProduct(ctx, &products[i]); err != nil {
			return fmt.Errorf("seed: create product %q: %w", products[i].Name, err)
		}
	}

	posts := []models.BlogPost{
		{
			Title:     "The Art of Layering Fragrances",
			Slug:      "art-of-layering-fragrances",
			Excerpt:   "Learn how to create your unique signature scent by expertly layering different fragrances...",
			Content:   "Fragrance layering is an art form that allows you to create a completely unique scent...",
			Image:     "https://images.unsplash.com/photo-1556228578-8c89e6adf883?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Category:  "Perfumery Guide",
			Author:    "Isabella Martinez",
			Published: true,
		},
		{
			Title:     "Rare Ingredients That Define Luxury",
			Slug:      "rare-ingredients-luxury",
			Excerpt:   "Discover the exotic and rare ingredients that make our fragrances truly exceptional...",
			Content:   "In the world of luxury perfumery, the quality of ingredients makes all the difference...",
			Image:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Category:  "Ingredients",
			Author:    "Alexandre Dubois",
			Published: true,
		},
	}
	for i := range posts {
		if _, err := s.CreateBlogPost(ctx, &posts[i]); err != nil {
			return fmt.Errorf("seed: create blog post %q: %w", posts[i].Slug, err)
		}
	}

	return nil
}
