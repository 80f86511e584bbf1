package models

import (
	"encoding/json"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	entity "admybrand.GO/model/entity/catalog"
	"admybrand.GO/service/pricing"
)

// View models for graphql-go field resolvers. Field names match the
// schema case-insensitively.

type Product struct {
	ID              graphql.ID `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	OriginalPrice   *float64   `json:"original_price,omitempty"`
	Image           string     `json:"image"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	InStock         bool       `json:"in_stock"`
	Rating          float64    `json:"rating"`
	ReviewCount     int32      `json:"review_count"`
	DiscountPercent int32      `json:"discount_percent"`
}

type ProductList struct {
	Items      []*Product `json:"items"`
	TotalCount int32      `json:"total_count"`
}

type Post struct {
	ID          graphql.ID `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	AuthorName  string     `json:"author_name"`
	PublishedAt string     `json:"published_at"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	ReadTime    int32      `json:"read_time"`
	Featured    bool       `json:"featured"`
}

type PostList struct {
	Items      []*Post `json:"items"`
	TotalCount int32   `json:"total_count"`
}

type Category struct {
	ID   graphql.ID `json:"id"`
	Name string     `json:"name"`
}

type BlogCategory struct {
	ID          graphql.ID `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
}

type PlanOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"base_price"`
	PerUserRate float64 `json:"per_user_rate"`
	Popular     bool    `json:"popular"`
}

type PricingBreakdown struct {
	BasePrice       float64 `json:"base_price"`
	UserCost        float64 `json:"user_cost"`
	StorageCost     float64 `json:"storage_cost"`
	IntegrationCost float64 `json:"integration_cost"`
	SupportCost     float64 `json:"support_cost"`
	Total           float64 `json:"total"`
}

func decodeTags(raw []byte) []string {
	tags := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &tags)
	}
	return tags
}

// MapProduct converts a catalog entity to its GraphQL view.
func MapProduct(p *entity.Product) *Product {
	return &Product{
		ID:              graphql.ID(p.ID),
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		Image:           p.Image,
		Category:        p.Category,
		Tags:            decodeTags(p.Tags),
		InStock:         p.InStock,
		Rating:          p.Rating,
		ReviewCount:     int32(p.ReviewCount),
		DiscountPercent: int32(p.DiscountPercent()),
	}
}

// MapProducts converts a slice of entities.
func MapProducts(items []entity.Product) []*Product {
	out := make([]*Product, 0, len(items))
	for i := range items {
		out = append(out, MapProduct(&items[i]))
	}
	return out
}

// MapPost converts a blog post entity to its GraphQL view.
func MapPost(p *entity.BlogPost) *Post {
	return &Post{
		ID:          graphql.ID(p.ID),
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		AuthorName:  p.AuthorName,
		PublishedAt: p.PublishedAt.Format(time.RFC3339),
		Category:    p.Category,
		Tags:        decodeTags(p.Tags),
		ReadTime:    int32(p.ReadTime),
		Featured:    p.Featured,
	}
}

// MapPosts converts a slice of entities.
func MapPosts(items []entity.BlogPost) []*Post {
	out := make([]*Post, 0, len(items))
	for i := range items {
		out = append(out, MapPost(&items[i]))
	}
	return out
}

// MapBreakdown converts a pricing breakdown.
func MapBreakdown(b pricing.Breakdown) *PricingBreakdown {
	return &PricingBreakdown{
		BasePrice:       b.BasePrice,
		UserCost:        b.UserCost,
		StorageCost:     b.StorageCost,
		IntegrationCost: b.IntegrationCost,
		SupportCost:     b.SupportCost,
		Total:           b.Total,
	}
}
