package catalog

import (
	"encoding/json"
	"sort"
	"strings"

	"gorm.io/datatypes"

	entity "admybrand.GO/model/entity/catalog"
)

// ProductSort selects the product sort key. Direction is fixed per key:
// name ascending, price ascending, rating descending.
type ProductSort string

const (
	SortByName   ProductSort = "name"
	SortByPrice  ProductSort = "price"
	SortByRating ProductSort = "rating"
)

// PostSort selects the blog post sort key. Direction is fixed per key:
// date newest-first, title ascending, readTime descending.
type PostSort string

const (
	SortByDate     PostSort = "date"
	SortByTitle    PostSort = "title"
	SortByReadTime PostSort = "readTime"
)

// ProductQuery is the shop view query. Category is a category id
// ("all" or empty disables the category stage). The price range is
// inclusive on both ends.
type ProductQuery struct {
	Text     string
	Category string
	PriceMin float64
	PriceMax float64
	SortBy   ProductSort
}

// PostQuery is the blog view query. Category is a blog category slug.
type PostQuery struct {
	Text     string
	Category string
	SortBy   PostSort
}

func decodeTags(raw datatypes.JSON) []string {
	var tags []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &tags)
	}
	return tags
}

func matchesText(q string, fields []string, tags []string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterProducts applies the shop pipeline in fixed order: text search,
// category, price range, sort. Each stage narrows the previous result;
// an empty result is valid. The input slice is never mutated.
func FilterProducts(products []entity.Product, categories []entity.Category, q ProductQuery) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	filtered = append(filtered, products...)

	if q.Text != "" {
		needle := strings.ToLower(q.Text)
		kept := filtered[:0]
		for _, p := range filtered {
			if matchesText(needle, []string{p.Name, p.Description}, decodeTags(p.Tags)) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if q.Category != "" && q.Category != "all" {
		var name string
		for _, c := range categories {
			if c.ID == q.Category {
				name = c.Name
				break
			}
		}
		// Unknown category id leaves the stage a no-op.
		if name != "" {
			want := strings.ToLower(name)
			kept := filtered[:0]
			for _, p := range filtered {
				if strings.ToLower(p.Category) == want {
					kept = append(kept, p)
				}
			}
			filtered = kept
		}
	}

	kept := filtered[:0]
	for _, p := range filtered {
		if p.Price >= q.PriceMin && p.Price <= q.PriceMax {
			kept = append(kept, p)
		}
	}
	filtered = kept

	switch q.SortBy {
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered
}

// FilterPosts applies the blog pipeline: text search, category (slug
// resolved to exact category name), sort. The input slice is never mutated.
func FilterPosts(posts []entity.BlogPost, categories []entity.BlogCategory, q PostQuery) []entity.BlogPost {
	filtered := make([]entity.BlogPost, 0, len(posts))
	filtered = append(filtered, posts...)

	if q.Text != "" {
		needle := strings.ToLower(q.Text)
		kept := filtered[:0]
		for _, p := range filtered {
			if matchesText(needle, []string{p.Title, p.Excerpt}, decodeTags(p.Tags)) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if q.Category != "" && q.Category != "all" {
		var name string
		for _, c := range categories {
			if c.Slug == q.Category {
				name = c.Name
				break
			}
		}
		if name != "" {
			kept := filtered[:0]
			for _, p := range filtered {
				if p.Category == name {
					kept = append(kept, p)
				}
			}
			filtered = kept
		}
	}

	switch q.SortBy {
	case SortByDate:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PublishedAt.After(filtered[j].PublishedAt)
		})
	case SortByTitle:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Title) < strings.ToLower(filtered[j].Title)
		})
	case SortByReadTime:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ReadTime > filtered[j].ReadTime
		})
	}

	return filtered
}
