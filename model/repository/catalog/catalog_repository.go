package catalog

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "admybrand.GO/model/entity/catalog"
)

// Repository is the catalog data source: products, posts, categories.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the catalog tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&entity.Product{},
		&entity.BlogPost{},
		&entity.Category{},
		&entity.BlogCategory{},
	)
}

// ListProducts returns all products in insertion order.
func (r *Repository) ListProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Order("id").Find(&products).Error
	return products, err
}

// ProductByID returns a product and whether it was found.
func (r *Repository) ProductByID(id string) (*entity.Product, bool) {
	var p entity.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return &p, true
}

// FeaturedProducts returns products with rating >= 4.5.
func (r *Repository) FeaturedProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("rating >= ?", 4.5).Order("id").Find(&products).Error
	return products, err
}

// DiscountedProducts returns products with original_price > price.
func (r *Repository) DiscountedProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("original_price IS NOT NULL AND original_price > price").Order("id").Find(&products).Error
	return products, err
}

// ListPosts returns all blog posts in insertion order.
func (r *Repository) ListPosts() ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := r.db.Order("id").Find(&posts).Error
	return posts, err
}

// PostBySlug returns a post and whether it was found.
func (r *Repository) PostBySlug(slug string) (*entity.BlogPost, bool) {
	var p entity.BlogPost
	err := r.db.First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return &p, true
}

// FeaturedPosts returns posts flagged featured.
func (r *Repository) FeaturedPosts() ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := r.db.Where("featured = ?", true).Order("id").Find(&posts).Error
	return posts, err
}

// RecentPosts returns up to limit posts, newest first.
func (r *Repository) RecentPosts(limit int) ([]entity.BlogPost, error) {
	if limit <= 0 {
		limit = 5
	}
	var posts []entity.BlogPost
	err := r.db.Order("published_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// ListCategories returns product categories.
func (r *Repository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.db.Order("id").Find(&cats).Error
	return cats, err
}

// ListBlogCategories returns blog categories.
func (r *Repository) ListBlogCategories() ([]entity.BlogCategory, error) {
	var cats []entity.BlogCategory
	err := r.db.Order("id").Find(&cats).Error
	return cats, err
}

// CountByCategory returns product counts keyed by category name.
func (r *Repository) CountByCategory() (map[string]int64, error) {
	type row struct {
		Category string
		N        int64
	}
	var rows []row
	err := r.db.Model(&entity.Product{}).
		Select("category, COUNT(*) AS n").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Category] = rw.N
	}
	return counts, nil
}

// UpsertProducts writes products in batches. Used by the CSV import.
func (r *Repository) UpsertProducts(products []entity.Product, batchSize int) error {
	if len(products) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(&products, batchSize).Error
}
