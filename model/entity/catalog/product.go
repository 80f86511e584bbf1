package catalog

import (
	"math"

	"gorm.io/datatypes"
)

// Product is a sellable catalog item (template, dashboard kit, widget...).
type Product struct {
	ID             string         `gorm:"primaryKey;size:64" json:"id"`
	Name           string         `gorm:"size:255;index" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Price          float64        `json:"price"`
	OriginalPrice  *float64       `json:"original_price,omitempty"`
	Image          string         `gorm:"size:512" json:"image"`
	Category       string         `gorm:"size:64;index" json:"category"`
	Tags           datatypes.JSON `json:"tags"`
	InStock        bool           `json:"in_stock"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"review_count"`
	Features       datatypes.JSON `json:"features"`
	Specifications datatypes.JSON `json:"specifications"`
}

func (Product) TableName() string {
	return "catalog_product"
}

// Discounted reports whether the product carries a struck-through price.
func (p *Product) Discounted() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded discount percentage. The content
// pipeline guarantees original_price >= price; values violating that are
// passed through as-is.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice == 0 {
		return 0
	}
	return int(math.Round(((*p.OriginalPrice - p.Price) / *p.OriginalPrice) * 100))
}
