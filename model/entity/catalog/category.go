package catalog

// Category is a product category. ID doubles as the URL slug
// (templates, dashboards, widgets); "all" is a virtual id handled
// by the filter layer, never stored.
type Category struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:128" json:"name"`
}

func (Category) TableName() string {
	return "catalog_category"
}

// BlogCategory is a blog category with a distinct slug and description.
type BlogCategory struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:128" json:"name"`
	Slug        string `gorm:"size:128;uniqueIndex" json:"slug"`
	Description string `gorm:"size:512" json:"description"`
}

func (BlogCategory) TableName() string {
	return "blog_category"
}
