package catalog

import (
	"time"

	"gorm.io/datatypes"
)

// BlogPost is a published article on the marketing blog.
type BlogPost struct {
	ID          string         `gorm:"primaryKey;size:64" json:"id"`
	Title       string         `gorm:"size:255;index" json:"title"`
	Slug        string         `gorm:"size:255;uniqueIndex" json:"slug"`
	Excerpt     string         `gorm:"type:text" json:"excerpt"`
	Content     string         `gorm:"type:text" json:"content"`
	AuthorName  string         `gorm:"size:128" json:"author_name"`
	AuthorBio   string         `gorm:"size:512" json:"author_bio"`
	PublishedAt time.Time      `gorm:"index" json:"published_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Tags        datatypes.JSON `json:"tags"`
	Category    string         `gorm:"size:64;index" json:"category"`
	ReadTime    int            `json:"read_time"`
	Featured    bool           `gorm:"index" json:"featured"`
}

func (BlogPost) TableName() string {
	return "blog_post"
}
