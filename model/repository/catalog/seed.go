package catalog

import (
	"time"

	"gorm.io/datatypes"

	entity "admybrand.GO/model/entity/catalog"
)

func f64(v float64) *float64 { return &v }

func jsonList(items ...string) datatypes.JSON {
	out := []byte(`[`)
	for i, it := range items {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, '"')
		out = append(out, []byte(it)...)
		out = append(out, '"')
	}
	return datatypes.JSON(append(out, ']'))
}

// Seed loads the demo catalog. Idempotent: skips when products exist.
func (r *Repository) Seed() error {
	var n int64
	if err := r.db.Model(&entity.Product{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	products := []entity.Product{
		{
			ID:            "1",
			Name:          "Premium SaaS Landing Page Template",
			Description:   "Complete Next.js 14 landing page with dark mode, animations, and advanced components.",
			Price:         99,
			OriginalPrice: f64(149),
			Image:         "photo-1461749280684-dccba630e2f6",
			Category:      "Templates",
			Tags:          jsonList("Next.js", "React", "TypeScript", "Tailwind CSS"),
			InStock:       true,
			Rating:        4.8,
			ReviewCount:   127,
			Features:      jsonList("Dark mode support", "Advanced animations", "Responsive design", "SEO optimized", "TypeScript ready", "Component library"),
			Specifications: datatypes.JSON(`{"Framework":"Next.js 14","Styling":"Tailwind CSS","Language":"TypeScript"}`),
		},
		{
			ID:            "2",
			Name:          "E-commerce Dashboard Kit",
			Description:   "Complete e-commerce dashboard with analytics, order management, and customer insights.",
			Price:         199,
			OriginalPrice: f64(299),
			Image:         "photo-1551288049-bebda4e38f71",
			Category:      "Dashboards",
			Tags:          jsonList("Dashboard", "Analytics", "E-commerce", "React"),
			InStock:       true,
			Rating:        4.9,
			ReviewCount:   89,
			Features:      jsonList("Real-time analytics", "Order management", "Customer insights"),
			Specifications: datatypes.JSON(`{"Framework":"React","Charts":"Recharts"}`),
		},
		{
			ID:          "3",
			Name:        "AI-Powered Chat Widget",
			Description: "Intelligent chat widget with AI responses, sentiment analysis, and multi-language support.",
			Price:       149,
			Image:       "photo-1587560699334-cc4ff634909a",
			Category:    "Widgets",
			Tags:        jsonList("AI", "Chat", "Customer Support", "Machine Learning"),
			InStock:     true,
			Rating:      4.7,
			ReviewCount: 203,
			Features:    jsonList("AI responses", "Sentiment analysis", "Multi-language support"),
			Specifications: datatypes.JSON(`{"Runtime":"Edge","Languages":"40+"}`),
		},
	}
	if err := r.db.Create(&products).Error; err != nil {
		return err
	}

	categories := []entity.Category{
		{ID: "templates", Name: "Templates"},
		{ID: "dashboards", Name: "Dashboards"},
		{ID: "widgets", Name: "Widgets"},
	}
	if err := r.db.Create(&categories).Error; err != nil {
		return err
	}

	posts := []entity.BlogPost{
		{
			ID:          "1",
			Title:       "Building Modern SaaS Landing Pages with Next.js 14",
			Slug:        "building-modern-saas-landing-pages-nextjs-14",
			Excerpt:     "Learn how to create stunning SaaS landing pages using Next.js 14, TypeScript, and Tailwind CSS with advanced animations and dark mode support.",
			AuthorName:  "Sarah Chen",
			PublishedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Tags:        jsonList("Next.js", "React", "TypeScript", "SaaS", "Landing Page"),
			Category:    "Development",
			ReadTime:    8,
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "The Future of Web Development: AI-Assisted Coding",
			Slug:        "future-web-development-ai-assisted-coding",
			Excerpt:     "Explore how AI-assisted coding tools reshape developer workflows, from autocomplete to whole-feature generation.",
			AuthorName:  "Marcus Webb",
			PublishedAt: time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
			Tags:        jsonList("AI", "Web Development", "Machine Learning", "Productivity"),
			Category:    "Technology",
			ReadTime:    12,
			Featured:    true,
		},
		{
			ID:          "3",
			Title:       "Optimizing React Performance: A Comprehensive Guide",
			Slug:        "optimizing-react-performance-comprehensive-guide",
			Excerpt:     "A deep dive into memoization, list virtualization, and profiling techniques for React applications.",
			AuthorName:  "Sarah Chen",
			PublishedAt: time.Date(2024, 1, 5, 9, 15, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 5, 9, 15, 0, 0, time.UTC),
			Tags:        jsonList("React", "Performance", "Optimization", "JavaScript"),
			Category:    "Development",
			ReadTime:    15,
			Featured:    false,
		},
	}
	if err := r.db.Create(&posts).Error; err != nil {
		return err
	}

	blogCategories := []entity.BlogCategory{
		{ID: "1", Name: "Development", Slug: "development", Description: "Articles about web development, programming, and technical topics."},
		{ID: "2", Name: "Technology", Slug: "technology", Description: "Latest technology trends, AI, and innovation in the tech industry."},
		{ID: "3", Name: "Design", Slug: "design", Description: "UI/UX design principles, design systems, and creative topics."},
		{ID: "4", Name: "Business", Slug: "business", Description: "SaaS business insights, marketing strategies, and growth tips."},
	}
	return r.db.Create(&blogCategories).Error
}
