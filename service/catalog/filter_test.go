package catalog

import (
	"strings"
	"testing"
	"time"

	"gorm.io/datatypes"

	entity "admybrand.GO/model/entity/catalog"
)

func tags(items ...string) datatypes.JSON {
	out := `["` + strings.Join(items, `","`) + `"]`
	return datatypes.JSON(out)
}

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Premium SaaS Landing Page Template", Description: "Next.js landing page", Price: 99, Category: "Templates", Tags: tags("Next.js", "React"), Rating: 4.8},
		{ID: "2", Name: "E-commerce Dashboard Kit", Description: "analytics dashboard", Price: 199, Category: "Dashboards", Tags: tags("Dashboard", "Analytics"), Rating: 4.9},
		{ID: "3", Name: "AI-Powered Chat Widget", Description: "chat widget", Price: 149, Category: "Widgets", Tags: tags("AI", "Chat"), Rating: 4.7},
		{ID: "4", Name: "Analytics Widget", Description: "metrics widget", Price: 149, Category: "Widgets", Tags: tags("Analytics"), Rating: 4.7},
	}
}

func testCategories() []entity.Category {
	return []entity.Category{
		{ID: "templates", Name: "Templates"},
		{ID: "dashboards", Name: "Dashboards"},
		{ID: "widgets", Name: "Widgets"},
	}
}

func baseQuery() ProductQuery {
	return ProductQuery{PriceMin: 0, PriceMax: 500}
}

func TestFilterProducts_EmptyTextKeepsAll(t *testing.T) {
	got := FilterProducts(testProducts(), testCategories(), baseQuery())
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
}

func TestFilterProducts_TextMatchesNameOrTag(t *testing.T) {
	q := baseQuery()
	q.Text = "analytics"
	got := FilterProducts(testProducts(), testCategories(), q)
	if len(got) == 0 {
		t.Fatal("no results for analytics")
	}
	for _, p := range got {
		hit := strings.Contains(strings.ToLower(p.Name), "analytics") ||
			strings.Contains(strings.ToLower(p.Description), "analytics")
		for _, tag := range decodeTags(p.Tags) {
			if strings.Contains(strings.ToLower(tag), "analytics") {
				hit = true
			}
		}
		if !hit {
			t.Errorf("product %s returned without a match", p.ID)
		}
	}
}

func TestFilterProducts_CategoryCaseInsensitive(t *testing.T) {
	q := baseQuery()
	q.Category = "widgets"
	got := FilterProducts(testProducts(), testCategories(), q)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, p := range got {
		if p.Category != "Widgets" {
			t.Errorf("category = %q, want Widgets", p.Category)
		}
	}
}

func TestFilterProducts_UnknownCategoryIsNoop(t *testing.T) {
	q := baseQuery()
	q.Category = "does-not-exist"
	got := FilterProducts(testProducts(), testCategories(), q)
	if len(got) != 4 {
		t.Fatalf("unknown category filtered items: len = %d, want 4", len(got))
	}
}

func TestFilterProducts_PriceRangeInclusive(t *testing.T) {
	q := baseQuery()
	q.PriceMin = 99
	q.PriceMax = 149
	got := FilterProducts(testProducts(), testCategories(), q)
	ids := map[string]bool{}
	for _, p := range got {
		ids[p.ID] = true
	}
	if !ids["1"] || !ids["3"] || !ids["4"] || ids["2"] {
		t.Errorf("got ids %v, want 1,3,4 (bounds inclusive)", ids)
	}
}

func TestFilterProducts_SortDirectionsFixed(t *testing.T) {
	q := baseQuery()
	q.SortBy = SortByPrice
	got := FilterProducts(testProducts(), testCategories(), q)
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatal("price sort not ascending")
		}
	}

	q.SortBy = SortByRating
	got = FilterProducts(testProducts(), testCategories(), q)
	for i := 1; i < len(got); i++ {
		if got[i-1].Rating < got[i].Rating {
			t.Fatal("rating sort not descending")
		}
	}
}

func TestFilterProducts_SortStable(t *testing.T) {
	q := baseQuery()
	q.SortBy = SortByRating
	got := FilterProducts(testProducts(), testCategories(), q)
	// Products 3 and 4 share rating 4.7; input order must survive.
	var first string
	for _, p := range got {
		if p.Rating == 4.7 {
			first = p.ID
			break
		}
	}
	if first != "3" {
		t.Errorf("equal-key order changed: first 4.7 id = %s, want 3", first)
	}
}

func TestFilterProducts_Idempotent(t *testing.T) {
	q := baseQuery()
	q.Text = "widget"
	q.SortBy = SortByName
	once := FilterProducts(testProducts(), testCategories(), q)
	twice := FilterProducts(once, testCategories(), q)
	if len(once) != len(twice) {
		t.Fatalf("len changed: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("order changed at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilterProducts_InputNotMutated(t *testing.T) {
	in := testProducts()
	q := baseQuery()
	q.SortBy = SortByPrice
	FilterProducts(in, testCategories(), q)
	if in[0].ID != "1" || in[3].ID != "4" {
		t.Error("input slice reordered")
	}
}

func testPosts() []entity.BlogPost {
	return []entity.BlogPost{
		{ID: "1", Title: "Building Modern SaaS Landing Pages", Excerpt: "Next.js guide", Category: "Development", ReadTime: 8, PublishedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Tags: tags("Next.js")},
		{ID: "2", Title: "AI-Assisted Coding", Excerpt: "AI tools", Category: "Technology", ReadTime: 12, PublishedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Tags: tags("AI")},
		{ID: "3", Title: "Optimizing React Performance", Excerpt: "React profiling", Category: "Development", ReadTime: 15, PublishedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Tags: tags("React")},
	}
}

func testBlogCategories() []entity.BlogCategory {
	return []entity.BlogCategory{
		{ID: "1", Name: "Development", Slug: "development"},
		{ID: "2", Name: "Technology", Slug: "technology"},
	}
}

func TestFilterPosts_CategoryBySlugExactName(t *testing.T) {
	got := FilterPosts(testPosts(), testBlogCategories(), PostQuery{Category: "development"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestFilterPosts_UnknownSlugIsNoop(t *testing.T) {
	got := FilterPosts(testPosts(), testBlogCategories(), PostQuery{Category: "design"})
	if len(got) != 3 {
		t.Fatalf("unknown slug filtered posts: len = %d, want 3", len(got))
	}
}

func TestFilterPosts_DateSortNewestFirst(t *testing.T) {
	got := FilterPosts(testPosts(), testBlogCategories(), PostQuery{SortBy: SortByDate})
	for i := 1; i < len(got); i++ {
		if got[i-1].PublishedAt.Before(got[i].PublishedAt) {
			t.Fatal("date sort not newest-first")
		}
	}
}

func TestFilterPosts_ReadTimeDescending(t *testing.T) {
	got := FilterPosts(testPosts(), testBlogCategories(), PostQuery{SortBy: SortByReadTime})
	if got[0].ReadTime != 15 {
		t.Errorf("first readTime = %d, want 15", got[0].ReadTime)
	}
}

func TestFilterPosts_EmptyResultIsValid(t *testing.T) {
	got := FilterPosts(testPosts(), testBlogCategories(), PostQuery{Text: "zzz-no-match"})
	if got == nil {
		t.Fatal("want empty non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
