package catalog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"admybrand.GO/api"
	"admybrand.GO/core/cache"
	entity "admybrand.GO/model/entity/catalog"
	repository "admybrand.GO/model/repository/catalog"
	catalogService "admybrand.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// Default shop price range, matching the storefront slider.
const (
	defaultPriceMin = 0
	defaultPriceMax = 500
)

const featuredCacheTTL = 300 // seconds

func parsePrice(c echo.Context, name string, def float64) float64 {
	if raw := c.QueryParam(name); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return def
}

func RegisterCatalogRoutes(apiGroup *echo.Group, deps *api.Deps) {
	repo := repository.NewRepository(deps.DB)
	g := apiGroup.Group("/catalog")

	// GET /api/catalog/products?q=&category=&min_price=&max_price=&sort=
	g.GET("/products", func(c echo.Context) error {
		start := time.Now()

		products, err := repo.ListProducts()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		categories, err := repo.ListCategories()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		q := catalogService.ProductQuery{
			Text:     c.QueryParam("q"),
			Category: c.QueryParam("category"),
			PriceMin: parsePrice(c, "min_price", defaultPriceMin),
			PriceMax: parsePrice(c, "max_price", defaultPriceMax),
			SortBy:   catalogService.ProductSort(c.QueryParam("sort")),
		}
		items := catalogService.GetSearchService().SearchProducts(c.Request().Context(), products, categories, q)

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"items":       items,
			"total_count": len(items),
		})
	})

	// GET /api/catalog/products/:id
	g.GET("/products/:id", func(c echo.Context) error {
		p, ok := repo.ProductByID(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, p)
	})

	// GET /api/catalog/products/featured – cached, warmed by the cron job
	g.GET("/products/featured", func(c echo.Context) error {
		if v, ok := cache.GetInstance().GetN("catalog", "featured"); ok {
			return c.JSON(http.StatusOK, echo.Map{"items": v})
		}
		items, err := repo.FeaturedProducts()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		cache.GetInstance().SetN([]interface{}{"catalog", "featured"}, items, featuredCacheTTL, []string{"catalog"})
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	})

	// GET /api/catalog/products/discounted
	g.GET("/products/discounted", func(c echo.Context) error {
		if v, ok := cache.GetInstance().GetN("catalog", "discounted"); ok {
			return c.JSON(http.StatusOK, echo.Map{"items": v})
		}
		items, err := repo.DiscountedProducts()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		cache.GetInstance().SetN([]interface{}{"catalog", "discounted"}, items, featuredCacheTTL, []string{"catalog"})
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	})

	// GET /api/catalog/posts?q=&category=&sort=
	g.GET("/posts", func(c echo.Context) error {
		posts, err := repo.ListPosts()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		blogCats, err := repo.ListBlogCategories()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		items := catalogService.FilterPosts(posts, blogCats, catalogService.PostQuery{
			Text:     c.QueryParam("q"),
			Category: c.QueryParam("category"),
			SortBy:   catalogService.PostSort(c.QueryParam("sort")),
		})
		return c.JSON(http.StatusOK, echo.Map{
			"items":       items,
			"total_count": len(items),
		})
	})

	// GET /api/catalog/posts/recent?limit=
	g.GET("/posts/recent", func(c echo.Context) error {
		limit := 5
		if raw := c.QueryParam("limit"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				limit = v
			}
		}
		posts, err := repo.RecentPosts(limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": posts})
	})

	// GET /api/catalog/posts/:slug
	g.GET("/posts/:slug", func(c echo.Context) error {
		p, ok := repo.PostBySlug(c.Param("slug"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
		}
		return c.JSON(http.StatusOK, p)
	})

	// GET /api/catalog/categories – product + blog categories with counts
	g.GET("/categories", func(c echo.Context) error {
		cats, err := repo.ListCategories()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		blogCats, err := repo.ListBlogCategories()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		counts, err := repo.CountByCategory()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		type categoryView struct {
			entity.Category
			Count int64 `json:"count"`
		}
		views := make([]categoryView, 0, len(cats))
		for _, cat := range cats {
			views = append(views, categoryView{Category: cat, Count: counts[cat.Name]})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"categories":      views,
			"blog_categories": blogCats,
		})
	})
}
