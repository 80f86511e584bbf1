package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"admybrand.GO/graphql"
	gqlmodels "admybrand.GO/graphql/models"
	"admybrand.GO/graphql/registry"
	repository "admybrand.GO/model/repository/catalog"
	catalogService "admybrand.GO/service/catalog"
	"admybrand.GO/service/pricing"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	DB *gorm.DB
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{repo: repository.NewRepository(r.DB)}
}

// QueryResolver implements Query fields.
type QueryResolver struct {
	repo *repository.Repository
}

// ProductsArgs matches the products query arguments
// (schema defaults: minPrice=0, maxPrice=500).
type ProductsArgs struct {
	Search   *string
	Category *string
	MinPrice float64
	MaxPrice float64
	Sort     *string
}

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) (*gqlmodels.ProductList, error) {
	products, err := r.repo.ListProducts()
	if err != nil {
		return nil, err
	}
	categories, err := r.repo.ListCategories()
	if err != nil {
		return nil, err
	}

	q := catalogService.ProductQuery{
		PriceMin: args.MinPrice,
		PriceMax: args.MaxPrice,
	}
	if args.Search != nil {
		q.Text = *args.Search
	}
	if args.Category != nil {
		q.Category = *args.Category
	}
	if args.Sort != nil {
		q.SortBy = catalogService.ProductSort(*args.Sort)
	}

	items := catalogService.GetSearchService().SearchProducts(ctx, products, categories, q)
	return &gqlmodels.ProductList{
		Items:      gqlmodels.MapProducts(items),
		TotalCount: int32(len(items)),
	}, nil
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID gql.ID
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error) {
	p, ok := r.repo.ProductByID(string(args.ID))
	if !ok {
		return nil, nil
	}
	return gqlmodels.MapProduct(p), nil
}

func (r *QueryResolver) FeaturedProducts(ctx context.Context) ([]*gqlmodels.Product, error) {
	items, err := r.repo.FeaturedProducts()
	if err != nil {
		return nil, err
	}
	return gqlmodels.MapProducts(items), nil
}

func (r *QueryResolver) DiscountedProducts(ctx context.Context) ([]*gqlmodels.Product, error) {
	items, err := r.repo.DiscountedProducts()
	if err != nil {
		return nil, err
	}
	return gqlmodels.MapProducts(items), nil
}

// PostsArgs matches the posts query arguments.
type PostsArgs struct {
	Search   *string
	Category *string
	Sort     *string
}

func (r *QueryResolver) Posts(ctx context.Context, args PostsArgs) (*gqlmodels.PostList, error) {
	posts, err := r.repo.ListPosts()
	if err != nil {
		return nil, err
	}
	blogCats, err := r.repo.ListBlogCategories()
	if err != nil {
		return nil, err
	}

	q := catalogService.PostQuery{}
	if args.Search != nil {
		q.Text = *args.Search
	}
	if args.Category != nil {
		q.Category = *args.Category
	}
	if args.Sort != nil {
		q.SortBy = catalogService.PostSort(*args.Sort)
	}

	items := catalogService.FilterPosts(posts, blogCats, q)
	return &gqlmodels.PostList{
		Items:      gqlmodels.MapPosts(items),
		TotalCount: int32(len(items)),
	}, nil
}

// PostArgs matches the post query arguments.
type PostArgs struct {
	Slug string
}

func (r *QueryResolver) Post(ctx context.Context, args PostArgs) (*gqlmodels.Post, error) {
	p, ok := r.repo.PostBySlug(args.Slug)
	if !ok {
		return nil, nil
	}
	return gqlmodels.MapPost(p), nil
}

// RecentPostsArgs matches the recentPosts query arguments (default limit=5).
type RecentPostsArgs struct {
	Limit int32
}

func (r *QueryResolver) RecentPosts(ctx context.Context, args RecentPostsArgs) ([]*gqlmodels.Post, error) {
	posts, err := r.repo.RecentPosts(int(args.Limit))
	if err != nil {
		return nil, err
	}
	return gqlmodels.MapPosts(posts), nil
}

func (r *QueryResolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	cats, err := r.repo.ListCategories()
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, &gqlmodels.Category{ID: gql.ID(c.ID), Name: c.Name})
	}
	return out, nil
}

func (r *QueryResolver) BlogCategories(ctx context.Context) ([]*gqlmodels.BlogCategory, error) {
	cats, err := r.repo.ListBlogCategories()
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.BlogCategory, 0, len(cats))
	for _, c := range cats {
		out = append(out, &gqlmodels.BlogCategory{
			ID: gql.ID(c.ID), Name: c.Name, Slug: c.Slug, Description: c.Description,
		})
	}
	return out, nil
}

func (r *QueryResolver) Plans(ctx context.Context) ([]*gqlmodels.PlanOption, error) {
	// Stable order for UI rendering: basic, pro, enterprise.
	order := []pricing.Plan{pricing.PlanBasic, pricing.PlanPro, pricing.PlanEnterprise}
	table := pricing.Plans()
	out := make([]*gqlmodels.PlanOption, 0, len(order))
	for _, id := range order {
		opt := table[id]
		out = append(out, &gqlmodels.PlanOption{
			ID:          string(id),
			Name:        opt.Name,
			BasePrice:   opt.BasePrice,
			PerUserRate: opt.PerUserRate,
			Popular:     opt.Popular,
		})
	}
	return out, nil
}

// PriceQuoteArgs matches the priceQuote query arguments.
type PriceQuoteArgs struct {
	Config struct {
		Plan         string
		Users        int32
		StorageGb    int32
		Integrations int32
		Support      string
	}
}

func (r *QueryResolver) PriceQuote(ctx context.Context, args PriceQuoteArgs) (*gqlmodels.PricingBreakdown, error) {
	b := pricing.ComputeBreakdown(pricing.Configuration{
		Plan:         pricing.Plan(args.Config.Plan),
		Users:        int(args.Config.Users),
		StorageGB:    int(args.Config.StorageGb),
		Integrations: int(args.Config.Integrations),
		Support:      pricing.SupportTier(args.Config.Support),
	})
	return gqlmodels.MapBreakdown(b), nil
}

// ExtensionArgs for extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
