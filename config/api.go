package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public storefront paths (catalog, pricing, forms, theme are read/write
	// by anonymous visitors; only admin endpoints keep auth)
	return []string{
		"/api/catalog/products",
		"/api/catalog/products/:id",
		"/api/catalog/products/featured",
		"/api/catalog/products/discounted",
		"/api/catalog/posts",
		"/api/catalog/posts/:slug",
		"/api/catalog/posts/recent",
		"/api/catalog/categories",
		"/api/pricing/quote",
		"/api/pricing/plans",
		"/api/cart",
		"/api/cart/items",
		"/api/cart/items/:id",
		"/api/theme",
		"/api/theme/cycle",
		"/api/theme/resync",
		"/api/contact",
		"/api/newsletter",
		"/graphql",
	}
}
