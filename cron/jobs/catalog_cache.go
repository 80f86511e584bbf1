package jobs

import (
	"log"
	"sync"

	"gorm.io/gorm"

	"admybrand.GO/core/cache"
	repository "admybrand.GO/model/repository/catalog"
)

const warmTTL = 300 // seconds

var (
	dbMu       sync.Mutex
	dbProvider func() (*gorm.DB, error)
)

// SetDBProvider wires the database used by catalog jobs. Called once at startup.
func SetDBProvider(f func() (*gorm.DB, error)) {
	dbMu.Lock()
	defer dbMu.Unlock()
	dbProvider = f
}

// CatalogCacheJob refreshes the featured and discounted product caches so
// the first storefront request after a deploy doesn't pay the query cost.
func CatalogCacheJob(args ...string) {
	dbMu.Lock()
	provider := dbProvider
	dbMu.Unlock()
	if provider == nil {
		log.Println("catalogcache: no database configured, skipping")
		return
	}
	db, err := provider()
	if err != nil {
		log.Printf("catalogcache: database unavailable: %v", err)
		return
	}

	repo := repository.NewRepository(db)
	c := cache.GetInstance()

	featured, err := repo.FeaturedProducts()
	if err != nil {
		log.Printf("catalogcache: featured query failed: %v", err)
	} else {
		c.SetN([]interface{}{"catalog", "featured"}, featured, warmTTL, []string{"catalog"})
	}

	discounted, err := repo.DiscountedProducts()
	if err != nil {
		log.Printf("catalogcache: discounted query failed: %v", err)
	} else {
		c.SetN([]interface{}{"catalog", "discounted"}, discounted, warmTTL, []string{"catalog"})
	}

	log.Printf("catalogcache: warmed featured=%d discounted=%d", len(featured), len(discounted))
}
