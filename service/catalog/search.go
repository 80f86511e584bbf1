package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"

	entity "admybrand.GO/model/entity/catalog"
)

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns singleton SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService()
	})
	return searchServiceInstance
}

// SearchService queries the product index in Elasticsearch when one is
// configured. The in-memory FilterProducts pipeline remains the contract
// of record; ES only accelerates the free-text stage for large catalogs.
type SearchService struct {
	client *elasticsearch.Client
	index  string
}

func NewSearchService() *SearchService {
	host := os.Getenv("ELASTICSEARCH_HOST")
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "admybrand_catalog_product"
	}
	if host == "" {
		return &SearchService{index: index}
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &SearchService{index: index}
	}

	return &SearchService{
		client: client,
		index:  index,
	}
}

// Enabled reports whether an ES backend is configured.
func (s *SearchService) Enabled() bool {
	return s.client != nil
}

// SearchIDs returns product ids matching the query, best score first.
func (s *SearchService) SearchIDs(ctx context.Context, query string, size int) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("elasticsearch not configured")
	}
	if size <= 0 {
		size = 50
	}

	body := map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name^3", "tags^2", "description"},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}

// SearchProducts runs the free-text stage through ES and keeps the rest of
// the pipeline in memory. Falls back to FilterProducts when ES is down.
func (s *SearchService) SearchProducts(ctx context.Context, products []entity.Product, categories []entity.Category, q ProductQuery) []entity.Product {
	if q.Text == "" || !s.Enabled() {
		return FilterProducts(products, categories, q)
	}

	ids, err := s.SearchIDs(ctx, q.Text, len(products))
	if err != nil {
		return FilterProducts(products, categories, q)
	}

	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	matched := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			matched = append(matched, p)
		}
	}

	rest := q
	rest.Text = ""
	return FilterProducts(matched, categories, rest)
}
