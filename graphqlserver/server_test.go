package graphqlserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	repository "admybrand.GO/model/repository/catalog"
)

func testSchemaHandler(t *testing.T) http.Handler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := repository.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := repo.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	schema, err := NewSchema(db)
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return Handler(schema)
}

func runQuery(t *testing.T, query string) (map[string]interface{}, []struct{ Message string }) {
	t.Helper()
	h := testSchemaHandler(t)

	body, _ := json.Marshal(map[string]interface{}{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data   map[string]interface{}
		Errors []struct{ Message string }
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Data, resp.Errors
}

func TestQuery_Products(t *testing.T) {
	data, errs := runQuery(t, `{ products { items { id name price discountPercent } totalCount } }`)
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	products := data["products"].(map[string]interface{})
	if int(products["totalCount"].(float64)) != 3 {
		t.Errorf("totalCount = %v, want 3", products["totalCount"])
	}
	items := products["items"].([]interface{})
	for _, raw := range items {
		item := raw.(map[string]interface{})
		if item["id"] == "1" && item["discountPercent"].(float64) != 34 {
			t.Errorf("product 1 discountPercent = %v, want 34", item["discountPercent"])
		}
	}
}

func TestQuery_ProductsFiltered(t *testing.T) {
	data, errs := runQuery(t, `{ products(search: "dashboard", sort: "price") { items { name } totalCount } }`)
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	products := data["products"].(map[string]interface{})
	if int(products["totalCount"].(float64)) != 1 {
		t.Errorf("totalCount = %v, want 1", products["totalCount"])
	}
}

func TestQuery_ProductMissingIsNull(t *testing.T) {
	data, errs := runQuery(t, `{ product(id: "999") { id } }`)
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	if data["product"] != nil {
		t.Errorf("product = %v, want null", data["product"])
	}
}

func TestQuery_PostsAndRecent(t *testing.T) {
	data, errs := runQuery(t, `{ posts(category: "development") { totalCount } recentPosts(limit: 2) { id } }`)
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	posts := data["posts"].(map[string]interface{})
	if int(posts["totalCount"].(float64)) != 2 {
		t.Errorf("posts totalCount = %v, want 2", posts["totalCount"])
	}
	recent := data["recentPosts"].([]interface{})
	if len(recent) != 2 {
		t.Fatalf("recentPosts = %d, want 2", len(recent))
	}
	if recent[0].(map[string]interface{})["id"] != "1" {
		t.Errorf("first recent = %v, want 1", recent[0])
	}
}

func TestQuery_PlansOrdered(t *testing.T) {
	data, errs := runQuery(t, `{ plans { id basePrice popular } }`)
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	plans := data["plans"].([]interface{})
	if len(plans) != 3 {
		t.Fatalf("plans = %d, want 3", len(plans))
	}
	first := plans[0].(map[string]interface{})
	if first["id"] != "basic" || first["basePrice"].(float64) != 29 {
		t.Errorf("first plan = %v, want basic/29", first)
	}
	second := plans[1].(map[string]interface{})
	if second["popular"] != true {
		t.Errorf("pro should be popular")
	}
}

func TestQuery_PriceQuote(t *testing.T) {
	data, errs := runQuery(t, `{
		priceQuote(config: {plan: "enterprise", users: 10, storageGb: 0, integrations: 0, support: "dedicated"}) {
			basePrice userCost supportCost total
		}
	}`)
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	q := data["priceQuote"].(map[string]interface{})
	// 199 base + 5 extra users * 15 + 100 dedicated
	if q["total"].(float64) != 374 {
		t.Errorf("total = %v, want 374", q["total"])
	}
	if q["userCost"].(float64) != 75 {
		t.Errorf("userCost = %v, want 75", q["userCost"])
	}
}

func TestQuery_Categories(t *testing.T) {
	data, errs := runQuery(t, `{ categories { id name } blogCategories { slug } }`)
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	if cats := data["categories"].([]interface{}); len(cats) != 3 {
		t.Errorf("categories = %d, want 3", len(cats))
	}
	if blogCats := data["blogCategories"].([]interface{}); len(blogCats) != 4 {
		t.Errorf("blogCategories = %d, want 4", len(blogCats))
	}
}
