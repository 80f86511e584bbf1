package catalog

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	repository "admybrand.GO/model/repository/catalog"
)

func importTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repository.NewRepository(db).Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

const importCSV = `id,name,description,price,original_price,image,category,tags,in_stock,rating,review_count
10,Hero Section Pack,Prebuilt hero sections,49,79,img-10,Templates,React|Tailwind CSS,true,4.5,12
11,Metrics Widget,KPI widget,29,,img-11,Widgets,Analytics,true,4.2,7
,Broken Row,no id,10,,x,Widgets,,true,1,0
`

func TestImportProducts(t *testing.T) {
	db := importTestDB(t)
	res, err := ImportProducts(db, strings.NewReader(importCSV), ImportOptions{BatchSize: 10})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.TotalRows != 3 {
		t.Errorf("TotalRows = %d, want 3", res.TotalRows)
	}
	if res.Imported != 2 {
		t.Errorf("Imported = %d, want 2", res.Imported)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", res.Warnings)
	}

	repo := repository.NewRepository(db)
	p, ok := repo.ProductByID("10")
	if !ok {
		t.Fatal("product 10 not imported")
	}
	if p.OriginalPrice == nil || *p.OriginalPrice != 79 {
		t.Errorf("OriginalPrice = %v, want 79", p.OriginalPrice)
	}
	tags := decodeTags(p.Tags)
	if len(tags) != 2 || tags[0] != "React" {
		t.Errorf("tags = %v, want [React Tailwind CSS]", tags)
	}

	p11, ok := repo.ProductByID("11")
	if !ok {
		t.Fatal("product 11 not imported")
	}
	if p11.OriginalPrice != nil {
		t.Errorf("empty original_price decoded to %v, want nil", *p11.OriginalPrice)
	}
}

func TestImportProducts_UpsertOverwrites(t *testing.T) {
	db := importTestDB(t)
	if _, err := ImportProducts(db, strings.NewReader(importCSV), ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	updated := `id,name,description,price,original_price,image,category,tags,in_stock,rating,review_count
10,Hero Section Pack v2,Updated,59,,img-10,Templates,React,true,4.6,14
`
	if _, err := ImportProducts(db, strings.NewReader(updated), ImportOptions{}); err != nil {
		t.Fatalf("second import: %v", err)
	}
	p, ok := repository.NewRepository(db).ProductByID("10")
	if !ok {
		t.Fatal("product 10 missing after upsert")
	}
	if p.Name != "Hero Section Pack v2" || p.Price != 59 {
		t.Errorf("upsert did not overwrite: %+v", p)
	}
}
