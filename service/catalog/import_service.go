package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	entity "admybrand.GO/model/entity/catalog"
	repository "admybrand.GO/model/repository/catalog"
)

// ImportOptions configures a catalog import run.
type ImportOptions struct {
	BatchSize int
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows   int
	Imported    int
	Skipped     int
	Warnings    []string
	ProcessTime time.Duration
	DBTime      time.Duration
	TotalTime   time.Duration
}

// importRow mirrors the CSV header. tags is a pipe-separated list.
type importRow struct {
	ID            string   `mapstructure:"id"`
	Name          string   `mapstructure:"name"`
	Description   string   `mapstructure:"description"`
	Price         float64  `mapstructure:"price"`
	OriginalPrice *float64 `mapstructure:"original_price"`
	Image         string   `mapstructure:"image"`
	Category      string   `mapstructure:"category"`
	Tags          string   `mapstructure:"tags"`
	InStock       bool     `mapstructure:"in_stock"`
	Rating        float64  `mapstructure:"rating"`
	ReviewCount   int      `mapstructure:"review_count"`
}

func decodeRow(m map[string]interface{}) (*importRow, error) {
	var row importRow
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &row,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, err
	}
	return &row, nil
}

func encodeTags(raw string) datatypes.JSON {
	parts := []string{}
	for _, p := range strings.Split(raw, "|") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	b, _ := json.Marshal(parts)
	return datatypes.JSON(b)
}

// ImportProducts reads products from CSV and upserts them in batches.
// Rows missing id or name are skipped with a warning, never fatal.
func ImportProducts(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	res := &ImportResult{}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var products []entity.Product
	processStart := time.Now()
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: %v", line, err))
			res.Skipped++
			continue
		}
		res.TotalRows++

		m := make(map[string]interface{}, len(header))
		for i, col := range header {
			if i < len(record) {
				m[col] = record[i]
			}
		}
		// Empty optional cells must not decode to zero values.
		if v, ok := m["original_price"]; ok && v == "" {
			delete(m, "original_price")
		}

		row, err := decodeRow(m)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: %v", line, err))
			res.Skipped++
			continue
		}
		if row.ID == "" || row.Name == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: missing id or name", line))
			res.Skipped++
			continue
		}

		products = append(products, entity.Product{
			ID:            row.ID,
			Name:          row.Name,
			Description:   row.Description,
			Price:         row.Price,
			OriginalPrice: row.OriginalPrice,
			Image:         row.Image,
			Category:      row.Category,
			Tags:          encodeTags(row.Tags),
			InStock:       row.InStock,
			Rating:        row.Rating,
			ReviewCount:   row.ReviewCount,
		})
	}
	res.ProcessTime = time.Since(processStart)

	dbStart := time.Now()
	repo := repository.NewRepository(db)
	if err := repo.UpsertProducts(products, opts.BatchSize); err != nil {
		return nil, fmt.Errorf("upsert products: %w", err)
	}
	res.DBTime = time.Since(dbStart)
	res.Imported = len(products)
	res.TotalTime = time.Since(start)
	return res, nil
}
