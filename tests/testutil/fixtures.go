package testutil

import (
	"fmt"
	"time"

	"github.com/spectexnika/listing-api/internal/models"
)

// Fixtures provides factory methods for building listing records
type Fixtures struct {
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures() *Fixtures {
	return &Fixtures{}
}

// RecordOption configures a test record
type RecordOption func(models.Record)

// WithID overrides the generated record id
func WithID(id int) RecordOption {
	return func(r models.Record) { r["id"] = float64(id) }
}

// WithCategory sets the record's category
func WithCategory(id int, title string) RecordOption {
	return func(r models.Record) {
		r["category"] = map[string]any{"id": float64(id), "title": title}
	}
}

// WithCreatedAt sets the record's creation timestamp
func WithCreatedAt(ts time.Time) RecordOption {
	return func(r models.Record) { r["created_at"] = ts.UTC().Format(time.RFC3339) }
}

// WithHotOffer flags the record as a hot offer
func WithHotOffer() RecordOption {
	return func(r models.Record) { r["rank_hot_offer"] = true }
}

// WithPrice gives the record a single price entry
func WithPrice(price float64) RecordOption {
	return func(r models.Record) {
		r["prices"] = []any{map[string]any{"price": price, "currency": "RUB"}}
	}
}

// Product builds a product record with default values
func (f *Fixtures) Product(opts ...RecordOption) models.Record {
	f.counter++
	r := models.Record{
		"id":         float64(f.counter),
		"title":      fmt.Sprintf("Product %d", f.counter),
		"created_at": time.Now().UTC().Format(time.RFC3339),
		"category":   map[string]any{"id": float64(1), "title": "Стройматериалы"},
		"statistics": map[string]any{"viewed": float64(0)},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewsItem builds a news record with default values
func (f *Fixtures) NewsItem(opts ...RecordOption) models.Record {
	f.counter++
	r := models.Record{
		"id":         float64(f.counter),
		"title":      fmt.Sprintf("News %d", f.counter),
		"created_at": time.Now().UTC().Format(time.RFC3339),
		"views":      float64(0),
		"news_tags":  []any{map[string]any{"id": float64(1), "title": "Новости"}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
