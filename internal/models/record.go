package models

import (
	"time"
)

// Record is a single listing entity (product, equipment or news item).
// Collections come from loosely structured JSON, so a record keeps every
// field it was loaded with and exposes typed accessors for the ones the
// API actually reads or mutates. Unknown fields round-trip untouched.
type Record map[string]any

// ID returns the record id, or 0 when absent.
func (r Record) ID() int {
	return toInt(r["id"])
}

// Str returns a nested string field, walking object keys in order.
// Missing or non-string values yield "".
func (r Record) Str(keys ...string) string {
	var cur any = map[string]any(r)
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = obj[key]
	}
	s, _ := cur.(string)
	return s
}

// Flag returns a boolean field, false when absent or not a bool.
func (r Record) Flag(key string) bool {
	b, _ := r[key].(bool)
	return b
}

func (r Record) Title() string { return r.Str("title") }

// CategoryID returns category.id, or 0 when the record has no category.
func (r Record) CategoryID() int {
	cat, ok := r["category"].(map[string]any)
	if !ok {
		return 0
	}
	return toInt(cat["id"])
}

func (r Record) CategoryTitle() string { return r.Str("category", "title") }

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedAt parses the created_at field. Absent or unparseable values
// resolve to the Unix epoch so date sorting treats them as oldest.
func (r Record) CreatedAt() time.Time {
	s, _ := r["created_at"].(string)
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// Viewed returns statistics.viewed, 0 when absent.
func (r Record) Viewed() int {
	stats, ok := r["statistics"].(map[string]any)
	if !ok {
		return 0
	}
	return toInt(stats["viewed"])
}

// BumpViewed increments statistics.viewed, creating the statistics
// object on first use, and returns the new count.
func (r Record) BumpViewed() int {
	stats, ok := r["statistics"].(map[string]any)
	if !ok {
		stats = map[string]any{}
		r["statistics"] = stats
	}
	n := toInt(stats["viewed"]) + 1
	stats["viewed"] = n
	return n
}

// Views returns the news view counter, 0 when absent.
func (r Record) Views() int {
	return toInt(r["views"])
}

// BumpViews increments the news view counter and returns the new count.
func (r Record) BumpViews() int {
	n := r.Views() + 1
	r["views"] = n
	return n
}

// LikedBy returns the set of user ids that liked the record.
func (r Record) LikedBy() []string {
	raw, ok := r["likedBy"].([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids
}

// SetLikedBy replaces the like set.
func (r Record) SetLikedBy(ids []string) {
	list := make([]any, len(ids))
	for i, id := range ids {
		list[i] = id
	}
	r["likedBy"] = list
}

// FirstPrice returns prices[0].price, 0 when the record has no prices.
func (r Record) FirstPrice() float64 {
	prices, ok := r["prices"].([]any)
	if !ok || len(prices) == 0 {
		return 0
	}
	entry, ok := prices[0].(map[string]any)
	if !ok {
		return 0
	}
	return toFloat(entry["price"])
}

// HasTag reports whether news_tags contains a tag with the given id.
func (r Record) HasTag(id int) bool {
	tags, ok := r["news_tags"].([]any)
	if !ok {
		return false
	}
	for _, t := range tags {
		tag, ok := t.(map[string]any)
		if ok && toInt(tag["id"]) == id {
			return true
		}
	}
	return false
}

// TagTitles returns the titles of all news_tags entries.
func (r Record) TagTitles() []string {
	tags, ok := r["news_tags"].([]any)
	if !ok {
		return nil
	}
	titles := make([]string, 0, len(tags))
	for _, t := range tags {
		if tag, ok := t.(map[string]any); ok {
			if title, ok := tag["title"].(string); ok {
				titles = append(titles, title)
			}
		}
	}
	return titles
}

// JSON numbers decode as float64; older fixtures occasionally carry ints.
func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
