package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, raw string) Record {
	t.Helper()
	var r Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	return r
}

func TestRecord_BasicAccessors(t *testing.T) {
	r := decodeRecord(t, `{
		"id": 10812,
		"title": "Komatsu FG10-15",
		"category": {"id": 2, "title": "Спецтехника"},
		"is_active": true
	}`)

	assert.Equal(t, 10812, r.ID())
	assert.Equal(t, "Komatsu FG10-15", r.Title())
	assert.Equal(t, 2, r.CategoryID())
	assert.Equal(t, "Спецтехника", r.CategoryTitle())
	assert.True(t, r.Flag("is_active"))
	assert.False(t, r.Flag("missing"))
}

func TestRecord_MissingFieldsAreZero(t *testing.T) {
	r := Record{}

	assert.Equal(t, 0, r.ID())
	assert.Equal(t, "", r.Title())
	assert.Equal(t, 0, r.CategoryID())
	assert.Equal(t, 0, r.Viewed())
	assert.Equal(t, 0, r.Views())
	assert.Nil(t, r.LikedBy())
	assert.Equal(t, float64(0), r.FirstPrice())
}

func TestRecord_CreatedAt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `{"created_at": "2024-03-01T10:00:00Z"}`, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"date only", `{"created_at": "2024-03-01"}`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"space separated", `{"created_at": "2024-03-01 10:30:00"}`, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"unparseable falls to epoch", `{"created_at": "yesterday"}`, time.Unix(0, 0).UTC()},
		{"absent falls to epoch", `{}`, time.Unix(0, 0).UTC()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := decodeRecord(t, tt.raw)
			assert.True(t, r.CreatedAt().Equal(tt.want), "got %v want %v", r.CreatedAt(), tt.want)
		})
	}
}

func TestRecord_BumpViewedCreatesStatistics(t *testing.T) {
	r := Record{}

	assert.Equal(t, 1, r.BumpViewed())
	assert.Equal(t, 2, r.BumpViewed())
	assert.Equal(t, 2, r.Viewed())

	// The counter lands where the source documents keep it.
	stats, ok := r["statistics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, stats["viewed"])
}

func TestRecord_BumpViews(t *testing.T) {
	r := decodeRecord(t, `{"views": 41}`)

	assert.Equal(t, 42, r.BumpViews())
	assert.Equal(t, 42, r.Views())
}

func TestRecord_LikedByRoundTrip(t *testing.T) {
	r := decodeRecord(t, `{"likedBy": ["u1", "u2"]}`)

	assert.Equal(t, []string{"u1", "u2"}, r.LikedBy())

	r.SetLikedBy([]string{"u2"})
	assert.Equal(t, []string{"u2"}, r.LikedBy())

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"likedBy": ["u2"]}`, string(raw))
}

func TestRecord_FirstPrice(t *testing.T) {
	r := decodeRecord(t, `{"prices": [{"price": 1500.5, "currency": "RUB"}, {"price": 9000}]}`)

	assert.Equal(t, 1500.5, r.FirstPrice())

	assert.Equal(t, float64(0), decodeRecord(t, `{"prices": []}`).FirstPrice())
	assert.Equal(t, float64(0), decodeRecord(t, `{"prices": "n/a"}`).FirstPrice())
}

func TestRecord_Tags(t *testing.T) {
	r := decodeRecord(t, `{"news_tags": [{"id": 1, "title": "Аренда"}, {"id": 4, "title": "Новости"}]}`)

	assert.True(t, r.HasTag(4))
	assert.False(t, r.HasTag(9))
	assert.Equal(t, []string{"Аренда", "Новости"}, r.TagTitles())

	none := Record{}
	assert.False(t, none.HasTag(1))
	assert.Nil(t, none.TagTitles())
}

func TestRecord_UnknownFieldsRoundTrip(t *testing.T) {
	raw := `{"id": 5, "custom": {"deeply": ["nested", 1]}, "extra": null}`
	r := decodeRecord(t, raw)

	r.BumpViews()

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 5, "custom": {"deeply": ["nested", 1]}, "extra": null, "views": 1}`, string(out))
}
