// Package listquery implements the list pipeline shared by every
// listing endpoint: category filter, free-text search, sort, paginate.
// Entities differ only in the Accessors table they pass in.
package listquery

import (
	"sort"
	"strings"

	"github.com/spectexnika/listing-api/internal/models"
)

// Spec carries the parsed query parameters of one list request.
type Spec struct {
	Limit     int
	Offset    int
	Category  int
	Search    string
	SortBy    string
	SortOrder string // "asc" or "desc"; anything else sorts descending
}

// Accessors maps an entity's fields into the pipeline.
type Accessors struct {
	// SortKeys maps sortBy values to key extractors.
	SortKeys map[string]KeyFunc
	// DefaultSort names the SortKeys entry used for unrecognized
	// sortBy values. An empty sortBy skips sorting entirely.
	DefaultSort string
	// SearchText returns every string a free-text search matches against.
	SearchText func(models.Record) []string
	// MatchCategory reports whether a record belongs to a category id.
	MatchCategory func(models.Record, int) bool
}

// KeyFunc extracts a sort key from a record.
type KeyFunc func(models.Record) Key

// Result is a page of records plus the filtered total and the spec that
// produced it.
type Result struct {
	Total int
	Items []models.Record
	Spec  Spec
}

// Run applies the pipeline in fixed order. Each stage is a no-op when
// its spec field is zero-valued. The input slice is never reordered.
func Run(records []models.Record, spec Spec, acc Accessors) Result {
	filtered := make([]models.Record, 0, len(records))
	filtered = append(filtered, records...)

	if spec.Category > 0 && acc.MatchCategory != nil {
		kept := filtered[:0]
		for _, r := range filtered {
			if acc.MatchCategory(r, spec.Category) {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}

	if q := strings.ToLower(strings.TrimSpace(spec.Search)); q != "" && acc.SearchText != nil {
		kept := filtered[:0]
		for _, r := range filtered {
			for _, field := range acc.SearchText(r) {
				if strings.Contains(strings.ToLower(field), q) {
					kept = append(kept, r)
					break
				}
			}
		}
		filtered = kept
	}

	if spec.SortBy != "" {
		if keyOf := acc.sortKey(spec.SortBy); keyOf != nil {
			asc := spec.SortOrder == "asc"
			sort.SliceStable(filtered, func(i, j int) bool {
				cmp := keyOf(filtered[i]).Compare(keyOf(filtered[j]))
				if asc {
					return cmp < 0
				}
				return cmp > 0
			})
		}
	}

	total := len(filtered)
	return Result{Total: total, Items: page(filtered, spec.Offset, spec.Limit), Spec: spec}
}

func (acc Accessors) sortKey(sortBy string) KeyFunc {
	if fn, ok := acc.SortKeys[sortBy]; ok {
		return fn
	}
	return acc.SortKeys[acc.DefaultSort]
}

// page slices [offset, offset+limit). Out-of-range bounds yield an empty
// page, never an error; a negative offset reads from the start and a
// non-positive limit reads to the end.
func page(records []models.Record, offset, limit int) []models.Record {
	start := offset
	if start < 0 {
		start = 0
	}
	if start > len(records) {
		start = len(records)
	}
	end := len(records)
	if limit > 0 {
		end = start + limit
		if end > len(records) {
			end = len(records)
		}
	}
	return records[start:end]
}
