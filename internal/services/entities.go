package services

import (
	"github.com/spectexnika/listing-api/internal/listquery"
	"github.com/spectexnika/listing-api/internal/models"
	"github.com/spectexnika/listing-api/internal/store"
)

// Entity binds a collection name to its query accessors and defaults.
// The view counter diverges between entities: news tracks a top-level
// "views" field while products and equipment use statistics.viewed; both
// are kept as-is rather than unified.
type Entity struct {
	Collection   string
	DefaultLimit int
	Accessors    listquery.Accessors

	newsViews bool
}

// CurrentViews returns the record's view count under this entity's counter.
func (e Entity) CurrentViews(r models.Record) int {
	if e.newsViews {
		return r.Views()
	}
	return r.Viewed()
}

// BumpViews increments the record's view count and returns the new value.
func (e Entity) BumpViews(r models.Record) int {
	if e.newsViews {
		return r.BumpViews()
	}
	return r.BumpViewed()
}

func productSearchText(r models.Record) []string {
	return []string{
		r.Title(),
		r.Str("sub_title"),
		r.Str("description"),
		r.CategoryTitle(),
	}
}

func matchCategoryID(r models.Record, id int) bool {
	return r.CategoryID() == id
}

var Products = Entity{
	Collection:   store.Products,
	DefaultLimit: 20,
	Accessors: listquery.Accessors{
		SortKeys: map[string]listquery.KeyFunc{
			"date":  func(r models.Record) listquery.Key { return listquery.TimeKey(r.CreatedAt()) },
			"title": func(r models.Record) listquery.Key { return listquery.TextKey(r.Title()) },
			"views": func(r models.Record) listquery.Key { return listquery.NumKey(float64(r.Viewed())) },
		},
		DefaultSort:   "date",
		SearchText:    productSearchText,
		MatchCategory: matchCategoryID,
	},
}

var Equipment = Entity{
	Collection:   store.Equipment,
	DefaultLimit: 20,
	Accessors: listquery.Accessors{
		SortKeys: map[string]listquery.KeyFunc{
			"date":  func(r models.Record) listquery.Key { return listquery.TimeKey(r.CreatedAt()) },
			"price": func(r models.Record) listquery.Key { return listquery.NumKey(r.FirstPrice()) },
			"title": func(r models.Record) listquery.Key { return listquery.TextKey(r.Title()) },
			"views": func(r models.Record) listquery.Key { return listquery.NumKey(float64(r.Viewed())) },
		},
		DefaultSort:   "date",
		SearchText:    productSearchText,
		MatchCategory: matchCategoryID,
	},
}

var News = Entity{
	Collection:   store.News,
	DefaultLimit: 10,
	newsViews:    true,
	Accessors: listquery.Accessors{
		SortKeys: map[string]listquery.KeyFunc{
			"date":  func(r models.Record) listquery.Key { return listquery.TimeKey(r.CreatedAt()) },
			"views": func(r models.Record) listquery.Key { return listquery.NumKey(float64(r.Views())) },
			"title": func(r models.Record) listquery.Key { return listquery.TextKey(r.Title()) },
		},
		DefaultSort: "date",
		SearchText: func(r models.Record) []string {
			fields := []string{r.Title(), r.Str("short_description")}
			return append(fields, r.TagTitles()...)
		},
		MatchCategory: func(r models.Record, id int) bool { return r.HasTag(id) },
	},
}

// HotOffersDefaultLimit is the page size of the hot-offers listing.
const HotOffersDefaultLimit = 14

// hotOffersCap bounds the unpaginated hot-offers response.
const hotOffersCap = 24
