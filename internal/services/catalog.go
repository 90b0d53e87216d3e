package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spectexnika/listing-api/internal/listquery"
	"github.com/spectexnika/listing-api/internal/models"
	"github.com/spectexnika/listing-api/internal/store"
)

// CatalogService serves listing reads and the two mutations (view
// increments, like toggles) over a RecordStore. Mutations are
// read-modify-write over the whole collection, so they are serialized
// through a per-collection mutex; two concurrent increments can no
// longer lose an update.
type CatalogService struct {
	store store.RecordStore
	locks map[string]*sync.Mutex
}

func NewCatalogService(st store.RecordStore) *CatalogService {
	return &CatalogService{
		store: st,
		locks: map[string]*sync.Mutex{
			store.Products:  {},
			store.Equipment: {},
			store.News:      {},
		},
	}
}

// load fetches an entity's collection, applying the entity-specific
// fallbacks: missing news is an empty collection, missing equipment is
// derived from the products collection. derived reports the latter so
// writes can be merged back into products.
func (s *CatalogService) load(ctx context.Context, e Entity) (col *models.Collection, derived bool, err error) {
	col, err = s.store.Load(ctx, e.Collection)
	if err == nil {
		return col, false, nil
	}
	if !errors.Is(err, store.ErrMissing) {
		return nil, false, fmt.Errorf("loading %s: %w", e.Collection, err)
	}

	switch e.Collection {
	case store.News:
		return models.NewCollection(nil), false, nil
	case store.Equipment:
		products, err := s.store.Load(ctx, store.Products)
		if err != nil {
			return nil, false, fmt.Errorf("deriving equipment from products: %w", err)
		}
		return deriveEquipment(products), true, nil
	}
	return nil, false, fmt.Errorf("loading %s: %w", e.Collection, err)
}

// Equipment category title fragments and title keywords used when no
// dedicated equipment collection exists. The dataset is Russian-language,
// hence the Cyrillic matches.
var (
	equipmentCategoryHints = []string{"спецтехник", "аренда", "equipment"}
	equipmentTitleHints    = []string{"экскават", "погрузчик", "бульдозер", "кран"}
	equipmentCategoryID    = 2
)

func deriveEquipment(products *models.Collection) *models.Collection {
	var records []models.Record
	for _, r := range products.Records {
		if isEquipment(r) {
			records = append(records, r)
		}
	}
	return models.NewCollection(records)
}

func isEquipment(r models.Record) bool {
	if _, ok := r["category"]; ok {
		if r.CategoryID() == equipmentCategoryID {
			return true
		}
		title := strings.ToLower(r.CategoryTitle())
		for _, hint := range equipmentCategoryHints {
			if strings.Contains(title, hint) {
				return true
			}
		}
		return false
	}
	title := strings.ToLower(r.Title())
	for _, hint := range equipmentTitleHints {
		if strings.Contains(title, hint) {
			return true
		}
	}
	return false
}

// List runs the filter/search/sort/paginate pipeline for one entity.
func (s *CatalogService) List(ctx context.Context, e Entity, spec listquery.Spec) (listquery.Result, error) {
	col, _, err := s.load(ctx, e)
	if err != nil {
		return listquery.Result{}, err
	}
	return listquery.Run(col.Records, spec, e.Accessors), nil
}

// Get returns a single record by id.
func (s *CatalogService) Get(ctx context.Context, e Entity, id int) (models.Record, error) {
	col, _, err := s.load(ctx, e)
	if err != nil {
		return nil, err
	}
	r, ok := col.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// IncrementView adds one view to a record and persists the collection,
// returning the new count. The counter starts at zero when absent.
func (s *CatalogService) IncrementView(ctx context.Context, e Entity, id int) (int, error) {
	views := 0
	err := s.withRecord(ctx, e, id, func(r models.Record) {
		views = e.BumpViews(r)
	})
	if err != nil {
		return 0, err
	}
	return views, nil
}

// ToggleLike flips the user's membership in the record's like set and
// returns the resulting state (true = now liked).
func (s *CatalogService) ToggleLike(ctx context.Context, e Entity, id int, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, ErrUserIDRequired
	}

	liked := false
	err := s.withRecord(ctx, e, id, func(r models.Record) {
		likedBy := r.LikedBy()
		kept := likedBy[:0]
		for _, u := range likedBy {
			if u != userID {
				kept = append(kept, u)
			}
		}
		if len(kept) == len(likedBy) {
			kept = append(kept, userID)
			liked = true
		}
		r.SetLikedBy(kept)
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// withRecord loads the entity's collection, applies fn to the record
// with the given id and persists the result, all under the collection's
// write lock.
func (s *CatalogService) withRecord(ctx context.Context, e Entity, id int, fn func(models.Record)) error {
	mu := s.locks[e.Collection]
	mu.Lock()
	defer mu.Unlock()

	col, derived, err := s.load(ctx, e)
	if err != nil {
		return err
	}
	r, ok := col.Find(id)
	if !ok {
		return ErrNotFound
	}

	fn(r)

	if derived {
		return s.mergeIntoProducts(ctx, col)
	}
	return s.store.Save(ctx, e.Collection, col)
}

// mergeIntoProducts writes back equipment records that live inside the
// products collection (no dedicated equipment file).
func (s *CatalogService) mergeIntoProducts(ctx context.Context, equipment *models.Collection) error {
	mu := s.locks[store.Products]
	mu.Lock()
	defer mu.Unlock()

	products, err := s.store.Load(ctx, store.Products)
	if err != nil {
		return fmt.Errorf("loading products for equipment merge: %w", err)
	}
	for _, eq := range equipment.Records {
		for i, p := range products.Records {
			if p.ID() == eq.ID() {
				products.Records[i] = eq
				break
			}
		}
	}
	return s.store.Save(ctx, store.Products, products)
}

// HotOffers returns the hot-offer products (falling back to premium
// ones when none are flagged), capped for the landing page.
func (s *CatalogService) HotOffers(ctx context.Context) ([]models.Record, error) {
	offers, err := s.hotOffers(ctx)
	if err != nil {
		return nil, err
	}
	if len(offers) > hotOffersCap {
		offers = offers[:hotOffersCap]
	}
	return offers, nil
}

// HotOffersPage returns a newest-first page of hot-offer products.
func (s *CatalogService) HotOffersPage(ctx context.Context, spec listquery.Spec) (listquery.Result, error) {
	offers, err := s.hotOffers(ctx)
	if err != nil {
		return listquery.Result{}, err
	}
	spec.SortBy = "date"
	spec.SortOrder = "desc"
	return listquery.Run(offers, spec, Products.Accessors), nil
}

func (s *CatalogService) hotOffers(ctx context.Context) ([]models.Record, error) {
	col, err := s.store.Load(ctx, store.Products)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}

	var offers []models.Record
	for _, r := range col.Records {
		if r.Flag("rank_hot_offer") {
			offers = append(offers, r)
		}
	}
	if len(offers) == 0 {
		for _, r := range col.Records {
			if r.Flag("rank_premium") {
				offers = append(offers, r)
			}
		}
	}
	return offers, nil
}
