package listings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ivankudzin/roomshare/backend/internal/domain/compatibility"
	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
	pgrepo "github.com/ivankudzin/roomshare/backend/internal/repo/postgres"
)

type seekerStoreStub struct {
	seekers map[uuid.UUID]model.Seeker
}

func (s *seekerStoreStub) GetSeeker(_ context.Context, id uuid.UUID) (model.Seeker, error) {
	seeker, ok := s.seekers[id]
	if !ok {
		return model.Seeker{}, pgrepo.ErrSeekerNotFound
	}
	return seeker, nil
}

type catalogStoreStub struct {
	items     []model.Accommodation
	listCalls int
}

func (s *catalogStoreStub) ListVerified(context.Context) ([]model.Accommodation, error) {
	s.listCalls++
	out := make([]model.Accommodation, 0, len(s.items))
	for _, item := range s.items {
		if item.Status == enums.ListingStatusVerified {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *catalogStoreStub) GetVerified(_ context.Context, id uuid.UUID) (model.Accommodation, error) {
	for _, item := range s.items {
		if item.ID == id && item.Status == enums.ListingStatusVerified {
			return item, nil
		}
	}
	return model.Accommodation{}, pgrepo.ErrAccommodationNotFound
}

func (s *catalogStoreStub) SetStatus(_ context.Context, id uuid.UUID, status enums.ListingStatus) (model.Accommodation, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			return s.items[i], nil
		}
	}
	return model.Accommodation{}, pgrepo.ErrAccommodationNotFound
}

type roommateStoreStub struct {
	records []pgrepo.RoommateRecord
}

func (s *roommateStoreStub) ListCurrent(_ context.Context, ids []uuid.UUID, _ time.Time) ([]pgrepo.RoommateRecord, error) {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]pgrepo.RoommateRecord, 0, len(s.records))
	for _, record := range s.records {
		if _, ok := wanted[record.Booking.AccommodationID]; ok {
			out = append(out, record)
		}
	}
	return out, nil
}

type catalogCacheStub struct {
	items       []model.Accommodation
	cached      bool
	getErr      error
	setCalls    int
	invalidated bool
}

func (s *catalogCacheStub) GetVerifiedCatalog(context.Context) ([]model.Accommodation, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	return s.items, s.cached, nil
}

func (s *catalogCacheStub) SetVerifiedCatalog(_ context.Context, items []model.Accommodation, _ time.Duration) error {
	s.setCalls++
	s.items = items
	s.cached = true
	return nil
}

func (s *catalogCacheStub) InvalidateVerifiedCatalog(context.Context) error {
	s.invalidated = true
	s.items = nil
	s.cached = false
	return nil
}

type signerStub struct{}

func (signerStub) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://cdn.test/" + key + "?sig=1", nil
}

type fixture struct {
	seeker    model.Seeker
	quiet     model.Accommodation
	open      model.Accommodation
	menOnly   model.Accommodation
	catalog   *catalogStoreStub
	cache     *catalogCacheStub
	roommates *roommateStoreStub
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &fixture{
		seeker: model.Seeker{
			ID:     uuid.New(),
			Name:   "Meera",
			Gender: enums.GenderFemale,
			Preferences: &model.Preferences{
				NoiseTolerance: enums.NoiseLively,
				FoodPreference: enums.FoodVegetarian,
			},
		},
		quiet: model.Accommodation{
			ID:         uuid.New(),
			Name:       "Quiet Nest",
			Images:     []string{"rooms/quiet/cover.jpg"},
			Status:     enums.ListingStatusVerified,
			HouseRules: &model.HouseRules{GenderAllowed: enums.GenderAny, NoisePolicy: enums.NoisePolicyQuietZone},
		},
		menOnly: model.Accommodation{
			ID:         uuid.New(),
			Name:       "Lads Lodge",
			Status:     enums.ListingStatusVerified,
			HouseRules: &model.HouseRules{GenderAllowed: enums.GenderMaleOnly},
		},
		open: model.Accommodation{
			ID:     uuid.New(),
			Name:   "Open House",
			Images: []string{"https://images.test/open.jpg"},
			Status: enums.ListingStatusVerified,
		},
	}

	roommate := model.Seeker{
		ID:          uuid.New(),
		Name:        "Asha",
		Gender:      enums.GenderFemale,
		Preferences: &model.Preferences{FoodPreference: enums.FoodVegetarian},
	}
	leaver := model.Seeker{ID: uuid.New(), Name: "Ravi", Gender: enums.GenderMale}
	lodger := model.Seeker{ID: uuid.New(), Name: "Kabir", Gender: enums.GenderMale, Preferences: &model.Preferences{FoodPreference: enums.FoodVegetarian}}

	confirmed := func(seeker model.Seeker, accommodationID uuid.UUID) pgrepo.RoommateRecord {
		return pgrepo.RoommateRecord{
			Booking: model.Booking{
				ID:              uuid.New(),
				SeekerID:        seeker.ID,
				AccommodationID: accommodationID,
				CheckOut:        now.Add(30 * 24 * time.Hour),
				Status:          enums.BookingStatusConfirmed,
			},
			Seeker: seeker,
		}
	}
	cancelled := confirmed(leaver, f.quiet.ID)
	cancelled.Booking.Status = enums.BookingStatusCancelled

	f.catalog = &catalogStoreStub{items: []model.Accommodation{f.quiet, f.menOnly, f.open}}
	f.cache = &catalogCacheStub{}
	f.roommates = &roommateStoreStub{records: []pgrepo.RoommateRecord{
		confirmed(roommate, f.open.ID),
		confirmed(f.seeker, f.open.ID),
		cancelled,
		confirmed(lodger, f.menOnly.ID),
	}}

	f.svc = NewService(Dependencies{
		Seekers:   &seekerStoreStub{seekers: map[uuid.UUID]model.Seeker{f.seeker.ID: f.seeker}},
		Catalog:   f.catalog,
		Statuses:  f.catalog,
		Roommates: f.roommates,
		Cache:     f.cache,
		Images:    signerStub{},
	}, Config{CatalogCacheTTL: time.Minute, Concurrency: 2})
	f.svc.now = func() time.Time { return now }
	return f
}

func TestRankedDropsFilteredAndSortsByScore(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.Ranked(context.Background(), f.seeker.ID)
	if err != nil {
		t.Fatalf("Ranked returned error: %v", err)
	}
	if !got.Scored {
		t.Fatalf("expected scored result")
	}
	if len(got.Items) != 2 {
		t.Fatalf("unexpected items count: got %d want %d", len(got.Items), 2)
	}

	first, second := got.Items[0], got.Items[1]
	if first.Accommodation.ID != f.open.ID || second.Accommodation.ID != f.quiet.ID {
		t.Fatalf("unexpected order: %s, %s", first.Accommodation.Name, second.Accommodation.Name)
	}
	if first.Score == nil || *first.Score != 100 {
		t.Fatalf("unexpected open house score: %v", first.Score)
	}
	if second.Score == nil || *second.Score != 50 {
		t.Fatalf("unexpected quiet nest score: %v", second.Score)
	}
	if first.RoommateCount != 1 {
		t.Fatalf("requesting seeker must not count as a roommate: got %d want %d", first.RoommateCount, 1)
	}
	if second.RoommateCount != 0 {
		t.Fatalf("cancelled booking must not count as a roommate: got %d", second.RoommateCount)
	}
	if first.TopInsight == nil || *first.TopInsight != "1 roommate shares your gender" {
		t.Fatalf("unexpected top insight: %v", first.TopInsight)
	}
	if second.TopInsight == nil || *second.TopInsight != compatibility.EmptyHouseSummary {
		t.Fatalf("unexpected empty house summary: %v", second.TopInsight)
	}
	if first.CoverURL == nil || *first.CoverURL != "https://images.test/open.jpg" {
		t.Fatalf("absolute image url must pass through: %v", first.CoverURL)
	}
	if second.CoverURL == nil || *second.CoverURL != "https://cdn.test/rooms/quiet/cover.jpg?sig=1" {
		t.Fatalf("unexpected signed cover url: %v", second.CoverURL)
	}
}

func TestRankedUsesCatalogCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.svc.Ranked(ctx, f.seeker.ID); err != nil {
			t.Fatalf("Ranked returned error: %v", err)
		}
	}
	if f.catalog.listCalls != 1 {
		t.Fatalf("unexpected storage reads: got %d want %d", f.catalog.listCalls, 1)
	}
	if f.cache.setCalls != 1 {
		t.Fatalf("unexpected cache writes: got %d want %d", f.cache.setCalls, 1)
	}

	if err := f.svc.RefreshCatalog(ctx); err != nil {
		t.Fatalf("RefreshCatalog returned error: %v", err)
	}
	if !f.cache.invalidated {
		t.Fatalf("expected cache invalidation")
	}
	if _, err := f.svc.Ranked(ctx, f.seeker.ID); err != nil {
		t.Fatalf("Ranked returned error: %v", err)
	}
	if f.catalog.listCalls != 2 {
		t.Fatalf("expected storage read after refresh: got %d want %d", f.catalog.listCalls, 2)
	}
}

func TestRankedFallsBackWhenCacheFails(t *testing.T) {
	f := newFixture(t)
	f.cache.getErr = errors.New("redis down")

	got, err := f.svc.Ranked(context.Background(), f.seeker.ID)
	if err != nil {
		t.Fatalf("Ranked returned error: %v", err)
	}
	if len(got.Items) != 2 || f.catalog.listCalls != 1 {
		t.Fatalf("expected storage fallback: items=%d reads=%d", len(got.Items), f.catalog.listCalls)
	}
}

func TestRankedWithoutPreferencesIsUnscored(t *testing.T) {
	f := newFixture(t)
	f.seeker.Preferences = nil
	f.svc.seekers = &seekerStoreStub{seekers: map[uuid.UUID]model.Seeker{f.seeker.ID: f.seeker}}

	got, err := f.svc.Ranked(context.Background(), f.seeker.ID)
	if err != nil {
		t.Fatalf("Ranked returned error: %v", err)
	}
	if got.Scored {
		t.Fatalf("expected unscored result")
	}
	if len(got.Items) != 3 {
		t.Fatalf("unscored list must keep every listing: got %d want %d", len(got.Items), 3)
	}
	for i, want := range []uuid.UUID{f.quiet.ID, f.menOnly.ID, f.open.ID} {
		if got.Items[i].Accommodation.ID != want {
			t.Fatalf("unexpected order at %d: %s", i, got.Items[i].Accommodation.Name)
		}
		if got.Items[i].Score != nil {
			t.Fatalf("unexpected score for %s", got.Items[i].Accommodation.Name)
		}
	}
}

func TestRankedUnknownSeeker(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Ranked(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.Ranked(context.Background(), uuid.Nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDetailExplainsFilteredAccommodation(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.Detail(context.Background(), f.seeker.ID, f.menOnly.ID)
	if err != nil {
		t.Fatalf("Detail returned error: %v", err)
	}
	if !got.HasPreferences {
		t.Fatalf("expected preferences flag")
	}
	if got.Result.Allowed {
		t.Fatalf("expected hard filter rejection")
	}
	// gender 8*0.4 + food 8*1 over 16
	if got.Result.RoommateScore != 70 {
		t.Fatalf("unexpected roommate score: got %d want %d", got.Result.RoommateScore, 70)
	}
	if got.Result.Score != 79 {
		t.Fatalf("unexpected final score: got %d want %d", got.Result.Score, 79)
	}
	if len(got.Result.Roommates) != 1 || got.Result.Roommates[0].Name != "Kabir" {
		t.Fatalf("unexpected roommates: %+v", got.Result.Roommates)
	}
}

func TestDetailWithoutPreferences(t *testing.T) {
	f := newFixture(t)
	f.seeker.Preferences = nil
	f.svc.seekers = &seekerStoreStub{seekers: map[uuid.UUID]model.Seeker{f.seeker.ID: f.seeker}}

	got, err := f.svc.Detail(context.Background(), f.seeker.ID, f.open.ID)
	if err != nil {
		t.Fatalf("Detail returned error: %v", err)
	}
	if got.HasPreferences {
		t.Fatalf("expected missing preferences")
	}
	if got.Accommodation.ID != f.open.ID {
		t.Fatalf("unexpected accommodation: %s", got.Accommodation.Name)
	}
}

func TestDetailUnknownAccommodation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Detail(context.Background(), f.seeker.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWarmCatalogFillsCache(t *testing.T) {
	f := newFixture(t)

	n, err := f.svc.WarmCatalog(context.Background())
	if err != nil {
		t.Fatalf("WarmCatalog returned error: %v", err)
	}
	if n != 3 || !f.cache.cached || len(f.cache.items) != 3 {
		t.Fatalf("unexpected warm result: n=%d cached=%v items=%d", n, f.cache.cached, len(f.cache.items))
	}

	if _, err := f.svc.Ranked(context.Background(), f.seeker.ID); err != nil {
		t.Fatalf("Ranked returned error: %v", err)
	}
	if f.catalog.listCalls != 1 {
		t.Fatalf("ranked listing must read the warmed cache: reads=%d", f.catalog.listCalls)
	}
}

func TestSetListingStatusPublishesThroughCache(t *testing.T) {
	f := newFixture(t)
	pending := model.Accommodation{ID: uuid.New(), Name: "Fresh Flat", Status: enums.ListingStatusPending}
	f.catalog.items = append(f.catalog.items, pending)

	before, err := f.svc.Ranked(context.Background(), f.seeker.ID)
	if err != nil {
		t.Fatalf("Ranked returned error: %v", err)
	}
	if containsAccommodation(before.Items, pending.ID) {
		t.Fatalf("pending listing must not be ranked")
	}

	got, err := f.svc.SetListingStatus(context.Background(), pending.ID, enums.ListingStatusVerified)
	if err != nil {
		t.Fatalf("SetListingStatus returned error: %v", err)
	}
	if got.Status != enums.ListingStatusVerified {
		t.Fatalf("unexpected status: got %s want %s", got.Status, enums.ListingStatusVerified)
	}
	if !f.cache.invalidated {
		t.Fatalf("expected catalog cache to be invalidated")
	}

	after, err := f.svc.Ranked(context.Background(), f.seeker.ID)
	if err != nil {
		t.Fatalf("Ranked returned error: %v", err)
	}
	if !containsAccommodation(after.Items, pending.ID) {
		t.Fatalf("verified listing missing from ranking")
	}
	if f.catalog.listCalls != 2 {
		t.Fatalf("unexpected storage reads: got %d want %d", f.catalog.listCalls, 2)
	}
}

func TestSetListingStatusValidation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.SetListingStatus(context.Background(), f.quiet.ID, enums.ListingStatusPending); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for pending, got %v", err)
	}
	if _, err := f.svc.SetListingStatus(context.Background(), uuid.Nil, enums.ListingStatusVerified); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for nil id, got %v", err)
	}
	if _, err := f.svc.SetListingStatus(context.Background(), uuid.New(), enums.ListingStatusRejected); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.cache.invalidated {
		t.Fatalf("cache must stay intact when nothing changed")
	}
}

func containsAccommodation(items []RankedItem, id uuid.UUID) bool {
	for _, item := range items {
		if item.Accommodation.ID == id {
			return true
		}
	}
	return false
}
