package listings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ivankudzin/roomshare/backend/internal/domain/compatibility"
	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
	pgrepo "github.com/ivankudzin/roomshare/backend/internal/repo/postgres"
)

const (
	defaultConcurrency = 8
	defaultImageURLTTL = 15 * time.Minute
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type SeekerStore interface {
	GetSeeker(ctx context.Context, id uuid.UUID) (model.Seeker, error)
}

type CatalogStore interface {
	ListVerified(ctx context.Context) ([]model.Accommodation, error)
	GetVerified(ctx context.Context, id uuid.UUID) (model.Accommodation, error)
}

type StatusStore interface {
	SetStatus(ctx context.Context, id uuid.UUID, status enums.ListingStatus) (model.Accommodation, error)
}

type RoommateStore interface {
	ListCurrent(ctx context.Context, accommodationIDs []uuid.UUID, at time.Time) ([]pgrepo.RoommateRecord, error)
}

type CatalogCache interface {
	GetVerifiedCatalog(ctx context.Context) ([]model.Accommodation, bool, error)
	SetVerifiedCatalog(ctx context.Context, items []model.Accommodation, ttl time.Duration) error
	InvalidateVerifiedCatalog(ctx context.Context) error
}

type ImageURLSigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type Dependencies struct {
	Seekers   SeekerStore
	Catalog   CatalogStore
	Statuses  StatusStore
	Roommates RoommateStore
	Cache     CatalogCache
	Images    ImageURLSigner
	Logger    *zap.Logger
}

type Config struct {
	CatalogCacheTTL time.Duration
	ImageURLTTL     time.Duration
	Concurrency     int
}

type Service struct {
	seekers   SeekerStore
	catalog   CatalogStore
	statuses  StatusStore
	roommates RoommateStore
	cache     CatalogCache
	images    ImageURLSigner
	log       *zap.Logger
	cfg       Config
	now       func() time.Time
}

type RankedItem struct {
	Accommodation model.Accommodation
	CoverURL      *string
	Score         *int
	RoommateCount int
	TopInsight    *string
}

type RankedResult struct {
	Items  []RankedItem
	Scored bool
}

type Detail struct {
	Accommodation  model.Accommodation
	HasPreferences bool
	Result         compatibility.Result
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.ImageURLTTL <= 0 {
		cfg.ImageURLTTL = defaultImageURLTTL
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		seekers:   deps.Seekers,
		catalog:   deps.Catalog,
		statuses:  deps.Statuses,
		roommates: deps.Roommates,
		cache:     deps.Cache,
		images:    deps.Images,
		log:       log,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Ranked lists verified accommodations for a seeker, best match first.
// Seekers without preferences get the catalog unscored, newest first.
func (s *Service) Ranked(ctx context.Context, seekerID uuid.UUID) (RankedResult, error) {
	if seekerID == uuid.Nil {
		return RankedResult{}, ErrValidation
	}
	if s.seekers == nil || s.catalog == nil || s.roommates == nil {
		return RankedResult{}, fmt.Errorf("listings dependencies are nil")
	}

	seeker, err := s.loadSeeker(ctx, seekerID)
	if err != nil {
		return RankedResult{}, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return RankedResult{}, err
	}

	if !seeker.HasPreferences() {
		items := make([]RankedItem, len(catalog))
		if err := s.forEach(ctx, len(catalog), func(ctx context.Context, i int) {
			items[i] = RankedItem{
				Accommodation: catalog[i],
				CoverURL:      s.coverURL(ctx, catalog[i]),
			}
		}); err != nil {
			return RankedResult{}, err
		}
		return RankedResult{Items: items, Scored: false}, nil
	}

	ids := make([]uuid.UUID, 0, len(catalog))
	for _, item := range catalog {
		ids = append(ids, item.ID)
	}
	roommates, err := s.loadRoommates(ctx, ids, seeker.ID)
	if err != nil {
		return RankedResult{}, err
	}

	type scored struct {
		item    RankedItem
		allowed bool
	}
	results := make([]scored, len(catalog))
	if err := s.forEach(ctx, len(catalog), func(ctx context.Context, i int) {
		accommodation := catalog[i]
		result := compatibility.Evaluate(seeker, accommodation.HouseRules, roommates[accommodation.ID])
		if !result.Allowed {
			return
		}
		score := result.Score
		results[i] = scored{
			allowed: true,
			item: RankedItem{
				Accommodation: accommodation,
				CoverURL:      s.coverURL(ctx, accommodation),
				Score:         &score,
				RoommateCount: result.RoommateCount(),
				TopInsight:    optionalString(compatibility.Summary(result)),
			},
		}
	}); err != nil {
		return RankedResult{}, err
	}

	items := make([]RankedItem, 0, len(results))
	for _, r := range results {
		if r.allowed {
			items = append(items, r.item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return *items[i].Score > *items[j].Score
	})

	return RankedResult{Items: items, Scored: true}, nil
}

// Detail explains the compatibility of a seeker with one accommodation. It
// is returned even when house rules bar the seeker.
func (s *Service) Detail(ctx context.Context, seekerID, accommodationID uuid.UUID) (Detail, error) {
	if seekerID == uuid.Nil || accommodationID == uuid.Nil {
		return Detail{}, ErrValidation
	}
	if s.seekers == nil || s.catalog == nil || s.roommates == nil {
		return Detail{}, fmt.Errorf("listings dependencies are nil")
	}

	seeker, err := s.loadSeeker(ctx, seekerID)
	if err != nil {
		return Detail{}, err
	}

	accommodation, err := s.catalog.GetVerified(ctx, accommodationID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrAccommodationNotFound) {
			return Detail{}, ErrNotFound
		}
		return Detail{}, err
	}

	detail := Detail{
		Accommodation:  accommodation,
		HasPreferences: seeker.HasPreferences(),
	}
	if !detail.HasPreferences {
		return detail, nil
	}

	roommates, err := s.loadRoommates(ctx, []uuid.UUID{accommodation.ID}, seeker.ID)
	if err != nil {
		return Detail{}, err
	}
	detail.Result = compatibility.Evaluate(seeker, accommodation.HouseRules, roommates[accommodation.ID])
	return detail, nil
}

// WarmCatalog reloads the verified catalog from storage into the cache and
// returns the number of listings cached.
func (s *Service) WarmCatalog(ctx context.Context) (int, error) {
	if s.catalog == nil {
		return 0, fmt.Errorf("listings dependencies are nil")
	}
	if s.cache == nil || s.cfg.CatalogCacheTTL <= 0 {
		return 0, nil
	}

	items, err := s.catalog.ListVerified(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.cache.SetVerifiedCatalog(ctx, items, s.cfg.CatalogCacheTTL); err != nil {
		return 0, fmt.Errorf("cache verified catalog: %w", err)
	}
	return len(items), nil
}

// RefreshCatalog drops the cached catalog so the next listing reads storage.
func (s *Service) RefreshCatalog(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidateVerifiedCatalog(ctx)
}

// SetListingStatus records a moderation decision and drops the cached catalog
// so the change shows up in the next listing.
func (s *Service) SetListingStatus(ctx context.Context, id uuid.UUID, status enums.ListingStatus) (model.Accommodation, error) {
	if id == uuid.Nil {
		return model.Accommodation{}, ErrValidation
	}
	if status != enums.ListingStatusVerified && status != enums.ListingStatusRejected {
		return model.Accommodation{}, fmt.Errorf("unsupported listing status %q: %w", status, ErrValidation)
	}
	if s.statuses == nil {
		return model.Accommodation{}, fmt.Errorf("listings dependencies are nil")
	}

	accommodation, err := s.statuses.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgrepo.ErrAccommodationNotFound) {
			return model.Accommodation{}, ErrNotFound
		}
		return model.Accommodation{}, err
	}

	if err := s.RefreshCatalog(ctx); err != nil {
		s.log.Warn("catalog cache invalidate failed",
			zap.String("accommodation_id", id.String()),
			zap.Error(err),
		)
	}
	return accommodation, nil
}

func (s *Service) loadSeeker(ctx context.Context, seekerID uuid.UUID) (model.Seeker, error) {
	seeker, err := s.seekers.GetSeeker(ctx, seekerID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrSeekerNotFound) {
			return model.Seeker{}, ErrNotFound
		}
		return model.Seeker{}, err
	}
	return seeker, nil
}

func (s *Service) loadCatalog(ctx context.Context) ([]model.Accommodation, error) {
	if s.cache != nil && s.cfg.CatalogCacheTTL > 0 {
		items, ok, err := s.cache.GetVerifiedCatalog(ctx)
		if err != nil {
			s.log.Warn("catalog cache read failed", zap.Error(err))
		} else if ok {
			return items, nil
		}
	}

	items, err := s.catalog.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cfg.CatalogCacheTTL > 0 {
		if err := s.cache.SetVerifiedCatalog(ctx, items, s.cfg.CatalogCacheTTL); err != nil {
			s.log.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

// loadRoommates groups the people currently staying in each accommodation,
// leaving out the requesting seeker.
func (s *Service) loadRoommates(ctx context.Context, ids []uuid.UUID, seekerID uuid.UUID) (map[uuid.UUID][]model.Seeker, error) {
	now := s.now().UTC()
	records, err := s.roommates.ListCurrent(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID][]model.Seeker, len(ids))
	seen := make(map[[2]uuid.UUID]struct{}, len(records))
	for _, record := range records {
		if !record.Booking.Active(now) || record.Seeker.ID == seekerID {
			continue
		}
		key := [2]uuid.UUID{record.Booking.AccommodationID, record.Seeker.ID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out[record.Booking.AccommodationID] = append(out[record.Booking.AccommodationID], record.Seeker)
	}
	return out, nil
}

func (s *Service) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(gctx, i)
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) coverURL(ctx context.Context, accommodation model.Accommodation) *string {
	key := strings.TrimSpace(accommodation.CoverImage())
	if key == "" {
		return nil
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return &key
	}
	if s.images == nil {
		return nil
	}

	signed, err := s.images.PresignGet(ctx, key, s.cfg.ImageURLTTL)
	if err != nil {
		s.log.Debug("presign cover image failed", zap.String("accommodation_id", accommodation.ID.String()), zap.Error(err))
		return nil
	}
	return optionalString(signed)
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
