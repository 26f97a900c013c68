package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

var ErrAccommodationNotFound = errors.New("accommodation not found")

type AccommodationRepo struct {
	pool *pgxpool.Pool
}

func NewAccommodationRepo(pool *pgxpool.Pool) *AccommodationRepo {
	return &AccommodationRepo{pool: pool}
}

const accommodationSelect = `
SELECT
	a.id,
	a.host_id,
	a.name,
	a.address,
	a.city,
	a.price::float8,
	a.images,
	a.total_space,
	a.available_space,
	a.rating,
	a.status,
	a.created_at,
	hr.accommodation_id IS NOT NULL,
	COALESCE(hr.gender_allowed, ''),
	COALESCE(hr.food_policy, ''),
	COALESCE(hr.smoking_allowed, FALSE),
	COALESCE(hr.drinking_allowed, FALSE),
	COALESCE(hr.guests_allowed, ''),
	COALESCE(hr.pet_friendly, FALSE),
	COALESCE(hr.noise_policy, ''),
	COALESCE(hr.preferred_occupation, '')
FROM accommodations a
LEFT JOIN accommodation_house_rules hr ON hr.accommodation_id = a.id
`

type accommodationRow struct {
	item     model.Accommodation
	status   string
	hasRules bool
	rules    model.HouseRules
}

func (r *accommodationRow) targets() []any {
	return []any{
		&r.item.ID,
		&r.item.HostID,
		&r.item.Name,
		&r.item.Address,
		&r.item.City,
		&r.item.Price,
		&r.item.Images,
		&r.item.TotalSpace,
		&r.item.AvailableSpace,
		&r.item.Rating,
		&r.status,
		&r.item.CreatedAt,
		&r.hasRules,
		&r.rules.GenderAllowed,
		&r.rules.FoodPolicy,
		&r.rules.SmokingAllowed,
		&r.rules.DrinkingAllowed,
		&r.rules.GuestsAllowed,
		&r.rules.PetFriendly,
		&r.rules.NoisePolicy,
		&r.rules.PreferredOccupation,
	}
}

func (r *accommodationRow) model() model.Accommodation {
	out := r.item
	out.Status = enums.ListingStatus(r.status)
	if out.Images == nil {
		out.Images = []string{}
	}
	if r.hasRules {
		rules := r.rules
		out.HouseRules = &rules
	}
	return out
}

// ListVerified returns verified listings, newest first.
func (r *AccommodationRepo) ListVerified(ctx context.Context) ([]model.Accommodation, error) {
	if r.pool == nil {
		return nil, errPoolNil
	}

	rows, err := r.pool.Query(ctx, accommodationSelect+`
WHERE a.status = $1
ORDER BY a.created_at DESC, a.id DESC
`, string(enums.ListingStatusVerified))
	if err != nil {
		return nil, fmt.Errorf("list verified accommodations: %w", err)
	}
	defer rows.Close()

	items := make([]model.Accommodation, 0)
	for rows.Next() {
		var row accommodationRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("scan accommodation: %w", err)
		}
		items = append(items, row.model())
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate accommodations: %w", rows.Err())
	}

	return items, nil
}

func (r *AccommodationRepo) GetVerified(ctx context.Context, id uuid.UUID) (model.Accommodation, error) {
	if r.pool == nil {
		return model.Accommodation{}, errPoolNil
	}

	var row accommodationRow
	err := r.pool.QueryRow(ctx, accommodationSelect+`
WHERE a.id = $1 AND a.status = $2
LIMIT 1
`, id.String(), string(enums.ListingStatusVerified)).Scan(row.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Accommodation{}, ErrAccommodationNotFound
		}
		return model.Accommodation{}, fmt.Errorf("get accommodation: %w", err)
	}

	return row.model(), nil
}

// SetStatus moves a listing to the given moderation status and returns it as
// stored.
func (r *AccommodationRepo) SetStatus(ctx context.Context, id uuid.UUID, status enums.ListingStatus) (model.Accommodation, error) {
	if r.pool == nil {
		return model.Accommodation{}, errPoolNil
	}

	result, err := r.pool.Exec(ctx, `
UPDATE accommodations
SET
	status = $2,
	updated_at = NOW()
WHERE id = $1
`, id.String(), string(status))
	if err != nil {
		return model.Accommodation{}, fmt.Errorf("update accommodation status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.Accommodation{}, ErrAccommodationNotFound
	}

	var row accommodationRow
	err = r.pool.QueryRow(ctx, accommodationSelect+`
WHERE a.id = $1
LIMIT 1
`, id.String()).Scan(row.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Accommodation{}, ErrAccommodationNotFound
		}
		return model.Accommodation{}, fmt.Errorf("get accommodation: %w", err)
	}

	return row.model(), nil
}
