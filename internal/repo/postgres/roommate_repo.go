package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

type RoommateRepo struct {
	pool *pgxpool.Pool
}

// RoommateRecord is a confirmed booking together with the seeker who holds it.
type RoommateRecord struct {
	Booking model.Booking
	Seeker  model.Seeker
}

func NewRoommateRepo(pool *pgxpool.Pool) *RoommateRepo {
	return &RoommateRepo{pool: pool}
}

// ListCurrent returns the confirmed bookings of the given accommodations that
// have not checked out at the given time.
func (r *RoommateRepo) ListCurrent(ctx context.Context, accommodationIDs []uuid.UUID, at time.Time) ([]RoommateRecord, error) {
	if r.pool == nil {
		return nil, errPoolNil
	}
	if len(accommodationIDs) == 0 {
		return []RoommateRecord{}, nil
	}

	ids := make([]string, 0, len(accommodationIDs))
	for _, id := range accommodationIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.pool.Query(ctx, `
SELECT
	b.id,
	b.accommodation_id,
	b.check_in,
	b.check_out,
	b.spaces,
	b.status,`+seekerColumns+`
FROM bookings b
JOIN seekers s ON s.id = b.seeker_id
LEFT JOIN seeker_preferences p ON p.seeker_id = s.id
WHERE b.accommodation_id = ANY($1::uuid[])
	AND b.status = $2
	AND b.check_out > $3
ORDER BY b.accommodation_id, b.check_in, b.id
`, ids, string(enums.BookingStatusConfirmed), at.UTC())
	if err != nil {
		return nil, fmt.Errorf("list current roommates: %w", err)
	}
	defer rows.Close()

	items := make([]RoommateRecord, 0)
	for rows.Next() {
		var (
			booking model.Booking
			status  string
			seeker  seekerRow
		)
		targets := append([]any{
			&booking.ID,
			&booking.AccommodationID,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.Spaces,
			&status,
		}, seeker.targets()...)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan roommate: %w", err)
		}
		booking.Status = enums.BookingStatus(status)
		record := RoommateRecord{Booking: booking, Seeker: seeker.model()}
		record.Booking.SeekerID = record.Seeker.ID
		items = append(items, record)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate roommates: %w", rows.Err())
	}

	return items, nil
}
