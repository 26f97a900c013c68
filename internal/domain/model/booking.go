package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
)

type Booking struct {
	ID              uuid.UUID           `json:"id"`
	SeekerID        uuid.UUID           `json:"seeker_id"`
	AccommodationID uuid.UUID           `json:"accommodation_id"`
	CheckIn         time.Time           `json:"check_in"`
	CheckOut        time.Time           `json:"check_out"`
	Spaces          int                 `json:"spaces"`
	Status          enums.BookingStatus `json:"status"`
}

// Active reports whether the booking places the seeker in the accommodation at the given time.
func (b Booking) Active(at time.Time) bool {
	return b.Status == enums.BookingStatusConfirmed && b.CheckOut.After(at)
}
