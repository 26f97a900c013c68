package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
)

type Accommodation struct {
	ID             uuid.UUID           `json:"id"`
	HostID         uuid.UUID           `json:"host_id"`
	Name           string              `json:"name"`
	Address        string              `json:"address"`
	City           string              `json:"city"`
	Price          float64             `json:"price"`
	Images         []string            `json:"images"`
	TotalSpace     int                 `json:"total_space"`
	AvailableSpace int                 `json:"available_space"`
	Rating         float64             `json:"rating"`
	Status         enums.ListingStatus `json:"status"`
	HouseRules     *HouseRules         `json:"house_rules,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type HouseRules struct {
	GenderAllowed       string `json:"gender_allowed"`
	FoodPolicy          string `json:"food_policy"`
	SmokingAllowed      bool   `json:"smoking_allowed"`
	DrinkingAllowed     bool   `json:"drinking_allowed"`
	GuestsAllowed       string `json:"guests_allowed"`
	PetFriendly         bool   `json:"pet_friendly"`
	NoisePolicy         string `json:"noise_policy"`
	PreferredOccupation string `json:"preferred_occupation"`
}

func (a Accommodation) CoverImage() string {
	if len(a.Images) == 0 {
		return ""
	}
	return a.Images[0]
}
