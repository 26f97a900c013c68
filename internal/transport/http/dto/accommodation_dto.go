package dto

import (
	"encoding/json"
	"time"
)

type AccommodationItemResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	City           string         `json:"city"`
	Address        string         `json:"address,omitempty"`
	Price          float64        `json:"price"`
	Rating         float64        `json:"rating"`
	AvailableSpace int            `json:"available_space"`
	CoverURL       NullableString `json:"cover_url"`
	Score          *int           `json:"score,omitempty"`
	RoommateCount  int            `json:"roommate_count"`
	TopInsight     NullableString `json:"top_insight"`
}

type AccommodationsResponse struct {
	Items  []AccommodationItemResponse `json:"items"`
	Scored bool                        `json:"scored"`
}

type RoommateResponse struct {
	SeekerID          string   `json:"seeker_id"`
	Name              string   `json:"name"`
	Occupation        string   `json:"occupation,omitempty"`
	Score             int      `json:"score"`
	MatchingTraits    []string `json:"matching_traits"`
	ConflictingTraits []string `json:"conflicting_traits"`
}

type InsightResponse struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

type HouseRulesResponse struct {
	GenderAllowed       string `json:"gender_allowed"`
	FoodPolicy          string `json:"food_policy"`
	SmokingAllowed      bool   `json:"smoking_allowed"`
	DrinkingAllowed     bool   `json:"drinking_allowed"`
	GuestsAllowed       string `json:"guests_allowed"`
	PetFriendly         bool   `json:"pet_friendly"`
	NoisePolicy         string `json:"noise_policy"`
	PreferredOccupation string `json:"preferred_occupation"`
}

type CompatibilityResponse struct {
	AccommodationID string              `json:"accommodation_id"`
	Name            string              `json:"name"`
	HasPreferences  bool                `json:"has_preferences"`
	Allowed         bool                `json:"allowed"`
	Score           *int                `json:"score,omitempty"`
	RuleScore       *int                `json:"rule_score,omitempty"`
	RoommateScore   *int                `json:"roommate_score,omitempty"`
	RoommateCount   int                 `json:"roommate_count"`
	Summary         NullableString      `json:"summary"`
	Roommates       []RoommateResponse  `json:"roommates"`
	Insights        []InsightResponse   `json:"insights"`
	HouseRules      *HouseRulesResponse `json:"house_rules"`
}

type ListingStatusRequest struct {
	Status string `json:"status"`
}

type ListingStatusResponse struct {
	AccommodationID string `json:"accommodation_id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
}

type HealthResponse struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type NullableString struct {
	Value *string
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	if n == nil {
		return nil
	}
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	n.Value = &value
	return nil
}
