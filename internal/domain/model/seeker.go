package model

import (
	"time"

	"github.com/google/uuid"
)

type Seeker struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Gender      string       `json:"gender"`
	Occupation  string       `json:"occupation"`
	Preferences *Preferences `json:"preferences,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Preferences holds one value per lifestyle dimension. Empty strings mean the
// seeker left the dimension unanswered.
type Preferences struct {
	StayDuration          string   `json:"stay_duration,omitempty"`
	FoodPreference        string   `json:"food_preference,omitempty"`
	Smoking               string   `json:"smoking,omitempty"`
	Drinking              string   `json:"drinking,omitempty"`
	GuestPolicy           string   `json:"guest_policy,omitempty"`
	CleanlinessLevel      string   `json:"cleanliness_level,omitempty"`
	NoiseTolerance        string   `json:"noise_tolerance,omitempty"`
	WorkSchedule          string   `json:"work_schedule,omitempty"`
	WakeUpTime            string   `json:"wake_up_time,omitempty"`
	SleepTime             string   `json:"sleep_time,omitempty"`
	PetPreference         string   `json:"pet_preference,omitempty"`
	CookingHabits         string   `json:"cooking_habits,omitempty"`
	SocialNature          string   `json:"social_nature,omitempty"`
	SharingResponsibility string   `json:"sharing_responsibility,omitempty"`
	Languages             []string `json:"languages,omitempty"`
}

func (s Seeker) HasPreferences() bool {
	return s.Preferences != nil
}

// Pref returns the seeker's preferences or an empty set.
func (s Seeker) Pref() Preferences {
	if s.Preferences == nil {
		return Preferences{}
	}
	return *s.Preferences
}
