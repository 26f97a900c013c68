package dto

type PreferencesPayload struct {
	StayDuration          string   `json:"stay_duration"`
	FoodPreference        string   `json:"food_preference"`
	Smoking               string   `json:"smoking"`
	Drinking              string   `json:"drinking"`
	GuestPolicy           string   `json:"guest_policy"`
	CleanlinessLevel      string   `json:"cleanliness_level"`
	NoiseTolerance        string   `json:"noise_tolerance"`
	WorkSchedule          string   `json:"work_schedule"`
	WakeUpTime            string   `json:"wake_up_time"`
	SleepTime             string   `json:"sleep_time"`
	PetPreference         string   `json:"pet_preference"`
	CookingHabits         string   `json:"cooking_habits"`
	SocialNature          string   `json:"social_nature"`
	SharingResponsibility string   `json:"sharing_responsibility"`
	Languages             []string `json:"languages"`
}

type PreferencesResponse struct {
	SeekerID       string              `json:"seeker_id"`
	Name           string              `json:"name"`
	Gender         string              `json:"gender"`
	Occupation     string              `json:"occupation"`
	HasPreferences bool                `json:"has_preferences"`
	Preferences    *PreferencesPayload `json:"preferences"`
}
