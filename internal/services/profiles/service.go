package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
	pgrepo "github.com/ivankudzin/roomshare/backend/internal/repo/postgres"
)

const maxLanguages = 10

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type PreferenceStore interface {
	GetSeeker(ctx context.Context, id uuid.UUID) (model.Seeker, error)
	UpsertPreferences(ctx context.Context, seekerID uuid.UUID, prefs model.Preferences) error
}

type Service struct {
	store PreferenceStore
}

func NewService(store PreferenceStore) *Service {
	return &Service{store: store}
}

// Preferences returns the seeker together with the stored preference set, if
// any.
func (s *Service) Preferences(ctx context.Context, seekerID uuid.UUID) (model.Seeker, error) {
	if seekerID == uuid.Nil {
		return model.Seeker{}, fmt.Errorf("invalid seeker id: %w", ErrValidation)
	}
	if s.store == nil {
		return model.Seeker{}, fmt.Errorf("preference store is nil")
	}

	seeker, err := s.store.GetSeeker(ctx, seekerID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrSeekerNotFound) {
			return model.Seeker{}, ErrNotFound
		}
		return model.Seeker{}, fmt.Errorf("get seeker: %w", err)
	}
	return seeker, nil
}

// UpdatePreferences replaces the seeker's preference set. Every value must be
// one of the accepted options for its field or empty.
func (s *Service) UpdatePreferences(ctx context.Context, seekerID uuid.UUID, in model.Preferences) (model.Preferences, error) {
	if seekerID == uuid.Nil {
		return model.Preferences{}, fmt.Errorf("invalid seeker id: %w", ErrValidation)
	}
	if s.store == nil {
		return model.Preferences{}, fmt.Errorf("preference store is nil")
	}

	normalized, err := normalizeAndValidate(in)
	if err != nil {
		return model.Preferences{}, err
	}

	if err := s.store.UpsertPreferences(ctx, seekerID, normalized); err != nil {
		if errors.Is(err, pgrepo.ErrSeekerNotFound) {
			return model.Preferences{}, ErrNotFound
		}
		return model.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return normalized, nil
}

type preferenceField struct {
	name    string
	value   *string
	allowed []string
}

func normalizeAndValidate(in model.Preferences) (model.Preferences, error) {
	out := in
	fields := []preferenceField{
		{name: "stay_duration", value: &out.StayDuration, allowed: enums.StayDurationScale},
		{name: "food_preference", value: &out.FoodPreference, allowed: enums.FoodOptions},
		{name: "smoking", value: &out.Smoking, allowed: enums.SmokingOptions},
		{name: "drinking", value: &out.Drinking, allowed: enums.DrinkingOptions},
		{name: "guest_policy", value: &out.GuestPolicy, allowed: enums.GuestScale},
		{name: "cleanliness_level", value: &out.CleanlinessLevel, allowed: enums.CleanlinessScale},
		{name: "noise_tolerance", value: &out.NoiseTolerance, allowed: enums.NoiseScale},
		{name: "work_schedule", value: &out.WorkSchedule, allowed: enums.WorkScheduleScale},
		{name: "wake_up_time", value: &out.WakeUpTime, allowed: enums.WakeUpScale},
		{name: "sleep_time", value: &out.SleepTime, allowed: enums.SleepScale},
		{name: "pet_preference", value: &out.PetPreference, allowed: enums.PetScale},
		{name: "cooking_habits", value: &out.CookingHabits, allowed: enums.CookingScale},
		{name: "social_nature", value: &out.SocialNature, allowed: enums.SocialScale},
		{name: "sharing_responsibility", value: &out.SharingResponsibility, allowed: enums.SharingScale},
	}

	for _, field := range fields {
		value := strings.TrimSpace(*field.value)
		if value != "" && !contains(field.allowed, value) {
			return model.Preferences{}, fmt.Errorf("%s value %q is not allowed: %w", field.name, value, ErrValidation)
		}
		*field.value = value
	}

	languages, err := normalizeLanguages(in.Languages)
	if err != nil {
		return model.Preferences{}, err
	}
	out.Languages = languages
	return out, nil
}

// normalizeLanguages trims entries, drops blanks and keeps the first spelling
// of each language.
func normalizeLanguages(values []string) ([]string, error) {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		key := strings.ToLower(trimmed)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}

	if len(result) > maxLanguages {
		return nil, fmt.Errorf("too many languages: %w", ErrValidation)
	}
	return result, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
