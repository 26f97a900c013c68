package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

var (
	ErrSeekerNotFound = errors.New("seeker not found")
	errPoolNil        = errors.New("postgres pool is nil")
)

type SeekerRepo struct {
	pool *pgxpool.Pool
}

func NewSeekerRepo(pool *pgxpool.Pool) *SeekerRepo {
	return &SeekerRepo{pool: pool}
}

// seekerColumns expects seekers aliased as s and seeker_preferences as p.
const seekerColumns = `
	s.id,
	s.name,
	s.gender,
	s.occupation,
	s.created_at,
	p.seeker_id IS NOT NULL,
	p.stay_duration,
	p.food_preference,
	p.smoking,
	p.drinking,
	p.guest_policy,
	p.cleanliness_level,
	p.noise_tolerance,
	p.work_schedule,
	p.wake_up_time,
	p.sleep_time,
	p.pet_preference,
	p.cooking_habits,
	p.social_nature,
	p.sharing_responsibility,
	p.languages`

type seekerRow struct {
	seeker         model.Seeker
	hasPreferences bool
	stay           *string
	food           *string
	smoking        *string
	drinking       *string
	guests         *string
	cleanliness    *string
	noise          *string
	work           *string
	wake           *string
	sleep          *string
	pets           *string
	cooking        *string
	social         *string
	sharing        *string
	languages      []string
}

func (r *seekerRow) targets() []any {
	return []any{
		&r.seeker.ID,
		&r.seeker.Name,
		&r.seeker.Gender,
		&r.seeker.Occupation,
		&r.seeker.CreatedAt,
		&r.hasPreferences,
		&r.stay,
		&r.food,
		&r.smoking,
		&r.drinking,
		&r.guests,
		&r.cleanliness,
		&r.noise,
		&r.work,
		&r.wake,
		&r.sleep,
		&r.pets,
		&r.cooking,
		&r.social,
		&r.sharing,
		&r.languages,
	}
}

func (r *seekerRow) model() model.Seeker {
	out := r.seeker
	if !r.hasPreferences {
		out.Preferences = nil
		return out
	}
	out.Preferences = &model.Preferences{
		StayDuration:          deref(r.stay),
		FoodPreference:        deref(r.food),
		Smoking:               deref(r.smoking),
		Drinking:              deref(r.drinking),
		GuestPolicy:           deref(r.guests),
		CleanlinessLevel:      deref(r.cleanliness),
		NoiseTolerance:        deref(r.noise),
		WorkSchedule:          deref(r.work),
		WakeUpTime:            deref(r.wake),
		SleepTime:             deref(r.sleep),
		PetPreference:         deref(r.pets),
		CookingHabits:         deref(r.cooking),
		SocialNature:          deref(r.social),
		SharingResponsibility: deref(r.sharing),
		Languages:             append([]string(nil), r.languages...),
	}
	return out
}

func (r *SeekerRepo) GetSeeker(ctx context.Context, id uuid.UUID) (model.Seeker, error) {
	if r.pool == nil {
		return model.Seeker{}, errPoolNil
	}

	var row seekerRow
	err := r.pool.QueryRow(ctx, `
SELECT`+seekerColumns+`
FROM seekers s
LEFT JOIN seeker_preferences p ON p.seeker_id = s.id
WHERE s.id = $1
LIMIT 1
`, id.String()).Scan(row.targets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Seeker{}, ErrSeekerNotFound
		}
		return model.Seeker{}, fmt.Errorf("get seeker: %w", err)
	}

	return row.model(), nil
}

// UpsertPreferences stores the full preference set of a seeker, replacing any
// previous answers. Empty values are stored as NULL.
func (r *SeekerRepo) UpsertPreferences(ctx context.Context, seekerID uuid.UUID, prefs model.Preferences) error {
	if r.pool == nil {
		return errPoolNil
	}

	languages := prefs.Languages
	if languages == nil {
		languages = []string{}
	}

	_, err := r.pool.Exec(ctx, `
INSERT INTO seeker_preferences (
	seeker_id,
	stay_duration,
	food_preference,
	smoking,
	drinking,
	guest_policy,
	cleanliness_level,
	noise_tolerance,
	work_schedule,
	wake_up_time,
	sleep_time,
	pet_preference,
	cooking_habits,
	social_nature,
	sharing_responsibility,
	languages,
	updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW())
ON CONFLICT (seeker_id) DO UPDATE SET
	stay_duration = EXCLUDED.stay_duration,
	food_preference = EXCLUDED.food_preference,
	smoking = EXCLUDED.smoking,
	drinking = EXCLUDED.drinking,
	guest_policy = EXCLUDED.guest_policy,
	cleanliness_level = EXCLUDED.cleanliness_level,
	noise_tolerance = EXCLUDED.noise_tolerance,
	work_schedule = EXCLUDED.work_schedule,
	wake_up_time = EXCLUDED.wake_up_time,
	sleep_time = EXCLUDED.sleep_time,
	pet_preference = EXCLUDED.pet_preference,
	cooking_habits = EXCLUDED.cooking_habits,
	social_nature = EXCLUDED.social_nature,
	sharing_responsibility = EXCLUDED.sharing_responsibility,
	languages = EXCLUDED.languages,
	updated_at = NOW()
`,
		seekerID.String(),
		nullable(prefs.StayDuration),
		nullable(prefs.FoodPreference),
		nullable(prefs.Smoking),
		nullable(prefs.Drinking),
		nullable(prefs.GuestPolicy),
		nullable(prefs.CleanlinessLevel),
		nullable(prefs.NoiseTolerance),
		nullable(prefs.WorkSchedule),
		nullable(prefs.WakeUpTime),
		nullable(prefs.SleepTime),
		nullable(prefs.PetPreference),
		nullable(prefs.CookingHabits),
		nullable(prefs.SocialNature),
		nullable(prefs.SharingResponsibility),
		languages,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrSeekerNotFound
		}
		return fmt.Errorf("upsert seeker preferences: %w", err)
	}

	return nil
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
