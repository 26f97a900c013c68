package compatibility

import (
	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

// Weights of the categorical dimensions.
const (
	weightGender     = 8.0
	weightOccupation = 6.0
	weightFood       = 8.0
	weightSmoking    = 9.0
	weightDrinking   = 5.0
	weightLanguages  = 6.0
)

// Partial credits of the categorical dimensions.
const (
	genderMismatchCredit     = 0.4
	occupationMismatchCredit = 0.4
	foodNoPreferenceCredit   = 0.6
	foodMismatchCredit       = 0.2
	drinkingMismatchCredit   = 0.3
	languageMismatchCredit   = 0.2
	adjacentCredit           = 0.5
)

const (
	matchingThreshold        = 0.8
	foodConflictingThreshold = 0.3
)

const (
	LabelGender     = "Same gender"
	LabelOccupation = "Same occupation"
	LabelFood       = "Food preference"
	LabelSmoking    = "Smoking habits"
	LabelDrinking   = "Drinking habits"
)

// orderedDimension is a lifestyle dimension whose values form a scale.
type orderedDimension struct {
	label  string
	weight float64
	order  []string
	value  func(model.Preferences) string
}

var orderedDimensions = []orderedDimension{
	{
		label:  "Sleep schedule",
		weight: 8,
		order:  enums.SleepScale,
		value:  func(p model.Preferences) string { return p.SleepTime },
	},
	{
		label:  "Wake-up time",
		weight: 7,
		order:  enums.WakeUpScale,
		value:  func(p model.Preferences) string { return p.WakeUpTime },
	},
	{
		label:  "Cleanliness",
		weight: 9,
		order:  enums.CleanlinessScale,
		value:  func(p model.Preferences) string { return p.CleanlinessLevel },
	},
	{
		label:  "Noise tolerance",
		weight: 7,
		order:  enums.NoiseScale,
		value:  func(p model.Preferences) string { return p.NoiseTolerance },
	},
	{
		label:  "Guest policy",
		weight: 5,
		order:  enums.GuestScale,
		value:  func(p model.Preferences) string { return p.GuestPolicy },
	},
	{
		label:  "Work schedule",
		weight: 5,
		order:  enums.WorkScheduleScale,
		value:  func(p model.Preferences) string { return p.WorkSchedule },
	},
	{
		label:  "Social nature",
		weight: 4,
		order:  enums.SocialScale,
		value:  func(p model.Preferences) string { return p.SocialNature },
	},
	{
		label:  "Cooking habits",
		weight: 3,
		order:  enums.CookingScale,
		value:  func(p model.Preferences) string { return p.CookingHabits },
	},
	{
		label:  "Sharing style",
		weight: 5,
		order:  enums.SharingScale,
		value:  func(p model.Preferences) string { return p.SharingResponsibility },
	},
	{
		label:  "Pet preference",
		weight: 5,
		order:  enums.PetScale,
		value:  func(p model.Preferences) string { return p.PetPreference },
	},
	{
		label:  "Stay duration",
		weight: 4,
		order:  enums.StayDurationScale,
		value:  func(p model.Preferences) string { return p.StayDuration },
	},
}

// House noise policy mapped to the seeker noise tolerance it expects.
var noisePolicyExpectation = map[string]string{
	enums.NoisePolicyQuietZone:     enums.NoiseQuiet,
	enums.NoisePolicyModerate:      enums.NoiseModerate,
	enums.NoisePolicyNoRestriction: enums.NoiseLively,
}

// House guest policy mapped to the seeker guest policy it expects.
var guestPolicyExpectation = map[string]string{
	enums.GuestsAllowed:      enums.GuestsWelcome,
	enums.GuestsOccasionally: enums.OccasionalGuests,
	enums.GuestsNotAllowed:   enums.NoGuests,
}

// orderedMatch scores two values on a 3-step scale. Values missing from the
// scale earn no credit.
func orderedMatch(order []string, a, b string) float64 {
	ia, ib := indexOf(order, a), indexOf(order, b)
	if ia < 0 || ib < 0 {
		return 0
	}
	switch distance := abs(ia - ib); distance {
	case 0:
		return 1
	case 1:
		return adjacentCredit
	default:
		return 0
	}
}

func indexOf(values []string, v string) int {
	for i, item := range values {
		if item == v {
			return i
		}
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
