package compatibility

import (
	"math"
	"strings"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

const (
	noiseMismatchCredit  = 0.5
	occupationRuleCredit = 0.4
	guestMismatchCredit  = 0.5
	petMismatchCredit    = 0.4
	neutralRuleScore     = 100
)

// Allowed reports whether house rules admit the seeker at all. Missing
// preference data never rejects; a gender-restricted house requires the
// seeker's gender to match.
func Allowed(seeker model.Seeker, rules *model.HouseRules) bool {
	if rules == nil {
		return true
	}
	pref := seeker.Pref()
	gender := strings.TrimSpace(seeker.Gender)

	switch strings.TrimSpace(rules.GenderAllowed) {
	case enums.GenderMaleOnly:
		if gender != enums.GenderMale {
			return false
		}
	case enums.GenderFemaleOnly:
		if gender != enums.GenderFemale {
			return false
		}
	}

	if !rules.SmokingAllowed && strings.TrimSpace(pref.Smoking) == enums.Smoker {
		return false
	}

	if strings.TrimSpace(rules.FoodPolicy) == enums.FoodPolicyVegOnly &&
		strings.TrimSpace(pref.FoodPreference) == enums.FoodNonVegetarian {
		return false
	}

	return true
}

// RuleScore rates 0..100 how well the seeker's lifestyle fits the declared
// house policy. Factors lacking data on either side are left out.
func RuleScore(seeker model.Seeker, rules *model.HouseRules) int {
	if rules == nil {
		return neutralRuleScore
	}
	pref := seeker.Pref()

	var sum float64
	var factors int
	credit := func(v float64) {
		sum += v
		factors++
	}

	if noise := strings.TrimSpace(pref.NoiseTolerance); noise != "" {
		if expected, ok := noisePolicyExpectation[strings.TrimSpace(rules.NoisePolicy)]; ok {
			if noise == expected {
				credit(1)
			} else {
				credit(noiseMismatchCredit)
			}
		}
	}

	occupation := strings.TrimSpace(seeker.Occupation)
	preferred := strings.TrimSpace(rules.PreferredOccupation)
	if occupation != "" && preferred != "" && preferred != enums.OccupationAny {
		if occupation == preferred {
			credit(1)
		} else {
			credit(occupationRuleCredit)
		}
	}

	if guests := strings.TrimSpace(pref.GuestPolicy); guests != "" {
		if expected, ok := guestPolicyExpectation[strings.TrimSpace(rules.GuestsAllowed)]; ok {
			if guests == expected {
				credit(1)
			} else {
				credit(guestMismatchCredit)
			}
		}
	}

	if pets := strings.TrimSpace(pref.PetPreference); pets != "" {
		noPets := pets == enums.PetsNone
		if (rules.PetFriendly && !noPets) || (!rules.PetFriendly && noPets) {
			credit(1)
		} else {
			credit(petMismatchCredit)
		}
	}

	if factors == 0 {
		return neutralRuleScore
	}
	return clampScore(math.Round(100 * sum / float64(factors)))
}
