package compatibility

import (
	"math"
	"strings"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

// PairResult is the compatibility of a seeker with a single roommate.
type PairResult struct {
	Score             int
	MatchingTraits    []string
	ConflictingTraits []string
}

type pairAccumulator struct {
	weighted    float64
	totalWeight float64
	matching    []string
	conflicting []string
}

func (a *pairAccumulator) add(weight, match float64) {
	a.weighted += weight * match
	a.totalWeight += weight
}

func (a *pairAccumulator) result() PairResult {
	out := PairResult{
		MatchingTraits:    a.matching,
		ConflictingTraits: a.conflicting,
	}
	if out.MatchingTraits == nil {
		out.MatchingTraits = []string{}
	}
	if out.ConflictingTraits == nil {
		out.ConflictingTraits = []string{}
	}
	if a.totalWeight > 0 {
		out.Score = clampScore(math.Round(100 * a.weighted / a.totalWeight))
	}
	return out
}

// Compare scores how well roommate fits seeker. Only dimensions answered by
// both sides count towards the score.
func Compare(seeker, roommate model.Seeker) PairResult {
	acc := &pairAccumulator{}
	sp, rp := seeker.Pref(), roommate.Pref()

	if a, b, ok := both(seeker.Gender, roommate.Gender); ok {
		match := genderMismatchCredit
		if a == b {
			match = 1
		}
		acc.add(weightGender, match)
		if match >= matchingThreshold {
			acc.matching = append(acc.matching, LabelGender)
		}
	}

	if a, b, ok := both(seeker.Occupation, roommate.Occupation); ok {
		match := occupationMismatchCredit
		if a == b {
			match = 1
		}
		acc.add(weightOccupation, match)
		if match >= matchingThreshold {
			acc.matching = append(acc.matching, LabelOccupation)
		}
	}

	if a, b, ok := both(sp.FoodPreference, rp.FoodPreference); ok {
		match := foodMatch(a, b)
		acc.add(weightFood, match)
		switch {
		case match >= matchingThreshold:
			acc.matching = append(acc.matching, LabelFood)
		case match <= foodConflictingThreshold:
			acc.conflicting = append(acc.conflicting, LabelFood)
		}
	}

	if a, b, ok := both(sp.Smoking, rp.Smoking); ok {
		if a == b {
			acc.add(weightSmoking, 1)
			acc.matching = append(acc.matching, LabelSmoking)
		} else {
			acc.add(weightSmoking, 0)
			acc.conflicting = append(acc.conflicting, LabelSmoking)
		}
	}

	if a, b, ok := both(sp.Drinking, rp.Drinking); ok {
		match := drinkingMismatchCredit
		if a == b {
			match = 1
		}
		acc.add(weightDrinking, match)
		if match >= matchingThreshold {
			acc.matching = append(acc.matching, LabelDrinking)
		}
	}

	if hasLanguage(sp.Languages) && hasLanguage(rp.Languages) {
		shared := SharedLanguages(sp.Languages, rp.Languages)
		if len(shared) > 0 {
			acc.add(weightLanguages, 1)
			acc.matching = append(acc.matching, "Speaks "+strings.Join(shared, ", "))
		} else {
			acc.add(weightLanguages, languageMismatchCredit)
		}
	}

	for _, dim := range orderedDimensions {
		a, b, ok := both(dim.value(sp), dim.value(rp))
		if !ok {
			continue
		}
		match := orderedMatch(dim.order, a, b)
		acc.add(dim.weight, match)
		switch {
		case match >= matchingThreshold:
			acc.matching = append(acc.matching, dim.label)
		case match <= 0:
			acc.conflicting = append(acc.conflicting, dim.label)
		}
	}

	return acc.result()
}

func foodMatch(a, b string) float64 {
	switch {
	case a == b:
		return 1
	case a == enums.FoodNoPreference || b == enums.FoodNoPreference:
		return foodNoPreferenceCredit
	default:
		return foodMismatchCredit
	}
}

func hasLanguage(langs []string) bool {
	for _, lang := range langs {
		if strings.TrimSpace(lang) != "" {
			return true
		}
	}
	return false
}

// SharedLanguages returns the languages of a that also appear in b, compared
// case-insensitively, in the order and spelling of a.
func SharedLanguages(a, b []string) []string {
	other := make(map[string]struct{}, len(b))
	for _, lang := range b {
		key := strings.ToLower(strings.TrimSpace(lang))
		if key != "" {
			other[key] = struct{}{}
		}
	}

	var out []string
	seen := make(map[string]struct{}, len(a))
	for _, lang := range a {
		trimmed := strings.TrimSpace(lang)
		key := strings.ToLower(trimmed)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		if _, ok := other[key]; ok {
			seen[key] = struct{}{}
			out = append(out, trimmed)
		}
	}
	return out
}

// both returns trimmed a and b when neither is blank.
func both(a, b string) (string, string, bool) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
