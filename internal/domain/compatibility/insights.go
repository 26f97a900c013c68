package compatibility

import (
	"fmt"
	"strings"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

type InsightType string

const (
	InsightMatch   InsightType = "match"
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
)

const (
	CategoryGender      = "gender"
	CategoryOccupation  = "occupation"
	CategoryFood        = "food"
	CategorySmoking     = "smoking"
	CategorySleep       = "sleep"
	CategoryCleanliness = "cleanliness"
	CategoryLanguages   = "languages"
)

type Insight struct {
	Type     InsightType
	Category string
	Text     string
}

type insightCounts struct {
	gender, occupation         int
	sameFood, differentFood    int
	smokers, nonSmokers        int
	sameSleep, sameCleanliness int
}

// Insights summarises how the seeker relates to the current roommates.
// Categories always appear in the same order.
func Insights(seeker model.Seeker, roommates []model.Seeker) []Insight {
	out := []Insight{}
	if len(roommates) == 0 {
		return out
	}

	sp := seeker.Pref()
	seekerNonSmoker := strings.TrimSpace(sp.Smoking) == enums.NonSmoker

	var counts insightCounts
	var languages []string
	for _, roommate := range roommates {
		rp := roommate.Pref()
		if a, b, ok := both(seeker.Gender, roommate.Gender); ok && a == b {
			counts.gender++
		}
		if a, b, ok := both(seeker.Occupation, roommate.Occupation); ok && a == b {
			counts.occupation++
		}
		if a, b, ok := both(sp.FoodPreference, rp.FoodPreference); ok {
			if a == b {
				counts.sameFood++
			} else {
				counts.differentFood++
			}
		}
		if seekerNonSmoker {
			switch strings.TrimSpace(rp.Smoking) {
			case enums.Smoker:
				counts.smokers++
			case enums.NonSmoker:
				counts.nonSmokers++
			}
		}
		if a, b, ok := both(sp.SleepTime, rp.SleepTime); ok && a == b {
			counts.sameSleep++
		}
		if a, b, ok := both(sp.CleanlinessLevel, rp.CleanlinessLevel); ok && a == b {
			counts.sameCleanliness++
		}
		languages = mergeLanguages(languages, SharedLanguages(sp.Languages, rp.Languages))
	}

	if counts.gender > 0 {
		out = append(out, Insight{
			Type:     InsightMatch,
			Category: CategoryGender,
			Text:     fmt.Sprintf("%s your gender", roommatesVerb(counts.gender, "shares", "share")),
		})
	}
	if counts.occupation > 0 {
		out = append(out, Insight{
			Type:     InsightMatch,
			Category: CategoryOccupation,
			Text:     fmt.Sprintf("%s your occupation (%s)", roommatesVerb(counts.occupation, "shares", "share"), strings.TrimSpace(seeker.Occupation)),
		})
	}
	if counts.sameFood > 0 {
		out = append(out, Insight{
			Type:     InsightMatch,
			Category: CategoryFood,
			Text:     fmt.Sprintf("%s your food preference (%s)", roommatesVerb(counts.sameFood, "shares", "share"), strings.TrimSpace(sp.FoodPreference)),
		})
	}
	if counts.differentFood > 0 {
		out = append(out, Insight{
			Type:     InsightWarning,
			Category: CategoryFood,
			Text:     fmt.Sprintf("%s a different food preference", roommatesVerb(counts.differentFood, "has", "have")),
		})
	}
	if counts.smokers > 0 {
		out = append(out, Insight{
			Type:     InsightWarning,
			Category: CategorySmoking,
			Text:     roommatesVerb(counts.smokers, "smokes", "smoke"),
		})
	}
	if counts.nonSmokers > 0 {
		out = append(out, Insight{
			Type:     InsightMatch,
			Category: CategorySmoking,
			Text:     fmt.Sprintf("%s %s", roommatesVerb(counts.nonSmokers, "is a", "are"), plural(counts.nonSmokers, "non-smoker", "non-smokers")),
		})
	}
	if counts.sameSleep > 0 {
		out = append(out, Insight{
			Type:     InsightMatch,
			Category: CategorySleep,
			Text:     fmt.Sprintf("%s your sleep schedule", roommatesVerb(counts.sameSleep, "keeps", "keep")),
		})
	}
	if counts.sameCleanliness > 0 {
		out = append(out, Insight{
			Type:     InsightMatch,
			Category: CategoryCleanliness,
			Text:     fmt.Sprintf("%s your cleanliness standard", roommatesVerb(counts.sameCleanliness, "shares", "share")),
		})
	}
	if len(languages) > 0 {
		out = append(out, Insight{
			Type:     InsightInfo,
			Category: CategoryLanguages,
			Text:     "You can talk in " + strings.Join(languages, ", "),
		})
	}

	return out
}

// roommatesVerb renders "1 roommate shares" or "3 roommates share".
func roommatesVerb(n int, singular, pluralVerb string) string {
	if n == 1 {
		return "1 roommate " + singular
	}
	return fmt.Sprintf("%d roommates %s", n, pluralVerb)
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func mergeLanguages(dst, src []string) []string {
	for _, lang := range src {
		found := false
		for _, existing := range dst {
			if strings.EqualFold(existing, lang) {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, lang)
		}
	}
	return dst
}
