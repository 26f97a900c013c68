// Package compatibility scores how well a seeker fits an accommodation: its
// house rules and the people already living there.
package compatibility

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

const (
	roommateShare = 0.7
	ruleShare     = 0.3

	EmptyHouseSummary = "Be the first one here!"
)

type RoommateResult struct {
	SeekerID   uuid.UUID
	Name       string
	Occupation string
	PairResult
}

type Result struct {
	Allowed       bool
	RuleScore     int
	RoommateScore int
	Score         int
	Roommates     []RoommateResult
	Insights      []Insight
}

func (r Result) RoommateCount() int {
	return len(r.Roommates)
}

// Evaluate runs the full pipeline for one accommodation. The caller decides
// what to do with a result whose Allowed is false; ranked lists drop it.
func Evaluate(seeker model.Seeker, rules *model.HouseRules, roommates []model.Seeker) Result {
	result := Result{
		Allowed:   Allowed(seeker, rules),
		RuleScore: RuleScore(seeker, rules),
		Roommates: make([]RoommateResult, 0, len(roommates)),
	}

	if len(roommates) > 0 {
		total := 0
		for _, roommate := range roommates {
			pair := Compare(seeker, roommate)
			total += pair.Score
			result.Roommates = append(result.Roommates, RoommateResult{
				SeekerID:   roommate.ID,
				Name:       roommate.Name,
				Occupation: roommate.Occupation,
				PairResult: pair,
			})
		}
		result.RoommateScore = clampScore(math.Round(float64(total) / float64(len(roommates))))
		result.Score = Blend(result.RoommateScore, result.RuleScore)

		sort.SliceStable(result.Roommates, func(i, j int) bool {
			return result.Roommates[i].Score > result.Roommates[j].Score
		})
	} else {
		result.Score = result.RuleScore
	}

	result.Insights = Insights(seeker, roommates)
	return result
}

// Blend mixes the roommate and rule scores into the final score.
func Blend(roommateScore, ruleScore int) int {
	return clampScore(math.Round(float64(roommateScore)*roommateShare + float64(ruleScore)*ruleShare))
}

// Summary picks the one-line insight shown in ranked lists.
func Summary(result Result) string {
	if len(result.Roommates) == 0 {
		return EmptyHouseSummary
	}
	for _, insight := range result.Insights {
		if insight.Type == InsightMatch {
			return insight.Text
		}
	}
	return ""
}
