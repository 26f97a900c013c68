package compatibility

import (
	"testing"

	"github.com/ivankudzin/roomshare/backend/internal/domain/enums"
	"github.com/ivankudzin/roomshare/backend/internal/domain/model"
)

func TestInsightsEmptyRoommates(t *testing.T) {
	got := Insights(model.Seeker{Gender: enums.GenderFemale}, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil insights, got %#v", got)
	}
}

func TestInsightsOrderAndPhrasing(t *testing.T) {
	seeker := model.Seeker{
		Gender:     enums.GenderFemale,
		Occupation: enums.OccupationStudent,
		Preferences: &model.Preferences{
			Smoking:          enums.NonSmoker,
			FoodPreference:   enums.FoodVegetarian,
			CleanlinessLevel: enums.CleanlinessVeryClean,
			SleepTime:        enums.SleepNight,
			Languages:        []string{"English"},
		},
	}
	roommates := []model.Seeker{
		{
			Gender:     enums.GenderFemale,
			Occupation: enums.OccupationStudent,
			Preferences: &model.Preferences{
				Smoking:          enums.NonSmoker,
				FoodPreference:   enums.FoodVegetarian,
				CleanlinessLevel: enums.CleanlinessVeryClean,
				SleepTime:        enums.SleepNight,
				Languages:        []string{"english"},
			},
		},
		{
			Gender:     enums.GenderFemale,
			Occupation: enums.OccupationEmployee,
			Preferences: &model.Preferences{
				Smoking:          enums.Smoker,
				FoodPreference:   enums.FoodNonVegetarian,
				CleanlinessLevel: enums.CleanlinessVeryClean,
				SleepTime:        enums.SleepEarly,
				Languages:        []string{"Hindi"},
			},
		},
		{
			Gender:     enums.GenderMale,
			Occupation: enums.OccupationStudent,
			Preferences: &model.Preferences{
				Smoking:          enums.NonSmoker,
				FoodPreference:   enums.FoodVegetarian,
				CleanlinessLevel: enums.CleanlinessRelaxed,
				SleepTime:        enums.SleepNight,
			},
		},
	}

	want := []Insight{
		{Type: InsightMatch, Category: CategoryGender, Text: "2 roommates share your gender"},
		{Type: InsightMatch, Category: CategoryOccupation, Text: "2 roommates share your occupation (Student)"},
		{Type: InsightMatch, Category: CategoryFood, Text: "2 roommates share your food preference (Vegetarian)"},
		{Type: InsightWarning, Category: CategoryFood, Text: "1 roommate has a different food preference"},
		{Type: InsightWarning, Category: CategorySmoking, Text: "1 roommate smokes"},
		{Type: InsightMatch, Category: CategorySmoking, Text: "2 roommates are non-smokers"},
		{Type: InsightMatch, Category: CategorySleep, Text: "2 roommates keep your sleep schedule"},
		{Type: InsightMatch, Category: CategoryCleanliness, Text: "2 roommates share your cleanliness standard"},
		{Type: InsightInfo, Category: CategoryLanguages, Text: "You can talk in English"},
	}

	got := Insights(seeker, roommates)
	if len(got) != len(want) {
		t.Fatalf("unexpected insights count: got %d want %d (%+v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected insight #%d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestInsightsSingularPhrasing(t *testing.T) {
	seeker := model.Seeker{Preferences: &model.Preferences{
		Smoking:          enums.NonSmoker,
		CleanlinessLevel: enums.CleanlinessModerate,
	}}
	roommates := []model.Seeker{{Preferences: &model.Preferences{
		Smoking:          enums.NonSmoker,
		CleanlinessLevel: enums.CleanlinessModerate,
	}}}

	got := Insights(seeker, roommates)
	if len(got) != 2 {
		t.Fatalf("unexpected insights count: got %d want 2 (%+v)", len(got), got)
	}
	if got[0].Text != "1 roommate is a non-smoker" {
		t.Fatalf("unexpected smoking text: %q", got[0].Text)
	}
	if got[1].Text != "1 roommate shares your cleanliness standard" {
		t.Fatalf("unexpected cleanliness text: %q", got[1].Text)
	}
}

func TestInsightsSmokingOnlyForNonSmokingSeeker(t *testing.T) {
	seeker := model.Seeker{Preferences: &model.Preferences{Smoking: enums.Smoker}}
	roommates := []model.Seeker{
		{Preferences: &model.Preferences{Smoking: enums.Smoker}},
		{Preferences: &model.Preferences{Smoking: enums.NonSmoker}},
	}

	for _, insight := range Insights(seeker, roommates) {
		if insight.Category == CategorySmoking {
			t.Fatalf("unexpected smoking insight for smoking seeker: %+v", insight)
		}
	}
}
