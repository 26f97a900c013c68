package enums

// Seeker lifestyle preference values. Ordered dimensions list their values
// from one extreme to the other.
const (
	StayShortTerm = "Short-term (<3 months)"
	StayMedium    = "Medium (3-6 months)"
	StayLongTerm  = "Long-term (6+ months)"

	FoodVegetarian    = "Vegetarian"
	FoodNonVegetarian = "Non-Vegetarian"
	FoodVegan         = "Vegan"
	FoodNoPreference  = "No Preference"

	Smoker    = "Smoker"
	NonSmoker = "Non-Smoker"

	Drinks       = "Drinks"
	DoesNotDrink = "Doesn't Drink"

	GuestsWelcome    = "Guests Welcome"
	OccasionalGuests = "Occasional Guests"
	NoGuests         = "No Guests"

	CleanlinessVeryClean = "Very Clean"
	CleanlinessModerate  = "Moderate"
	CleanlinessRelaxed   = "Relaxed"

	NoiseQuiet    = "Quiet"
	NoiseModerate = "Moderate"
	NoiseLively   = "Lively"

	WorkRegular  = "Regular (9-5)"
	WorkFlexible = "Flexible"
	WorkNightOwl = "Night Owl"

	WakeEarly   = "Early (Before 7 AM)"
	WakeMorning = "Morning (7-9 AM)"
	WakeLate    = "Late (After 9 AM)"

	SleepEarly     = "Early (Before 10 PM)"
	SleepNight     = "Night (10 PM-12 AM)"
	SleepLateNight = "Late Night (After 12 AM)"

	PetsLove = "Love Pets"
	PetsOkay = "Okay with Pets"
	PetsNone = "No Pets"

	CooksDaily     = "Cooks Daily"
	CooksSometimes = "Sometimes"
	CooksRarely    = "Rarely/Never"

	SocialIntrovert = "Introvert"
	SocialAmbivert  = "Ambivert"
	SocialExtrovert = "Extrovert"

	SharingHappy    = "Happy to Share"
	SharingFlexible = "Flexible"
	SharingSeparate = "Prefer Separate"
)

// Accepted values per preference field. Scales run from one extreme to the
// other; the scoring engine relies on that order.
var (
	StayDurationScale = []string{StayShortTerm, StayMedium, StayLongTerm}
	FoodOptions       = []string{FoodVegetarian, FoodNonVegetarian, FoodVegan, FoodNoPreference}
	SmokingOptions    = []string{Smoker, NonSmoker}
	DrinkingOptions   = []string{Drinks, DoesNotDrink}
	GuestScale        = []string{GuestsWelcome, OccasionalGuests, NoGuests}
	CleanlinessScale  = []string{CleanlinessVeryClean, CleanlinessModerate, CleanlinessRelaxed}
	NoiseScale        = []string{NoiseQuiet, NoiseModerate, NoiseLively}
	WorkScheduleScale = []string{WorkRegular, WorkFlexible, WorkNightOwl}
	WakeUpScale       = []string{WakeEarly, WakeMorning, WakeLate}
	SleepScale        = []string{SleepEarly, SleepNight, SleepLateNight}
	PetScale          = []string{PetsLove, PetsOkay, PetsNone}
	CookingScale      = []string{CooksDaily, CooksSometimes, CooksRarely}
	SocialScale       = []string{SocialIntrovert, SocialAmbivert, SocialExtrovert}
	SharingScale      = []string{SharingHappy, SharingFlexible, SharingSeparate}
)
