package enums

// House rule values as stored on accommodations.
const (
	GenderMaleOnly   = "Male Only"
	GenderFemaleOnly = "Female Only"
	GenderAny        = "Any"

	FoodPolicyVegOnly       = "Veg Only"
	FoodPolicyNonVegAllowed = "Non-Veg Allowed"
	FoodPolicyNoRestriction = "No Restriction"

	GuestsAllowed      = "Allowed"
	GuestsOccasionally = "Occasionally"
	GuestsNotAllowed   = "Not Allowed"

	NoisePolicyQuietZone     = "Quiet Zone"
	NoisePolicyModerate      = "Moderate"
	NoisePolicyNoRestriction = "No Restriction"

	OccupationStudent  = "Student"
	OccupationEmployee = "Employee"
	OccupationOther    = "Other"
	OccupationAny      = "Any"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)
