package enums

type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusVerified ListingStatus = "verified"
	ListingStatusRejected ListingStatus = "rejected"
)
