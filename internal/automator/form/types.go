// Package form defines the common structs and logic shared by portal
// automator implementations.
package form

// ApplicantForm is the single input for one automation run. It is owned by
// the caller and treated as read-only for the duration of the run.
type ApplicantForm struct {
	// Biographic
	FullName       string
	PassportNumber string
	Nationality    string
	DateOfBirth    string // ISO (YYYY-MM-DD) or DD/MM/YYYY
	Gender         string
	Occupation     string
	Phone          string
	Email          string

	// Travel
	ArrivalDate    string
	DepartureDate  string
	PurposeOfVisit string
	HasVisa        bool
	VisaNumber     string

	// Transport
	TransportMode string // AIR, SEA, LAND
	TransportType string // e.g. COMMERCIAL FLIGHT, CHARTER
	FlightName    string // "CODE - NAME" form, e.g. "SQ - SINGAPORE AIRLINES"
	FlightNumber  string
	ArrivalPort   string

	// Address during stay
	AddressInCountry   string
	CountryOfResidence string

	// Declaration answers
	BaggageCount       int
	CarryingGoods      bool // customs: dutiable/restricted goods
	CarryingCurrency   bool // customs: currency over the reporting limit
	CarryingQuarantine bool // quarantine: animals, plants, fresh food
	HasSymptoms        bool // health declaration

	// Dependents travelling with the applicant, in card order.
	FamilyMembers []FamilyMember
}

// FamilyMember is the subset of applicant fields the portal collects for a
// dependent traveller.
type FamilyMember struct {
	FullName       string
	PassportNumber string
	Nationality    string
	DateOfBirth    string
	HasVisa        bool
	VisaNumber     string
}

// TravellerCount returns lead + dependents.
func (f *ApplicantForm) TravellerCount() int {
	return 1 + len(f.FamilyMembers)
}

// IsGroup reports whether the caller supplied dependents. Navigators must
// still confirm the group branch against the live page; the portal decides
// the flow shape.
func (f *ApplicantForm) IsGroup() bool {
	return len(f.FamilyMembers) > 0
}
