package guest

// Canonical field names produced by ingestion. Every record source
// (CSV today, anything else later) maps its own headers onto these.
const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldRSVP          = "rsvp"
	FieldTags          = "tags"
	FieldParty         = "party"
	FieldMeal          = "meal"
	FieldBabyChair     = "baby_chair"
	FieldCarPark       = "car_park"
	FieldOtherRequests = "other_requests"
	FieldComments      = "comments"
)

// Fields holds the canonical values of one raw guest row. Absent
// columns are simply absent keys; callers treat missing as empty.
type Fields map[string]string

// Status is the attendance bucket derived from the raw RSVP text.
type Status int

const (
	StatusAttending Status = iota
	StatusPending
	StatusDeclined
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusAttending:
		return "attending"
	case StatusPending:
		return "pending"
	case StatusDeclined:
		return "declined"
	default:
		return "unknown"
	}
}

// DefaultCategory is the bucket for guests whose tag field is blank.
// It participates in packing like any other category but is always
// processed last.
const DefaultCategory = "Uncategorised"

// Record is the normalized representation of one guest row. It is
// built once at ingestion and never mutated afterwards, except for
// Table which the packer fills in.
type Record struct {
	// ID is a sequence number assigned at ingestion; it is the
	// stable identity used throughout the pipeline instead of the
	// row's position in any particular slice.
	ID int

	FullName string
	RSVP     string
	Status   Status

	// CategoryKey is the normalized grouping key (trimmed,
	// lower-cased, internal whitespace stripped) so inconsistently
	// typed tags still land on the same tables. CategoryLabel keeps
	// the trimmed raw form for display.
	CategoryKey   string
	CategoryLabel string

	// PartyID groups guests that must share a table. Empty means
	// the guest is a party of one.
	PartyID string

	Meal      string
	BabyChair string
	CarPark   string
	Remarks   string
	Tags      string

	// Source is the raw CSV row, kept so the pending and declined
	// sheets can reproduce the export untouched.
	Source []string

	// Table is the assigned table number, 0 until packing runs.
	Table int
}
