package guest

import (
	"strings"
	"unicode"
)

const declinePhrase = "regretfully decline"

// remarksSeparator joins the two free-text remark fields when both
// are present.
const remarksSeparator = " | "

// FromRow builds a Record from the canonical fields of one raw row.
// A row with both name fields empty still yields a record with an
// empty FullName; rows are never dropped here.
func FromRow(id int, fields Fields, source []string) Record {
	first := fields[FieldFirstName]
	last := fields[FieldLastName]
	rsvp := fields[FieldRSVP]
	tags := strings.TrimSpace(fields[FieldTags])

	label := tags
	if label == "" {
		label = DefaultCategory
	}

	return Record{
		ID:            id,
		FullName:      strings.TrimSpace(first + " " + last),
		RSVP:          rsvp,
		Status:        statusOf(rsvp),
		CategoryKey:   NormalizeCategory(label),
		CategoryLabel: label,
		PartyID:       strings.TrimSpace(fields[FieldParty]),
		Meal:          strings.TrimSpace(fields[FieldMeal]),
		BabyChair:     strings.TrimSpace(fields[FieldBabyChair]),
		CarPark:       strings.TrimSpace(fields[FieldCarPark]),
		Remarks:       combineRemarks(fields[FieldOtherRequests], fields[FieldComments]),
		Tags:          tags,
		Source:        source,
	}
}

// statusOf classifies the raw RSVP text. Decline detection is
// exact-phrase based: only the literal phrase counts, not keywords
// like a stray "no" elsewhere in the text.
func statusOf(rsvp string) Status {
	if strings.TrimSpace(rsvp) == "" {
		return StatusPending
	}
	if strings.Contains(strings.ToLower(rsvp), declinePhrase) {
		return StatusDeclined
	}
	return StatusAttending
}

// NormalizeCategory turns a raw tag into the grouping key: trimmed,
// lower-cased, with all internal whitespace removed. Raw tags come
// from uncontrolled free text, so "Army Friends" and "armyfriends"
// must group together.
func NormalizeCategory(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, raw)
}

func combineRemarks(other, comments string) string {
	parts := make([]string, 0, 2)
	if v := strings.TrimSpace(other); v != "" {
		parts = append(parts, v)
	}
	if v := strings.TrimSpace(comments); v != "" {
		parts = append(parts, v)
	}
	return strings.Join(parts, remarksSeparator)
}
