// Package ingest reads the raw RSVP CSV export and maps its columns
// onto the canonical guest fields. Header matching is forgiving:
// headers are trimmed and lower-cased, and the verbose export
// headers (which carry bilingual suffixes) are matched by prefix.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/weddingtools/seating-planner/internal/guest"
)

// Columns maps canonical guest fields to the CSV headers (or header
// prefixes) that carry them. Values are compared case-insensitively
// against trimmed headers.
type Columns struct {
	FirstName     string `yaml:"first_name"`
	LastName      string `yaml:"last_name"`
	RSVP          string `yaml:"rsvp"`
	Tags          string `yaml:"tags"`
	Party         string `yaml:"party"`
	Meal          string `yaml:"meal"`
	BabyChair     string `yaml:"baby_chair"`
	CarPark       string `yaml:"car_park"`
	OtherRequests string `yaml:"other_requests"`
	Comments      string `yaml:"comments"`
}

// DefaultColumns matches the headers of the wedding RSVP export this
// tool was built for. The car-park and other-requests headers are
// long bilingual sentences, so only their stable prefixes are pinned.
func DefaultColumns() Columns {
	return Columns{
		FirstName:     "first name",
		LastName:      "last name",
		RSVP:          "rsvp",
		Tags:          "tags",
		Party:         "party",
		Meal:          "meal",
		BabyChair:     "baby chair",
		CarPark:       "do you need a car park coupon",
		OtherRequests: "if you have any other comments or requests not mentioned above",
		Comments:      "comments",
	}
}

// File is one parsed guest list: the raw header (kept so the pending
// and declined sheets can reproduce the export as-is) and one Record
// per data row, with sequence IDs assigned in row order.
type File struct {
	Header  []string
	Records []guest.Record
}

// Parse reads a guest-list CSV. Every canonical column must resolve
// to a header or the parse fails before any classification happens;
// individual rows are never rejected, even with empty names.
func Parse(r io.Reader, cols Columns) (*File, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	header := rows[0]
	indexes, err := resolveColumns(header, cols)
	if err != nil {
		return nil, err
	}

	file := &File{
		Header:  header,
		Records: make([]guest.Record, 0, len(rows)-1),
	}
	for i, row := range rows[1:] {
		fields := make(guest.Fields, len(indexes))
		for field, idx := range indexes {
			if idx < len(row) {
				fields[field] = row[idx]
			}
		}
		file.Records = append(file.Records, guest.FromRow(i+1, fields, row))
	}

	return file, nil
}

// resolveColumns maps each canonical field to a header index. Exact
// matches win over prefix matches so a short header like "comments"
// cannot be shadowed by a longer one.
func resolveColumns(header []string, cols Columns) (map[string]int, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	wanted := map[string]string{
		guest.FieldFirstName:     cols.FirstName,
		guest.FieldLastName:      cols.LastName,
		guest.FieldRSVP:          cols.RSVP,
		guest.FieldTags:          cols.Tags,
		guest.FieldParty:         cols.Party,
		guest.FieldMeal:          cols.Meal,
		guest.FieldBabyChair:     cols.BabyChair,
		guest.FieldCarPark:       cols.CarPark,
		guest.FieldOtherRequests: cols.OtherRequests,
		guest.FieldComments:      cols.Comments,
	}

	indexes := make(map[string]int, len(wanted))
	for field, name := range wanted {
		idx, ok := findColumn(normalized, strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		indexes[field] = idx
	}
	return indexes, nil
}

func findColumn(headers []string, name string) (int, bool) {
	for i, h := range headers {
		if h == name {
			return i, true
		}
	}
	for i, h := range headers {
		if strings.HasPrefix(h, name) {
			return i, true
		}
	}
	return 0, false
}
