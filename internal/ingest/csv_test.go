package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/weddingtools/seating-planner/internal/guest"
)

const exportHeader = "first name,last name,tags,party,rsvp,meal,baby chair," +
	`"do you need a car park coupon? 您需要停车券吗？",` +
	`"if you have any other comments or requests not mentioned above, feel free to leave them here. 如果您有其他未提及的备注或需求，也欢迎在此填写.",comments`

func TestParseGuestList(t *testing.T) {
	t.Parallel()

	input := exportHeader + "\n" +
		"Ada,Tan,Family,tan-household,Joyfully Accept,Fish,Yes,Yes please,Near the aircon,plus one\n" +
		"Ben,Lim,,,Regretfully Decline,,,,,\n" +
		",,,,,,,,,\n"

	file, err := Parse(strings.NewReader(input), DefaultColumns())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(file.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(file.Records))
	}

	ada := file.Records[0]
	if ada.ID != 1 {
		t.Fatalf("expected sequence ID 1, got %d", ada.ID)
	}
	if ada.FullName != "Ada Tan" {
		t.Fatalf("unexpected name: %q", ada.FullName)
	}
	if ada.CategoryKey != "family" || ada.PartyID != "tan-household" {
		t.Fatalf("unexpected grouping fields: %q / %q", ada.CategoryKey, ada.PartyID)
	}
	if ada.CarPark != "Yes please" {
		t.Fatalf("long car-park header not matched: %q", ada.CarPark)
	}
	if ada.Remarks != "Near the aircon | plus one" {
		t.Fatalf("unexpected remarks: %q", ada.Remarks)
	}

	if file.Records[1].Status != guest.StatusDeclined {
		t.Fatalf("expected declined, got %s", file.Records[1].Status)
	}

	// A row with both name fields empty is still processed.
	blank := file.Records[2]
	if blank.FullName != "" {
		t.Fatalf("expected empty name, got %q", blank.FullName)
	}
	if blank.Status != guest.StatusPending {
		t.Fatalf("expected pending for blank RSVP, got %s", blank.Status)
	}
}

func TestParseHeaderNormalization(t *testing.T) {
	t.Parallel()

	input := "First Name , LAST NAME ,Tags,Party,RSVP,Meal,Baby Chair,Do you need a car park coupon,If you have any other comments or requests not mentioned above,Comments\n" +
		"Ada,Tan,Family,,yes,,,,,\n"

	file, err := Parse(strings.NewReader(input), DefaultColumns())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Records[0].FullName != "Ada Tan" {
		t.Fatalf("case-insensitive headers not matched: %q", file.Records[0].FullName)
	}
}

func TestParseMissingColumn(t *testing.T) {
	t.Parallel()

	input := "first name,last name,tags,party,meal,baby chair,do you need a car park coupon,if you have any other comments or requests not mentioned above,comments\n"

	_, err := Parse(strings.NewReader(input), DefaultColumns())
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), "rsvp") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := Parse(strings.NewReader(""), DefaultColumns()); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParseShortRowsTolerated(t *testing.T) {
	t.Parallel()

	input := exportHeader + "\n" + "Ada,Tan,Family\n"

	file, err := Parse(strings.NewReader(input), DefaultColumns())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Records[0].FullName != "Ada Tan" {
		t.Fatalf("unexpected name: %q", file.Records[0].FullName)
	}
	if file.Records[0].Status != guest.StatusPending {
		t.Fatalf("missing RSVP cell should classify pending, got %s", file.Records[0].Status)
	}
}
