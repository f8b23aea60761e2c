package report

import (
	"fmt"
	"testing"

	"github.com/weddingtools/seating-planner/internal/guest"
	"github.com/weddingtools/seating-planner/internal/seating"
)

func attendee(id int, name, category, party string) guest.Record {
	return guest.FromRow(id, guest.Fields{
		guest.FieldFirstName: name,
		guest.FieldRSVP:      "Joyfully Accept",
		guest.FieldTags:      category,
		guest.FieldParty:     party,
	}, nil)
}

func mustAssign(t *testing.T, attending []guest.Record) seating.Assignment {
	t.Helper()
	assignment, err := seating.New().Assign(attending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return assignment
}

func TestProjectSortsAndPads(t *testing.T) {
	t.Parallel()

	attending := []guest.Record{
		attendee(1, "Zoe", "Family", ""),
		attendee(2, "Ben", "Family", "lims"),
		attendee(3, "Amy", "Family", "lims"),
	}

	blocks := Project(mustAssign(t, attending), attending, seating.DefaultCapacity)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	block := blocks[0]
	if block.Number != 1 {
		t.Fatalf("expected table 1, got %d", block.Number)
	}
	if len(block.Rows) != seating.DefaultCapacity {
		t.Fatalf("expected %d display rows, got %d", seating.DefaultCapacity, len(block.Rows))
	}

	// Empty party ID sorts first, then party members by name.
	wantNames := []string{"Zoe", "Amy", "Ben"}
	for i, want := range wantNames {
		if block.Rows[i].Name != want {
			t.Fatalf("row %d: expected %q, got %q", i, want, block.Rows[i].Name)
		}
	}

	for i, row := range block.Rows {
		if row.Seat != i+1 {
			t.Fatalf("row %d: expected seat %d, got %d", i, i+1, row.Seat)
		}
	}
	for _, row := range block.Rows[3:] {
		if row.Name != "" {
			t.Fatalf("expected padding row, got %q", row.Name)
		}
	}
}

func TestProjectEmitsEleventhGuestOnOverflowTable(t *testing.T) {
	t.Parallel()

	attending := make([]guest.Record, 0, 11)
	for i := 1; i <= 11; i++ {
		attending = append(attending, attendee(i, fmt.Sprintf("Guest %02d", i), "Family", ""))
	}

	blocks := Project(mustAssign(t, attending), attending, seating.DefaultCapacity)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if got := len(blocks[0].Rows); got != 11 {
		t.Fatalf("expected 11 rows on the overflow table, got %d", got)
	}
	if blocks[0].Rows[10].Name == "" {
		t.Fatalf("11th guest must still be emitted")
	}
}

func TestProjectCleansNoValues(t *testing.T) {
	t.Parallel()

	r := guest.FromRow(1, guest.Fields{
		guest.FieldFirstName:     "Ada",
		guest.FieldRSVP:          "Joyfully Accept",
		guest.FieldTags:          "Family",
		guest.FieldMeal:          "No beef",
		guest.FieldBabyChair:     "no",
		guest.FieldCarPark:       "Not needed",
		guest.FieldOtherRequests: "no nuts please",
	}, nil)
	attending := []guest.Record{r}

	blocks := Project(mustAssign(t, attending), attending, seating.DefaultCapacity)

	row := blocks[0].Rows[0]
	if row.Meal != "" || row.BabyChair != "" || row.CarPark != "" {
		t.Fatalf("preference cells containing 'no' must be blanked: %+v", row)
	}
	// The cleaning rule applies to preference cells only.
	if row.Remarks != "no nuts please" {
		t.Fatalf("remarks must not be cleaned, got %q", row.Remarks)
	}
}

func TestProjectSkipsUnassignedGuests(t *testing.T) {
	t.Parallel()

	attending := []guest.Record{attendee(1, "Ada", "Family", "")}
	assignment := mustAssign(t, attending)

	stranger := attendee(99, "Ghost", "Family", "")
	blocks := Project(assignment, append(attending, stranger), seating.DefaultCapacity)

	for _, row := range blocks[0].Rows {
		if row.Name == "Ghost" {
			t.Fatalf("unassigned guest must not appear in any block")
		}
	}
}
