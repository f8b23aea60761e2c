// Package report turns a finished seating assignment into the
// spreadsheet report: per-table row blocks for the seating sheet and
// an Excel workbook with the pending and declined pass-through
// sheets.
package report

import (
	"sort"
	"strings"

	"github.com/weddingtools/seating-planner/internal/guest"
	"github.com/weddingtools/seating-planner/internal/seating"
)

// SeatingColumns are the column labels of the seating sheet. The
// first column carries the table marker and in-table row numbers.
var SeatingColumns = []string{"Table", "Name", "Meal preference", "Baby chair", "Car park coupon", "Remarks", "Tags"}

// Row is one display row of a table block. Padding rows keep their
// seat number but are otherwise blank.
type Row struct {
	Seat      int
	Name      string
	Meal      string
	BabyChair string
	CarPark   string
	Remarks   string
	Tags      string
}

// TableBlock is the ordered row sequence for one table.
type TableBlock struct {
	Number int
	Rows   []Row
}

// Project maps the assignment back onto guest records, producing one
// block per table. Guests are sorted by (category, party id, full
// name) with empty party IDs first; blocks are padded with blank
// rows up to displayRows. A table seating one guest over the nominal
// budget still emits every guest. Pure read-only transform.
func Project(assignment seating.Assignment, attending []guest.Record, displayRows int) []TableBlock {
	byTable := make(map[int][]guest.Record)
	for _, r := range attending {
		number := assignment.TableFor(r.ID)
		if number == 0 {
			continue
		}
		r.Table = number
		byTable[number] = append(byTable[number], r)
	}

	numbers := make([]int, 0, len(byTable))
	for n := range byTable {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	blocks := make([]TableBlock, 0, len(numbers))
	for _, number := range numbers {
		guests := byTable[number]
		sort.SliceStable(guests, func(i, j int) bool {
			a, b := guests[i], guests[j]
			if a.CategoryKey != b.CategoryKey {
				return a.CategoryKey < b.CategoryKey
			}
			if a.PartyID != b.PartyID {
				return a.PartyID < b.PartyID
			}
			return a.FullName < b.FullName
		})

		rowCount := len(guests)
		if rowCount < displayRows {
			rowCount = displayRows
		}

		block := TableBlock{Number: number, Rows: make([]Row, 0, rowCount)}
		for seat := 1; seat <= rowCount; seat++ {
			row := Row{Seat: seat}
			if seat <= len(guests) {
				g := guests[seat-1]
				row.Name = g.FullName
				row.Meal = cleanNo(g.Meal)
				row.BabyChair = cleanNo(g.BabyChair)
				row.CarPark = cleanNo(g.CarPark)
				row.Remarks = g.Remarks
				row.Tags = g.Tags
			}
			block.Rows = append(block.Rows, row)
		}
		blocks = append(blocks, block)
	}

	return blocks
}

// cleanNo blanks any preference cell containing "no" anywhere in its
// text. Display-layer rule only; it has nothing to do with RSVP
// decline detection.
func cleanNo(value string) string {
	if strings.Contains(strings.ToLower(value), "no") {
		return ""
	}
	return value
}
