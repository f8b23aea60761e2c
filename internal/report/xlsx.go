package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/weddingtools/seating-planner/internal/guest"
)

const (
	// SheetSeating holds the per-table seating plan.
	SheetSeating = "SeatingPlan"
	// SheetPending holds raw rows whose RSVP is still blank.
	SheetPending = "Pending_RSVP"
	// SheetDeclined holds raw rows that declined.
	SheetDeclined = "Declined"
)

// Workbook builds the multi-sheet Excel report. The seating sheet
// stacks table blocks vertically: a "Table #N" marker row, a
// column-label row, the guest rows, then a blank separator. Pending
// and declined sheets reproduce the raw export rows under the
// original header.
func Workbook(blocks []TableBlock, header []string, pending, declined []guest.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetSeating); err != nil {
		return nil, fmt.Errorf("rename seating sheet: %w", err)
	}

	if err := writeSeatingSheet(f, blocks); err != nil {
		return nil, err
	}
	if err := writeRawSheet(f, SheetPending, header, pending); err != nil {
		return nil, err
	}
	if err := writeRawSheet(f, SheetDeclined, header, declined); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSeatingSheet(f *excelize.File, blocks []TableBlock) error {
	line := 1
	for _, block := range blocks {
		marker := []interface{}{fmt.Sprintf("Table #%d", block.Number)}
		if err := f.SetSheetRow(SheetSeating, cell(line), &marker); err != nil {
			return fmt.Errorf("write table marker: %w", err)
		}
		line++

		labels := make([]interface{}, len(SeatingColumns))
		labels[0] = ""
		for i, label := range SeatingColumns[1:] {
			labels[i+1] = label
		}
		if err := f.SetSheetRow(SheetSeating, cell(line), &labels); err != nil {
			return fmt.Errorf("write column labels: %w", err)
		}
		line++

		for _, row := range block.Rows {
			values := []interface{}{row.Seat, row.Name, row.Meal, row.BabyChair, row.CarPark, row.Remarks, row.Tags}
			if err := f.SetSheetRow(SheetSeating, cell(line), &values); err != nil {
				return fmt.Errorf("write guest row: %w", err)
			}
			line++
		}

		// Blank separator row between tables.
		line++
	}
	return nil
}

func writeRawSheet(f *excelize.File, name string, header []string, records []guest.Record) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}

	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := f.SetSheetRow(name, cell(1), &values); err != nil {
		return fmt.Errorf("write header of %s: %w", name, err)
	}

	for i, r := range records {
		values := make([]interface{}, len(r.Source))
		for j, v := range r.Source {
			values[j] = v
		}
		if err := f.SetSheetRow(name, cell(i+2), &values); err != nil {
			return fmt.Errorf("write row of %s: %w", name, err)
		}
	}
	return nil
}

func cell(line int) string {
	return fmt.Sprintf("A%d", line)
}
