// Package planner runs the full pipeline for one guest list: ingest
// the CSV, classify attendance, pack tables, project the report, and
// build the Excel workbook. Each call works on its own copy of the
// data, so concurrent API requests never share table-numbering or
// party state.
package planner

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/weddingtools/seating-planner/internal/guest"
	"github.com/weddingtools/seating-planner/internal/ingest"
	"github.com/weddingtools/seating-planner/internal/report"
	"github.com/weddingtools/seating-planner/internal/seating"
	"github.com/weddingtools/seating-planner/internal/storage"
)

// Service generates seating plans using the current stored settings.
type Service struct {
	columns ingest.Columns
	storage storage.Storage
}

// NewService constructs a Service with the provided dependencies.
func NewService(store storage.Storage, columns ingest.Columns) *Service {
	return &Service{
		columns: columns,
		storage: store,
	}
}

// TableSummary describes one table for previews and logs.
type TableSummary struct {
	Number   int      `json:"table"`
	Category string   `json:"category"`
	Seats    int      `json:"seats"`
	Capacity int      `json:"capacity"`
	Names    []string `json:"names"`
}

// Result is the outcome of one plan generation. Workbook is ready to
// be saved or streamed; callers own closing it.
type Result struct {
	Workbook  *excelize.File
	Tables    []TableSummary
	Attending int
	Pending   int
	Declined  int
}

// Generate runs the pipeline over one CSV export.
func (s *Service) Generate(r io.Reader) (*Result, error) {
	settings, err := s.storage.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	file, err := ingest.Parse(r, s.columns)
	if err != nil {
		return nil, err
	}

	classified := guest.Classify(file.Records)

	packer := seating.New(
		seating.WithCapacity(settings.TableSize),
		seating.WithOrderPolicy(settings.CategoryOrder),
	)
	assignment, err := packer.Assign(classified.Attending)
	if err != nil {
		return nil, err
	}

	blocks := report.Project(assignment, classified.Attending, settings.TableSize)
	workbook, err := report.Workbook(blocks, file.Header, classified.Pending, classified.Declined)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	return &Result{
		Workbook:  workbook,
		Tables:    summarize(assignment, classified.Attending),
		Attending: len(classified.Attending),
		Pending:   len(classified.Pending),
		Declined:  len(classified.Declined),
	}, nil
}

// Filename stamps the download name with the generation time.
func Filename(now time.Time) string {
	return fmt.Sprintf("Wedding_SeatingPlan_%s.xlsx", now.Format("20060102_1504"))
}

func summarize(assignment seating.Assignment, attending []guest.Record) []TableSummary {
	byID := make(map[int]guest.Record, len(attending))
	for _, r := range attending {
		byID[r.ID] = r
	}

	summaries := make([]TableSummary, 0, len(assignment.Tables))
	for _, table := range assignment.Tables {
		summary := TableSummary{
			Number:   table.Number,
			Seats:    len(table.Guests),
			Capacity: table.Capacity,
			Names:    make([]string, 0, len(table.Guests)),
		}
		for _, id := range table.Guests {
			r := byID[id]
			if summary.Category == "" {
				summary.Category = r.CategoryLabel
			}
			summary.Names = append(summary.Names, r.FullName)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
