package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"resumelens/internal/domain"
)

const sheetName = "Analysis History"

// columns defines the header row of the history sheet.
var columns = []string{
	"Document Name",
	"Perspective",
	"Model",
	"Status",
	"Excerpt",
	"Created At",
}

// WriteHistory writes the session's analysis history as an xlsx workbook
// with a header row followed by one row per run, in settle order.
func WriteHistory(w io.Writer, records []domain.AnalysisRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("resolving header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, rec := range records {
		values := []interface{}{
			rec.DocumentName,
			string(rec.Perspective),
			rec.Model,
			rec.Status,
			rec.Excerpt,
			rec.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("resolving cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
