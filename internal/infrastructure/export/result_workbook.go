// Package export renders aggregated inventory results as spreadsheets.
package export

import (
	"fmt"
	"io"

	appinv "github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the results
const SheetName = "Résultats"

// ResultWorkbook writes result rows to an .xlsx workbook, one header row
// followed by one row per group
type ResultWorkbook struct {
	creator string
}

// NewResultWorkbook creates a workbook exporter stamping creator in the
// document properties
func NewResultWorkbook(creator string) *ResultWorkbook {
	return &ResultWorkbook{creator: creator}
}

// ContentType returns the xlsx MIME type
func (w *ResultWorkbook) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension returns ".xlsx"
func (w *ResultWorkbook) Extension() string {
	return ".xlsx"
}

// Write renders rows into a workbook and writes it to out
func (w *ResultWorkbook) Write(out io.Writer, title string, rows []inventory.ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: title, Creator: w.creator}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	columns := Columns(rows)
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range rows {
		values := row.Values()
		cells := make([]interface{}, len(columns))
		for j, c := range columns {
			cells[j] = cellValue(values[c])
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, start, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Columns returns the header shared by all rows: every column any row
// carries, in result order
func Columns(rows []inventory.ResultRow) []string {
	var template inventory.ResultRow
	for _, r := range rows {
		if r.Product != "" {
			template.Product = r.Product
		}
		if r.JobID != nil {
			template.JobID = r.JobID
		}
		if r.EcartComptageID != nil {
			template.EcartComptageID = r.EcartComptageID
		}
		if len(r.Quantities) > len(template.Quantities) {
			template.Quantities = r.Quantities
		}
	}
	return template.Columns()
}

func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case *int:
		if t == nil {
			return nil
		}
		return *t
	case *int64:
		if t == nil {
			return nil
		}
		return *t
	case *bool:
		if t == nil {
			return nil
		}
		return *t
	}
	return v
}

var _ appinv.ResultExporter = (*ResultWorkbook)(nil)
