package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"mindful/internal/core"
	"mindful/internal/metrics"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Entries"

var header = []string{"Date", "Amount", "Category", "Merchant", "Tags", "Alignment", "Reflection"}

func row(e core.Entry) []string {
	return []string{
		e.DateISO,
		core.FormatCents(e.AmountCents),
		e.Category,
		e.Merchant,
		strings.Join(e.Tags, "; "),
		metrics.Alignment(e.Tags).Label.String(),
		e.Reflection,
	}
}

// WriteCSV writes entries as CSV, preceded by a UTF-8 BOM so spreadsheet
// applications pick the right encoding.
func WriteCSV(w io.Writer, entries []core.Entry) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		if err := writer.Write(row(e)); err != nil {
			return fmt.Errorf("write entry %s: %w", e.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes entries as a single-sheet workbook. Amounts are numeric
// cells so the sheet can sum them.
func WriteXLSX(w io.Writer, entries []core.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := setRow(f, 1, toCells(header)); err != nil {
		return err
	}
	for i, e := range entries {
		cells := toCells(row(e))
		cells[1] = core.FromCents(e.AmountCents).InexactFloat64()
		if err := setRow(f, i+2, cells); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 12, "B": 12, "C": 15, "D": 20, "E": 25, "F": 12, "G": 40}
	for col, width := range widths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("set width of %s: %w", col, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, n int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}
	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
