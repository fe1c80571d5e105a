package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// WriteCSV emits the flattened report as key,value rows.
func WriteCSV(w io.Writer, flat map[string]string) error {
	cw := csv.NewWriter(w)
	for _, key := range sortedKeys(flat) {
		if err := cw.Write([]string{key, flat[key]}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX emits a single "Report" sheet: one header row of flattened
// paths, one row of values.
func WriteXLSX(w io.Writer, flat map[string]string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, key := range sortedKeys(flat) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, col+"1", key); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, col+"2", flat[key]); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// WritePDF emits a titled key/value grid, the same layout the original
// console printed.
func WritePDF(w io.Writer, title string, flat map[string]string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(80, 6, "Key", "1", 0, "L", false, 0, "")
	pdf.CellFormat(100, 6, "Value", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, key := range sortedKeys(flat) {
		pdf.CellFormat(80, 6, key, "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 6, flat[key], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
