package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/plan-merger/constants"
	"github.com/joseph-ayodele/plan-merger/internal/entity"
)

// ReportEntry is one successfully merged pair destined for the XLSX report.
type ReportEntry struct {
	Base   string
	Record *entity.IntegratedRecord
}

// BuildReportXLSX returns an XLSX workbook (as bytes) with one row per merged
// record.
func BuildReportXLSX(entries []ReportEntry) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Merged Crops"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defaultIndex, _ := f.GetSheetIndex("Sheet1"); defaultIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Base Name",
		"Crop ID",
		"Floor",
		"Grid",
		"Total Area (grids)",
		"Elements",
		"Estimated Rooms",
		"Prompt",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		rec := e.Record

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.Base)
		write(2, stringify(rec.CropID))
		write(3, stringify(rec.Floor))
		write(4, rec.GridDimensions.Resolution())

		elementTotal := len(rec.StructuralElements)
		if hints := rec.TrainingHints; hints != nil {
			write(5, hints.TotalAreaGrids)
			write(7, hints.EstimatedRoomCount)
		}
		write(6, elementTotal)
		write(8, rec.GeneratedPrompt)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 24)
	_ = f.SetColWidth(sheet, "C", "G", 14)
	_ = f.SetColWidth(sheet, "H", "H", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteReport builds the workbook and writes it to its fixed filename.
func WriteReport(outputDir string, entries []ReportEntry) (string, error) {
	data, err := BuildReportXLSX(entries)
	if err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, constants.ReportFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", constants.ReportFilename, err)
	}
	return path, nil
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
