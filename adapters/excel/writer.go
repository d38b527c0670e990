// Package excel persists curated color datasets to spreadsheet formats.
// The writer handles both .xlsx and .csv by file extension; xlsx output
// additionally carries a summary sheet with per-family counts.
package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chromacull/domain/color"
	"chromacull/internal/errors"
	"chromacull/ports"

	"github.com/xuri/excelize/v2"
)

const dataSheet = "Colors"

var header = []string{"Hex", "Name", "Family", "R", "G", "B", "H", "S", "L", "HueMin", "HueMax"}

// DatasetWriter writes color records to Excel or CSV files.
type DatasetWriter struct{}

func NewDatasetWriter() *DatasetWriter {
	return &DatasetWriter{}
}

var _ ports.DatasetWriterPort = (*DatasetWriter)(nil)

// Write renders records to path, choosing the format from the extension.
// Unknown extensions default to xlsx.
func (w *DatasetWriter) Write(path string, records []color.Record) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return w.writeCSV(path, records)
	default:
		return w.writeExcel(path, records)
	}
}

func recordRow(c color.Record) []interface{} {
	return []interface{}{
		c.Hex, c.Name, string(c.Family),
		c.RGB.R, c.RGB.G, c.RGB.B,
		c.HSL.H, c.HSL.S, c.HSL.L,
		c.HueRange[0], c.HueRange[1],
	}
}

func (w *DatasetWriter) writeExcel(path string, records []color.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return errors.Wrap(err, "failed to prepare workbook")
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(dataSheet, "A1", &headerRow); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}

	for i, c := range records {
		cell := fmt.Sprintf("A%d", i+2)
		row := recordRow(c)
		if err := f.SetSheetRow(dataSheet, cell, &row); err != nil {
			return errors.Wrap(err, "failed to write record row")
		}
	}

	if err := w.writeSummarySheet(f, records); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "failed to save workbook")
	}
	return nil
}

// writeSummarySheet adds per-family counts, sorted descending so the
// dominant families sit on top.
func (w *DatasetWriter) writeSummarySheet(f *excelize.File, records []color.Record) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "failed to create summary sheet")
	}

	counts := make(map[color.FamilyTag]int)
	for _, c := range records {
		counts[c.Family]++
	}
	families := make([]color.FamilyTag, 0, len(counts))
	for fam := range counts {
		families = append(families, fam)
	}
	sort.Slice(families, func(i, j int) bool {
		if counts[families[i]] != counts[families[j]] {
			return counts[families[i]] > counts[families[j]]
		}
		return families[i] < families[j]
	})

	title := []interface{}{"Family", "Count"}
	if err := f.SetSheetRow(sheet, "A1", &title); err != nil {
		return errors.Wrap(err, "failed to write summary header")
	}
	for i, fam := range families {
		row := []interface{}{string(fam), counts[fam]}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return errors.Wrap(err, "failed to write summary row")
		}
	}
	return nil
}

func (w *DatasetWriter) writeCSV(path string, records []color.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create csv file")
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for _, c := range records {
		row := recordRow(c)
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprintf("%v", v)
		}
		if err := cw.Write(cells); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush csv")
}
