// Package report writes one row per upload attempt as CSV or XLSX.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"imgupload/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

const sheetName = "Uploads"

// columns defines the header row.
var columns = []string{
	"Attempt ID",
	"File Name",
	"State",
	"Error Kind",
	"Error",
	"Result URL",
	"Started At",
	"Finished At",
	"Duration (ms)",
}

// Writer wraps csv.Writer for exporting completions as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteCompletions converts completions to rows and writes them. Nil entries are skipped.
func (w *Writer) WriteCompletions(completions []*domain.Completion) error {
	for _, c := range completions {
		if c == nil {
			continue
		}
		if err := w.csv.Write(completionToRow(c)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteXLSX writes the same rows as a single-sheet workbook.
func WriteXLSX(out io.Writer, completions []*domain.Completion) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	rowNum := 1
	writeRow := func(values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		rowNum++
		return f.SetSheetRow(sheetName, cell, &row)
	}

	if err := writeRow(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range completions {
		if c == nil {
			continue
		}
		if err := writeRow(completionToRow(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", rowNum, err)
		}
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile writes completions to path. A ".xlsx" extension selects a
// workbook; anything else gets CSV with a BOM.
func WriteFile(path string, completions []*domain.Completion) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer out.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		if err := WriteXLSX(out, completions); err != nil {
			return err
		}
		return out.Close()
	}

	if _, err := out.Write(BOM); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := w.WriteCompletions(completions); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return out.Close()
}

// completionToRow converts a single completion to a row matching columns.
// Failed attempts leave the result column empty.
func completionToRow(c *domain.Completion) []string {
	row := make([]string, len(columns))
	if a := c.Attempt; a != nil {
		row[0] = a.ID.String()
		row[1] = a.FileName
		row[2] = string(a.State)
		row[6] = formatTime(a.StartedAt)
		row[7] = formatTime(a.FinishedAt)
		row[8] = strconv.FormatInt(a.Duration().Milliseconds(), 10)
	}
	if c.Err != nil {
		row[3] = domain.ErrorKind(c.Err)
		row[4] = c.Err.Error()
		return row
	}
	if url, ok := c.Result.Field("url"); ok {
		row[5] = url
	}
	return row
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
