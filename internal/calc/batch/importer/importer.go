// Package importer reads batch queries from a spreadsheet and writes batch
// results back to one.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Optika/internal/calc/batch"
	"Optika/internal/calc/simulation"
	"Optika/internal/optics"

	"github.com/xuri/excelize/v2"
)

// XLSXMIME is the content type of the exported workbook.
const XLSXMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrBadSheet = errors.New("bad sheet")

// Read takes the first sheet of an .xlsx workbook. The header row is
// "kind" followed by parameter names; every later row is one query.
// Blank cells are left out so the defaults apply, and a row with an
// unreadable number becomes an item that carries its error.
func Read(r io.Reader) ([]batch.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSheet, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one query", ErrBadSheet)
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) == 0 || !strings.EqualFold(header[0], "kind") {
		return nil, fmt.Errorf("%w: first column must be kind", ErrBadSheet)
	}

	var items []batch.Item
	for i := 1; i < len(rows); i++ {
		item, ok := parseRow(header, rows[i], i+1)
		if ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no queries", ErrBadSheet)
	}
	return items, nil
}

func parseRow(header, row []string, n int) (batch.Item, bool) {
	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		return batch.Item{}, false
	}
	item := batch.Item{
		Ref:    "row " + strconv.Itoa(n),
		Kind:   simulation.Kind(strings.TrimSpace(row[0])),
		Params: map[string]float64{},
	}
	for col := 1; col < len(row) && col < len(header); col++ {
		cell := strings.TrimSpace(row[col])
		if cell == "" || header[col] == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.Replace(cell, ",", ".", 1), 64)
		if err != nil || !optics.Finite(v) {
			item.Err = fmt.Sprintf("%s: %s is not a number: %q", item.Ref, header[col], cell)
			break
		}
		item.Params[header[col]] = v
	}
	return item, true
}

// Write exports results as a single-sheet workbook.
func Write(w io.Writer, res batch.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	header := []interface{}{"Ref", "Kind", "Status", "Inputs", "Outputs", "Warning", "Error"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range res.Results {
		row := []interface{}{r.Ref, string(r.Kind), "", "", "", "", r.Error}
		if o := r.Outcome; o != nil {
			row[2] = string(o.Status)
			row[3] = join(o.Inputs)
			row[4] = join(o.Outputs)
			row[5] = o.Warning
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func join(qs []simulation.Quantity) string {
	parts := make([]string, 0, len(qs))
	for _, q := range qs {
		parts = append(parts, q.Name+" = "+q.Format())
	}
	return strings.Join(parts, "; ")
}
