// Package xlsxsheet reads the assets of a bulk import from an XLSX
// workbook. The first sheet is used and its first row must name the
// columns: tag, name, category_id, condition, status, and entry_date.
// Columns may appear in any order and the name column is optional.
package xlsxsheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/orbitechz/GPC-Backend/pkg/core/model"
	"github.com/orbitechz/GPC-Backend/pkg/core/usecase/assetsuc"
	"github.com/tealeg/xlsx/v3"
)

// Column names which are expected in the header row.
const (
	ColTag        = "tag"
	ColName       = "name"
	ColCategoryID = "category_id"
	ColCondition  = "condition"
	ColStatus     = "status"
	ColEntryDate  = "entry_date"
)

var requiredCols = []string{
	ColTag, ColCategoryID, ColCondition, ColStatus, ColEntryDate,
}

// ErrNoSheet is returned when the workbook has no sheets.
var ErrNoSheet = errors.New("workbook has no sheets")

// Open reads the path XLSX file. See Read.
func Open(path string) ([]assetsuc.ImportRow, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return readFile(f)
}

// Read parses data as an XLSX workbook and returns one ImportRow per
// non-empty row after the header row. A row which cannot be parsed
// is returned with its Err field set, so it can be reported together
// with the rows which fail validation. Empty cells leave their asset
// fields with zero values.
func Read(data []byte) ([]assetsuc.ImportRow, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	return readFile(f)
}

func readFile(f *xlsx.File) ([]assetsuc.ImportRow, error) {
	if len(f.Sheets) == 0 {
		return nil, ErrNoSheet
	}
	sh := f.Sheets[0]
	if sh.MaxRow == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sh.Name)
	}
	cols, err := header(sh)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sh.Name, err)
	}
	rows := make([]assetsuc.ImportRow, 0, sh.MaxRow-1)
	for i := 1; i < sh.MaxRow; i++ {
		vals, err := values(sh, i, cols)
		if err != nil {
			return nil, fmt.Errorf("sheet %q, row %d: %w", sh.Name, i+1, err)
		}
		if vals == nil {
			continue
		}
		a, err := parseAsset(vals)
		rows = append(rows, assetsuc.ImportRow{Line: i + 1, Asset: a, Err: err})
	}
	return rows, nil
}

// header maps the known column names to their indices.
func header(sh *xlsx.Sheet) (map[string]int, error) {
	cols := make(map[string]int)
	for j := 0; j < sh.MaxCol; j++ {
		c, err := sh.Cell(0, j)
		if err != nil {
			return nil, fmt.Errorf("reading header: %w", err)
		}
		name := strings.ToLower(strings.TrimSpace(c.String()))
		if name != "" {
			cols[name] = j
		}
	}
	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing %q column", name)
		}
	}
	return cols, nil
}

// values returns the trimmed cells of row i by their column names,
// or nil if all of them are empty.
func values(sh *xlsx.Sheet, i int, cols map[string]int) (map[string]cell, error) {
	vals := make(map[string]cell, len(cols))
	empty := true
	for name, j := range cols {
		c, err := sh.Cell(i, j)
		if err != nil {
			return nil, err
		}
		v := cell{s: strings.TrimSpace(c.String())}
		if name == ColEntryDate && c.IsTime() {
			if t, err := c.GetTime(false); err == nil {
				v.t = t
			}
		}
		if v.s != "" {
			empty = false
		}
		vals[name] = v
	}
	if empty {
		return nil, nil
	}
	return vals, nil
}

type cell struct {
	s string
	t time.Time
}

func parseAsset(vals map[string]cell) (*model.Asset, error) {
	a := &model.Asset{
		Tag:  vals[ColTag].s,
		Name: vals[ColName].s,
	}
	if s := vals[ColCategoryID].s; s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid category_id: %q", s)
		}
		a.Category = &model.Category{ID: id}
	}
	var err error
	if s := vals[ColCondition].s; s != "" {
		a.Condition, err = model.ParseCondition(strings.ToUpper(s))
		if err != nil {
			return nil, fmt.Errorf("invalid condition: %q", s)
		}
	}
	if s := vals[ColStatus].s; s != "" {
		a.Status, err = model.ParseStatus(strings.ToUpper(s))
		if err != nil {
			return nil, fmt.Errorf("invalid status: %q", s)
		}
	}
	switch d := vals[ColEntryDate]; {
	case !d.t.IsZero():
		a.EntryDate = d.t
	case d.s != "":
		a.EntryDate, err = time.Parse(time.DateOnly, d.s)
		if err != nil {
			return nil, fmt.Errorf("invalid entry_date: %q", d.s)
		}
	}
	return a, nil
}
