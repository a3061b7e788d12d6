// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table loads tabular data, from CSV or XLSX files, as
// columns of cell text and extracts point series from pairs of
// columns.
package table // import "github.com/aclements/go-graphpaper/table"

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gwenn/yacr"
	"github.com/xuri/excelize/v2"
)

// Table is a set of named columns of cell text. All columns have the
// same length.
type Table struct {
	Header  []string
	Columns [][]string
}

// Rows returns the number of data rows in t.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// fromRecords builds a table from a header record and data records.
// Short records are padded with empty cells and cells beyond the
// header are dropped.
func fromRecords(header []string, records [][]string) *Table {
	t := &Table{Header: header, Columns: make([][]string, len(header))}
	for i := range t.Columns {
		t.Columns[i] = make([]string, 0, len(records))
	}
	for _, rec := range records {
		for i := range t.Columns {
			var cell string
			if i < len(rec) {
				cell = rec[i]
			}
			t.Columns[i] = append(t.Columns[i], cell)
		}
	}
	return t
}

// ReadCSV reads a table from CSV data. The first record is the
// header. The field separator is guessed from the data and fields may
// be quoted. Blank lines are skipped.
func ReadCSV(r io.Reader) (*Table, error) {
	rd := yacr.NewReader(r, ',', true, true)
	rd.Trim = true

	var records [][]string
	var rec []string
	for rd.Scan() {
		rec = append(rec, rd.Text())
		if !rd.EndOfRecord() {
			continue
		}
		if !(len(rec) == 1 && rec[0] == "") {
			records = append(records, rec)
		}
		rec = nil
	}
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if rec != nil {
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading CSV: no header")
	}
	return fromRecords(records[0], records[1:]), nil
}

// LoadCSV reads a table from the CSV file at path.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadXLSX reads a table from sheet of the workbook at path. If sheet
// is "", it reads the first sheet. The first row is the header.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: sheet %q: no header", path, sheet)
	}
	return fromRecords(rows[0], rows[1:]), nil
}

// Load reads a table from path, choosing the format from the file
// extension. sheet is used only for workbooks.
func Load(path, sheet string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	}
	return LoadCSV(path)
}
