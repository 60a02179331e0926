package service

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"tableview/backend/helper"
	"tableview/backend/internal/model"
)

const (
	excelDateTimeLayout = "2006-01-02T15:04:05"
	excelTimeLayout     = "15:04:05"
)

type numFmtKind int

const (
	numFmtPlain numFmtKind = iota
	numFmtDate
	numFmtTime
)

// Built-in number formats that render a serial number as a date or a time.
var builtinDateFormats = map[int]numFmtKind{
	14: numFmtDate, 15: numFmtDate, 16: numFmtDate, 17: numFmtDate, 22: numFmtDate,
	18: numFmtTime, 19: numFmtTime, 20: numFmtTime, 21: numFmtTime,
	45: numFmtTime, 46: numFmtTime, 47: numFmtTime,
}

// ExcelParser reads the first worksheet of a workbook; its first non-blank row
// is the header. Cells are read as stored values, not as displayed text.
type ExcelParser struct{}

func (ExcelParser) Format() string { return "excel" }

func (ExcelParser) Parse(content []byte) (*model.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]

	all, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cells := excelCells{file: f, sheet: sheet, kinds: map[int]numFmtKind{}}
	rows := make([][]string, 0, len(all))
	width := 0
	for r, row := range all {
		if isBlankRow(row) {
			continue
		}
		for c, value := range row {
			if value == "" {
				continue
			}
			if row[c], err = cells.value(c+1, r+1, value); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	if len(rows) == 0 {
		return model.NewDataset(nil, nil), nil
	}

	header := make([]string, width)
	copy(header, rows[0])
	columns := helper.NormalizeHeaders(header)

	return model.NewDataset(columns, typedRows(width, rows[1:])), nil
}

// excelCells turns raw cell values back into text the type inference
// understands: booleans as TRUE/FALSE and date serials as ISO strings.
type excelCells struct {
	file  *excelize.File
	sheet string
	kinds map[int]numFmtKind
}

func (e excelCells) value(col, row int, raw string) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}

	cellType, err := e.file.GetCellType(e.sheet, cell)
	if err != nil {
		return "", err
	}
	switch cellType {
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return "TRUE", nil
		}
		return "FALSE", nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return raw, nil
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw, nil
	}

	kind, err := e.kind(cell)
	if err != nil {
		return "", err
	}
	switch kind {
	case numFmtDate:
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return raw, nil
		}
		return t.Format(excelDateTimeLayout), nil
	case numFmtTime:
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return raw, nil
		}
		return t.Format(excelTimeLayout), nil
	}
	return raw, nil
}

func (e excelCells) kind(cell string) (numFmtKind, error) {
	styleID, err := e.file.GetCellStyle(e.sheet, cell)
	if err != nil {
		return numFmtPlain, err
	}
	if kind, ok := e.kinds[styleID]; ok {
		return kind, nil
	}

	style, err := e.file.GetStyle(styleID)
	if err != nil {
		return numFmtPlain, err
	}

	kind := builtinDateFormats[style.NumFmt]
	if style.CustomNumFmt != nil {
		kind = customFormatKind(*style.CustomNumFmt)
	}
	e.kinds[styleID] = kind
	return kind, nil
}

// customFormatKind looks for date or time tokens outside quoted literals and
// bracketed sections such as colors or locales.
func customFormatKind(format string) numFmtKind {
	var b strings.Builder
	quoted, bracketed := false, false
	for _, r := range format {
		switch {
		case r == '"' && !bracketed:
			quoted = !quoted
		case r == '[' && !quoted:
			bracketed = true
		case r == ']' && bracketed:
			bracketed = false
		case !quoted && !bracketed:
			b.WriteRune(r)
		}
	}
	f := strings.ToLower(b.String())

	if strings.ContainsAny(f, "yd") {
		return numFmtDate
	}
	if strings.Contains(f, "h") || strings.Contains(f, "ss") {
		return numFmtTime
	}
	return numFmtPlain
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
