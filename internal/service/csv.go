package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"tableview/backend/helper"
	"tableview/backend/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVParser reads comma separated files whose first record is the header.
type CSVParser struct{}

func (CSVParser) Format() string { return "csv" }

func (CSVParser) Parse(content []byte) (*model.Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, err
	}
	columns := helper.NormalizeHeaders(header)

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", len(columns), line, len(record))
		}
		rows = append(rows, record)
	}

	return model.NewDataset(columns, typedRows(len(columns), rows)), nil
}
