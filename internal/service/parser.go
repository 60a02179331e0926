package service

import (
	"errors"
	"fmt"

	"tableview/backend/helper"
	"tableview/backend/internal/model"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyFile         = errors.New("no columns to parse from file")
)

// TableParser turns the raw bytes of an uploaded file into a Dataset.
type TableParser interface {
	Format() string
	Parse(content []byte) (*model.Dataset, error)
}

var parsers = map[string]TableParser{
	".csv":  CSVParser{},
	".xlsx": ExcelParser{},
	".xls":  ExcelParser{},
	".xml":  XMLParser{},
	".json": JSONParser{},
}

// ParserFor picks a parser from the extension of filename.
func ParserFor(filename string) (TableParser, error) {
	p, ok := parsers[helper.FileExtension(filename)]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return p, nil
}

// Parse dispatches content to the parser registered for filename.
func Parse(filename string, content []byte) (*model.Dataset, error) {
	p, err := ParserFor(filename)
	if err != nil {
		return nil, err
	}

	ds, err := p.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Format(), err)
	}
	return ds, nil
}
