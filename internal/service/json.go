package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"tableview/backend/internal/model"
)

var ErrJSONLayout = errors.New("unsupported JSON layout")

// JSONParser accepts a list of records or rows, an object of columns keyed by
// row label, or an object of equal-length column arrays.
type JSONParser struct{}

func (JSONParser) Format() string { return "json" }

func (JSONParser) Parse(content []byte) (*model.Dataset, error) {
	if !gjson.ValidBytes(content) {
		return nil, errors.New("invalid JSON document")
	}

	doc := gjson.ParseBytes(content)
	switch {
	case doc.IsArray():
		return parseJSONRecords(doc), nil
	case doc.IsObject():
		return parseJSONColumns(doc)
	}
	return nil, ErrJSONLayout
}

func parseJSONRecords(doc gjson.Result) *model.Dataset {
	cols := newColumnSet()
	var rows [][]any

	doc.ForEach(func(_, item gjson.Result) bool {
		var row []any
		switch {
		case item.IsObject():
			item.ForEach(func(key, value gjson.Result) bool {
				row = setCell(row, cols.add(key.String()), jsonValue(value))
				return true
			})
		case item.IsArray():
			i := 0
			item.ForEach(func(_, value gjson.Result) bool {
				row = setCell(row, cols.add(strconv.Itoa(i)), jsonValue(value))
				i++
				return true
			})
		default:
			row = setCell(row, cols.add("0"), jsonValue(item))
		}
		rows = append(rows, row)
		return true
	})

	return model.NewDataset(cols.names, rows)
}

func parseJSONColumns(doc gjson.Result) (*model.Dataset, error) {
	allObjects, allArrays := true, true
	doc.ForEach(func(_, value gjson.Result) bool {
		allObjects = allObjects && value.IsObject()
		allArrays = allArrays && value.IsArray()
		return true
	})

	cols := newColumnSet()
	var rows [][]any

	switch {
	case allObjects:
		labels := newColumnSet()
		doc.ForEach(func(key, column gjson.Result) bool {
			c := cols.add(key.String())
			column.ForEach(func(label, value gjson.Result) bool {
				r := labels.add(label.String())
				for len(rows) <= r {
					rows = append(rows, nil)
				}
				rows[r] = setCell(rows[r], c, jsonValue(value))
				return true
			})
			return true
		})
	case allArrays:
		length := -1
		var err error
		doc.ForEach(func(key, column gjson.Result) bool {
			values := column.Array()
			if length >= 0 && len(values) != length {
				err = errors.New("all arrays must be of the same length")
				return false
			}
			length = len(values)

			c := cols.add(key.String())
			for r, value := range values {
				for len(rows) <= r {
					rows = append(rows, nil)
				}
				rows[r] = setCell(rows[r], c, jsonValue(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: object values must be all objects or all arrays", ErrJSONLayout)
	}

	return model.NewDataset(cols.names, rows), nil
}

// jsonValue maps a JSON value to a cell; null becomes nil.
func jsonValue(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.String:
		return r.Str
	case gjson.Number:
		if !strings.ContainsAny(r.Raw, ".eE") {
			if v, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
				return v
			}
		}
		return r.Num
	}
	return r.Value()
}
