package model

// Shape mirrors the row and column counts of a Dataset.
type Shape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Dataset is the tabular result returned by the upload and mock-data routes.
type Dataset struct {
	Columns []string `json:"columns"`
	Data    []Record `json:"data"`
	Shape   Shape    `json:"shape"`
}

// NewDataset projects a value grid onto columns. Cells that are nil or beyond
// the end of a short row are filled with an empty string.
func NewDataset(columns []string, rows [][]any) *Dataset {
	if columns == nil {
		columns = []string{}
	}

	data := make([]Record, 0, len(rows))
	for _, row := range rows {
		values := make([]any, len(columns))
		for i := range columns {
			if i < len(row) && row[i] != nil {
				values[i] = row[i]
			} else {
				values[i] = ""
			}
		}
		data = append(data, Record{columns: columns, values: values})
	}

	return &Dataset{
		Columns: columns,
		Data:    data,
		Shape:   Shape{Rows: len(data), Columns: len(columns)},
	}
}
