package service

import "tableview/backend/internal/model"

var mockColumns = []string{"Month", "Sales", "Revenue", "Customers", "Region", "Product"}

var mockRows = [][]any{
	{"Jan", 245, 12500, 89, "North", "A"},
	{"Feb", 312, 15800, 124, "South", "B"},
	{"Mar", 289, 14200, 102, "East", "A"},
	{"Apr", 401, 19300, 156, "West", "C"},
	{"May", 378, 18100, 145, "North", "B"},
	{"Jun", 456, 22400, 178, "South", "A"},
	{"Jul", 423, 20900, 167, "East", "C"},
	{"Aug", 398, 19600, 152, "West", "B"},
	{"Sep", 441, 21700, 172, "North", "A"},
	{"Oct", 467, 23200, 189, "South", "C"},
	{"Nov", 512, 25800, 201, "East", "B"},
	{"Dec", 589, 29100, 234, "West", "A"},
}

// MockDataset returns twelve months of sample sales figures.
func MockDataset() *model.Dataset {
	return model.NewDataset(mockColumns, mockRows)
}
