package service

import "tableview/backend/internal/model"

func rowValues(records []model.Record) [][]any {
	out := make([][]any, 0, len(records))
	for _, r := range records {
		out = append(out, r.Values())
	}
	return out
}
