package service

import (
	"math"
	"strconv"
	"strings"
)

type cellKind int

const (
	kindString cellKind = iota
	kindInt
	kindFloat
	kindBool
)

// Text cells that count as missing values.
var naValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

func isMissing(s string) bool {
	_, ok := naValues[s]
	return ok
}

// typedRows converts a ragged text grid of the given width into typed values.
// Every column gets a single type inferred from its non-missing cells; missing
// cells stay nil.
func typedRows(width int, rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i := range rows {
		out[i] = make([]any, width)
	}

	for col := 0; col < width; col++ {
		kind := inferKind(rows, col)
		for i, row := range rows {
			if col >= len(row) || isMissing(row[col]) {
				continue
			}
			out[i][col] = convertCell(row[col], kind)
		}
	}
	return out
}

func inferKind(rows [][]string, col int) cellKind {
	isInt, isFloat, isBool := true, true, true
	seen := false

	for _, row := range rows {
		if col >= len(row) || isMissing(row[col]) {
			continue
		}
		seen = true
		s := strings.TrimSpace(row[col])

		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, ok := parseFinite(s); !ok {
				isFloat = false
			}
		}
		if isBool {
			if _, ok := parseBool(s); !ok {
				isBool = false
			}
		}
		if !isInt && !isFloat && !isBool {
			return kindString
		}
	}

	switch {
	case !seen:
		return kindString
	case isInt:
		return kindInt
	case isFloat:
		return kindFloat
	case isBool:
		return kindBool
	}
	return kindString
}

func convertCell(s string, kind cellKind) any {
	t := strings.TrimSpace(s)
	switch kind {
	case kindInt:
		v, _ := strconv.ParseInt(t, 10, 64)
		return v
	case kindFloat:
		v, _ := parseFinite(t)
		return v
	case kindBool:
		v, _ := parseBool(t)
		return v
	}
	return s
}

// parseFinite rejects NaN and infinities, which have no JSON encoding.
func parseFinite(s string) (float64, bool) {
	if strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "True", "TRUE", "true":
		return true, true
	case "False", "FALSE", "false":
		return false, true
	}
	return false, false
}
