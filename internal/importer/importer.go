// Package importer reconciles bulk-uploaded rows against the snapshot:
// external name/folio references are mapped to internal ids, duplicates are
// rejected, and failures are collected per row instead of aborting the
// batch. Row numbers in errors are offset by +2 (row 1 is the header).
package importer

import (
	"strconv"
	"strings"
)

// Row is one uploaded record, as decoded from the request body.
type Row map[string]any

// RowError reports a single rejected row together with its payload.
type RowError struct {
	Row   int    `json:"row"`
	Data  Row    `json:"data"`
	Error string `json:"error"`
}

// Summary is the batch outcome: per-row failures never abort the batch, so
// added + len(errors) always equals the input row count.
type Summary struct {
	Message string     `json:"message"`
	Added   int        `json:"added"`
	Errors  []RowError `json:"errors"`
}

func newSummary() Summary {
	return Summary{Errors: make([]RowError, 0)}
}

func (s *Summary) fail(index int, row Row, msg string) {
	s.Errors = append(s.Errors, RowError{Row: index + 2, Data: row, Error: msg})
}

// Str reads a field as text. Spreadsheet exports frequently deliver folios
// and keys as numbers, so those are formatted rather than dropped.
func (r Row) Str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Num coerces a field to a number, defaulting to 0 on anything unparseable.
func (r Row) Num(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// First returns the first non-empty text value among keys. Used where
// column headers drifted across template revisions.
func (r Row) First(keys ...string) string {
	for _, k := range keys {
		if v := r.Str(k); v != "" {
			return v
		}
	}
	return ""
}

// NumFirst returns the numeric value of the first present key.
func (r Row) NumFirst(keys ...string) float64 {
	for _, k := range keys {
		if _, ok := r[k]; ok {
			return r.Num(k)
		}
	}
	return 0
}

// ParseDMY reparses DD/MM/YYYY into YYYY-MM-DD; anything else passes
// through unchanged.
func ParseDMY(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, "/")
	if len(parts) == 3 {
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return s
}
