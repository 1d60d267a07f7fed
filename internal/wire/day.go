package wire

import (
	"strconv"
	"strings"
)

// Matrix is a decoded day-blob: one row per variable, one cell per slot.
// Cells stay raw strings; projection is lenient and happens on access, so
// truncated or sparse upstream data never fails a request.
type Matrix [][]string

// DecodeDay splits a day-blob into a Matrix. Empty input decodes to nil,
// which readers treat as an absent day.
func DecodeDay(blob string) Matrix {
	if blob == "" {
		return nil
	}
	rows := strings.Split(blob, ";")
	m := make(Matrix, len(rows))
	for i, r := range rows {
		m[i] = strings.Split(r, ":")
	}
	return m
}

// At returns the raw cell at (row, slot), or "0" when the matrix, the row
// or the slot is absent.
func (m Matrix) At(row, slot int) string {
	if !m.Has(row, slot) {
		return "0"
	}
	return m[row][slot]
}

// Has reports whether (row, slot) is actually present.
func (m Matrix) Has(row, slot int) bool {
	if m == nil || row < 0 || row >= len(m) {
		return false
	}
	return slot >= 0 && slot < len(m[row])
}

// Int projects a cell as an integer, 0 on parse failure.
func (m Matrix) Int(row, slot int) int {
	n, err := strconv.Atoi(m.At(row, slot))
	if err != nil {
		return 0
	}
	return n
}

// Tenth projects a cell stored in tenths as its decimal value.
func (m Matrix) Tenth(row, slot int) float64 {
	return float64(m.Int(row, slot)) / divisor
}

// Tide is one entry of the packed tide string on day 0.
type Tide struct {
	Time   string `json:"time"`
	Height string `json:"height"`
}

// DecodeTides unpacks the positional tide string: six characters per entry,
// HHMM followed by the height digits around an implied decimal point. The
// height keeps its one-decimal string form. A trailing run shorter than six
// characters is dropped.
func DecodeTides(s string) []Tide {
	tides := []Tide{}
	for i := 0; i+6 <= len(s); i += 6 {
		tides = append(tides, Tide{
			Time:   s[i:i+2] + ":" + s[i+2:i+4],
			Height: s[i+4:i+5] + "." + s[i+5:i+6],
		})
	}
	return tides
}
