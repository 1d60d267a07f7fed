package wire

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// File is a decoded location file: day-0's calendar date plus up to
// fifteen day-blobs. Beach files additionally carry the overlay strings.
type File struct {
	Year  string
	Month string
	Day   string
	V     [Days]string // oceanic or atmospheric day-blobs
	S     [Days]string // beach overlay day-blobs (beach files only)
}

// UnmarshalJSON accepts both the flat layout {ano, mes, dia, v0, ...} and
// the legacy layout that nests the same keys under "dados".
func (f *File) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if wrapped, ok := raw["dados"]; ok {
		inner := map[string]json.RawMessage{}
		if err := json.Unmarshal(wrapped, &inner); err == nil && len(inner) > 0 {
			raw = inner
		}
	}
	f.Year = scalar(raw["ano"])
	f.Month = scalar(raw["mes"])
	f.Day = scalar(raw["dia"])
	for i := range Days {
		f.V[i] = scalar(raw[fmt.Sprintf("v%d", i)])
		f.S[i] = scalar(raw[fmt.Sprintf("s%d", i)])
	}
	return nil
}

// scalar renders a JSON string or number verbatim, without zero padding.
func scalar(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// dateParts returns the wire date parts, filling missing ones from the
// current UTC date. The parts stay unpadded strings.
func (f *File) dateParts() (y, m, d string) {
	if f != nil {
		y, m, d = f.Year, f.Month, f.Day
	}
	now := time.Now().UTC()
	if y == "" {
		y = strconv.Itoa(now.Year())
	}
	if m == "" {
		m = strconv.Itoa(int(now.Month()))
	}
	if d == "" {
		d = strconv.Itoa(now.Day())
	}
	return y, m, d
}

// DateString is the top-level response date: the wire parts joined
// verbatim. Existing clients rely on the parts not being zero-padded.
func (f *File) DateString() string {
	y, m, d := f.dateParts()
	return y + "-" + m + "-" + d
}

// BaseDate is day-0's calendar date, or today in UTC when the wire parts
// are missing or malformed.
func (f *File) BaseDate() time.Time {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	ys, ms, ds := f.dateParts()
	y, errY := strconv.Atoi(ys)
	m, errM := strconv.Atoi(ms)
	d, errD := strconv.Atoi(ds)
	if errY != nil || errM != nil || errD != nil || m < 1 || m > 12 || d < 1 || d > 31 {
		return now
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		// Day out of range for the month, e.g. February 30.
		return now
	}
	return t
}
