// Package dataset loads cycles from JSON or CSV files.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/midbel/slices"

	"github.com/midbel/cycles"
)

var ErrFormat = errors.New("unsupported format")

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Load reads the cycles stored in file. The format is guessed from the file
// extension.
func Load(file string) (cycles.Cycles, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cs, err := Read(r, Format(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return cs, nil
}

func Format(file string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), ".")
}

// Read decodes the cycles from r, validates them and returns them sorted by
// start. Every invalid cycle is reported in the returned error.
func Read(r io.Reader, format string) (cycles.Cycles, error) {
	var (
		cs  cycles.Cycles
		err error
	)
	switch format {
	case FormatJSON:
		cs, err = readJSON(r)
	case FormatCSV, "":
		cs, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrFormat)
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(cs); err != nil {
		return nil, err
	}
	cs.Sort()
	return cs, nil
}

func Validate(cs cycles.Cycles) error {
	var errs *multierror.Error
	for i, c := range cs {
		if err := c.Validate(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("cycle #%d: %w", i+1, err))
		}
	}
	return errs.ErrorOrNil()
}

type stamp struct {
	time.Time
}

// UnmarshalJSON accepts milliseconds since epoch, as number or string, and
// RFC3339 strings.
func (s *stamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		t, err := parseTime(str)
		if err != nil {
			return err
		}
		s.Time = t
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("%s: invalid timestamp", b)
	}
	s.Time = time.UnixMilli(n).UTC()
	return nil
}

type record struct {
	Date    stamp  `json:"date"`
	EndDate stamp  `json:"endDate"`
	Arrival string `json:"arrival"`
	Cycle   struct {
		Arrival struct {
			Category string `json:"category"`
		} `json:"arrival"`
	} `json:"cycle"`
}

func (r record) asCycle() cycles.Cycle {
	c := cycles.Cycle{
		Start:   r.Date.Time,
		End:     r.EndDate.Time,
		Arrival: r.Cycle.Arrival.Category,
	}
	if c.Arrival == "" {
		c.Arrival = r.Arrival
	}
	return c
}

func readJSON(r io.Reader) (cycles.Cycles, error) {
	var list []record
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, err
	}
	cs := make(cycles.Cycles, 0, len(list))
	for _, r := range list {
		cs = append(cs, r.asCycle())
	}
	return cs, nil
}

// readCSV expects a header followed by rows of start, end and arrival. Extra
// columns are ignored.
func readCSV(r io.Reader) (cycles.Cycles, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var cs cycles.Cycles
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if len(row) < 2 {
			line, _ := rs.FieldPos(0)
			return nil, fmt.Errorf("line %d: not enough columns", line)
		}
		var c cycles.Cycle
		if c.Start, err = parseTime(slices.Fst(row)); err != nil {
			return nil, err
		}
		if c.End, err = parseTime(row[1]); err != nil {
			return nil, err
		}
		if len(row) > 2 {
			c.Arrival = strings.TrimSpace(row[2])
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func parseTime(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	if n, err := strconv.ParseInt(str, 10, 64); err == nil {
		return time.UnixMilli(n).UTC(), nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%s: invalid time", str)
}
