package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/midbel/cycles"
)

const sampleJSON = `[
	{"date": 1601557200000, "endDate": 1601560800000, "cycle": {"arrival": {"category": "fast"}}},
	{"date": "2020-10-01T10:00:00Z", "endDate": "2020-10-01T12:30:00Z", "arrival": "late"},
	{"date": "1601532000000", "endDate": 1601535600000, "cycle": {"arrival": {"category": "ontime"}}}
]`

const sampleCSV = `start,end,arrival
2020-10-01T06:00:00Z,2020-10-01T07:00:00Z,ontime
2020-10-01 13:00:00,2020-10-01 14:00:00,fast
`

func TestReadJSON(t *testing.T) {
	cs, err := Read(strings.NewReader(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 3 {
		t.Fatalf("cycles count mismatched! want 3, got %d", len(cs))
	}
	want := []string{"ontime", "late", "fast"}
	for i := range want {
		if cs[i].Arrival != want[i] {
			t.Errorf("cycle %d: arrival mismatched! want %s, got %s", i, want[i], cs[i].Arrival)
		}
	}
	if !cs[0].Start.Equal(time.Date(2020, 10, 1, 10, 0, 0, 0, time.UTC).Add(-4 * time.Hour)) {
		t.Errorf("start mismatched! got %s", cs[0].Start)
	}
}

func TestReadCSV(t *testing.T) {
	cs, err := Read(strings.NewReader(sampleCSV), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 2 {
		t.Fatalf("cycles count mismatched! want 2, got %d", len(cs))
	}
	if cs[1].Arrival != "fast" || cs[1].Duration() != time.Hour {
		t.Errorf("second cycle mismatched: %+v", cs[1])
	}
}

func TestReadCSVExtraColumns(t *testing.T) {
	const data = `start,end,arrival,pressure,note
2020-10-01T06:00:00Z,2020-10-01T07:00:00Z,ontime,12.5,checked
2020-10-01T08:00:00Z,2020-10-01T09:00:00Z,late
`
	cs, err := Read(strings.NewReader(data), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if cs[0].Arrival != "ontime" || cs[1].Arrival != "late" {
		t.Fatalf("arrivals mismatched! got %s/%s", cs[0].Arrival, cs[1].Arrival)
	}
}

func TestReadInvalid(t *testing.T) {
	const data = `start,end,arrival
2020-10-01T06:00:00Z,2020-10-01T05:00:00Z,ontime
2020-10-01T08:00:00Z,2020-10-01T09:00:00Z,ontime
2020-10-01T12:00:00Z,2020-10-01T11:00:00Z,late
`
	_, err := Read(strings.NewReader(data), FormatCSV)
	if !errors.Is(err, cycles.ErrInvalidCycle) {
		t.Fatalf("expected ErrInvalidCycle, got %v", err)
	}
	if !strings.Contains(err.Error(), "cycle #1") || !strings.Contains(err.Error(), "cycle #3") {
		t.Errorf("every invalid cycle should be reported: %s", err)
	}
}

func TestReadUnknownFormat(t *testing.T) {
	if _, err := Read(strings.NewReader(""), "xml"); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cycles.json")
	if err := os.WriteFile(file, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	cs, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cs.Extent(); err != nil {
		t.Errorf("unexpected extent error: %s", err)
	}
}

func TestLoadExamples(t *testing.T) {
	for _, file := range []string{"../../examples/cycles.json", "../../examples/cycles.csv"} {
		cs, err := Load(file)
		if err != nil {
			t.Errorf("%s: %s", file, err)
			continue
		}
		if len(cs) == 0 {
			t.Errorf("%s: no cycles loaded", file)
		}
		for i := 1; i < len(cs); i++ {
			if cs[i].Start.Before(cs[i-1].Start) {
				t.Errorf("%s: cycles not sorted", file)
				break
			}
		}
	}
}
