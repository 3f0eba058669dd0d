package cycles

import (
	"testing"
	"time"
)

func TestTimeFormat(t *testing.T) {
	format, err := TimeFormat("%m/%d")
	if err != nil {
		t.Fatal(err)
	}
	when := time.Date(2020, 10, 1, 23, 30, 0, 0, time.FixedZone("", -3*3600))
	if got := format(when); got != "10/02" {
		t.Errorf("label mismatched! want 10/02, got %s", got)
	}
}

func TestParseFormat(t *testing.T) {
	data := []struct {
		Input string
		Want  string
	}{
		{Input: "%Y-%m-%d", Want: "2006-01-02"},
		{Input: "%H:%M", Want: "15:04"},
		{Input: "day %j", Want: "day 002"},
		{Input: "100%%", Want: "100%"},
		{Input: "%T%L", Want: "15:04:05.000"},
	}
	for _, d := range data {
		got, err := ParseFormat(d.Input)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Input, err)
			continue
		}
		if got != d.Want {
			t.Errorf("%s: layout mismatched! want %s, got %s", d.Input, d.Want, got)
		}
	}
	for _, str := range []string{"%q", "%"} {
		if _, err := ParseFormat(str); err == nil {
			t.Errorf("%s: expected error", str)
		}
	}
}

func TestTimeFormatMillis(t *testing.T) {
	format, err := TimeFormat("%H:%M:%S%L")
	if err != nil {
		t.Fatal(err)
	}
	when := time.Date(2020, 10, 1, 8, 5, 9, 42*int(time.Millisecond), time.UTC)
	if got := format(when); got != "08:05:09.042" {
		t.Errorf("label mismatched! want 08:05:09.042, got %s", got)
	}
}
