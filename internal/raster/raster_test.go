package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/midbel/cycles"
	"github.com/midbel/cycles/internal/config"
)

func TestParseColor(t *testing.T) {
	data := []struct {
		Input string
		Want  color.NRGBA
	}{
		{Input: "#1f77b4", Want: color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}},
		{Input: "#fff", Want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{Input: "rgba(0,0,0,0.5)", Want: color.NRGBA{A: 128}},
		{Input: "rgb(10, 20, 30)", Want: color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}},
		{Input: "SteelBlue", Want: color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}},
		{Input: "chartreuse", Want: color.NRGBA{R: 0x7f, G: 0xff, B: 0x00, A: 0xff}},
		{Input: "hsl(120, 100%, 50%)", Want: color.NRGBA{G: 0xff, A: 0xff}},
		{Input: "none", Want: color.NRGBA{}},
	}
	for _, d := range data {
		got, err := ParseColor(d.Input)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Input, err)
			continue
		}
		if got != d.Want {
			t.Errorf("%s: color mismatched! want %v, got %v", d.Input, d.Want, got)
		}
	}
	for _, str := range []string{"#12", "chartreuse-ish", ""} {
		if _, err := ParseColor(str); err == nil {
			t.Errorf("%s: expected error", str)
		}
	}
}

func TestPlotInvalidColor(t *testing.T) {
	var (
		base = time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC)
		cs   = cycles.Cycles{
			{Start: base, End: base.Add(6 * time.Hour), Arrival: "fast"},
			{Start: base.Add(8 * time.Hour), End: base.Add(9 * time.Hour), Arrival: "late"},
		}
		cfg = config.Default().Chart
	)
	cfg.Colors = map[string]string{"fast": "not-a-color"}
	if _, err := Plot(cfg, cs, nil); err == nil {
		t.Fatalf("expected error for unparseable color")
	}
	cfg.Colors = map[string]string{"fast": "chartreuse"}
	if _, err := Plot(cfg, cs, nil); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestFade(t *testing.T) {
	c := fade(color.NRGBA{R: 10, A: 0xff}, cycles.DimmedOpacity)
	if c.R != 10 || c.A != 102 {
		t.Fatalf("faded color mismatched: %v", c)
	}
}

func TestWritePNG(t *testing.T) {
	var (
		base = time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC)
		cs   = cycles.Cycles{
			{Start: base, End: base.Add(6 * time.Hour), Arrival: "fast"},
			{Start: base.Add(30 * time.Hour), End: base.Add(40 * time.Hour), Arrival: "late"},
		}
		cfg = config.Default().Chart
		buf bytes.Buffer
	)
	cfg.Height = 120
	if err := Write(&buf, "png", cfg, cs, 400, nil); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("invalid png: %s", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Errorf("width mismatched! want 400, got %d", img.Bounds().Dx())
	}
}

func TestBarsDataRange(t *testing.T) {
	var (
		fst = time.Unix(1000, 0)
		lst = time.Unix(5000, 0)
		b   = Bars{Domain: cycles.TimeDomain(fst, lst)}
	)
	xmin, xmax, ymin, ymax := b.DataRange()
	if xmin != 1000 || xmax != 5000 || ymin != 0 || ymax != 1 {
		t.Fatalf("data range mismatched: %f %f %f %f", xmin, xmax, ymin, ymax)
	}
}
