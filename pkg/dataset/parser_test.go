package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

func TestParsePoints(t *testing.T) {
	input := `# a comment
1 2 3
4.5 -6 7e1

0,0,0 origin point
`
	samples, err := parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(samples) != 3 {
		t.Fatalf("parse failed: expected 3 samples, got %d", len(samples))
	}

	if samples[0].Point != geometry.NewPoint(1, 2, 3) {
		t.Errorf("parse failed: expected (1,2,3), got %v", samples[0].Point)
	}
	if samples[1].Point != geometry.NewPoint(4.5, -6, 70) {
		t.Errorf("parse failed: expected (4.5,-6,70), got %v", samples[1].Point)
	}
	if samples[2].Label != "origin point" {
		t.Errorf("parse failed: expected label %q, got %q", "origin point", samples[2].Label)
	}
	if samples[0].Label != "" {
		t.Errorf("parse failed: unexpected label %q", samples[0].Label)
	}
}

func TestParseRejectsShortLine(t *testing.T) {
	_, err := parse(strings.NewReader("1 2\n"))
	if err == nil {
		t.Errorf("parse failed: short line accepted")
	}
}

func TestParseRejectsBadCoordinate(t *testing.T) {
	_, err := parse(strings.NewReader("1 two 3\n"))
	if err == nil {
		t.Errorf("parse failed: bad coordinate accepted")
	}
	if err != nil && !strings.Contains(err.Error(), "line 1") {
		t.Errorf("parse failed: error missing line number: %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	samples, err := parse(strings.NewReader("# only comments\n\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("parse failed: expected no samples, got %d", len(samples))
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.xyz")
	if err := os.WriteFile(path, []byte("1 2 3\n4 5 6 labeled\n"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	samples, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(samples) != 2 {
		t.Errorf("Parse failed: expected 2 samples, got %d", len(samples))
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.xyz")); err == nil {
		t.Errorf("Parse failed: missing file accepted")
	}
}

func TestSampleViewColorGradient(t *testing.T) {
	samples := []Sample{
		{Point: geometry.NewPoint(0, 0, 0)},
		{Point: geometry.NewPoint(0, 0, 10)},
	}
	view := NewSampleView(samples)

	low := view.Color(samples, 0)
	high := view.Color(samples, 1)
	if low == high {
		t.Errorf("Color failed: expected distinct colors across the z range")
	}

	// A flat dataset must not divide by its zero range.
	flat := []Sample{{Point: geometry.NewPoint(1, 1, 1)}}
	flatView := NewSampleView(flat)
	_ = flatView.Color(flat, 0)
}

func TestSampleViewBounds(t *testing.T) {
	samples := []Sample{
		{Point: geometry.NewPoint(1, 5, -3)},
		{Point: geometry.NewPoint(-2, 8, 4)},
	}
	view := NewSampleView(samples)

	min := view.Min(samples)
	if min != geometry.NewPoint(-2, 5, -3) {
		t.Errorf("Min failed: expected (-2,5,-3), got %v", min)
	}
	max := view.Max(samples)
	if max != geometry.NewPoint(1, 8, 4) {
		t.Errorf("Max failed: expected (1,8,4), got %v", max)
	}
}
