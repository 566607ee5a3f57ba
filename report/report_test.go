package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vsariola/timecalc"
	"github.com/vsariola/timecalc/report"
)

func TestTable(t *testing.T) {
	ctx := timecalc.Context{BPM: 120, PPQN: 960, SampleHz: 44100, TimeSig: timecalc.TimeSig{Top: 4, Bottom: 4}}
	measures := []timecalc.Measure{
		{Num: 2, Div: timecalc.Bar, DivType: timecalc.Whole},
		{Num: 3, Div: timecalc.SemiQuaver, DivType: timecalc.Whole},
		{Num: 3, Div: timecalc.Quaver, DivType: timecalc.TwoThirds},
	}
	var b bytes.Buffer
	if err := report.Table(&b, ctx, measures); err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4+len(measures) {
		t.Fatalf("expected %d lines, got %d:\n%v", 4+len(measures), len(lines), b.String())
	}
	if want := "4/4 at 120 bpm, 960 ppqn, 44,100 Hz"; lines[0] != want {
		t.Errorf("header was %q, expected %q", lines[0], want)
	}
	if lines[1] != strings.Repeat("-", 94) {
		t.Errorf("expected a rule, got %q", lines[1])
	}
	for i, c := range []struct {
		label string
		cells []string
	}{
		{"2 bar", []string{"2", "8", "7,680", "4000", "176,400"}},
		{"3 semi-quaver", []string{"0.1875", "0.75", "720", "375", "16,537"}},
		{"3 quaver (two-thirds)", []string{"0.25", "1", "960", "500", "22,050"}},
	} {
		line := lines[4+i]
		if !strings.HasPrefix(line, c.label+" ") {
			t.Errorf("row %d should start with %q, got %q", i, c.label, line)
			continue
		}
		got := strings.Fields(strings.TrimPrefix(line, c.label))
		if strings.Join(got, " ") != strings.Join(c.cells, " ") {
			t.Errorf("row %d cells were %v, expected %v", i, got, c.cells)
		}
	}
}

func TestTableEmpty(t *testing.T) {
	ctx := timecalc.Context{BPM: 90, PPQN: 480, SampleHz: 48000, TimeSig: timecalc.TimeSig{Top: 7, Bottom: 8}}
	var b bytes.Buffer
	if err := report.Table(&b, ctx, nil); err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if !strings.HasPrefix(b.String(), "7/8 at 90 bpm, 480 ppqn, 48,000 Hz\n") {
		t.Errorf("unexpected header in %q", b.String())
	}
	if n := strings.Count(b.String(), "\n"); n != 4 {
		t.Errorf("expected 4 lines for an empty table, got %d", n)
	}
}
