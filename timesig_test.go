package timecalc_test

import (
	"testing"

	"github.com/vsariola/timecalc"
)

func TestBeatsPerBar(t *testing.T) {
	tests := []struct {
		ts   timecalc.TimeSig
		want float64
	}{
		{fourFour, 4},
		{threeFour, 3},
		{sevenEight, 3.5},
		{timecalc.TimeSig{Top: 6, Bottom: 8}, 3},
		{timecalc.TimeSig{Top: 5, Bottom: 16}, 1.25},
		{timecalc.TimeSig{Top: 2, Bottom: 2}, 4},
	}
	for _, tt := range tests {
		if got := tt.ts.BeatsPerBar(); got != tt.want {
			t.Errorf("%v.BeatsPerBar() = %v, expected %v", tt.ts, got, tt.want)
		}
	}
}

func TestPulse(t *testing.T) {
	tests := []struct {
		ts   timecalc.TimeSig
		want timecalc.Division
		ok   bool
	}{
		{fourFour, timecalc.Beat, true},
		{sevenEight, timecalc.Quaver, true},
		{timecalc.TimeSig{Top: 2, Bottom: 2}, timecalc.Minim, true},
		{timecalc.TimeSig{Top: 5, Bottom: 16}, timecalc.SemiQuaver, true},
		{timecalc.TimeSig{Top: 3, Bottom: 3}, timecalc.Bar, false},
		{timecalc.TimeSig{Top: 1, Bottom: 1}, timecalc.Bar, false},
		{timecalc.TimeSig{Top: 4, Bottom: 0}, timecalc.Bar, false},
	}
	for _, tt := range tests {
		got, ok := tt.ts.Pulse()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.Pulse() = %v, %v; expected %v, %v", tt.ts, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseTimeSig(t *testing.T) {
	ts, err := timecalc.ParseTimeSig("7/8")
	if err != nil {
		t.Fatalf("ParseTimeSig failed: %v", err)
	}
	if ts != sevenEight {
		t.Fatalf("ParseTimeSig(\"7/8\") = %v", ts)
	}
	if ts, err = timecalc.ParseTimeSig(" 3 / 4 "); err != nil || ts != threeFour {
		t.Fatalf("ParseTimeSig(\" 3 / 4 \") = %v, %v", ts, err)
	}
	if got := sevenEight.String(); got != "7/8" {
		t.Fatalf("String() = %q, expected 7/8", got)
	}
	for _, s := range []string{"4", "a/4", "4/b", "4/4/4", ""} {
		if _, err := timecalc.ParseTimeSig(s); err == nil {
			t.Errorf("ParseTimeSig(%q) should fail", s)
		}
	}
}
