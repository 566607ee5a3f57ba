package clicktrack_test

import (
	"testing"

	"github.com/vsariola/timecalc"
	"github.com/vsariola/timecalc/clicktrack"
)

var testContext = timecalc.Context{BPM: 120, PPQN: 960, SampleHz: 44100, TimeSig: timecalc.TimeSig{Top: 4, Bottom: 4}}

func TestClicks(t *testing.T) {
	clicks, err := clicktrack.Clicks(testContext, 2)
	if err != nil {
		t.Fatalf("Clicks failed: %v", err)
	}
	if len(clicks) != 8 {
		t.Fatalf("got %v clicks, expected 8", len(clicks))
	}
	expected := []clicktrack.Click{
		{Bar: 0, Pulse: 0, Accent: true, Tick: 0, Sample: 0, Ms: 0},
		{Bar: 0, Pulse: 1, Accent: false, Tick: 960, Sample: 22050, Ms: 500},
		{Bar: 1, Pulse: 0, Accent: true, Tick: 3840, Sample: 88200, Ms: 2000},
		{Bar: 1, Pulse: 3, Accent: false, Tick: 6720, Sample: 154350, Ms: 3500},
	}
	for i, index := range []int{0, 1, 4, 7} {
		if clicks[index] != expected[i] {
			t.Errorf("click %v = %+v, expected %+v", index, clicks[index], expected[i])
		}
	}
}

func TestClicksFollowPulse(t *testing.T) {
	ctx := testContext
	ctx.TimeSig = timecalc.TimeSig{Top: 7, Bottom: 8}
	clicks, err := clicktrack.Clicks(ctx, 2)
	if err != nil {
		t.Fatalf("Clicks failed: %v", err)
	}
	if len(clicks) != 14 {
		t.Fatalf("got %v clicks, expected 14", len(clicks))
	}
	if clicks[1].Tick != 480 {
		t.Errorf("second click at tick %v, expected 480", clicks[1].Tick)
	}
	if !clicks[7].Accent || clicks[7].Tick != 3360 || clicks[7].Sample != 77175 {
		t.Errorf("first click of second bar = %+v, expected accent at tick 3360, sample 77175", clicks[7])
	}
}

func TestClicksErrors(t *testing.T) {
	if _, err := clicktrack.Clicks(testContext, -1); err == nil {
		t.Errorf("negative number of bars should fail")
	}
	ctx := testContext
	ctx.TimeSig = timecalc.TimeSig{Top: 3, Bottom: 3}
	if _, err := clicktrack.Clicks(ctx, 1); err == nil {
		t.Errorf("3/3 has no pulse and should fail")
	}
	ctx = testContext
	ctx.BPM = 0
	if _, err := clicktrack.Clicks(ctx, 1); err == nil {
		t.Errorf("zero BPM should fail")
	}
}

func TestLength(t *testing.T) {
	if got := clicktrack.Length(testContext, 2); got != 176400 {
		t.Fatalf("Length(2 bars) = %v, expected 176400", got)
	}
}

func TestRender(t *testing.T) {
	clicks, err := clicktrack.Clicks(testContext, 2)
	if err != nil {
		t.Fatalf("Clicks failed: %v", err)
	}
	length := clicktrack.Length(testContext, 1)
	buffer := clicktrack.Render(testContext, clicks, length)
	if len(buffer) != int(2*length) {
		t.Fatalf("buffer length %v, expected %v", len(buffer), 2*length)
	}
	for i := 0; i < len(buffer); i += 2 {
		if buffer[i] != buffer[i+1] {
			t.Fatalf("left and right differ at %v", i/2)
		}
		if buffer[i] > 0.5 || buffer[i] < -0.5 {
			t.Fatalf("sample %v = %v exceeds the click gain", i/2, buffer[i])
		}
	}
	if buffer[2*10] == 0 || buffer[2*(22050+10)] == 0 {
		t.Errorf("expected sound right after the clicks")
	}
	if buffer[2*22049] != 0 || buffer[2*11025] != 0 {
		t.Errorf("expected silence between the clicks")
	}
	if got := clicktrack.Render(testContext, clicks, 0); len(got) != 0 {
		t.Errorf("zero length render gave %v values", len(got))
	}
}
