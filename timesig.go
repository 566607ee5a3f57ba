package timecalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeSig represents a musical time signature: Top pulses of the note value
// 1/Bottom in each bar. A bottom of zero is not rejected here; it is up to the
// caller to only pass meaningful time signatures to the conversions.
type TimeSig struct {
	Top    int `yaml:"top" json:"top"`
	Bottom int `yaml:"bottom" json:"bottom"`
}

// BeatsPerBar returns how many beats (quarter notes) there are in a bar under
// this time signature, e.g. 4 for 4/4, 3 for 3/4 and 3.5 for 7/8.
func (ts TimeSig) BeatsPerBar() float64 {
	return 4.0 * float64(ts.Top) / float64(ts.Bottom)
}

// Pulse returns the Division the bottom of the time signature counts: Beat
// for x/4, Quaver for x/8, Minim for x/2 and so on. ok is false if the bottom
// is not a power of two that has a non-bar Division on the ladder.
func (ts TimeSig) Pulse() (div Division, ok bool) {
	if ts.Bottom <= 0 {
		return Bar, false
	}
	want := 4.0 / float64(ts.Bottom)
	for _, d := range divisionLadder[1:] {
		if d.Beats(ts) == want {
			return d, true
		}
	}
	return Bar, false
}

// String returns the time signature in the usual top/bottom form, e.g. "7/8".
func (ts TimeSig) String() string {
	return fmt.Sprintf("%d/%d", ts.Top, ts.Bottom)
}

// ParseTimeSig parses a time signature written as "top/bottom". Only the
// syntax is checked; the numbers are taken as they are.
func ParseTimeSig(s string) (TimeSig, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return TimeSig{}, errors.New("invalid time signature format, expected top/bottom")
	}
	top, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeSig{}, fmt.Errorf("invalid time signature top %q: %v", parts[0], err)
	}
	bottom, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeSig{}, fmt.Errorf("invalid time signature bottom %q: %v", parts[1], err)
	}
	return TimeSig{Top: top, Bottom: bottom}, nil
}
