package timecalc

import (
	"fmt"
	"math"
)

type (
	// NumDiv is a signed count of divisions, e.g. the 3 in "3 bars".
	NumDiv = int64

	// Division is a musical subdivision level, from a Bar down to a 1/1024th
	// note. The divisions form a ladder (see Divisions): every step towards the
	// finer end halves the duration, relative to the Beat. The Bar is the only
	// division whose length depends on the time signature; all the others are
	// anchored to the Beat and ignore the meter.
	Division int

	// DivType is the "division type", used for handling triplets: Whole is
	// the full division, TwoThirds is two thirds of it.
	DivType int
)

const (
	Bar Division = iota
	Minim
	Beat
	Quaver
	SemiQuaver
	ThirtySecond
	SixtyFourth
	OneHundredTwentyEighth
	TwoHundredFiftySixth
	FiveHundredTwelfth
	OneThousandTwentyFourth
)

const (
	Whole DivType = iota
	TwoThirds
)

// divisionLadder lists the divisions from the coarsest to the finest. The
// position of a division in this table is its zoom step; nothing should
// assume the numeric values of the constants follow the same order.
var divisionLadder = [...]Division{
	Bar,
	Minim,
	Beat,
	Quaver,
	SemiQuaver,
	ThirtySecond,
	SixtyFourth,
	OneHundredTwentyEighth,
	TwoHundredFiftySixth,
	FiveHundredTwelfth,
	OneThousandTwentyFourth,
}

var divisionNames = map[Division]string{
	Bar:                     "Bar",
	Minim:                   "Minim",
	Beat:                    "Beat",
	Quaver:                  "Quaver",
	SemiQuaver:              "SemiQuaver",
	ThirtySecond:            "ThirtySecond",
	SixtyFourth:             "SixtyFourth",
	OneHundredTwentyEighth:  "OneHundredTwentyEighth",
	TwoHundredFiftySixth:    "TwoHundredFiftySixth",
	FiveHundredTwelfth:      "FiveHundredTwelfth",
	OneThousandTwentyFourth: "OneThousandTwentyFourth",
}

var divTypeNames = map[DivType]string{
	Whole:     "Whole",
	TwoThirds: "TwoThirds",
}

// Divisions returns a copy of the division ladder, coarsest first.
func Divisions() []Division {
	ret := make([]Division, len(divisionLadder))
	copy(ret, divisionLadder[:])
	return ret
}

// DivisionAt returns the division at the given zoom step; ok is false if the
// step is outside the ladder.
func DivisionAt(step int) (div Division, ok bool) {
	if step < 0 || step >= len(divisionLadder) {
		return Bar, false
	}
	return divisionLadder[step], true
}

// Step returns the position of the division on the ladder: 0 for Bar, 2 for
// Beat, 10 for OneThousandTwentyFourth. Returns -1 for values that are not a
// valid Division.
func (d Division) Step() int {
	for i, l := range divisionLadder {
		if l == d {
			return i
		}
	}
	return -1
}

// Valid reports if d is one of the divisions on the ladder.
func (d Division) Valid() bool {
	return d.Step() >= 0
}

// Beats returns the duration of one unit of this division in beats (quarter
// notes). For Bar, this is ts.BeatsPerBar(); for all other divisions it is
// 2^(step of Beat - step of d), regardless of ts. NaN for invalid values.
func (d Division) Beats(ts TimeSig) float64 {
	if d == Bar {
		return ts.BeatsPerBar()
	}
	step := d.Step()
	if step < 0 {
		return math.NaN()
	}
	return math.Ldexp(1, Beat.Step()-step)
}

// Bars returns the duration of one unit of this division in bars.
func (d Division) Bars(ts TimeSig) float64 {
	if d == Bar {
		return 1
	}
	return d.Beats(ts) / ts.BeatsPerBar()
}

// ZoomIn returns the division steps finer than d. ok is false if that would
// go past OneThousandTwentyFourth; the result is never clamped.
func (d Division) ZoomIn(steps int) (div Division, ok bool) {
	step := d.Step()
	if step < 0 {
		return Bar, false
	}
	return DivisionAt(step + steps)
}

// ZoomOut returns the division steps coarser than d. ok is false if that
// would go past Bar.
func (d Division) ZoomOut(steps int) (div Division, ok bool) {
	return d.ZoomIn(-steps)
}

func (d Division) String() string {
	if name, ok := divisionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Division(%d)", int(d))
}

// ParseDivision returns the Division with the given name, e.g. "SemiQuaver".
func ParseDivision(name string) (Division, error) {
	for d, n := range divisionNames {
		if n == name {
			return d, nil
		}
	}
	return Bar, fmt.Errorf("unknown division %q", name)
}

// Multiplier returns the factor the DivType applies to a duration: 1 for
// Whole and 2/3 for TwoThirds.
func (t DivType) Multiplier() float64 {
	if t == TwoThirds {
		return 2.0 / 3.0
	}
	return 1
}

func (t DivType) String() string {
	if name, ok := divTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DivType(%d)", int(t))
}

// ParseDivType returns the DivType with the given name, "Whole" or
// "TwoThirds".
func ParseDivType(name string) (DivType, error) {
	for t, n := range divTypeNames {
		if n == name {
			return t, nil
		}
	}
	return Whole, fmt.Errorf("unknown division type %q", name)
}
