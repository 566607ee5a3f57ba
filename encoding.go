package timecalc

import (
	"encoding/json"
	"fmt"
	"math"
)

// The wire form of the types: the duration axes are plain numbers, Division
// and DivType are their names, and a Measure is the triple [num, division,
// divtype], e.g. [4, "Bar", "Whole"]. The text marshalers are picked up by
// encoding/json as well as both yaml packages.

func (d Division) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid division %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Division) UnmarshalText(text []byte) error {
	div, err := ParseDivision(string(text))
	if err != nil {
		return err
	}
	*d = div
	return nil
}

func (t DivType) MarshalText() ([]byte, error) {
	if _, ok := divTypeNames[t]; !ok {
		return nil, fmt.Errorf("cannot marshal invalid division type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *DivType) UnmarshalText(text []byte) error {
	divType, err := ParseDivType(string(text))
	if err != nil {
		return err
	}
	*t = divType
	return nil
}

func (m Measure) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{m.Num, m.Div, m.DivType})
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("measure should be a [num, division, divtype] array: %v", err)
	}
	if len(fields) != 3 {
		return fmt.Errorf("measure should have 3 fields, got %d", len(fields))
	}
	var ret Measure
	if err := json.Unmarshal(fields[0], &ret.Num); err != nil {
		return fmt.Errorf("invalid measure count: %v", err)
	}
	if err := json.Unmarshal(fields[1], &ret.Div); err != nil {
		return fmt.Errorf("invalid measure division: %v", err)
	}
	if err := json.Unmarshal(fields[2], &ret.DivType); err != nil {
		return fmt.Errorf("invalid measure division type: %v", err)
	}
	*m = ret
	return nil
}

// MarshalYAML implements the Marshaler interface of both gopkg.in/yaml.v2 and
// gopkg.in/yaml.v3.
func (m Measure) MarshalYAML() (interface{}, error) {
	return []interface{}{m.Num, m.Div, m.DivType}, nil
}

// UnmarshalYAML uses the callback form, which gopkg.in/yaml.v2 requires and
// gopkg.in/yaml.v3 still accepts.
func (m *Measure) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var fields []interface{}
	if err := unmarshal(&fields); err != nil {
		return fmt.Errorf("measure should be a [num, division, divtype] sequence: %v", err)
	}
	if len(fields) != 3 {
		return fmt.Errorf("measure should have 3 fields, got %d", len(fields))
	}
	var ret Measure
	var err error
	if ret.Num, err = numDivOf(fields[0]); err != nil {
		return err
	}
	divName, ok := fields[1].(string)
	if !ok {
		return fmt.Errorf("measure division should be a name, got %v", fields[1])
	}
	if ret.Div, err = ParseDivision(divName); err != nil {
		return err
	}
	typeName, ok := fields[2].(string)
	if !ok {
		return fmt.Errorf("measure division type should be a name, got %v", fields[2])
	}
	if ret.DivType, err = ParseDivType(typeName); err != nil {
		return err
	}
	*m = ret
	return nil
}

func numDivOf(v interface{}) (NumDiv, error) {
	switch n := v.(type) {
	case int:
		return NumDiv(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("measure count %v overflows", n)
		}
		return NumDiv(n), nil
	case float64:
		if n != math.Trunc(n) || math.Abs(n) >= math.MaxInt64 {
			return 0, fmt.Errorf("measure count should be an integer, got %v", n)
		}
		return NumDiv(n), nil
	}
	return 0, fmt.Errorf("measure count should be an integer, got %v", v)
}
