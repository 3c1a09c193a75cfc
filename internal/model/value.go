package model

import "encoding/json"

// Value is a numeric indicator result that may be absent when the backing
// series is too short to compute it. Absent is a distinct state from zero:
// consumers must treat it as "cannot be evaluated", never as a failing value.
type Value struct {
	Float float64
	Valid bool
}

// Val wraps a present numeric value.
func Val(f float64) Value { return Value{Float: f, Valid: true} }

// Absent is the missing-value sentinel.
var Absent = Value{}

// Or returns the value, or def when absent.
func (v Value) Or(def float64) float64 {
	if !v.Valid {
		return def
	}
	return v.Float
}

// MarshalJSON encodes an absent value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float)
}

// UnmarshalJSON decodes null as absent.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Absent
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Val(f)
	return nil
}
