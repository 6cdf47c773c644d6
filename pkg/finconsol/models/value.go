// Package models defines data structures for ingested tables and consolidated reports.
package models

import (
	"encoding/json"
	"strconv"
)

// Value is a raw cell value as produced by ingestion: either a number or a string.
type Value struct {
	// Num holds the numeric value when IsNum is true.
	Num float64
	// Str holds the text value when IsNum is false.
	Str string
	// IsNum reports whether the cell was typed as a number.
	IsNum bool
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{Num: f, IsNum: true}
}

// Text returns a string Value.
func Text(s string) Value {
	return Value{Str: s}
}

// IsBlank reports whether the value is an empty string.
func (v Value) IsBlank() bool {
	return !v.IsNum && v.Str == ""
}

// String returns the display form of the value.
// Numbers use the shortest decimal representation (4113000, 26660.86).
func (v Value) String() string {
	if v.IsNum {
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return v.Str
}

// MarshalJSON encodes the value as a JSON number or string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsNum {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Str)
}

// UnmarshalJSON decodes a JSON number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = Text(s)
	return nil
}
