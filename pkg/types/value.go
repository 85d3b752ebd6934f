package types

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Value is a float64 wrapper representing a computed electrical quantity
// (amps, kilowatts, kilovolt-amps, or their 1000x base units).
type Value float64

var grouped = message.NewPrinter(language.English)

// Pretty returns an engineering-style string: thousands separators with two
// decimals at |v| >= 100, four decimals at |v| >= 1, six plain decimals below.
func (v Value) Pretty() string {
	switch a := math.Abs(float64(v)); {
	case a >= 100:
		return grouped.Sprintf("%.2f", float64(v))
	case a >= 1:
		return grouped.Sprintf("%.4f", float64(v))
	default:
		return fmt.Sprintf("%.6f", float64(v))
	}
}

// String implements fmt.Stringer via Pretty.
func (v Value) String() string { return v.Pretty() }

// ToValue converts a raw float64.
func ToValue(x float64) Value { return Value(x) }
