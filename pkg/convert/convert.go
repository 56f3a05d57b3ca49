// Package convert implements length unit conversion for the unit
// converter page. The canonical stored value is always metres; every
// other unit is a fixed multiplicative coefficient away from it.
package convert

import (
	"fmt"
	"strconv"
)

// Unit is one of the supported length units.
type Unit int

const (
	Metres Unit = iota
	Inches
	Yards
	Feet
)

// Units lists all supported units in display order.
var Units = []Unit{Metres, Inches, Yards, Feet}

// coefficients maps each unit to its value per metre.
var coefficients = map[Unit]float64{
	Metres: 1.0,
	Inches: 39.3700787,
	Yards:  1.0936133,
	Feet:   3.2808399,
}

// String returns the display name of the unit.
func (u Unit) String() string {
	switch u {
	case Metres:
		return "Metres"
	case Inches:
		return "Inches"
	case Yards:
		return "Yards"
	case Feet:
		return "Feet"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Coefficient returns the unit's multiplier relative to metres.
// Unknown units fall back to 1.0 so display code stays total.
func Coefficient(u Unit) float64 {
	if c, ok := coefficients[u]; ok {
		return c
	}
	return 1.0
}

// ToDisplay converts the canonical metres value into the given unit.
func ToDisplay(u Unit, baseMetres float64) float64 {
	return baseMetres * Coefficient(u)
}

// FromDisplay parses text as a value in the given unit and returns the
// new canonical metres value. On a parse failure the error is returned
// and the caller must leave its stored value unchanged; no default is
// substituted and no clamping occurs. Locale-variant separators such as
// a decimal comma are parse failures.
func FromDisplay(u Unit, text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s input: %w", u, err)
	}
	return v / Coefficient(u), nil
}
