package layout

import (
	"fmt"
	"sort"
	"strings"
)

// Unit names accepted for panel and room dimensions.
const (
	Inches      = "inches"
	Feet        = "feet"
	Meters      = "meters"
	Centimeters = "cm"
	Millimeters = "mm"
)

// inchesPer returns how many inches one unit spans.
func inchesPer(unit string) (float64, bool) {
	switch unit {
	case Inches:
		return 1.0, true
	case Feet:
		return 12.0, true
	case Meters:
		return 39.37, true
	case Centimeters:
		return 0.3937, true
	case Millimeters:
		return 0.0394, true
	default:
		return 0, false
	}
}

// ValidUnits returns the accepted unit names, sorted.
func ValidUnits() []string {
	units := []string{Inches, Feet, Meters, Centimeters, Millimeters}
	sort.Strings(units)
	return units
}

// IsValidUnit checks if the given unit is known.
func IsValidUnit(unit string) bool {
	_, ok := inchesPer(unit)
	return ok
}

// ScaleFactor returns the multiplier that converts a length in from-units
// into to-units, going through inches.
func ScaleFactor(from, to string) (float64, error) {
	fromInches, ok := inchesPer(from)
	if !ok {
		return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownUnit, from, strings.Join(ValidUnits(), ", "))
	}
	toInches, ok := inchesPer(to)
	if !ok {
		return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownUnit, to, strings.Join(ValidUnits(), ", "))
	}
	return fromInches / toInches, nil
}
