package enums

import (
	"fmt"
	"strings"
)

// MeasurementUnit is the unit an ingredient quantity is expressed in.
type MeasurementUnit string

const (
	MeasurementUnitTeaspoon   MeasurementUnit = "tsp"
	MeasurementUnitTablespoon MeasurementUnit = "tbsp"
	MeasurementUnitCup        MeasurementUnit = "cup"
	MeasurementUnitFluidOunce MeasurementUnit = "floz"
	MeasurementUnitOunce      MeasurementUnit = "oz"
	MeasurementUnitGram       MeasurementUnit = "g"
	MeasurementUnitKilogram   MeasurementUnit = "kg"
	MeasurementUnitMilliliter MeasurementUnit = "ml"
	MeasurementUnitLiter      MeasurementUnit = "l"
	MeasurementUnitPint       MeasurementUnit = "pint"
	MeasurementUnitQuart      MeasurementUnit = "quart"
	MeasurementUnitGallon     MeasurementUnit = "gallon"
	MeasurementUnitUnit       MeasurementUnit = "unit"
	MeasurementUnitPound      MeasurementUnit = "lb"
)

var validMeasurementUnits = []MeasurementUnit{
	MeasurementUnitTeaspoon,
	MeasurementUnitTablespoon,
	MeasurementUnitCup,
	MeasurementUnitFluidOunce,
	MeasurementUnitOunce,
	MeasurementUnitGram,
	MeasurementUnitKilogram,
	MeasurementUnitMilliliter,
	MeasurementUnitLiter,
	MeasurementUnitPint,
	MeasurementUnitQuart,
	MeasurementUnitGallon,
	MeasurementUnitUnit,
	MeasurementUnitPound,
}

// String implements fmt.Stringer.
func (u MeasurementUnit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known MeasurementUnit.
func (u MeasurementUnit) IsValid() bool {
	for _, candidate := range validMeasurementUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseMeasurementUnit converts raw input into a MeasurementUnit. Matching
// ignores case and surrounding whitespace.
func ParseMeasurementUnit(value string) (MeasurementUnit, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validMeasurementUnits {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid measurement unit %q", value)
}
