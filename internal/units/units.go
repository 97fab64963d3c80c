// Package units defines the time units used for measurement and display.
package units

import (
	"fmt"
	"strconv"
)

// Second is the base unit for all measured durations.
type Second = float64

// Unit selects the resolution used when formatting a duration for
// display or export. Measurements themselves are always in seconds.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMilliSecond
)

// ShortName returns the abbreviation of the unit.
func (u Unit) ShortName() string {
	switch u {
	case UnitMilliSecond:
		return "ms"
	default:
		return "s"
	}
}

// Format renders value (in seconds) as a number scaled to the unit,
// without the unit suffix.
func (u Unit) Format(value Second) string {
	switch u {
	case UnitMilliSecond:
		return strconv.FormatFloat(value*1e3, 'f', 1, 64)
	default:
		return strconv.FormatFloat(value, 'f', 3, 64)
	}
}

// BestFor picks the unit best suited to display the given duration.
func BestFor(value Second) Unit {
	if value < 1.0 {
		return UnitMilliSecond
	}
	return UnitSecond
}

// Resolve returns the forced unit if one is set, otherwise the unit
// best suited to the given duration.
func Resolve(value Second, forced *Unit) Unit {
	if forced != nil {
		return *forced
	}
	return BestFor(value)
}

// FormatDuration renders value with a unit suffix, choosing the unit
// from the value itself unless one is forced.
func FormatDuration(value Second, forced *Unit) string {
	u := Resolve(value, forced)
	return u.Format(value) + " " + u.ShortName()
}

// Parse maps a user-supplied unit name to a Unit.
func Parse(name string) (Unit, error) {
	switch name {
	case "second", "s":
		return UnitSecond, nil
	case "millisecond", "ms":
		return UnitMilliSecond, nil
	}
	return UnitSecond, fmt.Errorf("unknown time unit: %q", name)
}
