package domain

import (
	"database/sql/driver"
	"fmt"
)

// scanString converts a database value into a string for enum scanning.
func scanString(value any, typeName string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be NULL", typeName)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into %s", value, typeName)
	}
}

// ModeShort is the short code of a game mode.
type ModeShort string

// Mode constants.
const (
	ModeTW ModeShort = "TW"
	ModeSZ ModeShort = "SZ"
	ModeTC ModeShort = "TC"
	ModeRM ModeShort = "RM"
	ModeCB ModeShort = "CB"
)

// RankedModes lists ranked modes in display order.
var RankedModes = []ModeShort{ModeSZ, ModeTC, ModeRM, ModeCB}

// AllModes lists every mode in the order used by profile summaries.
var AllModes = []ModeShort{ModeSZ, ModeTC, ModeRM, ModeCB, ModeTW}

// NewModeShort creates a new ModeShort with validation.
func NewModeShort(s string) (ModeShort, error) {
	mode := ModeShort(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid mode: %s (must be one of: %s, %s, %s, %s, %s)", s, ModeTW, ModeSZ, ModeTC, ModeRM, ModeCB)
	}
	return mode, nil
}

// IsValid checks if the mode is valid.
func (m ModeShort) IsValid() bool {
	switch m {
	case ModeTW, ModeSZ, ModeTC, ModeRM, ModeCB:
		return true
	}
	return false
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (m *ModeShort) Scan(value any) error {
	str, err := scanString(value, "ModeShort")
	if err != nil {
		return err
	}
	mode, err := NewModeShort(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (m ModeShort) Value() (driver.Value, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid ModeShort value: %s", m)
	}
	return string(m), nil
}

// Region is the X rank region a placement was achieved in.
type Region string

// Region constants.
const (
	RegionWest Region = "WEST"
	RegionJPN  Region = "JPN"
)

// IsValid checks if the region is valid.
func (r Region) IsValid() bool {
	return r == RegionWest || r == RegionJPN
}

// DivisionName returns the in-game division name of the region.
func (r Region) DivisionName() string {
	if r == RegionWest {
		return "Tentatek Division"
	}
	return "Takoroka Division"
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (r *Region) Scan(value any) error {
	str, err := scanString(value, "Region")
	if err != nil {
		return err
	}
	region := Region(str)
	if !region.IsValid() {
		return fmt.Errorf("invalid region: %s (must be one of: %s, %s)", str, RegionWest, RegionJPN)
	}
	*r = region
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (r Region) Value() (driver.Value, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid Region value: %s", r)
	}
	return string(r), nil
}
