package model

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Wei is a decimal wei amount that can be parsed from flags and environment.
type Wei struct {
	Int *uint256.Int
}

// UnmarshalFlag implements flags.Unmarshaler.
func (w *Wei) UnmarshalFlag(value string) error {
	v, err := uint256.FromDecimal(value)
	if err != nil {
		return fmt.Errorf("parse wei amount %q: %w", value, err)
	}
	w.Int = v
	return nil
}

// MarshalFlag implements flags.Marshaler.
func (w Wei) MarshalFlag() (string, error) {
	if w.Int == nil {
		return "0", nil
	}
	return w.Int.Dec(), nil
}
