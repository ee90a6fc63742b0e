package domain

import (
	"fmt"

	"github.com/osse101/BrandishVendor_Go/internal/validation"
)

// Names are free text; only the divisor carries a tag.
type swordParams struct {
	Name        string
	Damage      uint16
	SwingTimeMs uint16 `validate:"gt=0"`
}

// NewSword validates the fields and returns an immutable Sword.
// A zero swing time is rejected with ErrInvalidDivisor; values whose price
// formula would leave uint16 are rejected with ErrPriceOverflow.
func NewSword(name string, damage, swingTimeMs uint16) (Sword, error) {
	p := swordParams{Name: name, Damage: damage, SwingTimeMs: swingTimeMs}
	if err := validateParams(p); err != nil {
		return Sword{}, err
	}

	scaled := uint32(damage) * uint32(swordDamageScale)
	if scaled > MaxPrice {
		return Sword{}, fmt.Errorf("%w: "+ErrFmtSwordDamageOverflow, ErrPriceOverflow, name, damage, swordDamageScale, MaxPrice)
	}
	if price := scaled / uint32(swingTimeMs) * uint32(swordPriceScale); price > MaxPrice {
		return Sword{}, fmt.Errorf("%w: "+ErrFmtSwordPriceOverflow, ErrPriceOverflow, name, price)
	}

	return Sword{name: name, damage: damage, swingTimeMs: swingTimeMs}, nil
}

// NewShield returns an immutable Shield, rejecting armor and block whose sum leaves uint16
func NewShield(name string, armor, block uint16) (Shield, error) {
	if price := uint32(armor) + uint32(block); price > MaxPrice {
		return Shield{}, fmt.Errorf("%w: "+ErrFmtShieldPriceOverflow, ErrPriceOverflow, name, price)
	}

	return Shield{name: name, armor: armor, block: block}, nil
}

// validateParams maps struct-tag failures onto domain errors
func validateParams(p interface{}) error {
	err := validation.GetValidator().ValidateStruct(p)
	if err == nil {
		return nil
	}

	violations := validation.Violations(err)
	for _, v := range violations {
		if v.Field == "SwingTimeMs" && v.Tag == "gt" {
			return ErrInvalidDivisor
		}
	}
	if len(violations) > 0 {
		v := violations[0]
		return fmt.Errorf("%w: "+ErrFmtFieldInvalid, ErrInvalidInput, v.Field, v.Tag)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
