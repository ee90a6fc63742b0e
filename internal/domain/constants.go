package domain

import "math"

// Pricing constants
const (
	swordDamageScale uint16 = 1000
	swordPriceScale  uint16 = 10

	// MaxPrice is the largest amount of gold a single item can be worth
	MaxPrice = math.MaxUint16
)

// Description formats
const (
	DescFmtSword  = "%s, damage is %d, swing time: %dms"
	DescFmtShield = "%s, armor: %d, block: %dms"
)

// Construction error details
const (
	ErrFmtSwordDamageOverflow = "sword '%s' damage %d times %d exceeds %d"
	ErrFmtSwordPriceOverflow  = "sword '%s' would cost %d"
	ErrFmtShieldPriceOverflow = "shield '%s' would cost %d"
	ErrFmtFieldInvalid        = "%s failed '%s' check"
)
