package domain

import "fmt"

// Sellable is anything a vendor can put on the counter.
// Both queries must be pure: same fields, same answer, no mutation.
type Sellable interface {
	Price() uint16
	Description() string
}

// ItemKind identifies a concrete Sellable variant
type ItemKind string

const (
	KindSword  ItemKind = "sword"
	KindShield ItemKind = "shield"
)

// Sword is a melee weapon priced by damage per swing time.
// Build it with NewSword; the zero value has no swing time and cannot be priced.
type Sword struct {
	name        string
	damage      uint16
	swingTimeMs uint16
}

// Price computes (damage * 1000) / swing_time * 10 in uint16 arithmetic.
// The grouping matters: the intermediate division truncates.
func (s Sword) Price() uint16 {
	return s.damage * swordDamageScale / s.swingTimeMs * swordPriceScale
}

// Description returns "<name>, damage is <damage>, swing time: <ms>ms"
func (s Sword) Description() string {
	return fmt.Sprintf(DescFmtSword, s.name, s.damage, s.swingTimeMs)
}

func (s Sword) Kind() ItemKind      { return KindSword }
func (s Sword) Name() string        { return s.name }
func (s Sword) Damage() uint16      { return s.damage }
func (s Sword) SwingTimeMs() uint16 { return s.swingTimeMs }

// Shield is priced by the sum of its armor and block values
type Shield struct {
	name  string
	armor uint16
	block uint16
}

// Price returns armor + block
func (s Shield) Price() uint16 {
	return s.armor + s.block
}

// Description returns "<name>, armor: <armor>, block: <block>ms"
func (s Shield) Description() string {
	return fmt.Sprintf(DescFmtShield, s.name, s.armor, s.block)
}

func (s Shield) Kind() ItemKind { return KindShield }
func (s Shield) Name() string   { return s.name }
func (s Shield) Armor() uint16  { return s.armor }
func (s Shield) Block() uint16  { return s.block }

// KindOf reports the variant behind a Sellable handle, looking through pointers.
// Unknown implementations report an empty kind.
func KindOf(item Sellable) ItemKind {
	if k, ok := item.(interface{ Kind() ItemKind }); ok {
		return k.Kind()
	}
	return ""
}
