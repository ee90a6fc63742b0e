package shop

import (
	"fmt"

	"github.com/osse101/BrandishVendor_Go/internal/domain"
)

// Offer renders the vendor line for a statically known item type.
// The compiler instantiates it per concrete T, so calls on a Sword or Shield
// need no interface lookup.
func Offer[T domain.Sellable](item T) string {
	return fmt.Sprintf(OfferTemplate, item.Description(), item.Price())
}

// OfferDynamic renders the vendor line for any Sellable handle, resolving
// Price and Description through the interface at call time.
func OfferDynamic(item domain.Sellable) string {
	return fmt.Sprintf(OfferTemplate, item.Description(), item.Price())
}

// Offers renders one line per item, in slice order
func Offers(items []domain.Sellable) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, OfferDynamic(item))
	}
	return lines
}
