package shop

import (
	"fmt"
	"reflect"

	"github.com/osse101/BrandishVendor_Go/internal/domain"
)

// Stall is an ordered, mixed collection of Sellable handles.
//
// A handle that wraps a pointer (&sword) borrows a value owned by the caller,
// who must keep it unchanged for as long as the stall is used. A handle that
// wraps a value (sword) is a private copy owned by the stall and is released
// once it is removed or the stall is dropped.
type Stall struct {
	items []domain.Sellable
}

// NewStall creates a stall holding items in the given order
func NewStall(items ...domain.Sellable) *Stall {
	s := &Stall{items: make([]domain.Sellable, 0, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add appends an item to the end of the stall. Nil handles, including a nil
// *Sword or *Shield wrapped in the interface, are ignored.
func (s *Stall) Add(item domain.Sellable) {
	if isNilHandle(item) {
		return
	}
	s.items = append(s.items, item)
}

func isNilHandle(item domain.Sellable) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Remove takes the item at index i off the stall, keeping the order of the rest
func (s *Stall) Remove(i int) (domain.Sellable, error) {
	if i < 0 || i >= len(s.items) {
		return nil, fmt.Errorf(ErrFmtIndexOutOfRange, ErrIndexOutOfRange, i, len(s.items))
	}

	item := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return item, nil
}

// Len returns the number of items on the stall
func (s *Stall) Len() int {
	return len(s.items)
}

// Items returns a copy of the handles in insertion order
func (s *Stall) Items() []domain.Sellable {
	out := make([]domain.Sellable, len(s.items))
	copy(out, s.items)
	return out
}

// Offers renders every item on the stall through dynamic dispatch
func (s *Stall) Offers() []string {
	return Offers(s.items)
}
