package seating

import "strings"

// DefaultCapacity is the standard number of seats per table.
const DefaultCapacity = 10

// OrderPolicy selects the order in which categories are packed.
// Global table numbers follow category order, so the policy is part
// of the observable output, not an internal tuning knob.
type OrderPolicy string

const (
	// OrderFirstSeen packs categories in order of first appearance
	// among attending guests.
	OrderFirstSeen OrderPolicy = "first-seen"
	// OrderLargestFirst packs the biggest categories first so they
	// occupy contiguous low-numbered table blocks.
	OrderLargestFirst OrderPolicy = "largest-first"
)

// ParseOrderPolicy validates a raw policy string from configuration.
func ParseOrderPolicy(raw string) (OrderPolicy, error) {
	switch OrderPolicy(strings.TrimSpace(strings.ToLower(raw))) {
	case OrderFirstSeen:
		return OrderFirstSeen, nil
	case OrderLargestFirst:
		return OrderLargestFirst, nil
	default:
		return "", ErrUnknownOrderPolicy
	}
}

// Party is an indivisible group of guests within one category. All
// members always land on the same table.
type Party struct {
	Category string
	ID       string
	Members  []int
}

// Size returns the number of guests in the party.
func (p Party) Size() int {
	return len(p.Members)
}

// Table is one opened table: its global number, the category it
// serves, the local capacity in force when it was opened, and the
// guest IDs seated at it in placement order.
type Table struct {
	Number   int
	Category string
	Capacity int
	Guests   []int
}

// remaining seats; negative when an oversized party overflowed.
func (t Table) remaining() int {
	return t.Capacity - len(t.Guests)
}

// Assignment is the final seating result. Tables are ordered by
// table number; ByGuest maps guest ID to table number.
type Assignment struct {
	Tables  []Table
	ByGuest map[int]int
}

// TableFor returns the table number assigned to a guest, or 0 when
// the guest was not part of the packed set.
func (a Assignment) TableFor(guestID int) int {
	return a.ByGuest[guestID]
}
