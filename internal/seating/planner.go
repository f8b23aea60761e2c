package seating

import (
	"sort"

	"github.com/weddingtools/seating-planner/internal/guest"
)

// Planner packs attending guests into tables category by category.
type Planner struct {
	capacity int
	order    OrderPolicy
}

// Option configures Planner behaviour.
type Option func(*Planner)

// WithCapacity overrides the base table capacity.
func WithCapacity(n int) Option {
	return func(p *Planner) {
		p.capacity = n
	}
}

// WithOrderPolicy overrides the category ordering policy.
func WithOrderPolicy(policy OrderPolicy) Option {
	return func(p *Planner) {
		p.order = policy
	}
}

// New constructs a Planner with the default capacity and first-seen
// category ordering.
func New(opts ...Option) *Planner {
	p := &Planner{
		capacity: DefaultCapacity,
		order:    OrderFirstSeen,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Assign seats every attending guest. It always succeeds for a valid
// capacity: opening a fresh table is the unconditional fallback, so
// no guest is ever left unseated.
//
// The result is a deterministic function of the input order and the
// configured policies; identical input yields identical table
// numbers and membership.
func (p *Planner) Assign(attending []guest.Record) (Assignment, error) {
	if p.capacity <= 0 {
		return Assignment{}, ErrInvalidCapacity
	}

	assignment := Assignment{
		ByGuest: make(map[int]int, len(attending)),
	}

	next := 1
	for _, category := range p.categoryOrder(attending) {
		parties, singles := groupParties(attending, category)

		// Narrow exception: a category with exactly one guest more
		// than a full table gets a single capacity+1 table instead
		// of stranding someone alone.
		localCap := p.capacity
		if total := memberCount(parties) + len(singles); total == p.capacity+1 {
			localCap = p.capacity + 1
		}

		open := packParties(nil, parties, localCap, &next)
		open = packSingles(open, singles, localCap, &next)

		for _, t := range open {
			for _, id := range t.Guests {
				assignment.ByGuest[id] = t.Number
			}
			assignment.Tables = append(assignment.Tables, t)
		}
	}

	return assignment, nil
}

// categoryOrder returns category keys in packing order: first-seen
// or largest-first per the policy, with the default category always
// last when present.
func (p *Planner) categoryOrder(attending []guest.Record) []string {
	defaultKey := guest.NormalizeCategory(guest.DefaultCategory)

	var keys []string
	counts := make(map[string]int)
	for _, r := range attending {
		if _, ok := counts[r.CategoryKey]; !ok {
			keys = append(keys, r.CategoryKey)
		}
		counts[r.CategoryKey]++
	}

	if p.order == OrderLargestFirst {
		sort.SliceStable(keys, func(i, j int) bool {
			return counts[keys[i]] > counts[keys[j]]
		})
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != defaultKey {
			out = append(out, k)
		}
	}
	if _, ok := counts[defaultKey]; ok {
		out = append(out, defaultKey)
	}
	return out
}

// groupParties splits one category's guests into stated parties (in
// order of first appearance) and singleton guests with no party id.
func groupParties(attending []guest.Record, category string) (parties, singles []Party) {
	index := make(map[string]int)
	for _, r := range attending {
		if r.CategoryKey != category {
			continue
		}
		if r.PartyID == "" {
			singles = append(singles, Party{
				Category: category,
				Members:  []int{r.ID},
			})
			continue
		}
		i, ok := index[r.PartyID]
		if !ok {
			i = len(parties)
			index[r.PartyID] = i
			parties = append(parties, Party{
				Category: category,
				ID:       r.PartyID,
			})
		}
		parties[i].Members = append(parties[i].Members, r.ID)
	}
	return parties, singles
}

// packParties places stated parties first-fit into the open tables,
// opening a new table seeded with the whole party when none fits.
// A party larger than the capacity still opens its own table; that
// table then exceeds nominal capacity rather than splitting the
// party.
func packParties(open []Table, parties []Party, capacity int, next *int) []Table {
	for _, party := range parties {
		placed := false
		for i := range open {
			if open[i].remaining() >= party.Size() {
				open[i].Guests = append(open[i].Guests, party.Members...)
				placed = true
				break
			}
		}
		if !placed {
			open = openTable(open, party.Category, capacity, party.Members, next)
		}
	}
	return open
}

// packSingles seats singleton guests one at a time into the first
// table with a free seat, opening a new table as the fallback.
func packSingles(open []Table, singles []Party, capacity int, next *int) []Table {
	for _, single := range singles {
		placed := false
		for i := range open {
			if open[i].remaining() >= 1 {
				open[i].Guests = append(open[i].Guests, single.Members...)
				placed = true
				break
			}
		}
		if !placed {
			open = openTable(open, single.Category, capacity, single.Members, next)
		}
	}
	return open
}

// openTable assigns the next global number at the moment the table
// first gains a member. Numbers start at 1 and are never reused.
func openTable(open []Table, category string, capacity int, members []int, next *int) []Table {
	t := Table{
		Number:   *next,
		Category: category,
		Capacity: capacity,
		Guests:   append([]int(nil), members...),
	}
	*next++
	return append(open, t)
}

func memberCount(parties []Party) int {
	total := 0
	for _, p := range parties {
		total += p.Size()
	}
	return total
}
