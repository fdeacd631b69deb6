package availability

import (
	"sort"

	"github.com/manapixels/hair-salon-app-sub002/internal/clock"
)

// BlockedSlots is the set of start times an admin has blocked by hand,
// keyed by date. Blocking is independent of bookings: an already-booked
// slot may be blocked too, the distinction is left to the caller's view.
type BlockedSlots struct {
	byDate map[string]map[clock.Minutes]struct{}
}

func NewBlockedSlots() *BlockedSlots {
	return &BlockedSlots{byDate: make(map[string]map[clock.Minutes]struct{})}
}

// Block adds a start time. Idempotent.
func (b *BlockedSlots) Block(date string, t clock.Minutes) {
	day, ok := b.byDate[date]
	if !ok {
		day = make(map[clock.Minutes]struct{})
		b.byDate[date] = day
	}
	day[t] = struct{}{}
}

// Unblock removes a start time. Idempotent.
func (b *BlockedSlots) Unblock(date string, t clock.Minutes) {
	if day, ok := b.byDate[date]; ok {
		delete(day, t)
		if len(day) == 0 {
			delete(b.byDate, date)
		}
	}
}

func (b *BlockedSlots) Blocked(date string, t clock.Minutes) bool {
	if b == nil {
		return false
	}
	_, ok := b.byDate[date][t]
	return ok
}

// Times returns the blocked start times for a date, sorted.
func (b *BlockedSlots) Times(date string) []clock.Minutes {
	if b == nil {
		return nil
	}
	out := make([]clock.Minutes, 0, len(b.byDate[date]))
	for t := range b.byDate[date] {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
