package booking

import (
	"errors"
	"fmt"

	"chershare/internal/pkg/kv"
)

// ErrCollision marks every collision rejection; match with errors.Is.
var ErrCollision = errors.New("interval collides with an existing booking")

// CollisionError is a terminal rejection of one specific request; the
// caller must not retry the same interval.
type CollisionError struct {
	WithID uint64
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("interval collides with booking %d", e.WithID)
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// span mirrors a committed booking's boundaries in the index so a probe
// can read the counterpart boundary without a ledger lookup.
type span struct {
	id      uint64
	beginMs int64
	endMs   int64
}

func (s span) interval() Interval {
	return Interval{BeginMs: s.beginMs, EndMs: s.endMs}
}

// Index answers "does [begin,end) overlap any committed booking?" from
// two ordered boundary maps instead of a scan. startsByTime and
// endsByTime are always mutated together, atomically with the ledger.
type Index struct {
	startsByTime kv.OrderedMap[int64, span]
	endsByTime   kv.OrderedMap[int64, span]
}

const (
	prefixStarts = "bs"
	prefixEnds   = "be"
)

func NewIndex(store *kv.Store) (*Index, error) {
	starts, err := kv.NewOrderedMap[int64, span](store, prefixStarts)
	if err != nil {
		return nil, err
	}
	ends, err := kv.NewOrderedMap[int64, span](store, prefixEnds)
	if err != nil {
		return nil, err
	}
	return &Index{startsByTime: starts, endsByTime: ends}, nil
}

// CheckNoCollision runs the two-sided probe: the nearest end-marker to
// the right of the new begin, and the nearest begin-marker to the left
// of the new end. Both probes must pass. Touching intervals
// (end == begin2 or begin == end2) are not collisions under the
// half-open convention.
func (x *Index) CheckNoCollision(iv Interval) error {
	// Smallest existing end strictly greater than the new begin: its
	// booking overlaps unless it starts at or after the new end.
	if e, ok := x.endsByTime.HigherEntry(iv.BeginMs); ok {
		if e.Value.interval().Overlaps(iv) {
			return &CollisionError{WithID: e.Value.id}
		}
	}
	// Largest existing begin strictly less than the new end: its
	// booking overlaps unless it ends at or before the new begin.
	if s, ok := x.startsByTime.LowerEntry(iv.EndMs); ok {
		if s.Value.interval().Overlaps(iv) {
			return &CollisionError{WithID: s.Value.id}
		}
	}
	return nil
}

func (x *Index) insert(id uint64, iv Interval) {
	sp := span{id: id, beginMs: iv.BeginMs, endMs: iv.EndMs}
	x.startsByTime.Put(iv.BeginMs, sp)
	x.endsByTime.Put(iv.EndMs, sp)
}

func (x *Index) remove(iv Interval) {
	x.startsByTime.Delete(iv.BeginMs)
	x.endsByTime.Delete(iv.EndMs)
}

func (x *Index) Len() int {
	return x.startsByTime.Len()
}
