// Package feed implements the polling client: cursor-based fetching from
// the lead store, bounded deduplication, and at-most-once notification.
package feed

// SeenSet is a bounded set of lead ids in insertion order. It guards
// against re-notifying when an unchanged cursor makes consecutive polls
// return overlapping pages; the cursor, not this set, is the source of
// truth for dedup. When full, the oldest entry is evicted.
type SeenSet struct {
	capacity int
	order    []string
	index    map[string]struct{}
}

// NewSeenSet creates a seen-set holding at most capacity ids.
func NewSeenSet(capacity int) *SeenSet {
	if capacity < 1 {
		capacity = 1
	}
	return &SeenSet{
		capacity: capacity,
		order:    make([]string, 0, capacity),
		index:    make(map[string]struct{}, capacity),
	}
}

// Contains reports whether id has been seen and not yet evicted.
func (s *SeenSet) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Add records id, evicting the oldest entry when at capacity. Adding an
// id already present is a no-op.
func (s *SeenSet) Add(id string) {
	if s.Contains(id) {
		return
	}
	if len(s.order) == s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.index, oldest)
	}
	s.order = append(s.order, id)
	s.index[id] = struct{}{}
}

// Len returns the number of ids currently tracked.
func (s *SeenSet) Len() int {
	return len(s.order)
}
