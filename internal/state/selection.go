package state

// Selection is the highlighted row of the station list. It is unset exactly
// when the list is empty.
type Selection struct {
	index int
	set   bool
}

// NewSelection returns the initial selection for a list of n stations.
func NewSelection(n int) Selection {
	if n > 0 {
		return Selection{index: 0, set: true}
	}
	return Selection{}
}

// Index returns the selected index and whether one is set.
func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

// Next moves down one row, stopping at the last.
func (s *Selection) Next(n int) {
	if n <= 0 {
		return
	}
	if !s.set {
		s.Set(0, n)
		return
	}
	s.Set(s.index+1, n)
}

// Previous moves up one row, stopping at the first.
func (s *Selection) Previous(n int) {
	if n <= 0 {
		return
	}
	if !s.set {
		s.Set(0, n)
		return
	}
	s.Set(s.index-1, n)
}

// Set selects i clamped to [0, n-1], or clears the selection when n is 0.
func (s *Selection) Set(i, n int) {
	if n <= 0 {
		*s = Selection{}
		return
	}
	*s = Selection{index: clamp(i, 0, n-1), set: true}
}

// AfterAppend keeps the selection valid once the list has grown to n.
func (s *Selection) AfterAppend(n int) {
	if !s.set && n > 0 {
		s.Set(0, n)
	}
}

// AfterRemove re-maps the selection once index removed is gone and n
// stations remain: the removed row hands over to its successor (or the new
// last row), rows below it shift up to keep tracking the same station.
func (s *Selection) AfterRemove(removed, n int) {
	if n <= 0 {
		*s = Selection{}
		return
	}
	if !s.set {
		s.Set(0, n)
		return
	}
	switch {
	case s.index == removed:
		s.Set(removed, n)
	case s.index > removed:
		s.Set(s.index-1, n)
	default:
		s.Set(s.index, n)
	}
}

// AfterSwap follows the selected station when rows i and j trade places.
func (s *Selection) AfterSwap(i, j int) {
	if s.set {
		s.index = swapIndex(s.index, i, j)
	}
}

func swapIndex(idx, i, j int) int {
	switch idx {
	case i:
		return j
	case j:
		return i
	default:
		return idx
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
