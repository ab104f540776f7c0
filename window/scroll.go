package window

// ScrollData is a snapshot of the list viewport and of one entry's
// geometry inside it. It is taken when a key event decides where focus
// will move and consumed once to compute the scroll correction, so no
// second measurement round-trip is needed.
type ScrollData struct {
	ListScrollTop     int
	ListClientHeight  int
	EntryOffsetTop    int
	EntryOffsetHeight int
}

// Adjust returns the scroll offset that reveals the measured entry with
// the smallest movement: scrolling up to its top edge when it sits
// above the viewport, down just enough to expose its bottom edge when
// it sits below. An entry more than one viewport away is centered
// instead. changed is false when the entry is already fully visible.
func Adjust(d ScrollData) (scrollTop int, changed bool) {
	entryTop := d.EntryOffsetTop
	entryBottom := d.EntryOffsetTop + d.EntryOffsetHeight
	viewBottom := d.ListScrollTop + d.ListClientHeight

	switch {
	case entryTop < d.ListScrollTop:
		if d.ListScrollTop-entryTop > d.ListClientHeight {
			return Center(d), true
		}
		return max(0, entryTop), true

	case entryBottom > viewBottom:
		if entryBottom-viewBottom > d.ListClientHeight {
			return Center(d), true
		}
		return max(0, entryBottom-d.ListClientHeight), true
	}

	return d.ListScrollTop, false
}

// Center returns the scroll offset that puts the measured entry in the
// middle of the viewport.
func Center(d ScrollData) int {
	return max(0, d.EntryOffsetTop+d.EntryOffsetHeight/2-d.ListClientHeight/2)
}

// Reset computes the scroll offset for a list that just opened: top of
// the list when no cached geometry exists, otherwise the Adjust result
// for the cached focus entry.
func Reset(cache *ScrollData, hasKeyboardFocus bool) int {
	if cache == nil || !hasKeyboardFocus {
		return 0
	}
	scrollTop, _ := Adjust(*cache)
	return scrollTop
}

// Measure computes the ScrollData snapshot for the index-th entry from
// the per-entry heights, replacing the DOM child-node measurement of
// the original platform with a prefix sum.
func Measure[T any](entryHeight func(T) int, entries []T, index, scrollTop, clientHeight int) (ScrollData, bool) {
	if index < 0 || index >= len(entries) {
		return ScrollData{}, false
	}
	top := 0
	for _, e := range entries[:index] {
		top += entryHeight(e)
	}
	return ScrollData{
		ListScrollTop:     scrollTop,
		ListClientHeight:  clientHeight,
		EntryOffsetTop:    top,
		EntryOffsetHeight: entryHeight(entries[index]),
	}, true
}

// TotalHeight returns the summed height of all entries.
func TotalHeight[T any](entryHeight func(T) int, entries []T) int {
	total := 0
	for _, e := range entries {
		total += entryHeight(e)
	}
	return total
}
