// Package window computes which dropdown entries to materialize for a
// given scroll position. Entries far outside the viewport collapse into
// height-equivalent spacers so that lists with tens of thousands of
// entries stay responsive, while the keyboard-focused entry and its
// immediate neighbors are always kept as real rows so they can be
// measured and scrolled into view.
//
// All heights are terminal lines.
package window

// DefaultOverscan is the number of lines rendered beyond both viewport
// edges.
const DefaultOverscan = 200

// NoFocus disables the focus carve-out in Compute.
const NoFocus = -1

// Rendered partitions an entry list into spacer-backed bands. Reading
// top to bottom, the on-screen order is:
//
//	spacer(SpaceAboveFirst) EntriesAbove spacer(SpaceAboveSecond)
//	Visible
//	spacer(SpaceBelowFirst) EntriesBelow spacer(SpaceBelowSecond)
//
// The Dropped counts record how many entries each spacer stands in for;
// the concatenation of all bands reconstructs the input list exactly.
type Rendered[T any] struct {
	SpaceAboveFirst    int
	DroppedAboveFirst  int
	SpaceAboveSecond   int
	DroppedAboveSecond int

	SpaceBelowFirst    int
	DroppedBelowFirst  int
	SpaceBelowSecond   int
	DroppedBelowSecond int

	EntriesAbove []T
	Visible      []T
	EntriesBelow []T
}

// Compute partitions entries against the visible band
// [scrollTop-overscan, scrollTop+clientHeight+overscan] in a single
// left-to-right pass over the running height total.
//
// When focusIndex is not NoFocus, the entries at focusIndex-1 ..
// focusIndex+1 are never collapsed into a spacer: out-of-band entries
// on the focus side are kept whole in EntriesAbove/EntriesBelow and the
// remaining out-of-band entries split into the First/Second spacer pair
// around them.
func Compute[T any](entryHeight func(T) int, scrollTop, clientHeight, overscan, focusIndex int, entries []T) Rendered[T] {
	var r Rendered[T]

	lower := scrollTop - overscan
	upper := scrollTop + clientHeight + overscan

	top := 0
	for i, e := range entries {
		h := entryHeight(e)
		bottom := top + h
		top = bottom

		nearFocus := focusIndex != NoFocus &&
			i >= focusIndex-1 && i <= focusIndex+1

		switch {
		case bottom > lower && bottom-h < upper:
			r.Visible = append(r.Visible, e)

		case bottom <= lower:
			switch {
			case nearFocus:
				r.EntriesAbove = append(r.EntriesAbove, e)
			case focusIndex != NoFocus && i > focusIndex+1:
				r.SpaceAboveSecond += h
				r.DroppedAboveSecond++
			default:
				r.SpaceAboveFirst += h
				r.DroppedAboveFirst++
			}

		default:
			switch {
			case nearFocus:
				r.EntriesBelow = append(r.EntriesBelow, e)
			case focusIndex != NoFocus && i > focusIndex+1:
				r.SpaceBelowSecond += h
				r.DroppedBelowSecond++
			default:
				r.SpaceBelowFirst += h
				r.DroppedBelowFirst++
			}
		}
	}

	return r
}

// Count returns the number of entries the partition accounts for,
// rendered rows and spacer stand-ins combined.
func (r Rendered[T]) Count() int {
	return r.DroppedAboveFirst + len(r.EntriesAbove) + r.DroppedAboveSecond +
		len(r.Visible) +
		r.DroppedBelowFirst + len(r.EntriesBelow) + r.DroppedBelowSecond
}
