// Package navigate provides the pure focus-movement primitives used by
// the dropdown widget: linear lookups and next/previous steps over an
// ordered entry slice, keyed by a caller-supplied identity function.
//
// All functions are total. A current ID that is not present in the
// slice reports ok == false instead of panicking, so callers can treat
// stale focus references as "nothing to focus".
package navigate

// Find returns the first entry whose identity matches target, along
// with its index.
func Find[T any](uniqueID func(T) string, target string, entries []T) (index int, entry T, ok bool) {
	for i, e := range entries {
		if uniqueID(e) == target {
			return i, e, true
		}
	}
	var zero T
	return 0, zero, false
}

// IndexOf returns the position of the entry whose identity matches
// target.
func IndexOf[T any](uniqueID func(T) string, target string, entries []T) (int, bool) {
	for i, e := range entries {
		if uniqueID(e) == target {
			return i, true
		}
	}
	return 0, false
}

// Next returns the entry following current. When current is the last
// entry, the first entry is returned with wrapped == true; whether the
// wraparound is actually applied is the caller's policy. ok is false
// when current does not appear in entries at all.
func Next[T any](uniqueID func(T) string, current string, entries []T) (index int, entry T, wrapped, ok bool) {
	var zero T
	for i, e := range entries {
		if uniqueID(e) != current {
			continue
		}
		if i == len(entries)-1 {
			return 0, entries[0], true, true
		}
		return i + 1, entries[i+1], false, true
	}
	return 0, zero, false, false
}

// Previous returns the entry preceding current. When current is the
// first entry, the last entry is returned with wrapped == true.
func Previous[T any](uniqueID func(T) string, current string, entries []T) (index int, entry T, wrapped, ok bool) {
	var zero T
	for i, e := range entries {
		if uniqueID(e) != current {
			continue
		}
		if i == 0 {
			last := len(entries) - 1
			return last, entries[last], true, true
		}
		return i - 1, entries[i-1], false, true
	}
	return 0, zero, false, false
}
