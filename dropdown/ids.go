package dropdown

// Element IDs are derived from the widget's base ID with fixed
// suffixes. Assistive wiring (aria-activedescendant and friends on
// platforms that have it, message routing here) depends on these being
// stable, so the suffixes are part of the public contract.

// TextfieldID returns the ID of the query textfield element.
func TextfieldID(base string) string {
	return base + "__textfield"
}

// ButtonID returns the ID of the control button element.
func ButtonID(base string) string {
	return base + "__button"
}

// ListID returns the ID of the scrollable entry-list element.
func ListID(base string) string {
	return base + "__element-list"
}

// EntryElementID returns the ID of a single entry element.
func EntryElementID(base, entryID string) string {
	return base + "__element--" + entryID
}
