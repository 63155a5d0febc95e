package linkdown

// SelectionTracker captures, preserves, and restores the document selection
// across focus changes, and manages the reserved fake-background marker that
// stands in for the native highlight while focus is on an input field.
type SelectionTracker struct {
	doc   *Document
	saved *SelectionSnapshot
}

// NewSelectionTracker creates a tracker over doc.
func NewSelectionTracker(doc *Document) *SelectionTracker {
	return &SelectionTracker{doc: doc}
}

// Save captures the current selection into a snapshot, replacing any previous
// one. No-op when nothing is selected.
func (t *SelectionTracker) Save() {
	sel := t.doc.Selection()
	if !sel.Active {
		return
	}
	t.saved = &SelectionSnapshot{sel: sel, anchor: t.doc.anchorAt(sel.Start)}
}

// Restore re-applies the last saved snapshot as the live selection.
// Idempotent; no-op without a snapshot.
func (t *SelectionTracker) Restore() {
	if t.saved == nil {
		return
	}
	t.doc.Select(t.saved.sel.Start, t.saved.sel.End)
}

// Saved reports whether a snapshot is held.
func (t *SelectionTracker) Saved() bool { return t.saved != nil }

// ClearSaved discards the snapshot.
func (t *SelectionTracker) ClearSaved() { t.saved = nil }

// SetFakeBackground marks the current selection as reserved. Claiming the
// background supersedes any other tracker holding it on the same document, so
// two reserved ranges can never be active at once. No-op without a non-empty
// selection.
func (t *SelectionTracker) SetFakeBackground() {
	sel := t.doc.Selection()
	if !sel.Active || sel.IsCaret() {
		return
	}
	t.doc.setFakeBackground(t, sel)
}

// RemoveFakeBackground clears the reserved marker if this tracker holds it,
// restoring the native selection rendering exactly.
func (t *SelectionTracker) RemoveFakeBackground() {
	t.doc.removeFakeBackground(t)
}

// HasFakeBackground reports whether this tracker currently holds the marker.
func (t *SelectionTracker) HasFakeBackground() bool {
	return t.doc.fakeHeldBy(t)
}

// FindParentAnchor locates the nearest annotation enclosing the current
// selection, ascending from the selection's start position. A caret sitting
// on the boundary right after an annotation still counts as inside it, which
// is where the caret lands after a commit. Returns nil when the selection is
// inactive or outside every annotation.
func (t *SelectionTracker) FindParentAnchor() *AnchorRegion {
	sel := t.doc.Selection()
	if !sel.Active {
		return nil
	}
	rec := t.doc.anchorAt(sel.Start)
	if rec == nil && sel.IsCaret() && sel.Start > 0 {
		rec = t.doc.anchorAt(sel.Start - 1)
	}
	if rec == nil {
		return nil
	}
	return t.doc.regionOf(rec)
}

// ExpandTo replaces the live selection with one spanning the full extent of
// the given annotation. No-op for a nil region.
func (t *SelectionTracker) ExpandTo(region *AnchorRegion) {
	if region == nil {
		return
	}
	t.doc.Select(region.Start, region.End)
}

// Close ends a fake-background session without clobbering a newer selection.
// While the marker is held, it (a) snapshots whatever selection is currently
// active, which may differ from the saved one if the user clicked elsewhere,
// (b) restores the saved snapshot and removes the marker, then (c) re-applies
// the selection from (a). Without the marker it is a no-op.
func (t *SelectionTracker) Close() {
	if !t.HasFakeBackground() {
		return
	}
	current := t.doc.Selection()
	t.Restore()
	t.doc.removeFakeBackground(t)
	if current.Active {
		t.doc.Select(current.Start, current.End)
	}
}
