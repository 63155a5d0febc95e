package linkdown

// LinkMutator applies and removes hyperlink annotations on the document at
// the tracked selection.
type LinkMutator struct {
	doc     *Document
	tracker *SelectionTracker
}

// NewLinkMutator creates a mutator editing doc at tracker's selection.
func NewLinkMutator(doc *Document, tracker *SelectionTracker) *LinkMutator {
	return &LinkMutator{doc: doc, tracker: tracker}
}

// FindEnclosing returns the annotation enclosing the current selection, or
// nil when the selection lies outside every annotation. Read-only.
func (m *LinkMutator) FindEnclosing() *AnchorRecord {
	region := m.tracker.FindParentAnchor()
	if region == nil {
		return nil
	}
	return region.Record
}

// Insert wraps the selected text in a single annotation carrying the given
// link and title. A selection lying inside an existing annotation is first
// expanded to that annotation's full extent, so editing a link value edits
// the whole link rather than a sub-range. The selection afterwards spans the
// new annotation. Returns false, leaving the document unchanged, when
// nothing is selected.
func (m *LinkMutator) Insert(link NormalizedLink, title Attr) bool {
	if region := m.tracker.FindParentAnchor(); region != nil {
		m.tracker.ExpandTo(region)
	}
	sel := m.doc.Selection()
	if !sel.Active || sel.IsCaret() {
		return false
	}
	rec := &AnchorRecord{Href: AttrOf(string(link)), Title: title}
	m.doc.replaceRange(sel.Start, sel.End, Span{Text: m.doc.SelectionText(), Anchor: rec})
	m.doc.Select(sel.Start, sel.End)
	return true
}

// Remove unwraps the nearest enclosing annotation, leaving its text content
// in place with no annotation. The selection afterwards spans the unwrapped
// text. No-op when no annotation encloses the selection.
func (m *LinkMutator) Remove() {
	region := m.tracker.FindParentAnchor()
	if region == nil {
		return
	}
	text := m.doc.textRange(region.Start, region.End)
	m.doc.replaceRange(region.Start, region.End, Span{Text: text})
	m.doc.Select(region.Start, region.End)
}
