package linkdown

import (
	"strings"
	"unicode/utf8"
)

// Document is a span-based model of one editable rich-text fragment. It owns
// the single live selection and the single fake-background range, turning the
// otherwise-global selection state into an explicit handle passed to every
// tracker and mutator operation.
type Document struct {
	spans []Span

	sel Selection

	// fake is the reserved range standing in for the native highlight while
	// focus is on an input field. fakeOwner enforces that at most one tracker
	// holds the background at a time.
	fake      Selection
	fakeOwner *SelectionTracker
}

// NewDocument creates a document from the given spans. Empty spans are
// dropped and adjacent spans with the same annotation are merged.
func NewDocument(spans ...Span) *Document {
	d := &Document{}
	d.spans = coalesce(spans)
	return d
}

// FromText creates a document holding a single unannotated run of text.
func FromText(text string) *Document {
	return NewDocument(Span{Text: text})
}

// Spans returns a copy of the document's spans. Anchor records are shared;
// treat them as read-only.
func (d *Document) Spans() []Span {
	out := make([]Span, len(d.spans))
	copy(out, d.spans)
	return out
}

// Text returns the flattened document text.
func (d *Document) Text() string {
	var b strings.Builder
	for _, sp := range d.spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Len returns the document length in runes.
func (d *Document) Len() int {
	n := 0
	for _, sp := range d.spans {
		n += utf8.RuneCountInString(sp.Text)
	}
	return n
}

// Clone returns a deep copy sharing no mutable state with d. Selection and
// fake-background state are not carried over; a clone is content only.
func (d *Document) Clone() *Document {
	spans := make([]Span, len(d.spans))
	for i, sp := range d.spans {
		spans[i] = Span{Text: sp.Text}
		if sp.Anchor != nil {
			rec := *sp.Anchor
			spans[i].Anchor = &rec
		}
	}
	return &Document{spans: spans}
}

// Equal reports whether two documents hold identical text and annotations.
func (d *Document) Equal(other *Document) bool {
	if other == nil {
		return false
	}
	if len(d.spans) != len(other.spans) {
		return false
	}
	for i, sp := range d.spans {
		osp := other.spans[i]
		if sp.Text != osp.Text {
			return false
		}
		if (sp.Anchor == nil) != (osp.Anchor == nil) {
			return false
		}
		if sp.Anchor != nil && *sp.Anchor != *osp.Anchor {
			return false
		}
	}
	return true
}

// Select sets the live selection to the half-open rune range [start, end),
// clamped to the document and reordered so start <= end.
func (d *Document) Select(start, end int) {
	start, end = d.clampRange(start, end)
	d.sel = Selection{Start: start, End: end, Active: true}
}

// Collapse sets the live selection to a caret at pos.
func (d *Document) Collapse(pos int) {
	d.Select(pos, pos)
}

// ClearSelection deactivates the live selection.
func (d *Document) ClearSelection() {
	d.sel = Selection{}
}

// Selection returns the live selection.
func (d *Document) Selection() Selection { return d.sel }

// SelectionText returns the text covered by the live selection.
func (d *Document) SelectionText() string {
	if !d.sel.Active {
		return ""
	}
	return d.textRange(d.sel.Start, d.sel.End)
}

// HasFakeBackground reports whether a reserved range is active.
func (d *Document) HasFakeBackground() bool { return d.fakeOwner != nil }

// FakeBackgroundRange returns the reserved range; the boolean is false when
// no fake background is active.
func (d *Document) FakeBackgroundRange() (Selection, bool) {
	if d.fakeOwner == nil {
		return Selection{}, false
	}
	return d.fake, true
}

// setFakeBackground claims the reserved range for t, superseding any other
// tracker that held it.
func (d *Document) setFakeBackground(t *SelectionTracker, r Selection) {
	d.fake = r
	d.fakeOwner = t
}

// removeFakeBackground clears the reserved range if t holds it.
func (d *Document) removeFakeBackground(t *SelectionTracker) {
	if d.fakeOwner != t {
		return
	}
	d.fake = Selection{}
	d.fakeOwner = nil
}

func (d *Document) fakeHeldBy(t *SelectionTracker) bool { return d.fakeOwner == t }

func (d *Document) clampRange(start, end int) (int, int) {
	if start > end {
		start, end = end, start
	}
	n := d.Len()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	return start, end
}

// textRange returns the text covered by the rune range [start, end).
func (d *Document) textRange(start, end int) string {
	start, end = d.clampRange(start, end)
	var b strings.Builder
	pos := 0
	for _, sp := range d.spans {
		runes := []rune(sp.Text)
		spStart, spEnd := pos, pos+len(runes)
		pos = spEnd
		if spEnd <= start {
			continue
		}
		if spStart >= end {
			break
		}
		from, to := 0, len(runes)
		if spStart < start {
			from = start - spStart
		}
		if spEnd > end {
			to = end - spStart
		}
		b.WriteString(string(runes[from:to]))
	}
	return b.String()
}

// anchorAt returns the annotation covering rune position pos, or nil.
// Positions are half-open: pos must satisfy spanStart <= pos < spanEnd.
func (d *Document) anchorAt(pos int) *AnchorRecord {
	p := 0
	for _, sp := range d.spans {
		n := utf8.RuneCountInString(sp.Text)
		if pos >= p && pos < p+n {
			return sp.Anchor
		}
		p += n
	}
	return nil
}

// regionOf returns the full extent of the given annotation, or nil when the
// record is not part of this document. Split pieces of one record are joined
// into a single region.
func (d *Document) regionOf(rec *AnchorRecord) *AnchorRegion {
	if rec == nil {
		return nil
	}
	var region *AnchorRegion
	pos := 0
	for _, sp := range d.spans {
		n := utf8.RuneCountInString(sp.Text)
		if sp.Anchor == rec {
			if region == nil {
				region = &AnchorRegion{Record: rec, Start: pos, End: pos + n}
			} else {
				region.End = pos + n
			}
		}
		pos += n
	}
	return region
}

// replaceRange atomically replaces the rune range [start, end) with the given
// span. The replacement slice is fully built before the document is touched,
// so a failing step can never leave a half-edited span list behind.
func (d *Document) replaceRange(start, end int, repl Span) {
	start, end = d.clampRange(start, end)

	var next []Span
	pos := 0
	inserted := false
	for _, sp := range d.spans {
		runes := []rune(sp.Text)
		spStart, spEnd := pos, pos+len(runes)
		pos = spEnd

		if spEnd <= start {
			next = append(next, sp)
			continue
		}
		if spStart >= end {
			if !inserted {
				next = append(next, repl)
				inserted = true
			}
			next = append(next, sp)
			continue
		}
		if spStart < start {
			next = append(next, Span{Text: string(runes[:start-spStart]), Anchor: sp.Anchor})
		}
		if !inserted {
			next = append(next, repl)
			inserted = true
		}
		if spEnd > end {
			next = append(next, Span{Text: string(runes[end-spStart:]), Anchor: sp.Anchor})
		}
	}
	if !inserted {
		next = append(next, repl)
	}

	d.spans = coalesce(next)
}

// coalesce drops empty spans and merges neighbors wrapped by the same
// annotation record (or both unannotated).
func coalesce(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		if len(out) > 0 && out[len(out)-1].Anchor == sp.Anchor {
			out[len(out)-1].Text += sp.Text
			continue
		}
		out = append(out, sp)
	}
	return out
}
