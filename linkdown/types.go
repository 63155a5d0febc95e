package linkdown

// Attr is an optional string attribute. The zero value means "unset", which
// is distinct from an attribute explicitly set to the empty string.
type Attr struct {
	value string
	set   bool
}

// AttrOf returns an Attr explicitly set to v. v may be empty.
func AttrOf(v string) Attr { return Attr{value: v, set: true} }

// Get returns the attribute value and whether it was set.
func (a Attr) Get() (string, bool) { return a.value, a.set }

// IsSet reports whether the attribute was explicitly set.
func (a Attr) IsSet() bool { return a.set }

// Or returns the attribute value, or fallback when unset.
func (a Attr) Or(fallback string) string {
	if a.set {
		return a.value
	}
	return fallback
}

// AnchorRecord is a hyperlink annotation wrapping a run of document text.
// Href and Title are optional; an absent attribute is distinct from an empty
// one. Records are identity-bearing: the document holds one *AnchorRecord per
// annotation element, so two annotations with equal attributes are still
// separate annotations.
type AnchorRecord struct {
	Href  Attr
	Title Attr
}

// Span is a contiguous run of document text, optionally wrapped by an anchor.
type Span struct {
	Text   string
	Anchor *AnchorRecord
}

// Selection is a half-open rune-offset range [Start, End) over the document's
// flattened text. Active distinguishes "no selection" from a caret at offset 0.
type Selection struct {
	Start  int
	End    int
	Active bool
}

// IsCaret reports whether the selection is collapsed to a single position.
func (s Selection) IsCaret() bool { return s.Active && s.Start == s.End }

// SelectionSnapshot is an opaque capture of a selection sufficient to restore
// an equivalent one later. Owned exclusively by SelectionTracker.
type SelectionSnapshot struct {
	sel    Selection
	anchor *AnchorRecord // enclosing annotation identity at capture time, if any
}

// AnchorRegion is the full extent of one annotation in the document.
type AnchorRegion struct {
	Record *AnchorRecord
	Start  int
	End    int
}

// NormalizedLink is a link value produced by Normalize: free of whitespace
// and, unless it matches an internal reference shape, starting with an
// explicit scheme.
type NormalizedLink string

// SessionState enumerates the LinkSession states.
type SessionState int

const (
	// StateClosed means no editing session is in progress.
	StateClosed SessionState = iota
	// StateOpenNew means the input is open over a selection with no
	// existing annotation.
	StateOpenNew
	// StateOpenEditing means the input is open pre-filled from an existing
	// annotation.
	StateOpenEditing
)

func (s SessionState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpenNew:
		return "open-new"
	case StateOpenEditing:
		return "open-editing"
	}
	return "unknown"
}

// InputState is the transient UI state of one open→close editing cycle.
type InputState struct {
	Opened     bool
	LinkValue  string
	TitleValue string
}

// Intent identifies a user action dispatched to the session state machine.
// Keyboard and mouse binding is the host adapter's job.
type Intent int

const (
	// IntentActivate is the toolbar button press or activation shortcut.
	IntentActivate Intent = iota
	// IntentCommit is Enter in the open input.
	IntentCommit
	// IntentCancel is a host-driven dismissal, e.g. toolbar close.
	IntentCancel
)

// ActivateShortcut is the keyboard shortcut hosts should bind to
// IntentActivate. On macOS hosts the Cmd modifier replaces Ctrl.
const ActivateShortcut = "Ctrl+K"
