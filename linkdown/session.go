package linkdown

import (
	"log/slog"
	"strings"
)

// Notifier surfaces user-facing messages for the host to render.
type Notifier interface {
	Notify(message, style string)
}

// NotifyStyleError marks a notification as a validation failure.
const NotifyStyleError = "error"

// Toolbar is a host surface that can be told to close.
type Toolbar interface {
	Close()
}

// TranslateFunc resolves a label key to display text. Purely presentational;
// it has no effect on session logic.
type TranslateFunc func(key string) string

const invalidLinkMessage = "Pasted link is not valid."

// Options configures a LinkSession. Only Document is required; nil
// collaborators are skipped when their side effect would fire.
type Options struct {
	Document *Document

	// Notifier receives validation-failure messages.
	Notifier Notifier
	// Toolbar is closed after an unlink via the activation control.
	Toolbar Toolbar
	// InlineToolbar is closed after a successful commit.
	InlineToolbar Toolbar

	Translate TranslateFunc

	// LinkSuggestions are optional autocomplete hints for the input.
	LinkSuggestions []string

	Logger *slog.Logger
}

// LinkSession is the session state machine orchestrating selection tracking,
// link validation, and document mutation. It manages exactly one
// annotation-editing session at a time over one contiguous selection.
//
// All operations run synchronously on host events; within one event the
// tracker's save/restore ordering keeps a newer selection from being
// clobbered by a stale fake-background restore.
type LinkSession struct {
	doc     *Document
	tracker *SelectionTracker
	mutator *LinkMutator

	notifier      Notifier
	toolbar       Toolbar
	inlineToolbar Toolbar
	translate     TranslateFunc
	suggestions   []string
	logger        *slog.Logger

	state    SessionState
	input    InputState
	titleSet bool
}

// New creates a session over the document in opts.
func New(opts Options) *LinkSession {
	doc := opts.Document
	if doc == nil {
		doc = FromText("")
	}
	translate := opts.Translate
	if translate == nil {
		translate = func(key string) string { return key }
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracker := NewSelectionTracker(doc)
	return &LinkSession{
		doc:           doc,
		tracker:       tracker,
		mutator:       NewLinkMutator(doc, tracker),
		notifier:      opts.Notifier,
		toolbar:       opts.Toolbar,
		inlineToolbar: opts.InlineToolbar,
		translate:     translate,
		suggestions:   opts.LinkSuggestions,
		logger:        logger,
		state:         StateClosed,
	}
}

// Document returns the document this session edits.
func (s *LinkSession) Document() *Document { return s.doc }

// Tracker returns the session's selection tracker.
func (s *LinkSession) Tracker() *SelectionTracker { return s.tracker }

// State returns the current session state.
func (s *LinkSession) State() SessionState { return s.state }

// Input returns the transient input state.
func (s *LinkSession) Input() InputState { return s.input }

// SetLink updates the link input value. Ignored while the input is closed.
func (s *LinkSession) SetLink(v string) {
	if !s.input.Opened {
		return
	}
	s.input.LinkValue = v
}

// SetTitle updates the title input value and marks the title as explicitly
// provided, so a committed empty title is preserved as set-empty rather than
// unset. Ignored while the input is closed.
func (s *LinkSession) SetTitle(v string) {
	if !s.input.Opened {
		return
	}
	s.input.TitleValue = v
	s.titleSet = true
}

// Suggestions returns the configured link suggestions matching prefix.
func (s *LinkSession) Suggestions(prefix string) []string {
	return FilterSuggestions(s.suggestions, prefix)
}

// EnclosingAnchor returns the annotation at the current selection, or nil.
func (s *LinkSession) EnclosingAnchor() *AnchorRecord {
	return s.mutator.FindEnclosing()
}

// Dispatch feeds an intent through the state machine and returns the
// resulting state.
func (s *LinkSession) Dispatch(intent Intent) SessionState {
	switch intent {
	case IntentActivate:
		s.Activate()
	case IntentCommit:
		s.Commit()
	case IntentCancel:
		s.Clear()
	}
	return s.state
}

// Activate handles the activation intent (toolbar button or the Ctrl+K
// shortcut). From Closed over a non-empty selection it opens the input,
// pre-filled when an annotation already encloses the selection. While the
// input is open a second activation either unlinks an enclosing annotation
// immediately, bypassing the input, or toggles the input closed without
// touching the document. Activation with no selection is a silent no-op.
func (s *LinkSession) Activate() {
	if s.state != StateClosed {
		s.activateWhileOpen()
		return
	}

	sel := s.doc.Selection()
	if !sel.Active || sel.IsCaret() {
		return
	}

	s.tracker.SetFakeBackground()
	s.tracker.Save()

	if region := s.tracker.FindParentAnchor(); region != nil {
		s.openEditing(region.Record)
		s.tracker.Restore()
		return
	}
	s.openNew()
}

func (s *LinkSession) activateWhileOpen() {
	s.tracker.Restore()
	s.tracker.RemoveFakeBackground()

	if region := s.tracker.FindParentAnchor(); region != nil {
		// explicit unlink: second press with an annotation under the
		// captured selection skips the input entirely
		s.tracker.ExpandTo(region)
		s.mutator.Remove()
		s.closeSession()
		if s.toolbar != nil {
			s.toolbar.Close()
		}
		return
	}
	// toggle: close the input without mutating the document
	s.closeSession()
}

// Commit handles the Enter intent on the open input. An empty link value is
// the designed unlink path, not an error. A whitespace-containing value fails
// validation: the input stays open, the document is untouched, and the
// failure is surfaced via the notifier. A valid value is normalized and
// inserted over the restored selection, the selection collapses to the end of
// the new annotation, and the session closes.
func (s *LinkSession) Commit() {
	if !s.input.Opened {
		return
	}

	value := s.input.LinkValue
	if strings.TrimSpace(value) == "" {
		s.tracker.Restore()
		s.mutator.Remove()
		s.closeSession()
		return
	}

	if !Validate(value) {
		s.notify(s.translate(invalidLinkMessage), NotifyStyleError)
		s.logger.Warn("rejected link value with whitespace", "value", value)
		return
	}

	link := Normalize(value)
	title := Attr{}
	if s.titleSet {
		title = AttrOf(s.input.TitleValue)
	}

	s.tracker.Restore()
	s.tracker.RemoveFakeBackground()
	if s.mutator.Insert(link, title) {
		if region := s.tracker.FindParentAnchor(); region != nil {
			s.doc.Collapse(region.End)
		}
	}
	s.tracker.ClearSaved()
	s.closeInput()
	s.state = StateClosed
	if s.inlineToolbar != nil {
		s.inlineToolbar.Close()
	}
}

// Clear unconditionally closes the session without mutating the document.
// This is the host-driven cancellation path, e.g. toolbar dismissal.
func (s *LinkSession) Clear() {
	s.closeSession()
}

// CheckState recomputes whether the current selection lies inside an
// annotation; hosts invoke it on every selection change. Inside one, the
// editing input opens pre-filled from the annotation and the selection is
// re-saved, since focus may shift to the input next. The return value drives
// the activation control's active/unlink indication.
func (s *LinkSession) CheckState() bool {
	region := s.tracker.FindParentAnchor()
	if region == nil {
		return false
	}
	s.openEditing(region.Record)
	s.tracker.Save()
	return true
}

func (s *LinkSession) openNew() {
	s.input = InputState{Opened: true}
	s.titleSet = false
	s.state = StateOpenNew
}

func (s *LinkSession) openEditing(rec *AnchorRecord) {
	s.input = InputState{
		Opened:     true,
		LinkValue:  rec.Href.Or(""),
		TitleValue: rec.Title.Or(""),
	}
	s.titleSet = rec.Title.IsSet()
	s.state = StateOpenEditing
}

// closeSession unwinds the reserved marker in the order that keeps a newer
// selection intact, discards the snapshot, and resets the input.
func (s *LinkSession) closeSession() {
	s.tracker.Close()
	s.tracker.ClearSaved()
	s.closeInput()
	s.state = StateClosed
}

func (s *LinkSession) closeInput() {
	s.input = InputState{}
	s.titleSet = false
}

func (s *LinkSession) notify(message, style string) {
	if s.notifier != nil {
		s.notifier.Notify(message, style)
	}
}
