package tview

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/boolean-maybe/linkdown/linkdown"
	"github.com/boolean-maybe/linkdown/util"
)

// toolbarFunc adapts a func to the linkdown.Toolbar interface.
type toolbarFunc func()

func (f toolbarFunc) Close() { f() }

// LinkEditor is a tview-based editing surface for one document fragment: a
// text view showing the document with its selection state, plus inline link
// and title inputs that appear while an editing session is open.
type LinkEditor struct {
	*tview.Flex

	docView    *tview.TextView
	linkInput  *tview.InputField
	titleInput *tview.InputField
	status     *tview.TextView

	session   *linkdown.LinkSession
	renderer  linkdown.Renderer
	converter *util.AnsiConverter

	app *tview.Application

	// keyboard-driven caret and selection anchor
	cursor    int
	anchorPos int
	selecting bool

	inputVisible bool
	notice       string

	onStateChanged func(*LinkEditor)
}

// NewLinkEditor creates an editor from the given session options.
// Collaborator fields left nil in opts are filled with the editor's own
// implementations.
func NewLinkEditor(opts linkdown.Options) *LinkEditor {
	e := &LinkEditor{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		docView:    tview.NewTextView(),
		linkInput:  tview.NewInputField(),
		titleInput: tview.NewInputField(),
		status:     tview.NewTextView(),
		renderer:   linkdown.NewSelectionRenderer(),
		converter:  util.NewAnsiConverter(true),
	}

	if opts.Notifier == nil {
		opts.Notifier = e
	}
	if opts.Toolbar == nil {
		opts.Toolbar = toolbarFunc(func() {})
	}
	if opts.InlineToolbar == nil {
		opts.InlineToolbar = toolbarFunc(func() {})
	}
	e.session = linkdown.New(opts)

	e.docView.SetDynamicColors(true)
	e.docView.SetWrap(false)
	e.status.SetDynamicColors(true)

	e.linkInput.SetLabel("Link: ")
	e.linkInput.SetAutocompleteFunc(func(currentText string) []string {
		return e.session.Suggestions(currentText)
	})
	e.titleInput.SetLabel("Title: ")

	e.bindKeys()
	e.rebuildLayout()
	e.refresh()
	return e
}

// Session exposes the underlying UI-agnostic link session.
func (e *LinkEditor) Session() *linkdown.LinkSession { return e.session }

// SetApplication wires the application used for focus changes.
func (e *LinkEditor) SetApplication(app *tview.Application) *LinkEditor {
	e.app = app
	return e
}

// SetRenderer configures the renderer used for the document view.
func (e *LinkEditor) SetRenderer(r linkdown.Renderer) *LinkEditor {
	if r == nil {
		r = linkdown.NewSelectionRenderer()
	}
	e.renderer = r
	e.refresh()
	return e
}

// SetStateChangedHandler sets a callback fired after every session change.
func (e *LinkEditor) SetStateChangedHandler(handler func(*LinkEditor)) *LinkEditor {
	e.onStateChanged = handler
	return e
}

// Notify implements linkdown.Notifier: the message is surfaced on the status
// line until the next state change.
func (e *LinkEditor) Notify(message, style string) {
	color := "white"
	if style == linkdown.NotifyStyleError {
		color = "red"
	}
	e.notice = fmt.Sprintf(" [%s]%s[-]", color, tview.Escape(message))
}

// rebuildLayout lays the widgets out top to bottom: document view, the input
// rows while a session is open, and the status line.
func (e *LinkEditor) rebuildLayout() {
	e.Flex.Clear()
	e.Flex.AddItem(e.docView, 0, 1, true)
	if e.inputVisible {
		e.Flex.AddItem(e.linkInput, 1, 0, false)
		e.Flex.AddItem(e.titleInput, 1, 0, false)
	}
	e.Flex.AddItem(e.status, 1, 0, false)
}

// sync reconciles widget state with the session after a dispatch.
func (e *LinkEditor) sync() {
	in := e.session.Input()
	if in.Opened && !e.inputVisible {
		e.openInputs(in)
	} else if !in.Opened && e.inputVisible {
		e.closeInputs()
	}
	e.refresh()
	if e.onStateChanged != nil {
		e.onStateChanged(e)
	}
}

func (e *LinkEditor) openInputs(in linkdown.InputState) {
	e.inputVisible = true
	e.linkInput.SetText(in.LinkValue)
	e.titleInput.SetText(in.TitleValue)
	e.rebuildLayout()
	e.focus(e.linkInput)
}

func (e *LinkEditor) closeInputs() {
	e.inputVisible = false
	e.linkInput.SetText("")
	e.titleInput.SetText("")
	e.rebuildLayout()
	e.focus(e.docView)
}

func (e *LinkEditor) focus(p tview.Primitive) {
	if e.app != nil {
		e.app.SetFocus(p)
	}
}

func (e *LinkEditor) refresh() {
	res, err := e.renderer.Render(e.session.Document())
	if err == nil {
		e.docView.SetText(e.converter.Convert(strings.Join(res.Lines, "\n")))
	}
	e.updateStatus()
}

func (e *LinkEditor) updateStatus() {
	if e.notice != "" {
		e.status.SetText(e.notice)
		e.notice = ""
		return
	}
	if rec := e.session.EnclosingAnchor(); rec != nil {
		e.status.SetText(fmt.Sprintf(" [yellow]%s[-] | %s to edit, twice to unlink",
			tview.Escape(rec.Href.Or("")), linkdown.ActivateShortcut))
		return
	}
	e.status.SetText(fmt.Sprintf(" %s | select with Shift+arrows, %s to link",
		e.session.State(), linkdown.ActivateShortcut))
}

var _ tview.Primitive = (*LinkEditor)(nil)
var _ linkdown.Notifier = (*LinkEditor)(nil)
