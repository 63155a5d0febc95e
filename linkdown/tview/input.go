package tview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/boolean-maybe/linkdown/linkdown"
)

// bindKeys wires the document view and input fields to session intents:
// Ctrl+K activates, Enter commits, Esc cancels, arrows move the caret and
// Shift+arrows extend the selection.
func (e *LinkEditor) bindKeys() {
	e.docView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		shift := event.Modifiers()&tcell.ModShift != 0

		switch event.Key() {
		case tcell.KeyCtrlK:
			e.session.Dispatch(linkdown.IntentActivate)
			e.sync()
			return nil
		case tcell.KeyEscape:
			e.session.Dispatch(linkdown.IntentCancel)
			e.sync()
			return nil
		case tcell.KeyLeft:
			e.moveCursor(-1, shift)
			return nil
		case tcell.KeyRight:
			e.moveCursor(1, shift)
			return nil
		case tcell.KeyHome:
			e.setCursor(0, shift)
			return nil
		case tcell.KeyEnd:
			e.setCursor(e.session.Document().Len(), shift)
			return nil
		}
		return event
	})

	done := func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			e.session.SetLink(e.linkInput.GetText())
			if title := e.titleInput.GetText(); title != e.session.Input().TitleValue {
				e.session.SetTitle(title)
			}
			e.session.Dispatch(linkdown.IntentCommit)
			e.sync()
		case tcell.KeyEscape:
			e.session.Dispatch(linkdown.IntentCancel)
			e.sync()
		}
	}
	e.linkInput.SetDoneFunc(done)
	e.titleInput.SetDoneFunc(done)
}

func (e *LinkEditor) moveCursor(delta int, extend bool) {
	e.setCursor(e.cursor+delta, extend)
}

// setCursor moves the caret, extending the selection when extend is set, and
// polls the session state the way a host does on every selection change.
func (e *LinkEditor) setCursor(pos int, extend bool) {
	doc := e.session.Document()
	if pos < 0 {
		pos = 0
	}
	if max := doc.Len(); pos > max {
		pos = max
	}

	if extend {
		if !e.selecting {
			e.anchorPos = e.cursor
			e.selecting = true
		}
		doc.Select(e.anchorPos, pos)
	} else {
		e.selecting = false
		doc.Collapse(pos)
	}
	e.cursor = pos

	e.session.CheckState()
	e.sync()
}
