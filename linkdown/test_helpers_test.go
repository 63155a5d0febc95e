package linkdown

// recordingNotifier captures notifier calls for assertions.
type recordingNotifier struct {
	messages []string
	styles   []string
}

func (n *recordingNotifier) Notify(message, style string) {
	n.messages = append(n.messages, message)
	n.styles = append(n.styles, style)
}

// recordingToolbar counts Close calls.
type recordingToolbar struct {
	closed int
}

func (t *recordingToolbar) Close() { t.closed++ }

// linkedDoc builds a "prefix<a>linkText</a>suffix" document.
func linkedDoc(prefix, linkText, href string, title Attr, suffix string) *Document {
	return NewDocument(
		Span{Text: prefix},
		Span{Text: linkText, Anchor: &AnchorRecord{Href: AttrOf(href), Title: title}},
		Span{Text: suffix},
	)
}
