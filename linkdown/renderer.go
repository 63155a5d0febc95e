package linkdown

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// RenderResult is the rendered representation consumed by host adapters.
type RenderResult struct {
	Lines   []string
	Cleaner LineCleaner
}

// Renderer renders a document into decorated lines along with a cleaner that
// can remove the decorations again for matching and column arithmetic.
type Renderer interface {
	Render(doc *Document) (RenderResult, error)
}

// LineCleaner removes non-visible decorations from a rendered line.
type LineCleaner interface {
	Clean(line string) string
}

// LineCleanerFunc adapts a function to the LineCleaner interface.
type LineCleanerFunc func(string) string

func (f LineCleanerFunc) Clean(line string) string { return f(line) }

var ansiSGRPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiSGRPattern.ReplaceAllString(s, "")
}

// SelectionRenderer draws the document text with its editing state: anchors
// underlined, the native selection in reverse video, and the reserved range
// on a colored background. The native highlight and the fake background never
// render together; while the reserved marker is held it wins.
type SelectionRenderer struct {
	// FakeBackgroundColor is the ANSI 256 color of the reserved range.
	FakeBackgroundColor int
}

// NewSelectionRenderer creates a renderer with the default reserved-range color.
func NewSelectionRenderer() *SelectionRenderer {
	return &SelectionRenderer{FakeBackgroundColor: 24}
}

type charStyle struct {
	underline  bool
	reverse    bool
	background bool
}

func (r *SelectionRenderer) Render(doc *Document) (RenderResult, error) {
	runes := []rune(doc.Text())
	sel := doc.Selection()
	fake, hasFake := doc.FakeBackgroundRange()

	var b strings.Builder
	cur := charStyle{}
	for i, rn := range runes {
		want := charStyle{}
		if rn != '\n' {
			want.underline = doc.anchorAt(i) != nil
			if hasFake {
				want.background = fake.Start <= i && i < fake.End
			} else if sel.Active {
				want.reverse = sel.Start <= i && i < sel.End
			}
		}
		b.WriteString(r.transition(cur, want))
		cur = want
		b.WriteRune(rn)
	}
	b.WriteString(r.transition(cur, charStyle{}))

	return RenderResult{
		Lines:   strings.Split(b.String(), "\n"),
		Cleaner: LineCleanerFunc(stripANSI),
	}, nil
}

func (r *SelectionRenderer) transition(from, to charStyle) string {
	var b strings.Builder
	if to.underline != from.underline {
		if to.underline {
			b.WriteString("\x1b[4m")
		} else {
			b.WriteString("\x1b[24m")
		}
	}
	if to.reverse != from.reverse {
		if to.reverse {
			b.WriteString("\x1b[7m")
		} else {
			b.WriteString("\x1b[27m")
		}
	}
	if to.background != from.background {
		if to.background {
			fmt.Fprintf(&b, "\x1b[48;5;%dm", r.FakeBackgroundColor)
		} else {
			b.WriteString("\x1b[49m")
		}
	}
	return b.String()
}

// PreviewRenderer renders the document through glamour for a styled preview
// of the formatted markdown.
type PreviewRenderer struct {
	glamourStyle ansi.StyleConfig
	wordWrap     int
}

func uintPtr(v uint) *uint {
	return &v
}

// NewPreviewRenderer creates a preview renderer with the dark style.
func NewPreviewRenderer() *PreviewRenderer {
	return NewPreviewRendererWithStyle("dark")
}

// NewPreviewRendererWithStyle creates a preview renderer with the specified
// style: "dark", "light", or "auto". "auto" uses the COLORFGBG environment
// variable to detect the terminal background.
func NewPreviewRendererWithStyle(styleName string) *PreviewRenderer {
	var style ansi.StyleConfig

	switch styleName {
	case "light":
		style = styles.LightStyleConfig
	case "auto":
		style = detectStyleFromEnvironment()
	case "dark":
		fallthrough
	default:
		style = styles.DarkStyleConfig
	}

	// Always clear margins for consistent rendering
	style.Document.Margin = uintPtr(0)
	style.CodeBlock.Margin = uintPtr(0)

	return &PreviewRenderer{
		glamourStyle: style,
		wordWrap:     0,
	}
}

// detectStyleFromEnvironment detects the terminal theme using COLORFGBG.
// Format: "foreground;background" (e.g. "15;0"). Background >= 8 indicates a
// light background. Defaults to dark on parse errors or a missing variable.
func detectStyleFromEnvironment() ansi.StyleConfig {
	colorfgbg := os.Getenv("COLORFGBG")
	if colorfgbg == "" {
		return styles.DarkStyleConfig
	}

	parts := strings.Split(colorfgbg, ";")
	if len(parts) < 2 {
		return styles.DarkStyleConfig
	}

	bgStr := strings.TrimSpace(parts[len(parts)-1])
	bg, err := strconv.Atoi(bgStr)
	if err != nil {
		return styles.DarkStyleConfig
	}

	if bg >= 8 {
		return styles.LightStyleConfig
	}
	return styles.DarkStyleConfig
}

// WithWordWrap configures glamour word wrap (0 means no wrap).
func (r *PreviewRenderer) WithWordWrap(cols int) *PreviewRenderer {
	r.wordWrap = cols
	return r
}

func (r *PreviewRenderer) Render(doc *Document) (RenderResult, error) {
	fallback := func() RenderResult {
		return RenderResult{
			Lines:   strings.Split(doc.Text(), "\n"),
			Cleaner: LineCleanerFunc(func(s string) string { return s }),
		}
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(r.glamourStyle),
		glamour.WithWordWrap(r.wordWrap),
	)
	if err != nil {
		return fallback(), err
	}

	out, err := tr.Render(FormatDocument(doc))
	if err != nil {
		return fallback(), err
	}

	return RenderResult{
		Lines:   strings.Split(out, "\n"),
		Cleaner: LineCleanerFunc(stripANSI),
	}, nil
}
