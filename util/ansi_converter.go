package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Package-level compiled regex for ANSI SGR sequences (avoids recompilation per call).
var ansiSGRPattern = regexp.MustCompile(`\x1b\[([0-9;]*)m`)

// sgrState tracks the attributes a converted tag has to express.
type sgrState struct {
	fg, bg    string
	bold      bool
	underline bool
	reverse   bool
}

// AnsiConverter converts ANSI escape sequences to tview color tags.
// Besides colors it handles bold, underline, and reverse video, which the
// selection renderer uses for anchors, the native highlight, and the
// reserved-range marker.
type AnsiConverter struct {
	enabled bool
}

// NewAnsiConverter creates a new ANSI converter.
// enabled: if false, Convert returns text unchanged.
func NewAnsiConverter(enabled bool) *AnsiConverter {
	return &AnsiConverter{
		enabled: enabled,
	}
}

// Convert translates ANSI escape sequences to tview color tags.
func (c *AnsiConverter) Convert(text string) string {
	if !c.enabled {
		return text
	}

	result := strings.Builder{}
	lastIndex := 0

	var state sgrState

	matches := ansiSGRPattern.FindAllStringSubmatchIndex(text, -1)
	for _, match := range matches {
		result.WriteString(text[lastIndex:match[0]])

		params := text[match[2]:match[3]]

		next := parseSGR(params, state)
		if next != state {
			state = next
			result.WriteString(formatTviewTag(state))
		}

		lastIndex = match[1]
	}

	result.WriteString(text[lastIndex:])
	return result.String()
}

func parseSGR(params string, current sgrState) sgrState {
	state := current

	// Per ANSI SGR, an empty parameter list (ESC[m) is equivalent to "0" (reset).
	if params == "" {
		params = "0"
	}

	parts := strings.Split(params, ";")

	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}

		switch {
		case code == 0:
			state = sgrState{}
		case code == 1:
			state.bold = true
		case code == 22:
			state.bold = false
		case code == 4:
			state.underline = true
		case code == 24:
			state.underline = false
		case code == 7:
			state.reverse = true
		case code == 27:
			state.reverse = false
		case code == 38:
			if color, skip, ok := parseExtendedColor(parts, i); ok {
				state.fg = color
				i += skip
			}
		case code == 48:
			if color, skip, ok := parseExtendedColor(parts, i); ok {
				state.bg = color
				i += skip
			}
		case code == 39:
			state.fg = ""
		case code == 49:
			state.bg = ""
		case code >= 30 && code <= 37:
			state.fg = Ansi256ToHex(code - 30)
		case code >= 40 && code <= 47:
			state.bg = Ansi256ToHex(code - 40)
		case code >= 90 && code <= 97:
			state.fg = Ansi256ToHex(code - 90 + 8)
		case code >= 100 && code <= 107:
			state.bg = Ansi256ToHex(code - 100 + 8)
		}
	}

	return state
}

// parseExtendedColor parses the 38/48 "5;n" and "2;r;g;b" forms starting at
// parts[i]. It returns the hex color, how many extra parts were consumed, and
// whether parsing succeeded.
func parseExtendedColor(parts []string, i int) (string, int, bool) {
	if i+2 < len(parts) && parts[i+1] == "5" {
		if colorCode, err := strconv.Atoi(parts[i+2]); err == nil {
			return Ansi256ToHex(colorCode), 2, true
		}
		return "", 0, false
	}
	if i+4 < len(parts) && parts[i+1] == "2" {
		r, _ := strconv.Atoi(parts[i+2])
		g, _ := strconv.Atoi(parts[i+3])
		b, _ := strconv.Atoi(parts[i+4])
		return fmt.Sprintf("#%02x%02x%02x", r, g, b), 4, true
	}
	return "", 0, false
}

func formatTviewTag(state sgrState) string {
	fg := state.fg
	if fg == "" {
		fg = "-"
	}
	bg := state.bg
	if bg == "" {
		bg = "-"
	}

	attr := ""
	if state.bold {
		attr += "b"
	}
	if state.underline {
		attr += "u"
	}
	if state.reverse {
		attr += "r"
	}
	if attr == "" {
		attr = "-"
	}

	return fmt.Sprintf("[%s:%s:%s]", fg, bg, attr)
}

// Ansi256ToHex converts an ANSI 256 color code to a hex color.
func Ansi256ToHex(code int) string {
	r, g, b := Ansi256ToRGB(code)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Ansi256ToRGB converts an ANSI 256 color code to RGB values.
func Ansi256ToRGB(code int) (r, g, b int) {
	if code < 16 {
		standardColors := [][]int{
			{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
			{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
			{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		}
		if code < len(standardColors) {
			return standardColors[code][0], standardColors[code][1], standardColors[code][2]
		}
	} else if code >= 16 && code <= 231 {
		code -= 16
		b := code % 6
		g := (code / 6) % 6
		r := code / 36
		return r * 51, g * 51, b * 51
	} else if code >= 232 && code <= 255 {
		gray := 8 + (code-232)*10
		return gray, gray, gray
	}
	return 0, 0, 0
}
