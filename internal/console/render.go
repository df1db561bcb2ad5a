package console

import (
	"os"
	"regexp"
	"strings"

	"github.com/moby/term"
	"github.com/morikuni/aec"
)

// Color modes accepted by NewRenderer.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	tagPattern = regexp.MustCompile(`\[(/?)([a-z0-9]+)\]`)

	styles = map[string]string{
		"green":   aec.GreenF.String(),
		"red":     aec.RedF.String(),
		"orange3": aec.Color8BitF(aec.NewRGB8Bit(215, 135, 0)).String(),
	}
	styleReset = aec.DefaultF.String()

	glyphs = map[string]string{
		IconFire:  "🔥",
		IconCheck: "✔",
		IconCross: "✘",
	}
)

// Renderer resolves markup tokens into terminal output.
type Renderer struct {
	color bool
}

// NewRenderer builds a renderer for the given color mode. Auto enables
// color only when stdout is a terminal and NO_COLOR is unset.
func NewRenderer(mode string) *Renderer {
	switch mode {
	case ColorAlways:
		return &Renderer{color: true}
	case ColorNever:
		return &Renderer{color: false}
	default:
		on := term.IsTerminal(os.Stdout.Fd()) && os.Getenv("NO_COLOR") == ""
		return &Renderer{color: on}
	}
}

// Render replaces icon tokens with glyphs and style tags with ANSI
// sequences. With color off, style tags are stripped instead. Unknown
// tags are dropped in both modes.
func (r *Renderer) Render(text string) string {
	for token, glyph := range glyphs {
		text = strings.ReplaceAll(text, token, glyph)
	}
	return tagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		if !r.color {
			return ""
		}
		m := tagPattern.FindStringSubmatch(tag)
		if m[1] == "/" {
			return styleReset
		}
		if code, ok := styles[m[2]]; ok {
			return code
		}
		return ""
	})
}
