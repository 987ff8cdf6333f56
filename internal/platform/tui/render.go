package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-contra/internal/core"
)

// paletteCodes maps core.Color to terminal colour codes. The stage uses the
// low sixteen plus orange and gray for ground and HUD accents.
var paletteCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette turns screen colours into styled text for one terminal. SSH
// sessions build theirs on the session renderer so the client's colour
// profile applies, not the server's.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette creates a palette on r, or on the default renderer if r is nil.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{styles: make(map[core.Color]lipgloss.Style, len(paletteCodes))}
	for c, code := range paletteCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// Render converts a Screen buffer to a styled string for display. Adjacent
// cells of one colour share a style; default and unknown colours are
// written unstyled.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if style, ok := p.styles[color]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
