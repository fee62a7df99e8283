package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/hct"
	"github.com/jmylchreest/tonal/internal/theme"
)

const swatchWidth = 6

// previewer renders colour swatches. Output that is not a terminal gets
// the Ascii profile, so swatches collapse to blanks and tables stay plain.
type previewer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

func newPreviewer(w io.Writer) *previewer {
	r := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &previewer{w: w, renderer: r}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *previewer) colorful() bool {
	return p.renderer.ColorProfile() != termenv.Ascii
}

// swatch renders a block in argb, or nothing on a plain output.
func (p *previewer) swatch(argb uint32) string {
	if !p.colorful() {
		return ""
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(hct.HexFromArgb(argb))).
		Render(fmt.Sprintf("%*s", swatchWidth, ""))
}

// label renders text in fg over bg, the way the role pair looks in use.
func (p *previewer) label(text string, fg, bg uint32) string {
	if !p.colorful() {
		return text
	}
	return p.renderer.NewStyle().
		Foreground(lipgloss.Color(hct.HexFromArgb(fg))).
		Background(lipgloss.Color(hct.HexFromArgb(bg))).
		Render(" " + text + " ")
}

func (p *previewer) newTable(headers []string) *Table {
	t := NewTable(headers)
	if p.colorful() {
		t.SetHeaderStyle(p.renderer.NewStyle().Bold(true))
	}
	return t
}

// scheme prints every role of s with its tone.
func (p *previewer) scheme(s *theme.Scheme) {
	title := "Light scheme"
	if s.Dark {
		title = "Dark scheme"
	}
	fmt.Fprintln(p.w, title)

	table := p.newTable([]string{"ROLE", "SWATCH", "HEX", "HUE", "CHROMA", "TONE"})
	for _, c := range s.Colors {
		name := c.Name
		if on, ok := s.Get("on_" + c.Name); ok {
			name = p.label(c.Name, on.Argb, c.Argb)
		}
		table.AddRow([]string{
			name,
			p.swatch(c.Argb),
			c.Hex,
			strconv.FormatFloat(c.Hue, 'f', 1, 64),
			strconv.FormatFloat(c.Chroma, 'f', 1, 64),
			strconv.FormatFloat(c.Tone, 'f', 1, 64),
		})
	}
	fmt.Fprint(p.w, table.Render())

	if len(s.Terminal) > 0 {
		fmt.Fprintln(p.w)
		p.terminal(s.Terminal)
	}
}

// terminal prints the 16 ANSI colours.
func (p *previewer) terminal(colors []theme.Color) {
	table := p.newTable([]string{"ANSI", "SWATCH", "HEX"})
	for i, c := range colors {
		table.AddRow([]string{fmt.Sprintf("%2d %s", i, c.Name), p.swatch(c.Argb), c.Hex})
	}
	fmt.Fprint(p.w, table.Render())
}

// theme prints each scheme of t.
func (p *previewer) theme(t *theme.Theme) {
	for i, s := range t.Schemes() {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.scheme(s)
	}
}
