package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow([]string{"Alice", "30"})
	table.AddRow([]string{"Bob"})
	table.AddRow([]string{"Charlie", "25", "Extra"})

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("short row = %q, want padded to 2 columns", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("long row = %q, want truncated to 2 columns", table.rows[2])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Age", "City"})
	table.AddRow([]string{"Alice", "30", "New York"})
	table.AddRow([]string{"Bob", "25", "LA"})

	output := table.Render()
	for _, want := range []string{"Name", "Age", "City", "Alice", "Bob", "New York"} {
		if !strings.Contains(output, want) {
			t.Errorf("Render() missing %q", want)
		}
	}

	lines := strings.Split(output, "\n")
	if len(lines) < 4 {
		t.Fatalf("Render() has %d lines, want at least 4", len(lines))
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("separator line = %q", lines[1])
	}
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("separator length %d != header length %d", len(lines[1]), len(lines[0]))
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}
	if got := NewTable([]string{"Column1"}).Render(); !strings.Contains(got, "Column1") {
		t.Errorf("Render() with no rows = %q, want header", got)
	}
}

func TestTableStyledCells(t *testing.T) {
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.TrueColor)
	swatch := r.NewStyle().Background(lipgloss.Color("#6750a4")).Render("    ")
	if len(swatch) == lipgloss.Width(swatch) {
		t.Fatalf("swatch %q carries no escape codes", swatch)
	}

	table := NewTable([]string{"Role", "Swatch", "Hex"})
	table.AddRow([]string{"primary", swatch, "#6750a4"})
	table.AddRow([]string{"on_primary", "", "#ffffff"})

	lines := strings.Split(table.Render(), "\n")
	plain := func(s string) int { return lipgloss.Width(s) }
	if plain(lines[2]) != plain(lines[3]) {
		t.Errorf("styled row width %d != plain row width %d", plain(lines[2]), plain(lines[3]))
	}
	if !strings.HasSuffix(lines[2], "#6750a4") {
		t.Errorf("row = %q, want hex column aligned after swatch", lines[2])
	}
}

func TestTableWrap(t *testing.T) {
	table := NewTable([]string{"Name", "Description"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"css", "CSS custom properties for web"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("Render() = %d lines, want 5:\n%s", len(lines), strings.Join(lines, "\n"))
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"→", 3, "→  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		got := wrapText(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
