package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorTheme represents a set of colors for the CLI
type ColorTheme struct {
	Name      string
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color
	Header    lipgloss.Color
	Highlight lipgloss.Color
}

// Available themes
var (
	DefaultTheme = ColorTheme{
		Name:      "default",
		Success:   lipgloss.Color("2"),
		Error:     lipgloss.Color("1"),
		Warning:   lipgloss.Color("3"),
		Info:      lipgloss.Color("4"),
		Header:    lipgloss.Color("6"),
		Highlight: lipgloss.Color("5"),
	}

	GruvboxTheme = ColorTheme{
		Name:      "gruvbox",
		Success:   lipgloss.Color("142"),
		Error:     lipgloss.Color("167"),
		Warning:   lipgloss.Color("214"),
		Info:      lipgloss.Color("109"),
		Header:    lipgloss.Color("208"),
		Highlight: lipgloss.Color("175"),
	}

	TokyoNightTheme = ColorTheme{
		Name:      "tokyo-night",
		Success:   lipgloss.Color("115"),
		Error:     lipgloss.Color("203"),
		Warning:   lipgloss.Color("222"),
		Info:      lipgloss.Color("110"),
		Header:    lipgloss.Color("139"),
		Highlight: lipgloss.Color("216"),
	}
)

// AvailableThemes lists every theme selectable by name.
var AvailableThemes = []ColorTheme{DefaultTheme, GruvboxTheme, TokyoNightTheme}

// LookupTheme returns the theme called name.
func LookupTheme(name string) (ColorTheme, bool) {
	for _, theme := range AvailableThemes {
		if theme.Name == name {
			return theme, true
		}
	}
	return ColorTheme{}, false
}

// GetThemeNames returns all available theme names
func GetThemeNames() []string {
	var names []string
	for _, theme := range AvailableThemes {
		names = append(names, theme.Name)
	}
	return names
}

// Printer writes themed, user-facing messages. Colors are dropped when w is
// not a terminal.
type Printer struct {
	w        io.Writer
	theme    ColorTheme
	renderer *lipgloss.Renderer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, theme ColorTheme) *Printer {
	return &Printer{w: w, theme: theme, renderer: lipgloss.NewRenderer(w)}
}

func (p *Printer) style(c lipgloss.Color) lipgloss.Style {
	return p.renderer.NewStyle().Foreground(c)
}

// Success prints a success message
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.w, p.style(p.theme.Success).Render("✓ "+message))
}

// Error prints an error message
func (p *Printer) Error(message string) {
	fmt.Fprintln(p.w, p.style(p.theme.Error).Render("✗ "+message))
}

// Warning prints a warning message
func (p *Printer) Warning(message string) {
	fmt.Fprintln(p.w, p.style(p.theme.Warning).Render("! "+message))
}

// Info prints an informational message. It makes Printer a compose.Notifier.
func (p *Printer) Info(message string) {
	fmt.Fprintln(p.w, p.style(p.theme.Info).Render("ℹ "+message))
}

// Header prints a section header
func (p *Printer) Header(message string) {
	fmt.Fprintln(p.w, "\n"+p.style(p.theme.Header).Bold(true).Render(message))
	fmt.Fprintln(p.w, strings.Repeat("─", lipgloss.Width(message)))
}

// Highlight renders s in the highlight color without printing it.
func (p *Printer) Highlight(s string) string {
	return p.style(p.theme.Highlight).Render(s)
}
