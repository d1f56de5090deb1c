package cli

import (
	"io"

	"organizer/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// Palette colours, one per category group
var groupColors = map[domain.Group]lipgloss.Color{
	domain.GroupFaculdade: lipgloss.Color("#89B4FA"),
	domain.GroupTrabalho:  lipgloss.Color("#FAB387"),
	domain.GroupAcademia:  lipgloss.Color("#A6E3A1"),
	domain.GroupGJ:        lipgloss.Color("#CBA6F7"),
	domain.GroupOutros:    lipgloss.Color("#F9E2AF"),
}

var (
	colorUrgent = lipgloss.Color("#F38BA8")
	colorSubtle = lipgloss.Color("#6C7086")
	colorTitle  = lipgloss.Color("#CDD6F4")
)

// Styles holds the lipgloss styles used to render command output
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Urgent  lipgloss.Style
	Overdue lipgloss.Style
	Done    lipgloss.Style
	Today   lipgloss.Style
	Cell    lipgloss.Style
	Groups  map[domain.Group]lipgloss.Style
}

// NewStyles builds the styles for output written to w. The renderer picks
// the colour profile of w, so output that is not a terminal stays plain.
// With color off every style is plain.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	plain := r.NewStyle()

	s := &Styles{
		Title:   plain,
		Header:  plain,
		Muted:   plain,
		Urgent:  plain,
		Overdue: plain,
		Done:    plain,
		Today:   plain,
		Cell:    plain.Width(4).Align(lipgloss.Right),
		Groups:  make(map[domain.Group]lipgloss.Style, len(groupColors)),
	}
	for g := range groupColors {
		s.Groups[g] = plain
	}
	if !color {
		return s
	}

	s.Title = plain.Bold(true).Foreground(colorTitle)
	s.Header = plain.Bold(true)
	s.Muted = plain.Foreground(colorSubtle)
	s.Urgent = plain.Bold(true).Foreground(colorUrgent)
	s.Overdue = plain.Foreground(colorUrgent)
	s.Done = plain.Foreground(colorSubtle).Strikethrough(true)
	s.Today = plain.Underline(true)
	for g, c := range groupColors {
		s.Groups[g] = plain.Foreground(c)
	}
	return s
}

// Group returns the style of a category group
func (s *Styles) Group(g domain.Group) lipgloss.Style {
	if style, ok := s.Groups[g]; ok {
		return style
	}
	return s.Header
}
