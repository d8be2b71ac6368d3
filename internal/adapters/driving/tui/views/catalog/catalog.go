// Package catalog provides the example list view for the TUI.
package catalog

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driving"
)

// View lists the catalog and lets the user pick an example to run.
type View struct {
	styles   *styles.Styles
	catalog  driving.ExampleCatalog
	filter   domain.ExampleFilter
	items    []domain.Example
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a catalog view showing every example.
func NewView(s *styles.Styles, catalog driving.ExampleCatalog) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:  s,
		catalog: catalog,
		width:   80,
		height:  24,
	}
	v.reload()
	return v
}

// Init initialises the catalog view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			example, ok := v.Current()
			if !ok {
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.ExampleSelected{Example: example}
			}

		case "p":
			v.filter.Principle = nextPrinciple(v.filter.Principle)
			return v, v.reload()

		case "v":
			v.filter.Variant = nextVariant(v.filter.Variant)
			return v, v.reload()

		case "?":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewHelp}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// reload re-lists the catalog with the current filter and reports the count.
func (v *View) reload() tea.Cmd {
	if v.catalog != nil {
		v.items = v.catalog.List(v.filter)
	}
	if v.selected >= len(v.items) {
		v.selected = max(len(v.items)-1, 0)
	}

	filter, count := v.filter, len(v.items)
	return func() tea.Msg {
		return messages.FilterChanged{Filter: filter, Count: count}
	}
}

// nextPrinciple cycles all -> srp -> ... -> dry -> all.
func nextPrinciple(p domain.Principle) domain.Principle {
	all := domain.AllPrinciples()
	if p == "" {
		return all[0]
	}
	next := p.Order() + 1
	if next >= len(all) {
		return ""
	}
	return all[next]
}

// nextVariant cycles all -> good -> bad -> all.
func nextVariant(v domain.Variant) domain.Variant {
	switch v {
	case "":
		return domain.VariantGood
	case domain.VariantGood:
		return domain.VariantBad
	default:
		return ""
	}
}

// View renders the catalog.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("solidkit"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("SOLID, DRY and KISS/YAGNI by example"))
	b.WriteString("\n\n")

	if len(v.items) == 0 {
		b.WriteString(v.styles.Muted.Render("No examples match the filter."))
		b.WriteString("\n")
		return b.String()
	}

	var principle domain.Principle
	for i, e := range v.items {
		if e.Principle != principle {
			if principle != "" {
				b.WriteString("\n")
			}
			principle = e.Principle
			b.WriteString(v.styles.Subtitle.Render(principle.Description()))
			b.WriteString("\n")
		}

		cursor := "  "
		title := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render(e.Title)
		if i == v.selected {
			cursor = "> "
			title = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).Render(e.Title)
		}
		variant := v.styles.Variant(e.Variant).Render(fmt.Sprintf("%-4s", e.Variant))
		b.WriteString(cursor + variant + " " + title)
		b.WriteString("\n")
	}

	if current, ok := v.Current(); ok && current.Summary != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Width(max(v.width-2, 20)).Render(current.Summary))
		b.WriteString("\n")
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Current returns the selected example.
func (v *View) Current() (domain.Example, bool) {
	if v.selected < 0 || v.selected >= len(v.items) {
		return domain.Example{}, false
	}
	return v.items[v.selected], true
}

// Items returns the listed examples.
func (v *View) Items() []domain.Example {
	return v.items
}

// Filter returns the active filter.
func (v *View) Filter() domain.ExampleFilter {
	return v.filter
}

// SelectID moves the selection to the example with the given id.
// It returns false if the example is not listed.
func (v *View) SelectID(id string) bool {
	for i := range v.items {
		if v.items[i].ID == id {
			v.selected = i
			return true
		}
	}
	return false
}
