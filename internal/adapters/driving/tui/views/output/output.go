// Package output provides the scrollable run output view for the TUI.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// chrome is the number of lines used by the header and footer.
const chrome = 6

// View shows what an example printed.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	example  domain.Example
	output   string
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates an empty output view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		viewport: viewport.New(80, 24-chrome),
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult shows a finished run.
func (v *View) SetResult(run messages.ExampleRun) {
	v.example = run.Example
	v.output = run.Output
	v.err = run.Err
	v.viewport.Height = max(v.height-chrome-len(v.example.Notes), 3)
	v.viewport.SetContent(v.content())
	v.viewport.GotoTop()
}

func (v *View) content() string {
	var b strings.Builder
	b.WriteString(v.output)
	if v.err != nil {
		if v.output != "" && !strings.HasSuffix(v.output, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("error: %v", v.err)))
	}
	if b.Len() == 0 {
		return v.styles.Muted.Render("(no output)")
	}
	return b.String()
}

// Update handles messages for the output view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewCatalog}
			}
		case "q":
			return v, tea.Quit
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the output view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.example.Title))
	b.WriteString("  ")
	b.WriteString(v.styles.Variant(v.example.Variant).Render(v.example.ID))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.example.Principle.Description()))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Border.Render(v.viewport.View()))
	b.WriteString("\n")

	for _, note := range v.example.Notes {
		b.WriteString(v.styles.Help.Render("  - " + note))
		b.WriteString("\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = max(width-4, 10)
	v.viewport.Height = max(height-chrome-len(v.example.Notes), 3)
	v.ready = true
}

// Example returns the example being shown.
func (v *View) Example() domain.Example {
	return v.example
}

// Output returns the raw captured output.
func (v *View) Output() string {
	return v.output
}

// Err returns the run error, if any.
func (v *View) Err() error {
	return v.err
}
