package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/solidkit/internal/adapters/driving/tui/views/output"
	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is passed to every example run.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	catalogView *catalog.View
	outputView  *output.View
	statusBar   *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	catalogView := catalog.NewView(s, ports.Catalog)
	bar := status.NewBar(s, km)
	bar.SetCount(len(catalogView.Items()))

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		catalogView: catalogView,
		outputView:  output.NewView(s),
		statusBar:   bar,
		currentView: messages.ViewCatalog,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("solidkit - principles by example"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.handleKey(msg)

	case messages.ExampleSelected:
		a.statusBar.SetState(status.StateRunning)
		a.statusBar.SetMessage(msg.Example.ID)
		return a, a.runExample(msg.Example)

	case messages.ExampleRun:
		a.outputView.SetResult(msg)
		a.catalogView.SelectID(msg.Example.ID)
		a.currentView = messages.ViewOutput
		a.err = msg.Err
		if msg.Err != nil {
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
		} else {
			a.statusBar.SetState(status.StateOutput)
			a.statusBar.SetMessage(msg.Example.ID)
		}
		return a, nil

	case messages.FilterChanged:
		a.statusBar.Clear()
		a.statusBar.SetCount(msg.Count)
		a.statusBar.SetMessage(describeFilter(msg.Filter))
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewCatalog:
			a.statusBar.Clear()
			a.statusBar.SetMessage(describeFilter(a.catalogView.Filter()))
		case messages.ViewHelp:
			a.statusBar.SetState(status.StateHelp)
		case messages.ViewOutput:
			a.statusBar.SetState(status.StateOutput)
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (mouse, viewport ticks) to the output view
	if a.currentView == messages.ViewOutput {
		a.outputView, cmd = a.outputView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
		return cmd

	case messages.ViewOutput:
		if keymap.Matches(msg.String(), a.keymap.Pair) {
			return a.runPair()
		}
		a.outputView, cmd = a.outputView.Update(msg)
		return cmd

	case messages.ViewHelp:
		switch {
		case keymap.Matches(msg.String(), a.keymap.Back), keymap.Matches(msg.String(), a.keymap.Help):
			return func() tea.Msg { return messages.ViewChanged{View: messages.ViewCatalog} }
		case msg.String() == "q":
			return tea.Quit
		}
	}
	return nil
}

// runExample runs the example off the update loop and captures its output.
func (a *App) runExample(example domain.Example) tea.Cmd {
	ctx := a.ctx
	catalog := a.ports.Catalog
	return func() tea.Msg {
		var buf bytes.Buffer
		err := catalog.Run(ctx, example.ID, &buf)
		return messages.ExampleRun{Example: example, Output: buf.String(), Err: err}
	}
}

// runPair runs the other variant of the example being shown.
func (a *App) runPair() tea.Cmd {
	current := a.outputView.Example()
	other := domain.VariantBad
	if current.Variant == domain.VariantBad {
		other = domain.VariantGood
	}

	pair, err := a.ports.Catalog.Get(domain.ExampleID(current.Principle, other))
	if err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}
	return func() tea.Msg { return messages.ExampleSelected{Example: *pair} }
}

func describeFilter(f domain.ExampleFilter) string {
	var parts []string
	if f.Principle != "" {
		parts = append(parts, f.Principle.String())
	}
	if f.Variant != "" {
		parts = append(parts, f.Variant.String())
	}
	return strings.Join(parts, ", ")
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewOutput:
		body = a.outputView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.catalogView.View()
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to catalog"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// one line for the status bar
	a.catalogView.SetDimensions(width, height-1)
	a.outputView.SetDimensions(width, height-1)
	a.statusBar.SetWidth(width)
}
