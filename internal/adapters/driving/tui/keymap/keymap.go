// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the catalog.
	Back key.Binding

	// Up moves the selection or scrolls up.
	Up key.Binding

	// Down moves the selection or scrolls down.
	Down key.Binding

	// Run executes the selected example.
	Run key.Binding

	// Principle cycles the principle filter.
	Principle key.Binding

	// Variant cycles between all, good and bad examples.
	Variant key.Binding

	// Pair jumps to the other variant of the same principle.
	Pair key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Principle: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "principle"),
		),
		Variant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "good/bad"),
		),
		Pair: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "other variant"),
		),
	}
}

// ShortHelp returns the hints shown in the catalog status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Principle, k.Variant, k.Help, k.Quit}
}

// OutputHelp returns the hints shown while reading run output.
func (k *KeyMap) OutputHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pair, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Run},
		{k.Principle, k.Variant, k.Pair},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
