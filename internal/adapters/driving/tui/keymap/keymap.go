// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back returns to the topics view.
	Back key.Binding

	// FewerTopics decreases K and reruns the model.
	FewerTopics key.Binding

	// MoreTopics increases K and reruns the model.
	MoreTopics key.Binding

	// FewerWords decreases the words shown per topic.
	FewerWords key.Binding

	// MoreWords increases the words shown per topic.
	MoreWords key.Binding

	// Reseed reruns the model with the next seed.
	Reseed key.Binding

	// Texts toggles the cleaned document previews.
	Texts key.Binding
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
		FewerTopics: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "fewer topics"),
		),
		MoreTopics: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "more topics"),
		),
		FewerWords: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer words"),
		),
		MoreWords: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more words"),
		),
		Reseed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reseed"),
		),
		Texts: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "texts"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FewerTopics, k.MoreTopics, k.MoreWords, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FewerTopics, k.MoreTopics, k.Reseed},
		{k.FewerWords, k.MoreWords, k.Texts},
		{k.Help, k.Back, k.Quit},
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
