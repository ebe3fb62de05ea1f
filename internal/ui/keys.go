package ui

import "github.com/charmbracelet/bubbles/key"

// Key bindings
var keys = struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Open   key.Binding
	Close  key.Binding
	Reload key.Binding
	Quit   key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "subir")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "bajar")),
	Home:   key.NewBinding(key.WithKeys("home", "g")),
	End:    key.NewBinding(key.WithKeys("end", "G")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "ver")),
	Close:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("Esc", "cerrar")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recargar")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
}
