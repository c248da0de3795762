package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start     key.Binding
	Stop      key.Binding
	FreqUp    key.Binding
	FreqDown  key.Binding
	FreqJump  key.Binding
	FreqDrop  key.Binding
	FreqEdit  key.Binding
	ThreshUp  key.Binding
	ThreshDn  key.Binding
	Alerts    key.Binding
	TabNext   key.Binding
	TabPrev   key.Binding
	Download  key.Binding
	Email     key.Binding
	SMS       key.Binding
	EditEmail key.Binding
	EditPhone key.Binding
	Save      key.Binding
	Test      key.Binding
	Apply     key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start scan")),
		Stop:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop scan")),
		FreqUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "freq +1")),
		FreqDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "freq -1")),
		FreqJump:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "freq +10")),
		FreqDrop:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "freq -10")),
		FreqEdit:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "type frequency")),
		ThreshUp:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "threshold +1")),
		ThreshDn:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "threshold -1")),
		Alerts:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle alerts")),
		TabNext:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		TabPrev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Download:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download report")),
		Email:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "email on/off")),
		SMS:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sms on/off")),
		EditEmail: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit email")),
		EditPhone: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "edit phone")),
		Save:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save settings")),
		Test:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "test alert")),
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.FreqEdit, k.TabNext, k.Download, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Stop, k.Alerts, k.Download, k.Quit},
		{k.FreqUp, k.FreqDown, k.FreqJump, k.FreqDrop, k.FreqEdit},
		{k.ThreshUp, k.ThreshDn, k.TabNext, k.TabPrev, k.Help},
		{k.Email, k.SMS, k.EditEmail, k.EditPhone, k.Save, k.Test},
	}
}

// editKeys is shown in the footer while a text field has focus.
type editKeys struct {
	Apply  key.Binding
	Cancel key.Binding
}

func (k editKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Apply, k.Cancel} }
func (k editKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
