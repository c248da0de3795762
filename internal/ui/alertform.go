package ui

import (
	"strings"

	"miner-radar.klederson.com/internal/alert"
)

// AlertForm is the state of the alert configuration tab. EmailInput and
// PhoneInput hold the rendered text field of the contact being edited.
type AlertForm struct {
	Enabled    bool
	Settings   alert.Settings
	EmailInput string
	PhoneInput string
}

// RenderAlertForm renders the alert configuration tab. Channel controls
// are greyed out while alerts are disabled.
func RenderAlertForm(width int, f AlertForm) string {
	master := StyleOff.Render("disabled")
	if f.Enabled {
		master = StyleOn.Render("enabled")
	}

	channel := StyleValue
	if !f.Enabled {
		channel = StyleDisabled
	}

	lines := []string{
		StyleLabel.Render("Alerts are ") + master + StyleHelp.Render("  [a] toggle"),
		"",
		checkbox(f.Settings.EmailEnabled, f.Enabled) + " " + channel.Render("Email alerts") + StyleHelp.Render("  [e]"),
		"    " + StyleLabel.Render("Address ") + contact(f.Settings.Email, f.EmailInput, "you@example.com") + StyleHelp.Render("  [i]"),
		checkbox(f.Settings.SMSEnabled, f.Enabled) + " " + channel.Render("SMS alerts") + StyleHelp.Render("  [m]"),
		"    " + StyleLabel.Render("Number  ") + contact(f.Settings.Phone, f.PhoneInput, "+1 555 0100") + StyleHelp.Render("  [p]"),
		"",
		StyleKey.Render("[w]") + channel.Render(" Save settings") + "   " + StyleKey.Render("[t]") + StyleValue.Render(" Send test alert"),
	}

	if !f.Enabled {
		lines = append(lines, "", StyleHelp.Width(width).Render("Enable alerts to change channels."))
	}
	lines = append(lines, "", StyleHelp.Width(width).Render("Alerts are simulated. Nothing is sent."))

	return strings.Join(lines, "\n")
}

func checkbox(on, enabled bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	switch {
	case !enabled:
		return StyleOff.Render(box)
	case on:
		return StyleOn.Render(box)
	default:
		return StyleLabel.Render(box)
	}
}

func contact(value, input, placeholder string) string {
	switch {
	case input != "":
		return input
	case value == "":
		return StyleHelp.Render(placeholder)
	default:
		return StyleValue.Render(value)
	}
}
