package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(a.title("Help"))
	b.WriteString("\n\n")

	bindings := []key.Binding{
		keys.Edit, keys.Tab, keys.Chips, keys.Model, keys.Aspect, keys.DefaultNeg,
		keys.Optimize, keys.Variations, keys.Suggest,
		keys.Save, keys.Copy, keys.New, keys.Templates, keys.History,
		keys.Board, keys.Settings, keys.Quit,
	}
	var lines []string
	for _, k := range bindings {
		h := k.Help()
		lines = append(lines, fmt.Sprintf("  %-8s %s", h.Key, h.Desc))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(50).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	b.WriteString(a.centered(styleSubtitle.Render("AI actions send only the prompt text, never the model flags.")))
	b.WriteString("\n")
	b.WriteString(a.centered(styleSubtitle.Render("Without a provider, or when it fails, local rules are used.")))
	b.WriteString("\n\n")

	b.WriteString(a.centered(styleStatusBar.Render("[Esc] Back")))
	return a.centerVertically(b.String())
}
