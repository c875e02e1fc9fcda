package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/pix3lprompt/internal/model"
	"github.com/sant0-9/pix3lprompt/internal/preset"
)

// moveCursor applies up/down to a list cursor of n rows
func moveCursor(msg tea.KeyMsg, sel, n int) int {
	switch {
	case key.Matches(msg, keys.Up):
		if sel > 0 {
			sel--
		}
	case key.Matches(msg, keys.Down):
		if sel < n-1 {
			sel++
		}
	}
	return sel
}

func (a *App) handleModelKey(msg tea.KeyMsg) tea.Cmd {
	models := model.All()
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewEditor
	case key.Matches(msg, keys.Enter):
		m := models[a.state.modelSel]
		a.state.editor.SetTargetModel(m.ID)
		a.setStatus("Target model: " + m.Label)
		a.view = viewEditor
	default:
		a.state.modelSel = moveCursor(msg, a.state.modelSel, len(models))
	}
	return nil
}

func (a *App) renderModelPicker() string {
	var b strings.Builder
	b.WriteString(a.title("Target Model"))
	b.WriteString("\n\n")

	current := a.state.editor.State().TargetModel
	var lines []string
	var group model.Group
	for i, m := range model.All() {
		if m.Group != group {
			if group != "" {
				lines = append(lines, "")
			}
			group = m.Group
			lines = append(lines, styleSubtitle.Render(strings.ToUpper(string(group))))
		}
		label := m.Label
		if m.ID == current {
			label += " (current)"
		}
		lines = append(lines, listLine(label, i == a.state.modelSel))
	}

	b.WriteString(a.centered(styleBox.Copy().Width(40).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")
	b.WriteString(a.centered(styleStatusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] Cancel")))
	return a.centerVertically(b.String())
}

func (a *App) handleAspectKey(msg tea.KeyMsg) tea.Cmd {
	ratios := preset.AspectRatios()
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewEditor
	case key.Matches(msg, keys.Enter):
		a.state.editor.SetAspectRatio(ratios[a.state.aspectSel])
		a.view = viewEditor
	default:
		a.state.aspectSel = moveCursor(msg, a.state.aspectSel, len(ratios))
	}
	return nil
}

func (a *App) renderAspectPicker() string {
	var b strings.Builder
	b.WriteString(a.title("Aspect Ratio"))
	b.WriteString("\n\n")

	var lines []string
	for i, ar := range preset.AspectRatios() {
		lines = append(lines, listLine(ar, i == a.state.aspectSel))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(24).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")
	b.WriteString(a.centered(styleStatusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] Cancel")))
	return a.centerVertically(b.String())
}

func (a *App) handleChipsKey(msg tea.KeyMsg) tea.Cmd {
	cat := categoryAt(a.state.chipCat)
	chips := preset.For(cat)

	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewEditor
	case key.Matches(msg, keys.Left):
		a.state.chipCat = (a.state.chipCat + len(preset.Categories()) - 1) % len(preset.Categories())
		a.state.chipSel = 0
	case key.Matches(msg, keys.Right, keys.Tab):
		a.state.chipCat = (a.state.chipCat + 1) % len(preset.Categories())
		a.state.chipSel = 0
	case key.Matches(msg, keys.Enter), msg.String() == " ":
		if len(chips) > 0 {
			a.state.editor.Toggle(cat, chips[a.state.chipSel].ID)
		}
	default:
		a.state.chipSel = moveCursor(msg, a.state.chipSel, len(chips))
	}
	return nil
}

func (a *App) renderChips() string {
	var b strings.Builder
	cat := categoryAt(a.state.chipCat)

	b.WriteString(a.title("Chips"))
	b.WriteString("\n\n")

	var tabs []string
	for i, c := range preset.Categories() {
		if i == a.state.chipCat {
			tabs = append(tabs, styleSelected.Render("["+c.String()+"]"))
		} else {
			tabs = append(tabs, styleSubtitle.Render(c.String()))
		}
	}
	b.WriteString(a.centered(wrapText(strings.Join(tabs, "  "), a.width-4)))
	b.WriteString("\n\n")

	var lines []string
	for i, p := range preset.For(cat) {
		mark := "[ ]"
		label := p.Label
		if a.state.editor.Selected(cat, p.ID) {
			mark = "[x]"
			label = styleChipOn.Render(label)
		}
		line := fmt.Sprintf("%s %s", mark, label)
		lines = append(lines, listLine(line, i == a.state.chipSel))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(40).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")
	b.WriteString(a.centered(styleSubtitle.Render(truncate(a.state.editor.Assembled().Text, a.boxWidth()))))
	b.WriteString("\n\n")
	b.WriteString(a.centered(styleStatusBar.Render("[Left/Right] Category  [Up/Down] Navigate  [Space] Toggle  [Esc] Done")))
	return a.centerVertically(b.String())
}

func (a *App) handleVariationsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewEditor
	case key.Matches(msg, keys.Enter):
		if len(a.state.variations) > 0 {
			a.state.editor.ApplyOptimized(a.state.variations[a.state.variantSel])
			a.syncInputs()
			a.setStatus(fmt.Sprintf("Applied variation %d", a.state.variantSel+1))
		}
		a.view = viewEditor
	case key.Matches(msg, keys.Copy):
		if len(a.state.variations) > 0 {
			a.copyPrompt(a.state.variations[a.state.variantSel])
		}
	default:
		a.state.variantSel = moveCursor(msg, a.state.variantSel, len(a.state.variations))
	}
	return nil
}

func (a *App) renderVariations() string {
	var b strings.Builder
	width := a.boxWidth()

	b.WriteString(a.title("Variations"))
	b.WriteString("\n\n")

	var blocks []string
	for i, v := range a.state.variations {
		text := wrapText(fmt.Sprintf("%d. %s", i+1, v), width-6)
		if i == a.state.variantSel {
			text = styleSelected.Render(text)
		}
		blocks = append(blocks, text)
	}
	if len(blocks) == 0 {
		blocks = append(blocks, styleSubtitle.Render("No variations"))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(width).Render(strings.Join(blocks, "\n\n"))))
	b.WriteString("\n\n")
	if status := a.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(a.centered(styleStatusBar.Render("[Up/Down] Navigate  [Enter] Use  [y] Copy  [Esc] Back")))
	return a.centerVertically(b.String())
}

func (a *App) renderSuggestions() string {
	var b strings.Builder
	width := a.boxWidth()

	b.WriteString(a.title("Suggestions"))
	b.WriteString("\n\n")

	var blocks []string
	for _, s := range a.state.suggestions {
		head := styleChipOn.Render(fmt.Sprintf("%s %s", strings.ToUpper(string(s.Type)), s.Target))
		body := wrapText(s.Suggestion, width-4)
		reason := styleSubtitle.Render(wrapText(s.Reason, width-4))
		blocks = append(blocks, head+"\n"+body+"\n"+reason)
	}
	if len(blocks) == 0 {
		blocks = append(blocks, styleSubtitle.Render("Nothing to improve, nice prompt"))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(width).Render(strings.Join(blocks, "\n\n"))))
	b.WriteString("\n\n")
	if status := a.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(a.centered(styleStatusBar.Render("[Esc] Back")))
	return a.centerVertically(b.String())
}

func (a *App) handleTemplatesKey(msg tea.KeyMsg) tea.Cmd {
	templates := preset.Templates()
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewEditor
	case key.Matches(msg, keys.Enter):
		t := templates[a.state.templateSel]
		a.state.editor.ApplyTemplate(t)
		a.syncInputs()
		a.setStatus("Template: " + t.Name)
		a.view = viewEditor
	default:
		a.state.templateSel = moveCursor(msg, a.state.templateSel, len(templates))
	}
	return nil
}

func (a *App) renderTemplates() string {
	var b strings.Builder
	width := a.boxWidth()

	b.WriteString(a.title("Templates"))
	b.WriteString("\n\n")

	templates := preset.Templates()
	var lines []string
	for i, t := range templates {
		lines = append(lines, listLine(fmt.Sprintf("%-26s %s", t.Name, styleSubtitle.Render(string(t.Group))), i == a.state.templateSel))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(width).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	if len(templates) > 0 {
		preview := wrapText(templates[a.state.templateSel].Preview, width-4)
		b.WriteString(a.centered(styleBox.Copy().Width(width).Render(styleSubtitle.Render(preview))))
		b.WriteString("\n\n")
	}
	b.WriteString(a.centered(styleStatusBar.Render("[Up/Down] Navigate  [Enter] Use  [Esc] Back")))
	return a.centerVertically(b.String())
}
