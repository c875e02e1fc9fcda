package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/pix3lprompt/internal/ai"
	"github.com/sant0-9/pix3lprompt/internal/model"
	"github.com/sant0-9/pix3lprompt/internal/preset"
)

var fieldLabels = [fieldCount]string{"Subject", "Details", "Negative"}

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

func (a *App) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	if a.state.editing {
		return a.handleFieldKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Back):
		a.state.status = ""

	case key.Matches(msg, keys.Help):
		a.view = viewHelp

	case key.Matches(msg, keys.Tab, keys.Down):
		a.state.focus = (a.state.focus + 1) % fieldCount

	case key.Matches(msg, keys.Up):
		a.state.focus = (a.state.focus + fieldCount - 1) % fieldCount

	case key.Matches(msg, keys.Edit):
		a.state.editing = true
		return a.state.inputs[a.state.focus].Focus()

	case key.Matches(msg, keys.Optimize):
		return a.optimize()

	case key.Matches(msg, keys.Variations):
		return a.generateVariations()

	case key.Matches(msg, keys.Suggest):
		rating, notes := 3, ""
		if id := a.state.editor.State().EditingPromptID; id != nil && a.state.history != nil {
			if rec, err := a.state.history.Get(*id); err == nil && rec.Rating != nil {
				rating, notes = *rec.Rating, rec.Notes
			}
		}
		return a.suggest(a.state.editor.Assembled().Text, rating, notes)

	case key.Matches(msg, keys.Save):
		a.save()

	case key.Matches(msg, keys.Copy):
		a.copyPrompt(a.state.editor.Assembled().Text)

	case key.Matches(msg, keys.New):
		a.state.editor.Reset()
		if id := a.state.config.Editor.TargetModel; id != "" {
			a.state.editor.SetTargetModel(id)
		}
		if ar := a.state.config.Editor.AspectRatio; ar != "" {
			a.state.editor.SetAspectRatio(ar)
		}
		a.syncInputs()
		a.setStatus("New prompt")

	case key.Matches(msg, keys.DefaultNeg):
		a.state.editor.SetNegativePrompt(ai.DefaultNegative(a.state.editor.State().TargetModel))
		a.syncInputs()

	case key.Matches(msg, keys.Chips):
		a.state.chipSel = 0
		a.view = viewChips

	case key.Matches(msg, keys.Model):
		a.state.modelSel = 0
		current := a.state.editor.State().TargetModel
		for i, m := range model.All() {
			if m.ID == current {
				a.state.modelSel = i
			}
		}
		a.view = viewModel

	case key.Matches(msg, keys.Aspect):
		a.state.aspectSel = 0
		current := a.state.editor.State().AspectRatio
		for i, ar := range preset.AspectRatios() {
			if ar == current {
				a.state.aspectSel = i
			}
		}
		a.view = viewAspect

	case key.Matches(msg, keys.History):
		a.refreshHistory()
		a.view = viewHistory

	case key.Matches(msg, keys.Templates):
		a.state.templateSel = 0
		a.view = viewTemplates

	case key.Matches(msg, keys.Board):
		return a.openBoard()

	case key.Matches(msg, keys.Settings):
		a.state.settingsMode = ""
		a.view = viewSettings
	}
	return nil
}

func (a *App) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	in := &a.state.inputs[a.state.focus]

	switch msg.String() {
	case "esc", "enter":
		in.Blur()
		a.pushInput(a.state.focus)
		a.state.editing = false
		return nil

	case "tab", "shift+tab":
		in.Blur()
		a.pushInput(a.state.focus)
		if msg.String() == "tab" {
			a.state.focus = (a.state.focus + 1) % fieldCount
		} else {
			a.state.focus = (a.state.focus + fieldCount - 1) % fieldCount
		}
		return a.state.inputs[a.state.focus].Focus()
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	a.pushInput(a.state.focus)
	return cmd
}

func (a *App) save() {
	if a.state.history == nil {
		a.setStatus("History is not available")
		return
	}
	if a.state.editor.ContentPrompt() == "" {
		a.setStatus("Nothing to save yet")
		return
	}

	updating := a.state.editor.State().EditingPromptID != nil
	id, err := a.state.editor.Save(a.state.history, time.Now())
	if err != nil {
		a.setError("Save", err)
		return
	}

	if updating {
		a.setStatus(fmt.Sprintf("Updated prompt #%d", id))
	} else {
		a.setStatus(fmt.Sprintf("Saved prompt #%d", id))
	}
	a.state.logger.Info("prompt saved", "id", id, "updated", updating)
}

func (a *App) copyPrompt(text string) {
	if text == "" {
		a.setStatus("Nothing to copy yet")
		return
	}
	a.state.logger.Info("prompt copied", "prompt", text)
	if err := writeClipboard(text); err != nil {
		a.setError("Copy", fmt.Errorf("clipboard unavailable, prompt written to the log: %w", err))
		return
	}
	a.setStatus("Copied to clipboard")
}

func (a *App) renderEditor() string {
	var b strings.Builder
	width := a.boxWidth()
	st := a.state.editor.State()
	cfg := a.state.editor.Model()

	// Header
	b.WriteString(a.centered(styleLogo.Render("pix3lprompt")))
	b.WriteString("\n")
	b.WriteString(a.centered(styleSubtitle.Render(a.headerLine(cfg.Label, st.AspectRatio))))
	b.WriteString("\n")
	if st.EditingPromptID != nil {
		b.WriteString(a.centered(styleSubtitle.Render(fmt.Sprintf("Editing saved prompt #%d", *st.EditingPromptID))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Fields
	a.state.inputs[fieldSubject].Placeholder = cfg.Placeholder
	var fields []string
	for f := field(0); f < fieldCount; f++ {
		label := fieldLabels[f]
		if f == a.state.focus {
			label = styleSelected.Render("> " + label)
		} else {
			label = "  " + label
		}
		fields = append(fields, styleLabel.Render(label)+" "+a.state.inputs[f].View())
	}
	b.WriteString(a.centered(styleBox.Copy().Width(width).Render(strings.Join(fields, "\n"))))
	b.WriteString("\n")

	// Chips
	var chipLines []string
	for _, c := range preset.Categories() {
		ids := st.Chips[c]
		if len(ids) == 0 {
			continue
		}
		labels := make([]string, len(ids))
		for i, id := range ids {
			labels[i], _ = preset.Label(c, id)
			if labels[i] == "" {
				labels[i] = id
			}
		}
		chipLines = append(chipLines, styleLabel.Render(c.String())+" "+styleChipOn.Render(strings.Join(labels, ", ")))
	}
	if len(chipLines) == 0 {
		chipLines = append(chipLines, styleSubtitle.Render("No chips selected, press [c] to add some"))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(width).Render(strings.Join(chipLines, "\n"))))
	b.WriteString("\n")

	// Assembled prompt
	res := a.state.editor.Assembled()
	text := styleSubtitle.Render(cfg.Placeholder)
	if res.Text != "" {
		text = stylePrompt.Render(wrapText(res.Text, width-4))
	}
	promptBox := styleBox.Copy().
		Width(width).
		BorderForeground(colorPrimary).
		Render(text)
	b.WriteString(a.centered(promptBox))
	b.WriteString("\n")
	b.WriteString(a.centered(styleSubtitle.Render(fmt.Sprintf("%d chars  ~%d tokens", res.CharCount, res.TokenEstimate))))
	b.WriteString("\n\n")

	if a.state.aiBusy {
		b.WriteString(a.centered(styleSelected.Render("* " + a.state.aiAction + "...")))
		b.WriteString("\n")
	}
	if status := a.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}

	var help string
	if a.state.editing {
		help = "[Esc] Done  [Tab] Next field"
	} else {
		help = "[i] Edit  [c] Chips  [m] Model  [a] Aspect  [o] Optimize  [v] Variations  [g] Suggest  [s] Save  [y] Copy  [?] Help"
	}
	b.WriteString(a.centered(styleStatusBar.Render(wrapText(help, a.width-4))))

	return a.centerVertically(b.String())
}

func (a *App) headerLine(modelLabel, aspect string) string {
	provider := a.state.ai.ProviderName()
	if a.state.providerErr != nil {
		provider += " (unreachable)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, modelLabel, "  ", aspect, "  AI: ", provider)
}
