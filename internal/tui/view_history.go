package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/pix3lprompt/internal/history"
)

func (a *App) refreshHistory() {
	a.state.confirmDelete = false
	if a.state.history == nil {
		a.state.historyItems = nil
		return
	}
	if a.state.favoritesOnly {
		a.state.historyItems = a.state.history.Favorites()
	} else {
		a.state.historyItems = a.state.history.List()
	}
	if a.state.historySel >= len(a.state.historyItems) {
		a.state.historySel = max(0, len(a.state.historyItems)-1)
	}
}

func (a *App) selectedRecord() (history.Prompt, bool) {
	if a.state.historySel < 0 || a.state.historySel >= len(a.state.historyItems) {
		return history.Prompt{}, false
	}
	return a.state.historyItems[a.state.historySel], true
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) tea.Cmd {
	if a.state.editingNotes {
		return a.handleNotesKey(msg)
	}

	rec, ok := a.selectedRecord()

	switch s := msg.String(); {
	case key.Matches(msg, keys.Back):
		a.view = viewEditor
		return nil

	case key.Matches(msg, keys.Enter):
		if ok {
			a.state.editor.LoadRecord(rec)
			a.syncInputs()
			a.setStatus(fmt.Sprintf("Loaded prompt #%d", rec.ID))
			a.view = viewEditor
		}
		return nil

	case s == "f":
		a.state.favoritesOnly = !a.state.favoritesOnly
		a.state.historySel = 0
		a.refreshHistory()
		return nil

	case !ok:
		return nil

	case len(s) == 1 && s >= "0" && s <= "5":
		var rating *int
		if s != "0" {
			n := int(s[0] - '0')
			rating = &n
		}
		if err := a.state.history.SetRating(rec.ID, rating); err != nil {
			a.setError("Rate", err)
		}
		a.refreshHistory()

	case s == "*":
		if err := a.state.history.ToggleFavorite(rec.ID); err != nil {
			a.setError("Favorite", err)
		}
		a.refreshHistory()

	case s == "d":
		if !a.state.confirmDelete {
			a.state.confirmDelete = true
			a.setStatus(fmt.Sprintf("Press [d] again to delete prompt #%d", rec.ID))
			return nil
		}
		if err := a.state.history.Delete(rec.ID); err != nil {
			a.setError("Delete", err)
		} else {
			a.setStatus(fmt.Sprintf("Deleted prompt #%d", rec.ID))
		}
		a.refreshHistory()

	case s == "e":
		a.state.editingNotes = true
		a.state.notesInput.SetValue(rec.Notes)
		return a.state.notesInput.Focus()

	case key.Matches(msg, keys.Copy):
		a.copyPrompt(rec.AssembledPrompt)

	case key.Matches(msg, keys.Suggest):
		rating := 3
		if rec.Rating != nil {
			rating = *rec.Rating
		}
		return a.suggest(rec.AssembledPrompt, rating, rec.Notes)

	default:
		a.state.confirmDelete = false
		a.state.historySel = moveCursor(msg, a.state.historySel, len(a.state.historyItems))
	}
	return nil
}

func (a *App) handleNotesKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.state.editingNotes = false
		a.state.notesInput.Blur()
		return nil

	case "enter":
		a.state.editingNotes = false
		a.state.notesInput.Blur()
		if rec, ok := a.selectedRecord(); ok {
			notes := strings.TrimSpace(a.state.notesInput.Value())
			if err := a.state.history.Update(rec.ID, func(p *history.Prompt) { p.Notes = notes }); err != nil {
				a.setError("Notes", err)
			}
			a.refreshHistory()
		}
		return nil
	}

	var cmd tea.Cmd
	a.state.notesInput, cmd = a.state.notesInput.Update(msg)
	return cmd
}

func stars(rating *int) string {
	if rating == nil {
		return "-----"
	}
	return strings.Repeat("*", *rating) + strings.Repeat("-", 5-*rating)
}

func (a *App) renderHistory() string {
	var b strings.Builder
	width := a.boxWidth()

	title := "History"
	if a.state.favoritesOnly {
		title = "Favorites"
	}
	b.WriteString(a.title(title))
	b.WriteString("\n\n")

	var lines []string
	for i, p := range a.state.historyItems {
		name := p.Subject
		if name == "" {
			name = p.AssembledPrompt
		}
		if name == "" {
			name = "Untitled prompt"
		}
		fav := " "
		if p.IsFavorite {
			fav = "+"
		}
		line := fmt.Sprintf("%s %s #%-3d %s", stars(p.Rating), fav, p.ID, truncate(name, width-20))
		lines = append(lines, listLine(line, i == a.state.historySel))
	}
	if len(lines) == 0 {
		lines = append(lines, styleSubtitle.Render("No saved prompts yet"))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(width).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	if rec, ok := a.selectedRecord(); ok {
		detail := wrapText(rec.AssembledPrompt, width-4)
		if rec.Notes != "" {
			detail += "\n" + styleSubtitle.Render("Notes: "+rec.Notes)
		}
		b.WriteString(a.centered(styleBox.Copy().Width(width).Render(detail)))
		b.WriteString("\n\n")
	}

	if a.state.editingNotes {
		b.WriteString(a.centered(styleBox.Copy().Width(width).BorderForeground(colorPrimary).Render(a.state.notesInput.View())))
		b.WriteString("\n\n")
	}

	if status := a.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	help := "[Enter] Load  [1-5] Rate  [0] Clear rating  [*] Favorite  [f] Favorites  [e] Notes  [g] Suggest  [y] Copy  [d] Delete  [Esc] Back"
	if a.state.editingNotes {
		help = "[Enter] Save notes  [Esc] Cancel"
	}
	b.WriteString(a.centered(styleStatusBar.Render(wrapText(help, a.width-4))))
	return a.centerVertically(b.String())
}
