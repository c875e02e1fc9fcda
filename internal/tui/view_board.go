package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/pix3lprompt/internal/board"
)

func (a *App) openBoard() tea.Cmd {
	if a.state.board.Session() == nil {
		a.setError("Send to board", board.ErrNotConnected)
		return nil
	}
	if a.state.board.Expired() {
		a.setError("Send to board", board.ErrSessionExpired)
		return nil
	}
	if a.state.editor.ContentPrompt() == "" {
		a.setStatus("Nothing to send yet")
		return nil
	}

	a.state.boards = nil
	a.state.lists = nil
	a.state.boardID = ""
	a.state.status = ""
	a.view = viewBoard
	return a.loadBoards()
}

func (a *App) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	if a.state.loading {
		if key.Matches(msg, keys.Back) {
			a.view = viewEditor
		}
		return nil
	}

	picking := a.state.boardID == ""

	switch {
	case key.Matches(msg, keys.Back):
		if picking {
			a.view = viewEditor
			return nil
		}
		a.state.boardID = ""
		a.state.lists = nil

	case key.Matches(msg, keys.Enter):
		if picking {
			if len(a.state.boards) == 0 {
				return nil
			}
			return a.loadLists(a.state.boards[a.state.boardSel].ID)
		}
		if len(a.state.lists) == 0 {
			return nil
		}
		st := a.state.editor.State()
		card := board.NewCard(
			a.state.lists[a.state.listSel].ID,
			st.Subject,
			st.Details,
			a.state.editor.Assembled().Text,
			st.TargetModel,
		)
		return a.sendCard(card)

	default:
		if picking {
			a.state.boardSel = moveCursor(msg, a.state.boardSel, len(a.state.boards))
		} else {
			a.state.listSel = moveCursor(msg, a.state.listSel, len(a.state.lists))
		}
	}
	return nil
}

func (a *App) renderBoard() string {
	var b strings.Builder
	width := a.boxWidth()

	if a.state.boardID == "" {
		b.WriteString(a.title("Send to Board"))
	} else {
		b.WriteString(a.title("Choose a List"))
	}
	b.WriteString("\n\n")

	if s := a.state.board.Session(); s != nil {
		b.WriteString(a.centered(styleSubtitle.Render(s.URL + "  " + s.UserEmail)))
		b.WriteString("\n\n")
	}

	var lines []string
	switch {
	case a.state.loading:
		lines = append(lines, styleSelected.Render("* Loading..."))
	case a.state.boardID == "":
		for i, bd := range a.state.boards {
			lines = append(lines, listLine(bd.Name, i == a.state.boardSel))
		}
		if len(lines) == 0 {
			lines = append(lines, styleSubtitle.Render("No boards found"))
		}
	default:
		for i, l := range a.state.lists {
			lines = append(lines, listLine(l.Name, i == a.state.listSel))
		}
		if len(lines) == 0 {
			lines = append(lines, styleSubtitle.Render("This board has no lists"))
		}
	}
	b.WriteString(a.centered(styleBox.Copy().Width(width).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	preview := wrapText(truncate(a.state.editor.Assembled().Text, 240), width-4)
	b.WriteString(a.centered(styleBox.Copy().Width(width).Render(styleSubtitle.Render(preview))))
	b.WriteString("\n\n")

	if status := a.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(a.centered(styleStatusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] Back")))
	return a.centerVertically(b.String())
}
