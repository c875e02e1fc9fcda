package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/pix3lprompt/internal/ai"
	"github.com/sant0-9/pix3lprompt/internal/board"
	"github.com/sant0-9/pix3lprompt/internal/config"
	"github.com/sant0-9/pix3lprompt/internal/history"
)

const (
	actionOptimize   = "Optimize"
	actionVariations = "Variations"
	actionSuggest    = "Suggest"

	variationCount = 4
	contextRatings = 10
	aiTimeout      = 90 * time.Second
	boardTimeout   = 20 * time.Second
)

type providerReadyMsg struct{}
type providerErrorMsg struct{ error }

type aiDoneMsg struct {
	action string
	out    ai.Outcome
	err    error
}

type configSavedMsg struct{}

// errMsg reports a failed background action
type errMsg struct {
	action string
	err    error
}

type boardConnectedMsg struct{ session *config.BoardConfig }
type boardsLoadedMsg struct{ boards []board.Board }
type listsLoadedMsg struct {
	boardID string
	lists   []board.List
}
type cardSentMsg struct{ id string }

func (a *App) testProvider() tea.Cmd {
	svc := a.state.ai
	if svc.IsLocal() {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := svc.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}
		return providerReadyMsg{}
	}
}

func (a *App) promptContext() ai.PromptContext {
	var rated []history.Prompt
	if a.state.history != nil {
		rated = a.state.history.Rated(contextRatings)
	}
	return a.state.editor.BuildContext(rated, a.state.config.Editor.AvoidKeywords)
}

// startAI marks the action running and returns the command that performs
// it. The editor keeps working while the request is out; its result is
// applied when it lands even if the user edited in the meantime.
func (a *App) startAI(action string, run func(ctx context.Context) (ai.Outcome, error)) tea.Cmd {
	if a.state.aiBusy {
		a.setError(action, ai.ErrBusy)
		return nil
	}
	a.state.aiBusy = true
	a.state.aiAction = action
	a.setStatus(action + " with " + a.state.ai.ProviderName() + "...")

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
		defer cancel()

		out, err := run(ctx)
		return aiDoneMsg{action: action, out: out, err: err}
	}
}

func (a *App) optimize() tea.Cmd {
	prompt := a.state.editor.ContentPrompt()
	if prompt == "" {
		a.setStatus("Nothing to optimize yet")
		return nil
	}
	pc := a.promptContext()
	svc := a.state.ai
	return a.startAI(actionOptimize, func(ctx context.Context) (ai.Outcome, error) {
		return svc.Optimize(ctx, prompt, pc)
	})
}

func (a *App) generateVariations() tea.Cmd {
	prompt := a.state.editor.ContentPrompt()
	if prompt == "" {
		a.setStatus("Nothing to vary yet")
		return nil
	}
	pc := a.promptContext()
	svc := a.state.ai
	return a.startAI(actionVariations, func(ctx context.Context) (ai.Outcome, error) {
		return svc.GenerateVariations(ctx, prompt, variationCount, pc)
	})
}

func (a *App) suggest(prompt string, rating int, notes string) tea.Cmd {
	if prompt == "" {
		a.setStatus("Nothing to review yet")
		return nil
	}
	svc := a.state.ai
	return a.startAI(actionSuggest, func(ctx context.Context) (ai.Outcome, error) {
		return svc.SuggestImprovements(ctx, prompt, rating, notes)
	})
}

func (a *App) saveConfig() tea.Cmd {
	cfg := *a.state.config
	path := a.state.configPath
	return func() tea.Msg {
		var err error
		if path != "" {
			err = cfg.SaveTo(path)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			return errMsg{"Save settings", err}
		}
		return configSavedMsg{}
	}
}

func (a *App) connectBoard(url, email, password string) tea.Cmd {
	client := a.state.board
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), boardTimeout)
		defer cancel()

		session, err := client.Connect(ctx, url, email, password)
		if err != nil {
			return errMsg{"Connect board", err}
		}
		return boardConnectedMsg{session}
	}
}

func (a *App) loadBoards() tea.Cmd {
	client := a.state.board
	a.state.loading = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), boardTimeout)
		defer cancel()

		boards, err := client.Boards(ctx)
		if err != nil {
			return errMsg{"Load boards", err}
		}
		return boardsLoadedMsg{boards}
	}
}

func (a *App) loadLists(boardID string) tea.Cmd {
	client := a.state.board
	a.state.loading = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), boardTimeout)
		defer cancel()

		lists, err := client.Lists(ctx, boardID)
		if err != nil {
			return errMsg{"Load lists", err}
		}
		return listsLoadedMsg{boardID: boardID, lists: lists}
	}
}

func (a *App) sendCard(card board.Card) tea.Cmd {
	client := a.state.board
	a.state.loading = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), boardTimeout)
		defer cancel()

		id, err := client.SendPrompt(ctx, card)
		if err != nil {
			return errMsg{"Send to board", err}
		}
		return cardSentMsg{id}
	}
}
