package tui

import (
	"errors"
	"strings"

	"github.com/sant0-9/pix3lprompt/internal/ai"
	"github.com/sant0-9/pix3lprompt/internal/board"
)

// errorHint suggests a next step for a failed action, or "" when there is
// nothing useful to add.
func errorHint(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ai.ErrBusy):
		return "Wait for the running request to finish"
	case errors.Is(err, board.ErrNotConnected), errors.Is(err, board.ErrSessionExpired):
		return "Press [p] and connect your board in settings"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized"):
		return "Check your API key with [p] settings"
	case strings.Contains(msg, "ollama"):
		return "Make sure Ollama is running: ollama serve"
	case strings.Contains(msg, "connection") || strings.Contains(msg, "connect") || strings.Contains(msg, "timeout"):
		return "Check the provider is reachable, local rules were used instead"
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return "Rate limited, wait a moment and try again"
	}
	return ""
}

func (a *App) setStatus(msg string) {
	a.state.status = msg
	a.state.statusErr = false
}

func (a *App) setError(prefix string, err error) {
	msg := err.Error()
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	if hint := errorHint(err); hint != "" {
		msg += " (" + hint + ")"
	}
	a.state.status = msg
	a.state.statusErr = true
	a.state.logger.Warn(prefix, "error", err)
}

func (a *App) renderStatus() string {
	if a.state.status == "" {
		return ""
	}
	text := truncate(a.state.status, max(20, a.width-4))
	if a.state.statusErr {
		return a.centered(styleError.Render(text))
	}
	return a.centered(styleSuccess.Render(text))
}
