package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/pix3lprompt/internal/config"
)

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.settingsMode {
	case "provider":
		return a.handleSettingsProviderKey(msg)
	case "model":
		return a.handleSettingsModelKey(msg)
	case "apikey":
		return a.handleSettingsInputKey(msg, &a.state.apiKeyInput, func(v string) {
			a.state.config.AI.APIKey = v
		})
	case "baseurl":
		return a.handleSettingsInputKey(msg, &a.state.baseURLInput, func(v string) {
			a.state.config.AI.BaseURL = v
		})
	case "board":
		return a.handleBoardConnectKey(msg)
	}

	switch msg.String() {
	case "esc", "q":
		a.view = viewEditor
	case "p":
		a.state.settingsMode = "provider"
		a.state.settingsSelected = 0
		for i, p := range config.Providers {
			if p.ID == a.state.config.AI.Provider {
				a.state.settingsSelected = i
			}
		}
	case "m":
		a.state.settingsMode = "model"
		a.state.settingsSelected = 0
	case "k":
		a.state.settingsMode = "apikey"
		a.state.apiKeyInput.Reset()
		return a.state.apiKeyInput.Focus()
	case "u":
		a.state.settingsMode = "baseurl"
		a.state.baseURLInput.SetValue(a.state.config.AI.BaseURL)
		return a.state.baseURLInput.Focus()
	case "b":
		a.state.settingsMode = "board"
		a.state.boardInputFocus = 0
		for i := range a.state.boardInputs {
			a.state.boardInputs[i].Reset()
		}
		if s := a.state.board.Session(); s != nil {
			a.state.boardInputs[0].SetValue(s.URL)
			a.state.boardInputs[1].SetValue(s.UserEmail)
		}
		return a.state.boardInputs[0].Focus()
	case "x":
		a.state.board.Disconnect()
		a.state.config.Board = nil
		a.setStatus("Disconnected from board")
		return a.saveConfig()
	case "t":
		a.setStatus("Testing " + a.state.ai.ProviderName() + "...")
		return a.reloadProvider()
	}
	return nil
}

// applyAIChange persists the AI settings and switches provider
func (a *App) applyAIChange() tea.Cmd {
	a.state.settingsMode = ""
	return tea.Batch(a.saveConfig(), a.reloadProvider())
}

func (a *App) handleSettingsProviderKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.state.settingsMode = ""
	case key.Matches(msg, keys.Enter):
		p := config.Providers[a.state.settingsSelected]
		if p.ID != a.state.config.AI.Provider {
			a.state.config.AI.Provider = p.ID
			a.state.config.AI.Model = p.DefaultModel
			a.state.config.AI.BaseURL = ""
			a.state.config.AI.APIKey = ""
		}
		if p.NeedsAPIKey && a.state.config.AI.APIKey == "" {
			a.state.settingsMode = "apikey"
			a.state.apiKeyInput.Reset()
			return a.state.apiKeyInput.Focus()
		}
		return a.applyAIChange()
	default:
		a.state.settingsSelected = moveCursor(msg, a.state.settingsSelected, len(config.Providers))
	}
	return nil
}

func (a *App) handleSettingsModelKey(msg tea.KeyMsg) tea.Cmd {
	provider := config.GetProvider(a.state.config.AI.Provider)
	if provider == nil || len(provider.Models) == 0 {
		if key.Matches(msg, keys.Back, keys.Enter) {
			a.state.settingsMode = ""
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		a.state.settingsMode = ""
	case key.Matches(msg, keys.Enter):
		a.state.config.AI.Model = provider.Models[a.state.settingsSelected]
		return a.applyAIChange()
	default:
		a.state.settingsSelected = moveCursor(msg, a.state.settingsSelected, len(provider.Models))
	}
	return nil
}

func (a *App) handleSettingsInputKey(msg tea.KeyMsg, in *textinput.Model, apply func(string)) tea.Cmd {
	switch msg.String() {
	case "esc":
		in.Blur()
		a.state.settingsMode = ""
		return nil
	case "enter":
		in.Blur()
		apply(strings.TrimSpace(in.Value()))
		in.Reset()
		return a.applyAIChange()
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (a *App) handleBoardConnectKey(msg tea.KeyMsg) tea.Cmd {
	inputs := &a.state.boardInputs
	focus := a.state.boardInputFocus

	switch msg.String() {
	case "esc":
		inputs[focus].Blur()
		a.state.settingsMode = ""
		return nil

	case "tab", "shift+tab", "enter":
		if msg.String() == "enter" && focus == len(inputs)-1 {
			inputs[focus].Blur()
			url := strings.TrimSpace(inputs[0].Value())
			email := strings.TrimSpace(inputs[1].Value())
			if url == "" || email == "" {
				a.setStatus("Board URL and email are required")
				return nil
			}
			a.setStatus("Connecting to " + url + "...")
			return a.connectBoard(url, email, inputs[2].Value())
		}
		inputs[focus].Blur()
		if msg.String() == "shift+tab" {
			focus = (focus + len(inputs) - 1) % len(inputs)
		} else {
			focus = (focus + 1) % len(inputs)
		}
		a.state.boardInputFocus = focus
		return inputs[focus].Focus()
	}

	var cmd tea.Cmd
	inputs[focus], cmd = inputs[focus].Update(msg)
	return cmd
}

func maskKey(k string) string {
	switch {
	case k == "":
		return "Not set"
	case len(k) > 8:
		return k[:4] + "****" + k[len(k)-4:]
	default:
		return "****"
	}
}

func (a *App) renderSettings() string {
	switch a.state.settingsMode {
	case "provider":
		return a.renderSettingsProvider()
	case "model":
		return a.renderSettingsModel()
	case "apikey":
		return a.renderSettingsInput("Update API Key", "Enter your API key", a.state.apiKeyInput.View())
	case "baseurl":
		return a.renderSettingsInput("Server URL", "Leave empty for the provider default", a.state.baseURLInput.View())
	case "board":
		return a.renderBoardConnect()
	default:
		return a.renderSettingsMain()
	}
}

func (a *App) renderSettingsMain() string {
	var b strings.Builder
	cfg := a.state.config

	b.WriteString(a.title("Settings"))
	b.WriteString("\n\n")

	providerName := cfg.AI.Provider
	if p := config.GetProvider(cfg.AI.Provider); p != nil {
		providerName = p.Name
	}

	active := a.state.ai.ProviderName()
	if a.state.providerErr != nil {
		active += " (unreachable)"
	}

	lines := []string{
		fmt.Sprintf("  Provider: %s", providerName),
		fmt.Sprintf("  Model:    %s", cfg.AI.Model),
		fmt.Sprintf("  API Key:  %s", maskKey(cfg.AI.APIKey)),
		fmt.Sprintf("  Server:   %s", cfg.AI.BaseURL),
		fmt.Sprintf("  Active:   %s", active),
		"",
	}
	if s := a.state.board.Session(); s != nil {
		state := "connected"
		if a.state.board.Expired() {
			state = "expired"
		}
		lines = append(lines,
			fmt.Sprintf("  Board:    %s (%s)", s.URL, state),
			fmt.Sprintf("  User:     %s", s.UserEmail),
		)
	} else {
		lines = append(lines, "  Board:    not connected")
	}

	b.WriteString(a.centered(styleBox.Copy().Width(56).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	actions := []string{
		"  [p] Change provider",
		"  [m] Change model",
		"  [k] Update API key",
		"  [u] Server URL",
		"  [t] Test connection",
		"  [b] Connect board",
		"  [x] Disconnect board",
	}
	b.WriteString(a.centered(styleBox.Copy().Width(56).Render(strings.Join(actions, "\n"))))
	b.WriteString("\n\n")

	if status := a.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(a.centered(styleStatusBar.Render("[Esc] Back")))
	return a.centerVertically(b.String())
}

func (a *App) renderSettingsProvider() string {
	var b strings.Builder
	b.WriteString(a.title("Select Provider"))
	b.WriteString("\n\n")

	var lines []string
	for i, p := range config.Providers {
		lines = append(lines, listLine(fmt.Sprintf("%-12s %s", p.Name, p.Description), i == a.state.settingsSelected))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(56).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	p := config.Providers[a.state.settingsSelected]
	if p.SignupURL != "" {
		b.WriteString(a.centered(styleSubtitle.Render("Get a key at " + p.SignupURL)))
		b.WriteString("\n\n")
	}
	b.WriteString(a.centered(styleStatusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] Cancel")))
	return a.centerVertically(b.String())
}

func (a *App) renderSettingsModel() string {
	var b strings.Builder
	b.WriteString(a.title("Select Model"))
	b.WriteString("\n\n")

	provider := config.GetProvider(a.state.config.AI.Provider)
	if provider == nil || len(provider.Models) == 0 {
		b.WriteString(a.centered(styleSubtitle.Render("This provider uses the model loaded on the server")))
		b.WriteString("\n\n")
		b.WriteString(a.centered(styleStatusBar.Render("[Esc] Back")))
		return a.centerVertically(b.String())
	}

	b.WriteString(a.centered(styleSubtitle.Render("Provider: " + provider.Name)))
	b.WriteString("\n\n")

	var lines []string
	for i, m := range provider.Models {
		if m == a.state.config.AI.Model {
			m += " (current)"
		}
		lines = append(lines, listLine(m, i == a.state.settingsSelected))
	}
	b.WriteString(a.centered(styleBox.Copy().Width(56).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")
	b.WriteString(a.centered(styleStatusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] Cancel")))
	return a.centerVertically(b.String())
}

func (a *App) renderSettingsInput(title, desc, input string) string {
	var b strings.Builder
	b.WriteString(a.title(title))
	b.WriteString("\n\n")
	b.WriteString(a.centered(styleSubtitle.Render(desc)))
	b.WriteString("\n\n")

	inputBox := styleBox.Copy().
		Width(56).
		BorderForeground(colorPrimary).
		Render(input)
	b.WriteString(a.centered(inputBox))
	b.WriteString("\n\n")
	b.WriteString(a.centered(styleStatusBar.Render("[Enter] Save  [Esc] Cancel")))
	return a.centerVertically(b.String())
}

func (a *App) renderBoardConnect() string {
	var b strings.Builder
	b.WriteString(a.title("Connect Board"))
	b.WriteString("\n\n")

	labels := []string{"URL", "Email", "Password"}
	var lines []string
	for i, in := range a.state.boardInputs {
		label := "  " + labels[i]
		if i == a.state.boardInputFocus {
			label = styleSelected.Render("> " + labels[i])
		}
		lines = append(lines, styleLabel.Render(label)+" "+in.View())
	}
	b.WriteString(a.centered(styleBox.Copy().Width(56).BorderForeground(colorPrimary).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	if status := a.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(a.centered(styleStatusBar.Render("[Tab] Next field  [Enter] Connect  [Esc] Cancel")))
	return a.centerVertically(b.String())
}
