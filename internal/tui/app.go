package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/pix3lprompt/internal/ai"
	"github.com/sant0-9/pix3lprompt/internal/board"
	"github.com/sant0-9/pix3lprompt/internal/config"
	"github.com/sant0-9/pix3lprompt/internal/editor"
	"github.com/sant0-9/pix3lprompt/internal/history"
	"github.com/sant0-9/pix3lprompt/internal/logging"
	"github.com/sant0-9/pix3lprompt/internal/model"
	"github.com/sant0-9/pix3lprompt/internal/preset"
)

type view int

const (
	viewEditor view = iota
	viewModel
	viewAspect
	viewChips
	viewVariations
	viewSuggestions
	viewHistory
	viewTemplates
	viewSettings
	viewBoard
	viewHelp
)

// Options are the collaborators the app runs with
type Options struct {
	Config     *config.Config
	ConfigPath string
	History    *history.Store
	Logger     *slog.Logger
}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(opts Options) *App {
	s := newState()

	s.config = opts.Config
	if s.config == nil {
		s.config = config.DefaultConfig()
	}
	s.configPath = opts.ConfigPath
	s.history = opts.History
	s.logger = opts.Logger
	if s.logger == nil {
		s.logger = logging.Discard()
	}

	s.editor = editor.NewStore()
	if id := s.config.Editor.TargetModel; id != "" {
		if _, ok := model.Lookup(id); ok {
			s.editor.SetTargetModel(id)
		}
	}
	if ar := s.config.Editor.AspectRatio; ar != "" {
		s.editor.SetAspectRatio(ar)
	}

	s.ai = ai.NewService(ai.Select(s.config.AI), ai.WithLogger(s.logger))
	s.board = board.NewClient(s.config.Board)

	a := &App{
		width:  80,
		height: 24,
		view:   viewEditor,
		state:  s,
	}
	a.syncInputs()
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.testProvider(),
	)
}

// reloadProvider rebuilds the AI service after the settings changed
func (a *App) reloadProvider() tea.Cmd {
	a.state.ai = ai.NewService(ai.Select(a.state.config.AI), ai.WithLogger(a.state.logger))
	a.state.providerErr = nil
	return a.testProvider()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case providerReadyMsg:
		a.state.providerErr = nil

	case providerErrorMsg:
		a.state.providerErr = msg.error
		a.state.logger.Warn("provider unreachable", "provider", a.state.ai.ProviderName(), "error", msg.error)

	case aiDoneMsg:
		a.handleAIDone(msg)

	case configSavedMsg:
		a.setStatus("Settings saved")

	case errMsg:
		a.state.loading = false
		a.setError(msg.action, msg.err)

	case boardConnectedMsg:
		a.state.board.SetSession(msg.session)
		a.state.config.Board = msg.session
		a.state.settingsMode = ""
		a.setStatus("Connected to board as " + msg.session.UserEmail)
		return a, a.saveConfig()

	case boardsLoadedMsg:
		a.state.loading = false
		a.state.boards = msg.boards
		a.state.boardSel = 0

	case listsLoadedMsg:
		a.state.loading = false
		a.state.boardID = msg.boardID
		a.state.lists = msg.lists
		a.state.listSel = 0

	case cardSentMsg:
		a.state.loading = false
		a.view = viewEditor
		a.setStatus("Card created on board (" + msg.id + ")")
		a.state.logger.Info("card sent", "card", msg.id)
	}

	// Cursor blink and other input messages
	if in := a.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) focusedInput() *textinput.Model {
	switch {
	case a.view == viewEditor && a.state.editing:
		return &a.state.inputs[a.state.focus]
	case a.view == viewHistory && a.state.editingNotes:
		return &a.state.notesInput
	case a.view == viewSettings && a.state.settingsMode == "apikey":
		return &a.state.apiKeyInput
	case a.view == viewSettings && a.state.settingsMode == "baseurl":
		return &a.state.baseURLInput
	case a.view == viewSettings && a.state.settingsMode == "board":
		return &a.state.boardInputs[a.state.boardInputFocus]
	}
	return nil
}

func (a *App) handleAIDone(msg aiDoneMsg) {
	a.state.aiBusy = false
	a.state.aiAction = ""

	if msg.err != nil {
		a.setError(msg.action, msg.err)
		return
	}

	out := msg.out
	if out.FellBack {
		a.setError(msg.action+" fell back to local rules", out.Err)
	} else {
		a.setStatus(msg.action + " done with " + out.Provider)
	}

	switch msg.action {
	case actionOptimize:
		a.state.editor.ApplyOptimized(out.Text)
		a.syncInputs()
	case actionVariations:
		a.state.variations = out.Variations
		a.state.variantSel = 0
		a.view = viewVariations
	case actionSuggest:
		a.state.suggestions = out.Suggestions
		a.view = viewSuggestions
	}
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewEditor:
		return a.handleEditorKey(msg)
	case viewModel:
		return a.handleModelKey(msg)
	case viewAspect:
		return a.handleAspectKey(msg)
	case viewChips:
		return a.handleChipsKey(msg)
	case viewVariations:
		return a.handleVariationsKey(msg)
	case viewSuggestions:
		if key.Matches(msg, keys.Back, keys.Enter) {
			a.view = viewEditor
		}
		return nil
	case viewHistory:
		return a.handleHistoryKey(msg)
	case viewTemplates:
		return a.handleTemplatesKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewBoard:
		return a.handleBoardKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Back, keys.Help, keys.Quit) {
			a.view = viewEditor
		}
		return nil
	}
	return nil
}

// syncInputs copies the editor fields into the text inputs
func (a *App) syncInputs() {
	st := a.state.editor.State()
	a.state.inputs[fieldSubject].SetValue(st.Subject)
	a.state.inputs[fieldDetails].SetValue(st.Details)
	a.state.inputs[fieldNegative].SetValue(st.NegativePrompt)
}

// pushInput writes a text input back into the editor
func (a *App) pushInput(f field) {
	v := a.state.inputs[f].Value()
	switch f {
	case fieldSubject:
		a.state.editor.SetSubject(v)
	case fieldDetails:
		a.state.editor.SetDetails(v)
	case fieldNegative:
		a.state.editor.SetNegativePrompt(v)
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewModel:
		return a.renderModelPicker()
	case viewAspect:
		return a.renderAspectPicker()
	case viewChips:
		return a.renderChips()
	case viewVariations:
		return a.renderVariations()
	case viewSuggestions:
		return a.renderSuggestions()
	case viewHistory:
		return a.renderHistory()
	case viewTemplates:
		return a.renderTemplates()
	case viewSettings:
		return a.renderSettings()
	case viewBoard:
		return a.renderBoard()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderEditor()
	}
}

// categoryAt returns the chip category shown at index i of the picker
func categoryAt(i int) preset.Category {
	cats := preset.Categories()
	return cats[(i%len(cats)+len(cats))%len(cats)]
}
