package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sant0-9/pix3lprompt/internal/ai"
	"github.com/sant0-9/pix3lprompt/internal/board"
	"github.com/sant0-9/pix3lprompt/internal/config"
	"github.com/sant0-9/pix3lprompt/internal/editor"
	"github.com/sant0-9/pix3lprompt/internal/history"
)

// field is an editable text field of the editor view
type field int

const (
	fieldSubject field = iota
	fieldDetails
	fieldNegative
	fieldCount
)

type state struct {
	// Config
	config     *config.Config
	configPath string

	// Collaborators
	editor  *editor.Store
	history *history.Store
	ai      *ai.Service
	board   *board.Client
	logger  *slog.Logger

	// Editor inputs
	inputs  [fieldCount]textinput.Model
	focus   field
	editing bool

	// AI
	aiBusy      bool
	aiAction    string
	providerErr error
	variations  []string
	variantSel  int
	suggestions []ai.Suggestion

	// Status line
	status    string
	statusErr bool

	// Pickers
	modelSel    int
	aspectSel   int
	chipCat     int
	chipSel     int
	templateSel int

	// History
	historyItems  []history.Prompt
	historySel    int
	favoritesOnly bool
	notesInput    textinput.Model
	editingNotes  bool
	confirmDelete bool

	// Settings
	settingsMode     string
	settingsSelected int
	apiKeyInput      textinput.Model
	baseURLInput     textinput.Model
	boardInputs      [3]textinput.Model
	boardInputFocus  int

	// Board send
	boards   []board.Board
	lists    []board.List
	boardSel int
	listSel  int
	boardID  string
	loading  bool
}

func newInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return in
}

func newState() *state {
	s := &state{}

	s.inputs[fieldSubject] = newInput("Describe your image...", 1000, 60)
	s.inputs[fieldDetails] = newInput("Extra details (optional)", 1000, 60)
	s.inputs[fieldNegative] = newInput("Things to avoid (optional)", 500, 60)

	s.notesInput = newInput("Notes about the result...", 500, 50)

	s.apiKeyInput = newInput("Paste your API key here...", 200, 50)
	s.apiKeyInput.EchoMode = textinput.EchoPassword

	s.baseURLInput = newInput("http://localhost:1234/v1", 200, 50)

	s.boardInputs[0] = newInput("https://board.example.com", 200, 50)
	s.boardInputs[1] = newInput("you@example.com", 200, 50)
	s.boardInputs[2] = newInput("Password", 200, 50)
	s.boardInputs[2].EchoMode = textinput.EchoPassword

	return s
}
