package tui

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/pix3lprompt/internal/ai"
	"github.com/sant0-9/pix3lprompt/internal/board"
	"github.com/sant0-9/pix3lprompt/internal/config"
	"github.com/sant0-9/pix3lprompt/internal/history"
	"github.com/sant0-9/pix3lprompt/internal/preset"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	store, err := history.Open(filepath.Join(dir, "history.json"))
	require.NoError(t, err)

	return NewApp(Options{
		Config:     config.DefaultConfig(),
		ConfigPath: filepath.Join(dir, "config.yaml"),
		History:    store,
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace}
)

func press(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = a.Update(m)
	}
	return cmd
}

// drain runs cmd, expanding batches, and feeds results of type T back
func drain[T tea.Msg](t *testing.T, a *App, cmd tea.Cmd) T {
	t.Helper()
	var found T
	var ok bool

	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			for _, inner := range msg {
				run(inner)
			}
		case T:
			found, ok = msg, true
			a.Update(msg)
		}
	}
	run(cmd)
	require.True(t, ok, "expected %T", found)
	return found
}

func TestTypingUpdatesAssembledPrompt(t *testing.T) {
	a := newTestApp(t)

	press(a, runes("i"), runes("red fox"), enter)
	assert.False(t, a.state.editing)
	assert.Equal(t, "red fox", a.state.editor.State().Subject)
	assert.Equal(t, "red fox --ar 16:9 --v 7", a.state.editor.Assembled().Text)
	assert.Contains(t, a.View(), "red fox --ar 16:9 --v 7")

	press(a, runes("j"), runes("i"), runes("in snow"), esc)
	assert.Equal(t, "in snow", a.state.editor.State().Details)
	assert.Equal(t, "red fox, in snow --ar 16:9 --v 7", a.state.editor.Assembled().Text)
}

func TestChipPicker(t *testing.T) {
	a := newTestApp(t)

	press(a, runes("c"))
	assert.Equal(t, viewChips, a.view)

	first := preset.For(preset.Style)[0]
	press(a, space)
	assert.True(t, a.state.editor.Selected(preset.Style, first.ID))

	press(a, space)
	assert.False(t, a.state.editor.Selected(preset.Style, first.ID))

	second := preset.For(preset.Lighting)[1]
	press(a, runes("l"), down, enter, esc)
	assert.True(t, a.state.editor.Selected(preset.Lighting, second.ID))
	assert.Equal(t, viewEditor, a.view)
}

func TestOptimizeWithLocalRules(t *testing.T) {
	a := newTestApp(t)
	a.state.editor.SetSubject("cat, cat, dog")
	a.syncInputs()

	cmd := press(a, runes("o"))
	assert.True(t, a.state.aiBusy)

	done := drain[aiDoneMsg](t, a, cmd)
	assert.Equal(t, "Local Rules", done.out.Provider)
	assert.False(t, a.state.aiBusy)
	assert.Equal(t, "cat::1.2, dog::1.2", a.state.editor.State().Subject)
	assert.Equal(t, "cat::1.2, dog::1.2", a.state.inputs[fieldSubject].Value())
}

func TestSecondTriggerWhileBusy(t *testing.T) {
	a := newTestApp(t)
	a.state.editor.SetSubject("fox")
	a.state.aiBusy = true

	cmd := press(a, runes("o"))
	assert.Nil(t, cmd)
	assert.True(t, a.state.statusErr)
	assert.Contains(t, a.state.status, ai.ErrBusy.Error())
}

func TestVariationsPick(t *testing.T) {
	a := newTestApp(t)
	a.state.editor.SetSubject("cinematic, golden hour")

	drain[aiDoneMsg](t, a, press(a, runes("v")))
	require.Equal(t, viewVariations, a.view)
	require.Len(t, a.state.variations, 4)

	press(a, down, enter)
	assert.Equal(t, viewEditor, a.view)
	assert.Equal(t, "moody cinematic, golden hour", a.state.editor.State().Subject)
}

func TestSuggestions(t *testing.T) {
	a := newTestApp(t)
	a.state.editor.SetSubject("a cat")

	drain[aiDoneMsg](t, a, press(a, runes("g")))
	assert.Equal(t, viewSuggestions, a.view)
	assert.NotEmpty(t, a.state.suggestions)

	press(a, esc)
	assert.Equal(t, viewEditor, a.view)
}

func TestSaveThenUpdate(t *testing.T) {
	a := newTestApp(t)

	press(a, runes("s"))
	assert.Empty(t, a.state.history.List())

	a.state.editor.SetSubject("fox")
	press(a, runes("s"))
	require.Len(t, a.state.history.List(), 1)
	assert.Equal(t, "Saved prompt #1", a.state.status)

	a.state.editor.SetSubject("arctic fox")
	press(a, runes("s"))
	require.Len(t, a.state.history.List(), 1)
	assert.Equal(t, "Updated prompt #1", a.state.status)
	assert.Equal(t, "arctic fox --ar 16:9 --v 7", a.state.history.List()[0].AssembledPrompt)
}

func TestHistoryLoadRateDelete(t *testing.T) {
	a := newTestApp(t)
	a.state.editor.SetSubject("owl")
	press(a, runes("s"), runes("n"))
	assert.Empty(t, a.state.editor.State().Subject)

	press(a, runes("H"))
	require.Equal(t, viewHistory, a.view)
	require.Len(t, a.state.historyItems, 1)

	press(a, runes("4"), runes("*"))
	rec, err := a.state.history.Get(1)
	require.NoError(t, err)
	require.NotNil(t, rec.Rating)
	assert.Equal(t, 4, *rec.Rating)
	assert.True(t, rec.IsFavorite)

	press(a, runes("e"), runes("too dark"), enter)
	rec, err = a.state.history.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "too dark", rec.Notes)

	press(a, enter)
	assert.Equal(t, viewEditor, a.view)
	assert.Equal(t, "owl", a.state.editor.State().Subject)
	assert.Equal(t, "owl", a.state.inputs[fieldSubject].Value())
	require.NotNil(t, a.state.editor.State().EditingPromptID)

	press(a, runes("H"), runes("d"))
	assert.Len(t, a.state.history.List(), 1)
	press(a, runes("d"))
	assert.Empty(t, a.state.history.List())
}

func TestModelAndAspectPickers(t *testing.T) {
	a := newTestApp(t)

	press(a, runes("m"), down, enter)
	assert.Equal(t, "midjourney-v6.1", a.state.editor.State().TargetModel)

	press(a, runes("a"), down, enter)
	assert.Equal(t, preset.AspectRatios()[1], a.state.editor.State().AspectRatio)
}

func TestApplyTemplate(t *testing.T) {
	a := newTestApp(t)

	press(a, runes("t"), enter)
	tmpl := preset.Templates()[0]
	assert.Equal(t, tmpl.Subject, a.state.editor.State().Subject)
	assert.Equal(t, tmpl.Subject, a.state.inputs[fieldSubject].Value())
	assert.Equal(t, tmpl.AspectRatio, a.state.editor.State().AspectRatio)
}

func TestDefaultNegative(t *testing.T) {
	a := newTestApp(t)
	press(a, runes("x"))
	assert.Equal(t, ai.DefaultNegative("midjourney-v7"), a.state.editor.State().NegativePrompt)
	assert.Equal(t, a.state.editor.State().NegativePrompt, a.state.inputs[fieldNegative].Value())
}

func TestCopy(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	a := newTestApp(t)
	a.state.editor.SetSubject("fox")
	press(a, runes("y"))
	assert.Equal(t, "fox --ar 16:9 --v 7", copied)
	assert.Equal(t, "Copied to clipboard", a.state.status)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	press(a, runes("y"))
	assert.True(t, a.state.statusErr)
}

func TestBoardRequiresConnection(t *testing.T) {
	a := newTestApp(t)
	a.state.editor.SetSubject("fox")

	cmd := press(a, runes("b"))
	assert.Nil(t, cmd)
	assert.Equal(t, viewEditor, a.view)
	assert.Contains(t, a.state.status, board.ErrNotConnected.Error())
}

func TestSettingsProviderChange(t *testing.T) {
	a := newTestApp(t)

	press(a, runes("p"), runes("p"))
	require.Equal(t, "provider", a.state.settingsMode)

	// OpenAI needs a key, so the key prompt follows
	press(a, down, down, down, enter)
	assert.Equal(t, config.ProviderOpenAI, a.state.config.AI.Provider)
	assert.Equal(t, "apikey", a.state.settingsMode)

	press(a, esc, esc)
	assert.Equal(t, viewEditor, a.view)
	assert.True(t, a.state.ai.IsLocal())
}

func TestSettingsProviderSwitchDropsKey(t *testing.T) {
	a := newTestApp(t)
	a.state.config.AI = config.AIConfig{Provider: config.ProviderOpenAI, APIKey: "sk-openai", Model: "gpt-4o"}

	press(a, runes("p"), runes("p"))
	require.Equal(t, config.ProviderOpenAI, config.Providers[a.state.settingsSelected].ID)

	press(a, down, enter)
	assert.Equal(t, config.ProviderAnthropic, a.state.config.AI.Provider)
	assert.Empty(t, a.state.config.AI.APIKey)
	assert.Equal(t, "apikey", a.state.settingsMode)

	press(a, esc, runes("p"), enter)
	assert.Equal(t, config.ProviderAnthropic, a.state.config.AI.Provider)
	assert.Empty(t, a.state.config.AI.APIKey)
}

func TestBoardConnectedInstallsSession(t *testing.T) {
	a := newTestApp(t)
	session := &config.BoardConfig{URL: "http://board.local", Token: "t", TokenObtainedAt: time.Now(), UserEmail: "ada@example.com"}

	a.Update(boardConnectedMsg{session})
	assert.Same(t, session, a.state.board.Session())
	assert.Same(t, session, a.state.config.Board)
	assert.True(t, a.state.board.Connected())
	assert.Contains(t, a.state.status, "ada@example.com")

	press(a, runes("p"), runes("x"))
	assert.Nil(t, a.state.board.Session())
	assert.Nil(t, a.state.config.Board)
}

func TestErrorHint(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ai.ErrBusy, "Wait for the running request to finish"},
		{board.ErrSessionExpired, "Press [p] and connect your board in settings"},
		{errors.New("OpenAI API error: status 401"), "Check your API key with [p] settings"},
		{errors.New("dial tcp: connection refused"), "Check the provider is reachable, local rules were used instead"},
		{errors.New("something odd"), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, errorHint(tt.err))
	}
}
