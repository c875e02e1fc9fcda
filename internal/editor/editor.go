// Package editor holds the prompt being composed and projects it into an
// assembled prompt or a history record.
//
// The Store has a single writer (the TUI update loop) and takes no lock.
// Every read of the assembled prompt is recomputed from the current state.
package editor

import (
	"fmt"
	"time"

	"github.com/sant0-9/pix3lprompt/internal/assembler"
	"github.com/sant0-9/pix3lprompt/internal/history"
	"github.com/sant0-9/pix3lprompt/internal/model"
	"github.com/sant0-9/pix3lprompt/internal/preset"
)

// State is a snapshot of the editor fields
type State struct {
	Subject         string
	Chips           map[preset.Category][]string
	AspectRatio     string
	Details         string
	NegativePrompt  string
	Parameters      map[string]any
	TargetModel     string
	EditingPromptID *int64
}

func initialState() State {
	return State{
		Chips:       map[preset.Category][]string{},
		AspectRatio: preset.DefaultAspectRatio,
		Parameters:  map[string]any{},
		TargetModel: model.DefaultID,
	}
}

func (s State) clone() State {
	cp := s
	cp.Chips = make(map[preset.Category][]string, len(s.Chips))
	for c, ids := range s.Chips {
		if len(ids) > 0 {
			cp.Chips[c] = append([]string(nil), ids...)
		}
	}
	cp.Parameters = make(map[string]any, len(s.Parameters))
	for k, v := range s.Parameters {
		cp.Parameters[k] = v
	}
	if s.EditingPromptID != nil {
		id := *s.EditingPromptID
		cp.EditingPromptID = &id
	}
	return cp
}

// Input returns the assembler input for this state
func (s State) Input() assembler.Input {
	return assembler.Input{
		Subject:        s.Subject,
		Chips:          s.Chips,
		AspectRatio:    s.AspectRatio,
		Details:        s.Details,
		NegativePrompt: s.NegativePrompt,
	}
}

type Store struct {
	state State
}

func NewStore() *Store {
	return &Store{state: initialState()}
}

// State returns a copy of the current state
func (s *Store) State() State {
	return s.state.clone()
}

func (s *Store) SetSubject(v string)        { s.state.Subject = v }
func (s *Store) SetDetails(v string)        { s.state.Details = v }
func (s *Store) SetNegativePrompt(v string) { s.state.NegativePrompt = v }
func (s *Store) SetAspectRatio(v string)    { s.state.AspectRatio = v }

// SetTargetModel switches the model and drops model specific parameters
func (s *Store) SetTargetModel(id string) {
	s.state.TargetModel = id
	s.state.Parameters = map[string]any{}
}

func (s *Store) SetParameter(key string, value any) {
	s.state.Parameters[key] = value
}

// SetChips replaces the selection for one category
func (s *Store) SetChips(c preset.Category, ids []string) {
	var out []string
	for _, id := range ids {
		if !contains(out, id) {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		delete(s.state.Chips, c)
		return
	}
	s.state.Chips[c] = out
}

// Toggle adds id to the category selection, or removes it if present
func (s *Store) Toggle(c preset.Category, id string) {
	ids := s.state.Chips[c]
	if !contains(ids, id) {
		s.state.Chips[c] = append(append([]string(nil), ids...), id)
		return
	}

	kept := make([]string, 0, len(ids))
	for _, x := range ids {
		if x != id {
			kept = append(kept, x)
		}
	}
	if len(kept) == 0 {
		delete(s.state.Chips, c)
		return
	}
	s.state.Chips[c] = kept
}

// Selected reports whether id is selected in the category
func (s *Store) Selected(c preset.Category, id string) bool {
	return contains(s.state.Chips[c], id)
}

// LoadRecord puts a saved prompt in the editor. Saving afterwards updates
// that record in place.
func (s *Store) LoadRecord(p history.Prompt) {
	st := initialState()
	st.Subject = p.Subject
	for c, ids := range p.Chips() {
		if len(ids) > 0 {
			st.Chips[c] = append([]string(nil), ids...)
		}
	}
	if p.Composition.AspectRatio != "" {
		st.AspectRatio = p.Composition.AspectRatio
	}
	st.Details = p.Details
	st.NegativePrompt = p.NegativePrompt
	for k, v := range p.Parameters {
		st.Parameters[k] = v
	}
	if p.TargetModel != "" {
		st.TargetModel = p.TargetModel
	}
	id := p.ID
	st.EditingPromptID = &id
	s.state = st
}

// ApplyTemplate resets the editor, then fills it from t. The target model
// is kept.
func (s *Store) ApplyTemplate(t preset.Template) {
	target := s.state.TargetModel
	s.Reset()
	s.state.TargetModel = target

	s.state.Subject = t.Subject
	s.state.Details = t.Details
	if t.AspectRatio != "" {
		s.state.AspectRatio = t.AspectRatio
	}
	for _, c := range preset.Categories() {
		for _, id := range t.Chips[c] {
			s.Toggle(c, id)
		}
	}
}

func (s *Store) Reset() {
	s.state = initialState()
}

// ApplyOptimized replaces the prompt content with text. The chip and detail
// fields are cleared since text already carries them.
func (s *Store) ApplyOptimized(text string) {
	s.state.Subject = text
	s.state.Chips = map[preset.Category][]string{}
	s.state.Details = ""
}

func (s *Store) Model() model.Config {
	return model.Get(s.state.TargetModel)
}

// Assembled builds the full prompt for the current target model
func (s *Store) Assembled() assembler.Result {
	return assembler.Assemble(s.state.Input(), s.Model())
}

// ContentPrompt is the flag free text handed to AI providers
func (s *Store) ContentPrompt() string {
	return assembler.Content(s.state.Input())
}

// Record builds the history entry for the current state
func (s *Store) Record(now time.Time) history.Prompt {
	st := s.State()
	p := history.Prompt{
		Subject:         st.Subject,
		Composition:     history.Composition{AspectRatio: st.AspectRatio},
		Details:         st.Details,
		NegativePrompt:  st.NegativePrompt,
		Parameters:      st.Parameters,
		TargetModel:     st.TargetModel,
		AssembledPrompt: s.Assembled().Text,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.SetChips(st.Chips)
	if st.EditingPromptID != nil {
		p.ID = *st.EditingPromptID
	}
	return p
}

// Repository is where saved prompts go
type Repository interface {
	Create(p history.Prompt) (int64, error)
	Update(id int64, fn func(p *history.Prompt)) error
}

// Save inserts a new record, or updates the loaded one in place. Rating,
// notes, tags and favorite state of an existing record are kept.
func (s *Store) Save(repo Repository, now time.Time) (int64, error) {
	rec := s.Record(now)

	if s.state.EditingPromptID == nil {
		id, err := repo.Create(rec)
		if err != nil {
			return 0, fmt.Errorf("save prompt: %w", err)
		}
		s.state.EditingPromptID = &id
		return id, nil
	}

	id := *s.state.EditingPromptID
	err := repo.Update(id, func(p *history.Prompt) {
		p.Subject = rec.Subject
		p.SetChips(rec.Chips())
		p.Composition = rec.Composition
		p.Details = rec.Details
		p.NegativePrompt = rec.NegativePrompt
		p.Parameters = rec.Parameters
		p.TargetModel = rec.TargetModel
		p.AssembledPrompt = rec.AssembledPrompt
	})
	if err != nil {
		return 0, fmt.Errorf("update prompt %d: %w", id, err)
	}
	return id, nil
}

func contains(list []string, id string) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}
