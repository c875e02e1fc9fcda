package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

var (
	ErrNotFound      = errors.New("prompt not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// FavoriteRating is the lowest rating listed under favorites
const FavoriteRating = 4

type file struct {
	NextID  int64    `json:"nextId"`
	Prompts []Prompt `json:"prompts"`
}

// Store keeps saved prompts in a JSON file
type Store struct {
	mu   sync.RWMutex
	path string
	data file
	now  func() time.Time
}

// Open loads the store at path. A missing file gives an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: file{NextID: 1},
		now:  time.Now,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, p := range s.data.Prompts {
		if p.ID >= s.data.NextID {
			s.data.NextID = p.ID + 1
		}
	}
	if s.data.NextID < 1 {
		s.data.NextID = 1
	}
	return s, nil
}

// Create inserts p with a new id and fresh timestamps
func (s *Store) Create(p Prompt) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p = p.clone()
	p.ID = s.data.NextID
	p.CreatedAt = now
	p.UpdatedAt = now

	next := s.data
	next.NextID++
	next.Prompts = append(append([]Prompt(nil), s.data.Prompts...), p)

	if err := s.writeAtomic(next); err != nil {
		return 0, err
	}
	s.data = next
	return p.ID, nil
}

// Update applies fn to the stored prompt and bumps UpdatedAt.
// The id and creation time cannot be changed by fn.
func (s *Store) Update(id int64, fn func(p *Prompt)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return ErrNotFound
	}

	p := s.data.Prompts[idx].clone()
	created := p.CreatedAt
	fn(&p)
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		return ErrInvalidRating
	}
	p.ID = id
	p.CreatedAt = created
	p.UpdatedAt = s.now()

	prompts := append([]Prompt(nil), s.data.Prompts...)
	prompts[idx] = p
	next := file{NextID: s.data.NextID, Prompts: prompts}

	if err := s.writeAtomic(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return ErrNotFound
	}

	prompts := make([]Prompt, 0, len(s.data.Prompts)-1)
	prompts = append(prompts, s.data.Prompts[:idx]...)
	prompts = append(prompts, s.data.Prompts[idx+1:]...)
	next := file{NextID: s.data.NextID, Prompts: prompts}

	if err := s.writeAtomic(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *Store) Get(id int64) (Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.index(id)
	if idx < 0 {
		return Prompt{}, ErrNotFound
	}
	return s.data.Prompts[idx].clone(), nil
}

// List returns all prompts, newest first
func (s *Store) List() []Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SetRating sets or clears (nil) the rating of a prompt
func (s *Store) SetRating(id int64, rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return ErrInvalidRating
	}
	return s.Update(id, func(p *Prompt) {
		if rating == nil {
			p.Rating = nil
			return
		}
		r := *rating
		p.Rating = &r
	})
}

func (s *Store) ToggleFavorite(id int64) error {
	return s.Update(id, func(p *Prompt) {
		p.IsFavorite = !p.IsFavorite
	})
}

// Favorites returns prompts rated FavoriteRating or higher, most recently updated first
func (s *Store) Favorites() []Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Prompt
	for _, p := range s.data.Prompts {
		if p.Rating != nil && *p.Rating >= FavoriteRating {
			out = append(out, p.clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Rated returns up to limit rated prompts, most recently updated first
func (s *Store) Rated(limit int) []Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Prompt
	for _, p := range s.data.Prompts {
		if p.Rating != nil {
			out = append(out, p.clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *Store) index(id int64) int {
	for i, p := range s.data.Prompts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []Prompt {
	out := make([]Prompt, len(s.data.Prompts))
	for i, p := range s.data.Prompts {
		out[i] = p.clone()
	}
	return out
}

// writeAtomic writes to a temp file then renames it over the store path.
// Caller must hold s.mu.
func (s *Store) writeAtomic(f file) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	if f.Prompts == nil {
		f.Prompts = []Prompt{}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
