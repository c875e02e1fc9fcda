package history

import (
	"time"

	"github.com/sant0-9/pix3lprompt/internal/preset"
)

// Prompt is a saved editor snapshot
type Prompt struct {
	ID           int64       `json:"id"`
	Subject      string      `json:"subject"`
	Styles       []string    `json:"styles"`
	Lighting     []string    `json:"lighting"`
	CameraAngles []string    `json:"cameraAngles"`
	ColorPalette []string    `json:"colorPalette"`
	Medium       []string    `json:"medium"`
	Quality      []string    `json:"quality"`
	Framing      []string    `json:"framing"`
	Mood         []string    `json:"mood"`
	Composition  Composition `json:"composition"`

	Details        string         `json:"details"`
	NegativePrompt string         `json:"negativePrompt"`
	Parameters     map[string]any `json:"parameters"`

	TargetModel     string `json:"targetModel"`
	AssembledPrompt string `json:"assembledPrompt"`

	Rating     *int     `json:"rating"`
	Notes      string   `json:"notes"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"isFavorite"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Composition struct {
	AspectRatio string `json:"aspectRatio"`
}

// Chips returns the chip selections keyed by category
func (p *Prompt) Chips() map[preset.Category][]string {
	return map[preset.Category][]string{
		preset.Style:        p.Styles,
		preset.Lighting:     p.Lighting,
		preset.CameraAngle:  p.CameraAngles,
		preset.ColorPalette: p.ColorPalette,
		preset.Medium:       p.Medium,
		preset.Quality:      p.Quality,
		preset.Framing:      p.Framing,
		preset.Mood:         p.Mood,
	}
}

// SetChips replaces every chip list, storing empty lists as []
func (p *Prompt) SetChips(chips map[preset.Category][]string) {
	get := func(c preset.Category) []string {
		out := make([]string, len(chips[c]))
		copy(out, chips[c])
		return out
	}
	p.Styles = get(preset.Style)
	p.Lighting = get(preset.Lighting)
	p.CameraAngles = get(preset.CameraAngle)
	p.ColorPalette = get(preset.ColorPalette)
	p.Medium = get(preset.Medium)
	p.Quality = get(preset.Quality)
	p.Framing = get(preset.Framing)
	p.Mood = get(preset.Mood)
}

func (p Prompt) clone() Prompt {
	cp := p
	cp.SetChips(p.Chips())
	if p.Parameters != nil {
		cp.Parameters = make(map[string]any, len(p.Parameters))
		for k, v := range p.Parameters {
			cp.Parameters[k] = v
		}
	}
	if p.Tags != nil {
		cp.Tags = append([]string(nil), p.Tags...)
	}
	if p.Rating != nil {
		r := *p.Rating
		cp.Rating = &r
	}
	return cp
}
