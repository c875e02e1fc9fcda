package editor

import (
	"github.com/sant0-9/pix3lprompt/internal/ai"
	"github.com/sant0-9/pix3lprompt/internal/history"
	"github.com/sant0-9/pix3lprompt/internal/preset"
)

// BuildContext describes the user's taste to an AI provider. Styles from
// prompts rated at or above history.FavoriteRating count as preferred.
func (s *Store) BuildContext(rated []history.Prompt, avoid []string) ai.PromptContext {
	pc := ai.PromptContext{
		TargetModel:   s.Model().Label,
		AvoidKeywords: append([]string(nil), avoid...),
	}

	seen := make(map[string]bool)
	for _, p := range rated {
		if p.Rating == nil {
			continue
		}
		pc.PreviousRatings = append(pc.PreviousRatings, ai.RatedPrompt{
			Prompt: p.AssembledPrompt,
			Rating: *p.Rating,
			Notes:  p.Notes,
		})

		if *p.Rating < history.FavoriteRating {
			continue
		}
		for _, id := range p.Styles {
			label, ok := preset.Label(preset.Style, id)
			if !ok {
				label = id
			}
			if !seen[label] {
				seen[label] = true
				pc.PreferredStyles = append(pc.PreferredStyles, label)
			}
		}
	}
	return pc
}
