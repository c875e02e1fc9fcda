package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed optimize.md
var optimizeBase string

//go:embed variations.md
var variationsBase string

//go:embed suggest.md
var Suggest string

// Rated is a past prompt with the user's verdict
type Rated struct {
	Prompt string
	Rating int
	Notes  string
}

// Preferences steer remote rewriting toward what the user liked before
type Preferences struct {
	PreviousRatings []Rated
	PreferredStyles []string
	AvoidKeywords   []string
}

// BuildOptimizePrompt constructs the optimize system prompt for a target model
func BuildOptimizePrompt(targetModel string, prefs Preferences) string {
	base := fmt.Sprintf(strings.TrimSpace(optimizeBase), targetModel)
	return base + prefs.section()
}

// BuildVariationsPrompt constructs the variations system prompt.
// Counts above four ask for extra explorations.
func BuildVariationsPrompt(targetModel string, count int) string {
	extra := ""
	if count > 4 {
		extra = "5-8. Additional creative explorations"
	}
	return fmt.Sprintf(strings.TrimSpace(variationsBase), count, targetModel, extra)
}

func OptimizeUser(prompt string) string {
	return "Optimize this prompt:\n\n" + prompt
}

func VariationsUser(prompt string, count int) string {
	return fmt.Sprintf("Generate %d variations of:\n\n%s", count, prompt)
}

func SuggestUser(prompt string, rating int, notes string) string {
	return fmt.Sprintf("Prompt: %s\nRating: %d/5\nNotes: %s\n\nSuggest improvements.", prompt, rating, notes)
}

func (p Preferences) section() string {
	var b strings.Builder

	if len(p.PreferredStyles) > 0 {
		b.WriteString("\n- The user tends to like: " + strings.Join(p.PreferredStyles, ", "))
	}
	if len(p.AvoidKeywords) > 0 {
		b.WriteString("\n- Never use these keywords: " + strings.Join(p.AvoidKeywords, ", "))
	}
	if len(p.PreviousRatings) > 0 {
		b.WriteString("\n\nPreviously rated prompts (1-5):")
		for _, r := range p.PreviousRatings {
			fmt.Fprintf(&b, "\n- [%d/5] %s", r.Rating, r.Prompt)
			if r.Notes != "" {
				b.WriteString(" (" + r.Notes + ")")
			}
		}
	}

	return b.String()
}
