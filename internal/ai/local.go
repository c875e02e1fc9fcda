package ai

import (
	"context"
	"regexp"
	"strings"
)

// MaxLocalVariations is how many variations the local rules can produce
const MaxLocalVariations = 4

var styleSwaps = map[string]string{
	"cinematic":      "moody cinematic",
	"anime":          "manga illustration",
	"photorealistic": "hyperrealistic photography",
	"watercolor":     "ink wash painting",
	"cyberpunk":      "neon noir",
	"concept art":    "matte painting",
	"3d render":      "CGI render",
	"oil painting":   "acrylic painting",
	"minimalist":     "abstract geometric",
	"vaporwave":      "retrowave",
}

var lightingSwaps = map[string]string{
	"golden hour":      "blue hour",
	"neon glow":        "bioluminescent",
	"dramatic shadows": "chiaroscuro",
	"foggy":            "misty haze",
	"ethereal":         "dreamlike glow",
	"rim light":        "silhouette lighting",
	"studio lighting":  "softbox lighting",
	"natural light":    "overcast diffused light",
	"backlit":          "contre-jour",
	"moonlight":        "starlight",
}

var qualityModifiers = []string{
	"highly detailed",
	"8k",
	"sharp focus",
	"professional",
	"masterpiece",
}

// checked in order, first substring match wins
var defaultNegatives = []struct {
	family   string
	negative string
}{
	{"midjourney", "blurry, deformed, watermark, text, low quality"},
	{"flux", "blurry, watermark, text, signature, low resolution"},
	{"sd", "blurry, deformed, bad anatomy, watermark, text, low quality, extra limbs, duplicate"},
	{"dall", "blurry, watermark, text"},
}

const fallbackNegative = "blurry, deformed, watermark, text, low quality"

var (
	multiSpace  = regexp.MustCompile(`\s{2,}`)
	doubleComma = regexp.MustCompile(`,\s*,`)
)

// LocalRules rewrites prompts with fixed string heuristics.
// It is deterministic, makes no network calls and never fails.
type LocalRules struct{}

func NewLocalRules() *LocalRules {
	return &LocalRules{}
}

func (l *LocalRules) Name() string {
	return "Local Rules"
}

func (l *LocalRules) Optimize(_ context.Context, prompt string, pc PromptContext) (string, error) {
	return l.optimize(prompt, pc), nil
}

func (l *LocalRules) optimize(prompt string, pc PromptContext) string {
	parts := keywords(prompt)

	seen := make(map[string]bool)
	deduped := parts[:0]
	for _, p := range parts {
		lower := strings.ToLower(p)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		deduped = append(deduped, p)
	}
	parts = deduped

	if len(pc.AvoidKeywords) > 0 {
		avoid := make(map[string]bool, len(pc.AvoidKeywords))
		for _, k := range pc.AvoidKeywords {
			avoid[strings.ToLower(k)] = true
		}
		kept := parts[:0]
		for _, p := range parts {
			if !avoid[strings.ToLower(p)] {
				kept = append(kept, p)
			}
		}
		parts = kept
	}

	if strings.Contains(strings.ToLower(pc.TargetModel), "midjourney") {
		for i := 0; i < len(parts) && i < 3; i++ {
			parts[i] += "::1.2"
		}
	}

	result := strings.Join(parts, ", ")
	result = multiSpace.ReplaceAllString(result, " ")
	result = doubleComma.ReplaceAllString(result, ",")
	return result
}

// GenerateVariations always builds four variations (quality added,
// style swapped, lighting swapped, minimal) and returns the first count.
func (l *LocalRules) GenerateVariations(_ context.Context, prompt string, count int, _ PromptContext) ([]string, error) {
	return l.variations(prompt, count), nil
}

func (l *LocalRules) variations(prompt string, count int) []string {
	words := keywords(prompt)

	withQuality := append([]string(nil), words...)
	for _, m := range qualityModifiers {
		present := false
		for _, w := range words {
			if strings.Contains(strings.ToLower(w), m) {
				present = true
				break
			}
		}
		if !present {
			withQuality = append(withQuality, m)
		}
	}

	minimal := words
	if len(minimal) > 3 {
		minimal = minimal[:3]
	}

	all := []string{
		strings.Join(withQuality, ", "),
		strings.Join(swap(words, styleSwaps), ", "),
		strings.Join(swap(words, lightingSwaps), ", "),
		strings.Join(minimal, ", "),
	}

	if count < 0 {
		count = 0
	}
	if count > len(all) {
		count = len(all)
	}
	return all[:count]
}

func (l *LocalRules) SuggestImprovements(_ context.Context, prompt string, rating int, notes string) ([]Suggestion, error) {
	return l.suggest(prompt, rating, notes), nil
}

func (l *LocalRules) suggest(prompt string, rating int, notes string) []Suggestion {
	suggestions := []Suggestion{}
	lower := strings.ToLower(prompt)

	if rating <= 2 {
		if !strings.Contains(lower, "detailed") && !strings.Contains(lower, "8k") {
			suggestions = append(suggestions, Suggestion{
				Type:       SuggestAdd,
				Target:     "quality",
				Suggestion: "Add 'highly detailed, 8k' for better quality",
				Reason:     "Low-rated prompts often lack quality modifiers",
			})
		}
		if !strings.Contains(lower, "--no") && !strings.Contains(lower, "negative") {
			suggestions = append(suggestions, Suggestion{
				Type:       SuggestAdd,
				Target:     "negative prompt",
				Suggestion: "Add negative prompt to avoid common artifacts",
				Reason:     "Missing negative prompt can lead to unwanted artifacts",
			})
		}
	}

	// "light" also covers "lighting"
	if !strings.Contains(lower, "light") {
		suggestions = append(suggestions, Suggestion{
			Type:       SuggestAdd,
			Target:     "lighting",
			Suggestion: "Add a lighting keyword (e.g., 'golden hour', 'studio lighting')",
			Reason:     "Lighting significantly improves image quality",
		})
	}

	if strings.Contains(strings.ToLower(notes), "blur") {
		suggestions = append(suggestions, Suggestion{
			Type:       SuggestAdd,
			Target:     "negative prompt",
			Suggestion: "Add 'blurry, out of focus' to negative prompt",
			Reason:     "User noted blurriness in the result",
		})
	}

	return suggestions
}

// DefaultNegative returns a starter negative prompt for a target model
func DefaultNegative(targetModel string) string {
	lower := strings.ToLower(targetModel)
	for _, d := range defaultNegatives {
		if strings.Contains(lower, d.family) {
			return d.negative
		}
	}
	return fallbackNegative
}

// keywords splits on commas, trimming and dropping empty entries
func keywords(prompt string) []string {
	var out []string
	for _, p := range strings.Split(prompt, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func swap(words []string, table map[string]string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		if alt, ok := table[strings.ToLower(w)]; ok {
			out[i] = alt
		} else {
			out[i] = w
		}
	}
	return out
}
