package preset

// Preset is a selectable chip within a category
type Preset struct {
	ID    string
	Label string
}

// Category identifies one of the chip groups on the editor
type Category int

const (
	Style Category = iota
	Lighting
	CameraAngle
	ColorPalette
	Medium
	Quality
	Framing
	Mood
)

var categoryNames = [...]string{
	Style:        "style",
	Lighting:     "lighting",
	CameraAngle:  "camera angle",
	ColorPalette: "color palette",
	Medium:       "medium",
	Quality:      "quality",
	Framing:      "framing",
	Mood:         "mood",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Categories returns every category in assembly order
func Categories() []Category {
	return []Category{Style, Lighting, CameraAngle, ColorPalette, Medium, Quality, Framing, Mood}
}

// For returns the presets of a category in display order.
// The returned slice is a copy.
func For(c Category) []Preset {
	list, ok := catalog[c]
	if !ok {
		return nil
	}
	out := make([]Preset, len(list))
	copy(out, list)
	return out
}

// Label resolves a chip id to its display label
func Label(c Category, id string) (string, bool) {
	for _, p := range catalog[c] {
		if p.ID == id {
			return p.Label, true
		}
	}
	return "", false
}

// AspectRatios lists the supported aspect ratios, default first
func AspectRatios() []string {
	return []string{"16:9", "3:2", "1:1", "9:16", "4:5", "21:9"}
}

const DefaultAspectRatio = "16:9"
