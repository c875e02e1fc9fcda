package model

// Group is the kind of output a target model generates
type Group string

const (
	GroupImage Group = "image"
	GroupVideo Group = "video"
	GroupAudio Group = "audio"
)

// Config holds the formatting rules for one target model
type Config struct {
	ID    string
	Label string
	Group Group

	// Suffix is appended after the aspect ratio, e.g. "--v 7"
	Suffix string

	// ARFormat and NegFormat return "" when nothing should be appended
	ARFormat  func(ratio string) string
	NegFormat func(neg string) string

	Placeholder string
}

func flagAR(ratio string) string {
	return "--ar " + ratio
}

func flagNeg(neg string) string {
	if neg == "" {
		return ""
	}
	return "--no " + neg
}

func plainAR(ratio string) string {
	return ratio
}

func plainNeg(neg string) string {
	if neg == "" {
		return ""
	}
	return "Negative prompt: " + neg
}

func dalleNeg(neg string) string {
	if neg == "" {
		return ""
	}
	return "I don't want: " + neg
}

func none(string) string {
	return ""
}

const (
	placeholderImage   = "Describe your image..."
	placeholderNatural = "Describe your image in natural language..."
	placeholderSD      = "Describe your image with comma-separated keywords..."
	placeholderVideo   = "Describe your video scene..."
)

var configs = []Config{
	{ID: "midjourney-v7", Label: "Midjourney v7", Group: GroupImage, Suffix: "--v 7", ARFormat: flagAR, NegFormat: flagNeg, Placeholder: placeholderImage},
	{ID: "midjourney-v6.1", Label: "Midjourney v6.1", Group: GroupImage, Suffix: "--v 6.1", ARFormat: flagAR, NegFormat: flagNeg, Placeholder: placeholderImage},
	{ID: "flux-pro", Label: "Flux.1 Pro", Group: GroupImage, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: placeholderNatural},
	{ID: "flux-dev", Label: "Flux.1 Dev", Group: GroupImage, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: placeholderNatural},
	{ID: "sd-3.5", Label: "SD 3.5", Group: GroupImage, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: placeholderSD},
	{ID: "sdxl", Label: "SDXL", Group: GroupImage, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: placeholderSD},
	{ID: "leonardo-phoenix", Label: "Leonardo Phoenix", Group: GroupImage, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: placeholderImage},
	{ID: "dall-e-3", Label: "DALL-E 3", Group: GroupImage, ARFormat: plainAR, NegFormat: dalleNeg, Placeholder: placeholderNatural},
	{ID: "ideogram-2", Label: "Ideogram 2", Group: GroupImage, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: placeholderImage},

	{ID: "kling-2.0", Label: "Kling 2.0", Group: GroupVideo, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: placeholderVideo},
	{ID: "runway-gen3", Label: "Runway Gen-3", Group: GroupVideo, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: "Describe the camera movement and scene..."},
	{ID: "pika-2.0", Label: "Pika 2.0", Group: GroupVideo, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: "Describe your video..."},
	{ID: "luma-dream-machine", Label: "Luma Dream Machine", Group: GroupVideo, ARFormat: plainAR, NegFormat: plainNeg, Placeholder: placeholderVideo},

	{ID: "suno-v4", Label: "Suno v4", Group: GroupAudio, ARFormat: none, NegFormat: none, Placeholder: "Describe the music genre, mood, instruments..."},
	{ID: "udio", Label: "Udio", Group: GroupAudio, ARFormat: none, NegFormat: none, Placeholder: "Describe the music style and mood..."},
}

// DefaultID is the target model used by a fresh editor
const DefaultID = "midjourney-v7"

// Get returns the config for id, or the first entry when id is unknown.
// Stored records may reference models that no longer exist.
func Get(id string) Config {
	if c, ok := Lookup(id); ok {
		return c
	}
	return configs[0]
}

// Lookup reports whether id is a known target model
func Lookup(id string) (Config, bool) {
	for _, c := range configs {
		if c.ID == id {
			return c, true
		}
	}
	return Config{}, false
}

// All returns every model in table order
func All() []Config {
	out := make([]Config, len(configs))
	copy(out, configs)
	return out
}

// Groups returns the group names in display order
func Groups() []Group {
	return []Group{GroupImage, GroupVideo, GroupAudio}
}

// InGroup returns the models of a group in table order
func InGroup(g Group) []Config {
	var out []Config
	for _, c := range configs {
		if c.Group == g {
			out = append(out, c)
		}
	}
	return out
}
