package preset

import "github.com/sant0-9/pix3lprompt/internal/model"

// Template is a quick-start editor configuration
type Template struct {
	ID          int
	Name        string
	Subject     string
	Preview     string
	Chips       map[Category][]string
	AspectRatio string
	Details     string
	Group       model.Group
}

// Templates returns every template in display order
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplatesFor filters templates by model group
func TemplatesFor(g model.Group) []Template {
	var out []Template
	for _, t := range templates {
		if t.Group == g {
			out = append(out, t)
		}
	}
	return out
}

var templates = []Template{
	{
		ID:      1,
		Name:    "Cinematic Portrait",
		Subject: "A portrait with shallow depth of field",
		Preview: "A portrait with cinematic lighting, shallow depth of field, dramatic shadows",
		Chips: map[Category][]string{
			Style:       {"cinematic"},
			Lighting:    {"dramatic-shadows", "rim-light"},
			CameraAngle: {"close-up"},
			Medium:      {"film-grain"},
			Quality:     {"ultra-sharp"},
			Framing:     {"portrait-framing"},
			Mood:        {"mysterious"},
		},
		AspectRatio: "3:2",
		Details:     "bokeh background",
		Group:       model.GroupImage,
	},
	{
		ID:      2,
		Name:    "Fantasy Landscape",
		Subject: "An epic fantasy landscape with mountains and waterfalls",
		Preview: "An epic fantasy landscape with mountains, waterfalls, and magical atmosphere",
		Chips: map[Category][]string{
			Style:       {"concept-art"},
			Lighting:    {"volumetric", "golden-hour"},
			CameraAngle: {"wide-shot"},
			Quality:     {"highly-detailed"},
			Framing:     {"panoramic"},
			Mood:        {"epic"},
		},
		AspectRatio: "16:9",
		Details:     "magical atmosphere",
		Group:       model.GroupImage,
	},
	{
		ID:      3,
		Name:    "Product Shot",
		Subject: "Clean product photography on white background",
		Preview: "Clean product photography on white background, studio lighting, sharp focus",
		Chips: map[Category][]string{
			Style:    {"photorealistic"},
			Lighting: {"studio-lighting"},
			Quality:  {"ultra-sharp", "professional"},
			Framing:  {"centered"},
		},
		AspectRatio: "1:1",
		Details:     "commercial quality",
		Group:       model.GroupImage,
	},
	{
		ID:      4,
		Name:    "Abstract Art",
		Subject: "Abstract composition with bold colors and geometric shapes",
		Preview: "Abstract composition with bold colors, geometric shapes, modern art style",
		Chips: map[Category][]string{
			Style:        {"minimalist"},
			Lighting:     {"ethereal"},
			ColorPalette: {"vibrant"},
			Framing:      {"centered", "negative-space"},
			Mood:         {"serene"},
		},
		AspectRatio: "1:1",
		Details:     "modern art, clean lines",
		Group:       model.GroupImage,
	},
	{
		ID:      5,
		Name:    "Neon Cyberpunk City",
		Subject: "Cyberpunk cityscape with rain-slicked streets",
		Preview: "Cyberpunk cityscape with neon lights, rain-slicked streets, futuristic architecture",
		Chips: map[Category][]string{
			Style:        {"cyberpunk"},
			Lighting:     {"neon-glow", "foggy"},
			CameraAngle:  {"low-angle"},
			ColorPalette: {"neon-colors"},
			Framing:      {"panoramic"},
			Mood:         {"dark"},
		},
		AspectRatio: "21:9",
		Details:     "futuristic architecture, reflections",
		Group:       model.GroupImage,
	},
	{
		ID:      6,
		Name:    "Watercolor Nature",
		Subject: "Delicate painting of flowers in a garden",
		Preview: "Delicate watercolor painting of flowers in a garden, soft pastel colors",
		Chips: map[Category][]string{
			Style:        {"watercolor"},
			Lighting:     {"natural-light"},
			ColorPalette: {"pastel"},
			Medium:       {"paper-texture"},
			Mood:         {"serene"},
		},
		AspectRatio: "4:5",
		Details:     "delicate brushstrokes",
		Group:       model.GroupImage,
	},
	{
		ID:      7,
		Name:    "Anime Character",
		Subject: "Full-body anime character standing in a dramatic pose",
		Preview: "Full-body anime character in dramatic pose, cel-shading, vibrant colors",
		Chips: map[Category][]string{
			Style:        {"anime"},
			Lighting:     {"rim-light"},
			ColorPalette: {"vibrant"},
			Framing:      {"full-body"},
			Mood:         {"epic"},
		},
		AspectRatio: "9:16",
		Details:     "cel-shading, clean linework",
		Group:       model.GroupImage,
	},
	{
		ID:      8,
		Name:    "Architectural Viz",
		Subject: "Modern minimalist house surrounded by nature",
		Preview: "Modern minimalist house surrounded by lush nature, clean geometry",
		Chips: map[Category][]string{
			Style:       {"3d-render", "minimalist"},
			Lighting:    {"natural-light"},
			CameraAngle: {"wide-shot"},
			Quality:     {"ultra-sharp"},
			Framing:     {"rule-of-thirds"},
		},
		AspectRatio: "16:9",
		Details:     "architectural photography, clean geometry",
		Group:       model.GroupImage,
	},
	{
		ID:      9,
		Name:    "Food Photography",
		Subject: "Gourmet dish on a rustic wooden table",
		Preview: "Gourmet dish on a rustic wooden table, studio lighting, shallow depth of field",
		Chips: map[Category][]string{
			Style:        {"photorealistic"},
			Lighting:     {"studio-lighting", "backlit"},
			CameraAngle:  {"birds-eye"},
			ColorPalette: {"warm-tones"},
			Medium:       {"soft-focus"},
			Quality:      {"professional"},
		},
		AspectRatio: "4:5",
		Details:     "food styling",
		Group:       model.GroupImage,
	},
	{
		ID:      10,
		Name:    "Retro Poster",
		Subject: "Vintage travel poster of a coastal town",
		Preview: "Vintage travel poster of a coastal town, screen print, limited color palette",
		Chips: map[Category][]string{
			Style:    {"retro", "pop-art"},
			Lighting: {"golden-hour"},
			Medium:   {"halftone"},
			Mood:     {"nostalgic"},
		},
		AspectRatio: "9:16",
		Details:     "screen print, bold typography",
		Group:       model.GroupImage,
	},
	{
		ID:      11,
		Name:    "Dark Gothic Scene",
		Subject: "Ancient cathedral interior with stained glass",
		Preview: "Ancient cathedral interior with stained glass, candlelight, moody atmosphere",
		Chips: map[Category][]string{
			Style:        {"gothic"},
			Lighting:     {"candlelight", "volumetric"},
			CameraAngle:  {"low-angle"},
			ColorPalette: {"desaturated"},
			Quality:      {"highly-detailed"},
			Mood:         {"dark", "mysterious"},
		},
		AspectRatio: "3:2",
		Details:     "stone texture",
		Group:       model.GroupImage,
	},
	{
		ID:      12,
		Name:    "Isometric Game Asset",
		Subject: "Tiny medieval village with market square",
		Preview: "Tiny medieval village with market square, isometric view, miniature scene",
		Chips: map[Category][]string{
			Style:        {"low-poly", "pixel-art"},
			Lighting:     {"natural-light"},
			CameraAngle:  {"birds-eye"},
			ColorPalette: {"vibrant"},
			Framing:      {"centered"},
			Mood:         {"whimsical"},
		},
		AspectRatio: "1:1",
		Details:     "isometric view, game asset, miniature scene",
		Group:       model.GroupImage,
	},
	{
		ID:      13,
		Name:    "Sci-Fi Book Cover",
		Subject: "Astronaut standing before a massive alien structure",
		Preview: "Astronaut before a massive alien structure, epic scale, sci-fi atmosphere",
		Chips: map[Category][]string{
			Style:       {"concept-art", "cinematic"},
			Lighting:    {"backlit", "ethereal"},
			CameraAngle: {"low-angle"},
			Quality:     {"8k", "highly-detailed"},
			Mood:        {"epic", "mysterious"},
		},
		AspectRatio: "9:16",
		Details:     "lens flare, sci-fi atmosphere",
		Group:       model.GroupImage,
	},
	{
		ID:      14,
		Name:    "Oil Portrait Master",
		Subject: "Renaissance-style portrait of a woman with flowers",
		Preview: "Renaissance-style portrait of a woman with flowers, visible brushstrokes",
		Chips: map[Category][]string{
			Style:        {"oil-painting", "art-nouveau"},
			Lighting:     {"dramatic-shadows"},
			ColorPalette: {"warm-tones"},
			Medium:       {"canvas-texture"},
			Quality:      {"masterpiece"},
			Framing:      {"portrait-framing", "golden-ratio"},
		},
		AspectRatio: "3:2",
		Details:     "visible brushstrokes, rich textures",
		Group:       model.GroupImage,
	},
	{
		ID:      15,
		Name:    "Dreamy Double Exposure",
		Subject: "Silhouette of a wolf merged with a forest landscape",
		Preview: "Silhouette of a wolf merged with a forest, double exposure, ethereal mood",
		Chips: map[Category][]string{
			Style:    {"surrealist"},
			Lighting: {"moonlight", "foggy"},
			Medium:   {"double-exposure"},
			Quality:  {"highly-detailed"},
			Mood:     {"dreamy", "mysterious"},
		},
		AspectRatio: "16:9",
		Details:     "ethereal mood, fine detail",
		Group:       model.GroupImage,
	},
	{
		ID:      16,
		Name:    "Street Photography",
		Subject: "Rainy Tokyo alley at night with neon reflections",
		Preview: "Rainy Tokyo alley at night, neon reflections, wet asphalt, street level",
		Chips: map[Category][]string{
			Style:        {"photorealistic", "cyberpunk"},
			Lighting:     {"neon-glow", "harsh-flash"},
			CameraAngle:  {"pov"},
			ColorPalette: {"neon-colors", "high-contrast"},
			Medium:       {"film-grain"},
			Mood:         {"dark"},
		},
		AspectRatio: "9:16",
		Details:     "wet asphalt reflections, motion blur",
		Group:       model.GroupImage,
	},
	{
		ID:      17,
		Name:    "Cinematic Drone Shot",
		Subject: "Aerial view of waves crashing on rocky coastline",
		Preview: "Aerial view of waves crashing on rocky coastline, slow motion, golden hour",
		Chips: map[Category][]string{
			Style:        {"cinematic"},
			Lighting:     {"golden-hour"},
			CameraAngle:  {"aerial"},
			ColorPalette: {"warm-tones"},
			Quality:      {"8k"},
			Framing:      {"panoramic"},
			Mood:         {"epic", "serene"},
		},
		AspectRatio: "21:9",
		Details:     "slow motion, camera pulling back, ocean spray",
		Group:       model.GroupVideo,
	},
	{
		ID:      18,
		Name:    "Music Video Loop",
		Subject: "Abstract particles morphing in rhythm",
		Preview: "Abstract particles morphing in rhythm, seamless loop, vibrant gradients",
		Chips: map[Category][]string{
			Style:        {"vaporwave"},
			Lighting:     {"neon-glow", "ethereal"},
			ColorPalette: {"neon-colors"},
			Mood:         {"dreamy"},
		},
		AspectRatio: "16:9",
		Details:     "seamless loop, pulsating motion, vibrant gradients",
		Group:       model.GroupVideo,
	},
	{
		ID:          19,
		Name:        "Lo-Fi Beat",
		Subject:     "Chill lo-fi hip hop beat, vinyl crackle, mellow piano chords",
		Preview:     "Chill lo-fi hip hop beat with vinyl crackle, jazzy samples, relaxed tempo",
		AspectRatio: "1:1",
		Details:     "rainy day mood, jazzy samples, relaxed tempo",
		Group:       model.GroupAudio,
	},
	{
		ID:          20,
		Name:        "Epic Trailer Music",
		Subject:     "Orchestral cinematic trailer music, building tension",
		Preview:     "Orchestral cinematic trailer music, brass section, percussion crescendo",
		AspectRatio: "1:1",
		Details:     "brass section, percussion crescendo, heroic theme",
		Group:       model.GroupAudio,
	},
}
