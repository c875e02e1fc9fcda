package preset

var catalog = map[Category][]Preset{
	Style: {
		{ID: "photorealistic", Label: "Photorealistic"},
		{ID: "anime", Label: "Anime"},
		{ID: "cyberpunk", Label: "Cyberpunk"},
		{ID: "watercolor", Label: "Watercolor"},
		{ID: "cinematic", Label: "Cinematic"},
		{ID: "vaporwave", Label: "Vaporwave"},
		{ID: "oil-painting", Label: "Oil Painting"},
		{ID: "pixel-art", Label: "Pixel Art"},
		{ID: "3d-render", Label: "3D Render"},
		{ID: "concept-art", Label: "Concept Art"},
		{ID: "sketch", Label: "Sketch"},
		{ID: "surrealist", Label: "Surrealist"},
		{ID: "minimalist", Label: "Minimalist"},
		{ID: "retro", Label: "Retro"},
		{ID: "gothic", Label: "Gothic"},
		{ID: "steampunk", Label: "Steampunk"},
		{ID: "art-nouveau", Label: "Art Nouveau"},
		{ID: "pop-art", Label: "Pop Art"},
		{ID: "impressionist", Label: "Impressionist"},
		{ID: "low-poly", Label: "Low Poly"},
	},
	Lighting: {
		{ID: "golden-hour", Label: "Golden Hour"},
		{ID: "neon-glow", Label: "Neon Glow"},
		{ID: "dramatic-shadows", Label: "Dramatic Shadows"},
		{ID: "foggy", Label: "Foggy"},
		{ID: "ethereal", Label: "Ethereal"},
		{ID: "rim-light", Label: "Rim Light"},
		{ID: "studio-lighting", Label: "Studio Lighting"},
		{ID: "natural-light", Label: "Natural Light"},
		{ID: "backlit", Label: "Backlit"},
		{ID: "moonlight", Label: "Moonlight"},
		{ID: "volumetric", Label: "Volumetric"},
		{ID: "harsh-flash", Label: "Harsh Flash"},
		{ID: "candlelight", Label: "Candlelight"},
		{ID: "bioluminescent", Label: "Bioluminescent"},
	},
	CameraAngle: {
		{ID: "close-up", Label: "Close-Up"},
		{ID: "wide-shot", Label: "Wide Shot"},
		{ID: "birds-eye", Label: "Bird's Eye"},
		{ID: "low-angle", Label: "Low Angle"},
		{ID: "dutch-angle", Label: "Dutch Angle"},
		{ID: "over-the-shoulder", Label: "Over the Shoulder"},
		{ID: "pov", Label: "POV"},
		{ID: "macro", Label: "Macro"},
		{ID: "medium-shot", Label: "Medium Shot"},
		{ID: "aerial", Label: "Aerial"},
	},
	ColorPalette: {
		{ID: "warm-tones", Label: "Warm Tones"},
		{ID: "cool-tones", Label: "Cool Tones"},
		{ID: "monochrome", Label: "Monochrome"},
		{ID: "pastel", Label: "Pastel"},
		{ID: "desaturated", Label: "Desaturated"},
		{ID: "high-contrast", Label: "High Contrast"},
		{ID: "earth-tones", Label: "Earth Tones"},
		{ID: "neon-colors", Label: "Neon Colors"},
		{ID: "sepia", Label: "Sepia"},
		{ID: "vibrant", Label: "Vibrant"},
	},
	Medium: {
		{ID: "film-grain", Label: "Film Grain"},
		{ID: "canvas-texture", Label: "Canvas Texture"},
		{ID: "paper-texture", Label: "Paper Texture"},
		{ID: "glitch", Label: "Glitch"},
		{ID: "halftone", Label: "Halftone"},
		{ID: "soft-focus", Label: "Soft Focus"},
		{ID: "double-exposure", Label: "Double Exposure"},
		{ID: "long-exposure", Label: "Long Exposure"},
		{ID: "tilt-shift", Label: "Tilt Shift"},
		{ID: "noise-grain", Label: "Noise / Grain"},
	},
	Quality: {
		{ID: "8k", Label: "8K"},
		{ID: "highly-detailed", Label: "Highly Detailed"},
		{ID: "masterpiece", Label: "Masterpiece"},
		{ID: "award-winning", Label: "Award Winning"},
		{ID: "professional", Label: "Professional"},
		{ID: "raw-photo", Label: "RAW Photo"},
		{ID: "ultra-sharp", Label: "Ultra Sharp"},
		{ID: "hdr", Label: "HDR"},
	},
	Framing: {
		{ID: "rule-of-thirds", Label: "Rule of Thirds"},
		{ID: "centered", Label: "Centered"},
		{ID: "symmetrical", Label: "Symmetrical"},
		{ID: "golden-ratio", Label: "Golden Ratio"},
		{ID: "negative-space", Label: "Negative Space"},
		{ID: "full-body", Label: "Full Body"},
		{ID: "headshot", Label: "Headshot"},
		{ID: "portrait-framing", Label: "Portrait"},
		{ID: "panoramic", Label: "Panoramic"},
	},
	Mood: {
		{ID: "dreamy", Label: "Dreamy"},
		{ID: "dark", Label: "Dark"},
		{ID: "nostalgic", Label: "Nostalgic"},
		{ID: "serene", Label: "Serene"},
		{ID: "chaotic", Label: "Chaotic"},
		{ID: "mysterious", Label: "Mysterious"},
		{ID: "whimsical", Label: "Whimsical"},
		{ID: "epic", Label: "Epic"},
		{ID: "melancholic", Label: "Melancholic"},
		{ID: "romantic", Label: "Romantic"},
	},
}
