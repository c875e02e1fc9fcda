package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/pix3lprompt/internal/model"
)

func TestCategoriesOrder(t *testing.T) {
	got := Categories()
	want := []string{"style", "lighting", "camera angle", "color palette", "medium", "quality", "framing", "mood"}

	require.Len(t, got, len(want))
	for i, c := range got {
		assert.Equal(t, want[i], c.String())
	}
}

func TestCatalogSizes(t *testing.T) {
	tests := []struct {
		category Category
		want     int
	}{
		{Style, 20},
		{Lighting, 14},
		{CameraAngle, 10},
		{ColorPalette, 10},
		{Medium, 10},
		{Quality, 8},
		{Framing, 9},
		{Mood, 10},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Len(t, For(tt.category), tt.want)
		})
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	for _, c := range Categories() {
		seen := make(map[string]bool)
		for _, p := range For(c) {
			assert.False(t, seen[p.ID], "duplicate id %q in %s", p.ID, c)
			seen[p.ID] = true
			assert.NotEmpty(t, p.Label)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		id       string
		want     string
		ok       bool
	}{
		{"style", Style, "3d-render", "3D Render", true},
		{"lighting", Lighting, "golden-hour", "Golden Hour", true},
		{"framing alias", Framing, "portrait-framing", "Portrait", true},
		{"medium slash", Medium, "noise-grain", "Noise / Grain", true},
		{"wrong category", Lighting, "anime", "", false},
		{"unknown", Mood, "angry", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Label(tt.category, tt.id)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForReturnsCopy(t *testing.T) {
	list := For(Style)
	list[0].Label = "changed"

	label, _ := Label(Style, "photorealistic")
	assert.Equal(t, "Photorealistic", label)
}

func TestTemplatesReferenceKnownChips(t *testing.T) {
	all := Templates()
	require.Len(t, all, 20)

	for _, tmpl := range all {
		for c, ids := range tmpl.Chips {
			for _, id := range ids {
				_, ok := Label(c, id)
				assert.True(t, ok, "template %q uses unknown %s chip %q", tmpl.Name, c, id)
			}
		}
		assert.Contains(t, AspectRatios(), tmpl.AspectRatio)
	}
}

func TestTemplatesFor(t *testing.T) {
	assert.Len(t, TemplatesFor(model.GroupImage), 16)
	assert.Len(t, TemplatesFor(model.GroupVideo), 2)
	assert.Len(t, TemplatesFor(model.GroupAudio), 2)
}
