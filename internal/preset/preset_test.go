package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/blackwell-systems/gradientctl/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	lib := preset.Builtin()
	require.GreaterOrEqual(t, lib.Len(), 3)

	names := lib.Names()
	assert.Equal(t, []string{"Sunrise", "Ocean", "Mint"}, names[:3])

	seen := map[string]bool{}
	for _, p := range lib.All() {
		assert.False(t, seen[p.Name], "duplicate preset %q", p.Name)
		seen[p.Name] = true
		assert.GreaterOrEqual(t, len(p.Stops), gradient.MinStops)
	}
}

func TestByName(t *testing.T) {
	lib := preset.Builtin()

	p, ok := lib.ByName("ocean")
	require.True(t, ok)
	assert.Equal(t, "Ocean", p.Name)
	assert.Equal(t, 180, p.Angle)
	assert.Equal(t, "linear-gradient(180deg, #00b4d8 0%, #0077b6 100%)", gradient.Render(p.Angle, p.Stops))

	_, ok = lib.ByName("nope")
	assert.False(t, ok)
}

func TestLibraryIsImmutable(t *testing.T) {
	lib := preset.Builtin()
	p, _ := lib.ByName("Sunrise")
	p.Stops[0].Color = "#000000"

	again, _ := lib.ByName("Sunrise")
	assert.Equal(t, "#ff6b6b", again.Stops[0].Color)

	all := lib.All()
	all[0].Stops[1].Color = "#000000"
	assert.Equal(t, "#ffd93d", lib.All()[0].Stops[1].Color)
}

func TestApplyBuiltinPreset(t *testing.T) {
	lib := preset.Builtin()
	mint, _ := lib.ByName("Mint")

	s := gradient.Default()
	s.ApplyPreset(mint)
	assert.Equal(t, mint.Angle, s.Angle)
	assert.Equal(t, mint.Stops, s.Stops)
}

func TestNewLibrary_Errors(t *testing.T) {
	two := []gradient.ColorStop{{Color: "#000000"}, {Color: "#ffffff", Position: 100}}
	cases := []struct {
		name    string
		presets []gradient.Preset
		want    string
	}{
		{"empty name", []gradient.Preset{{Name: " ", Stops: two}}, "name is empty"},
		{"duplicate", []gradient.Preset{{Name: "A", Stops: two}, {Name: "a", Stops: two}}, "duplicate preset name"},
		{"one stop", []gradient.Preset{{Name: "A", Stops: two[:1]}}, "at least two stops"},
		{"bad color", []gradient.Preset{{Name: "A", Stops: []gradient.ColorStop{{Color: "#zzz"}, {Color: "#fff"}}}}, "invalid color"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := preset.NewLibrary(c.presets)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
- name: Fire
  angle: 30
  stops:
    - color: "#F00"
      position: 0
    - color: orange
      position: 60
    - color: "#ffff00"
      position: 100
`)
	presets, err := preset.Parse(data)
	require.NoError(t, err)
	require.Len(t, presets, 1)

	p := presets[0]
	assert.Equal(t, "Fire", p.Name)
	assert.Equal(t, 30, p.Angle)
	assert.Equal(t, "linear-gradient(30deg, #ff0000 0%, #ffa500 60%, #ffff00 100%)", gradient.Render(p.Angle, p.Stops))
	assert.Equal(t, int64(1), p.Stops[0].ID)
	assert.Equal(t, int64(3), p.Stops[2].ID)
}

func TestParse_Empty(t *testing.T) {
	presets, err := preset.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestParse_Invalid(t *testing.T) {
	_, err := preset.Parse([]byte("- name: [unterminated"))
	assert.Error(t, err)

	_, err = preset.Parse([]byte("- name: Solo\n  stops:\n    - color: '#fff'\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two stops")
}

func TestLoadLibrary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yml")

	extra := []gradient.Preset{{
		Name:  "Slate",
		Angle: 200,
		Stops: []gradient.ColorStop{{Color: "#334155", Position: 0}, {Color: "#0f172a", Position: 100}},
	}}
	data, err := preset.Marshal(extra)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	lib, err := preset.LoadLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, preset.Builtin().Len()+1, lib.Len())

	p, ok := lib.ByName("slate")
	require.True(t, ok)
	assert.Equal(t, 200, p.Angle)
}

func TestLoadLibrary_MissingFile(t *testing.T) {
	lib, err := preset.LoadLibrary(filepath.Join(t.TempDir(), "none.yml"))
	require.NoError(t, err)
	assert.Equal(t, preset.Builtin().Len(), lib.Len())
}

func TestLoadLibrary_ClashWithBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yml")
	content := "- name: ocean\n  angle: 1\n  stops:\n    - {color: '#000', position: 0}\n    - {color: '#fff', position: 100}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	_, err := preset.LoadLibrary(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate preset name")
}
