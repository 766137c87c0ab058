package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blackwell-systems/gradientctl/internal/config"
	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/blackwell-systems/gradientctl/internal/preset"
)

func withTestEnv(t *testing.T) {
	t.Helper()
	savedCfg, savedPresets := cfg, presets
	t.Cleanup(func() { cfg, presets = savedCfg, savedPresets })

	cfg = &config.Config{
		Editor:    config.EditorConfig{Angle: 120},
		Clipboard: config.ClipboardConfig{Mode: "none"},
	}
	presets = preset.Builtin()
}

func TestParseStop(t *testing.T) {
	cases := []struct {
		in       string
		color    string
		position int
	}{
		{"#ff0000 0", "#ff0000", 0},
		{"#F00 50%", "#ff0000", 50},
		{"  teal   100 ", "#008080", 100},
		{"#000000 150", "#000000", 150},
		{"#ffffff -10%", "#ffffff", -10},
		{"rebeccapurple 40", "#663399", 40},
	}
	for _, c := range cases {
		st, err := parseStop(c.in)
		if err != nil {
			t.Errorf("parseStop(%q) error: %v", c.in, err)
			continue
		}
		if st.Color != c.color || st.Position != c.position {
			t.Errorf("parseStop(%q) = %s %d, want %s %d", c.in, st.Color, st.Position, c.color, c.position)
		}
	}
}

func TestParseStop_Invalid(t *testing.T) {
	for _, in := range []string{"", "#ff0000", "#ff0000 10 20", "#ggg 10", "#ff0000 ten", "#ff0000 1.5"} {
		if _, err := parseStop(in); err == nil {
			t.Errorf("parseStop(%q) = nil error, want error", in)
		}
	}
}

func TestBuildState_Defaults(t *testing.T) {
	withTestEnv(t)

	s, err := buildState(false, 0, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Angle != 120 {
		t.Errorf("Angle = %d, want 120 from config", s.Angle)
	}
	if got := s.CSS(); got != "linear-gradient(120deg, #ffffff 0%, #000000 100%)" {
		t.Errorf("CSS = %q", got)
	}
}

func TestBuildState_PresetThenAngle(t *testing.T) {
	withTestEnv(t)

	s, err := buildState(false, 0, "OCEAN", nil)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := presets.ByName("ocean")
	if s.Angle != want.Angle {
		t.Errorf("Angle = %d, want preset angle %d", s.Angle, want.Angle)
	}

	s, err = buildState(true, 10, "ocean", nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Angle != 10 {
		t.Errorf("Angle = %d, want explicit 10", s.Angle)
	}
	if len(s.Stops) != len(want.Stops) {
		t.Errorf("len(Stops) = %d, want %d", len(s.Stops), len(want.Stops))
	}
}

func TestBuildState_UnknownPreset(t *testing.T) {
	withTestEnv(t)

	_, err := buildState(false, 0, "nope", nil)
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("err = %v, want unknown preset", err)
	}
}

func TestBuildState_StopsSorted(t *testing.T) {
	withTestEnv(t)

	s, err := buildState(true, 45, "", []string{"#000000 100", "#ff0000 30", "#ffffff 0"})
	if err != nil {
		t.Fatal(err)
	}
	want := "linear-gradient(45deg, #ffffff 0%, #ff0000 30%, #000000 100%)"
	if got := s.CSS(); got != want {
		t.Errorf("CSS = %q, want %q", got, want)
	}
	seen := map[int64]bool{}
	for _, st := range s.Stops {
		if seen[st.ID] {
			t.Errorf("duplicate stop id %d", st.ID)
		}
		seen[st.ID] = true
	}
}

func TestBuildState_TooFewStops(t *testing.T) {
	withTestEnv(t)

	if _, err := buildState(false, 0, "", []string{"#000000 0"}); err == nil {
		t.Error("expected error for a single stop")
	}
}

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := newCSSCmd()
	switch args[0] {
	case "presets":
		cmd = newPresetsCmd()
	case "version":
		cmd = newVersionCmd()
	}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args[1:])
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%s %v: %v", args[0], args[1:], err)
	}
	return buf.String()
}

func TestCSSCmd(t *testing.T) {
	withTestEnv(t)

	got := runCmd(t, "css", "--stop", "#ff6b6b 0", "--stop", "#ffd93d 100", "--angle", "45")
	if got != "linear-gradient(45deg, #ff6b6b 0%, #ffd93d 100%)\n" {
		t.Errorf("css output = %q", got)
	}

	got = runCmd(t, "css", "--declaration")
	if got != "background: linear-gradient(120deg, #ffffff 0%, #000000 100%);\n" {
		t.Errorf("css --declaration output = %q", got)
	}
}

func TestCSSCmd_CopyWithNoClipboard(t *testing.T) {
	withTestEnv(t)

	got := runCmd(t, "css", "--preset", "sunrise", "--copy")
	if !strings.HasPrefix(got, "linear-gradient(") {
		t.Errorf("css --copy output = %q", got)
	}
}

func TestPresetsCmd_Names(t *testing.T) {
	withTestEnv(t)

	got := strings.Fields(runCmd(t, "presets", "--names"))
	want := presets.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("presets --names = %v, want %v", got, want)
	}
}

func TestPresetsCmd_ListsCSS(t *testing.T) {
	withTestEnv(t)

	got := runCmd(t, "presets")
	for _, p := range presets.All() {
		if !strings.Contains(got, p.Name) {
			t.Errorf("presets output missing %s", p.Name)
		}
	}
	if n := strings.Count(got, "\n"); n != presets.Len() {
		t.Errorf("presets output has %d lines, want %d", n, presets.Len())
	}
}

func TestVersionCmd(t *testing.T) {
	saved := appVersion
	defer func() { appVersion = saved }()

	SetVersion("1.2.3")
	if got := runCmd(t, "version"); got != "gradientctl 1.2.3\n" {
		t.Errorf("version output = %q", got)
	}
	SetVersion("")
	if appVersion != "1.2.3" {
		t.Errorf("SetVersion(\"\") changed version to %q", appVersion)
	}
}

func TestCompletePresetNames(t *testing.T) {
	withTestEnv(t)

	got, _ := completePresetNames(nil, nil, "d")
	if len(got) != 1 || got[0] != "Dusk" {
		t.Errorf("completePresetNames(d) = %v, want [Dusk]", got)
	}

	presets = nil
	got, _ = completePresetNames(nil, nil, "")
	if len(got) != preset.Builtin().Len() {
		t.Errorf("fallback completion returned %d names", len(got))
	}
}

func TestPresetsCmd_YAMLRoundTrip(t *testing.T) {
	withTestEnv(t)

	got := runCmd(t, "presets", "--yaml")
	parsed, err := preset.Parse([]byte(got))
	if err != nil {
		t.Fatalf("Parse(presets --yaml): %v", err)
	}
	if len(parsed) != presets.Len() {
		t.Fatalf("parsed %d presets, want %d", len(parsed), presets.Len())
	}
	for i, p := range presets.All() {
		if got, want := gradient.Render(parsed[i].Angle, parsed[i].Stops), gradient.Render(p.Angle, p.Stops); got != want {
			t.Errorf("%s: %s, want %s", p.Name, got, want)
		}
	}
}
