package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/gradientctl/internal/config"
)

func TestEffectivePreviewHeight(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 8},
		{1, 8},
		{2, 2},
		{12, 12},
		{41, 8},
	}
	for _, c := range cases {
		e := config.EditorConfig{PreviewHeight: c.in}
		if got := e.EffectivePreviewHeight(); got != c.want {
			t.Errorf("EffectivePreviewHeight(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestEffectiveMode(t *testing.T) {
	if got := (config.ClipboardConfig{}).EffectiveMode(); got != "auto" {
		t.Errorf("EffectiveMode = %q, want %q", got, "auto")
	}
	if got := (config.ClipboardConfig{Mode: "osc52"}).EffectiveMode(); got != "osc52" {
		t.Errorf("EffectiveMode = %q, want %q", got, "osc52")
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, filepath.Join("gradientctl", "config.yml")) {
		t.Errorf("DefaultPath = %q, should end with gradientctl/config.yml", p)
	}
}

func TestPath_Precedence(t *testing.T) {
	t.Setenv("GRADIENTCTL_CONFIG", "/env/config.yml")
	if got := config.Path("/flag/config.yml"); got != "/flag/config.yml" {
		t.Errorf("Path(flag) = %q, want flag path", got)
	}
	if got := config.Path(""); got != "/env/config.yml" {
		t.Errorf("Path(\"\") = %q, want env path", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.Angle != 90 {
		t.Errorf("Editor.Angle = %d, want 90", cfg.Editor.Angle)
	}
	if cfg.Editor.PreviewHeight != 8 {
		t.Errorf("Editor.PreviewHeight = %d, want 8", cfg.Editor.PreviewHeight)
	}
	if !cfg.Editor.Mouse {
		t.Error("Editor.Mouse should default to true")
	}
	if cfg.Clipboard.Mode != "auto" {
		t.Errorf("Clipboard.Mode = %q, want auto", cfg.Clipboard.Mode)
	}
	if !strings.HasSuffix(cfg.Presets.File, "presets.yml") {
		t.Errorf("Presets.File = %q, want presets.yml default", cfg.Presets.File)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "editor:\n  angle: 45\n  preview_height: 12\nclipboard:\n  mode: osc52\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRADIENTCTL_CLIPBOARD_MODE", "none")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.Angle != 45 {
		t.Errorf("Editor.Angle = %d, want 45", cfg.Editor.Angle)
	}
	if cfg.Editor.PreviewHeight != 12 {
		t.Errorf("Editor.PreviewHeight = %d, want 12", cfg.Editor.PreviewHeight)
	}
	if cfg.Clipboard.Mode != "none" {
		t.Errorf("Clipboard.Mode = %q, want env override none", cfg.Clipboard.Mode)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("editor: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("expected error for malformed config, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	in := &config.Config{
		Editor:    config.EditorConfig{Angle: 270, PreviewHeight: 6, Mouse: false},
		Clipboard: config.ClipboardConfig{Mode: "system"},
		Log:       config.LogConfig{Level: "debug"},
	}
	if err := config.Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Editor.Angle != 270 || out.Editor.PreviewHeight != 6 || out.Editor.Mouse {
		t.Errorf("Editor = %+v, want angle 270 height 6 mouse off", out.Editor)
	}
	if out.Clipboard.Mode != "system" {
		t.Errorf("Clipboard.Mode = %q, want system", out.Clipboard.Mode)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := config.Encode(&buf, &config.Config{Editor: config.EditorConfig{Angle: 10}}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "angle: 10") {
		t.Errorf("Encode output missing angle:\n%s", buf.String())
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	cases := []struct{ in, want string }{
		{"~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, c := range cases {
		if got := config.ExpandHome(c.in); got != c.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
