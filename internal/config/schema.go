package config

// Config is the top-level gradientctl configuration.
type Config struct {
	Editor    EditorConfig    `mapstructure:"editor" yaml:"editor"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" yaml:"clipboard"`
	Presets   PresetsConfig   `mapstructure:"presets" yaml:"presets"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// EditorConfig holds defaults for the interactive editor.
type EditorConfig struct {
	Angle         int  `mapstructure:"angle" yaml:"angle"`
	PreviewHeight int  `mapstructure:"preview_height" yaml:"preview_height"`
	Mouse         bool `mapstructure:"mouse" yaml:"mouse"`
}

// ClipboardConfig selects how CSS is copied.
type ClipboardConfig struct {
	Mode string `mapstructure:"mode" yaml:"mode"` // auto, system, osc52 or none
}

// PresetsConfig points at an optional file of extra presets.
type PresetsConfig struct {
	File string `mapstructure:"file" yaml:"file,omitempty"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file,omitempty"`
	Level string `mapstructure:"level" yaml:"level"`
}

// EffectivePreviewHeight returns the preview height in rows, falling back
// to the default for out-of-range values.
func (e EditorConfig) EffectivePreviewHeight() int {
	if e.PreviewHeight < 2 || e.PreviewHeight > 40 {
		return defaultPreviewHeight
	}
	return e.PreviewHeight
}

// EffectiveMode returns the clipboard mode or "auto".
func (c ClipboardConfig) EffectiveMode() string {
	if c.Mode == "" {
		return "auto"
	}
	return c.Mode
}
