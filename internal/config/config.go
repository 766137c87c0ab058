package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const defaultPreviewHeight = 8

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gradientctl", "config.yml")
}

// Path returns the config file in use: override, then GRADIENTCTL_CONFIG,
// then DefaultPath.
func Path(override string) string {
	if override != "" {
		return ExpandHome(override)
	}
	if p := os.Getenv("GRADIENTCTL_CONFIG"); p != "" {
		return ExpandHome(p)
	}
	return DefaultPath()
}

// Load reads the config from path (see Path) and the environment. A missing
// file is not an error; defaults apply.
func Load(override string) (*Config, error) {
	v := viper.New()

	v.SetDefault("editor.angle", 90)
	v.SetDefault("editor.preview_height", defaultPreviewHeight)
	v.SetDefault("editor.mouse", true)
	v.SetDefault("clipboard.mode", "auto")
	v.SetDefault("presets.file", defaultPresetsFile())
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("GRADIENTCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(Path(override))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Presets.File = ExpandHome(cfg.Presets.File)
	cfg.Log.File = ExpandHome(cfg.Log.File)

	return &cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	if err := util.EnsureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, cfg)
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultPresetsFile() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gradientctl", "presets.yml")
}
