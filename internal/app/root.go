package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blackwell-systems/gradientctl/internal/clipboard"
	"github.com/blackwell-systems/gradientctl/internal/config"
	"github.com/blackwell-systems/gradientctl/internal/logging"
	"github.com/blackwell-systems/gradientctl/internal/preset"
	"github.com/blackwell-systems/gradientctl/internal/tui"
	"github.com/blackwell-systems/gradientctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	presets  *preset.Library
	closeLog func() error

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string

	flagAngle  int
	flagPreset string
	flagPrint  bool
)

var rootCmd = &cobra.Command{
	Use:   "gradientctl",
	Short: "Compose CSS linear gradients in the terminal",
	Long: `gradientctl is an editor for CSS linear-gradient backgrounds.

Click the preview to add a color stop, drag stop sliders to move them,
pick colors, rotate the angle and copy the resulting declaration.

Run 'gradientctl' with no arguments to open the editor, or
'gradientctl css' to render a gradient from flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.ShouldUseTUI(cmd) {
			return cmd.Help()
		}
		return runEditor(cmd)
	},
}

// Execute is the entry point called from main.
func Execute() {
	err := rootCmd.Execute()
	if closeLog != nil {
		_ = closeLog()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable the interactive editor")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/gradientctl/config.yml)")

	rootCmd.Flags().IntVar(&flagAngle, "angle", 90, "Initial angle in degrees (default from config)")
	rootCmd.Flags().StringVar(&flagPreset, "preset", "", "Start from a named preset")
	rootCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the CSS declaration when the editor closes")
	_ = rootCmd.RegisterFlagCompletionFunc("preset", completePresetNames)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		// version and completion must work with a broken config.
		if cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}
		return setup()
	}

	rootCmd.AddCommand(
		newCSSCmd(),
		newPresetsCmd(),
		newConfigCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// setup loads config, installs the logger and builds the preset library.
func setup() error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	closeLog, err = logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("setting up log: %w", err)
	}

	presets, err = preset.LoadLibrary(cfg.Presets.File)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}
	slog.Debug("presets loaded", "count", presets.Len(), "file", cfg.Presets.File)
	return nil
}

func runEditor(cmd *cobra.Command) error {
	state, err := buildState(cmd.Flags().Changed("angle"), flagAngle, flagPreset, nil)
	if err != nil {
		return err
	}

	clip, err := clipboard.New(cfg.Clipboard.EffectiveMode())
	if err != nil {
		return err
	}

	final, err := tui.RunEditor(tui.EditorOptions{
		State:         state,
		Presets:       presets,
		Clipboard:     clip,
		PreviewHeight: cfg.Editor.EffectivePreviewHeight(),
		Mouse:         cfg.Editor.Mouse,
	})
	if err != nil {
		return err
	}

	if flagPrint {
		fmt.Println(final.Declaration())
	}
	return nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
