package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/clipboard"
	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/blackwell-systems/gradientctl/internal/tui"
	"github.com/blackwell-systems/gradientctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCSSCmd() *cobra.Command {
	var (
		angle       int
		stopSpecs   []string
		presetName  string
		declaration bool
		copyOut     bool
		show        bool
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Render a gradient as CSS without opening the editor",
		Long: `Render a linear-gradient from flags and print it.

Stops are given as "<color> <position>", where color is a hex value or a
CSS color name and position is a percentage. Stops are sorted by position;
positions are used as given, so values outside 0-100 are kept.`,
		Example: `  gradientctl css --stop "#ff6b6b 0" --stop "#ffd93d 100" --angle 45
  gradientctl css --preset ocean --declaration
  gradientctl css --preset dusk --angle 200 --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := buildState(cmd.Flags().Changed("angle"), angle, presetName, stopSpecs)
			if err != nil {
				return err
			}

			out := state.CSS()
			if declaration {
				out = state.Declaration()
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if show {
				showInline(state)
			}

			if copyOut {
				w, err := clipboard.New(cfg.Clipboard.EffectiveMode())
				if err != nil {
					return err
				}
				if err := w.WriteText(out); err != nil {
					warn("Could not copy to clipboard: %v", err)
					return nil
				}
				fmt.Fprintln(os.Stderr, color.GreenString("✓"), "Copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&angle, "angle", 90, "Angle in degrees (default from config or preset)")
	cmd.Flags().StringArrayVar(&stopSpecs, "stop", nil, `Color stop as "<color> <position>" (repeat for each stop)`)
	cmd.Flags().StringVar(&presetName, "preset", "", "Start from a named preset")
	cmd.Flags().BoolVar(&declaration, "declaration", false, "Print a full 'background: ...;' declaration")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the output to the clipboard")
	cmd.Flags().BoolVar(&show, "show", false, "Also draw the gradient inline (kitty, Ghostty, iTerm2, WezTerm)")
	_ = cmd.RegisterFlagCompletionFunc("preset", completePresetNames)

	return cmd
}

// buildState assembles the starting gradient: defaults, then the
// configured angle, then the preset, then explicit stops and angle.
func buildState(angleSet bool, angle int, presetName string, stopSpecs []string) (gradient.State, error) {
	state := gradient.Default()
	if cfg != nil {
		state.Angle = cfg.Editor.Angle
	}

	if presetName != "" {
		p, found := presets.ByName(presetName)
		if !found {
			return state, fmt.Errorf("unknown preset %q (available: %s)", presetName, strings.Join(presets.Names(), ", "))
		}
		state.ApplyPreset(p)
	}

	if len(stopSpecs) > 0 {
		if len(stopSpecs) < gradient.MinStops {
			return state, fmt.Errorf("need at least %d stops, got %d", gradient.MinStops, len(stopSpecs))
		}
		stops := make([]gradient.ColorStop, len(stopSpecs))
		for i, spec := range stopSpecs {
			st, err := parseStop(spec)
			if err != nil {
				return state, err
			}
			st.ID = int64(i + 1)
			stops[i] = st
		}
		state.Stops = stops
		state.Resort()
	}

	if angleSet {
		state.Angle = angle
	}
	return state, nil
}

// showInline draws the gradient as an inline image when stdout is a
// terminal with an image protocol.
func showInline(state gradient.State) {
	proto := tui.DetectImageProtocol()
	if !util.IsTTY() || proto == tui.ProtocolNone {
		warn("Inline images are not supported by this terminal")
		return
	}
	img, err := gradient.Image(state.Angle, state.Stops, 480, 120)
	if err != nil {
		warn("Cannot draw gradient: %v", err)
		return
	}
	fmt.Println(tui.RenderInlineImage(img, proto))
}

// parseStop reads "<color> <position>". The position may carry a % sign.
func parseStop(spec string) (gradient.ColorStop, error) {
	fields := strings.Fields(spec)
	if len(fields) != 2 {
		return gradient.ColorStop{}, fmt.Errorf("invalid stop %q: want \"<color> <position>\"", spec)
	}

	c, err := gradient.ParseColor(fields[0])
	if err != nil {
		return gradient.ColorStop{}, fmt.Errorf("invalid stop %q: %w", spec, err)
	}

	pos, err := strconv.Atoi(strings.TrimSuffix(fields[1], "%"))
	if err != nil {
		return gradient.ColorStop{}, fmt.Errorf("invalid stop %q: position must be an integer", spec)
	}

	return gradient.ColorStop{Color: c, Position: pos}, nil
}
