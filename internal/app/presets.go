package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/gradient"
	"github.com/blackwell-systems/gradientctl/internal/preset"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const swatchCells = 24

func newPresetsCmd() *cobra.Command {
	var namesOnly, asYAML bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the available gradient presets",
		Long: `List built-in presets and any loaded from the presets file
(presets.file in the config) with a color swatch and their CSS.

Use --yaml to get a starting point for your own presets file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if asYAML {
				data, err := preset.Marshal(presets.All())
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			if namesOnly {
				for _, n := range presets.Names() {
					fmt.Fprintln(out, n)
				}
				return nil
			}

			all := presets.All()
			width := 0
			for _, p := range all {
				width = max(width, len(p.Name))
			}
			for _, p := range all {
				writePreset(out, p, width)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print preset names only")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print presets in presets-file YAML format")
	return cmd
}

func writePreset(w io.Writer, p gradient.Preset, nameWidth int) {
	name := p.Name + strings.Repeat(" ", nameWidth-len(p.Name))
	fmt.Fprintf(w, "%s  %s  %s\n",
		color.New(color.Bold).Sprint(name),
		swatch(p),
		color.CyanString(gradient.Render(p.Angle, p.Stops)))
}

// swatch renders the preset's colors along its axis as a strip of cells.
func swatch(p gradient.Preset) string {
	s, err := gradient.NewSampler(p.Angle, p.Stops)
	if err != nil {
		return strings.Repeat("?", swatchCells)
	}
	var b strings.Builder
	for i := 0; i < swatchCells; i++ {
		c := s.At(float64(i) / float64(swatchCells-1))
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	return b.String()
}
