package app

import (
	"strings"

	"github.com/blackwell-systems/gradientctl/internal/preset"
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell autocompletion scripts",
		Long: `Generate autocompletion scripts for your shell.

Preset names are completed for --preset.

Examples:
  # Bash (add to ~/.bashrc)
  source <(gradientctl completion bash)

  # Zsh (add to ~/.zshrc)
  source <(gradientctl completion zsh)

  # Fish
  gradientctl completion fish > ~/.config/fish/completions/gradientctl.fish

  # PowerShell
  gradientctl completion powershell | Out-String | Invoke-Expression`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return cmd.Help()
			}
		},
	}

	return cmd
}

// completePresetNames offers preset names for --preset. It falls back to
// the builtin presets when the configured library could not be loaded.
func completePresetNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	lib := presets
	if lib == nil {
		lib = preset.Builtin()
	}
	var names []string
	for _, n := range lib.Names() {
		if strings.HasPrefix(strings.ToLower(n), strings.ToLower(toComplete)) {
			names = append(names, n)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
