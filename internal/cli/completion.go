package cli

import (
	"github.com/spf13/cobra"

	"github.com/manivaultstudio/plugintable/pkg/catalog"
	"github.com/manivaultstudio/plugintable/pkg/compat"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for plugintable.

To load completions:

Bash:
  $ source <(plugintable completion bash)

Zsh:
  $ plugintable completion zsh > "${fpath[1]}/_plugintable"

Fish:
  $ plugintable completion fish | source

PowerShell:
  PS> plugintable completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeRepoNames suggests the built-in repository names for "row".
func completeRepoNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, r := range catalog.Default().Repositories {
		names = append(names, r.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeCategories suggests the supported plugin categories.
func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(compat.Categories))
	for i, c := range compat.Categories {
		names[i] = string(c)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
