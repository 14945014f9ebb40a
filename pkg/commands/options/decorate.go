package options

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/travver/travver/pkg/decorate"
)

// DecorateOptions captures the photo decoration flags.
type DecorateOptions struct {
	Style string
}

// AddDecorateArgs wires the style flag on the provided command.
func AddDecorateArgs(cmd *cobra.Command, o *DecorateOptions) {
	cmd.Flags().StringVar(&o.Style, "style", "watercolor",
		"Decoration style. One of "+strings.Join(decorate.Styles(), ", ")+".")

	_ = cmd.RegisterFlagCompletionFunc("style", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return decorate.Styles(), cobra.ShellCompDirectiveNoFileComp
	})
}
