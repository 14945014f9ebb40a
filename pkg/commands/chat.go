package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/travver/travver/pkg/commands/options"
	"github.com/travver/travver/pkg/consultant"
	"github.com/travver/travver/pkg/runner/chat"
)

func addChat(topLevel *cobra.Command) {
	co := &options.ChatOptions{}
	ro := &options.RemoteOptions{}

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the travel consultant",
		Long:  "Ask the travel consultant a question. With no message, starts an interactive session; type 'exit' to leave.",
		Example: `
travver chat where should I eat in Osaka
travver chat --trip 9f2c... --stream
travver chat
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s := chat.Chat{
				Message: strings.Join(args, " "),
				TripID:  co.TripID,
				Stream:  co.Stream,
				Client:  &consultant.Client{BaseURL: ro.Server},
			}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddChatArgs(cmd, co)
	options.AddRemoteArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
