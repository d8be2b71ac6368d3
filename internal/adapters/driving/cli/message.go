package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Send messages",
}

var messageSendCmd = &cobra.Command{
	Use:   "send [text]",
	Short: "Send a message by email",
	Long:  `Sends the text as-is. There is no formatter or sender hierarchy to configure.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMessageSend,
}

func init() {
	messageCmd.AddCommand(messageSendCmd)
	rootCmd.AddCommand(messageCmd)
}

func runMessageSend(cmd *cobra.Command, args []string) error {
	if messageService == nil {
		return errors.New("message service not configured")
	}
	return messageService.Send(cmd.Context(), domain.Message{Content: strings.Join(args, " ")})
}
