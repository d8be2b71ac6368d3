package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every example in catalog order",
	Long: `Runs the whole catalog principle by principle, the good example
before the bad one, with a numbered heading above each.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if exampleCatalog == nil {
		return errors.New("example catalog not configured")
	}

	list := exampleCatalog.List(domain.ExampleFilter{})
	for i := range list {
		if i > 0 {
			cmd.Println()
		}
		heading := fmt.Sprintf("%d. %s (%s)", i+1, list[i].Title, list[i].ID)
		cmd.Println(render(cmd, headingStyle, heading))
		if err := exampleCatalog.Run(cmd.Context(), list[i].ID, cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	return nil
}
