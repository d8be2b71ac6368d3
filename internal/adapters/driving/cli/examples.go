package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var (
	examplesPrinciple string
	examplesVariant   string
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Browse and run the example catalog",
	Long: `Every principle has two examples: "bad" breaks the principle and
"good" follows it. Example ids look like "srp/good" or "kiss-yagni/bad".`,
	RunE: runExamplesList,
}

var examplesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List examples",
	RunE:  runExamplesList,
}

var examplesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Describe an example",
	Args:  cobra.ExactArgs(1),
	RunE:  runExamplesShow,
}

var examplesRunCmd = &cobra.Command{
	Use:   "run [id]",
	Short: "Run an example and print its output",
	Args:  cobra.ExactArgs(1),
	RunE:  runExamplesRun,
}

func init() {
	examplesListCmd.Flags().StringVar(&examplesPrinciple, "principle", "",
		"only list one principle (srp, ocp, lsp, isp, dip, kiss-yagni, dry)")
	examplesListCmd.Flags().StringVar(&examplesVariant, "variant", "", "only list good or bad examples")
	examplesCmd.AddCommand(examplesListCmd)
	examplesCmd.AddCommand(examplesShowCmd)
	examplesCmd.AddCommand(examplesRunCmd)
	rootCmd.AddCommand(examplesCmd)
}

func examplesFilter() (domain.ExampleFilter, error) {
	filter := domain.ExampleFilter{
		Principle: domain.Principle(examplesPrinciple),
		Variant:   domain.Variant(examplesVariant),
	}
	if filter.Principle != "" && !filter.Principle.IsValid() {
		return filter, fmt.Errorf("%w: unknown principle %q", domain.ErrInvalidInput, examplesPrinciple)
	}
	if filter.Variant != "" && !filter.Variant.IsValid() {
		return filter, fmt.Errorf("%w: unknown variant %q", domain.ErrInvalidInput, examplesVariant)
	}
	return filter, nil
}

func runExamplesList(cmd *cobra.Command, _ []string) error {
	if exampleCatalog == nil {
		return errors.New("example catalog not configured")
	}

	filter, err := examplesFilter()
	if err != nil {
		return err
	}

	list := exampleCatalog.List(filter)
	if len(list) == 0 {
		cmd.Println("No examples found.")
		return nil
	}

	for i := range list {
		cmd.Printf("%-16s %-5s %s\n", list[i].ID, renderVariant(cmd, list[i].Variant), list[i].Title)
	}
	return nil
}

func runExamplesShow(cmd *cobra.Command, args []string) error {
	if exampleCatalog == nil {
		return errors.New("example catalog not configured")
	}

	example, err := exampleCatalog.Get(args[0])
	if err != nil {
		return err
	}

	cmd.Println(render(cmd, headingStyle, example.Title))
	cmd.Printf("ID:        %s\n", example.ID)
	cmd.Printf("Principle: %s\n", example.Principle.Description())
	cmd.Printf("Variant:   %s\n", renderVariant(cmd, example.Variant))
	cmd.Println()
	cmd.Println(example.Summary)
	if len(example.Notes) > 0 {
		cmd.Println()
		for _, note := range example.Notes {
			cmd.Printf("  - %s\n", note)
		}
	}
	return nil
}

func runExamplesRun(cmd *cobra.Command, args []string) error {
	if exampleCatalog == nil {
		return errors.New("example catalog not configured")
	}
	return exampleCatalog.Run(cmd.Context(), args[0], cmd.OutOrStdout())
}
