package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// styled reports whether output goes to a terminal and the user has not
// turned styling off.
func styled(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if settingsService == nil {
		return true
	}
	settings, err := settingsService.Get()
	if err != nil {
		return true
	}
	return settings.Output.Styled
}

func render(cmd *cobra.Command, style lipgloss.Style, text string) string {
	if !styled(cmd) {
		return text
	}
	return style.Render(text)
}

func renderVariant(cmd *cobra.Command, v domain.Variant) string {
	if v == domain.VariantGood {
		return render(cmd, goodStyle, v.String())
	}
	return render(cmd, badStyle, v.String())
}
