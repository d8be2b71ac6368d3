package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/solidkit/internal/core/domain"
	"github.com/custodia-labs/solidkit/internal/core/ports/driven"
)

var birdCmd = &cobra.Command{
	Use:   "bird",
	Short: "Make birds move or fly",
	Long: `Every bird can move. Only birds with the flying capability can be
asked to fly, so "bird fly penguin" is refused before anything runs.`,
}

var birdMoveCmd = &cobra.Command{
	Use:   "move [sparrow|penguin]",
	Short: "Make a bird move",
	Args:  cobra.ExactArgs(1),
	RunE:  runBirdMove,
}

var birdFlyCmd = &cobra.Command{
	Use:   "fly [sparrow|penguin]",
	Short: "Make a bird fly",
	Args:  cobra.ExactArgs(1),
	RunE:  runBirdFly,
}

func init() {
	birdCmd.AddCommand(birdMoveCmd)
	birdCmd.AddCommand(birdFlyCmd)
	rootCmd.AddCommand(birdCmd)
}

func lookupBird(cmd *cobra.Command, name string) (driven.Bird, error) {
	if birdService == nil || newBird == nil {
		return nil, errors.New("bird service not configured")
	}
	bird, ok := newBird(name, cmd.OutOrStdout())
	if !ok {
		return nil, fmt.Errorf("%w: unknown bird %q", domain.ErrInvalidInput, name)
	}
	return bird, nil
}

func runBirdMove(cmd *cobra.Command, args []string) error {
	bird, err := lookupBird(cmd, args[0])
	if err != nil {
		return err
	}
	birdService.MakeBirdMove(bird)
	return nil
}

func runBirdFly(cmd *cobra.Command, args []string) error {
	bird, err := lookupBird(cmd, args[0])
	if err != nil {
		return err
	}
	flyer, ok := bird.(driven.FlyingBird)
	if !ok {
		return fmt.Errorf("%w: %s cannot fly", domain.ErrInvalidInput, bird.Name())
	}
	birdService.MakeBirdFly(flyer)
	return nil
}
