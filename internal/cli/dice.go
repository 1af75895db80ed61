package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilesmith/boggen/pkg/board"
)

// newDiceCmd creates the dice catalog command.
func newDiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "List the built-in dice catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Dice sets"))
			for _, s := range board.Sets() {
				fmt.Printf("  %s %s %s\n",
					StyleHighlight.Render(fmt.Sprintf("%-14s", s.Name)),
					StyleDim.Render(fmt.Sprintf("%dx%d", s.Size, s.Size)),
					StyleValue.Render(s.Desc))
			}
			return nil
		},
	}

	cmd.AddCommand(newDiceShowCmd())

	return cmd
}

// newDiceShowCmd creates the "dice show" subcommand.
func newDiceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <set>",
		Short: "Print every die face in a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := board.SetByName(args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(set.Desc) + StyleDim.Render(fmt.Sprintf(" (%d dice)", len(set.Dice))))
			for i, die := range set.Dice {
				faces := make([]string, len(die))
				for j := 0; j < len(die); j++ {
					faces[j] = board.FaceDisplay(die[j])
				}
				fmt.Printf("  %s %s\n",
					StyleDim.Render(fmt.Sprintf("%2d", i+1)),
					StyleValue.Render(strings.Join(faces, " ")))
			}
			return nil
		},
	}
}
