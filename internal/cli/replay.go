package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/tilesmith/boggen/pkg/errors"
	"github.com/tilesmith/boggen/pkg/generate"
	"github.com/tilesmith/boggen/pkg/solve"
)

// newReplayCmd creates the replay command.
func newReplayCmd() *cobra.Command {
	var (
		dictPath  string
		width     int
		height    int
		showWords bool
	)

	cmd := &cobra.Command{
		Use:   "replay <cells>",
		Short: "Solve a known board and print its word list",
		Long: `Replay solves a fixed board instead of rolling dice. The cells argument is
the board read row by row, letters A-Z plus the compound codes 0-6
(blank, Qu, In, Th, Er, He, An).

The board is assumed square unless --width and --height say otherwise.

Examples:
  boggen replay CATSERILNOPDMEGU
  boggen replay --width 2 --height 3 CATSER --words`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cells := strings.ToUpper(args[0])

			w, h := width, height
			if w == 0 && h == 0 {
				edge := int(math.Sqrt(float64(len(cells))))
				if edge*edge != len(cells) {
					return errs.New(errs.ErrCodeInvalidBoard,
						"%d cells is not a square board, pass --width and --height", len(cells))
				}
				w, h = edge, edge
			}

			dict, _, err := loadDict(dictPath)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			gen := generate.New(dict, solve.DefaultScores, logger)
			result, err := gen.Replay(cells, w, h)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %dx%d board", w, h))

			printBoardSummary(result.Grid, 0, len(result.Words), result.Score, result.Longest)
			if showWords {
				fmt.Println()
				printWordList(result.Words)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "dictionary file (default: config, then data dir)")
	cmd.Flags().IntVar(&width, "width", 0, "board width (default: square)")
	cmd.Flags().IntVar(&height, "height", 0, "board height (default: square)")
	cmd.Flags().BoolVarP(&showWords, "words", "w", false, "print the full word list")

	return cmd
}
