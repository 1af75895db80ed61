package cli

import (
	"encoding/binary"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tilesmith/boggen/pkg/board"
	"github.com/tilesmith/boggen/pkg/game"
	"github.com/tilesmith/boggen/pkg/generate"
	"github.com/tilesmith/boggen/pkg/solve"
)

// newPlayCmd creates the play command.
func newPlayCmd() *cobra.Command {
	var (
		set       string
		dictPath  string
		minWords  int
		minLength int
		duration  time.Duration
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a board interactively in the terminal",
		Long: `Play generates a board and starts a timed round: type words, press enter
to submit, and see the full solution when the clock runs out.

Examples:
  boggen play
  boggen play --set 5 --min-words 120 --duration 3m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			setName := set
			if setName == "" {
				setName = cfg.DiceSet
			}
			if setName == "" {
				setName = "4"
			}
			catalog, err := board.SetByName(setName)
			if err != nil {
				return err
			}

			dict, _, err := loadDict(dictPath)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				u := uuid.New()
				seed = binary.BigEndian.Uint64(u[:8])
			}

			gen := generate.New(dict, solve.DefaultScores, logger)
			result, err := gen.Generate(ctx, generate.Request{
				Dice:   catalog.Dice,
				Width:  catalog.Size,
				Height: catalog.Size,
				Constraints: solve.Constraints{
					MinWords:  minWords,
					MinLength: minLength,
				},
				Seed: seed,
			})
			if err != nil {
				return err
			}

			session := game.New(result.Grid, result.Words, solve.DefaultScores)
			if duration > 0 {
				session.Duration = duration
			}

			model := NewPlayModel(session)
			final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}

			if m, ok := final.(PlayModel); ok && m.Quit() {
				return nil
			}

			fmt.Println()
			printSuccess("Score %d with %d of %d words (longest %d)",
				session.Found.Score, session.Found.Len(), session.Legal.Len(), session.Found.Longest)
			if missed := session.Missed(); len(missed) > 0 {
				fmt.Println()
				fmt.Println(StyleTitle.Render("Missed words"))
				printWordList(missed)
			}
			printDetail("replay this board: boggen replay %s", result.Grid.Cells)
			return nil
		},
	}

	cmd.Flags().StringVarP(&set, "set", "s", "", "dice catalog name (default: config, then \"4\")")
	cmd.Flags().StringVar(&dictPath, "dict", "", "dictionary file (default: config, then data dir)")
	cmd.Flags().IntVar(&minWords, "min-words", 40, "minimum words on the generated board")
	cmd.Flags().IntVar(&minLength, "min-length", 3, "shortest word length that counts")
	cmd.Flags().DurationVar(&duration, "duration", 0, fmt.Sprintf("round length (default %s)", game.DefaultDuration))
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for a reproducible board (default: random)")

	return cmd
}
