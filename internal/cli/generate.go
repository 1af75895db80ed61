package cli

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tilesmith/boggen/pkg/board"
	errs "github.com/tilesmith/boggen/pkg/errors"
	"github.com/tilesmith/boggen/pkg/generate"
	"github.com/tilesmith/boggen/pkg/solve"
)

// generateFlags holds the flag values for the generate command.
type generateFlags struct {
	set        string
	dictPath   string
	minWords   int
	maxWords   int
	minScore   int
	maxScore   int
	minLongest int
	maxLongest int
	minLength  int
	tries      int
	seed       uint64
	showWords  bool
	asJSON     bool
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Roll dice until a board satisfies the given constraints",
		Long: `Generate rolls a dice catalog into candidate boards and solves each one
against the dictionary, stopping at the first board whose word count, score,
and longest word all fall inside the requested bounds.

Unconstrained runs accept the first roll. Tight constraints may exhaust the
attempt budget; raise --tries or loosen the bounds in that case.

Examples:
  boggen generate
  boggen generate --set 5-big-deluxe --min-words 150 --min-longest 8
  boggen generate --seed 42 --words`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, cmd.Flags().Changed("seed"))
		},
	}

	cmd.Flags().StringVarP(&flags.set, "set", "s", "", "dice catalog name (default: config, then \"4\")")
	cmd.Flags().StringVar(&flags.dictPath, "dict", "", "dictionary file (default: config, then data dir)")
	cmd.Flags().IntVar(&flags.minWords, "min-words", 0, "minimum qualifying words")
	cmd.Flags().IntVar(&flags.maxWords, "max-words", 0, "maximum qualifying words (0 = unbounded)")
	cmd.Flags().IntVar(&flags.minScore, "min-score", 0, "minimum total score")
	cmd.Flags().IntVar(&flags.maxScore, "max-score", 0, "maximum total score (0 = unbounded)")
	cmd.Flags().IntVar(&flags.minLongest, "min-longest", 0, "minimum longest-word length")
	cmd.Flags().IntVar(&flags.maxLongest, "max-longest", 0, "maximum longest-word length (0 = unbounded)")
	cmd.Flags().IntVar(&flags.minLength, "min-length", 0, "shortest word length that counts")
	cmd.Flags().IntVar(&flags.tries, "tries", 0, fmt.Sprintf("attempt budget (default %d)", generate.DefaultMaxTries))
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed for reproducible runs (default: random)")
	cmd.Flags().BoolVarP(&flags.showWords, "words", "w", false, "print the full word list")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "emit the result as JSON")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags, seeded bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	setName := flags.set
	if setName == "" {
		setName = cfg.DiceSet
	}
	if setName == "" {
		setName = "4"
	}
	set, err := board.SetByName(setName)
	if err != nil {
		return err
	}

	dict, _, err := loadDict(flags.dictPath)
	if err != nil {
		return err
	}

	seed := flags.seed
	if !seeded {
		u := uuid.New()
		seed = binary.BigEndian.Uint64(u[:8])
	}
	logger.Debug("generating", "set", set.Name, "seed", seed, "dice", len(set.Dice))

	req := generate.Request{
		Dice:   set.Dice,
		Width:  set.Size,
		Height: set.Size,
		Constraints: solve.Constraints{
			MinWords:   flags.minWords,
			MaxWords:   flags.maxWords,
			MinScore:   flags.minScore,
			MaxScore:   flags.maxScore,
			MinLongest: flags.minLongest,
			MaxLongest: flags.maxLongest,
			MinLength:  flags.minLength,
		},
		MaxTries: flags.tries,
		Seed:     seed,
	}

	gen := generate.New(dict, solve.DefaultScores, logger)
	prog := newProgress(logger)

	spin := newSpinnerWithContext(ctx, "Rolling boards")
	if !flags.asJSON {
		spin.Start()
	}
	result, err := gen.Generate(ctx, req)
	if !flags.asJSON {
		spin.Stop()
	}
	if err != nil {
		if errs.Is(err, errs.ErrCodeBudgetExhausted) {
			printWarning("%s", errs.UserMessage(err))
			printDetail("seed: %d", seed)
		}
		return err
	}
	prog.done(fmt.Sprintf("Found board after %d tries", result.Tries))

	if flags.asJSON {
		return printGenerateJSON(result, seed)
	}

	printBoardSummary(result.Grid, result.Tries, len(result.Words), result.Score, result.Longest)
	printDetail("seed: %d", seed)
	if flags.showWords {
		fmt.Println()
		printWordList(result.Words)
	}
	return nil
}

// printGenerateJSON writes the result in the same shape the HTTP API returns.
func printGenerateJSON(result *generate.Board, seed uint64) error {
	out := struct {
		Board   string   `json:"board"`
		Width   int      `json:"width"`
		Height  int      `json:"height"`
		Seed    uint64   `json:"seed"`
		Tries   int      `json:"tries"`
		Words   []string `json:"words"`
		Score   int      `json:"score"`
		Longest int      `json:"longest"`
	}{
		Board:   result.Grid.Cells,
		Width:   result.Grid.Width,
		Height:  result.Grid.Height,
		Seed:    seed,
		Tries:   result.Tries,
		Words:   result.Words,
		Score:   result.Score,
		Longest: result.Longest,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
