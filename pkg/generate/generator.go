// Package generate produces letter boards that satisfy caller-supplied
// difficulty constraints.
//
// Generation is rejection sampling: roll a random board, reject it cheaply
// if its letter statistics look hopeless, otherwise enumerate every
// dictionary word on it and check the aggregate constraints. The loop runs
// until a board qualifies or the attempt budget is exhausted. A previously
// generated board can be replayed to recover its word list without the
// random search.
package generate

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tilesmith/boggen/pkg/board"
	"github.com/tilesmith/boggen/pkg/dawg"
	errs "github.com/tilesmith/boggen/pkg/errors"
	"github.com/tilesmith/boggen/pkg/observability"
	"github.com/tilesmith/boggen/pkg/solve"
)

// DefaultMaxTries bounds the generation loop when the request leaves the
// budget unset.
const DefaultMaxTries = 10000

// Request describes one constrained generation run.
type Request struct {
	// Dice holds one multi-face die per board position, row-major.
	Dice []string

	Width  int
	Height int

	Constraints solve.Constraints

	// MaxTries caps the number of sampled boards; 0 means DefaultMaxTries.
	MaxTries int

	// Seed makes the run reproducible: the same request always samples the
	// same sequence of boards.
	Seed uint64
}

// Board is a generation result.
type Board struct {
	// Grid is the qualifying board.
	Grid board.Grid

	// Tries is the number of attempts consumed, including the winner.
	// Zero for a replayed board.
	Tries int

	// Words is every unique qualifying word on the board. The order is
	// stable for a fixed board and dictionary but otherwise unspecified.
	Words []string

	Score   int
	Longest int
}

// Generator produces constrained boards from a shared dictionary. It is
// stateless apart from the dictionary and logger; a single Generator may
// serve concurrent Generate calls, each call owning its own solver.
type Generator struct {
	dict   *dawg.Dawg
	scores solve.ScoreTable
	logger *log.Logger
}

// New creates a generator. If logger is nil, log.Default() is used.
func New(dict *dawg.Dawg, scores solve.ScoreTable, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{dict: dict, scores: scores, logger: logger}
}

// Generate samples boards until one satisfies req.Constraints or the budget
// runs out. Budget exhaustion is an explicit BUDGET_EXHAUSTED error, never
// an empty success.
func (g *Generator) Generate(ctx context.Context, req Request) (*Board, error) {
	cells := req.Width * req.Height
	if req.Width <= 0 || req.Height <= 0 || cells > board.MaxCells {
		return nil, errs.New(errs.ErrCodeInvalidBoard, "board %dx%d not supported, max %d cells", req.Width, req.Height, board.MaxCells)
	}
	if len(req.Dice) != cells {
		return nil, errs.New(errs.ErrCodeInvalidDice, "%d dice for %d cells", len(req.Dice), cells)
	}
	for i, die := range req.Dice {
		if die == "" {
			return nil, errs.New(errs.ErrCodeInvalidDice, "die %d has no faces", i)
		}
		if err := errs.ValidateBoardCells(die, len(die), 1); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidDice, err, "die %d", i)
		}
	}
	maxTries := req.MaxTries
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}

	rng := rand.New(rand.NewPCG(req.Seed, 0))
	dice := slices.Clone(req.Dice)
	buf := make([]byte, cells)
	solver := solve.NewSolver(g.dict, g.scores, req.Constraints)
	start := time.Now()

	for try := 1; try <= maxTries; try++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		observability.Generator().OnTrial(ctx, try)

		grid := sample(rng, dice, buf, req.Width, req.Height)

		if !admissible(grid, req.Constraints) {
			observability.Generator().OnPrefilterReject(ctx, try)
			continue
		}

		ok := solver.Solve(grid)
		observability.Generator().OnTrialComplete(ctx, try, solver.WordCount(), solver.Aborted())
		if !ok {
			continue
		}

		elapsed := time.Since(start)
		g.logger.Info("generated board",
			"size", grid.Width*grid.Height,
			"tries", try,
			"words", solver.WordCount(),
			"score", solver.Score(),
			"longest", solver.Longest(),
			"duration", elapsed)
		observability.Generator().OnGenerated(ctx, try, solver.WordCount(), elapsed)

		return &Board{
			Grid:    grid,
			Tries:   try,
			Words:   solver.Words(),
			Score:   solver.Score(),
			Longest: solver.Longest(),
		}, nil
	}

	g.logger.Debug("budget exhausted", "tries", maxTries, "duration", time.Since(start))
	return nil, errs.New(errs.ErrCodeBudgetExhausted, "no board satisfied the constraints within %d tries", maxTries)
}

// Replay solves an exact board with fully open constraints, recovering
// every dictionary word on it deterministically.
func (g *Generator) Replay(cells string, width, height int) (*Board, error) {
	grid, err := board.New(cells, width, height)
	if err != nil {
		return nil, err
	}

	solver := solve.NewSolver(g.dict, g.scores, solve.Open())
	solver.Solve(grid)

	return &Board{
		Grid:    grid,
		Words:   solver.Words(),
		Score:   solver.Score(),
		Longest: solver.Longest(),
	}, nil
}

// sample rolls one board: a fair Fisher-Yates shuffle of the die-to-position
// assignment, then one face per die uniformly at random.
func sample(rng *rand.Rand, dice []string, buf []byte, width, height int) board.Grid {
	rng.Shuffle(len(dice), func(i, j int) {
		dice[i], dice[j] = dice[j], dice[i]
	})
	for i, die := range dice {
		buf[i] = die[rng.IntN(len(die))]
	}
	return board.Grid{Width: width, Height: height, Cells: string(buf)}
}
