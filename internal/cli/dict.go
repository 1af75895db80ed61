package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilesmith/boggen/pkg/dawg"
	errs "github.com/tilesmith/boggen/pkg/errors"
)

// newDictCmd creates the dictionary management command.
func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Compile and inspect dictionary files",
	}

	cmd.AddCommand(newDictBuildCmd())
	cmd.AddCommand(newDictStatsCmd())
	cmd.AddCommand(newDictCheckCmd())

	return cmd
}

// newDictBuildCmd creates the "dict build" subcommand.
func newDictBuildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build <wordlist>",
		Short: "Compile a plain word list into a dictionary graph",
		Long: `Compile a plain word list (one word per line) into the packed dictionary
graph used by the solver. Lines that are empty or start with '#' are skipped;
everything else must be letters only, at most 16 per word.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			words, err := readWordList(args[0])
			if err != nil {
				return err
			}
			logger.Debug("read word list", "path", args[0], "lines", len(words))

			dict, err := dawg.Compile(words)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				dir, err := dataDir()
				if err != nil {
					return err
				}
				out = filepath.Join(dir, dictFileName)
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if _, err := dict.WriteTo(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Compiled %d words into %d records", dict.WordCount(), dict.Len()))
			printSuccess("Wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: data dir)")

	return cmd
}

// newDictStatsCmd creates the "dict stats" subcommand.
func newDictStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [dictionary]",
		Short: "Print record and word counts for a dictionary file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			dict, path, err := loadDict(path)
			if err != nil {
				return err
			}

			printInfo("Dictionary %s", StyleValue.Render(path))
			printDetail("records: %d", dict.Len())
			printDetail("words:   %d", dict.WordCount())
			return nil
		},
	}
}

// newDictCheckCmd creates the "dict check" subcommand.
func newDictCheckCmd() *cobra.Command {
	var dictPath string

	cmd := &cobra.Command{
		Use:   "check <word>...",
		Short: "Test whether words are present in the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, _, err := loadDict(dictPath)
			if err != nil {
				return err
			}

			missing := 0
			for _, w := range args {
				w = strings.ToUpper(w)
				if dict.Contains(w) {
					printSuccess("%s", w)
				} else {
					printError("%s", w)
					missing++
				}
			}
			if missing > 0 {
				return errs.New(errs.ErrCodeNotFound, "%d of %d words not in dictionary", missing, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "dictionary file (default: config, then data dir)")

	return cmd
}

// readWordList reads one word per line, skipping blanks and '#' comments.
func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.New(errs.ErrCodeFileNotFound, "word list %s not found", path)
		}
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// loadDict opens and parses the dictionary at path, falling back to the
// config override and then the data-dir default when path is empty. The
// resolved path is returned alongside the graph.
func loadDict(path string) (*dawg.Dawg, string, error) {
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, "", err
		}
		path, err = defaultDictPath(cfg)
		if err != nil {
			return nil, "", err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errs.New(errs.ErrCodeFileNotFound,
				"dictionary %s not found (run \"boggen dict build\" first)", path)
		}
		return nil, "", err
	}
	defer f.Close()

	dict, err := dawg.Load(f)
	if err != nil {
		return nil, "", err
	}
	return dict, path, nil
}
