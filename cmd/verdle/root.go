package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"verdle/internal/logging"
	"verdle/internal/store"
	"verdle/internal/words"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	words     string
	db        string
	sparsity  int
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "verdle",
	Short: "Graph-search solver for letter-feedback word puzzles",
	Long: "Verdle solves fixed-length word guessing puzzles by searching the space\nof knowledge states with BFS, DFS, UCS or A*, backed by a sparse\npersisted feedback cache.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		switch rootFlags.logLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
		logging.Init(level, rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.words, "words", "", "Path to word list CSV (default: embedded fallback list)")
	pf.StringVar(&rootFlags.db, "db", store.DefaultDBPath, "Feedback cache DB path (\"none\" disables persistence)")
	pf.IntVar(&rootFlags.sparsity, "sparsity", 200, "Cached partners per word (0 = dense table)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

// loadWordList resolves the vocabulary from --words.
func loadWordList() ([]string, error) {
	list, err := words.Load(rootFlags.words)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no usable words in %q", rootFlags.words)
	}
	return list, nil
}

// openStore opens the cache store from --db. Failures degrade to running
// without persistence, they never abort the command.
func openStore() store.Store {
	if rootFlags.db == "" || rootFlags.db == "none" {
		return nil
	}
	st, err := store.Open(rootFlags.db)
	if err != nil {
		logging.New("store").Warn("cache db unavailable, continuing without persistence", "error", err)
		return nil
	}
	return st
}

func closeStore(st store.Store) {
	if st != nil {
		st.Close()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
