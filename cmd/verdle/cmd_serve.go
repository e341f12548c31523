package main

import (
	"github.com/spf13/cobra"

	"verdle/internal/mcp"
	"verdle/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver as MCP tools over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing solve, evaluate_guess
and cache_stats tools. Agent hosts connect via their MCP configuration.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	list, err := loadWordList()
	if err != nil {
		return err
	}

	st := openStore()
	defer closeStore(st)

	srv := mcp.NewServer(list, rootFlags.sparsity, store.Builder(st, nil))
	return srv.Run(cmd.Context())
}
