// Package mcp exposes the solver over the Model Context Protocol so
// agent hosts can drive it as a set of stdio tools.
package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"verdle/internal/logging"
	"verdle/pkg/feedback"
	"verdle/pkg/search"
)

// Server wraps the MCP SDK server around a fixed vocabulary and a shared
// feedback table.
type Server struct {
	MCPServer *sdkmcp.Server

	words    []string
	sparsity int
	shared   *feedback.Shared
	build    feedback.BuildFunc
}

// NewServer creates an MCP server with solver tools over the given word
// list. build routes table construction (nil computes in-process); the
// table is built lazily on the first tool call that needs it.
func NewServer(words []string, sparsity int, build feedback.BuildFunc) *Server {
	s := &Server{
		words:    words,
		sparsity: sparsity,
		shared:   &feedback.Shared{},
		build:    build,
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "verdle", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves tool calls over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	logging.New("mcp").Info("starting verdle MCP server over stdio", "words", len(s.words))
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "solve",
		Description: "Search for the answer with a chosen strategy (bfs, dfs, ucs, astar). Returns the guess history and search counters.",
	}, s.handleSolve)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "evaluate_guess",
		Description: "Compute per-letter feedback for a guess against an answer. G=correct, Y=present, -=absent.",
	}, s.handleEvaluate)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "cache_stats",
		Description: "Report feedback cache coverage: cached pairs, sparsity, and fallback evaluations so far.",
	}, s.handleCacheStats)
}

// --- Tool input/output types ---

type solveInput struct {
	Answer      string   `json:"answer" jsonschema:"the hidden answer word, must be in the vocabulary"`
	Strategy    string   `json:"strategy,omitempty" jsonschema:"search strategy: bfs, dfs, ucs, astar (default bfs)"`
	Cost        string   `json:"cost,omitempty" jsonschema:"cost function for ucs/astar: constant, reduction"`
	Heuristic   string   `json:"heuristic,omitempty" jsonschema:"heuristic for astar: log2"`
	MaxAttempts int      `json:"max_attempts,omitempty" jsonschema:"per-branch guess limit (default 6)"`
	Starting    []string `json:"starting,omitempty" jsonschema:"optional starting candidate words for the first guess"`
}

type solveOutput struct {
	Success     bool     `json:"success"`
	Guesses     []string `json:"guesses"`
	Feedback    []string `json:"feedback"`
	Expanded    int      `json:"expanded"`
	Generated   int      `json:"generated"`
	FrontierMax int      `json:"frontier_max"`
}

type evaluateInput struct {
	Answer string `json:"answer" jsonschema:"answer word"`
	Guess  string `json:"guess" jsonschema:"guess word, same length as answer"`
}

type evaluateOutput struct {
	Marks string `json:"marks"`
}

type cacheStatsInput struct{}

type cacheStatsOutput struct {
	Words       int   `json:"words"`
	Sparsity    int   `json:"sparsity"`
	CachedPairs int   `json:"cached_pairs"`
	Fallbacks   int64 `json:"fallbacks"`
}

// --- Tool handlers ---

func (s *Server) handleSolve(_ context.Context, _ *sdkmcp.CallToolRequest, input solveInput) (*sdkmcp.CallToolResult, solveOutput, error) {
	table, err := s.shared.Get(s.words, s.sparsity, s.build)
	if err != nil {
		return nil, solveOutput{}, fmt.Errorf("build feedback table: %w", err)
	}

	opts := []search.Option{}
	if input.Strategy != "" {
		strategy, err := search.ParseStrategy(strings.ToLower(input.Strategy))
		if err != nil {
			return nil, solveOutput{}, err
		}
		opts = append(opts, search.WithStrategy(strategy))
	}
	if input.Cost != "" {
		cost, err := search.CostByName(input.Cost)
		if err != nil {
			return nil, solveOutput{}, err
		}
		opts = append(opts, search.WithCost(cost))
	}
	if input.Heuristic != "" {
		h, err := search.HeuristicByName(input.Heuristic)
		if err != nil {
			return nil, solveOutput{}, err
		}
		opts = append(opts, search.WithHeuristic(h))
	}

	res, err := search.New(table, opts...).Solve(input.Answer, s.words, input.MaxAttempts, input.Starting)
	if err != nil {
		return nil, solveOutput{}, err
	}

	out := solveOutput{
		Success:     res.Success,
		Expanded:    res.Expanded,
		Generated:   res.Generated,
		FrontierMax: res.FrontierMax,
	}
	for _, step := range res.History {
		out.Guesses = append(out.Guesses, step.Guess)
		out.Feedback = append(out.Feedback, step.Feedback.String())
	}
	return nil, out, nil
}

func (s *Server) handleEvaluate(_ context.Context, _ *sdkmcp.CallToolRequest, input evaluateInput) (*sdkmcp.CallToolResult, evaluateOutput, error) {
	fb, err := feedback.Evaluate(input.Answer, input.Guess)
	if err != nil {
		return nil, evaluateOutput{}, err
	}
	return nil, evaluateOutput{Marks: fb.String()}, nil
}

func (s *Server) handleCacheStats(_ context.Context, _ *sdkmcp.CallToolRequest, _ cacheStatsInput) (*sdkmcp.CallToolResult, cacheStatsOutput, error) {
	table, err := s.shared.Get(s.words, s.sparsity, s.build)
	if err != nil {
		return nil, cacheStatsOutput{}, fmt.Errorf("build feedback table: %w", err)
	}
	return nil, cacheStatsOutput{
		Words:       len(s.words),
		Sparsity:    table.Sparsity(),
		CachedPairs: table.Len(),
		Fallbacks:   table.Fallbacks(),
	}, nil
}
