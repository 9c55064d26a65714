// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pcorbett/jumplab/internal/contract"
)

// NewMCPServer initializes and configures the Jumplab MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.RunManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Jumplab Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: extract_cmj_metrics ---
	s.AddTool(mcp.NewTool("extract_cmj_metrics",
		mcp.WithDescription("Extract countermovement jump metrics (bodyweight, peak force, RFD, impulse) from a force-plate CSV."),
		mcp.WithString("input_path", mcp.Description("Path to the force-time CSV with time_s and force_n columns."), mcp.Required()),
		mcp.WithNumber("sampling_rate", mcp.Description("Sampling rate in Hz. Defaults to 1000.")),
	), h.handleExtractCMJMetrics)

	// --- 2. Tool: run_transfer_report ---
	s.AddTool(mcp.NewTool("run_transfer_report",
		mcp.WithDescription("Fit jump-height to bat-speed transfer models per playing level with outlier filtering."),
		mcp.WithString("input_path", mcp.Description("Path to the athlete dataset CSV."), mcp.Required()),
		mcp.WithNumber("min_bat", mcp.Description("Minimum plausible bat speed in mph. Defaults to 40.")),
		mcp.WithNumber("z_cut", mcp.Description("Z-score cutoff for outlier removal. Defaults to 3.")),
	), h.handleRunTransferReport)

	// --- 3. Tool: rank_residuals ---
	s.AddTool(mcp.NewTool("rank_residuals",
		mcp.WithDescription("Rank athletes by residual from the fitted transfer model (over- and under-performers)."),
		mcp.WithString("input_path", mcp.Description("Path to the athlete dataset CSV."), mcp.Required()),
		mcp.WithString("level", mcp.Description("Playing level to fit (hs, college, pro, all). Defaults to 'all'."), mcp.Enum("hs", "college", "pro", "all")),
		mcp.WithNumber("top", mcp.Description("Number of top over/under performers to return.")),
	), h.handleRankResiduals)

	// --- 4. Tool: predict_bat_speed ---
	s.AddTool(mcp.NewTool("predict_bat_speed",
		mcp.WithDescription("Predict bat speed from a jump height with a bootstrap confidence interval."),
		mcp.WithString("input_path", mcp.Description("Path to the athlete dataset CSV."), mcp.Required()),
		mcp.WithNumber("jump_height", mcp.Description("Jump height in centimeters to predict for."), mcp.Required()),
		mcp.WithString("level", mcp.Description("Playing level to fit (hs, college, pro, all). Defaults to 'all'."), mcp.Enum("hs", "college", "pro", "all")),
		mcp.WithNumber("boot", mcp.Description("Number of bootstrap resamples. Defaults to 2000.")),
	), h.handlePredictBatSpeed)

	return s
}

// StartMCPServer starts the Jumplab MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.RunManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
