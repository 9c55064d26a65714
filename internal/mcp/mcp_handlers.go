package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pcorbett/jumplab/core"
	"github.com/pcorbett/jumplab/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.RunManager
}

func (h *toolHandler) handleExtractCMJMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input_path", "")
	if r := request.GetInt("sampling_rate", 0); r > 0 {
		cfg.SamplingRate = r
	}

	metrics, err := core.GetJumpMetricsResult(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("metric extraction failed: %v", err)), nil
	}

	// encoding/json rejects NaN, so undefined metrics become null.
	out := make(map[string]any, len(metrics.Values()))
	for _, mv := range metrics.Values() {
		if math.IsNaN(mv.Value) || math.IsInf(mv.Value, 0) {
			out[string(mv.Name)] = nil
		} else {
			out[string(mv.Name)] = mv.Value
		}
	}
	jsonData, _ := json.MarshalIndent(out, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRunTransferReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input_path", "")
	if v := request.GetFloat("min_bat", -1); v >= 0 {
		cfg.Policy.MinBatSpeed = v
	}
	if v := request.GetFloat("z_cut", 0); v > 0 {
		cfg.Policy.ZCutoff = v
	}

	report, err := core.GetTransferReportResult(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("transfer analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankResiduals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input_path", "")
	if l := request.GetString("level", ""); l != "" {
		level, err := contract.ParseLevel(l)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid level: %v", err)), nil
		}
		cfg.Level = level
	}
	if n := request.GetInt("top", 0); n > 0 && n <= contract.MaxTopN {
		cfg.TopN = n
	}

	report, err := core.GetResidualReportResult(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("residual analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handlePredictBatSpeed(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input_path", "")
	cfg.JumpHeightCM = request.GetFloat("jump_height", 0)
	if l := request.GetString("level", ""); l != "" {
		level, err := contract.ParseLevel(l)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid level: %v", err)), nil
		}
		cfg.Level = level
	}
	if b := request.GetInt("boot", 0); b > 0 {
		cfg.Resamples = b
	}

	report, err := core.GetPredictionResult(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("prediction failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
