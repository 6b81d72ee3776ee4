package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"opencog_dashboard/internal/logger"
	"opencog_dashboard/internal/service"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	mcpServerName    = "opencog-dashboard"
	mcpServerVersion = "1.0.0"
)

type mcpTypeArgs struct {
	Text string `json:"text" jsonschema:"text to put into the command field"`
}

type mcpNoArgs struct{}

type mcpForceInputArgs struct {
	Field string `json:"field" jsonschema:"field id or short name: server-url, scheme-command, url, command"`
	Text  string `json:"text" jsonschema:"value to set"`
}

type mcpForceClickArgs struct {
	Control string `json:"control" jsonschema:"button id or short name: connect, disconnect, execute, refresh, clear"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"answer to the confirmation prompt of clear"`
}

func textResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	res := textResult("error: %v", err)
	res.IsError = true
	return res
}

// newMCPServer exposes the OpenCogAsk shim as MCP tools.
func newMCPServer(auto service.Automation, log *logger.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    mcpServerName,
		Version: mcpServerVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "opencog_type",
		Description: "type text into the OpenCog command field",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, a mcpTypeArgs) (*mcp.CallToolResult, any, error) {
		if err := auto.TypeAndNotify(context.WithoutCancel(ctx), a.Text); err != nil {
			log.Infow("mcp_type_failed", "err", err)
			return errorResult(err), nil, nil
		}
		return textResult("typed %d characters", len(a.Text)), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "opencog_submit",
		Description: "click Execute if it is enabled; does nothing while disconnected",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ mcpNoArgs) (*mcp.CallToolResult, any, error) {
		submitted, err := auto.SubmitIfEnabled(context.WithoutCancel(ctx))
		if err != nil {
			log.Infow("mcp_submit_failed", "err", err)
			return errorResult(err), nil, nil
		}
		if !submitted {
			return textResult("execute is disabled; nothing submitted"), nil, nil
		}
		return textResult("submitted"), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "opencog_focus",
		Description: "focus the OpenCog command field",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ mcpNoArgs) (*mcp.CallToolResult, any, error) {
		if err := auto.FocusInput(); err != nil {
			return errorResult(err), nil, nil
		}
		return textResult("focused"), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "opencog_force_input",
		Description: "focus a dashboard field and set its value",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, a mcpForceInputArgs) (*mcp.CallToolResult, any, error) {
		field, err := service.ParseFieldID(a.Field)
		if err != nil {
			return errorResult(err), nil, nil
		}
		if err := auto.ForceInputAndNotify(context.WithoutCancel(ctx), field, a.Text); err != nil {
			log.Infow("mcp_force_input_failed", "field", field, "err", err)
			return errorResult(err), nil, nil
		}
		return textResult("%s set", field), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "opencog_force_click",
		Description: "enable a dashboard button, even while disconnected, and click it",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, a mcpForceClickArgs) (*mcp.CallToolResult, any, error) {
		id, err := service.ParseControlID(a.Control)
		if err != nil {
			return errorResult(err), nil, nil
		}
		err = auto.ForceEnableAndClick(context.WithoutCancel(ctx), id, confirmer(a.Confirm))
		if errors.Is(err, service.ErrClearDeclined) {
			return textResult("%s: declined", id), nil, nil
		}
		if err != nil {
			log.Infow("mcp_force_click_failed", "control", id, "err", err)
			return errorResult(err), nil, nil
		}
		return textResult("%s clicked", id), nil, nil
	})

	return server
}

// newMCPHandler serves the MCP server over SSE.
func newMCPHandler(auto service.Automation, log *logger.Logger) http.Handler {
	server := newMCPServer(auto, log)
	return mcp.NewSSEHandler(func(*http.Request) *mcp.Server { return server }, nil)
}
