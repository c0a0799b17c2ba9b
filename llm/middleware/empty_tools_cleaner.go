package middleware

import (
	"context"

	llmpkg "github.com/voss-labs/modelgw/llm"
)

// EmptyToolsCleaner clears ToolChoice when the request carries no tools.
// OpenAI-compatible APIs reject tool_choice alongside an empty tools array.
type EmptyToolsCleaner struct{}

// NewEmptyToolsCleaner creates an EmptyToolsCleaner.
func NewEmptyToolsCleaner() *EmptyToolsCleaner {
	return &EmptyToolsCleaner{}
}

func (r *EmptyToolsCleaner) Name() string {
	return "empty_tools_cleaner"
}

func (r *EmptyToolsCleaner) Rewrite(ctx context.Context, req *llmpkg.ChatRequest) (*llmpkg.ChatRequest, error) {
	if req == nil {
		return req, nil
	}
	if len(req.Tools) == 0 {
		req.ToolChoice = ""
	}
	return req, nil
}
