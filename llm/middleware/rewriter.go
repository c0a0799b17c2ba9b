package middleware

import (
	"context"
	"fmt"

	llmpkg "github.com/voss-labs/modelgw/llm"
)

// RequestRewriter cleans up or transforms a request before it is sent to the
// upstream API.
type RequestRewriter interface {
	// Rewrite returns the rewritten request, or an error if rewriting failed.
	Rewrite(ctx context.Context, req *llmpkg.ChatRequest) (*llmpkg.ChatRequest, error)

	// Name returns the rewriter name, used in logs and error messages.
	Name() string
}

// RewriterChain runs multiple rewriters in order.
type RewriterChain struct {
	rewriters []RequestRewriter
}

// NewRewriterChain creates a rewriter chain.
func NewRewriterChain(rewriters ...RequestRewriter) *RewriterChain {
	return &RewriterChain{rewriters: rewriters}
}

// Execute runs all rewriters in order; the first failure aborts the chain.
func (c *RewriterChain) Execute(ctx context.Context, req *llmpkg.ChatRequest) (*llmpkg.ChatRequest, error) {
	if c == nil || len(c.rewriters) == 0 {
		return req, nil
	}

	var err error
	for _, rewriter := range c.rewriters {
		req, err = rewriter.Rewrite(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("rewriter [%s] failed: %w", rewriter.Name(), err)
		}
	}
	return req, nil
}

// AddRewriter appends a rewriter to the chain.
func (c *RewriterChain) AddRewriter(rewriter RequestRewriter) {
	c.rewriters = append(c.rewriters, rewriter)
}
