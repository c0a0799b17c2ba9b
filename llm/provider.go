package llm

import (
	"context"
	"encoding/json"
	"time"
)

// Unified error codes, aligned with HTTP status, retryability and fallback policy.
type ErrorCode string

const (
	ErrInvalidRequest      ErrorCode = "LLM_INVALID_REQUEST"      // bad parameters/format
	ErrAuthConfig          ErrorCode = "LLM_AUTH_CONFIG"          // credential missing/unresolvable at construction
	ErrUnauthorized        ErrorCode = "LLM_UNAUTHORIZED"         // unauthorized or expired key
	ErrForbidden           ErrorCode = "LLM_FORBIDDEN"            // permission or content policy denial
	ErrRateLimited         ErrorCode = "LLM_RATE_LIMITED"         // upstream or local rate limit
	ErrQuotaExceeded       ErrorCode = "LLM_QUOTA_EXCEEDED"       // quota/credits exhausted
	ErrModelOverloaded     ErrorCode = "LLM_MODEL_OVERLOADED"     // model overloaded
	ErrUpstreamTimeout     ErrorCode = "LLM_UPSTREAM_TIMEOUT"     // upstream timeout
	ErrUpstreamError       ErrorCode = "LLM_UPSTREAM_ERROR"       // upstream 5xx/network failure
	ErrProviderUnavailable ErrorCode = "LLM_PROVIDER_UNAVAILABLE" // provider unavailable
)

type Error struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Retryable  bool      `json:"retryable,omitempty"`
	Provider   string    `json:"provider,omitempty"`
	Model      string    `json:"model,omitempty"` // set for configuration errors so callers see which model failed
}

func (e *Error) Error() string { return e.Message }

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type Message struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content,omitempty"`
	Name       string     `json:"name,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"` // identifies the call a tool result answers
}

type ToolSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters"` // JSON Schema
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []Message     `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
	TopP        float32       `json:"top_p,omitempty"`
	Stop        []string      `json:"stop,omitempty"`
	Tools       []ToolSchema  `json:"tools,omitempty"`
	ToolChoice  string        `json:"tool_choice,omitempty"` // auto/none/<tool name>
	Timeout     time.Duration `json:"timeout,omitempty"`
}

type ChatUsage struct {
	PromptTokens     int     `json:"prompt_tokens,omitempty"`
	CompletionTokens int     `json:"completion_tokens,omitempty"`
	TotalTokens      int     `json:"total_tokens,omitempty"`
	Cost             float64 `json:"cost,omitempty"` // USD
}

type ChatChoice struct {
	Index        int     `json:"index"`
	FinishReason string  `json:"finish_reason,omitempty"`
	Message      Message `json:"message"`
}

// ChatResponse is the normalized result handed to callers.
// Images holds artifacts extracted from multi-part message content, parsed
// parts first, legacy extra-bag entries after. ProviderData carries all
// non-content metadata surfaced from the raw response; typed fields are
// written first and never overwritten by residual fields.
type ChatResponse struct {
	ID           string         `json:"id,omitempty"`
	Provider     string         `json:"provider,omitempty"`
	Model        string         `json:"model"`
	Choices      []ChatChoice   `json:"choices"`
	Usage        ChatUsage      `json:"usage,omitempty"`
	Images       []Image        `json:"images,omitempty"`
	ProviderData map[string]any `json:"provider_data,omitempty"`
	CreatedAt    time.Time      `json:"created_at,omitempty"`
}

type StreamChunk struct {
	ID           string         `json:"id,omitempty"`
	Provider     string         `json:"provider,omitempty"`
	Model        string         `json:"model,omitempty"`
	Index        int            `json:"index,omitempty"`
	Delta        Message        `json:"delta"`
	FinishReason string         `json:"finish_reason,omitempty"`
	Usage        *ChatUsage     `json:"usage,omitempty"` // final chunk may carry usage
	ProviderData map[string]any `json:"provider_data,omitempty"`
	Err          *Error         `json:"error,omitempty"`
}

// Model is one entry of an OpenAI-compatible /models listing.
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object,omitempty"`
	Created int64  `json:"created,omitempty"`
	OwnedBy string `json:"owned_by,omitempty"`
}

// HealthStatus is the result of a provider health probe.
type HealthStatus struct {
	Healthy bool          `json:"healthy"`
	Latency time.Duration `json:"latency"`
}

// Provider is the unified adapter interface for chat-completion backends.
// Tool calls travel in ChatRequest.Tools; execution belongs to the caller.
type Provider interface {
	// Completion performs a synchronous chat request and returns the full response.
	Completion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Stream performs a streaming chat request and returns a channel of incremental chunks.
	Stream(ctx context.Context, req *ChatRequest) (<-chan StreamChunk, error)

	// HealthCheck performs a lightweight reachability probe.
	HealthCheck(ctx context.Context) (*HealthStatus, error)

	// Name returns the provider's unique identifier.
	Name() string

	// SupportsNativeFunctionCalling reports whether the provider supports
	// native tool calling. When false and Tools is non-empty, callers should
	// reject the request or drop the tools.
	SupportsNativeFunctionCalling() bool
}
