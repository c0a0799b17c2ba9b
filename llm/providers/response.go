package providers

import (
	"encoding/json"
	"time"

	"github.com/voss-labs/modelgw/llm"
)

// Inbound wire types. Upstream gateways forward provider-specific fields the
// common OpenAI shape does not type (routing provider, native finish reason,
// cost, generated images). Each level therefore keeps its recognized fields
// as struct members and collects every residual key into an Extra bag.

// OpenAICompatResponse is the inbound chat completion response or stream
// chunk.
type OpenAICompatResponse struct {
	ID      string               `json:"id,omitempty"`
	Model   string               `json:"model,omitempty"`
	Object  string               `json:"object,omitempty"`
	Created int64                `json:"created,omitempty"`
	Choices []OpenAICompatChoice `json:"choices,omitempty"`
	Usage   *OpenAICompatUsage   `json:"usage,omitempty"`

	Extra map[string]any `json:"-"`
}

func (r *OpenAICompatResponse) UnmarshalJSON(data []byte) error {
	type plain OpenAICompatResponse
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = OpenAICompatResponse(p)
	r.Extra = residualFields(data, "id", "model", "object", "created", "choices", "usage")
	return nil
}

// OpenAICompatChoice is one choice of an inbound response. Delta is set for
// stream chunks, Message for complete responses.
type OpenAICompatChoice struct {
	Index        int                      `json:"index"`
	FinishReason string                   `json:"finish_reason,omitempty"`
	Message      OpenAICompatRespMessage  `json:"message,omitempty"`
	Delta        *OpenAICompatRespMessage `json:"delta,omitempty"`

	Extra map[string]any `json:"-"`
}

func (c *OpenAICompatChoice) UnmarshalJSON(data []byte) error {
	type plain OpenAICompatChoice
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = OpenAICompatChoice(p)
	c.Extra = residualFields(data, "index", "finish_reason", "message", "delta")
	return nil
}

// TypedMap returns the choice's recognized fields as a metadata map.
func (c *OpenAICompatChoice) TypedMap() (map[string]any, error) {
	m := map[string]any{"index": c.Index}
	if c.FinishReason != "" {
		m["finish_reason"] = c.FinishReason
	}
	msg := c.Delta
	if msg == nil {
		msg = &c.Message
	}
	msgMap := map[string]any{"role": msg.Role}
	if len(msg.Content) > 0 {
		var content any
		if err := json.Unmarshal(msg.Content, &content); err == nil {
			msgMap["content"] = content
		}
	}
	m["message"] = msgMap
	return m, nil
}

// OpenAICompatRespMessage is an inbound message. Content is kept raw because
// providers send either a plain string or an array of typed parts; see
// ExtractContent.
type OpenAICompatRespMessage struct {
	Role       string                 `json:"role,omitempty"`
	Content    json.RawMessage        `json:"content,omitempty"`
	Name       string                 `json:"name,omitempty"`
	ToolCalls  []OpenAICompatToolCall `json:"tool_calls,omitempty"`
	ToolCallID string                 `json:"tool_call_id,omitempty"`

	Extra map[string]any `json:"-"`
}

func (m *OpenAICompatRespMessage) UnmarshalJSON(data []byte) error {
	type plain OpenAICompatRespMessage
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = OpenAICompatRespMessage(p)
	m.Extra = residualFields(data, "role", "content", "name", "tool_calls", "tool_call_id")
	return nil
}

// OpenAICompatUsage is the inbound token usage block. Fields the common
// shape does not type (total_cost, cached token details) land in Extra.
type OpenAICompatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	Extra map[string]any `json:"-"`
}

func (u *OpenAICompatUsage) UnmarshalJSON(data []byte) error {
	type plain OpenAICompatUsage
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = OpenAICompatUsage(p)
	u.Extra = residualFields(data, "prompt_tokens", "completion_tokens", "total_tokens")
	return nil
}

// TypedMap returns the usage's recognized fields as a metadata map.
func (u *OpenAICompatUsage) TypedMap() (map[string]any, error) {
	return map[string]any{
		"prompt_tokens":     u.PromptTokens,
		"completion_tokens": u.CompletionTokens,
		"total_tokens":      u.TotalTokens,
	}, nil
}

// ToolCallArguments normalizes the wire form of tool-call arguments.
// OpenAI-compatible APIs double-encode arguments as a JSON string holding the
// JSON object; unwrap that so callers always see the object form. Arguments
// already in object form pass through unchanged.
func ToolCallArguments(raw json.RawMessage) json.RawMessage {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return json.RawMessage(s)
	}
	return raw
}

// residualFields returns every top-level key of data not listed in known.
// Returns nil when nothing remains or data is not a JSON object.
func residualFields(data []byte, known ...string) map[string]any {
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil
	}
	return all
}

// ToLLMChatResponse converts an inbound wire response to the normalized
// llm.ChatResponse. Multi-part message content is split into text and image
// artifacts; legacy extra-bag images on a message are appended after the
// parsed ones.
func ToLLMChatResponse(oa *OpenAICompatResponse, provider string) *llm.ChatResponse {
	resp := &llm.ChatResponse{
		ID:       oa.ID,
		Provider: provider,
		Model:    oa.Model,
	}

	resp.Choices = make([]llm.ChatChoice, 0, len(oa.Choices))
	for _, c := range oa.Choices {
		text, images := ExtractContent(c.Message.Content)
		msg := llm.Message{
			Role:    llm.RoleAssistant,
			Content: text,
			Name:    c.Message.Name,
		}
		if len(c.Message.ToolCalls) > 0 {
			msg.ToolCalls = make([]llm.ToolCall, 0, len(c.Message.ToolCalls))
			for _, tc := range c.Message.ToolCalls {
				msg.ToolCalls = append(msg.ToolCalls, llm.ToolCall{
					ID:        tc.ID,
					Name:      tc.Function.Name,
					Arguments: ToolCallArguments(tc.Function.Arguments),
				})
			}
		}
		resp.Choices = append(resp.Choices, llm.ChatChoice{
			Index:        c.Index,
			FinishReason: c.FinishReason,
			Message:      msg,
		})
		resp.Images = append(resp.Images, images...)
		resp.Images = append(resp.Images, ImagesFromExtra(c.Message.Extra)...)
	}

	if oa.Usage != nil {
		resp.Usage = llm.ChatUsage{
			PromptTokens:     oa.Usage.PromptTokens,
			CompletionTokens: oa.Usage.CompletionTokens,
			TotalTokens:      oa.Usage.TotalTokens,
		}
	}
	if oa.Created != 0 {
		resp.CreatedAt = time.Unix(oa.Created, 0)
	}
	return resp
}
