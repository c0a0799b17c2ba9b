package openrouter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voss-labs/modelgw/llm"
	"github.com/voss-labs/modelgw/llm/providers"
)

func rawResponse(t *testing.T, body string) *providers.OpenAICompatResponse {
	t.Helper()
	var raw providers.OpenAICompatResponse
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return &raw
}

func TestApplyMetadata_CostOverwritesExistingUsageCost(t *testing.T) {
	raw := rawResponse(t, `{
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "x"}}],
		"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2, "total_cost": 0.5}
	}`)
	resp := providers.ToLLMChatResponse(raw, "openrouter")
	resp.Usage.Cost = 0.1

	applyMetadata(resp, raw, true)

	assert.Equal(t, 0.5, resp.Usage.Cost)
}

func TestApplyMetadata_NoCostLeavesUsageUntouched(t *testing.T) {
	raw := rawResponse(t, `{
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "x"}}],
		"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
	}`)
	resp := providers.ToLLMChatResponse(raw, "openrouter")
	resp.Usage.Cost = 0.1

	applyMetadata(resp, raw, true)

	assert.Equal(t, 0.1, resp.Usage.Cost)
	usage, ok := resp.ProviderData["usage"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, usage, "total_cost")
}

func TestApplyMetadata_NoUsageBlock(t *testing.T) {
	raw := rawResponse(t, `{
		"model": "openai/gpt-4o",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "x"}}]
	}`)
	resp := providers.ToLLMChatResponse(raw, "openrouter")

	applyMetadata(resp, raw, true)

	assert.NotContains(t, resp.ProviderData, "usage")
	assert.Zero(t, resp.Usage.Cost)
}

func TestApplyMetadata_TypedFinishReasonPreferred(t *testing.T) {
	raw := rawResponse(t, `{
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": "x"}
		}]
	}`)
	// plant a conflicting residual value; typed wins
	raw.Choices[0].Extra = map[string]any{"finish_reason": "residual"}
	resp := providers.ToLLMChatResponse(raw, "openrouter")

	applyMetadata(resp, raw, true)

	assert.Equal(t, "stop", resp.ProviderData["finish_reason"])
}

func TestApplyMetadata_ResidualFinishReasonFallback(t *testing.T) {
	raw := rawResponse(t, `{
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "x"}}]
	}`)
	raw.Choices[0].Extra = map[string]any{"finish_reason": "residual"}
	resp := providers.ToLLMChatResponse(raw, "openrouter")

	applyMetadata(resp, raw, true)

	assert.Equal(t, "residual", resp.ProviderData["finish_reason"])
}

func TestApplyMetadata_AbsentFinishReasonOmitted(t *testing.T) {
	raw := rawResponse(t, `{
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "x"}}]
	}`)
	resp := providers.ToLLMChatResponse(raw, "openrouter")

	applyMetadata(resp, raw, true)

	assert.NotContains(t, resp.ProviderData, "finish_reason")
	assert.NotContains(t, resp.ProviderData, "native_finish_reason")
}

func TestApplyMetadata_NativeFinishReasonFromFirstChoice(t *testing.T) {
	raw := rawResponse(t, `{
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"native_finish_reason": "end_turn",
			"message": {"role": "assistant", "content": "x"}
		}]
	}`)
	// a response-level value must not be mistaken for the choice's
	raw.Extra = map[string]any{"native_finish_reason": "response-level"}
	resp := providers.ToLLMChatResponse(raw, "openrouter")

	applyMetadata(resp, raw, true)

	assert.Equal(t, "end_turn", resp.ProviderData["native_finish_reason"])
}

func TestApplyMetadata_ChoicesExcludedWhenDisabled(t *testing.T) {
	raw := rawResponse(t, `{
		"choices": [{"index": 0, "finish_reason": "stop",
			"native_finish_reason": "end_turn",
			"message": {"role": "assistant", "content": "x"}}]
	}`)
	resp := providers.ToLLMChatResponse(raw, "openrouter")

	applyMetadata(resp, raw, false)

	// choice detail, including both finish reasons, is gated together
	assert.NotContains(t, resp.ProviderData, "choices")
	assert.NotContains(t, resp.ProviderData, "finish_reason")
	assert.NotContains(t, resp.ProviderData, "native_finish_reason")
}

func TestApplyMetadata_TypedFieldsNotOverwrittenByResidual(t *testing.T) {
	raw := rawResponse(t, `{
		"model": "typed-model",
		"object": "chat.completion",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "x"}}]
	}`)
	raw.Extra = map[string]any{
		"model":    "residual-model",
		"object":   "residual-object",
		"provider": "UpstreamY",
	}
	resp := providers.ToLLMChatResponse(raw, "openrouter")

	applyMetadata(resp, raw, true)

	assert.Equal(t, "typed-model", resp.ProviderData["model"])
	assert.Equal(t, "chat.completion", resp.ProviderData["object"])
	assert.Equal(t, "UpstreamY", resp.ProviderData["provider"])
}

func TestApplyMetadata_ZeroValuedTypedFieldsOmitted(t *testing.T) {
	raw := rawResponse(t, `{"choices": []}`)
	resp := providers.ToLLMChatResponse(raw, "openrouter")

	applyMetadata(resp, raw, true)

	assert.NotContains(t, resp.ProviderData, "model")
	assert.NotContains(t, resp.ProviderData, "created")
	assert.NotContains(t, resp.ProviderData, "object")
	assert.NotContains(t, resp.ProviderData, "provider")
	assert.NotContains(t, resp.ProviderData, "choices")
}

func TestApplyMetadata_ExistingProviderDataPreserved(t *testing.T) {
	raw := rawResponse(t, `{"model": "m", "choices": []}`)
	resp := providers.ToLLMChatResponse(raw, "openrouter")
	resp.ProviderData = map[string]any{"custom": "kept"}

	applyMetadata(resp, raw, true)

	assert.Equal(t, "kept", resp.ProviderData["custom"])
	assert.Equal(t, "m", resp.ProviderData["model"])
}

func TestApplyChunkMetadata_CostNeedsUsageOnChunk(t *testing.T) {
	raw := rawResponse(t, `{
		"model": "m",
		"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2, "total_cost": 0.25}
	}`)

	// chunk without typed usage: metadata lifted, cost not mirrored
	chunk := &llm.StreamChunk{}
	applyChunkMetadata(chunk, raw)
	assert.Nil(t, chunk.Usage)
	usage, ok := chunk.ProviderData["usage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.25, usage["total_cost"])

	// chunk with typed usage: cost mirrored onto it
	chunk = &llm.StreamChunk{Usage: &llm.ChatUsage{TotalTokens: 2}}
	applyChunkMetadata(chunk, raw)
	assert.Equal(t, 0.25, chunk.Usage.Cost)
}

func TestAsFloat(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{0.5, 0.5, true},
		{float32(2), 2, true},
		{3, 3, true},
		{int64(4), 4, true},
		{uint64(5), 5, true},
		{"0.5", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := asFloat(tc.in)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.want, got)
	}
}
