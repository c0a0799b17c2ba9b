package openrouter

import (
	"github.com/voss-labs/modelgw/llm"
	"github.com/voss-labs/modelgw/llm/providers"
)

// liftProviderData builds the provider metadata map from a raw response.
// Typed fields are written first and never overwritten by residual data;
// the residual "provider" key is the one exception, since the upstream that
// actually served the request only ever arrives untyped.
//
// It returns the total cost reported under usage, when present, so callers
// can mirror it onto the typed usage struct.
func liftProviderData(pd map[string]any, raw *providers.OpenAICompatResponse, includeChoices bool) (float64, bool) {
	if raw.Model != "" {
		pd["model"] = raw.Model
	}
	if raw.Created != 0 {
		pd["created"] = raw.Created
	}
	if raw.Object != "" {
		pd["object"] = raw.Object
	}
	if v, ok := raw.Extra["provider"]; ok && v != nil {
		pd["provider"] = v
	}

	var cost float64
	var hasCost bool
	if raw.Usage != nil {
		usage := providers.MetadataMap(raw.Usage)
		providers.MergeExtra(usage, raw.Usage.Extra)
		if len(usage) > 0 {
			pd["usage"] = usage
		}
		cost, hasCost = asFloat(usage["total_cost"])
	}

	if includeChoices && len(raw.Choices) > 0 {
		choices := make([]map[string]any, 0, len(raw.Choices))
		for i := range raw.Choices {
			c := providers.MetadataMap(&raw.Choices[i])
			providers.MergeExtra(c, raw.Choices[i].Extra)
			choices = append(choices, c)
		}
		pd["choices"] = choices

		first := &raw.Choices[0]
		if fr := finishReason(first); fr != nil {
			pd["finish_reason"] = fr
		}
		// the upstream's own finish reason only ever arrives untyped,
		// alongside the choice
		if v, ok := first.Extra["native_finish_reason"]; ok && v != nil {
			pd["native_finish_reason"] = v
		}
	}

	return cost, hasCost
}

// finishReason resolves a choice's finish reason, preferring the typed field
// over the residual bag.
func finishReason(c *providers.OpenAICompatChoice) any {
	if c.FinishReason != "" {
		return c.FinishReason
	}
	if v, ok := c.Extra["finish_reason"]; ok && v != nil {
		return v
	}
	return nil
}

// applyMetadata lifts OpenRouter metadata from a raw response onto the
// normalized one, and mirrors the reported total cost onto the typed usage.
func applyMetadata(resp *llm.ChatResponse, raw *providers.OpenAICompatResponse, includeChoices bool) {
	if resp.ProviderData == nil {
		resp.ProviderData = map[string]any{}
	}
	if cost, ok := liftProviderData(resp.ProviderData, raw, includeChoices); ok {
		resp.Usage.Cost = cost
	}
}

// applyChunkMetadata is the stream-chunk variant of applyMetadata. Usage
// normally arrives only on the terminal fragment, so most chunks carry
// metadata without cost.
func applyChunkMetadata(chunk *llm.StreamChunk, raw *providers.OpenAICompatResponse) {
	if chunk.ProviderData == nil {
		chunk.ProviderData = map[string]any{}
	}
	cost, ok := liftProviderData(chunk.ProviderData, raw, true)
	if ok && chunk.Usage != nil {
		chunk.Usage.Cost = cost
	}
}

// asFloat coerces a metadata value into a float64. JSON numbers decode as
// float64, but typed maps may carry ints.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
