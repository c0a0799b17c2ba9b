package openrouter

import (
	"fmt"
	"net/http"
	"os"

	"github.com/voss-labs/modelgw/llm"
	"github.com/voss-labs/modelgw/llm/providers"
	"github.com/voss-labs/modelgw/llm/providers/openaicompat"
	"go.uber.org/zap"
)

const (
	providerName   = "openrouter"
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "gpt-4o"
	routerModel    = "openrouter/auto"
	apiKeyEnvVar   = "OPENROUTER_API_KEY"
)

// Provider implements the OpenRouter gateway on top of the OpenAI-compatible
// base. OpenRouter fronts many upstream providers behind one API and reports
// which one served a request, what it cost and the upstream's own finish
// reason; all of that is lifted into ChatResponse.ProviderData.
type Provider struct {
	*openaicompat.Provider
	cfg providers.OpenRouterConfig
}

// New creates an OpenRouter provider. The credential comes from cfg.APIKey
// or, when empty, the OPENROUTER_API_KEY environment variable; if neither is
// set, New fails before any request can be issued.
func New(cfg providers.OpenRouterConfig, logger *zap.Logger) (*Provider, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar)
	}
	if apiKey == "" {
		return nil, &llm.Error{
			Code:     llm.ErrAuthConfig,
			Message:  fmt.Sprintf("%s not set; provide api_key or set the %s environment variable", apiKeyEnvVar, apiKeyEnvVar),
			Provider: providerName,
			Model:    providers.ChooseModel(nil, cfg.Model, defaultModel),
		}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	base := openaicompat.New(openaicompat.Config{
		ProviderName: providerName,
		APIKey:       apiKey,
		BaseURL:      cfg.BaseURL,
		DefaultModel: providers.ChooseModel(nil, cfg.Model, defaultModel),
		// last resort: let OpenRouter pick the upstream itself
		FallbackModel: routerModel,
		Timeout:       cfg.Timeout.Std(),
		// the default base URL already carries /api/v1
		EndpointPath:   "/chat/completions",
		ModelsEndpoint: "/models",
		BuildHeaders: func(r *http.Request, key string) {
			providers.BearerTokenHeaders(r, key)
			if cfg.SiteURL != "" {
				r.Header.Set("HTTP-Referer", cfg.SiteURL)
			}
			if cfg.AppName != "" {
				r.Header.Set("X-Title", cfg.AppName)
			}
		},
		RequestHook: func(req *llm.ChatRequest, body *providers.OpenAICompatRequest) {
			applyFallbackModels(body, cfg.FallbackModels)
		},
		ResponseHook: func(resp *llm.ChatResponse, raw *providers.OpenAICompatResponse) {
			applyMetadata(resp, raw, true)
		},
		ChunkHook: func(chunk *llm.StreamChunk, raw *providers.OpenAICompatResponse) {
			applyChunkMetadata(chunk, raw)
		},
	}, logger)

	return &Provider{Provider: base, cfg: cfg}, nil
}

// applyFallbackModels injects the ordered fallback model list into the
// extra_body side channel under "models", OpenRouter's model-routing field.
// Identifiers pass through opaquely; unrelated side-channel keys are
// preserved.
func applyFallbackModels(body *providers.OpenAICompatRequest, models []string) {
	if len(models) == 0 {
		return
	}
	body.SetExtraBody("models", models)
}
