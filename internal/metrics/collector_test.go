package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestObserveLLMRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector("modelgw", reg, zap.NewNop())
	require.NotNil(t, c)

	c.ObserveLLMRequest("openrouter", "gpt-4o", "ok", 120*time.Millisecond)
	c.ObserveLLMRequest("openrouter", "gpt-4o", "ok", 80*time.Millisecond)
	c.ObserveLLMRequest("openrouter", "gpt-4o", "error", 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(
		c.llmRequestsTotal.WithLabelValues("openrouter", "gpt-4o", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		c.llmRequestsTotal.WithLabelValues("openrouter", "gpt-4o", "error")))
}

func TestObserveLLMUsage(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector("modelgw", reg, nil)

	c.ObserveLLMUsage("openrouter", "gpt-4o", 100, 40, 0.0021)
	c.ObserveLLMUsage("openrouter", "gpt-4o", 50, 10, 0)

	assert.Equal(t, float64(150), testutil.ToFloat64(
		c.llmTokensUsed.WithLabelValues("openrouter", "gpt-4o", "prompt")))
	assert.Equal(t, float64(50), testutil.ToFloat64(
		c.llmTokensUsed.WithLabelValues("openrouter", "gpt-4o", "completion")))
	assert.InDelta(t, 0.0021, testutil.ToFloat64(
		c.llmCost.WithLabelValues("openrouter", "gpt-4o")), 1e-9)
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.ObserveLLMRequest("p", "m", "ok", time.Second)
	c.ObserveLLMUsage("p", "m", 1, 1, 0.1)
}
