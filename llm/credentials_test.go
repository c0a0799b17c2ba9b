package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialOverride_ContextRoundTrip(t *testing.T) {
	ctx := WithCredentialOverride(context.Background(), CredentialOverride{APIKey: "sk-123"})

	c, ok := CredentialOverrideFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "sk-123", c.APIKey)
}

func TestCredentialOverride_EmptyLeavesContextUnchanged(t *testing.T) {
	base := context.Background()
	ctx := WithCredentialOverride(base, CredentialOverride{})

	assert.Equal(t, base, ctx)
	_, ok := CredentialOverrideFromContext(ctx)
	assert.False(t, ok)
}

func TestCredentialOverride_NeverLeaksKey(t *testing.T) {
	c := CredentialOverride{APIKey: "sk-secret-value"}

	assert.NotContains(t, c.String(), "sk-secret-value")

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sk-secret-value")
	assert.JSONEq(t, `{"api_key": "***"}`, string(data))
}
