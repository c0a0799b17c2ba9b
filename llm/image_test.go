package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageInline(t *testing.T) {
	assert.True(t, Image{MIMEType: "image/png", Content: []byte{1}}.Inline())
	assert.False(t, Image{URL: "https://example.com/a.png"}.Inline())
	assert.False(t, Image{}.Inline())
}
