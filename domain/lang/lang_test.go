package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, English, Normalize("en"))
	assert.Equal(t, Hindi, Normalize("hi"))

	// Anything outside the supported set resolves to English
	assert.Equal(t, English, Normalize(""))
	assert.Equal(t, English, Normalize("fr"))
	assert.Equal(t, English, Normalize("EN"))
	assert.Equal(t, English, Normalize("hindi"))
}

func TestIsSupported(t *testing.T) {
	for _, l := range Supported() {
		assert.True(t, IsSupported(l.String()))
	}
	assert.False(t, IsSupported("de"))
	assert.False(t, IsSupported(""))
}
