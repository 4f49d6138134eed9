package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(8))

	assert.NotNil(t, HUD.Get())
	assert.NotNil(t, HUDTitle.Get())
	assert.Greater(t, HUDTitle.Get().Metrics().Height.Ceil(), HUD.Get().Metrics().Height.Ceil())
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.Error(t, err)
}
