package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEquity(t *testing.T) {
	t.Parallel()

	img, err := RenderEquity([]float64{100, 101, 99, 105, 104}, "demo")
	require.NoError(t, err)
	assert.NotEmpty(t, img)
	// PNG magic
	require.Greater(t, len(img), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img[:4])
}

func TestRenderEquityTooShort(t *testing.T) {
	t.Parallel()

	_, err := RenderEquity([]float64{100}, "demo")
	assert.Error(t, err)
}

func TestWriteEquityPNG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "equity.png")
	require.NoError(t, WriteEquityPNG(path, []float64{100, 102, 101}, "demo"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
