package sand

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Height = -3
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Params.FireSpreadChance = 1.5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Params.SprayDensity = -0.1
	assert.Error(t, cfg.Validate())
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                  "128",
		"h":                  "96",
		"seed":               "7",
		"fire_spread_chance": "0.5",
		"spray_density":      "0.25",
		"paint_overwrite":    "false",
	})

	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 96, cfg.Height)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.5, cfg.Params.FireSpreadChance)
	assert.Equal(t, 0.25, cfg.Params.SprayDensity)
	assert.False(t, cfg.Params.PaintOverwrite)

	// Unparsable or out-of-range values keep the defaults.
	cfg = FromMap(map[string]string{"w": "-4", "spray_density": "2.0", "seed": "zz"})
	def := DefaultConfig()
	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.Params.SprayDensity, cfg.Params.SprayDensity)
	assert.Equal(t, def.Seed, cfg.Seed)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sand.yaml")
	body := []byte("width: 200\nheight: 150\nseed: 21\nparams:\n  fire_spread_chance: 0.03125\n  spray_density: 0.5\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 150, cfg.Height)
	assert.Equal(t, int64(21), cfg.Seed)
	assert.Equal(t, 0.03125, cfg.Params.FireSpreadChance)
	assert.Equal(t, 0.5, cfg.Params.SprayDensity)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, DefaultConfig().Params.FireSmokeChance, cfg.Params.FireSmokeChance)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [not a number"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: -1\n"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
