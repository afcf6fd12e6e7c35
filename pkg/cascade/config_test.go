package cascade

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/cascade/pkg/cascade/constants"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.toml"), []byte(shareDefinition), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active.es.toml"), []byte(`Share = "Compartir"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cascade.toml"), []byte(`
locale = "es"
menu_file = "menu.toml"
messages = ["active.es.toml"]

[menu]
name = "overflow"
width = 220
offset_x = 2
offset_y = 48
background = "#202124"
content = "E8EAED"

[log]
level = "debug"
path = "logs/cascade.log"
`), 0o644))

	cfg, err := LoadConfig(filepath.Join(dir, "cascade.toml"))
	require.NoError(t, err)

	tree, err := cfg.LoadTree(nil)
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Equal(t, 9, tree.Len())

	opts, err := cfg.MenuOptions()
	require.NoError(t, err)

	m := NewMenu(tree, nil, opts...)
	m.Open()
	assert.Equal(t, float32(220), m.Width())
	assert.Equal(t, Offset{X: 2, Y: 48}, m.Offset())
	assert.Equal(t, HexToColor(0x202124), m.Colors().Background)
	assert.Equal(t, HexToColor(0xE8EAED), m.Colors().Content)
	assert.Equal(t, "Compartir", m.View().Items[1].Title)

	initOpts := cfg.InitOptions()
	assert.Equal(t, "debug", initOpts.LogLevel)
	assert.Equal(t, filepath.Join(dir, "logs", "cascade.log"), initOpts.LogPath)
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)

	fallback := shareTree()
	tree, err := cfg.LoadTree(fallback)
	require.NoError(t, err)
	assert.Same(t, fallback, tree)

	loc, err := cfg.Localizer()
	require.NoError(t, err)
	assert.Nil(t, loc)

	opts, err := cfg.MenuOptions()
	require.NoError(t, err)
	m := NewMenu(tree, nil, opts...)
	assert.Equal(t, DefaultColors(), m.Colors())
	assert.Empty(t, cfg.InitOptions().LogPath)
}

func TestConfigBadColor(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("[menu]\nbackground = \"#12\"\n"))
	require.NoError(t, err)

	_, err = cfg.MenuOptions()
	assert.ErrorContains(t, err, "menu.background")
}

func TestConfigMissingMessages(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("locale = \"es\"\nmessages = [\"nope.es.toml\"]\n"))
	require.NoError(t, err)

	_, err = cfg.Localizer()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigUnknownKeys(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("[menu]\noffest_x = 8\n"))
	assert.ErrorContains(t, err, "unknown keys: menu.offest_x")

	path := filepath.Join(t.TempDir(), "cascade.toml")
	require.NoError(t, os.WriteFile(path, []byte("lcoale = \"es\"\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "lcoale")
}

func TestConfigOffset(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want Offset
	}{
		{"unset keeps earlier option", "", Offset{X: 8}},
		{"both", "[menu]\noffset_x = 2\noffset_y = 48\n", Offset{X: 2, Y: 48}},
		{"explicit zero", "[menu]\noffset_x = 0\n", Offset{}},
		{"one axis", "[menu]\noffset_y = 16\n", Offset{Y: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DecodeConfig(strings.NewReader(tt.toml))
			require.NoError(t, err)

			opts, err := cfg.MenuOptions()
			require.NoError(t, err)

			m := NewMenu(shareTree(), nil, append([]Option{WithOffset(8, 0)}, opts...)...)
			assert.Equal(t, tt.want, m.Offset())
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(constants.ConfigEnvVar, "")
	assert.Equal(t, "cascade.toml", DefaultConfigPath())

	t.Setenv(constants.ConfigEnvVar, "/etc/cascade.toml")
	assert.Equal(t, "/etc/cascade.toml", DefaultConfigPath())
}
