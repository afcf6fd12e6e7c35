package cascade

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/cascade/pkg/cascade/constants"
	"github.com/BrandonKowalski/cascade/pkg/cascade/i18n"
)

// Config is the TOML configuration of a menu host:
//
//	locale = "es"
//	menu_file = "menu.toml"
//	messages = ["active.es.toml"]
//
//	[menu]
//	name = "overflow"
//	width = 192
//	offset_x = 0
//	offset_y = 8
//	background = "#FFFFFF"
//	content = "#1C1B1F"
//
//	[log]
//	level = "debug"
//	path = "logs/cascade.log"
//
// Relative paths are resolved against the directory of the config file.
// Unknown keys are rejected.
type Config struct {
	Locale   string     `toml:"locale"`
	MenuFile string     `toml:"menu_file"`
	Messages []string   `toml:"messages"`
	Menu     MenuConfig `toml:"menu"`
	Log      LogConfig  `toml:"log"`

	dir string
}

// MenuConfig holds presentation pass-through settings.
type MenuConfig struct {
	Name       string   `toml:"name"`
	Width      float32  `toml:"width"`
	OffsetX    *float32 `toml:"offset_x"` // Unset leaves the menu's offset alone
	OffsetY    *float32 `toml:"offset_y"`
	Background string   `toml:"background"`
	Content    string   `toml:"content"`
}

// LogConfig configures the process-wide logger.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// DecodeConfig reads a TOML config. Relative paths stay relative to the
// working directory.
func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if keys := unknownKeys(md); len(keys) > 0 {
		return nil, fmt.Errorf("decode config: unknown keys: %s", strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// LoadConfig reads a TOML config from path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Colors returns the configured colors layered over DefaultColors.
func (c *Config) Colors() (Colors, error) {
	colors := DefaultColors()
	if c.Menu.Background != "" {
		bg, err := ParseHexColor(c.Menu.Background)
		if err != nil {
			return colors, fmt.Errorf("menu.background: %w", err)
		}
		colors.Background = bg
	}
	if c.Menu.Content != "" {
		fg, err := ParseHexColor(c.Menu.Content)
		if err != nil {
			return colors, fmt.Errorf("menu.content: %w", err)
		}
		colors.Content = fg
	}
	return colors, nil
}

// Localizer builds a localizer for Locale with every Messages file loaded.
// It returns nil when no locale is configured.
func (c *Config) Localizer() (*i18n.Localizer, error) {
	if c.Locale == "" {
		return nil, nil
	}
	l := i18n.New(c.Locale)
	for _, path := range c.Messages {
		if err := l.LoadMessages(c.resolve(path)); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// LoadTree loads MenuFile, or returns fallback when none is configured.
func (c *Config) LoadTree(fallback *Tree[string]) (*Tree[string], error) {
	if c.MenuFile == "" {
		return fallback, nil
	}
	return LoadMenu(c.resolve(c.MenuFile))
}

// MenuOptions converts the config into Menu options. The offset option is
// only emitted when offset_x or offset_y is set; a missing axis is 0.
func (c *Config) MenuOptions() ([]Option, error) {
	var opts []Option
	if c.Menu.OffsetX != nil || c.Menu.OffsetY != nil {
		opts = append(opts, WithOffset(deref(c.Menu.OffsetX), deref(c.Menu.OffsetY)))
	}
	if c.Menu.Name != "" {
		opts = append(opts, WithName(c.Menu.Name))
	}
	if c.Menu.Width > 0 {
		opts = append(opts, WithWidth(c.Menu.Width))
	}

	colors, err := c.Colors()
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithColors(colors))

	loc, err := c.Localizer()
	if err != nil {
		return nil, err
	}
	if loc != nil {
		opts = append(opts, WithLocalizer(loc))
	}
	return opts, nil
}

// InitOptions converts the [log] section into Init options.
func (c *Config) InitOptions() Options {
	return Options{
		LogPath:  c.resolve(c.Log.Path),
		LogLevel: c.Log.Level,
	}
}

// DefaultConfigPath returns $CASCADE_CONFIG or "cascade.toml".
func DefaultConfigPath() string {
	if p := os.Getenv(constants.ConfigEnvVar); p != "" {
		return p
	}
	return "cascade.toml"
}

func deref(f *float32) float32 {
	if f == nil {
		return 0
	}
	return *f
}
