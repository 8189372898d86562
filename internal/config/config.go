// Package config loads spanedit settings from TOML.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Service    ServiceConfig          `toml:"service"`
	Editor     EditorConfig           `toml:"editor"`
	Styles     map[string]StyleConfig `toml:"styles"`
	Navigation []NavigationConfig     `toml:"navigation"`
}

type ServiceConfig struct {
	URL     string        `toml:"url"`
	Path    string        `toml:"path"`
	Timeout time.Duration `toml:"timeout"`
}

type EditorConfig struct {
	ShowBrackets bool   `toml:"show_brackets"`
	DefaultType  string `toml:"default_type"`
	HistoryLimit int    `toml:"history_limit"`
}

// StyleConfig colors one annotation type. Colors are lipgloss/CSS strings,
// e.g. "39" or "#00afff".
type StyleConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
	Underline  bool   `toml:"underline"`
}

// NavigationConfig binds prev/next keys to spans of the listed types.
type NavigationConfig struct {
	Prev  []string `toml:"prev"`
	Next  []string `toml:"next"`
	Types []string `toml:"types"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Service: ServiceConfig{
			URL:     "http://localhost:8080",
			Path:    "/rest/namefinder/_findRawText",
			Timeout: 10 * time.Second,
		},
		Editor: EditorConfig{
			ShowBrackets: true,
			DefaultType:  "person",
		},
		Styles: map[string]StyleConfig{
			"person": {Foreground: "39", Bold: true},
		},
		Navigation: []NavigationConfig{
			{Prev: []string{"shift+tab"}, Next: []string{"tab"}, Types: []string{"person"}},
		},
	}
}

// Load reads path over the defaults. Unknown keys are an error so typos do
// not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// Navigation in a file replaces the default bindings instead of merging.
	cfg.Navigation = nil
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("navigation") {
		cfg.Navigation = Default().Navigation
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Service.URL == "" {
		errs = append(errs, errors.New("service.url must be set"))
	}
	if c.Service.Timeout <= 0 {
		errs = append(errs, errors.New("service.timeout must be positive"))
	}
	if c.Editor.DefaultType == "" {
		errs = append(errs, errors.New("editor.default_type must be set"))
	}
	for i, nav := range c.Navigation {
		if len(nav.Prev) == 0 && len(nav.Next) == 0 {
			errs = append(errs, fmt.Errorf("navigation[%d]: prev or next keys required", i))
		}
		if len(nav.Types) == 0 {
			errs = append(errs, fmt.Errorf("navigation[%d]: types required", i))
		}
	}
	return errors.Join(errs...)
}
