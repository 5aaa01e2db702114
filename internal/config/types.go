package config

import (
	"github.com/alexisbeaulieu97/themekit/internal/cssgen"
	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/sanitize"
)

// Config represents a themekit configuration file. Every section is optional;
// unset keys keep the values from Default.
type Config struct {
	CSS      CSS              `yaml:"css,omitempty"`
	DarkMode DarkMode         `yaml:"dark_mode,omitempty"`
	Sanitize sanitize.Options `yaml:"sanitize,omitempty"`
	Cache    Cache            `yaml:"cache,omitempty"`
	Log      Log              `yaml:"log,omitempty"`
}

// CSS configures the generator.
type CSS struct {
	Selector       string `yaml:"selector,omitempty" validate:"omitempty,css_selector"`
	DarkSelector   string `yaml:"dark_selector,omitempty" validate:"omitempty,css_selector"`
	LightSelector  string `yaml:"light_selector,omitempty" validate:"omitempty,css_selector"`
	OmitMediaQuery bool   `yaml:"omit_media_query,omitempty"`
}

// DarkMode configures synthesis.
type DarkMode struct {
	Intensity            string  `yaml:"intensity,omitempty" validate:"omitempty,intensity"`
	PreserveBrandColors  bool    `yaml:"preserve_brand_colors,omitempty"`
	SaturationAdjustment float64 `yaml:"saturation_adjustment" validate:"gte=-100,lte=100"`
	EnsureContrast       bool    `yaml:"ensure_contrast"`
	MinTextContrast      float64 `yaml:"min_text_contrast" validate:"omitempty,gte=1,lte=21"`
	MinUIContrast        float64 `yaml:"min_ui_contrast" validate:"omitempty,gte=1,lte=21"`
}

// Cache configures CSS memoization. An empty Path keeps the cache in memory.
type Cache struct {
	Path string `yaml:"path,omitempty"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	dm := darkmode.DefaultOptions()
	css := cssgen.DefaultOptions()
	return &Config{
		CSS: CSS{
			Selector:      css.Selector,
			DarkSelector:  css.DarkSelector,
			LightSelector: css.LightSelector,
		},
		DarkMode: DarkMode{
			Intensity:            string(dm.Intensity),
			PreserveBrandColors:  dm.PreserveBrandColors,
			SaturationAdjustment: dm.SaturationAdjustment,
			EnsureContrast:       dm.EnsureContrast,
			MinTextContrast:      dm.MinTextContrast,
			MinUIContrast:        dm.MinUIContrast,
		},
		Sanitize: sanitize.DefaultOptions(),
		Log:      Log{Level: "info", Human: true},
	}
}

// CSSOptions converts the css section.
func (c *Config) CSSOptions() cssgen.Options {
	return cssgen.Options{
		Selector:       c.CSS.Selector,
		DarkSelector:   c.CSS.DarkSelector,
		LightSelector:  c.CSS.LightSelector,
		OmitMediaQuery: c.CSS.OmitMediaQuery,
	}
}

// DarkModeOptions converts the dark_mode section.
func (c *Config) DarkModeOptions() (darkmode.Options, error) {
	intensity, err := darkmode.ParseIntensity(c.DarkMode.Intensity)
	if err != nil {
		return darkmode.Options{}, err
	}
	return darkmode.Options{
		Intensity:            intensity,
		PreserveBrandColors:  c.DarkMode.PreserveBrandColors,
		SaturationAdjustment: c.DarkMode.SaturationAdjustment,
		EnsureContrast:       c.DarkMode.EnsureContrast,
		MinTextContrast:      c.DarkMode.MinTextContrast,
		MinUIContrast:        c.DarkMode.MinUIContrast,
	}, nil
}
