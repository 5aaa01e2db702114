package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/cssgen"
	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestGetValidatorIsShared(t *testing.T) {
	require.Same(t, GetValidator(), GetValidator())
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "defaults pass", mutate: func(*Config) {}},
		{name: "empty intensity means default", mutate: func(c *Config) { c.DarkMode.Intensity = "" }},
		{name: "zero floors mean default", mutate: func(c *Config) { c.DarkMode.MinTextContrast = 0 }},
		{
			name:      "saturation out of range",
			mutate:    func(c *Config) { c.DarkMode.SaturationAdjustment = -150 },
			wantField: "dark_mode.saturation_adjustment",
		},
		{
			name:      "negative string length",
			mutate:    func(c *Config) { c.Sanitize.MaxStringLength = -1 },
			wantField: "sanitize.max_string_length",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Log.Level = "loud" },
			wantField: "log.level",
		},
		{
			name: "dark and light selectors collide",
			mutate: func(c *Config) {
				c.CSS.LightSelector = c.CSS.DarkSelector
			},
			wantField: "css.light_selector",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tc.mutate(cfg)
			err := ValidateConfig(cfg)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *themeerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}

	require.Error(t, ValidateConfig(nil))
}

func TestConverters(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, cssgen.DefaultOptions(), cfg.CSSOptions())

	opts, err := cfg.DarkModeOptions()
	require.NoError(t, err)
	require.Equal(t, darkmode.DefaultOptions(), opts)
}

func TestSnake(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"DarkMode":        "dark_mode",
		"MinUIContrast":   "min_ui_contrast",
		"CSS":             "css",
		"MaxStringLength": "max_string_length",
		"Level":           "level",
	} {
		require.Equal(t, want, snake(in), in)
	}
}
