// Package theme is the application layer the CLI drives: it loads untrusted
// theme files through the sanitizer and runs the engine on the result, logging
// each stage.
package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/csscache"
	"github.com/alexisbeaulieu97/themekit/internal/cssgen"
	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/lint"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/sanitize"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// PresetPrefix selects a built-in preset instead of a file, e.g. "preset:slate".
const PresetPrefix = "preset:"

// Format is a document serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (use json or yaml)", themeerrors.ErrInvalidArgument, name)
	}
}

// FormatForPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Service coordinates loading, sanitizing and the engine operations.
type Service struct {
	cfg   *config.Config
	log   *logger.Logger
	cache *csscache.Cache
}

// NewService constructs a Service. A nil logger discards output.
func NewService(cfg *config.Config, log *logger.Logger) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}

	cache := csscache.New()
	if cfg.Cache.Path != "" {
		opened, err := csscache.Open(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("open css cache: %w", err)
		}
		cache = opened
	}

	return &Service{cfg: cfg, log: log, cache: cache}, nil
}

// Config returns the configuration the service was built with.
func (s *Service) Config() *config.Config {
	return s.cfg
}

// Load reads and sanitizes a theme file, or builds a preset when source has
// PresetPrefix.
func (s *Service) Load(ctx context.Context, source string) (*theme.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := s.log.With("source", source)

	if name, ok := strings.CutPrefix(source, PresetPrefix); ok {
		doc, err := theme.LookupPreset(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", themeerrors.ErrInvalidArgument, err.Error())
		}
		log.Debug("loaded preset")
		return doc, nil
	}

	value, err := s.decode(source)
	if err != nil {
		log.Error(err, "failed to read theme")
		return nil, err
	}

	doc, err := sanitize.SanitizeTheme(value, s.cfg.Sanitize)
	if err != nil {
		log.Error(err, "theme rejected")
		return nil, err
	}
	log.WithFields(map[string]any{"theme": doc.Meta.Name, "roles": len(doc.Colors)}).Debug("theme sanitized")
	return doc, nil
}

// ValidateOutcome pairs the sanitizer result with the contrast lint of the
// sanitized document. Lint is nil when sanitizing failed.
type ValidateOutcome struct {
	Sanitize sanitize.Result
	Lint     *lint.Report
}

// Valid reports whether the document sanitized cleanly and has no contrast issues.
func (o ValidateOutcome) Valid() bool {
	return o.Sanitize.Success && o.Lint != nil && o.Lint.Valid()
}

// Validate reports every structural problem in source and, when there are
// none, the contrast findings. Only read and parse failures are errors.
func (s *Service) Validate(ctx context.Context, source string) (ValidateOutcome, error) {
	if err := ctx.Err(); err != nil {
		return ValidateOutcome{}, err
	}

	var result sanitize.Result
	if strings.HasPrefix(source, PresetPrefix) {
		doc, err := s.Load(ctx, source)
		if err != nil {
			return ValidateOutcome{}, err
		}
		result = sanitize.Result{Success: true, Theme: doc}
	} else {
		value, err := s.decode(source)
		if err != nil {
			return ValidateOutcome{}, err
		}
		result = sanitize.SanitizeAndValidate(value, s.cfg.Sanitize)
	}

	outcome := ValidateOutcome{Sanitize: result}
	if !result.Success {
		s.log.WithFields(map[string]any{"source": source, "errors": len(result.Errors)}).Warn("theme failed validation")
		return outcome, nil
	}

	report, err := lint.Check(result.Theme)
	if err != nil {
		return ValidateOutcome{}, err
	}
	outcome.Lint = &report
	s.log.WithFields(map[string]any{
		"theme":    report.Theme,
		"issues":   report.Count(lint.SeverityIssue),
		"warnings": report.Count(lint.SeverityWarning),
	}).Info("theme validated")
	return outcome, nil
}

// GenerateCSS renders doc through the cache, persisting it when a cache path
// is configured.
func (s *Service) GenerateCSS(ctx context.Context, doc *theme.Document, opts cssgen.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	start := time.Now()
	css, hit, err := s.cache.Generate(doc, opts)
	if err != nil {
		s.log.Error(err, "css generation failed")
		return "", err
	}

	cacheState := "miss"
	if hit {
		cacheState = "hit"
	}
	log := s.log.WithFields(map[string]any{
		"theme":    doc.Meta.Name,
		"cache":    cacheState,
		"bytes":    len(css),
		"duration": time.Since(start).String(),
	})
	log.Info("css generated")

	if !hit {
		if err := s.cache.Save(); err != nil {
			log.Warn(fmt.Sprintf("could not persist css cache: %v", err))
		}
	}
	return css, nil
}

// GenerateDark synthesizes a dark overlay for doc. Contrast shortfalls are
// logged as warnings and returned in the result.
func (s *Service) GenerateDark(ctx context.Context, doc *theme.Document, opts darkmode.Options) (*theme.Document, darkmode.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, darkmode.Result{}, err
	}

	dark, result, err := darkmode.GenerateDarkModeReport(doc, opts)
	if err != nil {
		s.log.Error(err, "dark mode synthesis failed")
		return nil, darkmode.Result{}, err
	}

	log := s.log.WithFields(map[string]any{"theme": dark.Meta.Name, "intensity": string(opts.Intensity)})
	for _, a := range result.Shortfalls() {
		log.Warn(fmt.Sprintf("%s: contrast %.2f:1 after %d attempts, wanted %.1f:1", a.Pair, a.After, a.Attempts, a.Required))
	}
	log.Info("dark mode generated")
	return dark, result, nil
}

// Preview runs synthesis without producing a document.
func (s *Service) Preview(ctx context.Context, doc *theme.Document, opts darkmode.Options) (darkmode.Preview, error) {
	if err := ctx.Err(); err != nil {
		return darkmode.Preview{}, err
	}
	preview, err := darkmode.PreviewDarkMode(doc, opts)
	if err != nil {
		return darkmode.Preview{}, err
	}
	s.log.With("pairs", len(preview.ContrastReport)).Debug("preview computed")
	return preview, nil
}

// Marshal encodes doc in the given format.
func Marshal(doc *theme.Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON, "":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", themeerrors.ErrInvalidArgument, format)
	}
}

func (s *Service) decode(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	if FormatForPath(path) == FormatYAML {
		return sanitize.DecodeYAML(data)
	}
	return sanitize.DecodeJSON(data)
}
