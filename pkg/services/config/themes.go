package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
	"gopkg.in/ini.v1"
)

const DefaultThemeName = "default"

var ErrThemeNotFound = errors.New("theme not found")

// ThemeRegistry resolves named theme profiles. Each ini section overrides the
// default theme:
//
//	[clinic]
//	primary = 20,80,120
//	margin_left = 20
type ThemeRegistry interface {
	GetThemes() []string
	GetTheme(name string) (layout.Theme, error)
}

type iniThemeRegistry struct {
	cfg *ini.File
}

func NewThemeRegistry(path string) (ThemeRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load themes: %w", err)
	}
	return NewThemeRegistryFromBytes(data)
}

func NewThemeRegistryFromBytes(data []byte) (ThemeRegistry, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse themes: %w", err)
	}
	return &iniThemeRegistry{cfg: cfg}, nil
}

func (r *iniThemeRegistry) GetThemes() []string {
	themes := []string{DefaultThemeName}
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 && section.Name() != DefaultThemeName {
			themes = append(themes, section.Name())
		}
	}
	return themes
}

func (r *iniThemeRegistry) GetTheme(name string) (layout.Theme, error) {
	theme := layout.DefaultTheme()
	if name == "" || name == DefaultThemeName {
		if !r.cfg.HasSection(DefaultThemeName) {
			return theme, nil
		}
		name = DefaultThemeName
	}

	section, err := r.cfg.GetSection(name)
	if err != nil {
		return layout.Theme{}, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	if err := applyOverrides(&theme, section); err != nil {
		return layout.Theme{}, fmt.Errorf("theme %s: %w", name, err)
	}
	return theme, nil
}

// ResolveTheme returns the named theme, loading the registry only when a
// themes file is configured.
func ResolveTheme(themesFile, name string) (layout.Theme, error) {
	if themesFile == "" {
		if name != "" && name != DefaultThemeName {
			return layout.Theme{}, fmt.Errorf("%w: %s (no themes file configured)", ErrThemeNotFound, name)
		}
		return layout.DefaultTheme(), nil
	}
	reg, err := NewThemeRegistry(themesFile)
	if err != nil {
		return layout.Theme{}, err
	}
	return reg.GetTheme(name)
}

func applyOverrides(t *layout.Theme, section *ini.Section) error {
	colors := map[string]*canvas.Color{
		"primary":   &t.Colors.Primary,
		"accent":    &t.Colors.Accent,
		"text":      &t.Colors.Text,
		"muted":     &t.Colors.Muted,
		"success":   &t.Colors.Success,
		"warning":   &t.Colors.Warning,
		"danger":    &t.Colors.Danger,
		"tile_fill": &t.Colors.TileFill,
		"border":    &t.Colors.Border,
		"risk_fill": &t.Colors.RiskFill,
		"safe_fill": &t.Colors.SafeFill,
	}
	lengths := map[string]*float64{
		"margin_left":   &t.MarginLeft,
		"margin_right":  &t.MarginRight,
		"content_top":   &t.ContentTop,
		"margin_bottom": &t.MarginBottom,
		"line_height":   &t.LineHeight,
		"tile_height":   &t.TileHeight,
	}

	for _, key := range section.Keys() {
		name := key.Name()
		if dst, ok := colors[name]; ok {
			c, err := parseColor(key.String())
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = c
			continue
		}
		if dst, ok := lengths[name]; ok {
			v, err := key.Float64()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = v
			continue
		}
		if name == "font_family" {
			setFontFamily(t, key.String())
			continue
		}
		return fmt.Errorf("unknown key %q", name)
	}
	return nil
}

func setFontFamily(t *layout.Theme, family string) {
	for _, f := range []*canvas.Font{
		&t.Fonts.Title, &t.Fonts.Heading, &t.Fonts.Body, &t.Fonts.Bold, &t.Fonts.Italic,
		&t.Fonts.Small, &t.Fonts.TileValue, &t.Fonts.TileLabel, &t.Fonts.Footer,
	} {
		f.Family = family
	}
}

// parseColor reads "r,g,b" with components in 0..255.
func parseColor(s string) (canvas.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return canvas.Color{}, fmt.Errorf("color %q must be r,g,b", s)
	}
	var rgb [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return canvas.Color{}, fmt.Errorf("color %q: component %q out of range", s, p)
		}
		rgb[i] = v
	}
	return canvas.RGB(rgb[0], rgb[1], rgb[2]), nil
}
