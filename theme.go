package metricx

import (
	"context"
	"errors"
	"fmt"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	ThemeKey       = "metricx-theme"
	ColorSchemeKey = "metricx_theme"
)

type ColorScheme struct {
	Name      string
	Primary   string
	Secondary string
	Accent    string
}

var ColorSchemes = []ColorScheme{
	{Name: "default", Primary: "#06B6D4", Secondary: "#8B5CF6", Accent: "#EC4899"},
	{Name: "ocean", Primary: "#0EA5E9", Secondary: "#3B82F6", Accent: "#1E40AF"},
	{Name: "sunset", Primary: "#F97316", Secondary: "#EF4444", Accent: "#DC2626"},
	{Name: "forest", Primary: "#10B981", Secondary: "#059669", Accent: "#047857"},
}

func LookupScheme(name string) (ColorScheme, error) {
	for _, s := range ColorSchemes {
		if s.Name == name {
			return s, nil
		}
	}
	return ColorScheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Preferences stores the light/dark mode and the accent colour scheme.
type Preferences struct {
	settings SettingsStore
	tracker  *Tracker
}

// NewPreferences wires the settings port. tracker may be nil.
func NewPreferences(settings SettingsStore, tracker *Tracker) *Preferences {
	return &Preferences{settings: settings, tracker: tracker}
}

// Theme returns the saved mode, light when nothing was saved.
func (p *Preferences) Theme(ctx context.Context) (Theme, error) {
	v, err := p.settings.Get(ctx, ThemeKey)
	if errors.Is(err, ErrSettingNotFound) {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	if Theme(v) == ThemeDark {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}

func (p *Preferences) Toggle(ctx context.Context) (Theme, error) {
	current, err := p.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	if err := p.settings.Set(ctx, ThemeKey, string(next)); err != nil {
		return "", fmt.Errorf("save theme: %w", err)
	}
	p.tracker.unlock(ctx, AchievementThemeChanger)
	return next, nil
}

func (p *Preferences) Scheme(ctx context.Context) (ColorScheme, error) {
	v, err := p.settings.Get(ctx, ColorSchemeKey)
	if errors.Is(err, ErrSettingNotFound) {
		return ColorSchemes[0], nil
	}
	if err != nil {
		return ColorScheme{}, fmt.Errorf("read color scheme: %w", err)
	}
	s, err := LookupScheme(v)
	if err != nil {
		return ColorSchemes[0], nil
	}
	return s, nil
}

func (p *Preferences) ApplyScheme(ctx context.Context, name string) (ColorScheme, error) {
	s, err := LookupScheme(name)
	if err != nil {
		return ColorScheme{}, err
	}
	if err := p.settings.Set(ctx, ColorSchemeKey, s.Name); err != nil {
		return ColorScheme{}, fmt.Errorf("save color scheme: %w", err)
	}
	p.tracker.unlock(ctx, AchievementThemeChanger)
	return s, nil
}
