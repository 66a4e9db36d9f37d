// Package config loads machine profiles from YAML (or JSON) files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/aretw0/brewer/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is a decoded profile file.
type Config struct {
	Profile  domain.Profile
	LogLevel string
}

// Level parses LogLevel. An empty value yields slog.LevelInfo.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// File mirrors the on-disk layout. Absent keys keep the factory values.
type File struct {
	LogLevel   string                `mapstructure:"log_level"`
	Capacities CapacitiesFile        `mapstructure:"capacities"`
	Recipes    map[string]RecipeFile `mapstructure:"recipes"`
}

type CapacitiesFile struct {
	Coffee *int `mapstructure:"coffee"`
	Water  *int `mapstructure:"water"`
	Waste  *int `mapstructure:"waste"`
}

type RecipeFile struct {
	Coffee *int `mapstructure:"coffee"`
	Water  *int `mapstructure:"water"`
}

// Default returns the factory configuration.
func Default() Config {
	return Config{Profile: domain.DefaultProfile()}
}

// Load reads a profile file. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read profile: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document (JSON is accepted as a YAML subset).
func Parse(data []byte) (Config, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	var file File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", domain.ErrInvalidProfile, err)
	}

	return file.Apply(Default())
}

// Apply overlays the file on base and validates the result.
func (f File) Apply(base Config) (Config, error) {
	cfg := Config{
		Profile:  clone(base.Profile),
		LogLevel: base.LogLevel,
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}

	var errs []error
	set := func(dst *uint8, v *int, name string) {
		if v == nil {
			return
		}
		if *v < 0 || *v > math.MaxUint8 {
			errs = append(errs, fmt.Errorf("%w: %s=%d is outside 0..%d", domain.ErrInvalidProfile, name, *v, math.MaxUint8))
			return
		}
		*dst = uint8(*v)
	}

	caps := &cfg.Profile.Capacities
	set(&caps.Coffee, f.Capacities.Coffee, "capacities.coffee")
	set(&caps.Water, f.Capacities.Water, "capacities.water")
	set(&caps.Waste, f.Capacities.Waste, "capacities.waste")

	// Labels are case-insensitive, so two keys may name the same recipe.
	seen := make(map[domain.Action]string, len(f.Recipes))
	for _, label := range slices.Sorted(maps.Keys(f.Recipes)) {
		rf := f.Recipes[label]
		action, ok := domain.ParseAction(label)
		if !ok || !action.IsBrew() {
			errs = append(errs, fmt.Errorf("%w: unknown recipe %q", domain.ErrInvalidProfile, label))
			continue
		}
		if prev, dup := seen[action]; dup {
			errs = append(errs, fmt.Errorf("%w: recipes %q and %q both set %s", domain.ErrInvalidProfile, prev, label, action))
			continue
		}
		seen[action] = label
		r := cfg.Profile.Recipes[action]
		key := "recipes." + strings.ToLower(action.Label())
		set(&r.Coffee, rf.Coffee, key+".coffee")
		set(&r.Water, rf.Water, key+".water")
		cfg.Profile.Recipes[action] = r
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Profile.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func clone(p domain.Profile) domain.Profile {
	out := domain.Profile{
		Capacities: p.Capacities,
		Recipes:    make(map[domain.Action]domain.Recipe, len(p.Recipes)),
	}
	for a, r := range p.Recipes {
		out.Recipes[a] = r
	}
	return out
}
