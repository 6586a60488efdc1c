package transform

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/kinema/input"
)

// Config is the serialized transformer description consumed at scene load.
// Priority and Enabled are pointers so absence falls back to the variant
// default rather than zero.
type Config struct {
	Type     string             `json:"type"`
	Priority *int               `json:"priority,omitempty"`
	Enabled  *bool              `json:"enabled,omitempty"`
	Mapping  *input.Mapping     `json:"inputMapping,omitempty"`
	Params   map[string]float64 `json:"params,omitempty"`
	Code     string             `json:"code,omitempty"`
}

// BuildContext carries the dependencies builders may need: the live raw
// source for relays, a logger for custom code, and an optional pinned
// random source for the wander variant.
type BuildContext struct {
	Source input.Source
	Logger zerolog.Logger
	Rand   *rand.Rand
}

// Builder materializes one variant from its config.
type Builder func(cfg Config, ctx BuildContext) (*Transformer, error)

var (
	buildersMu sync.RWMutex
	builders   = make(map[string]Builder)
)

// RegisterBuilder adds a builder by config type name.
func RegisterBuilder(name string, b Builder) {
	buildersMu.Lock()
	defer buildersMu.Unlock()
	builders[name] = b
}

// BuilderNames returns all registered type names, sorted.
func BuilderNames() []string {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build materializes a transformer from config. Unknown types return an
// error; scene loading logs and skips them rather than failing the scene.
func Build(cfg Config, ctx BuildContext) (*Transformer, error) {
	buildersMu.RLock()
	b, ok := builders[cfg.Type]
	buildersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown transformer type %q", cfg.Type)
	}

	t, err := b(cfg, ctx)
	if err != nil {
		return nil, fmt.Errorf("build transformer %q: %w", cfg.Type, err)
	}

	if cfg.Priority != nil {
		t.Priority = *cfg.Priority
	}
	if cfg.Enabled != nil {
		t.Enabled = *cfg.Enabled
	}
	t.ApplyParams(cfg.Params)
	return t, nil
}

func init() {
	RegisterBuilder(KindInputRelay.String(), func(cfg Config, ctx BuildContext) (*Transformer, error) {
		mapping := input.DefaultMapping()
		if cfg.Mapping != nil {
			mapping = *cfg.Mapping
		}
		return NewInputRelay(ctx.Source, mapping), nil
	})
	RegisterBuilder(KindCharacter.String(), func(Config, BuildContext) (*Transformer, error) {
		return NewCharacter(), nil
	})
	RegisterBuilder(KindCar.String(), func(Config, BuildContext) (*Transformer, error) {
		return NewCar(), nil
	})
	RegisterBuilder(KindAirplane.String(), func(Config, BuildContext) (*Transformer, error) {
		return NewAirplane(), nil
	})
	RegisterBuilder(KindAnimal.String(), func(cfg Config, ctx BuildContext) (*Transformer, error) {
		return NewAnimal(ctx.Rand), nil
	})
	RegisterBuilder(KindFlutter.String(), func(Config, BuildContext) (*Transformer, error) {
		return NewFlutter(), nil
	})
	RegisterBuilder(KindCustom.String(), func(cfg Config, ctx BuildContext) (*Transformer, error) {
		return NewCustom(cfg.Code, ctx.Logger)
	})
}
