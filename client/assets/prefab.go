package assets

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/cbodonnell/playerdata/pkg/kinematic"
	"golang.org/x/image/colornames"
)

type PrefabKind string

const (
	PrefabKindGroup PrefabKind = "group"
	PrefabKindRect  PrefabKind = "rect"
)

// Prefab describes an object tree that can be instantiated into a scene.
// Colors are #rrggbb, #rrggbbaa or SVG color names.
type Prefab struct {
	ID       string           `yaml:"id"`
	Kind     PrefabKind       `yaml:"kind"`
	ZIndex   int              `yaml:"zIndex"`
	Position kinematic.Vector `yaml:"position"`
	Width    float32          `yaml:"width"`
	Height   float32          `yaml:"height"`
	Color    string           `yaml:"color"`
	Children []*Prefab        `yaml:"children"`
}

func (p *Prefab) validate() error {
	switch p.Kind {
	case PrefabKindGroup, "":
	case PrefabKindRect:
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("rect %q must have a positive size", p.ID)
		}
		if _, err := parseColor(p.Color); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown prefab kind: %s", p.Kind)
	}

	seen := make(map[string]bool, len(p.Children))
	for _, child := range p.Children {
		if child.ID == "" {
			return fmt.Errorf("child of %q is missing an id", p.ID)
		}
		if seen[child.ID] {
			return fmt.Errorf("duplicate child id %q in %q", child.ID, p.ID)
		}
		seen[child.ID] = true
		if err := child.validate(); err != nil {
			return err
		}
	}
	return nil
}

func parseColor(s string) (color.RGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return parseHexColor(s)
}

// parseHexColor parses #rrggbb or #rrggbbaa.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color: %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color: %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
