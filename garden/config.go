// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of a garden widget. All fields are
// optional: zero values (and out-of-range values) are replaced by
// the defaults in [Config.Normalize].
type Config struct {

	// Height of the widget in pixels.
	Height int `default:"520" min:"1"`

	// Background color of the widget. If empty, the page background
	// is used, and [DefaultBackground] if the page has none.
	Background string

	// Scale of the whole composition.
	Scale float32 `default:"0.6"`

	// OffsetY is the vertical offset of the composition.
	OffsetY float32 `default:"-0.12"`

	// Camera parameters.
	Camera CameraConfig

	// Framing parameters that keep the composition in view.
	Framing FramingConfig

	// Nodes configures the constellation.
	Nodes NodesConfig

	// Strands configures the swaying strands.
	Strands StrandsConfig

	// Links configures the tip-to-node links.
	Links LinksConfig

	// NoOrbits hides the orbit rings.
	NoOrbits bool

	// NoShadow hides the ground shadow disk.
	NoShadow bool

	// NoEdges hides the nearest-neighbor edges of the constellation.
	NoEdges bool

	// NoLinks removes the links and their pulses.
	NoLinks bool

	// Glow makes nodes and pulses emissive.
	Glow bool

	// Seed fixes the random seed of the scene; 0 uses a new seed per mount.
	Seed int64
}

// CameraConfig is the camera part of [Config].
type CameraConfig struct {

	// Position gives the direction from which the camera looks at
	// the composition; its distance comes from framing.
	// A zero position takes the default (6, 2.7, 6).
	Position Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"66"`
}

// DefaultConfig returns a config with all defaults set.
func DefaultConfig() Config {
	cfg := Config{}
	errors.Log(cli.SetFromDefaults(&cfg))
	cfg.Camera.Position = Vector3{X: 6, Y: 2.7, Z: 6}
	return cfg
}

// Normalize returns cfg with every unset or out-of-range field
// replaced by its default. It never fails: this is a decorative
// widget and a usable scene matters more than strict validation.
func (cfg Config) Normalize() Config {
	def := DefaultConfig()
	out := def
	errors.Log(copier.CopyWithOption(&out, &cfg, copier.Option{IgnoreEmpty: true, DeepCopy: true}))
	// copier merges vectors per component, but a zero component is valid
	out.Camera.Position = def.Camera.Position
	if cfg.Camera.Position != (Vector3{}) {
		out.Camera.Position = cfg.Camera.Position
	}

	fixInt := func(v *int, d, lo int) {
		if *v < lo {
			*v = d
		}
	}
	fixPos := func(v *float32, d float32) {
		if !(*v > 0) || math32.IsInf(*v, 0) {
			*v = d
		}
	}
	fixInt(&out.Height, def.Height, 1)
	fixPos(&out.Scale, def.Scale)
	fixPos(&out.Camera.FOV, def.Camera.FOV)
	if out.Camera.FOV >= 179 {
		out.Camera.FOV = def.Camera.FOV
	}
	fixPos(&out.Framing.Radius, def.Framing.Radius)
	fixPos(&out.Framing.Margin, def.Framing.Margin)
	fixInt(&out.Nodes.Count, def.Nodes.Count, 1)
	fixPos(&out.Nodes.Radius, def.Nodes.Radius)
	fixInt(&out.Nodes.Neighbors, def.Nodes.Neighbors, 1)
	fixPos(&out.Nodes.Scale, def.Nodes.Scale)
	out.Nodes.ScaleJitter = math32.Clamp(out.Nodes.ScaleJitter, 0, 1)
	fixInt(&out.Strands.Count, def.Strands.Count, 1)
	fixPos(&out.Strands.Height, def.Strands.Height)
	fixPos(&out.Strands.Radius, def.Strands.Radius)
	fixInt(&out.Strands.Samples, def.Strands.Samples, 2)
	fixInt(&out.Links.PerTip, def.Links.PerTip, 1)
	fixInt(&out.Links.Samples, def.Links.Samples, 2)
	if math32.IsNaN(out.OffsetY) {
		out.OffsetY = def.OffsetY
	}
	if out.NoEdges {
		out.Nodes.Neighbors = 0
	}
	if out.NoLinks {
		out.Links.PerTip = 0
	}
	return out
}

// OpenConfig reads a config from a TOML, YAML or JSON file, chosen by
// the file extension. Unknown fields are ignored. The result is not
// normalized.
func OpenConfig(filename string) (Config, error) {
	cfg := Config{}
	b, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(b)).EnableUnmarshalerInterface().Decode(&cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("garden.OpenConfig: unsupported config file type %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("garden.OpenConfig: %s: %w", filename, err)
	}
	return cfg, nil
}

// Vector3 is a [math32.Vector3] that config files can give either as
// an [x, y, z] array or as a table of named components.
type Vector3 math32.Vector3

// V returns v as a [math32.Vector3].
func (v Vector3) V() math32.Vector3 {
	return math32.Vector3(v)
}

func (v *Vector3) setArray(xs []float32) error {
	if len(xs) != 3 {
		return fmt.Errorf("garden.Vector3: need 3 components, got %d", len(xs))
	}
	*v = Vector3{X: xs[0], Y: xs[1], Z: xs[2]}
	return nil
}

func (v *Vector3) UnmarshalJSON(b []byte) error {
	if t := bytes.TrimSpace(b); len(t) > 0 && t[0] == '[' {
		var xs []float32
		if err := json.Unmarshal(t, &xs); err != nil {
			return err
		}
		return v.setArray(xs)
	}
	return json.Unmarshal(b, (*math32.Vector3)(v))
}

func (v *Vector3) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		var xs []float32
		if err := n.Decode(&xs); err != nil {
			return err
		}
		return v.setArray(xs)
	}
	return n.Decode((*math32.Vector3)(v))
}

// UnmarshalTOML decodes an array or inline table. A standard table
// is decoded by go-toml directly into the components.
func (v *Vector3) UnmarshalTOML(n *unstable.Node) error {
	switch n.Kind {
	case unstable.Array:
		var xs []float32
		it := n.Children()
		for it.Next() {
			x, err := tomlFloat(it.Node())
			if err != nil {
				return err
			}
			xs = append(xs, x)
		}
		return v.setArray(xs)
	case unstable.InlineTable:
		it := n.Children()
		for it.Next() {
			kv := it.Node()
			if kv.Kind != unstable.KeyValue {
				continue
			}
			key := kv.Key()
			name := ""
			for key.Next() {
				name = string(key.Node().Data)
			}
			x, err := tomlFloat(kv.Value())
			if err != nil {
				return err
			}
			switch strings.ToLower(name) {
			case "x":
				v.X = x
			case "y":
				v.Y = x
			case "z":
				v.Z = x
			}
		}
		return nil
	}
	return fmt.Errorf("garden.Vector3: cannot decode TOML %s", n.Kind)
}

// tomlFloat returns the value of an integer or float node.
func tomlFloat(n *unstable.Node) (float32, error) {
	s := strings.ReplaceAll(string(n.Data), "_", "")
	switch n.Kind {
	case unstable.Integer:
		i, err := strconv.ParseInt(s, 0, 64)
		return float32(i), err
	case unstable.Float:
		f, err := strconv.ParseFloat(s, 32)
		return float32(f), err
	}
	return 0, fmt.Errorf("garden.Vector3: component is a TOML %s, not a number", n.Kind)
}
