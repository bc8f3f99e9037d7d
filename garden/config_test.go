// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 520, cfg.Height)
	assert.Equal(t, float32(0.6), cfg.Scale)
	assert.Equal(t, float32(-0.12), cfg.OffsetY)
	assert.Equal(t, float32(66), cfg.Camera.FOV)
	assert.Equal(t, math32.Vec3(6, 2.7, 6), cfg.Camera.Position.V())
	assert.Equal(t, 90, cfg.Nodes.Count)
	assert.Equal(t, 2, cfg.Nodes.Neighbors)
	assert.Equal(t, 7, cfg.Strands.Count)
	assert.Equal(t, 38, cfg.Strands.Samples)
	assert.Equal(t, 1, cfg.Links.PerTip)
	assert.Equal(t, 40, cfg.Links.Samples)
	assert.Equal(t, float32(2.35), cfg.Framing.Radius)
}

func TestNormalizePartial(t *testing.T) {
	cfg := Config{Height: 400}.Normalize()
	def := DefaultConfig()
	assert.Equal(t, 400, cfg.Height)
	assert.Equal(t, def.Scale, cfg.Scale)
	assert.Equal(t, def.Nodes, cfg.Nodes)
	assert.Equal(t, def.Camera, cfg.Camera)

	cfg = Config{Camera: CameraConfig{FOV: 38}, Nodes: NodesConfig{Count: 38}}.Normalize()
	assert.Equal(t, float32(38), cfg.Camera.FOV)
	assert.Equal(t, def.Camera.Position, cfg.Camera.Position)
	assert.Equal(t, 38, cfg.Nodes.Count)
	assert.Equal(t, def.Nodes.Radius, cfg.Nodes.Radius)
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Config{
		Height:  -10,
		Scale:   -1,
		Camera:  CameraConfig{FOV: 400},
		Nodes:   NodesConfig{Count: -5, Radius: -2, Neighbors: -1, ScaleJitter: 3},
		Strands: StrandsConfig{Samples: 1},
		Links:   LinksConfig{PerTip: -2},
	}.Normalize()
	def := DefaultConfig()
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, def.Scale, cfg.Scale)
	assert.Equal(t, def.Camera.FOV, cfg.Camera.FOV)
	assert.Equal(t, def.Nodes.Count, cfg.Nodes.Count)
	assert.Equal(t, def.Nodes.Radius, cfg.Nodes.Radius)
	assert.Equal(t, def.Nodes.Neighbors, cfg.Nodes.Neighbors)
	assert.Equal(t, float32(1), cfg.Nodes.ScaleJitter)
	assert.Equal(t, def.Strands.Samples, cfg.Strands.Samples)
	assert.Equal(t, def.Links.PerTip, cfg.Links.PerTip)
}

func TestNormalizePosition(t *testing.T) {
	cfg := Config{Camera: CameraConfig{Position: Vector3{Y: 0.6, Z: 8}}}.Normalize()
	assert.Equal(t, math32.Vec3(0, 0.6, 8), cfg.Camera.Position.V())

	cfg = Config{}.Normalize()
	assert.Equal(t, DefaultConfig().Camera.Position, cfg.Camera.Position)
}

func TestNormalizeSwitches(t *testing.T) {
	cfg := Config{Nodes: NodesConfig{Neighbors: 0}, Links: LinksConfig{PerTip: 0}}.Normalize()
	assert.Equal(t, 2, cfg.Nodes.Neighbors)
	assert.Equal(t, 1, cfg.Links.PerTip)

	cfg = Config{NoEdges: true, NoLinks: true, Nodes: NodesConfig{Neighbors: 3}}.Normalize()
	assert.Equal(t, 0, cfg.Nodes.Neighbors)
	assert.Equal(t, 0, cfg.Links.PerTip)
}

func TestVector3Forms(t *testing.T) {
	want := math32.Vec3(0, 2.5, 6)
	cases := map[string]string{
		"array.toml":  "[Camera]\nPosition = [0, 2.5, 6]\n",
		"inline.toml": "[Camera]\nPosition = {X = 0, Y = 2.5, Z = 6}\n",
		"table.toml":  "[Camera.Position]\nX = 0\nY = 2.5\nZ = 6\n",
		"array.yaml":  "camera:\n  position: [0, 2.5, 6]\n",
		"map.yaml":    "camera:\n  position: {x: 0, y: 2.5, z: 6}\n",
		"array.json":  `{"camera": {"position": [0, 2.5, 6]}}`,
		"object.json": `{"camera": {"position": {"x": 0, "y": 2.5, "z": 6}}}`,
	}
	for name, content := range cases {
		cfg, err := OpenConfig(writeFile(t, name, content))
		if assert.NoError(t, err, name) {
			assert.Equal(t, want, cfg.Camera.Position.V(), name)
		}
	}

	short := map[string]string{
		"short.toml": "[Camera]\nPosition = [1, 2]\n",
		"short.yaml": "camera:\n  position: [1, 2]\n",
		"short.json": `{"camera": {"position": [1, 2]}}`,
	}
	for name, content := range short {
		_, err := OpenConfig(writeFile(t, name, content))
		assert.Error(t, err, name)
	}
}

func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpenConfig(t *testing.T) {
	fn := writeFile(t, "garden.toml", `
Height = 400
Background = "#20262c"
Unknown = "ignored"

[Camera]
FOV = 38

[Nodes]
Count = 38
`)
	cfg, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Height)
	assert.Equal(t, "#20262c", cfg.Background)
	assert.Equal(t, float32(38), cfg.Camera.FOV)
	assert.Equal(t, 38, cfg.Nodes.Count)

	fn = writeFile(t, "garden.yaml", "height: 300\nscale: 0.8\nextra: true\nstrands:\n  count: 6\n")
	cfg, err = OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, float32(0.8), cfg.Scale)
	assert.Equal(t, 6, cfg.Strands.Count)

	fn = writeFile(t, "garden.json", `{"height": 200, "camera": {"fov": 50}, "what": 1}`)
	cfg, err = OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, float32(50), cfg.Camera.FOV)
}

func TestOpenConfigErrors(t *testing.T) {
	_, err := OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	_, err = OpenConfig(writeFile(t, "garden.ini", "x=1"))
	assert.Error(t, err)
	_, err = OpenConfig(writeFile(t, "bad.toml", "Height = ["))
	assert.Error(t, err)
}
