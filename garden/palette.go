// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
)

// Palette holds the colors of the scene elements.
type Palette struct {
	Background color.RGBA
	Node       color.RGBA
	Strand     color.RGBA
	Link       color.RGBA
	LinkDim    color.RGBA
	Base       color.RGBA
	Shadow     color.RGBA
}

// DefaultBackground is used when neither the config nor the
// page provide a background color.
const DefaultBackground = "#0f1722"

// DefaultPalette returns the standard palette.
func DefaultPalette() Palette {
	return Palette{
		Background: errors.Log1(colors.FromHex(DefaultBackground)),
		Node:       errors.Log1(colors.FromHex("#dfd0b8")),
		Strand:     errors.Log1(colors.FromHex("#c7b8a7")),
		Link:       errors.Log1(colors.FromHex("#dfd0b8")),
		LinkDim:    errors.Log1(colors.FromHex("#9aa2a6")),
		Base:       errors.Log1(colors.FromHex("#5a6478")),
		Shadow:     color.RGBA{0, 0, 0, 41},
	}
}

// ResolveBackground picks the backdrop color: the configured one if it
// parses, else the page background, else [DefaultBackground].
func ResolveBackground(configured, page string) color.RGBA {
	for _, s := range []string{configured, page} {
		if s == "" {
			continue
		}
		c, err := colors.FromString(s)
		if err == nil {
			return c
		}
		errors.Log(err)
	}
	return DefaultPalette().Background
}
