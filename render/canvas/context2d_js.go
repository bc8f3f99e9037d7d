// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"syscall/js"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Context2D paints to an HTML canvas element through its 2D context.
// Drawing is in CSS pixels; the backing store is scaled by the
// device pixel ratio.
type Context2D struct {
	Canvas js.Value
	ctx    js.Value
	ratio  float64
}

// NewContext2D returns a painter for the given canvas element, or
// an error if it has no 2D context.
func NewContext2D(canvas js.Value) (*Context2D, error) {
	ctx := canvas.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, fmt.Errorf("canvas: no 2d context")
	}
	return &Context2D{Canvas: canvas, ctx: ctx, ratio: 1}, nil
}

func cssColor(c color.RGBA, opacity float32) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, opacity*float32(c.A)/255)
}

func (p *Context2D) Clear(size image.Point, c color.RGBA) {
	ratio := 1.0
	if dpr := js.Global().Get("devicePixelRatio"); dpr.Truthy() {
		ratio = dpr.Float()
	}
	w, h := int(float64(size.X)*ratio), int(float64(size.Y)*ratio)
	if p.Canvas.Get("width").Int() != w || p.Canvas.Get("height").Int() != h {
		p.Canvas.Set("width", w)
		p.Canvas.Set("height", h)
	}
	p.ratio = ratio
	p.ctx.Call("setTransform", ratio, 0, 0, ratio, 0, 0)
	p.ctx.Set("fillStyle", colors.AsHex(c))
	p.ctx.Call("fillRect", 0, 0, size.X, size.Y)
	p.ctx.Set("lineCap", "round")
	p.ctx.Set("lineJoin", "round")
}

func (p *Context2D) path(pts []math32.Vector2) {
	p.ctx.Call("beginPath")
	p.ctx.Call("moveTo", pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.ctx.Call("lineTo", pt.X, pt.Y)
	}
}

func (p *Context2D) Polyline(pts []math32.Vector2, width float32, c color.RGBA, opacity float32) {
	p.path(pts)
	p.ctx.Set("strokeStyle", cssColor(c, opacity))
	p.ctx.Set("lineWidth", width)
	p.ctx.Call("stroke")
}

func (p *Context2D) Polygon(pts []math32.Vector2, c color.RGBA, opacity float32) {
	p.path(pts)
	p.ctx.Call("closePath")
	p.ctx.Set("fillStyle", cssColor(c, opacity))
	p.ctx.Call("fill")
}

func (p *Context2D) Circle(center math32.Vector2, radius float32, c color.RGBA, opacity float32) {
	p.ctx.Call("beginPath")
	p.ctx.Call("arc", center.X, center.Y, max(radius, 0.5), 0, 2*math32.Pi)
	p.ctx.Set("fillStyle", cssColor(c, opacity))
	p.ctx.Call("fill")
}
