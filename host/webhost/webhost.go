// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package webhost mounts gardens into DOM elements of a web page,
// drawing to a canvas 2D context and driven by requestAnimationFrame.
//
// [Export] publishes mountGarden(element, options) and
// unmountGarden(element) as global JavaScript functions.
package webhost

import (
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"syscall/js"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/datagarden/garden"
	"cogentcore.org/datagarden/host/pagestyle"
	"cogentcore.org/datagarden/mount"
	"cogentcore.org/datagarden/render"
	"cogentcore.org/datagarden/render/canvas"
)

// idAttr is the element attribute that identifies a mounted container.
const idAttr = "data-garden"

// Container is a DOM element hosting a garden.
type Container struct {
	Element js.Value

	id        string
	canvas    js.Value
	listeners []listener
	height    int

	// pointer is the last pointer position of a drag in progress.
	pointer  [2]float64
	dragging bool
}

// listener is an event listener added to the canvas.
type listener struct {
	event string
	fn    js.Func
}

// listen adds an event listener to the canvas.
func (c *Container) listen(event string, fn func(ev js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	c.canvas.Call("addEventListener", event, f)
	c.listeners = append(c.listeners, listener{event, f})
}

// unlisten removes and releases all event listeners.
func (c *Container) unlisten() {
	for _, l := range c.listeners {
		if c.canvas.Truthy() {
			c.canvas.Call("removeEventListener", l.event, l.fn)
		}
		l.fn.Release()
	}
	c.listeners = nil
}

func (c *Container) Size() image.Point {
	rect := c.Element.Call("getBoundingClientRect")
	w := int(math.Round(rect.Get("width").Float()))
	h := int(math.Round(rect.Get("height").Float()))
	if h <= 0 {
		h = c.height
	}
	return image.Pt(w, h)
}

func (c *Container) ReducedMotion() bool {
	mm := js.Global().Get("matchMedia")
	if mm.Type() != js.TypeFunction {
		return false
	}
	return js.Global().Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Truthy()
}

func (c *Container) PageBackground() string {
	doc := js.Global().Get("document")
	root := doc.Get("documentElement")
	v := js.Global().Call("getComputedStyle", root).Call("getPropertyValue", pagestyle.BackgroundVar).String()
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	styles := doc.Call("querySelectorAll", "style")
	var sb strings.Builder
	for i := range styles.Length() {
		sb.WriteString(styles.Index(i).Get("textContent").String())
		sb.WriteByte('\n')
	}
	return pagestyle.Background(sb.String())
}

func (c *Container) NewSurface(size image.Point) (render.Surface, error) {
	doc := js.Global().Get("document")
	cv := doc.Call("createElement", "canvas")
	st := cv.Get("style")
	st.Set("display", "block")
	st.Set("width", "100%")
	st.Set("height", strconv.Itoa(size.Y)+"px")
	st.Set("touchAction", "none")
	painter, err := canvas.NewContext2D(cv)
	if err != nil {
		return nil, err
	}
	c.Element.Call("appendChild", cv)
	c.canvas = cv
	return &surface{Surface: canvas.New(painter, size), container: c}, nil
}

func (c *Container) Scheduler() mount.Scheduler {
	return animationFrames{}
}

// surface removes its canvas from the page when released.
type surface struct {
	*canvas.Surface
	container *Container
}

func (s *surface) Release() {
	if s.Released() {
		return
	}
	s.Surface.Release()
	cv := s.container.canvas
	if cv.Truthy() && cv.Get("parentNode").Truthy() {
		cv.Get("parentNode").Call("removeChild", cv)
	}
	s.container.canvas = js.Undefined()
}

// animationFrames schedules frames with requestAnimationFrame.
type animationFrames struct{}

func (animationFrames) RequestFrame(fn mount.FrameFunc) func() {
	var cb js.Func
	done := false
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		done = true
		cb.Release()
		now := time.Duration(args[0].Float() * float64(time.Millisecond))
		fn(now)
		return nil
	})
	id := js.Global().Call("requestAnimationFrame", cb)
	return func() {
		if done {
			return
		}
		done = true
		js.Global().Call("cancelAnimationFrame", id)
		cb.Release()
	}
}

// Host owns the gardens mounted on a page.
type Host struct {
	Registry *mount.Registry

	containers map[string]*Container
	nextID     int
}

// NewHost returns a new host with no gardens.
func NewHost() *Host {
	return &Host{Registry: mount.NewRegistry(), containers: map[string]*Container{}}
}

// Mount mounts a garden on the given element.
func (h *Host) Mount(el js.Value, cfg garden.Config) error {
	if !el.Truthy() {
		return fmt.Errorf("webhost: mount: no element")
	}
	h.Unmount(el)
	h.nextID++
	c := &Container{Element: el, id: strconv.Itoa(h.nextID), height: cfg.Normalize().Height}
	if err := h.Registry.Mount(c, cfg); err != nil {
		return err
	}
	el.Call("setAttribute", idAttr, c.id)
	h.handleEvents(c)
	h.containers[c.id] = c
	return nil
}

// Unmount unmounts the garden on the given element, if any.
func (h *Host) Unmount(el js.Value) {
	if !el.Truthy() {
		return
	}
	id := el.Call("getAttribute", idAttr)
	if id.Type() != js.TypeString {
		return
	}
	c, ok := h.containers[id.String()]
	if !ok {
		return
	}
	delete(h.containers, c.id)
	c.unlisten()
	h.Registry.Unmount(c)
	el.Call("removeAttribute", idAttr)
}

// handleEvents nudges the garden of c on clicks and rotates it
// on pointer drags.
func (h *Host) handleEvents(c *Container) {
	scene := func() *garden.Scene { return h.Registry.Scene(c) }
	c.listen("click", func(ev js.Value) {
		if sc := scene(); sc != nil {
			sc.Nudge()
		}
	})
	c.listen("pointerdown", func(ev js.Value) {
		c.dragging = true
		c.pointer = [2]float64{ev.Get("clientX").Float(), ev.Get("clientY").Float()}
		c.canvas.Call("setPointerCapture", ev.Get("pointerId"))
	})
	c.listen("pointermove", func(ev js.Value) {
		if !c.dragging {
			return
		}
		x, y := ev.Get("clientX").Float(), ev.Get("clientY").Float()
		if sc := scene(); sc != nil {
			sc.Drag(float32(x-c.pointer[0]), float32(y-c.pointer[1]))
		}
		c.pointer = [2]float64{x, y}
	})
	end := func(ev js.Value) {
		c.dragging = false
		if sc := scene(); sc != nil {
			sc.EndDrag()
		}
	}
	c.listen("pointerup", end)
	c.listen("pointercancel", end)
}

// ParseOptions reads a garden configuration from a JavaScript
// options object. Missing or zero fields take their defaults.
func ParseOptions(v js.Value) (garden.Config, error) {
	var cfg garden.Config
	if v.Type() != js.TypeObject {
		return cfg, nil
	}
	s := js.Global().Get("JSON").Call("stringify", v).String()
	if err := json.Unmarshal([]byte(s), &cfg); err != nil {
		return cfg, fmt.Errorf("webhost: options: %w", err)
	}
	return cfg, nil
}

// Export publishes the mountGarden and unmountGarden global functions.
func (h *Host) Export() {
	js.Global().Set("mountGarden", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return "mountGarden: missing element"
		}
		var opts js.Value
		if len(args) > 1 {
			opts = args[1]
		}
		cfg, err := ParseOptions(opts)
		if errors.Log(err) != nil {
			return err.Error()
		}
		if err := h.Mount(args[0], cfg); err != nil {
			slog.Error("mountGarden", "err", err)
			return err.Error()
		}
		return nil
	}))
	js.Global().Set("unmountGarden", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			h.Unmount(args[0])
		}
		return nil
	}))
}
