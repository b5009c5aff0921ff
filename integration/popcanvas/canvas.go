// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package popcanvas

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/neopop"
)

var (
	// ErrCanvasClosed is returned when a closed canvas is used.
	ErrCanvasClosed = errors.New("popcanvas: canvas is closed")

	// ErrInvalidDimensions is returned for non-positive sizes.
	ErrInvalidDimensions = errors.New("popcanvas: invalid dimensions")

	// ErrNilProvider is returned when New gets a nil DeviceProvider.
	ErrNilProvider = errors.New("popcanvas: nil DeviceProvider")

	// ErrNoTextureCreator is returned when the draw target cannot create
	// textures.
	ErrNoTextureCreator = errors.New("popcanvas: draw target has no texture creator")

	// ErrNotTexture is returned when an uploaded texture cannot be drawn.
	ErrNotTexture = errors.New("popcanvas: value is not a gpucontext.Texture")
)

type destroyer interface {
	Destroy()
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithBackground sets the color the canvas is cleared to before each
// Render. The default is transparent.
func WithBackground(c gg.RGBA) Option {
	return func(cv *Canvas) {
		cv.background = c
	}
}

// WithScale sets the pixels per point used by Render. Non-positive values
// are ignored.
func WithScale(s float64) Option {
	return func(cv *Canvas) {
		if s > 0 {
			cv.scale = s
		}
	}
}

// Canvas rasterizes neopop display lists and keeps a GPU texture of the
// result.
type Canvas struct {
	ctx        *gg.Context
	provider   gpucontext.DeviceProvider
	background gg.RGBA
	scale      float64

	texture any
	stale   any // previous texture, destroyed once the GPU is idle
	dirty   bool
	resized bool
	width   int
	height  int
	frames  int
	closed  bool
}

// New creates a canvas of width×height pixels for provider.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...Option) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if err := gg.SetAcceleratorDeviceProvider(provider); err != nil {
		neopop.Logger().Debug("popcanvas: accelerator keeps its own device", slog.Any("err", err))
	}
	c := &Canvas{
		ctx:        gg.NewContext(width, height),
		provider:   provider,
		background: gg.Transparent,
		scale:      1,
		width:      width,
		height:     height,
		dirty:      true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Frames returns how many times Render has run.
func (c *Canvas) Frames() int { return c.frames }

// IsDirty reports whether the pixels changed since the last upload.
func (c *Canvas) IsDirty() bool { return c.dirty }

// Provider returns the canvas's device provider, or nil once closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Render clears the canvas and draws lists in order. It returns the first
// drawing error; the remaining lists are still drawn.
func (c *Canvas) Render(lists ...neopop.DisplayList) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.ctx.ClearWithColor(c.background)
	c.ctx.Push()
	c.ctx.Scale(c.scale, c.scale)
	var first error
	for i := range lists {
		if err := lists[i].Draw(c.ctx); err != nil && first == nil {
			first = err
		}
	}
	c.ctx.Pop()
	c.frames++
	c.dirty = true
	return first
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("popcanvas: resize: %w", err)
	}
	c.width, c.height = width, height
	c.resized = true
	c.dirty = true
	return nil
}

// upload holds pixels waiting for a texture creator.
type upload struct {
	width, height int
	data          []byte
}

// Flush prepares the texture. Before the first RenderTo, and after a
// resize, it returns pixels waiting for upload.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.resized {
		if c.texture != nil {
			destroy(c.stale)
			c.stale = c.texture
			c.texture = nil
		}
		c.resized = false
	}
	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	if err := c.ctx.FlushGPU(); err != nil {
		neopop.Logger().Debug("popcanvas: gpu flush failed, using cpu pixels", slog.Any("err", err))
	}
	data := c.ctx.ResizeTarget().Data()

	if c.texture == nil {
		c.texture = &upload{width: c.width, height: c.height, data: data}
		c.dirty = false
		return c.texture, nil
	}
	if u, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := u.UpdateData(data); err != nil {
			return nil, fmt.Errorf("popcanvas: texture update: %w", err)
		}
	}
	c.dirty = false
	return c.texture, nil
}

// RenderTo uploads the canvas if needed and draws it at (x, y).
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}
	tex, err := c.Flush()
	if err != nil {
		return err
	}
	if u, ok := tex.(*upload); ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		created, err := creator.NewTextureFromRGBA(u.width, u.height, u.data)
		if err != nil {
			return fmt.Errorf("popcanvas: create texture: %w", err)
		}
		// gg pixels are premultiplied.
		if p, ok := created.(interface{ SetPremultiplied(bool) }); ok {
			p.SetPremultiplied(true)
		}
		c.texture = created
		tex = created
		destroy(c.stale)
		c.stale = nil
	}
	gt, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrNotTexture
	}
	return dc.DrawTexture(gt, x, y)
}

// Close releases the textures and the drawing context. It is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	destroy(c.stale)
	destroy(c.texture)
	c.stale, c.texture = nil, nil
	err := c.ctx.Close()
	c.ctx = nil
	c.provider = nil
	return err
}

func destroy(tex any) {
	if d, ok := tex.(destroyer); ok {
		d.Destroy()
	}
}
