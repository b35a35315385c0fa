/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render rasterises a shape list into an RGBA image.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"shapedraw/internal/geom"
	"shapedraw/internal/shape"
)

// Options controls the model to pixel mapping.
type Options struct {
	// Scale is pixels per model unit; 0 means 1.
	Scale float64
	// FlipY maps the model's y-up space onto the image's y-down rows.
	FlipY bool
}

// handleStroke is the outline width of selection handles in pixels.
const handleStroke = 1.0

var background = color.White

// Draw paints a white background and then every complete shape bottom to top.
// Selected shapes get handle squares at their control points.
func Draw(dst *image.RGBA, shapes []*shape.Shape, opts Options) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(background), image.Point{}, draw.Src)

	r := newRasterizer(dst, opts)
	for _, s := range shapes {
		if !s.Complete() {
			continue
		}
		r.shape(s)
	}
	for _, s := range shapes {
		if s.Selected && s.Complete() {
			r.handles(s)
		}
	}
}

type rasterizer struct {
	opts    Options
	height  float64
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
}

func newRasterizer(dst *image.RGBA, opts Options) *rasterizer {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	sc := rasterx.NewScannerGV(w, h, dst, b)
	return &rasterizer{
		opts:    opts,
		height:  float64(h),
		scanner: sc,
		filler:  rasterx.NewFiller(w, h, sc),
		dasher:  rasterx.NewDasher(w, h, sc),
	}
}

// px maps a model point to pixel space.
func (r *rasterizer) px(p geom.Pt) (float64, float64) {
	x, y := p.X*r.opts.Scale, p.Y*r.opts.Scale
	if r.opts.FlipY {
		y = r.height - y
	}
	return x, y
}

func (r *rasterizer) fixedPt(p geom.Pt) fixed.Point26_6 {
	return rasterx.ToFixedP(r.px(p))
}

// pixelRect maps a model rect to a normalised pixel rect.
func (r *rasterizer) pixelRect(m geom.Rect) (minX, minY, maxX, maxY float64) {
	x0, y0 := r.px(m.Min())
	x1, y1 := r.px(m.Max())
	return min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1)
}

// outline adds the shape's path to a.
func (r *rasterizer) outline(s *shape.Shape, a rasterx.Adder) {
	switch s.Type {
	case shape.Line:
		a.Start(r.fixedPt(s.Vertices[0]))
		a.Line(r.fixedPt(s.Vertices[1]))
		a.Stop(false)
	case shape.Rect:
		minX, minY, maxX, maxY := r.pixelRect(s.Bounds())
		rasterx.AddRect(minX, minY, maxX, maxY, 0, a)
	case shape.Circle:
		minX, minY, maxX, maxY := r.pixelRect(s.Bounds())
		rx, ry := (maxX-minX)/2, (maxY-minY)/2
		if rx <= 0 || ry <= 0 {
			return
		}
		rasterx.AddEllipse(minX+rx, minY+ry, rx, ry, 0, a)
	case shape.Triangle:
		a.Start(r.fixedPt(s.Vertices[0]))
		for _, v := range s.Vertices[1:] {
			a.Line(r.fixedPt(v))
		}
		a.Stop(true)
	}
}

func (r *rasterizer) shape(s *shape.Shape) {
	if s.Type != shape.Line {
		r.filler.SetColor(s.Fill)
		r.outline(s, r.filler)
		r.filler.Draw()
		r.filler.Clear()
	}
	if w := s.LineWidth * r.opts.Scale; w > 0 {
		r.stroke(w, s.Stroke, func(a rasterx.Adder) { r.outline(s, a) })
	}
}

func (r *rasterizer) stroke(width float64, c color.Color, path func(rasterx.Adder)) {
	r.dasher.SetStroke(fixed.Int26_6(width*64), fixed.I(4),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	r.dasher.SetColor(c)
	path(r.dasher)
	r.dasher.Draw()
	r.dasher.Clear()
}

// handles draws the fixed-size squares on the shape's control points.
// Handle size does not scale with the view.
func (r *rasterizer) handles(s *shape.Shape) {
	half := geom.HandleSize / 2
	for _, p := range s.ControlPoints() {
		x, y := r.px(p)
		square := func(a rasterx.Adder) { rasterx.AddRect(x-half, y-half, x+half, y+half, 0, a) }

		r.filler.SetColor(shape.White)
		square(r.filler)
		r.filler.Draw()
		r.filler.Clear()

		r.stroke(handleStroke, shape.Red, square)
	}
}
