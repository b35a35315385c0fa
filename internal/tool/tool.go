/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package tool turns raw pointer gestures into vertex edits on a single shape.
//
// A tool is bound to one shape for the lifetime of an interaction. It never
// owns the shape: the canvas controller does, and simply lends it to the tool.
// Every gesture runs Idle -> (down) -> Creating|Moving|Resizing -> (up) -> Idle.
package tool

import (
	"fmt"

	"shapedraw/internal/geom"
	"shapedraw/internal/shape"
)

// Mode is the interaction state of a tool within one gesture.
type Mode int

const (
	Idle Mode = iota
	Creating
	Moving
	Resizing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Creating:
		return "creating"
	case Moving:
		return "moving"
	case Resizing:
		return "resizing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Tool is implemented once per shape type.
type Tool interface {
	Shape() *shape.Shape
	Mode() Mode
	PointerDown(p geom.Pt)
	PointerDrag(p geom.Pt)
	PointerUp(p geom.Pt)
	// Magnify extends the shape along its first two vertices by 15*m per end.
	Magnify(m float64)
	// OnResizeHandle reports whether p falls inside one of the shape's handle squares.
	OnResizeHandle(p geom.Pt) bool
}

var (
	_ Tool = (*LineTool)(nil)
	_ Tool = (*BoxTool)(nil)
	_ Tool = (*TriangleTool)(nil)
)

// ForShape binds a fresh tool to s. An unknown shape type is a programming error.
func ForShape(s *shape.Shape) Tool {
	switch s.Type {
	case shape.Line:
		return &LineTool{base: base{shape: s}}
	case shape.Rect, shape.Circle:
		return &BoxTool{base: base{shape: s}}
	case shape.Triangle:
		return &TriangleTool{base: base{shape: s}}
	}
	panic(fmt.Sprintf("tool: no tool for shape type %v", s.Type))
}

// magnifyStep is the per-end extension for a magnification of 1.
const magnifyStep = 15.0

// base carries the state every tool variant shares.
type base struct {
	shape *shape.Shape
	mode  Mode
	// offsets from the grab point to each vertex, captured when a move starts
	offsets []geom.Pt
}

func (b *base) Shape() *shape.Shape { return b.shape }
func (b *base) Mode() Mode          { return b.mode }

func (b *base) beginMove(p geom.Pt) {
	b.mode = Moving
	b.offsets = b.offsets[:0]
	for _, v := range b.shape.Vertices {
		b.offsets = append(b.offsets, p.Sub(v))
	}
}

func (b *base) moveTo(p geom.Pt) {
	for i := range b.shape.Vertices {
		if i < len(b.offsets) {
			o := b.offsets[i]
			b.shape.Vertices[i] = geom.P(p.X-o.X, p.Y-o.Y)
		}
	}
}

func (b *base) beginCreate(p geom.Pt) {
	b.mode = Creating
	b.shape.Vertices = []geom.Pt{p}
}

// growTo makes the second vertex track the cursor while creating.
func (b *base) growTo(p geom.Pt) {
	if len(b.shape.Vertices) < 2 {
		b.shape.Vertices = append(b.shape.Vertices, p)
		return
	}
	b.shape.Vertices[1] = p
}

func (b *base) end() {
	b.mode = Idle
	b.offsets = b.offsets[:0]
}

// handleIndex returns the index of the first point whose handle contains p, or -1.
func handleIndex(points []geom.Pt, p geom.Pt) int {
	for i, c := range points {
		if geom.HandleRect(c).Contains(p) {
			return i
		}
	}
	return -1
}

// Magnify is shared by every variant; triangles ignore it.
func (b *base) Magnify(m float64) {
	s := b.shape
	if s.Type == shape.Triangle || len(s.Vertices) < 2 {
		return
	}
	p1, p2 := s.Vertices[0], s.Vertices[1]
	if p1 == p2 {
		return
	}

	// line through p1 and p2 as a*x + b*y + c = 0
	a := p2.Y - p1.Y
	bb := p1.X - p2.X
	c := p2.X*p1.Y - p1.X*p2.Y
	k := magnifyStep * m

	extend := func(lo, hi *float64) {
		if *lo <= *hi {
			*lo -= k
			*hi += k
		} else {
			*lo += k
			*hi -= k
		}
	}

	switch {
	case a == 0:
		extend(&p1.X, &p2.X)
	case bb == 0:
		extend(&p1.Y, &p2.Y)
	default:
		extend(&p1.X, &p2.X)
		p1.Y = -(a*p1.X + c) / bb
		p2.Y = -(a*p2.X + c) / bb
	}
	s.Vertices[0] = p1
	s.Vertices[1] = p2
}
