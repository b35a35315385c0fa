/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tool

import (
	"math"

	"shapedraw/internal/geom"
)

// corner identifies which bounding-box corner is being dragged.
type corner int

const (
	cornerNone corner = iota
	cornerMinMin
	cornerMinMax
	cornerMaxMin
	cornerMaxMax
)

// BoxTool edits rectangles and circles. Both are defined by a bounding
// diagonal and resized from any of the four corners of that box.
type BoxTool struct {
	base
	corner corner
}

func (t *BoxTool) cornerAt(p geom.Pt) corner {
	if len(t.shape.Vertices) < 2 {
		return cornerNone
	}
	// Corners() order matches the corner constants after cornerNone.
	for i, c := range t.shape.Bounds().Corners() {
		if geom.HandleRect(c).Contains(p) {
			return corner(i + 1)
		}
	}
	return cornerNone
}

func (t *BoxTool) OnResizeHandle(p geom.Pt) bool {
	return t.cornerAt(geom.Floor(p)) != cornerNone
}

func (t *BoxTool) PointerDown(p geom.Pt) {
	p = geom.Floor(p)
	if c := t.cornerAt(p); c != cornerNone {
		t.mode = Resizing
		t.corner = c
		return
	}
	t.corner = cornerNone
	if t.shape.ContainsPoint(p) {
		t.beginMove(p)
		return
	}
	t.beginCreate(p)
}

func (t *BoxTool) PointerDrag(p geom.Pt) {
	p = geom.Floor(p)
	switch t.mode {
	case Resizing:
		t.resize(p)
	case Moving:
		t.moveTo(p)
	case Creating:
		t.growTo(p)
	}
}

// resize moves the dragged corner to p while the opposite corner stays put.
// When the box would drop below the minimum size the clamped edge stops and,
// for min-side corners, the origin is pushed back so the box never inverts.
func (t *BoxTool) resize(p geom.Pt) {
	if len(t.shape.Vertices) < 2 {
		return
	}
	const minSize = geom.MinimumSize
	r := t.shape.Bounds()
	maxX, maxY := r.MaxX(), r.MaxY()

	switch t.corner {
	case cornerMinMin:
		r = geom.R(p.X, p.Y, maxX-p.X, maxY-p.Y)
		if r.W < minSize {
			r.X = maxX - minSize
			r.W = minSize
		}
		if r.H < minSize {
			r.Y = maxY - minSize
			r.H = minSize
		}
	case cornerMaxMin:
		r.Y = p.Y
		r.W = p.X - r.X
		r.H = maxY - p.Y
		if r.W < minSize {
			r.W = minSize
		}
		if r.H < minSize {
			r.H = minSize
			r.Y = maxY - minSize
		}
	case cornerMinMax:
		r.X = p.X
		r.W = maxX - p.X
		r.H = p.Y - r.Y
		if r.W < minSize {
			r.W = minSize
			r.X = maxX - minSize
		}
		if r.H < minSize {
			r.H = minSize
		}
	case cornerMaxMax:
		r.W = p.X - r.X
		r.H = p.Y - r.Y
		if r.W < minSize {
			r.W = minSize
		}
		if r.H < minSize {
			r.H = minSize
		}
	default:
		return
	}
	t.shape.Vertices[0] = r.Min()
	t.shape.Vertices[1] = r.Max()
}

// PointerUp enforces the minimum size, keeping the box's min corner fixed.
func (t *BoxTool) PointerUp(geom.Pt) {
	if len(t.shape.Vertices) > 1 {
		r := t.shape.Bounds()
		if r.W < geom.MinimumSize || r.H < geom.MinimumSize {
			r.W = math.Max(geom.MinimumSize, r.W)
			r.H = math.Max(geom.MinimumSize, r.H)
			t.shape.Vertices = []geom.Pt{r.Min(), r.Max()}
		}
	}
	t.corner = cornerNone
	t.end()
}
