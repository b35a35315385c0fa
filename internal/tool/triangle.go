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

// TriangleTool edits three-vertex triangles. New triangles are drawn as an
// isosceles triangle inscribed in the rectangle spanned by the anchor and the cursor.
type TriangleTool struct {
	base
	resizing int
	anchor   geom.Pt
}

// inscribed returns base-left, base-right and apex (top centre) of r.
func inscribed(r geom.Rect) []geom.Pt {
	return []geom.Pt{
		r.Min(),
		geom.P(r.MaxX(), r.MinY()),
		geom.P(r.MidX(), r.MaxY()),
	}
}

func (t *TriangleTool) OnResizeHandle(p geom.Pt) bool {
	return handleIndex(t.shape.Vertices, geom.Floor(p)) >= 0
}

func (t *TriangleTool) PointerDown(p geom.Pt) {
	p = geom.Floor(p)
	if i := handleIndex(t.shape.Vertices, p); i >= 0 {
		t.mode = Resizing
		t.resizing = i
		return
	}
	if t.shape.ContainsPoint(p) {
		t.beginMove(p)
		return
	}
	// Vertices stay untouched until the first drag, so a bare click leaves
	// the shape incomplete and the controller discards it.
	t.mode = Creating
	t.anchor = p
}

func (t *TriangleTool) PointerDrag(p geom.Pt) {
	p = geom.Floor(p)
	switch t.mode {
	case Resizing:
		if t.resizing < len(t.shape.Vertices) {
			t.shape.Vertices[t.resizing] = p
		}
	case Moving:
		t.moveTo(p)
	case Creating:
		t.shape.Vertices = inscribed(geom.RectFromPoints(t.anchor, p))
	}
}

// PointerUp grows a freshly drawn triangle to the minimum size. Moves and
// resizes of an existing triangle are left as dragged.
func (t *TriangleTool) PointerUp(p geom.Pt) {
	p = geom.Floor(p)
	if t.mode == Creating && len(t.shape.Vertices) == 3 {
		r := geom.RectFromPoints(t.anchor, p)
		if r.W < geom.MinimumSize || r.H < geom.MinimumSize {
			r.W = math.Max(geom.MinimumSize, r.W)
			r.H = math.Max(geom.MinimumSize, r.H)
			t.shape.Vertices = inscribed(r)
		}
	}
	t.anchor = geom.Pt{}
	t.end()
}
