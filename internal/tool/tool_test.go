/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tool

import (
	"testing"

	"shapedraw/internal/geom"
	"shapedraw/internal/shape"
)

func gesture(tl Tool, pts ...geom.Pt) {
	tl.PointerDown(pts[0])
	for _, p := range pts[1:] {
		tl.PointerDrag(p)
	}
	tl.PointerUp(pts[len(pts)-1])
}

func assertVertices(t *testing.T, s *shape.Shape, want ...geom.Pt) {
	t.Helper()
	if len(s.Vertices) != len(want) {
		t.Fatalf("got %d vertices %+v, want %+v", len(s.Vertices), s.Vertices, want)
	}
	for i := range want {
		if s.Vertices[i] != want[i] {
			t.Fatalf("vertex %d = %+v, want %+v (all: %+v)", i, s.Vertices[i], want[i], s.Vertices)
		}
	}
}

func TestForShapePicksVariant(t *testing.T) {
	if _, ok := ForShape(shape.New(shape.Line)).(*LineTool); !ok {
		t.Fatalf("line should get a LineTool")
	}
	if _, ok := ForShape(shape.New(shape.Rect)).(*BoxTool); !ok {
		t.Fatalf("rect should get a BoxTool")
	}
	if _, ok := ForShape(shape.New(shape.Circle)).(*BoxTool); !ok {
		t.Fatalf("circle should get a BoxTool")
	}
	if _, ok := ForShape(shape.New(shape.Triangle)).(*TriangleTool); !ok {
		t.Fatalf("triangle should get a TriangleTool")
	}
}

func TestForShapePanicsOnUnknownType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown shape type")
		}
	}()
	s := shape.New(shape.Line)
	s.Type = shape.Type(99)
	ForShape(s)
}

func TestLineCreateMoveResize(t *testing.T) {
	s := shape.New(shape.Line)
	tl := ForShape(s)

	tl.PointerDown(geom.P(0.7, 0.2))
	if tl.Mode() != Creating {
		t.Fatalf("mode = %v, want creating", tl.Mode())
	}
	tl.PointerDrag(geom.P(50, 0))
	tl.PointerUp(geom.P(50, 0))
	assertVertices(t, s, geom.P(0, 0), geom.P(50, 0))
	if tl.Mode() != Idle {
		t.Fatalf("mode after up = %v", tl.Mode())
	}

	tl.PointerDown(geom.P(25, 2))
	if tl.Mode() != Moving {
		t.Fatalf("mode = %v, want moving", tl.Mode())
	}
	tl.PointerDrag(geom.P(35, 12))
	tl.PointerUp(geom.P(35, 12))
	assertVertices(t, s, geom.P(10, 10), geom.P(60, 10))

	if !tl.OnResizeHandle(geom.P(62, 8)) {
		t.Fatalf("point near endpoint should be on a handle")
	}
	tl.PointerDown(geom.P(60, 10))
	if tl.Mode() != Resizing {
		t.Fatalf("mode = %v, want resizing", tl.Mode())
	}
	tl.PointerDrag(geom.P(70, 30))
	tl.PointerUp(geom.P(70, 30))
	assertVertices(t, s, geom.P(10, 10), geom.P(70, 30))
}

func TestBareClickLeavesShapeIncomplete(t *testing.T) {
	for _, typ := range shape.Types {
		s := shape.New(typ)
		tl := ForShape(s)
		tl.PointerDown(geom.P(5, 5))
		tl.PointerUp(geom.P(5, 5))
		if s.Complete() {
			t.Fatalf("%s: bare click produced a complete shape %+v", typ, s.Vertices)
		}
	}
}

func TestTriangleInscribedInDragRect(t *testing.T) {
	s := shape.New(shape.Triangle)
	gesture(ForShape(s), geom.P(0, 0), geom.P(40, 20))
	assertVertices(t, s, geom.P(0, 0), geom.P(40, 0), geom.P(20, 20))

	// dragging towards the origin still yields an upright triangle
	s = shape.New(shape.Triangle)
	gesture(ForShape(s), geom.P(40, 20), geom.P(0, 0))
	assertVertices(t, s, geom.P(0, 0), geom.P(40, 0), geom.P(20, 20))
}

func TestTriangleCreationEnforcesMinimumSize(t *testing.T) {
	s := shape.New(shape.Triangle)
	gesture(ForShape(s), geom.P(0, 0), geom.P(4, 3))
	assertVertices(t, s, geom.P(0, 0), geom.P(10, 0), geom.P(5, 10))
}

func TestTriangleVertexResizeIsNotClamped(t *testing.T) {
	s := shape.New(shape.Triangle)
	s.Vertices = []geom.Pt{geom.P(0, 0), geom.P(40, 0), geom.P(20, 20)}
	gesture(ForShape(s), geom.P(20, 20), geom.P(20, 2))
	assertVertices(t, s, geom.P(0, 0), geom.P(40, 0), geom.P(20, 2))
}

func TestBoxCreationEnforcesMinimumSize(t *testing.T) {
	for _, typ := range []shape.Type{shape.Rect, shape.Circle} {
		s := shape.New(typ)
		gesture(ForShape(s), geom.P(0, 0), geom.P(3, 4))
		assertVertices(t, s, geom.P(0, 0), geom.P(10, 10))
	}
}

func TestBoxResizeNeverBelowMinimum(t *testing.T) {
	s := shape.New(shape.Rect)
	s.Vertices = []geom.Pt{geom.P(0, 0), geom.P(100, 100)}
	tl := ForShape(s)

	tl.PointerDown(geom.P(100, 100))
	if tl.Mode() != Resizing {
		t.Fatalf("mode = %v, want resizing", tl.Mode())
	}
	tl.PointerDrag(geom.P(5, 5))
	assertVertices(t, s, geom.P(0, 0), geom.P(10, 10))
	tl.PointerUp(geom.P(5, 5))
	assertVertices(t, s, geom.P(0, 0), geom.P(10, 10))

	s.Vertices = []geom.Pt{geom.P(0, 0), geom.P(100, 100)}
	tl.PointerDown(geom.P(0, 0))
	tl.PointerDrag(geom.P(95, 95))
	assertVertices(t, s, geom.P(90, 90), geom.P(100, 100))
	tl.PointerUp(geom.P(95, 95))

	s.Vertices = []geom.Pt{geom.P(0, 0), geom.P(100, 100)}
	gesture(tl, geom.P(100, 0), geom.P(50, 98))
	assertVertices(t, s, geom.P(0, 90), geom.P(50, 100))

	s.Vertices = []geom.Pt{geom.P(0, 0), geom.P(100, 100)}
	gesture(tl, geom.P(0, 100), geom.P(98, 50))
	assertVertices(t, s, geom.P(90, 0), geom.P(100, 50))
}

func TestBoxMove(t *testing.T) {
	s := shape.New(shape.Circle)
	s.Vertices = []geom.Pt{geom.P(0, 0), geom.P(100, 100)}
	gesture(ForShape(s), geom.P(50, 50), geom.P(60, 45))
	assertVertices(t, s, geom.P(10, -5), geom.P(110, 95))
}

func TestMagnify(t *testing.T) {
	l := shape.New(shape.Line)
	l.Vertices = []geom.Pt{geom.P(0, 0), geom.P(100, 0)}
	ForShape(l).Magnify(1)
	assertVertices(t, l, geom.P(-15, 0), geom.P(115, 0))

	l.Vertices = []geom.Pt{geom.P(0, 0), geom.P(0, 100)}
	ForShape(l).Magnify(1)
	assertVertices(t, l, geom.P(0, -15), geom.P(0, 115))

	l.Vertices = []geom.Pt{geom.P(10, 10), geom.P(0, 0)}
	ForShape(l).Magnify(1)
	assertVertices(t, l, geom.P(25, 25), geom.P(-15, -15))

	r := shape.New(shape.Rect)
	r.Vertices = []geom.Pt{geom.P(0, 0), geom.P(20, 0)}
	ForShape(r).Magnify(-0.5)
	assertVertices(t, r, geom.P(7.5, 0), geom.P(12.5, 0))
}

func TestMagnifyNoOps(t *testing.T) {
	tr := shape.New(shape.Triangle)
	tr.Vertices = []geom.Pt{geom.P(0, 0), geom.P(40, 0), geom.P(20, 20)}
	ForShape(tr).Magnify(2)
	assertVertices(t, tr, geom.P(0, 0), geom.P(40, 0), geom.P(20, 20))

	l := shape.New(shape.Line)
	l.Vertices = []geom.Pt{geom.P(3, 3), geom.P(3, 3)}
	ForShape(l).Magnify(2)
	assertVertices(t, l, geom.P(3, 3), geom.P(3, 3))

	l.Vertices = []geom.Pt{geom.P(3, 3)}
	ForShape(l).Magnify(2)
	assertVertices(t, l, geom.P(3, 3))
}
