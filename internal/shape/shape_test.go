/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import (
	"errors"
	"image/color"
	"testing"

	"shapedraw/internal/geom"
)

func TestDefaultsPerType(t *testing.T) {
	if l := New(Line); l.LineWidth != 2 || l.Stroke != Black {
		t.Fatalf("line defaults wrong: %+v", l.Style)
	}
	if r := New(Rect); r.Fill != Orange || r.LineWidth != 1 {
		t.Fatalf("rect defaults wrong: %+v", r.Style)
	}
	if tr := New(Triangle); tr.Fill != Cyan {
		t.Fatalf("triangle defaults wrong: %+v", tr.Style)
	}
	if c := New(Circle); c.Fill != Green {
		t.Fatalf("circle defaults wrong: %+v", c.Style)
	}
}

func TestIncompleteShapesNeverContainPoints(t *testing.T) {
	probes := []geom.Pt{geom.P(0, 0), geom.P(5, 5), geom.P(-3, 7)}
	for _, typ := range Types {
		for _, verts := range [][]geom.Pt{nil, {geom.P(5, 5)}} {
			s := New(typ)
			s.Vertices = verts
			for _, p := range probes {
				if s.ContainsPoint(p) {
					t.Fatalf("%s with %d vertices contains %+v", typ, len(verts), p)
				}
			}
		}
	}
}

func TestLineHitThreshold(t *testing.T) {
	s := New(Line)
	s.Vertices = []geom.Pt{geom.P(0, 0), geom.P(100, 0)}
	if !s.ContainsPoint(geom.P(50, 6)) {
		t.Fatalf("(50,6) has distance² 36 and should hit")
	}
	if s.ContainsPoint(geom.P(50, 8)) {
		t.Fatalf("(50,8) has distance² 64 and should miss")
	}
}

func TestRectTriangleCircleContainment(t *testing.T) {
	r := New(Rect)
	r.Vertices = []geom.Pt{geom.P(40, 30), geom.P(10, 10)}
	if !r.ContainsPoint(geom.P(10, 10)) || !r.ContainsPoint(geom.P(25, 20)) || r.ContainsPoint(geom.P(41, 20)) {
		t.Fatalf("rect containment wrong")
	}

	tr := New(Triangle)
	tr.Vertices = []geom.Pt{geom.P(0, 0), geom.P(40, 0), geom.P(20, 20)}
	if !tr.ContainsPoint(geom.P(20, 10)) || tr.ContainsPoint(geom.P(2, 18)) {
		t.Fatalf("triangle containment wrong")
	}
	tr.Vertices = tr.Vertices[:2]
	if tr.ContainsPoint(geom.P(20, 0)) {
		t.Fatalf("two-vertex triangle must not hit")
	}

	c := New(Circle)
	c.Vertices = []geom.Pt{geom.P(0, 0), geom.P(100, 100)}
	if !c.ContainsPoint(geom.P(50, 50)) || c.ContainsPoint(geom.P(3, 3)) {
		t.Fatalf("circle containment wrong")
	}
}

func TestBoundsZeroWhenIncomplete(t *testing.T) {
	s := New(Rect)
	s.Vertices = []geom.Pt{geom.P(3, 4)}
	if !s.Bounds().IsZero() {
		t.Fatalf("expected zero bounds, got %+v", s.Bounds())
	}
}

func TestCopyIsEqualButDistinct(t *testing.T) {
	s := New(Triangle)
	s.Vertices = []geom.Pt{geom.P(0, 0), geom.P(40, 0), geom.P(20, 20)}
	s.Selected = true
	c := s.Copy()
	if c == s || c.ID == s.ID {
		t.Fatalf("copy must have a new identity")
	}
	if !Equal(s, c) {
		t.Fatalf("copy must be equal by value")
	}
	if c.Selected {
		t.Fatalf("copy must not inherit selection")
	}
	c.Vertices[0] = geom.P(1, 1)
	if s.Vertices[0] != geom.P(0, 0) {
		t.Fatalf("copy shares vertex storage with original")
	}
	if Equal(s, c) {
		t.Fatalf("shapes with different vertices compared equal")
	}
}

func TestEqualIgnoresSelection(t *testing.T) {
	a := New(Line)
	a.Vertices = []geom.Pt{geom.P(0, 0), geom.P(1, 1)}
	b := a.Copy()
	b.Selected = true
	if !Equal(a, b) {
		t.Fatalf("selection must not affect equality")
	}
	b.Fill = Red
	if Equal(a, b) {
		t.Fatalf("fill color must affect equality")
	}
}

func TestControlPoints(t *testing.T) {
	r := New(Circle)
	r.Vertices = []geom.Pt{geom.P(10, 10), geom.P(30, 20)}
	cp := r.ControlPoints()
	want := []geom.Pt{geom.P(10, 10), geom.P(10, 20), geom.P(30, 10), geom.P(30, 20)}
	if len(cp) != 4 {
		t.Fatalf("expected 4 corners, got %d", len(cp))
	}
	for i := range want {
		if cp[i] != want[i] {
			t.Fatalf("corner %d = %+v, want %+v", i, cp[i], want[i])
		}
	}
	if New(Line).ControlPoints() != nil {
		t.Fatalf("empty line should have no control points")
	}
}

func TestParseType(t *testing.T) {
	if typ, err := ParseType(" Rectangle "); err != nil || typ != Rect {
		t.Fatalf("ParseType(Rectangle) = %v, %v", typ, err)
	}
	if typ, err := ParseType("oval"); err != nil || typ != Circle {
		t.Fatalf("ParseType(oval) = %v, %v", typ, err)
	}
	if _, err := ParseType("hexagon"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestColorRoundTripThroughImageColor(t *testing.T) {
	var c color.Color = Orange
	if got := ColorOf(c); got != Orange {
		t.Fatalf("ColorOf(Orange) = %+v", got)
	}
	if got := ColorOf(color.RGBA{R: 0, G: 0, B: 255, A: 255}); got != (Color{0, 0, 255, 255}) {
		t.Fatalf("ColorOf(blue) = %+v", got)
	}
}
