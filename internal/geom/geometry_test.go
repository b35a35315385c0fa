/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "testing"

func TestRectFromPointsNormalises(t *testing.T) {
	r := RectFromPoints(P(40, 5), P(10, 25))
	if r.X != 10 || r.Y != 5 || r.W != 30 || r.H != 20 {
		t.Fatalf("unexpected rect: %+v", r)
	}
	if r.MaxX() != 40 || r.MaxY() != 25 || r.MidX() != 25 || r.MidY() != 15 {
		t.Fatalf("unexpected derived edges: %+v", r)
	}
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := R(10, 20, 100, 50)
	if !r.Contains(P(10, 20)) || !r.Contains(P(110, 70)) {
		t.Fatalf("expected edge points to be contained")
	}
	if r.Contains(P(110.5, 70)) {
		t.Fatalf("point right of max edge must not be contained")
	}
}

func TestHandleRectCentredOnPoint(t *testing.T) {
	h := HandleRect(P(50, 50))
	if h.X != 45 || h.Y != 45 || h.W != HandleSize || h.H != HandleSize {
		t.Fatalf("unexpected handle: %+v", h)
	}
	if !h.Contains(P(55, 55)) || h.Contains(P(56, 50)) {
		t.Fatalf("handle containment wrong")
	}
}

func TestSegmentDistance2(t *testing.T) {
	a, b := P(0, 0), P(100, 0)
	if d := SegmentDistance2(P(50, 6), a, b); d != 36 {
		t.Fatalf("distance² = %v, want 36", d)
	}
	// beyond the end the projection clamps to b
	if d := SegmentDistance2(P(103, 4), a, b); d != 25 {
		t.Fatalf("clamped distance² = %v, want 25", d)
	}
	if d := SegmentDistance2(P(3, 4), a, a); d != 25 {
		t.Fatalf("degenerate distance² = %v, want 25", d)
	}
}

func TestPointInPolygonEvenOdd(t *testing.T) {
	tri := []Pt{P(0, 0), P(40, 0), P(20, 20)}
	if !PointInPolygon(P(20, 5), tri) {
		t.Fatalf("expected centre point inside triangle")
	}
	if PointInPolygon(P(2, 15), tri) {
		t.Fatalf("expected point outside slanted edge")
	}
	if PointInPolygon(P(1, 1), tri[:2]) {
		t.Fatalf("two points are not a polygon")
	}
}

func TestPointInEllipse(t *testing.T) {
	box := R(0, 0, 100, 50)
	if !PointInEllipse(P(50, 25), box) {
		t.Fatalf("centre should hit")
	}
	if PointInEllipse(P(2, 2), box) {
		t.Fatalf("bounding box corner should miss")
	}
	if PointInEllipse(P(0, 0), R(0, 0, 0, 10)) {
		t.Fatalf("flat ellipse has no interior")
	}
}

func TestFloor(t *testing.T) {
	if p := Floor(P(1.9, -0.1)); p.X != 1 || p.Y != -1 {
		t.Fatalf("unexpected floor: %+v", p)
	}
}
