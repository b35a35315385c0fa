/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package shape defines the drawable entities of a canvas and their geometric predicates.
package shape

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"shapedraw/internal/geom"
)

// Type is fixed when a shape is created.
type Type int

const (
	Line Type = iota
	Rect
	Triangle
	Circle
)

// Types lists every shape type in toolbar order.
var Types = []Type{Line, Rect, Triangle, Circle}

var ErrUnknownType = errors.New("unknown shape type")

func (t Type) String() string {
	switch t {
	case Line:
		return "Line"
	case Rect:
		return "Rectangle"
	case Triangle:
		return "Triangle"
	case Circle:
		return "Circle"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType accepts the display name or a short alias, case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "rect", "rectangle":
		return Rect, nil
	case "triangle":
		return Triangle, nil
	case "circle", "ellipse", "oval":
		return Circle, nil
	}
	return Line, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// lineHitDistance2 is the squared distance under which a point counts as on a line.
// It is intentionally independent of the line width.
const lineHitDistance2 = 50

// Shape is a geometric entity on the canvas.
//
// Vertices: Line, Rect and Circle use two points (endpoints, or a bounding
// diagonal); Triangle uses three. Shapes with fewer vertices are still being
// created and are neither hit-tested nor committed.
type Shape struct {
	ID       string
	Type     Type
	Vertices []geom.Pt
	Style
	// Selected is transient UI state; it takes no part in Equal.
	Selected bool
}

// New returns an empty shape of type t with its default style.
func New(t Type) *Shape {
	s := &Shape{
		ID:   uuid.NewString(),
		Type: t,
		Style: Style{
			LineWidth: 1,
			Stroke:    Black,
			Fill:      White,
		},
	}
	switch t {
	case Line:
		s.LineWidth = 2
	case Rect:
		s.Fill = Orange
	case Triangle:
		s.Fill = Cyan
	case Circle:
		s.Fill = Green
	}
	return s
}

// Complete reports whether the shape has enough vertices to be drawn and hit-tested.
func (s *Shape) Complete() bool {
	if s.Type == Triangle {
		return len(s.Vertices) == 3
	}
	return len(s.Vertices) >= 2
}

// Bounds spans vertices[0] and vertices[1]; zero when fewer than two exist.
func (s *Shape) Bounds() geom.Rect {
	if len(s.Vertices) < 2 {
		return geom.Rect{}
	}
	return geom.RectFromPoints(s.Vertices[0], s.Vertices[1])
}

// ContainsPoint is the hit test used for selection and move gestures.
func (s *Shape) ContainsPoint(p geom.Pt) bool {
	switch s.Type {
	case Line:
		if len(s.Vertices) != 2 {
			return false
		}
		return geom.SegmentDistance2(p, s.Vertices[0], s.Vertices[1]) < lineHitDistance2
	case Rect:
		if len(s.Vertices) < 2 {
			return false
		}
		return s.Bounds().Contains(p)
	case Triangle:
		if len(s.Vertices) != 3 {
			return false
		}
		return geom.PointInPolygon(p, s.Vertices)
	case Circle:
		if len(s.Vertices) < 2 {
			return false
		}
		return geom.PointInEllipse(p, s.Bounds())
	}
	return false
}

// ControlPoints returns the centres of the shape's resize handles. Boxes use
// the four corners of their bounds, ordered min/min, min/max, max/min, max/max.
func (s *Shape) ControlPoints() []geom.Pt {
	if !s.Complete() {
		return nil
	}
	switch s.Type {
	case Rect, Circle:
		c := s.Bounds().Corners()
		return c[:]
	default:
		return slices.Clone(s.Vertices)
	}
}

// SnapshotVertices returns an independent copy of the vertex list.
func (s *Shape) SnapshotVertices() []geom.Pt { return slices.Clone(s.Vertices) }

// Translate moves every vertex by (dx, dy).
func (s *Shape) Translate(dx, dy float64) {
	for i := range s.Vertices {
		s.Vertices[i] = s.Vertices[i].Add(dx, dy)
	}
}

// Copy returns a new, unselected shape with an equal value and a fresh identity.
func (s *Shape) Copy() *Shape {
	return &Shape{
		ID:       uuid.NewString(),
		Type:     s.Type,
		Vertices: slices.Clone(s.Vertices),
		Style:    s.Style,
	}
}

// Equal compares by value: type, vertices, fill, stroke and line width.
func Equal(a, b *Shape) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Type == b.Type &&
		slices.Equal(a.Vertices, b.Vertices) &&
		a.Fill == b.Fill &&
		a.Stroke == b.Stroke &&
		a.LineWidth == b.LineWidth
}
