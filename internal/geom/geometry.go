/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geom holds the 2D primitives shared by shapes, tools and the renderer.
// Coordinates are float64 in a y-up space; pointer input is floored to whole
// units before it reaches the model, so stored vertices are always integral.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// HandleSize is the edge length of the square resize handle around a control point.
	HandleSize = 10.0
	// MinimumSize is the smallest width/height a box or triangle may end a gesture with.
	MinimumSize = 10.0
)

// Pt is a 2D point.
type Pt struct{ X, Y float64 }

// P is shorthand for Pt{X: x, Y: y}.
func P(x, y float64) Pt { return Pt{X: x, Y: y} }

// Floor truncates both coordinates towards negative infinity.
func Floor(p Pt) Pt { return Pt{X: math.Floor(p.X), Y: math.Floor(p.Y)} }

// Add returns p translated by (dx, dy).
func (p Pt) Add(dx, dy float64) Pt { return Pt{X: p.X + dx, Y: p.Y + dy} }

// Sub returns the offset from q to p.
func (p Pt) Sub(q Pt) Pt { return Pt{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Pt) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Rect is an axis-aligned rectangle defined by min corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// RectFromPoints returns the normalised rectangle spanning a and b.
func RectFromPoints(a, b Pt) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(a.X - b.X),
		H: math.Abs(a.Y - b.Y),
	}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

func (r Rect) Min() Pt { return Pt{r.X, r.Y} }
func (r Rect) Max() Pt { return Pt{r.X + r.W, r.Y + r.H} }

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool { return r == Rect{} }

// Contains is inclusive on all four edges.
func (r Rect) Contains(p Pt) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// Corners returns the four corners in the order min/min, min/max, max/min, max/max.
func (r Rect) Corners() [4]Pt {
	return [4]Pt{
		{r.MinX(), r.MinY()},
		{r.MinX(), r.MaxY()},
		{r.MaxX(), r.MinY()},
		{r.MaxX(), r.MaxY()},
	}
}

// HandleRect returns the resize handle square centred on p.
func HandleRect(p Pt) Rect {
	return Rect{X: p.X - HandleSize/2, Y: p.Y - HandleSize/2, W: HandleSize, H: HandleSize}
}

// SegmentDistance2 returns the squared distance from p to the closest point of
// the segment ab. A degenerate segment measures to a.
func SegmentDistance2(p, a, b Pt) float64 {
	d := r2.Sub(b.vec(), a.vec())
	len2 := r2.Norm2(d)
	if len2 == 0 {
		return r2.Norm2(r2.Sub(p.vec(), a.vec()))
	}
	t := r2.Dot(r2.Sub(p.vec(), a.vec()), d) / len2
	t = math.Max(0, math.Min(1, t))
	closest := r2.Add(a.vec(), r2.Scale(t, d))
	return r2.Norm2(r2.Sub(p.vec(), closest))
}

// PointInPolygon applies the even-odd rule to the closed polygon poly.
func PointInPolygon(p Pt, poly []Pt) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PointInEllipse tests p against the ellipse inscribed in box.
func PointInEllipse(p Pt, box Rect) bool {
	rx := box.W / 2
	ry := box.H / 2
	if rx == 0 || ry == 0 {
		return false
	}
	dx := (p.X - box.MidX()) / rx
	dy := (p.Y - box.MidY()) / ry
	return dx*dx+dy*dy <= 1
}
