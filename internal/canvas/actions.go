/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"slices"

	"shapedraw/internal/geom"
	"shapedraw/internal/shape"
	"shapedraw/internal/undo"
)

// removeShapes takes shapes off the canvas. It undoes a draw or a paste.
type removeShapes struct {
	c      *Controller
	shapes []*shape.Shape
	label  string
}

func (a *removeShapes) Name() string { return a.label }

func (a *removeShapes) Revert() undo.Action {
	for _, s := range a.shapes {
		a.c.remove(s)
	}
	return &addShapes{c: a.c, shapes: a.shapes, label: a.label}
}

// addShapes puts shapes back on top of the canvas. It undoes a delete or a clear.
type addShapes struct {
	c      *Controller
	shapes []*shape.Shape
	label  string
}

func (a *addShapes) Name() string { return a.label }

func (a *addShapes) Revert() undo.Action {
	a.c.shapes = append(a.c.shapes, a.shapes...)
	a.c.dirty = true
	return &removeShapes{c: a.c, shapes: a.shapes, label: a.label}
}

// restoreVertices swaps a shape's geometry with a stored snapshot.
type restoreVertices struct {
	c        *Controller
	target   *shape.Shape
	vertices []geom.Pt
	label    string
}

func (a *restoreVertices) Name() string { return a.label }

func (a *restoreVertices) Revert() undo.Action {
	current := a.target.SnapshotVertices()
	a.target.Vertices = slices.Clone(a.vertices)
	a.c.dirty = true
	return &restoreVertices{c: a.c, target: a.target, vertices: current, label: a.label}
}

// restoreStyle swaps a shape's style with a stored one. The inverse carries the
// style that was current at revert time, so redo reapplies the edit.
type restoreStyle struct {
	c      *Controller
	target *shape.Shape
	style  shape.Style
	label  string
}

func (a *restoreStyle) Name() string { return a.label }

func (a *restoreStyle) Revert() undo.Action {
	current := a.target.Style
	a.target.Style = a.style
	a.c.dirty = true
	if a.c.active != nil && a.c.active.Shape() == a.target {
		a.c.notify(a.target)
	}
	return &restoreStyle{c: a.c, target: a.target, style: current, label: a.label}
}
