/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package canvas owns the shape list of a drawing and routes pointer gestures,
// clipboard commands and style edits to it, recording every committed change
// on an undo stack.
//
// The controller is not safe for concurrent use; the host calls it from its UI
// event goroutine only.
package canvas

import (
	"fmt"
	"log/slog"
	"slices"

	"shapedraw/internal/geom"
	applog "shapedraw/internal/log"
	"shapedraw/internal/shape"
	"shapedraw/internal/tool"
	"shapedraw/internal/undo"
)

// pasteStep is the per-paste offset applied to repeated pastes of one copy.
const pasteStep = 10.0

// SelectionObserver is told whenever the selected shape changes or the
// selected shape's style is changed by undo/redo. s is nil when nothing is selected.
type SelectionObserver interface {
	SelectionChanged(s *shape.Shape)
}

// Cursor is the pointer feedback the host should show over a canvas point.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResize
)

// Config holds controller settings.
type Config struct {
	// DrawType is the type of shape a drag on empty canvas creates.
	DrawType shape.Type
	// UndoDepth caps the undo history (0 means unlimited).
	UndoDepth int
}

// Controller is the canvas state machine. Shapes are owned here; the active
// tool only borrows the shape it edits.
type Controller struct {
	shapes   []*shape.Shape
	active   tool.Tool
	drawType shape.Type

	clipboard  *shape.Shape
	pasteCount int

	undo     *undo.Manager
	observer SelectionObserver
	dirty    bool

	// per-gesture state
	created bool
	before  []geom.Pt

	log *slog.Logger
}

func New(cfg Config) *Controller {
	return &Controller{
		drawType: cfg.DrawType,
		undo:     undo.NewManager(undo.Config{MaxDepth: cfg.UndoDepth}),
		log:      applog.WithComponent("canvas"),
	}
}

// SetObserver installs the selection observer. A nil observer disables notifications.
func (c *Controller) SetObserver(o SelectionObserver) { c.observer = o }

func (c *Controller) SetDrawType(t shape.Type) { c.drawType = t }
func (c *Controller) DrawType() shape.Type     { return c.drawType }

// Shapes returns the shapes in z-order, bottom first. The slice is a copy; the shapes are not.
func (c *Controller) Shapes() []*shape.Shape { return slices.Clone(c.shapes) }

// Active returns the shape bound to the active tool, or nil.
func (c *Controller) Active() *shape.Shape {
	if c.active == nil {
		return nil
	}
	return c.active.Shape()
}

// NeedsDisplay reports whether anything visible changed since the last ClearNeedsDisplay.
func (c *Controller) NeedsDisplay() bool { return c.dirty }
func (c *Controller) ClearNeedsDisplay() { c.dirty = false }

func (c *Controller) notify(s *shape.Shape) {
	if c.observer != nil {
		c.observer.SelectionChanged(s)
	}
}

// hitTest returns the topmost shape containing p.
func (c *Controller) hitTest(p geom.Pt) *shape.Shape {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		if c.shapes[i].ContainsPoint(p) {
			return c.shapes[i]
		}
	}
	return nil
}

// promote moves s to the top of the z-order.
func (c *Controller) promote(s *shape.Shape) {
	i := slices.Index(c.shapes, s)
	if i < 0 || i == len(c.shapes)-1 {
		return
	}
	c.shapes = append(slices.Delete(c.shapes, i, i+1), s)
}

// remove takes s off the canvas by identity. If s was being edited the tool is
// released, and the tool never outlives the last shape.
func (c *Controller) remove(s *shape.Shape) {
	if i := slices.Index(c.shapes, s); i >= 0 {
		c.shapes = slices.Delete(c.shapes, i, i+1)
	}
	s.Selected = false
	if c.active != nil && (c.active.Shape() == s || len(c.shapes) == 0) {
		c.active = nil
		c.notify(nil)
	}
	c.dirty = true
}

func (c *Controller) deselectActive() {
	if c.active != nil {
		c.active.Shape().Selected = false
	}
}

// bind makes s the selected shape with a fresh tool.
func (c *Controller) bind(s *shape.Shape) {
	c.deselectActive()
	s.Selected = true
	c.active = tool.ForShape(s)
	c.notify(s)
}

// PointerDown starts a gesture. A handle of the selected shape wins over
// hit-testing; otherwise the topmost hit shape is selected and raised, and a
// miss starts a new shape of the current draw type.
func (c *Controller) PointerDown(p geom.Pt) {
	p = geom.Floor(p)
	c.created = false
	c.before = nil
	c.dirty = true

	if c.active != nil && c.active.OnResizeHandle(p) {
		c.before = c.active.Shape().SnapshotVertices()
		c.active.PointerDown(p)
		return
	}

	if hit := c.hitTest(p); hit != nil {
		if hit != c.Active() {
			c.bind(hit)
		}
		c.promote(hit)
		c.before = hit.SnapshotVertices()
		c.active.PointerDown(p)
		return
	}

	c.deselectActive()
	s := shape.New(c.drawType)
	c.shapes = append(c.shapes, s)
	c.active = tool.ForShape(s)
	c.created = true
	c.active.PointerDown(p)
}

func (c *Controller) PointerDrag(p geom.Pt) {
	if c.active == nil {
		return
	}
	c.active.PointerDrag(geom.Floor(p))
	c.dirty = true
}

// PointerUp finishes the gesture. A shape that never got enough vertices is
// dropped without an undo entry; anything else that changed is recorded.
func (c *Controller) PointerUp(p geom.Pt) {
	if c.active == nil {
		return
	}
	mode := c.active.Mode()
	c.active.PointerUp(geom.Floor(p))
	s := c.active.Shape()
	created, before := c.created, c.before
	c.created, c.before = false, nil
	c.dirty = true

	if !s.Complete() {
		if i := slices.Index(c.shapes, s); i >= 0 {
			c.shapes = slices.Delete(c.shapes, i, i+1)
		}
		c.active = nil
		c.notify(nil)
		return
	}

	if !s.Selected {
		s.Selected = true
		c.notify(s)
	}

	switch {
	case created:
		c.undo.Register(&removeShapes{c: c, shapes: []*shape.Shape{s}, label: "Draw " + s.Type.String()})
		c.log.Debug("shape drawn", slog.String("type", s.Type.String()), slog.String("id", s.ID))
	case before != nil && !slices.Equal(before, s.Vertices):
		label := "Move " + s.Type.String()
		if mode == tool.Resizing {
			label = "Resize " + s.Type.String()
		}
		c.undo.Register(&restoreVertices{c: c, target: s, vertices: before, label: label})
		c.log.Debug("shape edited", slog.String("action", label), slog.String("id", s.ID))
	}
}

// Magnify forwards a pinch to the active tool. It is not recorded for undo.
func (c *Controller) Magnify(m float64) {
	if c.active == nil {
		return
	}
	c.active.Magnify(m)
	c.dirty = true
}

func (c *Controller) CanCopy() bool {
	return c.active != nil && c.active.Shape().Complete()
}

func (c *Controller) CanPaste() bool { return c.clipboard != nil }

func (c *Controller) CanDelete() bool { return c.active != nil }

// Copy stores a value copy of the selected shape and restarts the paste offset.
func (c *Controller) Copy() {
	if !c.CanCopy() {
		return
	}
	c.clipboard = c.active.Shape().Copy()
	c.pasteCount = 0
}

// Paste adds a new copy of the clipboard shape, offset further down-right on
// every paste, and selects it.
func (c *Controller) Paste() {
	if c.clipboard == nil {
		return
	}
	c.pasteCount++
	n := float64(c.pasteCount)
	s := c.clipboard.Copy()
	s.Translate(pasteStep*n, -pasteStep*n)
	c.shapes = append(c.shapes, s)
	c.bind(s)
	c.undo.Register(&removeShapes{c: c, shapes: []*shape.Shape{s}, label: "Paste"})
	c.dirty = true
	c.log.Debug("shape pasted", slog.String("id", s.ID), slog.Int("count", c.pasteCount))
}

// Delete removes the selected shape.
func (c *Controller) Delete() {
	if c.active == nil {
		return
	}
	s := c.active.Shape()
	c.remove(s)
	c.undo.Register(&addShapes{c: c, shapes: []*shape.Shape{s}, label: "Delete"})
	c.log.Debug("shape deleted", slog.String("id", s.ID))
}

// Clear removes every shape in one undoable step.
func (c *Controller) Clear() {
	if len(c.shapes) == 0 {
		return
	}
	removed := c.shapes
	for _, s := range removed {
		s.Selected = false
	}
	c.shapes = nil
	if c.active != nil {
		c.active = nil
		c.notify(nil)
	}
	c.undo.Register(&addShapes{c: c, shapes: removed, label: "Clear"})
	c.dirty = true
	c.log.Debug("canvas cleared", slog.Int("shapes", len(removed)))
}

// UpdateStyle applies a style edit from the inspector to the selected shape.
func (c *Controller) UpdateStyle(st shape.Style) {
	if c.active == nil {
		return
	}
	s := c.active.Shape()
	if s.Style == st {
		return
	}
	c.undo.Register(&restoreStyle{c: c, target: s, style: s.Style, label: "Change Style"})
	s.Style = st
	c.dirty = true
}

// CursorAt returns the cursor to show while hovering p.
func (c *Controller) CursorAt(p geom.Pt) Cursor {
	if c.active == nil || !c.active.Shape().Selected {
		return CursorDefault
	}
	p = geom.Floor(p)
	switch {
	case c.active.OnResizeHandle(p):
		return CursorResize
	case c.active.Shape().ContainsPoint(p):
		return CursorMove
	}
	return CursorDefault
}

func (c *Controller) CanUndo() bool    { return c.undo.CanUndo() }
func (c *Controller) CanRedo() bool    { return c.undo.CanRedo() }
func (c *Controller) UndoName() string { return c.undo.UndoName() }
func (c *Controller) RedoName() string { return c.undo.RedoName() }

// Undo reverts the last recorded change. It returns false when there is nothing to undo.
func (c *Controller) Undo() bool {
	name, ok := c.undo.Undo()
	if ok {
		c.dirty = true
		c.log.Debug("undo", slog.String("action", name))
	}
	return ok
}

// Redo reapplies the last undone change.
func (c *Controller) Redo() bool {
	name, ok := c.undo.Redo()
	if ok {
		c.dirty = true
		c.log.Debug("redo", slog.String("action", name))
	}
	return ok
}

// CrashSummary describes the canvas for crash reports.
func (c *Controller) CrashSummary() string {
	active := "none"
	if s := c.Active(); s != nil {
		active = fmt.Sprintf("%s(%s, %d vertices)", s.Type, s.ID, len(s.Vertices))
	}
	u, r := c.undo.Stats()
	return fmt.Sprintf("shapes=%d active=%s draw_type=%s undo=%d redo=%d", len(c.shapes), active, c.drawType, u, r)
}
