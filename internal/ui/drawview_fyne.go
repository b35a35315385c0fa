//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"shapedraw/internal/canvas"
	"shapedraw/internal/geom"
	"shapedraw/internal/render"
)

// magnifyPerScroll converts one wheel step into a pinch magnification.
const magnifyPerScroll = 0.1

// drawView is the drawing surface. It forwards pointer input to the canvas
// controller in model coordinates (y up) and repaints through render.Draw.
type drawView struct {
	widget.BaseWidget
	ctrl   *canvas.Controller
	raster *fynecanvas.Raster

	down   bool
	last   geom.Pt
	cursor desktop.Cursor

	// onChange runs after every input that reached the controller.
	onChange func()
}

var (
	_ desktop.Mouseable  = (*drawView)(nil)
	_ desktop.Hoverable  = (*drawView)(nil)
	_ desktop.Cursorable = (*drawView)(nil)
	_ fyne.Draggable     = (*drawView)(nil)
	_ fyne.Scrollable    = (*drawView)(nil)
)

func newDrawView(ctrl *canvas.Controller, onChange func()) *drawView {
	v := &drawView{ctrl: ctrl, cursor: desktop.DefaultCursor, onChange: onChange}
	v.raster = fynecanvas.NewRaster(v.paint)
	v.raster.ScaleMode = fynecanvas.ImageScalePixels
	v.ExtendBaseWidget(v)
	return v
}

func (v *drawView) CreateRenderer() fyne.WidgetRenderer { return widget.NewSimpleRenderer(v.raster) }

func (v *drawView) MinSize() fyne.Size { return fyne.NewSize(320, 240) }

// paint renders at the raster's pixel size; the scale folds in the display density.
func (v *drawView) paint(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scale := 1.0
	if sz := v.Size(); sz.Width > 0 {
		scale = float64(w) / float64(sz.Width)
	}
	render.Draw(img, v.ctrl.Shapes(), render.Options{Scale: scale, FlipY: true})
	return img
}

// toModel maps a widget position to model space.
func (v *drawView) toModel(pos fyne.Position) geom.Pt {
	return geom.P(float64(pos.X), float64(v.Size().Height-pos.Y))
}

// changed repaints if the controller asks for it and notifies the owner.
func (v *drawView) changed() {
	if v.ctrl.NeedsDisplay() {
		v.ctrl.ClearNeedsDisplay()
		v.raster.Refresh()
	}
	if v.onChange != nil {
		v.onChange()
	}
}

func (v *drawView) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	v.down = true
	v.last = v.toModel(e.Position)
	v.ctrl.PointerDown(v.last)
	v.changed()
}

func (v *drawView) Dragged(e *fyne.DragEvent) {
	if !v.down {
		return
	}
	v.last = v.toModel(e.Position)
	v.ctrl.PointerDrag(v.last)
	v.changed()
}

// MouseUp and DragEnd can both arrive for one gesture; whichever comes first ends it.
func (v *drawView) MouseUp(e *desktop.MouseEvent) { v.finish(v.toModel(e.Position)) }
func (v *drawView) DragEnd()                      { v.finish(v.last) }

func (v *drawView) finish(p geom.Pt) {
	if !v.down {
		return
	}
	v.down = false
	v.ctrl.PointerUp(p)
	v.changed()
	v.updateCursor(p)
}

func (v *drawView) MouseIn(e *desktop.MouseEvent)    { v.updateCursor(v.toModel(e.Position)) }
func (v *drawView) MouseMoved(e *desktop.MouseEvent) { v.updateCursor(v.toModel(e.Position)) }
func (v *drawView) MouseOut()                        { v.cursor = desktop.DefaultCursor }

func (v *drawView) updateCursor(p geom.Pt) {
	switch v.ctrl.CursorAt(p) {
	case canvas.CursorResize:
		v.cursor = desktop.CrosshairCursor
	case canvas.CursorMove:
		v.cursor = desktop.PointerCursor
	default:
		v.cursor = desktop.DefaultCursor
	}
}

func (v *drawView) Cursor() desktop.Cursor { return v.cursor }

// Scrolled stands in for the trackpad pinch gesture.
func (v *drawView) Scrolled(e *fyne.ScrollEvent) {
	v.ctrl.Magnify(float64(e.Scrolled.DY) * magnifyPerScroll)
	v.changed()
}
