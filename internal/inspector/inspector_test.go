/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package inspector

import (
	"errors"
	"image/color"
	"testing"

	"shapedraw/internal/canvas"
	"shapedraw/internal/geom"
	"shapedraw/internal/shape"
)

var _ canvas.SelectionObserver = (*Panel)(nil)

type fakeView struct{ shown []State }

func (v *fakeView) Show(s State) { v.shown = append(v.shown, s) }

func TestParseLineWidth(t *testing.T) {
	for _, ok := range []string{"1", " 7 ", "30"} {
		if _, err := ParseLineWidth(ok); err != nil {
			t.Fatalf("ParseLineWidth(%q) unexpected error: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "-2", "31", "2.5", "wide"} {
		if _, err := ParseLineWidth(bad); !errors.Is(err, ErrInvalidLineWidth) {
			t.Fatalf("ParseLineWidth(%q) = %v, want ErrInvalidLineWidth", bad, err)
		}
	}
}

func TestStateFor(t *testing.T) {
	if st := StateFor(nil); st.Title != NoSelectionTitle || st.Enabled || st.FillEnabled {
		t.Fatalf("empty state wrong: %+v", st)
	}
	l := shape.New(shape.Line)
	if st := StateFor(l); st.Title != "Line" || !st.Enabled || st.FillEnabled || st.LineWidth != 2 {
		t.Fatalf("line state wrong: %+v", st)
	}
	r := shape.New(shape.Rect)
	if st := StateFor(r); st.Title != "Rectangle" || !st.FillEnabled || st.Fill != shape.Orange {
		t.Fatalf("rect state wrong: %+v", st)
	}
}

func newDrawing(t *testing.T, typ shape.Type) (*canvas.Controller, *Panel, *fakeView) {
	t.Helper()
	c := canvas.New(canvas.Config{DrawType: typ})
	v := &fakeView{}
	p := NewPanel(c, v)
	c.SetObserver(p)
	c.PointerDown(geom.P(0, 0))
	c.PointerDrag(geom.P(60, 40))
	c.PointerUp(geom.P(60, 40))
	if c.Active() == nil {
		t.Fatalf("no shape drawn")
	}
	return c, p, v
}

func TestPanelFollowsSelection(t *testing.T) {
	c, p, v := newDrawing(t, shape.Rect)
	if v.shown[0].Title != NoSelectionTitle {
		t.Fatalf("panel should start empty")
	}
	if p.State().Title != "Rectangle" {
		t.Fatalf("panel should show the drawn rectangle, got %+v", p.State())
	}
	c.Delete()
	if p.State().Title != NoSelectionTitle {
		t.Fatalf("panel should clear after delete")
	}
}

func TestPanelEditsAreUndoable(t *testing.T) {
	c, p, _ := newDrawing(t, shape.Rect)
	s := c.Active()

	if err := p.SetLineWidth("12"); err != nil {
		t.Fatalf("SetLineWidth: %v", err)
	}
	if s.LineWidth != 12 || p.State().LineWidth != 12 {
		t.Fatalf("width not applied: %v", s.LineWidth)
	}
	p.SetStroke(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	p.SetFill(shape.Green)
	if s.Stroke != (shape.Color{B: 255, A: 255}) || s.Fill != shape.Green {
		t.Fatalf("colors not applied: %+v", s.Style)
	}

	c.Undo()
	if s.Fill != shape.Orange || p.State().Fill != shape.Orange {
		t.Fatalf("undo should restore fill in shape and panel, got %+v", p.State())
	}
	c.Redo()
	if s.Fill != shape.Green || p.State().Fill != shape.Green {
		t.Fatalf("redo should reapply fill, got %+v", p.State())
	}
}

func TestInvalidWidthLeavesShapeUntouched(t *testing.T) {
	c, p, v := newDrawing(t, shape.Rect)
	n := len(v.shown)
	if err := p.SetLineWidth("40"); !errors.Is(err, ErrInvalidLineWidth) {
		t.Fatalf("expected ErrInvalidLineWidth, got %v", err)
	}
	if c.Active().LineWidth != 1 || len(v.shown) != n || c.UndoName() != "Draw Rectangle" {
		t.Fatalf("invalid input must not change anything")
	}
}

func TestStepLineWidth(t *testing.T) {
	c, p, _ := newDrawing(t, shape.Line)
	if err := p.StepLineWidth(1); err != nil || c.Active().LineWidth != 3 {
		t.Fatalf("step up failed: %v width=%v", err, c.Active().LineWidth)
	}
	p.SetLineWidth("30")
	if err := p.StepLineWidth(1); !errors.Is(err, ErrInvalidLineWidth) {
		t.Fatalf("stepping past the maximum must fail, got %v", err)
	}
}

func TestFillIgnoredForLines(t *testing.T) {
	c, p, _ := newDrawing(t, shape.Line)
	before := c.Active().Fill
	p.SetFill(shape.Red)
	if c.Active().Fill != before {
		t.Fatalf("line fill must not change")
	}
}

func TestEditsWithoutSelectionAreNoOps(t *testing.T) {
	c := canvas.New(canvas.Config{DrawType: shape.Rect})
	p := NewPanel(c, nil)
	if err := p.SetLineWidth("5"); err != nil {
		t.Fatalf("valid width without selection should not error: %v", err)
	}
	p.SetStroke(shape.Red)
	if c.CanUndo() {
		t.Fatalf("nothing should be recorded without a selection")
	}
}
