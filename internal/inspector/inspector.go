/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package inspector holds the toolkit-independent half of the style panel:
// what it shows for a selection and how edits are validated and applied.
package inspector

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strconv"
	"strings"

	applog "shapedraw/internal/log"
	"shapedraw/internal/shape"
)

// MaxLineWidth is the largest width the panel accepts.
const MaxLineWidth = 30

// NoSelectionTitle is shown when nothing is selected.
const NoSelectionTitle = "No Selection"

var ErrInvalidLineWidth = errors.New("line width must be a whole number between 1 and 30")

// ParseLineWidth accepts an integer in (0, MaxLineWidth].
func ParseLineWidth(text string) (int, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLineWidth, text)
	}
	if err := checkLineWidth(n); err != nil {
		return 0, err
	}
	return n, nil
}

func checkLineWidth(n int) error {
	if n <= 0 || n > MaxLineWidth {
		return fmt.Errorf("%w: %d", ErrInvalidLineWidth, n)
	}
	return nil
}

// State is everything the panel displays.
type State struct {
	Title string
	// Enabled covers the width and stroke controls.
	Enabled     bool
	FillEnabled bool
	LineWidth   int
	Stroke      shape.Color
	Fill        shape.Color
}

// StateFor describes s, or the empty panel when s is nil.
func StateFor(s *shape.Shape) State {
	if s == nil {
		return State{Title: NoSelectionTitle}
	}
	return State{
		Title:       s.Type.String(),
		Enabled:     true,
		FillEnabled: s.Type != shape.Line,
		LineWidth:   int(math.Round(s.LineWidth)),
		Stroke:      s.Stroke,
		Fill:        s.Fill,
	}
}

// View renders a State. Implemented by the UI toolkit layer.
type View interface {
	Show(State)
}

// Editor is the side of the canvas the panel edits.
type Editor interface {
	Active() *shape.Shape
	UpdateStyle(shape.Style)
}

// Panel tracks the selection and turns panel edits into style updates.
type Panel struct {
	ed    Editor
	view  View
	state State
	log   *slog.Logger
}

func NewPanel(ed Editor, v View) *Panel {
	p := &Panel{ed: ed, view: v, log: applog.WithComponent("inspector")}
	p.SelectionChanged(ed.Active())
	return p
}

// SelectionChanged refreshes the panel for s.
func (p *Panel) SelectionChanged(s *shape.Shape) {
	p.state = StateFor(s)
	p.push()
}

func (p *Panel) State() State { return p.state }

func (p *Panel) push() {
	if p.view != nil {
		p.view.Show(p.state)
	}
}

// apply edits the selected shape's style. It is a no-op without a selection.
func (p *Panel) apply(edit func(*shape.Style)) {
	s := p.ed.Active()
	if s == nil {
		return
	}
	st := s.Style
	edit(&st)
	p.ed.UpdateStyle(st)
	p.state = StateFor(s)
	p.push()
}

// SetLineWidth parses text and applies it. Invalid input leaves everything unchanged.
func (p *Panel) SetLineWidth(text string) error {
	n, err := ParseLineWidth(text)
	if err != nil {
		p.log.Debug("rejected line width", slog.String("input", text))
		return err
	}
	p.apply(func(st *shape.Style) { st.LineWidth = float64(n) })
	return nil
}

// StepLineWidth nudges the width by delta, as the stepper buttons do.
func (p *Panel) StepLineWidth(delta int) error {
	n := p.state.LineWidth + delta
	if err := checkLineWidth(n); err != nil {
		return err
	}
	p.apply(func(st *shape.Style) { st.LineWidth = float64(n) })
	return nil
}

func (p *Panel) SetStroke(c color.Color) {
	p.apply(func(st *shape.Style) { st.Stroke = shape.ColorOf(c) })
}

// SetFill is ignored for shapes without a fill.
func (p *Panel) SetFill(c color.Color) {
	if !p.state.FillEnabled {
		return
	}
	p.apply(func(st *shape.Style) { st.Fill = shape.ColorOf(c) })
}
