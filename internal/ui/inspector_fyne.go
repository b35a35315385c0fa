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
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"shapedraw/internal/inspector"
)

// inspectorView is the Fyne rendition of the style panel.
type inspectorView struct {
	root  *fyne.Container
	title *widget.Label

	width       *widget.Entry
	minus, plus *widget.Button

	strokeBtn, fillBtn       *widget.Button
	strokeSwatch, fillSwatch *fynecanvas.Rectangle

	panel  *inspector.Panel
	win    fyne.Window
	status func(string)
	onEdit func()
}

var _ inspector.View = (*inspectorView)(nil)

func newInspectorView(win fyne.Window, status func(string), onEdit func()) *inspectorView {
	v := &inspectorView{win: win, status: status, onEdit: onEdit}
	v.title = widget.NewLabelWithStyle(inspector.NoSelectionTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	v.width = widget.NewEntry()
	v.width.OnSubmitted = func(text string) { v.editWidth(func() error { return v.panel.SetLineWidth(text) }) }
	v.minus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		v.editWidth(func() error { return v.panel.StepLineWidth(-1) })
	})
	v.plus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		v.editWidth(func() error { return v.panel.StepLineWidth(1) })
	})

	v.strokeSwatch = swatch()
	v.fillSwatch = swatch()
	v.strokeBtn = widget.NewButton("Stroke…", func() {
		v.pickColor("Stroke Color", v.panel.State().Stroke, v.panel.SetStroke)
	})
	v.fillBtn = widget.NewButton("Fill…", func() {
		v.pickColor("Fill Color", v.panel.State().Fill, v.panel.SetFill)
	})

	widthRow := container.NewBorder(nil, nil, widget.NewLabel("Width"), container.NewHBox(v.minus, v.plus), v.width)
	v.root = container.NewVBox(
		v.title,
		widget.NewSeparator(),
		widthRow,
		container.NewBorder(nil, nil, nil, v.strokeSwatch, v.strokeBtn),
		container.NewBorder(nil, nil, nil, v.fillSwatch, v.fillBtn),
	)
	return v
}

func swatch() *fynecanvas.Rectangle {
	r := fynecanvas.NewRectangle(color.Transparent)
	r.StrokeColor = color.Gray{Y: 0x80}
	r.StrokeWidth = 1
	r.SetMinSize(fyne.NewSize(24, 24))
	return r
}

// Show implements inspector.View.
func (v *inspectorView) Show(s inspector.State) {
	v.title.SetText(s.Title)
	if s.Enabled {
		v.width.SetText(strconv.Itoa(s.LineWidth))
	} else {
		v.width.SetText("")
	}
	for _, w := range []fyne.Disableable{v.width, v.minus, v.plus, v.strokeBtn} {
		setEnabled(w, s.Enabled)
	}
	setEnabled(v.fillBtn, s.FillEnabled)

	v.strokeSwatch.FillColor = color.Transparent
	v.fillSwatch.FillColor = color.Transparent
	if s.Enabled {
		v.strokeSwatch.FillColor = s.Stroke
	}
	if s.FillEnabled {
		v.fillSwatch.FillColor = s.Fill
	}
	v.strokeSwatch.Refresh()
	v.fillSwatch.Refresh()
}

func setEnabled(w fyne.Disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}

// editWidth applies a width edit; rejected input is reported and the entry restored.
func (v *inspectorView) editWidth(edit func() error) {
	if err := edit(); err != nil {
		v.status(err.Error())
		v.width.SetText(strconv.Itoa(v.panel.State().LineWidth))
		return
	}
	v.onEdit()
}

func (v *inspectorView) pickColor(title string, current color.Color, apply func(color.Color)) {
	d := dialog.NewColorPicker(title, "Choose a color", func(c color.Color) {
		apply(c)
		v.onEdit()
	}, v.win)
	d.Advanced = true
	d.SetColor(current)
	d.Show()
}
