//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"shapedraw/internal/canvas"
	"shapedraw/internal/config"
	"shapedraw/internal/crash"
	"shapedraw/internal/inspector"
	applog "shapedraw/internal/log"
	"shapedraw/internal/shape"
	"shapedraw/internal/version"
)

// Run starts the Fyne desktop shell: a drawing surface, a shape picker and the
// style inspector, with Edit menu commands bound to the canvas controller.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	drawType, err := cfg.Canvas.DrawType()
	if err != nil {
		l.Warn("unknown default shape, using rectangle", slog.Any("err", err))
		drawType = shape.Rect
	}
	ctrl := canvas.New(canvas.Config{DrawType: drawType, UndoDepth: cfg.Canvas.UndoDepth})
	defer crash.Recover(ctrl)

	fyneApp := app.NewWithID("shapedraw")
	applyTheme(fyneApp, cfg.General.Theme)
	w := fyneApp.NewWindow("Shapedraw")
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", cfg.Window.Width)
	winH := prefs.IntWithFallback("window.height", cfg.Window.Height)
	w.Resize(fyne.NewSize(float32(max(winW, 400)), float32(max(winH, 300))))

	status := widget.NewLabel("Ready")

	undoItem := fyne.NewMenuItem("Undo", nil)
	redoItem := fyne.NewMenuItem("Redo", nil)
	copyItem := fyne.NewMenuItem("Copy", nil)
	pasteItem := fyne.NewMenuItem("Paste", nil)
	deleteItem := fyne.NewMenuItem("Delete", nil)
	var mainMenu *fyne.MainMenu

	// syncMenu mirrors the controller's command availability into the Edit menu.
	syncMenu := func() {
		undoItem.Label, undoItem.Disabled = commandLabel("Undo", ctrl.UndoName()), !ctrl.CanUndo()
		redoItem.Label, redoItem.Disabled = commandLabel("Redo", ctrl.RedoName()), !ctrl.CanRedo()
		copyItem.Disabled = !ctrl.CanCopy()
		pasteItem.Disabled = !ctrl.CanPaste()
		deleteItem.Disabled = !ctrl.CanDelete()
		if mainMenu != nil {
			mainMenu.Refresh()
		}
	}

	view := newDrawView(ctrl, syncMenu)
	insp := newInspectorView(w, func(msg string) {
		l.Warn("inspector edit rejected", slog.String("msg", msg))
		status.SetText(msg)
	}, view.changed)
	insp.panel = inspector.NewPanel(ctrl, insp)
	ctrl.SetObserver(insp.panel)

	command := func(name string, fn func()) func() {
		return func() {
			l.Debug("command", slog.String("name", name))
			fn()
			view.changed()
		}
	}
	undoItem.Action = command("undo", func() {
		if name := ctrl.UndoName(); ctrl.Undo() {
			status.SetText("Undid " + name)
		}
	})
	redoItem.Action = command("redo", func() {
		if name := ctrl.RedoName(); ctrl.Redo() {
			status.SetText("Redid " + name)
		}
	})
	copyItem.Action = command("copy", ctrl.Copy)
	pasteItem.Action = command("paste", ctrl.Paste)
	deleteItem.Action = command("delete", ctrl.Delete)

	undoItem.Shortcut = &fyne.ShortcutUndo{}
	redoItem.Shortcut = &fyne.ShortcutRedo{}
	copyItem.Shortcut = &fyne.ShortcutCopy{}
	pasteItem.Shortcut = &fyne.ShortcutPaste{}
	for _, it := range []*fyne.MenuItem{undoItem, redoItem, copyItem, pasteItem} {
		action := it.Action
		w.Canvas().AddShortcut(it.Shortcut, func(fyne.Shortcut) { action() })
	}
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift},
		func(fyne.Shortcut) { redoItem.Action() })
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyDelete || ev.Name == fyne.KeyBackSpace {
			deleteItem.Action()
		}
	})

	editMenu := fyne.NewMenu("Edit", undoItem, redoItem, fyne.NewMenuItemSeparator(), copyItem, pasteItem, deleteItem)
	aboutItem := fyne.NewMenuItem("About Shapedraw", func() {
		info := fmt.Sprintf("Shapedraw\nVersion: %s\nOS: %s\nArch: %s\nGo: %s",
			version.String(), runtime.GOOS, runtime.GOARCH, runtime.Version())
		dialog.ShowInformation("About", info, w)
	})
	mainMenu = fyne.NewMainMenu(editMenu, fyne.NewMenu("Help", aboutItem))
	w.SetMainMenu(mainMenu)
	syncMenu()

	shapeNames := make([]string, len(shape.Types))
	for i, t := range shape.Types {
		shapeNames[i] = t.String()
	}
	shapePicker := widget.NewSelect(shapeNames, func(name string) {
		t, err := shape.ParseType(name)
		if err != nil {
			return
		}
		ctrl.SetDrawType(t)
		status.SetText("Drawing " + name)
	})
	shapePicker.SetSelected(drawType.String())
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), command("clear", ctrl.Clear))

	side := container.NewPadded(insp.root)
	inspToggle := widget.NewCheck("Inspector", func(on bool) {
		if on {
			side.Show()
		} else {
			side.Hide()
		}
	})
	inspToggle.SetChecked(true)

	toolbar := container.NewHBox(widget.NewLabel("Shape"), shapePicker, clearBtn, widget.NewSeparator(), inspToggle)
	w.SetContent(container.NewBorder(toolbar, status, nil, side, view))

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		l.Info("closing", slog.String("state", ctrl.CrashSummary()))
		w.Close()
	})

	w.ShowAndRun()
	return nil
}

func commandLabel(verb, name string) string {
	if name == "" {
		return verb
	}
	return verb + " " + name
}

// fixedVariantTheme pins the default theme to one variant regardless of the OS setting.
type fixedVariantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *fixedVariantTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(n, t.variant)
}

func applyTheme(a fyne.App, name string) {
	switch name {
	case "dark":
		a.Settings().SetTheme(&fixedVariantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		a.Settings().SetTheme(&fixedVariantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	}
}
