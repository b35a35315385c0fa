/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tool

import "shapedraw/internal/geom"

// LineTool edits a two-point line. Both endpoints are resize handles.
type LineTool struct {
	base
	resizing int
}

func (t *LineTool) OnResizeHandle(p geom.Pt) bool {
	return handleIndex(t.shape.Vertices, geom.Floor(p)) >= 0
}

func (t *LineTool) PointerDown(p geom.Pt) {
	p = geom.Floor(p)
	if i := handleIndex(t.shape.Vertices, p); i >= 0 {
		t.mode = Resizing
		t.resizing = i
		return
	}
	if t.shape.ContainsPoint(p) {
		t.beginMove(p)
		return
	}
	t.beginCreate(p)
}

func (t *LineTool) PointerDrag(p geom.Pt) {
	p = geom.Floor(p)
	switch t.mode {
	case Resizing:
		if t.resizing < len(t.shape.Vertices) {
			t.shape.Vertices[t.resizing] = p
		}
	case Moving:
		t.moveTo(p)
	case Creating:
		t.growTo(p)
	}
}

// PointerUp ends the gesture; lines have no minimum length.
func (t *LineTool) PointerUp(geom.Pt) { t.end() }
