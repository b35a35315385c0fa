/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package shape

import "image/color"

// Color is a non-premultiplied RGBA value. It satisfies color.Color so it can
// be handed to renderers and UI toolkits directly.
type Color struct{ R, G, B, A uint8 }

var (
	Black  = Color{0, 0, 0, 255}
	White  = Color{255, 255, 255, 255}
	Red    = Color{255, 0, 0, 255}
	Orange = Color{255, 128, 0, 255}
	Cyan   = Color{0, 255, 255, 255}
	Green  = Color{0, 255, 0, 255}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ColorOf converts any color.Color into a Color.
func ColorOf(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Style is the user-editable appearance of a shape.
type Style struct {
	LineWidth float64
	Stroke    Color
	Fill      Color
}
