/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// quietZone is the number of light modules of margin required on each
// side of the symbol by ISO/IEC 18004.
const quietZone = 4

// PNG writes matrix (true = dark module) as a 1-bit-depth PNG, scaled by
// an integer factor, with a quietZone-module light border on every side.
// moduleColor and background are 3- or 4-byte RGB/RGBA tuples; if either
// is non-nil, both must be, or InvalidColor is returned.
func PNG(matrix [][]bool, scale int, w io.Writer, moduleColor, background []byte) error {
	if scale <= 0 {
		return &Error{Kind: InvalidColor, Msg: "render: scale must be a positive integer"}
	}
	if (moduleColor == nil) != (background == nil) {
		return &Error{Kind: InvalidColor, Msg: "render: module_color and background must both be set or both be omitted"}
	}

	dark, err := parseColor(moduleColor, color.NRGBA{0, 0, 0, 255})
	if err != nil {
		return err
	}
	light, err := parseColor(background, color.NRGBA{255, 255, 255, 255})
	if err != nil {
		return err
	}

	n := len(matrix)
	dim := (n + 2*quietZone) * scale
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{light, dark})

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !matrix[y][x] {
				continue
			}
			px0 := (x + quietZone) * scale
			py0 := (y + quietZone) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(px0+dx, py0+dy, 1)
				}
			}
		}
	}

	if err := png.Encode(w, img); err != nil {
		return &Error{Kind: IOFailure, Msg: err.Error()}
	}
	return nil
}

// PNGSize returns the pixel dimension a PNG render of the given version
// will have at the given integer scale, quiet zone included. Useful for
// sizing a canvas before calling PNG.
func PNGSize(version, scale int) int {
	n := version*4 + 17
	return (n + 2*quietZone) * scale
}

func parseColor(c []byte, def color.NRGBA) (color.NRGBA, error) {
	if c == nil {
		return def, nil
	}
	if len(c) != 3 && len(c) != 4 {
		return color.NRGBA{}, &Error{Kind: InvalidColor, Msg: "render: color must have 3 or 4 components"}
	}
	alpha := byte(255)
	if len(c) == 4 {
		alpha = c[3]
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: alpha}, nil
}
