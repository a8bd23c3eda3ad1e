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
	"fmt"
	"io"
	"strings"
)

// SVG writes matrix as an SVG document. Contiguous horizontal runs of
// dark modules in a row are coalesced into a single stroked line, so a
// typical symbol needs far fewer path segments than one per module. The
// container carries class "pyqrcode" and the line "pyqrline", so the
// output can be styled the same way pyqrcode's SVG output is. A blank
// background draws no background rectangle (transparent).
func SVG(matrix [][]bool, scale float64, w io.Writer, moduleColor, background string) error {
	if scale < 0 {
		return &Error{Kind: InvalidColor, Msg: "render: scale must not be negative"}
	}
	if moduleColor == "" {
		moduleColor = "#000000"
	}

	n := len(matrix)
	dim := float64(n) * scale

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg class=\"pyqrcode\" xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %g %g\">\n", dim, dim)
	if background != "" {
		fmt.Fprintf(&sb, "\t<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", background)
	}
	fmt.Fprintf(&sb, "\t<path class=\"pyqrline\" stroke=\"%s\" stroke-width=\"%g\" fill=\"none\" d=\"", moduleColor, scale)

	for y := 0; y < n; y++ {
		row := matrix[y]
		for x := 0; x < n; {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < n && row[x] {
				x++
			}
			yMid := (float64(y) + 0.5) * scale
			fmt.Fprintf(&sb, "M%g,%g L%g,%g ", float64(start)*scale, yMid, float64(x)*scale, yMid)
		}
	}

	sb.WriteString("\"/>\n</svg>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return &Error{Kind: IOFailure, Msg: err.Error()}
	}
	return nil
}
