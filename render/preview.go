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
	"os"

	"github.com/pkg/browser"
)

// OpenPreview writes matrix to a temporary SVG file at the given scale
// and opens it in the system's default browser. It is a development
// convenience, not part of the core rendering contract. Failures to create
// the file or open the browser are IOFailure errors; an error from SVG
// (such as InvalidColor for a negative scale) is returned unchanged.
func OpenPreview(matrix [][]bool, scale float64) error {
	f, err := os.CreateTemp("", "qrsymbol-*.svg")
	if err != nil {
		return &Error{Kind: IOFailure, Msg: err.Error()}
	}
	defer f.Close()

	if err := SVG(matrix, scale, f, "", "#FFFFFF"); err != nil {
		return err
	}

	if err := browser.OpenFile(f.Name()); err != nil {
		return &Error{Kind: IOFailure, Msg: err.Error()}
	}
	return nil
}
