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

import "strings"

// Text renders matrix as an N-row string of "1"/"0" characters (dark =
// "1"), rows separated by newlines. Useful for debugging in a terminal.
func Text(matrix [][]bool) string {
	var sb strings.Builder
	for y, row := range matrix {
		for _, dark := range row {
			if dark {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if y < len(matrix)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
