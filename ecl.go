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

package qrsymbol

import "strings"

// ECL is the error correction level of a QR code.
type ECL int8

// ECL values, in ascending order of recovery capacity.
const (
	Low      ECL = iota // Recovers ~7% of the code.
	Medium              // Recovers ~15% of the code.
	Quartile            // Recovers ~25% of the code.
	High                // Recovers ~30% of the code.
)

// formatBits returns the 2-bit encoding of the level used in format info.
func (e ECL) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrsymbol: unknown error correction level")
	}
}

func (e ECL) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// ParseECL parses an error correction level. It accepts the letters
// L/M/Q/H case-insensitively, and the documented percentage aliases
// 7/15/25/30 (with or without a trailing '%').
func ParseECL(s string) (ECL, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "%")
	switch s {
	case "L", "7":
		return Low, nil
	case "M", "15":
		return Medium, nil
	case "Q", "25":
		return Quartile, nil
	case "H", "30":
		return High, nil
	default:
		return 0, &Error{Kind: InvalidErrorLevel, Msg: "qrsymbol: invalid error correction level " + strings.TrimSpace(s)}
	}
}
