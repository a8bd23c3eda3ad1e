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
 *
 * Tables modeled after https://github.com/nayuki/QR-Code-generator and the
 * generating formulas in ISO/IEC 18004.
 */

package qrsymbol

// MinVersion and MaxVersion bound the QR code version range.
const (
	MinVersion = 1
	MaxVersion = 40
)

// eccCodeWordsPerBlock[ecl][version] is the number of error-correction
// codewords per block.
var eccCodeWordsPerBlock = [4][41]int{
	// index 0 is unused padding (versions are 1-indexed).
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},     // L
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},    // M
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},    // Q
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},    // H
}

// numErrorCorrectionBlocks[ecl][version] is the number of EC blocks the
// data codewords are split across.
var numErrorCorrectionBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// numRawDataModules[version] is the number of bits available for data +
// EC codewords + remainder bits, after excluding all function patterns.
var numRawDataModules [41]int

// numDataCodewords[ecl][version] is the number of 8-bit data codewords
// (remainder bits and EC codewords excluded).
var numDataCodewords [4][41]int

// alignmentPatternPositions[version] lists the ascending row/column
// coordinates shared by both axes for alignment pattern centers.
var alignmentPatternPositions [41][]int

func init() {
	for v := 1; v <= MaxVersion; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("qrsymbol: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= MaxVersion; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodeWordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	for v := 1; v <= MaxVersion; v++ {
		alignmentPatternPositions[v] = computeAlignmentPatternPositions(v)
	}
}

// computeAlignmentPatternPositions follows the standard's placement
// formula: evenly spaced centers starting at 6 and ending 7 modules in
// from the opposite finder, except version 32 which uses a fixed step.
func computeAlignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	pos := version*4 + 17 - 7
	for i := len(result) - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}
