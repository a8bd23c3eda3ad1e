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

// addECCAndInterleave splits data (exactly numDataCodewords[ecl][version]
// bytes) into the EC blocks prescribed for (version, ecl), computes each
// block's Reed-Solomon remainder, and interleaves data then EC codewords
// across blocks into the final raw codeword sequence. The returned slice
// holds numRawDataModules[version]/8 codewords; the symbol's remainder
// bits beyond it are not included, and writeCodewords leaves those
// modules unwritten, so they read as light (zero) before masking.
func addECCAndInterleave(ecl ECL, version int, data []byte) []byte {
	if len(data) != numDataCodewords[ecl][version] {
		panic("qrsymbol: data is not the expected length for this version/ecl")
	}

	numBlocks := numErrorCorrectionBlocks[ecl][version]
	blockECCLen := eccCodeWordsPerBlock[ecl][version]
	rawCodewords := numRawDataModules[version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks
	generator := rsGeneratorCache[blockECCLen]

	blocks := make([][]byte, numBlocks)
	for i, k := 0, 0; i < numBlocks; i++ {
		extra := 0
		if i >= numShortBlocks {
			extra = 1
		}
		chunk := data[k : k+shortBlockLen-blockECCLen+extra]
		k += len(chunk)

		block := make([]byte, shortBlockLen+1)
		copy(block, chunk)
		ecc := rsRemainder(chunk, generator)
		copy(block[len(block)-len(ecc):], ecc)
		blocks[i] = block
	}

	result := make([]byte, rawCodewords)
	for i, k := 0, 0; i < len(blocks[0]); i++ {
		for j := 0; j < len(blocks); j++ {
			// Short blocks are one byte shorter; skip their absent padding slot.
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}
