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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddECCAndInterleaveLength(t *testing.T) {
	for _, tc := range []struct {
		ecl     ECL
		version int
	}{
		{Low, 1}, {Medium, 1}, {High, 5}, {Quartile, 10},
	} {
		data := make([]byte, numDataCodewords[tc.ecl][tc.version])
		for i := range data {
			data[i] = byte(i)
		}
		got := addECCAndInterleave(tc.ecl, tc.version, data)
		assert.Equal(t, numRawDataModules[tc.version]/8, len(got))
	}
}

func TestAddECCAndInterleavePanicsOnWrongLength(t *testing.T) {
	assert.Panics(t, func() {
		addECCAndInterleave(Low, 1, make([]byte, 1))
	})
}

func TestAddECCAndInterleaveSingleBlockRoundTrips(t *testing.T) {
	// Version 1-L has a single EC block, so the interleaved codeword
	// stream is exactly data followed by its Reed-Solomon remainder.
	data := make([]byte, numDataCodewords[Low][1])
	for i := range data {
		data[i] = byte(i * 7)
	}
	got := addECCAndInterleave(Low, 1, data)
	assert.Equal(t, data, got[:len(data)])

	generator := rsGeneratorCache[eccCodeWordsPerBlock[Low][1]]
	assert.Equal(t, rsRemainder(data, generator), got[len(data):])
}
