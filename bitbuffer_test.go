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

func TestAppendBits(t *testing.T) {
	var bb bitBuffer
	bb.appendBits(1, 1)
	bb.appendBits(2, 2)
	bb.appendBits(0, 2)
	assert.Equal(t, bitBuffer{1, 1, 0, 0, 0}, bb)
}

func TestAppendBitsPanicsOnOutOfRangeValue(t *testing.T) {
	var bb bitBuffer
	assert.Panics(t, func() { bb.appendBits(4, 2) })
}

func TestAppendBitsPanicsOnNegativeLength(t *testing.T) {
	var bb bitBuffer
	assert.Panics(t, func() { bb.appendBits(0, -1) })
}

func TestBitBufferBytes(t *testing.T) {
	var bb bitBuffer
	bb.appendBits(0xA5, 8)
	assert.Equal(t, []byte{0xA5}, bb.bytes())
}

func TestBitBufferBytesPanicsWhenNotByteAligned(t *testing.T) {
	var bb bitBuffer
	bb.appendBits(1, 3)
	assert.Panics(t, func() { bb.bytes() })
}
