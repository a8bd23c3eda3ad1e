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

func buildTestMatrix(version int) *symbolMatrix {
	m := newSymbolMatrix(version)
	m.placeFunctionPatterns()
	if version >= 7 {
		m.writeVersionInfo()
	}
	data := make([]byte, numRawDataModules[version]/8)
	for i := range data {
		data[i] = 0x55
	}
	m.writeCodewords(data)
	return m
}

func TestApplyMaskIsInvolution(t *testing.T) {
	m := buildTestMatrix(1)
	before := make([][]cellState, len(m.cell))
	for i, row := range m.cell {
		before[i] = append([]cellState{}, row...)
	}

	m.applyMask(Mask(3))
	m.applyMask(Mask(3))

	for i, row := range m.cell {
		assert.Equal(t, before[i], row)
	}
}

func TestChooseMaskPicksValidID(t *testing.T) {
	m := buildTestMatrix(1)
	mask := m.chooseMask(Medium)
	assert.True(t, mask >= 0 && mask < 8)
}

func TestPenaltyScoreNonNegative(t *testing.T) {
	m := buildTestMatrix(2)
	assert.GreaterOrEqual(t, m.penaltyScore(), 0)
}
