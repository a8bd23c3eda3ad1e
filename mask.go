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

// Mask identifies which of the 8 standard mask patterns was applied to a
// symbol's data/EC modules.
type Mask int8

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskPredicates is the closed set of mask functions; selected by index
// (the mask id), never by subtype dispatch.
var maskPredicates = [8]func(r, c int) bool{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return r*c%2+r*c%3 == 0 },
	func(r, c int) bool { return (r*c%2+r*c%3)%2 == 0 },
	func(r, c int) bool { return ((r+c)%2+r*c%3)%2 == 0 },
}

// applyMask XORs every maskable module with the given mask predicate.
// Applying the same mask twice is a no-op (pure XOR), which is how
// chooseMask evaluates a candidate and then undoes it.
func (m *symbolMatrix) applyMask(mask Mask) {
	predicate := maskPredicates[mask]
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if m.maskable(r, c) && predicate(r, c) {
				if m.cell[r][c] == cellDark {
					m.cell[r][c] = cellLight
				} else {
					m.cell[r][c] = cellDark
				}
			}
		}
	}
}

// chooseMask tries all 8 masks, writing tentative format info for each so
// the format-info region (reserved, not masked, but mask-dependent) is
// included in its own penalty score, and returns the id with the lowest
// total penalty (ties favor the lower id).
func (m *symbolMatrix) chooseMask(ecl ECL) Mask {
	best := Mask(0)
	bestPenalty := -1

	for candidate := Mask(0); candidate < 8; candidate++ {
		m.applyMask(candidate)
		m.writeFormatInfo(ecl, candidate)
		penalty := m.penaltyScore()
		if bestPenalty < 0 || penalty < bestPenalty {
			best = candidate
			bestPenalty = penalty
		}
		m.applyMask(candidate) // Undo; pure XOR.
	}

	m.applyMask(best)
	m.writeFormatInfo(ecl, best)
	return best
}

// penaltyScore computes N1+N2+N3+N4 over the full matrix.
func (m *symbolMatrix) penaltyScore() int {
	result := 0

	for y := 0; y < m.size; y++ {
		runColor := cellLight
		runLen := 0
		var history [7]int
		for x := 0; x < m.size; x++ {
			color := darkAsState(m.cell[y][x].dark())
			if color == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				addFinderHistory(runLen, &history, m.size)
				if runColor == cellLight {
					result += countFinderPatterns(history, m.size) * penaltyN3
				}
				runColor = color
				runLen = 1
			}
		}
		result += terminateFinderRun(runColor, runLen, &history, m.size) * penaltyN3
	}

	for x := 0; x < m.size; x++ {
		runColor := cellLight
		runLen := 0
		var history [7]int
		for y := 0; y < m.size; y++ {
			color := darkAsState(m.cell[y][x].dark())
			if color == runColor {
				runLen++
				if runLen == 5 {
					result += penaltyN1
				} else if runLen > 5 {
					result++
				}
			} else {
				addFinderHistory(runLen, &history, m.size)
				if runColor == cellLight {
					result += countFinderPatterns(history, m.size) * penaltyN3
				}
				runColor = color
				runLen = 1
			}
		}
		result += terminateFinderRun(runColor, runLen, &history, m.size) * penaltyN3
	}

	for y := 0; y < m.size-1; y++ {
		for x := 0; x < m.size-1; x++ {
			d := m.cell[y][x].dark()
			if d == m.cell[y][x+1].dark() && d == m.cell[y+1][x].dark() && d == m.cell[y+1][x+1].dark() {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.cell[y][x].dark() {
				dark++
			}
		}
	}
	total := m.size * m.size
	k := (absInt(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

func darkAsState(dark bool) cellState {
	if dark {
		return cellDark
	}
	return cellLight
}

// addFinderHistory pushes a finished run length to the front of the
// 7-entry history, dropping the oldest. The very first run additionally
// counts the symbol's light border as part of its length.
func addFinderHistory(runLen int, history *[7]int, size int) {
	if history[0] == 0 {
		runLen += size
	}
	copy(history[1:], history[:6])
	history[0] = runLen
}

// countFinderPatterns detects the 1:1:3:1:1 finder-like ratio centered on
// history[1], scored once per border it qualifies against.
func countFinderPatterns(history [7]int, size int) int {
	n := history[1]
	if n > size*3 {
		panic("qrsymbol: corrupt run history")
	}
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

func terminateFinderRun(runColor cellState, runLen int, history *[7]int, size int) int {
	if runColor == cellDark {
		addFinderHistory(runLen, history, size)
		runLen = 0
	}
	runLen += size
	addFinderHistory(runLen, history, size)
	return countFinderPatterns(*history, size)
}
