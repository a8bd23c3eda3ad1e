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
	"regexp"
	"strconv"
	"strings"
)

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
)

func isNumeric(s string) bool {
	return numericRegexp.MatchString(s)
}

func isAlphanumeric(upper string) bool {
	return alphanumericRegexp.MatchString(upper)
}

// encodeNumeric packs digits into groups of 3 -> 10 bits, with a 7-bit
// group for 2 trailing digits or a 4-bit group for 1 trailing digit.
func encodeNumeric(digits string) bitBuffer {
	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, err := strconv.Atoi(digits[i : i+n])
		if err != nil {
			panic("qrsymbol: non-numeric digit string reached the numeric encoder")
		}
		bb.appendBits(d, n*3+1)
		i += n
	}
	return bb
}

// encodeAlphanumeric packs pairs of characters into 11 bits (value =
// 45*v1 + v2), with a 6-bit group for a single trailing character.
func encodeAlphanumeric(upper string) bitBuffer {
	bb := make(bitBuffer, 0, len(upper)*6)
	i := 0
	for ; i+1 < len(upper); i += 2 {
		v := strings.IndexByte(alphanumericCharset, upper[i]) * 45
		v += strings.IndexByte(alphanumericCharset, upper[i+1])
		bb.appendBits(v, 11)
	}
	if i < len(upper) {
		bb.appendBits(strings.IndexByte(alphanumericCharset, upper[i]), 6)
	}
	return bb
}

// encodeBinary packs each byte into 8 bits, unchanged.
func encodeBinary(data []byte) bitBuffer {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}
	return bb
}

// payloadBitLen returns the number of payload bits a segment of the given
// mode and character count will occupy, without building the bits
// themselves. Used by version selection to find the minimal fit.
func payloadBitLen(mode Mode, charCount int) int {
	switch mode {
	case ModeNumeric:
		full := charCount / 3
		switch charCount % 3 {
		case 1:
			return full*10 + 4
		case 2:
			return full*10 + 7
		default:
			return full * 10
		}
	case ModeAlphanumeric:
		pairs := charCount / 2
		if charCount%2 == 1 {
			return pairs*11 + 6
		}
		return pairs * 11
	case ModeBinary:
		return charCount * 8
	default:
		panic("qrsymbol: payloadBitLen called for an unsupported mode")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
