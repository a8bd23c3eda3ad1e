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
	"strconv"
	"strings"
)

// Mode identifies how a QR code's payload is packed into the bitstream.
type Mode int8

// The four modes defined by ISO/IEC 18004. Kanji is recognized for error
// reporting but is never produced: Shift-JIS packing is unimplemented.
const (
	ModeNumeric Mode = iota
	ModeAlphanumeric
	ModeBinary
	ModeKanji
)

// charCountBitsTable holds the character-count indicator width for each
// mode, indexed by version range: [1,9], [10,26], [27,40].
var charCountBitsTable = [4][3]int{
	{10, 12, 14}, // numeric
	{9, 11, 13},  // alphanumeric
	{8, 16, 16},  // binary
	{8, 10, 12},  // kanji
}

var modeIndicator = [4]int{0x1, 0x2, 0x4, 0x8}

func versionRangeIndex(version int) int {
	switch {
	case version <= 9:
		return 0
	case version <= 26:
		return 1
	default:
		return 2
	}
}

func (m Mode) indicator() int {
	return modeIndicator[m]
}

func (m Mode) charCountBits(version int) int {
	return charCountBitsTable[m][versionRangeIndex(version)]
}

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	case ModeBinary:
		return "binary"
	case ModeKanji:
		return "kanji"
	default:
		return "unknown"
	}
}

// ParseMode parses a case-insensitive mode name as accepted by New's
// WithMode option.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric":
		return ModeNumeric, nil
	case "alphanumeric":
		return ModeAlphanumeric, nil
	case "binary":
		return ModeBinary, nil
	case "kanji":
		return ModeKanji, nil
	default:
		return 0, &Error{Kind: ModeMismatch, Msg: "qrsymbol: unknown mode " + strconv.Quote(s)}
	}
}
