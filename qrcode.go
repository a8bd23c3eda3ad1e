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
 * Modeled after https://github.com/nayuki/QR-Code-generator and
 * pyqrcode's QRCode constructor.
 */

package qrsymbol

import (
	"fmt"
	"strings"
)

// QRCode is a fully-built QR code symbol. A successful call to New
// implies a complete, valid symbol: there is no separate "build" step,
// and every read-only accessor below is safe to call immediately.
type QRCode struct {
	version int
	mode    Mode
	ecl     ECL
	mask    Mask
	matrix  *symbolMatrix
}

// Option customizes New's behavior beyond the required content and error
// level. The zero value of the option set auto-detects mode and picks
// the smallest version that fits.
type Option func(*options)

type options struct {
	version *int
	mode    *Mode
}

// WithVersion forces a specific version (1-40). New fails with
// UserVersionTooSmall if it cannot hold the content.
func WithVersion(version int) Option {
	return func(o *options) { o.version = &version }
}

// WithMode forces a specific encoding mode. New fails with ModeMismatch
// if the content cannot be encoded that way, or UnimplementedMode for
// kanji.
func WithMode(mode Mode) Option {
	return func(o *options) { o.mode = &mode }
}

// New builds a QR code for content at the given error correction level
// (L, M, Q, H, case-insensitive, or their documented percentage aliases).
// content may be a string, []byte, or any integer type; it is coerced to
// text the way pyqrcode's str(content) does.
func New(content interface{}, errorLevel string, opts ...Option) (*QRCode, error) {
	ecl, err := ParseECL(errorLevel)
	if err != nil {
		return nil, err
	}

	text, raw := coerceContent(content)

	var o options
	for _, apply := range opts {
		apply(&o)
	}

	detected := detectMode(text)
	mode, err := resolveMode(detected, o.mode)
	if err != nil {
		return nil, err
	}

	charCount := len(text)
	if mode == ModeBinary {
		charCount = len(raw)
	}

	minVersion, err := selectVersion(mode, charCount, ecl)
	if err != nil {
		return nil, err
	}

	version := minVersion
	if o.version != nil {
		if *o.version < minVersion {
			return nil, &Error{
				Kind: UserVersionTooSmall,
				Msg: fmt.Sprintf("qrsymbol: version %d is too small for this content at error level %s "+
					"(minimum version is %d)", *o.version, ecl, minVersion),
			}
		}
		version = *o.version
	}

	if mode == ModeAlphanumeric {
		text = strings.ToUpper(text)
	}

	bits, err := buildBitstream(mode, version, ecl, text, raw)
	if err != nil {
		return nil, err
	}

	rawCodewords := addECCAndInterleave(ecl, version, bits.bytes())

	matrix := newSymbolMatrix(version)
	matrix.placeFunctionPatterns()
	if version >= 7 {
		matrix.writeVersionInfo()
	}
	matrix.writeCodewords(rawCodewords)
	mask := matrix.chooseMask(ecl)

	return &QRCode{
		version: version,
		mode:    mode,
		ecl:     ecl,
		mask:    mask,
		matrix:  matrix,
	}, nil
}

// Version is the symbol's QR code version (1-40).
func (q *QRCode) Version() int { return q.version }

// Mode is the encoding mode that was actually used.
func (q *QRCode) Mode() Mode { return q.mode }

// ECL is the error correction level that was actually used.
func (q *QRCode) ECL() ECL { return q.ecl }

// Mask is the mask pattern id (0-7) selected for this symbol.
func (q *QRCode) Mask() Mask { return q.mask }

// Size is the width/height of the module matrix in modules.
func (q *QRCode) Size() int { return q.matrix.size }

// Modules returns the final NxN module matrix; true means dark.
func (q *QRCode) Modules() [][]bool {
	out := make([][]bool, q.matrix.size)
	for y := range out {
		row := make([]bool, q.matrix.size)
		for x := range row {
			row[x] = q.matrix.cell[y][x].dark()
		}
		out[y] = row
	}
	return out
}

// coerceContent turns content into its text form (for numeric/
// alphanumeric detection and encoding) and its raw bytes (for binary
// encoding and for counting payload length in binary mode).
func coerceContent(content interface{}) (text string, raw []byte) {
	switch v := content.(type) {
	case string:
		return v, []byte(v)
	case []byte:
		return string(v), v
	case fmt.Stringer:
		s := v.String()
		return s, []byte(s)
	default:
		s := fmt.Sprintf("%v", v)
		return s, []byte(s)
	}
}

// detectMode guesses the content type in priority order: numeric, then
// alphanumeric (tested against the uppercased text, per the preserved
// source quirk), then binary as the fallback.
func detectMode(text string) Mode {
	if isNumeric(text) {
		return ModeNumeric
	}
	if isAlphanumeric(strings.ToUpper(text)) {
		return ModeAlphanumeric
	}
	return ModeBinary
}

// resolveMode validates a user-requested mode against the detected
// content type, or returns the detected mode unchanged if none was
// requested.
func resolveMode(detected Mode, requested *Mode) (Mode, error) {
	if requested == nil {
		return detected, nil
	}

	switch *requested {
	case ModeKanji:
		return 0, &Error{Kind: UnimplementedMode, Msg: "qrsymbol: kanji encoding is not implemented"}
	case ModeNumeric:
		if detected != ModeNumeric {
			return 0, &Error{Kind: ModeMismatch, Msg: "qrsymbol: content cannot be encoded as numeric"}
		}
		return ModeNumeric, nil
	case ModeAlphanumeric:
		if detected == ModeBinary {
			return 0, &Error{Kind: ModeMismatch, Msg: "qrsymbol: content cannot be encoded as alphanumeric"}
		}
		return ModeAlphanumeric, nil
	case ModeBinary:
		return ModeBinary, nil
	default:
		return 0, &Error{Kind: ModeMismatch, Msg: "qrsymbol: unknown mode"}
	}
}

// selectVersion finds the smallest version whose data capacity holds
// charCount characters (bytes, for binary) of mode at the given ecl.
func selectVersion(mode Mode, charCount int, ecl ECL) (int, error) {
	for version := MinVersion; version <= MaxVersion; version++ {
		ccBits := mode.charCountBits(version)
		if charCount >= 1<<ccBits {
			continue // Character count indicator can't represent this length yet.
		}
		needed := 4 + ccBits + payloadBitLen(mode, charCount)
		capacity := numDataCodewords[ecl][version] * 8
		if needed <= capacity {
			return version, nil
		}
	}
	return 0, &Error{
		Kind: ContentTooLarge,
		Msg:  fmt.Sprintf("qrsymbol: content does not fit in any version 1-40 at error level %s as %s", ecl, mode),
	}
}

// buildBitstream assembles the mode indicator, character count
// indicator, payload, terminator, byte-alignment pad, and fill-pad
// codewords for the resolved (mode, version, ecl).
func buildBitstream(mode Mode, version int, ecl ECL, text string, raw []byte) (bitBuffer, error) {
	var bb bitBuffer
	bb.appendBits(mode.indicator(), 4)

	var charCount int
	var payload bitBuffer
	switch mode {
	case ModeNumeric:
		charCount = len(text)
		payload = encodeNumeric(text)
	case ModeAlphanumeric:
		charCount = len(text)
		payload = encodeAlphanumeric(text)
	case ModeBinary:
		charCount = len(raw)
		payload = encodeBinary(raw)
	default:
		return nil, &Error{Kind: UnimplementedMode, Msg: "qrsymbol: kanji encoding is not implemented"}
	}

	bb.appendBits(charCount, mode.charCountBits(version))
	bb = append(bb, payload...)

	capacityBits := numDataCodewords[ecl][version] * 8
	if len(bb) > capacityBits {
		return nil, &Error{
			Kind: ContentTooLarge,
			Msg:  "qrsymbol: encoded content exceeds the selected version's capacity",
		}
	}

	term := 4
	if capacityBits-len(bb) < term {
		term = capacityBits - len(bb)
	}
	bb.appendBits(0, term)

	if pad := (8 - len(bb)%8) % 8; pad > 0 {
		bb.appendBits(0, pad)
	}

	for padByte := 0xEC; len(bb) < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	return bb, nil
}
