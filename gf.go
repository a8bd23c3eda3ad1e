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

// GF(256) arithmetic over the primitive polynomial x^8+x^4+x^3+x^2+1
// (0x11D), used by the Reed-Solomon encoder. Log/antilog tables are
// precomputed once at init and shared read-only across all encodings.
const gfPrimitive = 0x11D

var (
	gfExp [512]byte
	gfLog [256]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitive
		}
	}
	for i := 255; i < 512; i++ {
		gfExp[i] = gfExp[i-255]
	}
}

// gfMultiply returns a*b in GF(256) via the log/antilog tables, with a
// zero short-circuit (log(0) is undefined).
func gfMultiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+int(gfLog[b])]
}

// rsGeneratorCache memoizes generator polynomials by degree, since the
// same few degrees (7,10,13,...,30) recur across every (version, ecl).
var rsGeneratorCache = map[int][]byte{}

func init() {
	seen := map[int]bool{}
	for e := Low; e <= High; e++ {
		for v := 1; v <= MaxVersion; v++ {
			seen[eccCodeWordsPerBlock[e][v]] = true
		}
	}
	for degree := range seen {
		rsGeneratorCache[degree] = rsGeneratorPolynomial(degree)
	}
}

// rsGeneratorPolynomial computes g(x) = prod_{i=0}^{degree-1} (x - a^i),
// stored highest-to-lowest power excluding the implicit leading x^degree
// term, which is always 1.
func rsGeneratorPolynomial(degree int) []byte {
	result := make([]byte, degree)
	result[degree-1] = 1

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = gfMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMultiply(root, 2)
	}

	return result
}

// rsRemainder computes data(x) * x^deg(generator) mod generator(x) by
// polynomial long division, yielding the EC codewords for one block.
func rsRemainder(data, generator []byte) []byte {
	result := make([]byte, len(generator))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := range result {
			result[i] ^= gfMultiply(generator[i], factor)
		}
	}
	return result
}
