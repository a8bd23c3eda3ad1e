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
	"github.com/stretchr/testify/require"
)

func TestParseECL(t *testing.T) {
	cases := map[string]ECL{
		"l": Low, "L": Low, "7": Low, "7%": Low,
		"m": Medium, " M ": Medium, "15": Medium, "15%": Medium,
		"q": Quartile, "Q": Quartile, "25": Quartile, "25%": Quartile,
		"h": High, "H": High, "30": High, "30%": High,
	}
	for s, want := range cases {
		got, err := ParseECL(s)
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, want, got, "input %q", s)
	}
}

func TestParseECLRejectsUnknown(t *testing.T) {
	_, err := ParseECL("X")
	require.Error(t, err)
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, InvalidErrorLevel, qerr.Kind)
}

func TestECLFormatBits(t *testing.T) {
	assert.Equal(t, 1, Low.formatBits())
	assert.Equal(t, 0, Medium.formatBits())
	assert.Equal(t, 3, Quartile.formatBits())
	assert.Equal(t, 2, High.formatBits())
}

func TestECLString(t *testing.T) {
	assert.Equal(t, "L", Low.String())
	assert.Equal(t, "M", Medium.String())
	assert.Equal(t, "Q", Quartile.String())
	assert.Equal(t, "H", High.String())
}
