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

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGContainsExpectedMarkers(t *testing.T) {
	matrix := checkerboard(5)
	var buf bytes.Buffer
	require.NoError(t, SVG(matrix, 2, &buf, "", "#FFFFFF"))

	out := buf.String()
	assert.True(t, strings.Contains(out, `class="pyqrcode"`))
	assert.True(t, strings.Contains(out, `class="pyqrline"`))
	assert.True(t, strings.Contains(out, `viewBox="0 0 10 10"`))
}

func TestSVGOmitsBackgroundRectWhenBlank(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(checkerboard(5), 1, &buf, "", ""))
	assert.False(t, strings.Contains(buf.String(), "<rect"))
}

func TestSVGRejectsNegativeScale(t *testing.T) {
	var buf bytes.Buffer
	err := SVG(checkerboard(5), -1, &buf, "", "")
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, InvalidColor, rerr.Kind)
}
