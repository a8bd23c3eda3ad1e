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

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		InvalidErrorLevel:  "InvalidErrorLevel",
		ModeMismatch:       "ModeMismatch",
		UnimplementedMode:  "UnimplementedMode",
		ContentTooLarge:    "ContentTooLarge",
		UserVersionTooSmall: "UserVersionTooSmall",
		ErrorKind(99):      "Unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = &Error{Kind: ContentTooLarge, Msg: "too big"}
	assert.Equal(t, "too big", err.Error())
}
