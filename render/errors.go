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

// Package render turns a finished QR code module matrix into PNG, SVG,
// or plain text output. It never reaches back into package qrsymbol for
// anything beyond the [][]bool matrix contract: the encoder and the
// renderers are separate, loosely-coupled collaborators.
package render

// ErrorKind classifies errors raised by the render package.
type ErrorKind int8

const (
	InvalidColor ErrorKind = iota
	IOFailure
)

// Error is returned by PNG/SVG when a color argument or the underlying
// sink is invalid.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}
