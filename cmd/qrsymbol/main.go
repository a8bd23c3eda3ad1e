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

// Command qrsymbol is a thin demo binary: encode one piece of content and
// write it out as PNG, SVG, or text.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qroot/qrsymbol"
	"github.com/qroot/qrsymbol/render"
)

func main() {
	errorLevel := flag.String("error", "H", "error correction level: L, M, Q, or H")
	format := flag.String("format", "text", "output format: png, svg, or text")
	out := flag.String("out", "", "output file path (defaults to stdout)")
	scale := flag.Float64("scale", 4, "module scale")
	preview := flag.Bool("preview", false, "open an SVG preview in the system browser instead of writing output")
	mode := flag.String("mode", "", "force an encoding mode: numeric, alphanumeric, or binary (default: auto-detect)")
	version := flag.Int("version", 0, "force a QR code version 1-40 (default: smallest that fits)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qrsymbol [flags] <content>")
		os.Exit(2)
	}

	var opts []qrsymbol.Option
	if *mode != "" {
		m, err := qrsymbol.ParseMode(*mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qrsymbol:", err)
			os.Exit(2)
		}
		opts = append(opts, qrsymbol.WithMode(m))
	}
	if *version != 0 {
		opts = append(opts, qrsymbol.WithVersion(*version))
	}

	code, err := qrsymbol.New(flag.Arg(0), *errorLevel, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qrsymbol:", err)
		os.Exit(1)
	}

	if *preview {
		if err := render.OpenPreview(code.Modules(), *scale); err != nil {
			fmt.Fprintln(os.Stderr, "qrsymbol:", err)
			os.Exit(1)
		}
		return
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qrsymbol:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "png":
		err = render.PNG(code.Modules(), int(*scale), w, nil, nil)
	case "svg":
		err = render.SVG(code.Modules(), *scale, w, "", "#FFFFFF")
	case "text":
		_, err = fmt.Fprintln(w, render.Text(code.Modules()))
	default:
		fmt.Fprintf(os.Stderr, "qrsymbol: unknown format %q\n", *format)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "qrsymbol:", err)
		os.Exit(1)
	}
}
