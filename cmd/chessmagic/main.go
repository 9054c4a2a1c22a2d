/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tkellan/chessmagic/internal/config"
	"github.com/tkellan/chessmagic/internal/engine"
	"github.com/tkellan/chessmagic/internal/movegen"
	"github.com/tkellan/chessmagic/internal/position"
	"github.com/tkellan/chessmagic/internal/uci"
)

const version = "1.0.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFEN, "starting position for -perft, ignored otherwise")
	perft := flag.Int("perft", 0, "runs perft divide on -fen to the given depth and exits, instead of entering the UCI loop")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	eng := engine.NewMaterialEngine()
	d := uci.NewDispatcher(os.Stdout, eng)
	if err := d.Run(os.Stdin); err != nil {
		out.Printf("i/o failure reading UCI input: %v\n", err)
		os.Exit(1)
	}
}

func runPerft(fen string, depth int) {
	cb, err := position.FromFEN(fen)
	if err != nil {
		out.Printf("malformed fen: %v\n", err)
		os.Exit(1)
	}
	for _, e := range movegen.PerftDivide(cb, depth) {
		out.Printf("%s: %d\n", e.Move.String(), e.Nodes)
	}
	out.Println()
	out.Printf("Nodes searched: %d\n", movegen.Perft(cb, depth))
}

func printVersionInfo() {
	out.Printf("chessmagic %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
