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

// Package uci implements a line-oriented dispatcher over the core: it
// owns a position (base FEN plus applied move list) and a handle to an
// engine capability, and translates protocol lines into core calls.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tkellan/chessmagic/internal/config"
	"github.com/tkellan/chessmagic/internal/engine"
	"github.com/tkellan/chessmagic/internal/logging"
	"github.com/tkellan/chessmagic/internal/movegen"
	"github.com/tkellan/chessmagic/internal/position"
	"github.com/tkellan/chessmagic/internal/util"
)

var log = logging.GetLog("uci")

// Dispatcher reads UCI lines, mutates the current position, and calls
// either the perft walker or the engine capability, writing protocol
// responses to out. Every response is flushed before the next line is
// read, per the single-threaded ordering guarantee.
type Dispatcher struct {
	out    *bufio.Writer
	engine engine.ChessEngine

	baseFEN string
	moves   []string

	// busy marks whether a "go" is currently being answered, so "stop"
	// has something meaningful to report even though this dispatcher
	// answers every "go" synchronously before reading the next line.
	busy *util.Bool
}

// NewDispatcher creates a dispatcher writing protocol output to out and
// driving eng for "go" commands.
func NewDispatcher(out io.Writer, eng engine.ChessEngine) *Dispatcher {
	return &Dispatcher{
		out:     bufio.NewWriter(out),
		engine:  eng,
		baseFEN: position.StartFEN,
		busy:    util.NewBool(false),
	}
}

// Run reads lines from in until EOF or a "quit" command. Returns nil on
// a clean shutdown; a non-nil error only on a read failure on in.
func (d *Dispatcher) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if d.dispatch(line) {
			return nil
		}
	}
	return scanner.Err()
}

// dispatch handles a single line, returning true if the caller should quit.
func (d *Dispatcher) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "uci":
		d.printf("id name %s\n", config.Settings.Engine.Name)
		d.printf("id author %s\n", config.Settings.Engine.Author)
		d.printf("uciok\n")
	case "isready":
		d.printf("readyok\n")
	case "ucinewgame":
		d.baseFEN = position.StartFEN
		d.moves = nil
	case "position":
		if err := d.handlePosition(args); err != nil {
			log.Errorf("position: %v", err)
		}
	case "go":
		d.handleGo(args)
	case "stop":
		if d.busy.Load() {
			log.Debugf("stop received while a go was in flight")
		}
	case "setoption", "debug", "ponderhit", "register":
		// Accepted and ignored: these never crash or error out.
	case "quit":
		d.flush()
		return true
	default:
		// Unknown commands are ignored.
	}
	d.flush()
	return false
}

func (d *Dispatcher) handlePosition(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("protocol misuse: position requires arguments")
	}

	var fen string
	rest := args[1:]

	switch args[0] {
	case "startpos":
		fen = position.StartFEN
	case "fen":
		if len(rest) == 0 {
			return fmt.Errorf("protocol misuse: position fen requires a FEN string")
		}
		var fenFields []string
		for len(rest) > 0 && rest[0] != "moves" {
			fenFields = append(fenFields, rest[0])
			rest = rest[1:]
		}
		fen = strings.Join(fenFields, " ")
	default:
		return fmt.Errorf("protocol misuse: position requires startpos or fen")
	}

	var moves []string
	if len(rest) > 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("protocol misuse: expected 'moves' keyword")
		}
		moves = rest[1:]
	}

	// Validate the resulting position before committing to it: a
	// malformed FEN must leave the previous position unchanged.
	if _, err := position.FromFENWithMoves(fen, moves); err != nil {
		return err
	}
	d.baseFEN = fen
	d.moves = moves
	return nil
}

func (d *Dispatcher) handleGo(args []string) {
	d.busy.Store(true)
	defer d.busy.Store(false)

	if len(args) >= 1 && args[0] == "perft" {
		if len(args) < 2 {
			log.Errorf("go perft: missing depth")
			return
		}
		depth, err := strconv.Atoi(args[1])
		if err != nil {
			log.Errorf("go perft: invalid depth %q", args[1])
			return
		}
		d.runPerft(depth)
		return
	}

	if err := d.engine.Position(d.baseFEN, d.moves); err != nil {
		log.Errorf("go: %v", err)
		d.printf("bestmove 0000\n")
		return
	}
	move, _, ok := d.engine.CurrentBestMove()
	if !ok {
		d.printf("bestmove 0000\n")
		return
	}
	d.printf("bestmove %s\n", move.String())
}

func (d *Dispatcher) runPerft(depth int) {
	cb, err := position.FromFENWithMoves(d.baseFEN, d.moves)
	if err != nil {
		log.Errorf("go perft: %v", err)
		return
	}
	for _, e := range movegen.PerftDivide(cb, depth) {
		d.printf("%s: %d\n", e.Move.String(), e.Nodes)
	}
	d.printf("\n")
	d.printf("Nodes searched: %d\n", movegen.Perft(cb, depth))
}

func (d *Dispatcher) printf(format string, a ...interface{}) {
	fmt.Fprintf(d.out, format, a...)
}

func (d *Dispatcher) flush() {
	_ = d.out.Flush()
}
