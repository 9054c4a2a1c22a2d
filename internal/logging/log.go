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

// Package logging wraps go-logging with a single diagnostic backend.
// The UCI transport reserves stdout for protocol responses, so every
// logger writes to stderr instead.
package logging

import (
	"os"

	. "github.com/op/go-logging"
)

var format = MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
)

// GetLog returns a named logger backed by a stderr text formatter at
// debug level. Call sites log.Errorf/log.Debugf etc. on the result.
func GetLog(name string) *Logger {
	log := MustGetLogger(name)
	backend := NewLogBackend(os.Stderr, "", 0)
	backendFormatter := NewBackendFormatter(backend, format)
	leveled := AddModuleLevel(backendFormatter)
	leveled.SetLevel(DEBUG, "")
	SetBackend(leveled)
	return log
}

// SetGlobalLevel adjusts the verbosity threshold for every module.
func SetGlobalLevel(level Level) {
	SetLevel(level, "")
}
