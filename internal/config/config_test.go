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

package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetForTest clears Setup's idempotency guard so each test gets a fresh
// read of ConfFile.
func resetForTest() {
	initialized = false
	Settings = conf{}
}

func TestSetupFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	resetForTest()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")

	Setup()

	assert.Equal(t, "chessmagic", Settings.Engine.Name)
	assert.Equal(t, "the chessmagic contributors", Settings.Engine.Author)
}

func TestSetupReadsTomlFile(t *testing.T) {
	resetForTest()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "[Engine]\nName = \"testmagic\"\nAuthor = \"a tester\"\nPerftWorkers = 4\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0o644))
	ConfFile = path

	Setup()

	assert.Equal(t, "testmagic", Settings.Engine.Name)
	assert.Equal(t, "a tester", Settings.Engine.Author)
	assert.Equal(t, 4, Settings.Engine.PerftWorkers)
}

func TestSetupIsIdempotent(t *testing.T) {
	resetForTest()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")
	Setup()

	Settings.Engine.Name = "mutated-by-test"
	Setup()

	assert.Equal(t, "mutated-by-test", Settings.Engine.Name, "a second Setup call must be a no-op")
}

func TestConfStringIncludesEngineFields(t *testing.T) {
	resetForTest()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")
	Setup()

	s := Settings.String()
	assert.Contains(t, s, "Name")
	assert.Contains(t, s, "chessmagic")
}
