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

package types

// File represents a board file a..h.
type File uint8

const (
	FileA File = 0
	FileB File = 1
	FileC File = 2
	FileD File = 3
	FileE File = 4
	FileF File = 5
	FileG File = 6
	FileH File = 7
)

const fileLabels = "abcdefgh"

// IsValid reports whether f is one of the eight files.
func (f File) IsValid() bool { return f < 8 }

// String returns the file letter, or "-" if invalid.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileLabels[f])
}

// Rank represents a board rank 1..8, stored as rank-number minus one.
type Rank uint8

const (
	Rank1 Rank = 0
	Rank2 Rank = 1
	Rank3 Rank = 2
	Rank4 Rank = 3
	Rank5 Rank = 4
	Rank6 Rank = 5
	Rank7 Rank = 6
	Rank8 Rank = 7
)

const rankLabels = "12345678"

// IsValid reports whether r is one of the eight ranks.
func (r Rank) IsValid() bool { return r < 8 }

// String returns the rank digit, or "-" if invalid.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rankLabels[r])
}
