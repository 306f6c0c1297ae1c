// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dm implements ECC200 Data Matrix symbol layout.

It provides the standard symbol sizes of ISO/IEC 16022 and the
rectangular extensions of ISO 21471, and maps codewords onto the data
region of a symbol using the placement algorithm implemented by
package placement.  Producing the codewords (data encodation and
Reed-Solomon check codewords) and the finder and timing patterns
around the data region are outside its scope.
*/
package dm // import "github.com/unixdj/dm"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/dm/placement"
)

// ErrLength reports a codeword slice whose length does not match the
// symbol size.
var ErrLength = errors.New("dm: wrong codeword count")

// A Size represents a Data Matrix symbol size.  The constants are
// ordered by data capacity.
type Size int

// Symbol sizes.  SquareN is N by N modules; RectRxC is R modules tall
// and C wide.  Sizes from Rect8x48 up to Rect26x64 are rectangular
// extensions (DMRE, ISO 21471).
const (
	Square10 Size = iota
	Square12
	Rect8x18
	Square14
	Rect8x32
	Square16
	Rect12x26
	Square18
	Rect8x48
	Square20
	Rect12x36
	Rect8x64
	Square22
	Rect16x36
	Rect8x80
	Square24
	Rect8x96
	Rect12x64
	Square26
	Rect20x36
	Rect16x48
	Rect8x120
	Rect20x44
	Square32
	Rect16x64
	Rect8x144
	Rect12x88
	Rect26x40
	Rect22x48
	Rect24x48
	Rect20x64
	Square36
	Rect26x48
	Rect24x64
	Square40
	Rect26x64
	Square44
	Square48
	Square52
	Square64
	Square72
	Square80
	Square88
	Square96
	Square104
	Square120
	Square132
	Square144

	// MinSize and MaxSize bound the valid sizes.
	MinSize = Square10
	MaxSize = Square144
)

// A size describes the symbol geometry and codeword capacity of a
// Size.
type size struct {
	width  int // symbol width in modules
	height int // symbol height in modules
	data   int // data codewords
	blocks int // interleaved Reed-Solomon blocks
	check  int // check codewords per block
	valign int // extra vertical alignment patterns
	halign int // extra horizontal alignment patterns
	dmre   bool
}

// Symbol size table, ISO/IEC 16022 table 7 and ISO 21471 table 7.
var sizes = [...]size{
	Square10:  {10, 10, 3, 1, 5, 0, 0, false},
	Square12:  {12, 12, 5, 1, 7, 0, 0, false},
	Square14:  {14, 14, 8, 1, 10, 0, 0, false},
	Square16:  {16, 16, 12, 1, 12, 0, 0, false},
	Square18:  {18, 18, 18, 1, 14, 0, 0, false},
	Square20:  {20, 20, 22, 1, 18, 0, 0, false},
	Square22:  {22, 22, 30, 1, 20, 0, 0, false},
	Square24:  {24, 24, 36, 1, 24, 0, 0, false},
	Square26:  {26, 26, 44, 1, 28, 0, 0, false},
	Square32:  {32, 32, 62, 1, 36, 1, 1, false},
	Square36:  {36, 36, 86, 1, 42, 1, 1, false},
	Square40:  {40, 40, 114, 1, 48, 1, 1, false},
	Square44:  {44, 44, 144, 1, 56, 1, 1, false},
	Square48:  {48, 48, 174, 1, 68, 1, 1, false},
	Square52:  {52, 52, 204, 2, 42, 1, 1, false},
	Square64:  {64, 64, 280, 2, 56, 3, 3, false},
	Square72:  {72, 72, 368, 4, 36, 3, 3, false},
	Square80:  {80, 80, 456, 4, 48, 3, 3, false},
	Square88:  {88, 88, 576, 4, 56, 3, 3, false},
	Square96:  {96, 96, 696, 4, 68, 3, 3, false},
	Square104: {104, 104, 816, 6, 56, 3, 3, false},
	Square120: {120, 120, 1050, 6, 68, 5, 5, false},
	Square132: {132, 132, 1304, 8, 62, 5, 5, false},
	Square144: {144, 144, 1558, 10, 62, 5, 5, false},
	Rect8x18:  {18, 8, 5, 1, 7, 0, 0, false},
	Rect8x32:  {32, 8, 10, 1, 11, 1, 0, false},
	Rect12x26: {26, 12, 16, 1, 14, 0, 0, false},
	Rect12x36: {36, 12, 22, 1, 18, 1, 0, false},
	Rect16x36: {36, 16, 32, 1, 24, 1, 0, false},
	Rect16x48: {48, 16, 49, 1, 28, 1, 0, false},
	Rect8x48:  {48, 8, 18, 1, 15, 1, 0, true},
	Rect8x64:  {64, 8, 24, 1, 18, 3, 0, true},
	Rect8x80:  {80, 8, 32, 1, 22, 3, 0, true},
	Rect8x96:  {96, 8, 38, 1, 28, 3, 0, true},
	Rect8x120: {120, 8, 49, 1, 32, 5, 0, true},
	Rect8x144: {144, 8, 63, 1, 36, 5, 0, true},
	Rect12x64: {64, 12, 43, 1, 27, 3, 0, true},
	Rect12x88: {88, 12, 64, 1, 36, 3, 0, true},
	Rect16x64: {64, 16, 62, 1, 36, 3, 0, true},
	Rect20x36: {36, 20, 44, 1, 28, 1, 0, true},
	Rect20x44: {44, 20, 56, 1, 34, 1, 0, true},
	Rect20x64: {64, 20, 84, 1, 42, 3, 0, true},
	Rect22x48: {48, 22, 72, 1, 38, 1, 0, true},
	Rect24x48: {48, 24, 80, 1, 41, 1, 0, true},
	Rect24x64: {64, 24, 108, 1, 46, 3, 0, true},
	Rect26x40: {40, 26, 70, 1, 38, 1, 0, true},
	Rect26x48: {48, 26, 90, 1, 42, 1, 0, true},
	Rect26x64: {64, 26, 118, 1, 50, 3, 0, true},
}

func (s Size) String() string {
	if s < MinSize || s > MaxSize {
		return strconv.Itoa(int(s))
	}
	t := &sizes[s]
	return strconv.Itoa(t.height) + "x" + strconv.Itoa(t.width)
}

// ParseSize returns the symbol size named by s in height-by-width
// form, such as "12x12" or "8x32".
func ParseSize(s string) (Size, error) {
	for i := range sizes {
		if Size(i).String() == s {
			return Size(i), nil
		}
	}
	return 0, fmt.Errorf("dm: unknown symbol size %q", s)
}

// IsSquare reports whether the symbol is square.
func (s Size) IsSquare() bool { return sizes[s].width == sizes[s].height }

// IsDMRE reports whether the symbol is a rectangular extension
// defined in ISO 21471 rather than ISO/IEC 16022.
func (s Size) IsDMRE() bool { return sizes[s].dmre }

// DataCodewords returns the number of data codewords the symbol
// holds.
func (s Size) DataCodewords() int { return sizes[s].data }

// CheckCodewords returns the number of Reed-Solomon check codewords
// in the symbol.
func (s Size) CheckCodewords() int { return sizes[s].blocks * sizes[s].check }

// Blocks returns the number of interleaved Reed-Solomon blocks.
func (s Size) Blocks() int { return sizes[s].blocks }

// Codewords returns the total number of codewords in the symbol.
func (s Size) Codewords() int { return s.DataCodewords() + s.CheckCodewords() }

// Modules returns the symbol dimensions in modules, including finder,
// timing and alignment patterns.
func (s Size) Modules() (rows, cols int) {
	t := &sizes[s]
	return t.height, t.width
}

// Region returns the dimensions of the symbol's data region: the
// symbol minus the finder and timing patterns and the extra alignment
// patterns of larger symbols.
func (s Size) Region() (rows, cols int) {
	t := &sizes[s]
	return t.height - 2 - 2*t.halign, t.width - 2 - 2*t.valign
}

// Layout returns the placement map for the symbol's data region.
func (s Size) Layout() (*placement.Grid, error) {
	rows, cols := s.Region()
	return placement.New(rows, cols)
}

// Fill maps the symbol's codewords, data followed by check, onto its
// data region.
func (s Size) Fill(codewords []byte) (*Code, error) {
	if len(codewords) != s.Codewords() {
		return nil, ErrLength
	}
	g, err := s.Layout()
	if err != nil {
		return nil, err
	}
	return Fill(g, codewords)
}

// A Code is the data region of a Data Matrix symbol as a pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Rows   int    // number of pixels per column
	Cols   int    // number of pixels per row
	Stride int    // number of bytes per row
}

// Black reports whether the pixel at (x, y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Cols && 0 <= y && y < c.Rows &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Fill maps codewords onto a data region, each codeword most
// significant bit first, and writes the fixed pattern into regions
// the sweep does not cover completely.
func Fill(g *placement.Grid, codewords []byte) (*Code, error) {
	if len(codewords) != g.Codewords() {
		return nil, ErrLength
	}
	stride := (g.Cols() + 7) / 8
	c := &Code{
		Bitmap: make([]byte, g.Rows()*stride),
		Rows:   g.Rows(),
		Cols:   g.Cols(),
		Stride: stride,
	}
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			var bit byte
			switch p := g.At(row, col); {
			case p == placement.Fixed:
				bit = 1
			case p != 0:
				bit = codewords[p.Codeword()-1] >> (8 - p.Bit()) & 1
			}
			if bit != 0 {
				c.Bitmap[row*stride+col/8] |= 1 << uint(7&^col)
			}
		}
	}
	return c, nil
}

// Codewords reads the data region back into codeword bytes, the
// reverse of Fill.
func (c *Code) Codewords() ([]byte, error) {
	g, err := placement.New(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	cw := make([]byte, g.Codewords())
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			if p := g.At(row, col); p.Codeword() != 0 && c.Black(col, row) {
				cw[p.Codeword()-1] |= 1 << (8 - p.Bit())
			}
		}
	}
	return cw, nil
}
