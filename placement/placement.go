// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement implements the ECC200 symbol character placement
// algorithm of ISO/IEC 16022 Annex F.
//
// Given the dimensions of the data region of a Data Matrix symbol
// (the interior of the symbol, excluding finder, timing and alignment
// patterns), it computes for every module which codeword occupies it
// and which of the codeword's eight bits it carries.  Codewords cover
// the region in L-shaped ("utah") footprints swept along alternating
// diagonals; footprints crossing the top or left edge wrap around to
// the opposite side, and four corner geometries get dedicated
// footprints.
package placement // import "github.com/unixdj/dm/placement"

import "errors"

// ErrSize reports an invalid data region size.
var ErrSize = errors.New("dm: invalid data region size")

// A Pos describes one module of the data region: the codeword
// occupying it and which of the codeword's eight bits it carries.
// Codewords are numbered from 1, bits from 1 (most significant) to 8.
// A Pos is encoded as 10*codeword+bit, the encoding used by the
// reference program of ISO/IEC 16022 Annex F.  The zero value marks a
// module not covered by any codeword; Fixed marks the two dark
// modules of the fixed pattern written into the lower right corner of
// regions whose area is not a multiple of eight.
type Pos uint32

// Fixed is the Pos of a dark module of the lower right fixed pattern.
const Fixed Pos = 1

// Codeword returns the 1-based index of the codeword occupying the
// module, or 0 if the module carries no codeword bit.
func (p Pos) Codeword() int { return int(p) / 10 }

// Bit returns the 1-based number of the bit the module carries,
// counting from the most significant bit of the codeword.
func (p Pos) Bit() int { return int(p) % 10 }

// A Grid is the completed placement map of a data region.
type Grid struct {
	pos        []Pos
	rows, cols int
}

// New computes the placement map for a data region with the given
// dimensions.  Both dimensions must be even and at least 6.
func New(rows, cols int) (*Grid, error) {
	if rows < 6 || cols < 6 || rows&1 != 0 || cols&1 != 0 {
		return nil, ErrSize
	}
	g := &Grid{
		pos:  make([]Pos, rows*cols),
		rows: rows,
		cols: cols,
	}
	g.run()
	return g, nil
}

// Rows returns the number of rows in the data region.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the data region.
func (g *Grid) Cols() int { return g.cols }

// Codewords returns the number of codewords placed in the region.
func (g *Grid) Codewords() int { return g.rows * g.cols / 8 }

// At returns the assignment of the module at row, col.
func (g *Grid) At(row, col int) Pos { return g.pos[row*g.cols+col] }

// module writes one bit assignment, wrapping footprint cells that
// cross the top or left edge of the region to the opposite side.
func (g *Grid) module(row, col, chr, bit int) {
	if row < 0 {
		row += g.rows
		col += 4 - (g.rows+4)%8
	}
	if col < 0 {
		col += g.cols
		row += 4 - (g.cols+4)%8
	}
	// The column wrap can push rows of tall rectangular regions
	// past the bottom edge.
	if row >= g.rows {
		row -= g.rows
	}
	g.pos[row*g.cols+col] = Pos(10*chr + bit)
}

// utahOff is the L-shaped footprint of a symbol character relative to
// its anchor module, in bit order.
var utahOff = [8][2]int{
	{-2, -2}, {-2, -1},
	{-1, -2}, {-1, -1}, {-1, 0},
	{0, -2}, {0, -1}, {0, 0},
}

// utah places the eight bits of codeword chr in an L-shaped footprint
// anchored at row, col.
func (g *Grid) utah(row, col, chr int) {
	for i, off := range utahOff {
		g.module(row+off[0], col+off[1], chr, i+1)
	}
}

// cornerOff lists the footprints of the four corner cases, in bit
// order.  Negative rows count from the bottom edge, negative columns
// from the right edge; no footprint cell is ambiguous under this
// convention.
var cornerOff = [4][8][2]int{
	{{-1, 0}, {-1, 1}, {-1, 2}, {0, -2}, {0, -1}, {1, -1}, {2, -1}, {3, -1}},
	{{-3, 0}, {-2, 0}, {-1, 0}, {0, -4}, {0, -3}, {0, -2}, {0, -1}, {1, -1}},
	{{-3, 0}, {-2, 0}, {-1, 0}, {0, -2}, {0, -1}, {1, -1}, {2, -1}, {3, -1}},
	{{-1, 0}, {-1, -1}, {0, -3}, {0, -2}, {0, -1}, {1, -3}, {1, -2}, {1, -1}},
}

// corner places the eight bits of codeword chr in the footprint of
// corner case n, 0 to 3.
func (g *Grid) corner(n, chr int) {
	for i, off := range cornerOff[n] {
		row, col := off[0], off[1]
		if row < 0 {
			row += g.rows
		}
		if col < 0 {
			col += g.cols
		}
		g.module(row, col, chr, i+1)
	}
}

// run sweeps the region along alternating up-right and down-left
// diagonals, placing successive codewords, then fills the fixed
// pattern if the lower right corner remains uncovered.
func (g *Grid) run() {
	nrow, ncol := g.rows, g.cols
	chr := 1
	row, col := 4, 0
	for {
		// Corner cases first, in the order of the reference
		// program; at most one fires per iteration.
		if row == nrow && col == 0 {
			g.corner(0, chr)
			chr++
		}
		if row == nrow-2 && col == 0 && ncol%4 != 0 {
			g.corner(1, chr)
			chr++
		}
		if row == nrow-2 && col == 0 && ncol%8 == 4 {
			g.corner(2, chr)
			chr++
		}
		if row == nrow+4 && col == 2 && ncol%8 == 0 {
			g.corner(3, chr)
			chr++
		}
		// Sweep up and to the right.
		for {
			if row < nrow && col >= 0 && g.pos[row*ncol+col] == 0 {
				g.utah(row, col, chr)
				chr++
			}
			row -= 2
			col += 2
			if row < 0 || col >= ncol {
				break
			}
		}
		row++
		col += 3
		// Sweep down and to the left.
		for {
			if row >= 0 && col < ncol && g.pos[row*ncol+col] == 0 {
				g.utah(row, col, chr)
				chr++
			}
			row += 2
			col -= 2
			if row >= nrow || col < 0 {
				break
			}
		}
		row += 3
		col++
		if row >= nrow && col >= ncol {
			break
		}
	}
	if g.pos[nrow*ncol-1] == 0 {
		g.pos[nrow*ncol-1] = Fixed
		g.pos[(nrow-1)*ncol-2] = Fixed
	}
}
