// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dm_test

import (
	"testing"

	"github.com/unixdj/dm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeTable(t *testing.T) {
	for s := dm.MinSize; s <= dm.MaxSize; s++ {
		rows, cols := s.Region()
		assert.GreaterOrEqual(t, rows, 6, "%v", s)
		assert.GreaterOrEqual(t, cols, 6, "%v", s)
		assert.Zero(t, rows&1, "%v", s)
		assert.Zero(t, cols&1, "%v", s)
		// the data region holds exactly the symbol's codewords,
		// plus the four leftover modules of padded sizes
		leftover := rows * cols % 8
		assert.Contains(t, []int{0, 4}, leftover, "%v", s)
		assert.Equal(t, rows*cols, s.Codewords()*8+leftover, "%v", s)

		g, err := s.Layout()
		require.NoError(t, err, "%v", s)
		assert.Equal(t, s.Codewords(), g.Codewords(), "%v", s)

		h, w := s.Modules()
		assert.Equal(t, s.IsSquare(), h == w, "%v", s)
	}
}

func TestSizeOrder(t *testing.T) {
	// constants are ordered by data capacity
	last := 0
	for s := dm.MinSize; s <= dm.MaxSize; s++ {
		assert.GreaterOrEqual(t, s.DataCodewords(), last, "%v", s)
		last = s.DataCodewords()
	}
}

func TestParseSize(t *testing.T) {
	for s := dm.MinSize; s <= dm.MaxSize; s++ {
		got, err := dm.ParseSize(s.String())
		require.NoError(t, err, "%v", s)
		assert.Equal(t, s, got)
	}
	for _, v := range []string{"", "10", "10x11", "6x6", "152x152", "10 10"} {
		_, err := dm.ParseSize(v)
		assert.Error(t, err, "%q", v)
	}
}

func TestSizeNames(t *testing.T) {
	assert.Equal(t, "10x10", dm.Square10.String())
	assert.Equal(t, "8x32", dm.Rect8x32.String())
	assert.Equal(t, "144x144", dm.Square144.String())
	assert.True(t, dm.Square10.IsSquare())
	assert.False(t, dm.Rect8x18.IsSquare())
	assert.False(t, dm.Rect16x48.IsDMRE())
	assert.True(t, dm.Rect8x48.IsDMRE())
}

// testCodewords returns a deterministic codeword sequence exercising
// every bit.
func testCodewords(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*37 + 11)
	}
	return b
}

func TestFillExtract(t *testing.T) {
	for s := dm.MinSize; s <= dm.MaxSize; s++ {
		want := testCodewords(s.Codewords())
		c, err := s.Fill(want)
		require.NoError(t, err, "%v", s)

		rows, cols := s.Region()
		assert.Equal(t, rows, c.Rows, "%v", s)
		assert.Equal(t, cols, c.Cols, "%v", s)

		got, err := c.Codewords()
		require.NoError(t, err, "%v", s)
		assert.Equal(t, want, got, "%v", s)
	}
}

func TestFillFixedPattern(t *testing.T) {
	// 12x12 has a 10x10 data region with the 2x2 fixed pattern in
	// the corner: dark at (9,9) and (8,8), light at (8,9) and (9,8)
	// regardless of codeword values.
	c, err := dm.Square12.Fill(make([]byte, dm.Square12.Codewords()))
	require.NoError(t, err)
	assert.True(t, c.Black(9, 9))
	assert.True(t, c.Black(8, 8))
	assert.False(t, c.Black(9, 8))
	assert.False(t, c.Black(8, 9))
}

func TestFillLength(t *testing.T) {
	_, err := dm.Square10.Fill(make([]byte, 7))
	assert.ErrorIs(t, err, dm.ErrLength)
	_, err = dm.Square10.Fill(nil)
	assert.ErrorIs(t, err, dm.ErrLength)

	g, err := dm.Square10.Layout()
	require.NoError(t, err)
	_, err = dm.Fill(g, make([]byte, 9))
	assert.ErrorIs(t, err, dm.ErrLength)
}

func TestBlackBounds(t *testing.T) {
	c, err := dm.Square10.Fill(testCodewords(dm.Square10.Codewords()))
	require.NoError(t, err)
	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(0, -1))
	assert.False(t, c.Black(8, 0))
	assert.False(t, c.Black(0, 8))
}
