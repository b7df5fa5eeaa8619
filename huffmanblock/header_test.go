/*
Copyright (c) 2017 Simon Schmidt

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package huffmanblock

import "math"
import "testing"

import "github.com/stretchr/testify/require"

import "github.com/maxymania/huffcodec/huffmantree"

func TestHeaderRoundTrip(t *testing.T) {
	tree, _ := workedTable(t)
	h := NewHeader(tree, 785)
	b, err := h.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, h.Size())
	require.Equal(t, []byte{
		0, 0, 0, 2,
		0, 0, 0, 8,
		0, 0, 0, 15,
		0, 0, 0, 0, 0, 0, 0x03, 0x11,
		0xb8, 0xb0,
		'E', 'U', 'D', 'L', 'C', 'M', 'Z', 'K',
	}, b)

	got, n, err := ParseHeader(append(b, 1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, len(b), n)
	require.Equal(t, h, got)
	require.Equal(t, uint64(99), got.BodySize())

	back, err := got.Tree()
	require.NoError(t, err)
	require.True(t, tree.Equal(back))
}

func TestHeaderTooLarge(t *testing.T) {
	h := Header{Shape: huffmantree.Shape{NumBits: -1}}
	_, err := h.MarshalBinary()
	require.Error(t, err)
}

func TestBodySizeNoWrap(t *testing.T) {
	for _, c := range []struct{ bits, bytes uint64 }{
		{0, 0}, {1, 1}, {8, 1}, {9, 2}, {785, 99},
		{math.MaxUint64, math.MaxUint64/8 + 1},
		{math.MaxUint64 - 6, math.MaxUint64/8 + 1},
	} {
		h := Header{BodyBits: c.bits}
		require.Equal(t, c.bytes, h.BodySize(), "%d bits", c.bits)
	}
}
