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

import "bytes"
import "errors"
import "fmt"
import "io"
import "strings"

import "github.com/icza/bitio"
import "github.com/maxymania/huffcodec/huffmantree"

// ErrUnrecognizedBits is returned when the body ends in the middle of a
// code, or holds a path the tree does not have.
var ErrUnrecognizedBits = errors.New("body bits do not decode to a symbol")

// BitWriter packs codes MSB first and counts the bits written.
type BitWriter struct {
	w *bitio.CountWriter
}

// NewBitWriter returns a BitWriter packing into out.
func NewBitWriter(out io.Writer) *BitWriter {
	return &BitWriter{bitio.NewCountWriter(out)}
}

// WriteCode appends the Len bits of c.
func (b *BitWriter) WriteCode(c huffmantree.Code) error {
	return b.w.WriteBits(c.Bits, c.Len)
}

// Bits is the number of bits written so far, padding excluded.
func (b *BitWriter) Bits() uint64 { return uint64(b.w.BitsCount) }

// Close flushes the last byte, filling it up with zero bits, and returns
// how many were added.
func (b *BitWriter) Close() (pad uint8, err error) {
	// the embedded Writer's Align leaves BitsCount alone
	return b.w.Writer.Align()
}

// BitReader yields the first n bits of its input and then io.EOF, so that
// the padding of the last byte is never read.
type BitReader struct {
	r     *bitio.CountReader
	limit uint64
}

// NewBitReader returns a BitReader yielding the first n bits of in.
func NewBitReader(in io.Reader, n uint64) *BitReader {
	return &BitReader{bitio.NewCountReader(in), n}
}

// ReadBit returns the next bit, or io.EOF once n bits were read.
func (b *BitReader) ReadBit() (bool, error) {
	if b.Remaining() == 0 {
		return false, io.EOF
	}
	bit, err := b.r.ReadBool()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return bit, err
}

// Remaining is the number of bits left before the limit.
func (b *BitReader) Remaining() uint64 { return b.limit - uint64(b.r.BitsCount) }

type symbolWriter struct {
	w     *BitWriter
	table *huffmantree.CodeTable
}

func (s symbolWriter) move(r rune) error {
	c, ok := s.table.Lookup(r)
	if !ok {
		return fmt.Errorf("symbol %q is not in the code table", r)
	}
	return s.w.WriteCode(c)
}

type symbolReader struct {
	r    *BitReader
	tree *huffmantree.Tree
}

// move walks from the root to a leaf, one bit per step. It returns io.EOF
// only when the bits end exactly on a symbol boundary.
func (s symbolReader) move() (rune, error) {
	n := s.tree.Node(s.tree.Root())
	first := true
	for {
		if n.Kind == huffmantree.Leaf && !first {
			return n.Symbol, nil
		}
		bit, err := s.r.ReadBit()
		if err == io.EOF && first {
			return 0, io.EOF
		}
		if err == io.EOF {
			return 0, fmt.Errorf("%w: body ends inside a code", ErrUnrecognizedBits)
		}
		if err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: body shorter than its bit count", ErrUnrecognizedBits)
		}
		if err != nil {
			return 0, err
		}
		switch {
		case n.Kind == huffmantree.Leaf:
			// a lone leaf owns the one-bit code 0
			if bit {
				return 0, fmt.Errorf("%w: set bit on a single-symbol tree", ErrUnrecognizedBits)
			}
		case bit:
			n = s.tree.Node(n.Right)
		default:
			n = s.tree.Node(n.Left)
		}
		first = false
	}
}

// Pack encodes text with table. It returns the packed bytes and the exact
// number of bits before padding.
func Pack(table *huffmantree.CodeTable, text string) ([]byte, uint64, error) {
	buf := new(bytes.Buffer)
	bw := NewBitWriter(buf)
	sw := symbolWriter{bw, table}
	for _, r := range text {
		if err := sw.move(r); err != nil {
			return nil, 0, err
		}
	}
	n := bw.Bits()
	if _, err := bw.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), n, nil
}

// Unpack decodes the first nbits bits of body with tree.
func Unpack(tree *huffmantree.Tree, body []byte, nbits uint64) (string, error) {
	if uint64(len(body)) < byteLen(nbits) {
		return "", fmt.Errorf("%w: %d body bytes for %d bits", ErrLengthMismatch, len(body), nbits)
	}
	if tree.Empty() {
		if nbits > 0 {
			return "", fmt.Errorf("%w: %d bits for an empty tree", ErrUnrecognizedBits, nbits)
		}
		return "", nil
	}
	sr := symbolReader{NewBitReader(bytes.NewReader(body), nbits), tree}
	var sb strings.Builder
	for {
		r, err := sr.move()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
	}
}
