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

import "encoding/binary"
import "errors"
import "fmt"
import "math"

import "github.com/maxymania/huffcodec/huffmantree"

// ErrLengthMismatch is returned when the lengths declared in a header do
// not agree with the data that follows.
var ErrLengthMismatch = errors.New("declared lengths do not match the data")

// HeaderSize is the size of the fixed part of a header.
const HeaderSize = 20

// Header precedes the packed body of a compressed block:
//
//	0   uint32  length of the shape bytes
//	4   uint32  length of the symbol bytes
//	8   uint32  number of shape bits
//	12  uint64  number of body bits
//	20  shape bytes, then symbol bytes, then the body
//
// All integers are big endian.
type Header struct {
	Shape    huffmantree.Shape
	BodyBits uint64
}

// NewHeader describes a body of bodyBits bits coded with tree.
func NewHeader(tree *huffmantree.Tree, bodyBits uint64) Header {
	return Header{Shape: huffmantree.EncodeShape(tree), BodyBits: bodyBits}
}

// Size is the encoded size of h.
func (h *Header) Size() int { return HeaderSize + len(h.Shape.Bits) + len(h.Shape.Symbols) }

// BodySize is the number of body bytes h announces.
func (h *Header) BodySize() uint64 { return byteLen(h.BodyBits) }

// byteLen is the number of bytes holding n bits. It does not wrap for n
// near the top of the uint64 range.
func byteLen(n uint64) uint64 {
	if n%8 != 0 {
		return n/8 + 1
	}
	return n / 8
}

// AppendTo appends the encoded header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	var fixed [HeaderSize]byte
	binary.BigEndian.PutUint32(fixed[0:], uint32(len(h.Shape.Bits)))
	binary.BigEndian.PutUint32(fixed[4:], uint32(len(h.Shape.Symbols)))
	binary.BigEndian.PutUint32(fixed[8:], uint32(h.Shape.NumBits))
	binary.BigEndian.PutUint64(fixed[12:], h.BodyBits)
	dst = append(dst, fixed[:]...)
	dst = append(dst, h.Shape.Bits...)
	return append(dst, h.Shape.Symbols...)
}

// MarshalBinary encodes h, failing if a length does not fit its field.
func (h *Header) MarshalBinary() ([]byte, error) {
	if h.Shape.NumBits < 0 || uint64(h.Shape.NumBits) > math.MaxUint32 || uint64(len(h.Shape.Symbols)) > math.MaxUint32 {
		return nil, fmt.Errorf("header too large: %d shape bits, %d symbol bytes", h.Shape.NumBits, len(h.Shape.Symbols))
	}
	return h.AppendTo(make([]byte, 0, h.Size())), nil
}

// ParseHeader reads a header from the front of b and returns it with the
// number of bytes it took. The tree itself is not checked; see Tree.
func ParseHeader(b []byte) (Header, int, error) {
	var h Header
	if len(b) < HeaderSize {
		return h, 0, fmt.Errorf("%w: %d bytes, header needs %d", ErrLengthMismatch, len(b), HeaderSize)
	}
	nshape := uint64(binary.BigEndian.Uint32(b[0:]))
	nsyms := uint64(binary.BigEndian.Uint32(b[4:]))
	nbits := binary.BigEndian.Uint32(b[8:])
	h.BodyBits = binary.BigEndian.Uint64(b[12:])
	rest := b[HeaderSize:]
	if uint64(len(rest)) < nshape+nsyms {
		return h, 0, fmt.Errorf("%w: %d shape and %d symbol bytes declared, %d present", ErrLengthMismatch, nshape, nsyms, len(rest))
	}
	if nshape != (uint64(nbits)+7)/8 {
		return h, 0, fmt.Errorf("%w: %d shape bytes for %d shape bits", ErrLengthMismatch, nshape, nbits)
	}
	h.Shape = huffmantree.Shape{
		Bits:    rest[:nshape:nshape],
		NumBits: int(nbits),
		Symbols: rest[nshape : nshape+nsyms : nshape+nsyms],
	}
	return h, h.Size(), nil
}

// Tree rebuilds the coding tree the header carries.
func (h *Header) Tree() (*huffmantree.Tree, error) {
	return huffmantree.DecodeShape(h.Shape)
}
