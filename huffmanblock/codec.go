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

// Block based static huffman coding of UTF-8 text.
//
// A compressed block is a Header carrying the shape of the coding tree,
// followed by the packed codes of the text.
package huffmanblock

import "bytes"
import "errors"
import "fmt"
import "io"
import "os"
import "unicode/utf8"

import "github.com/maxymania/huffcodec/huffmantree"

// ErrInvalidText is returned for input that is not valid UTF-8.
var ErrInvalidText = errors.New("text is not valid UTF-8")

// Compress encodes text into a single block, header followed by body.
func Compress(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}
	tree := huffmantree.Build(huffmantree.CountText(text))
	table, err := huffmantree.GenerateTable(tree)
	if err != nil {
		return nil, err
	}
	body, nbits, err := Pack(table, text)
	if err != nil {
		return nil, err
	}
	h := NewHeader(tree, nbits)
	out, err := h.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

// Decompress decodes a block made by Compress. On error no text is
// returned.
func Decompress(data []byte) (string, error) {
	h, n, err := ParseHeader(data)
	if err != nil {
		return "", err
	}
	body := data[n:]
	if uint64(len(body)) != h.BodySize() {
		return "", fmt.Errorf("%w: %d body bytes for %d bits", ErrLengthMismatch, len(body), h.BodyBits)
	}
	tree, err := h.Tree()
	if err != nil {
		return "", err
	}
	return Unpack(tree, body, h.BodyBits)
}

// Encode writes the compressed form of text to w.
func Encode(w io.Writer, text string) error {
	b, err := Compress(text)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Decode reads r to the end and decompresses it.
func Decode(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return Decompress(b)
}

// CompressFile compresses the UTF-8 text file src into dst.
func CompressFile(src, dst string) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("%s: %w", src, ErrInvalidText)
	}
	buf := new(bytes.Buffer)
	if err := Encode(buf, string(b)); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	return os.WriteFile(dst, buf.Bytes(), 0644)
}

// DecompressFile returns the text stored in the compressed file at path.
func DecompressFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	text, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}
