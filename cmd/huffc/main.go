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

// Command huffc compresses UTF-8 text files with a static Huffman code.
//
//	huffc compress [-o out] file        writes file.huff
//	huffc decompress [-o out] file.huff writes file
//	huffc table file                    prints the code table as YAML
package main

import "errors"
import "flag"
import "fmt"
import "io"
import "os"
import "strings"
import "unicode/utf8"

import "sigs.k8s.io/yaml"

import "github.com/maxymania/huffcodec/huffmanblock"
import "github.com/maxymania/huffcodec/huffmantree"

const suffix = ".huff"

var errUsage = errors.New("usage: huffc compress|decompress|table [-v] [-o out] file")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}
	cmd, args := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "", "output file")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}
	log := newLogger(stderr, *verbose)
	src := fs.Arg(0)

	var err error
	switch cmd {
	case "compress":
		dst := *out
		if dst == "" {
			dst = src + suffix
		}
		log.Infof("compressing %s to %s", src, dst)
		err = huffmanblock.CompressFile(src, dst)
	case "decompress":
		dst := *out
		if dst == "" {
			dst = strings.TrimSuffix(src, suffix)
			if dst == src {
				dst = src + ".out"
			}
		}
		log.Infof("decompressing %s to %s", src, dst)
		err = decompress(src, dst)
	case "table":
		err = table(src, stdout)
	default:
		fmt.Fprintln(stderr, errUsage)
		return 2
	}
	if err != nil {
		log.Errorf("%s: %v", cmd, err)
		return 1
	}
	return 0
}

func decompress(src, dst string) error {
	text, err := huffmanblock.DecompressFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(text), 0644)
}

type tableEntry struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
	Weight uint64 `json:"weight"`
}

type tableDump struct {
	Symbols int          `json:"symbols"`
	Bits    uint64       `json:"bits"`
	Codes   []tableEntry `json:"codes"`
}

func table(src string, w io.Writer) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("%s: %w", src, huffmanblock.ErrInvalidText)
	}
	freq := huffmantree.CountText(string(b))
	tab, err := huffmantree.GenerateTable(huffmantree.Build(freq))
	if err != nil {
		return err
	}
	d := tableDump{Symbols: tab.Len(), Bits: tab.EncodedLen(freq)}
	for _, r := range tab.Symbols() {
		c, _ := tab.Lookup(r)
		d.Codes = append(d.Codes, tableEntry{Symbol: string(r), Code: c.String(), Weight: freq.Frequency(r)})
	}
	y, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	_, err = w.Write(y)
	return err
}
