// Command numcodec is a thin driver over the gorilla/entropy/bitio
// packages: compress and decompress binary streams with either codec, and
// convert between whitespace-separated decimal text and native
// little-endian binary for round-trip testing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arloliu/numcodec/errs"
	"github.com/arloliu/numcodec/secondary"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	inPath := fs.String("i", "", "input path (stdin if absent)")
	outPath := fs.String("o", "", "output path (stdout if absent)")
	algorithm := fs.String("a", "gorilla", "codec algorithm: gorilla|entropy")
	width := fs.Int("w", 32, "value width in bits: 32|64")
	numType := fs.String("t", "float", "number type for load/dump: int|float")
	compression := fs.String("c", "none", "secondary compression: none|zstd|s2|lz4")
	fingerprint := fs.Bool("x", false, "print xxHash64 of the output to stderr")
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	cfg := config{
		inPath:      *inPath,
		outPath:     *outPath,
		algorithm:   *algorithm,
		width:       *width,
		numType:     *numType,
		compression: *compression,
		fingerprint: *fingerprint,
	}

	var err error
	switch cmd {
	case "compress":
		err = runCompress(cfg)
	case "decompress":
		err = runDecompress(cfg)
	case "load":
		err = runLoad(cfg)
	case "dump":
		err = runDump(cfg)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "numcodec: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: numcodec <compress|decompress|load|dump> [-i path] [-o path] [-a gorilla|entropy] [-w 32|64] [-t int|float] [-c none|zstd|s2|lz4] [-x]")
}

type config struct {
	inPath      string
	outPath     string
	algorithm   string
	width       int
	numType     string
	compression string
	fingerprint bool
}

func (c config) validate() error {
	if c.algorithm != "gorilla" && c.algorithm != "entropy" {
		return fmt.Errorf("invalid -a %q: %w", c.algorithm, errs.ErrInvalidAlgorithm)
	}
	if c.width != 32 && c.width != 64 {
		return fmt.Errorf("invalid -w %d: %w", c.width, errs.ErrInvalidWidth)
	}
	if c.numType != "int" && c.numType != "float" {
		return fmt.Errorf("invalid -t %q: must be int or float", c.numType)
	}
	if _, err := secondary.ParseAlgorithm(c.compression); err != nil {
		return err
	}

	return nil
}
