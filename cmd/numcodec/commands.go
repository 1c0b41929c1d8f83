package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/numcodec/endian"
	"github.com/arloliu/numcodec/entropy"
	"github.com/arloliu/numcodec/errs"
	"github.com/arloliu/numcodec/gorilla"
	"github.com/arloliu/numcodec/internal/hash"
	"github.com/arloliu/numcodec/internal/pool"
	"github.com/arloliu/numcodec/secondary"
)

var leEngine = endian.GetLittleEndianEngine()

// runCompress reads width-aligned binary from the input (padding the final
// short block with 0x01 followed by 0x00s), encodes it with the selected
// codec, optionally applies a secondary compression pass, and writes the
// result to the output.
func runCompress(cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	data, err := readAllInput(cfg.inPath)
	if err != nil {
		return err
	}
	data = padToBlock(data, cfg.width/8)

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)
	if err := encodeValues(buf, cfg, data); err != nil {
		return err
	}
	out := buf.Bytes()

	codec, err := secondary.GetCodec(mustParseAlgorithm(cfg.compression))
	if err != nil {
		return err
	}
	out, err = codec.Compress(out)
	if err != nil {
		return fmt.Errorf("secondary compress: %w", err)
	}

	return writeOutput(cfg.outPath, out, cfg.fingerprint)
}

// runDecompress reverses runCompress: undoes the secondary compression
// pass, decodes the codec stream back into width-aligned binary, and trims
// the final block's padding marker.
func runDecompress(cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	data, err := readAllInput(cfg.inPath)
	if err != nil {
		return err
	}

	codec, err := secondary.GetCodec(mustParseAlgorithm(cfg.compression))
	if err != nil {
		return err
	}
	data, err = codec.Decompress(data)
	if err != nil {
		return fmt.Errorf("secondary decompress: %w", err)
	}

	out, err := decodeValues(cfg, data)
	if err != nil {
		return err
	}
	out = trimBlockPadding(out, cfg.width/8)

	return writeOutput(cfg.outPath, out, cfg.fingerprint)
}

// runLoad parses whitespace-separated decimal tokens from text input and
// writes native little-endian binary of the configured width.
func runLoad(cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	in, err := openInput(cfg.inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var out []byte
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := scanner.Text()
		buf, err := tokenToBytes(tok, cfg)
		if err != nil {
			return fmt.Errorf("load: parsing %q: %w", tok, err)
		}
		out = append(out, buf...)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return writeOutput(cfg.outPath, out, cfg.fingerprint)
}

// runDump is the inverse of runLoad: it parses native little-endian binary
// of the configured width and writes one decimal token per line.
func runDump(cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	data, err := readAllInput(cfg.inPath)
	if err != nil {
		return err
	}

	blockBytes := cfg.width / 8
	if len(data)%blockBytes != 0 {
		return fmt.Errorf("dump: input length %d is not a multiple of %d bytes: %w", len(data), blockBytes, errs.ErrCorruptedInput)
	}

	var sb strings.Builder
	for off := 0; off+blockBytes <= len(data); off += blockBytes {
		sb.WriteString(bytesToToken(data[off:off+blockBytes], cfg))
		sb.WriteByte('\n')
	}

	return writeOutput(cfg.outPath, []byte(sb.String()), cfg.fingerprint)
}

func readAllInput(path string) ([]byte, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return io.ReadAll(in)
}

func writeOutput(path string, data []byte, fingerprint bool) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	if fingerprint {
		fmt.Fprintf(os.Stderr, "xxhash64: %016x\n", hash.Bytes(data))
	}

	return nil
}

// mustParseAlgorithm assumes cfg.validate has already confirmed the name
// parses; it is only called after that check.
func mustParseAlgorithm(name string) secondary.Algorithm {
	alg, _ := secondary.ParseAlgorithm(name)

	return alg
}

// padToBlock appends 0x01 followed by 0x00s so len(data) becomes a multiple
// of blockBytes, per spec.md §6.2. No padding is added if already aligned.
func padToBlock(data []byte, blockBytes int) []byte {
	rem := len(data) % blockBytes
	if rem == 0 {
		return data
	}

	padLen := blockBytes - rem
	data = append(data, 0x01)
	for i := 1; i < padLen; i++ {
		data = append(data, 0x00)
	}

	return data
}

// trimBlockPadding strips the padding marker from the final block: trailing
// 0x00 bytes together with the 0x01 marker byte that precedes them. A final
// block whose trailing zero run is not preceded by 0x01 is returned intact.
func trimBlockPadding(data []byte, blockBytes int) []byte {
	if len(data) < blockBytes {
		return data
	}

	last := data[len(data)-blockBytes:]
	end := blockBytes
	for end > 0 && last[end-1] == 0x00 {
		end--
	}
	if end == 0 || last[end-1] != 0x01 {
		return data
	}

	return data[:len(data)-blockBytes+end-1]
}

func encodeValues(w io.Writer, cfg config, data []byte) error {
	blockBytes := cfg.width / 8

	if cfg.width == 32 {
		enc32, ent32 := newEncoder32(w, cfg.algorithm)
		for off := 0; off+blockBytes <= len(data); off += blockBytes {
			v := leEngine.Uint32(data[off : off+blockBytes])
			if err := addUint32(enc32, ent32, v); err != nil {
				return err
			}
		}

		return finish32(enc32, ent32)
	}

	enc64, ent64 := newEncoder64(w, cfg.algorithm)
	for off := 0; off+blockBytes <= len(data); off += blockBytes {
		v := leEngine.Uint64(data[off : off+blockBytes])
		if err := addUint64(enc64, ent64, v); err != nil {
			return err
		}
	}

	return finish64(enc64, ent64)
}

func decodeValues(cfg config, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)
	var out []byte

	if cfg.width == 32 {
		dec32, det32 := newDecoder32(r, cfg.algorithm)
		for {
			v, err := nextUint32(dec32, det32)
			if err != nil {
				break
			}
			var buf [4]byte
			leEngine.PutUint32(buf[:], v)
			out = append(out, buf[:]...)
		}

		return out, nil
	}

	dec64, det64 := newDecoder64(r, cfg.algorithm)
	for {
		v, err := nextUint64(dec64, det64)
		if err != nil {
			break
		}
		var buf [8]byte
		leEngine.PutUint64(buf[:], v)
		out = append(out, buf[:]...)
	}

	return out, nil
}

func newEncoder32(w io.Writer, algorithm string) (*gorilla.Encoder32, *entropy.Encoder32) {
	if algorithm == "entropy" {
		return nil, entropy.NewEncoder32(w)
	}

	return gorilla.NewEncoder32(w), nil
}

func newEncoder64(w io.Writer, algorithm string) (*gorilla.Encoder64, *entropy.Encoder64) {
	if algorithm == "entropy" {
		return nil, entropy.NewEncoder64(w)
	}

	return gorilla.NewEncoder64(w), nil
}

func newDecoder32(r io.Reader, algorithm string) (*gorilla.Decoder32, *entropy.Decoder32) {
	if algorithm == "entropy" {
		return nil, entropy.NewDecoder32(r)
	}

	return gorilla.NewDecoder32(r), nil
}

func newDecoder64(r io.Reader, algorithm string) (*gorilla.Decoder64, *entropy.Decoder64) {
	if algorithm == "entropy" {
		return nil, entropy.NewDecoder64(r)
	}

	return gorilla.NewDecoder64(r), nil
}

func addUint32(enc *gorilla.Encoder32, ent *entropy.Encoder32, v uint32) error {
	if ent != nil {
		return ent.AddUint32(v)
	}

	return enc.AddUint32(v)
}

func addUint64(enc *gorilla.Encoder64, ent *entropy.Encoder64, v uint64) error {
	if ent != nil {
		return ent.AddUint64(v)
	}

	return enc.AddUint64(v)
}

func finish32(enc *gorilla.Encoder32, ent *entropy.Encoder32) error {
	if ent != nil {
		return ent.Finish()
	}

	return enc.Finish()
}

func finish64(enc *gorilla.Encoder64, ent *entropy.Encoder64) error {
	if ent != nil {
		return ent.Finish()
	}

	return enc.Finish()
}

func nextUint32(dec *gorilla.Decoder32, det *entropy.Decoder32) (uint32, error) {
	if det != nil {
		return det.NextUint32()
	}

	return dec.NextUint32()
}

func nextUint64(dec *gorilla.Decoder64, det *entropy.Decoder64) (uint64, error) {
	if det != nil {
		return det.NextUint64()
	}

	return dec.NextUint64()
}

func tokenToBytes(tok string, cfg config) ([]byte, error) {
	buf := make([]byte, cfg.width/8)

	if cfg.numType == "float" {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, err
		}
		if cfg.width == 32 {
			leEngine.PutUint32(buf, math.Float32bits(float32(f)))
		} else {
			leEngine.PutUint64(buf, math.Float64bits(f))
		}

		return buf, nil
	}

	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, err
	}
	if cfg.width == 32 {
		leEngine.PutUint32(buf, uint32(int32(i)))
	} else {
		leEngine.PutUint64(buf, uint64(i))
	}

	return buf, nil
}

func bytesToToken(b []byte, cfg config) string {
	if cfg.numType == "float" {
		if cfg.width == 32 {
			return strconv.FormatFloat(float64(math.Float32frombits(leEngine.Uint32(b))), 'g', -1, 32)
		}

		return strconv.FormatFloat(math.Float64frombits(leEngine.Uint64(b)), 'g', -1, 64)
	}

	if cfg.width == 32 {
		return strconv.FormatInt(int64(int32(leEngine.Uint32(b))), 10)
	}

	return strconv.FormatInt(int64(leEngine.Uint64(b)), 10)
}
