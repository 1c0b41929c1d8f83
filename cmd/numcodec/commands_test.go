package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/arloliu/numcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestPadToBlock_TrimBlockPadding_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{1, 2, 3},
		{1, 2, 3, 4},
		{1, 2, 3, 4, 5, 6, 7},
	}

	for _, data := range cases {
		padded := padToBlock(append([]byte{}, data...), 4)
		require.Zero(t, len(padded)%4)

		trimmed := trimBlockPadding(padded, 4)
		require.Equal(t, data, trimmed)
	}
}

func TestTokenToBytes_BytesToToken_RoundTrip_Float32(t *testing.T) {
	cfg := config{width: 32, numType: "float"}
	buf, err := tokenToBytes("3.25", cfg)
	require.NoError(t, err)
	require.Equal(t, "3.25", bytesToToken(buf, cfg))
}

func TestTokenToBytes_BytesToToken_RoundTrip_Int64(t *testing.T) {
	cfg := config{width: 64, numType: "int"}
	buf, err := tokenToBytes("-42", cfg)
	require.NoError(t, err)
	require.Equal(t, "-42", bytesToToken(buf, cfg))
}

func TestLoadDump_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	textIn := filepath.Join(dir, "in.txt")
	bin := filepath.Join(dir, "values.bin")
	textOut := filepath.Join(dir, "out.txt")

	require.NoError(t, writeFile(textIn, "1.5 2.25 -3.75 0\n"))

	cfg := config{inPath: textIn, outPath: bin, algorithm: "gorilla", width: 32, numType: "float", compression: "none"}
	require.NoError(t, runLoad(cfg))

	cfg.inPath, cfg.outPath = bin, textOut
	require.NoError(t, runDump(cfg))

	got, err := readFile(textOut)
	require.NoError(t, err)
	require.Equal(t, "1.5\n2.25\n-3.75\n0\n", got)
}

func TestCompressDecompress_GorillaRoundTrip(t *testing.T) {
	dir := t.TempDir()
	textIn := filepath.Join(dir, "in.txt")
	bin := filepath.Join(dir, "values.bin")
	compressed := filepath.Join(dir, "values.gor")
	decompressed := filepath.Join(dir, "values.out")
	textOut := filepath.Join(dir, "out.txt")

	require.NoError(t, writeFile(textIn, "1.5 2.25 -3.75 0 9.125 9.125 9.125\n"))

	loadCfg := config{inPath: textIn, outPath: bin, algorithm: "gorilla", width: 32, numType: "float", compression: "none"}
	require.NoError(t, runLoad(loadCfg))

	compressCfg := config{inPath: bin, outPath: compressed, algorithm: "gorilla", width: 32, numType: "float", compression: "s2"}
	require.NoError(t, runCompress(compressCfg))

	decompressCfg := compressCfg
	decompressCfg.inPath, decompressCfg.outPath = compressed, decompressed
	require.NoError(t, runDecompress(decompressCfg))

	dumpCfg := loadCfg
	dumpCfg.inPath, dumpCfg.outPath = decompressed, textOut
	require.NoError(t, runDump(dumpCfg))

	got, err := readFile(textOut)
	require.NoError(t, err)
	require.Equal(t, "1.5\n2.25\n-3.75\n0\n9.125\n9.125\n9.125\n", got)
}

// TestCLI_FullMatrixRoundTrip exercises load -> compress -> decompress ->
// dump across every (-a, -w, -t) combination, per SPEC_FULL.md's end-to-end
// testable property.
func TestCLI_FullMatrixRoundTrip(t *testing.T) {
	floatTokens := "1.5 2.25 -3.75 0 9.125 9.125 9.125\n"
	floatWant := "1.5\n2.25\n-3.75\n0\n9.125\n9.125\n9.125\n"
	intTokens := "1 -2 3 4 5 6 7 8 9 -10\n"
	intWant := "1\n-2\n3\n4\n5\n6\n7\n8\n9\n-10\n"

	for _, algorithm := range []string{"gorilla", "entropy"} {
		for _, width := range []int{32, 64} {
			for _, numType := range []string{"int", "float"} {
				t.Run(algorithm+"/"+numType+"/"+itoa(width), func(t *testing.T) {
					tokens, want := intTokens, intWant
					if numType == "float" {
						tokens, want = floatTokens, floatWant
					}

					dir := t.TempDir()
					textIn := filepath.Join(dir, "in.txt")
					bin := filepath.Join(dir, "values.bin")
					compressed := filepath.Join(dir, "values.enc")
					decompressed := filepath.Join(dir, "values.out")
					textOut := filepath.Join(dir, "out.txt")

					require.NoError(t, writeFile(textIn, tokens))

					cfg := config{algorithm: algorithm, width: width, numType: numType, compression: "none"}

					loadCfg := cfg
					loadCfg.inPath, loadCfg.outPath = textIn, bin
					require.NoError(t, runLoad(loadCfg))

					compressCfg := cfg
					compressCfg.inPath, compressCfg.outPath = bin, compressed
					require.NoError(t, runCompress(compressCfg))

					decompressCfg := cfg
					decompressCfg.inPath, decompressCfg.outPath = compressed, decompressed
					require.NoError(t, runDecompress(decompressCfg))

					dumpCfg := cfg
					dumpCfg.inPath, dumpCfg.outPath = decompressed, textOut
					require.NoError(t, runDump(dumpCfg))

					got, err := readFile(textOut)
					require.NoError(t, err)
					require.Equal(t, want, got)
				})
			}
		}
	}
}

func TestRunDump_CorruptedInput_TrailingPartialBlock(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "values.bin")
	textOut := filepath.Join(dir, "out.txt")

	require.NoError(t, writeFile(bin, string([]byte{1, 2, 3, 4, 5})))

	cfg := config{inPath: bin, outPath: textOut, algorithm: "gorilla", width: 32, numType: "int", compression: "none"}
	err := runDump(cfg)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrCorruptedInput))
}

func TestCompressDecompress_EntropyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	textIn := filepath.Join(dir, "in.txt")
	bin := filepath.Join(dir, "values.bin")
	compressed := filepath.Join(dir, "values.ent")
	decompressed := filepath.Join(dir, "values.out")
	textOut := filepath.Join(dir, "out.txt")

	require.NoError(t, writeFile(textIn, "1 2 3 4 5 6 7 8 9 10\n"))

	loadCfg := config{inPath: textIn, outPath: bin, algorithm: "entropy", width: 64, numType: "int", compression: "none"}
	require.NoError(t, runLoad(loadCfg))

	compressCfg := config{inPath: bin, outPath: compressed, algorithm: "entropy", width: 64, numType: "int", compression: "none"}
	require.NoError(t, runCompress(compressCfg))

	decompressCfg := compressCfg
	decompressCfg.inPath, decompressCfg.outPath = compressed, decompressed
	require.NoError(t, runDecompress(decompressCfg))

	dumpCfg := loadCfg
	dumpCfg.inPath, dumpCfg.outPath = decompressed, textOut
	require.NoError(t, runDump(dumpCfg))

	got, err := readFile(textOut)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n", got)
}
