package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gamearc/lzkit"
	"github.com/gamearc/lzkit/internal/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestHeaderRoundTrip(t *testing.T) {
	raw := writeHeader(nil, header{formatID: 0x02, origLen: 123456, sum: 0xDEADBEEF})
	raw = append(raw, 0xAB, 0xCD)

	h, payload, err := parseHeader(raw)
	require.NoError(t, err)
	require.Equal(t, byte(0x02), h.formatID)
	require.Equal(t, 123456, h.origLen)
	require.Equal(t, uint32(0xDEADBEEF), h.sum)
	require.Equal(t, []byte{0xAB, 0xCD}, payload)
}

func TestParseHeaderErrors(t *testing.T) {
	_, _, err := parseHeader([]byte("LZK"))
	require.ErrorIs(t, err, ErrNotContainer)

	_, _, err = parseHeader([]byte("NOPE\x01\x01\x00\x00\x00\x00\x00\x00\x00\x00"))
	require.ErrorIs(t, err, ErrNotContainer)

	bad := writeHeader(nil, header{formatID: 1, origLen: 4})
	bad[4] = 99
	_, _, err = parseHeader(bad)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotContainer)
}

func TestFormatTable(t *testing.T) {
	ids := map[byte]string{}
	for _, f := range formats {
		require.NotContains(t, ids, f.id, "id of %s already taken", f.name)
		ids[f.id] = f.name
	}
	for _, name := range []string{"lzss", "prs", "rle", "huff", "deflate", "zlib", "zstd", "brotli", "snappy", "lz4", "xz"} {
		f, ok := formatByName(name)
		require.True(t, ok, name)
		byID, ok := formatByID(f.id)
		require.True(t, ok, name)
		require.Equal(t, name, byID.name)
	}
}

func TestDecompressChecksDeclaredSize(t *testing.T) {
	f, ok := formatByName("prs")
	require.True(t, ok)
	packed, err := f.compress([]byte("item_oak_staff"), searchOptions{level: lzkit.LevelOptimal, lookAhead: true})
	require.NoError(t, err)

	_, err = f.decompress(packed, 5)
	require.ErrorIs(t, err, lzkit.ErrSizeMismatch)
}

func TestCompressDecompressFiles(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "weapons.dat")
	content := bytes.Repeat([]byte("longsword shortsword broadsword "), 64)
	require.NoError(t, os.WriteFile(srcPath, content, 0o644))

	for _, name := range []string{"lzss", "prs", "rle", "huff", "zlib", "zstd"} {
		t.Run(name, func(t *testing.T) {
			cli := config.Cli{}
			cli.Compress = config.CompressCmd{
				Format: name,
				Level:  "optimal",
				Files:  []string{srcPath},
			}
			require.NoError(t, New(config.Meta{ID: "lzkit"}, cli).Compress())

			outPath := filepath.Join(dir, name+".restored")
			cli2 := config.Cli{}
			cli2.Decompress = config.DecompressCmd{
				Output: outPath,
				Files:  []string{srcPath + lzkExt},
			}
			require.NoError(t, New(config.Meta{ID: "lzkit"}, cli2).Decompress())

			got, err := os.ReadFile(outPath)
			require.NoError(t, err)
			require.Equal(t, content, got)
		})
	}
}

func TestCompressBatchIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.dat", "b.dat", "c.dat"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, bytes.Repeat([]byte(name), 100), 0o644))
		files = append(files, p)
	}

	packedDir := filepath.Join(dir, "packed")
	cli := config.Cli{}
	cli.Compress = config.CompressCmd{Format: "rle", Level: "optimal", Output: packedDir, Files: files}
	require.NoError(t, New(config.Meta{ID: "lzkit"}, cli).Compress())

	var packed []string
	for _, name := range []string{"a.dat", "b.dat", "c.dat"} {
		p := filepath.Join(packedDir, name+lzkExt)
		require.FileExists(t, p)
		packed = append(packed, p)
	}

	restoredDir := filepath.Join(dir, "restored")
	cli2 := config.Cli{}
	cli2.Decompress = config.DecompressCmd{Output: restoredDir, Files: packed}
	require.NoError(t, New(config.Meta{ID: "lzkit"}, cli2).Decompress())

	for _, name := range []string{"a.dat", "b.dat", "c.dat"} {
		got, err := os.ReadFile(filepath.Join(restoredDir, name))
		require.NoError(t, err)
		require.Equal(t, bytes.Repeat([]byte(name), 100), got)
	}
}

func TestCompressUnknownFormat(t *testing.T) {
	cli := config.Cli{}
	cli.Compress = config.CompressCmd{Format: "shrinkray", Files: []string{"whatever"}}
	require.Error(t, New(config.Meta{ID: "lzkit"}, cli).Compress())
}

func TestDecompressRejectsCorruptPayload(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "map.bin")
	require.NoError(t, os.WriteFile(srcPath, bytes.Repeat([]byte{0x11, 0x22}, 300), 0o644))

	cli := config.Cli{}
	cli.Compress = config.CompressCmd{Format: "zlib", Level: "optimal", Files: []string{srcPath}}
	require.NoError(t, New(config.Meta{ID: "lzkit"}, cli).Compress())

	packed, err := os.ReadFile(srcPath + lzkExt)
	require.NoError(t, err)
	packed[len(packed)-1] ^= 0xFF
	require.NoError(t, os.WriteFile(srcPath+lzkExt, packed, 0o644))

	cli2 := config.Cli{}
	cli2.Decompress = config.DecompressCmd{Output: filepath.Join(dir, "restored"), Files: []string{srcPath + lzkExt}}
	require.Error(t, New(config.Meta{ID: "lzkit"}, cli2).Decompress())
}

func TestDecompressRejectsBadChecksum(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "sprites.bin")
	require.NoError(t, os.WriteFile(srcPath, bytes.Repeat([]byte("tile"), 200), 0o644))

	cli := config.Cli{}
	cli.Compress = config.CompressCmd{Format: "rle", Level: "optimal", Files: []string{srcPath}}
	require.NoError(t, New(config.Meta{ID: "lzkit"}, cli).Compress())

	packed, err := os.ReadFile(srcPath + lzkExt)
	require.NoError(t, err)
	packed[10] ^= 0xFF
	require.NoError(t, os.WriteFile(srcPath+lzkExt, packed, 0o644))

	cli2 := config.Cli{}
	cli2.Decompress = config.DecompressCmd{Output: filepath.Join(dir, "restored"), Files: []string{srcPath + lzkExt}}
	err = New(config.Meta{ID: "lzkit"}, cli2).Decompress()
	require.ErrorIs(t, err, ErrChecksum)
}

func TestBatchPath(t *testing.T) {
	require.Equal(t, filepath.Join("a", "b.dat.lzk"), batchPath("", filepath.Join("a", "b.dat.lzk"), false))
	require.Equal(t, "out.bin", batchPath("out.bin", filepath.Join("a", "b.dat.lzk"), false))
	require.Equal(t, filepath.Join("outdir", "b.dat.lzk"), batchPath("outdir", filepath.Join("a", "b.dat.lzk"), true))
}

func TestRestoredName(t *testing.T) {
	require.Equal(t, "map.dat", restoredName("map.dat.lzk"))
	require.Equal(t, "map.bin.out", restoredName("map.bin"))
}
