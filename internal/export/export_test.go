package export

import (
	"bytes"
	"io/fs"
	"math/rand/v2"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlobste/ip6pool/ipv6"
)

var sample = []string{"2001:db8::1", "2001:db8::2", "10.0.0.1"}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		expect Format
	}{
		{"text", Text},
		{"TXT", Text},
		{" json ", JSON},
		{"Csv", CSV},
		{"yaml", YAML},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expect, f)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteLayouts(t *testing.T) {
	tests := []struct {
		format Format
		expect string
	}{
		{Text, "2001:db8::1\n2001:db8::2\n10.0.0.1\n"},
		{JSON, "[\n  \"2001:db8::1\",\n  \"2001:db8::2\",\n  \"10.0.0.1\"\n]\n"},
		{CSV, "2001:db8::1\n2001:db8::2\n10.0.0.1\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sample, tt.format))
			assert.Equal(t, tt.expect, buf.String())
		})
	}
}

func TestWriteYAMLSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, YAML))
	assert.Contains(t, buf.String(), "- 10.0.0.1\n")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("- ")))
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, JSON))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil, Text))
	assert.Empty(t, buf.String())
}

func TestRoundTrip(t *testing.T) {
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sample, f))
			got, err := Read(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, sample, got)
		})
	}
}

func TestSaveLoadGeneratedSet(t *testing.T) {
	p := ipv6.MustParsePrefix("2001:db8::/48")
	set, err := ipv6.NewGenerator(rand.NewChaCha8([32]byte{7})).Random(p, 250)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pool.txt")
	require.NoError(t, Save(path, set.Strings(), Text))

	lines, err := Load(path, Text)
	require.NoError(t, err)
	require.Len(t, lines, 250)
	for _, l := range lines {
		a, err := netip.ParseAddr(l)
		require.NoError(t, err)
		assert.True(t, set.Contains(a), "unexpected %s", a)
	}
}

func TestSaveUnknownFormatLeavesFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.txt")
	require.NoError(t, os.WriteFile(path, []byte("original\n"), 0o600))

	err := Save(path, sample, Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(data))
}

func TestSaveUnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pool.txt")
	err := Save(path, sample, Text)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), JSON)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadRejectsMalformed(t *testing.T) {
	_, err := Read(bytes.NewBufferString("{"), JSON)
	assert.Error(t, err)

	_, err = Read(bytes.NewBufferString("a,b\n"), CSV)
	assert.Error(t, err)

	_, err = Read(bytes.NewBufferString(""), Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
