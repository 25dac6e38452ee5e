package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlobste/ip6pool/internal/export"
)

func script(steps ...string) string {
	return strings.Join(steps, "\n") + "\n"
}

func TestMenuGenerateAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")
	in := script(
		"1", "5", "v6", "2001:db8::/64",
		"3", path, "json",
		"4",
	)
	out, _, err := run(t, in, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated IPv6 Addresses:")
	assert.Contains(t, out, "Saved 5 addresses to "+path)
	assert.Contains(t, out, "Exiting ip6pool.")

	got, err := export.Load(path, export.JSON)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestMenuEUI64DefaultFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eui.txt")
	in := script(
		"2", "00:1A:2B:3C:4D:5E", "2001:db8::/64",
		"3", path, "",
		"4",
	)
	out, _, err := run(t, in, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated EUI-64 IPv6 Address: 2001:db8::21a:2bff:fe3c:4d5e")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::21a:2bff:fe3c:4d5e\n", string(data))
}

func TestMenuReportsErrorsAndContinues(t *testing.T) {
	in := script(
		"1", "3", "v6", "not-a-prefix",
		"2", "00:1A:2B", "2001:db8::/64",
		"1", "many",
		"9",
		"3",
		"1", "2", "v4",
		"4",
	)
	out, _, err := run(t, in, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: ipv6: invalid prefix")
	assert.Contains(t, out, "Error: ipv6: invalid mac address")
	assert.Contains(t, out, `Error: invalid count "many"`)
	assert.Contains(t, out, "Invalid option. Please choose again.")
	assert.Contains(t, out, "No addresses generated yet.")
	assert.Contains(t, out, "Generated IPv4 Addresses:")
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	out, _, err := run(t, script("1", "2"), "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "IPv4 or IPv6 (v4/v6)? ")
	assert.NotContains(t, out, "Exiting")
}

func TestMenuSaveFailureIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pool.txt")
	in := script(
		"1", "1", "v4",
		"3", path, "text",
		"4",
	)
	out, _, err := run(t, in, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: export: open "+path)
	assert.NoFileExists(t, path)
}

func TestMenuValidationIsLogged(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "ip6pool.log")
	path := filepath.Join(dir, "pool.out")
	in := script(
		"1", "many",
		"1", "2", "v5",
		"1", "1", "v4",
		"3", "",
		"3", path, "xml",
		"4",
	)
	_, _, err := runLogged(t, logFile, in, "menu")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	log := string(data)
	assert.Equal(t, 4, strings.Count(log, "Invalid input"))
	assert.Contains(t, log, `invalid count \"many\"`)
	assert.Contains(t, log, `unknown address version \"v5\"`)
	assert.Contains(t, log, "empty filename")
	assert.Contains(t, log, "unknown format")
	assert.NoFileExists(t, path)
}
