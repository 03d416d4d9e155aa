package adapter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRoot(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "etc"), 0o755))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, "etc", name), []byte(content), 0o600))
	}

	return root
}

func TestParseOSRelease(t *testing.T) {
	var logs bytes.Buffer

	input := `# comment
NAME="Chrome OS"
ID=chromeos
VERSION_ID=118
not a pair
`

	values, err := ParseOSRelease(strings.NewReader(input), log.New(&logs))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"NAME":       `"Chrome OS"`,
		"ID":         "chromeos",
		"VERSION_ID": "118",
	}, values)
	assert.Contains(t, logs.String(), "os-release entry seems malformed")
}

func TestLocalSystemProbe_ReadsFiles(t *testing.T) {
	root := fakeRoot(t, map[string]string{
		"os-release":  "ID=chromeos\n",
		"lsb-release": "CHROMEOS_RELEASE_BOARD=brya\nCHROMEOS_RELEASE_DESCRIPTION=15236.0.0 (Official Build) stable-channel brya\n",
	})
	probe := NewLocalSystemProbe(&scriptedRunner{}, root, log.New(&bytes.Buffer{}))

	release, err := probe.OSRelease()
	require.NoError(t, err)
	assert.Equal(t, "chromeos", release["ID"])

	cros, err := probe.CrosRelease()
	require.NoError(t, err)
	assert.Equal(t, "CHROMEOS_RELEASE_DESCRIPTION=15236.0.0 (Official Build) stable-channel brya", cros)

	kernel, err := probe.KernelRelease()
	require.NoError(t, err)
	assert.NotEmpty(t, kernel)
}

func TestLocalSystemProbe_MissingFiles(t *testing.T) {
	probe := NewLocalSystemProbe(&scriptedRunner{}, fakeRoot(t, map[string]string{
		"lsb-release": "DISTRIB_ID=Ubuntu\n",
	}), log.New(&bytes.Buffer{}))

	_, err := probe.OSRelease()
	assert.Error(t, err)

	_, err = probe.CrosRelease()
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestLocalSystemProbe_Dmidecode(t *testing.T) {
	runner := &scriptedRunner{stdout: []byte("System Information\n\tManufacturer: Google\n")}
	probe := NewLocalSystemProbe(runner, t.TempDir(), log.New(&bytes.Buffer{}))

	info, err := probe.SystemInfo()
	require.NoError(t, err)
	assert.Contains(t, info, "Manufacturer: Google")

	_, err = probe.BIOSInfo()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"/usr/sbin/dmidecode", "-q", "-t1"},
		{"/usr/sbin/dmidecode", "-q", "-t0"},
	}, runner.calls)

	runner.err = errors.New("permission denied")
	_, err = probe.BIOSInfo()
	assert.ErrorContains(t, err, "dmidecode")
}
