// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build linux

package display

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwprobe/hwprobe/edid"
)

// syntheticEDID builds a minimal valid base block: vendor DEL (0x10AC), a
// digital 8-bit HDMI input and a 60x34 cm panel.
func syntheticEDID() []byte {
	block := make([]byte, edid.BaseBlockSize)
	block[8], block[9] = 0x10, 0xAC
	block[10], block[11] = 0xA0, 0xB1
	block[0x11] = 30 // 2020
	block[0x14] = 0x80 | 2<<3 | 2
	block[21], block[22] = 60, 34
	return block
}

// fakeDRM builds a DRM-shaped tree: one card with the given connectors, each
// holding the given edid content (nil for no file).
func fakeDRM(t *testing.T, connectors map[string][]byte) string {
	t.Helper()
	root := t.TempDir()
	card := filepath.Join(root, "class", "drm", "card0")
	require.NoError(t, os.MkdirAll(card, 0o755))

	for name, content := range connectors {
		dir := filepath.Join(root, "class", "drm", "card0", name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		if content != nil {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "edid"), content, 0o644))
		}
	}
	return root
}

func TestCollectFromSysfs(t *testing.T) {
	root := fakeDRM(t, map[string][]byte{
		"card0-HDMI-A-1": syntheticEDID(),
		"card0-DP-1":     {}, // connected port, nothing attached
		"card0-eDP-1":    nil,
	})

	info, warns, err := collectFromSysfs(root)
	require.NoError(t, err)
	assert.Empty(t, warns)
	require.Len(t, info.Monitors, 1)

	monitor := info.Monitors[0]
	assert.Equal(t, "card0-HDMI-A-1", monitor.Connector)
	require.NotNil(t, monitor.Descriptor)
	assert.Equal(t, "DEL", monitor.Descriptor.ManufacturerCode)
	assert.Equal(t, 2020, monitor.Descriptor.ManufactureYear)
}

func TestCollectFromSysfsTruncatedEDID(t *testing.T) {
	root := fakeDRM(t, map[string][]byte{
		"card0-HDMI-A-1": syntheticEDID()[:64],
	})

	info, warns, err := collectFromSysfs(root)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0], "card0-HDMI-A-1")
	assert.Empty(t, info.Monitors)
}

func TestCollectFromSysfsNoDRM(t *testing.T) {
	_, _, err := collectFromSysfs(t.TempDir())
	assert.Error(t, err)
}

func TestCollectFromSysfsIgnoresNonCardEntries(t *testing.T) {
	root := fakeDRM(t, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "class", "drm", "renderD128"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "class", "drm", "version"), 0o755))

	info, warns, err := collectFromSysfs(root)
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Empty(t, info.Monitors)
}
