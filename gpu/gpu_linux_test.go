// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build linux

package gpu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addPCIDevice registers a PCI function in the fixture registry with the
// given class and identity files.
func addPCIDevice(t *testing.T, root, slot, class, vendor, device string) string {
	t.Helper()
	dir := filepath.Join(root, "bus", "pci", "devices", slot)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range map[string]string{
		"class":  class,
		"vendor": vendor,
		"device": device,
		"uevent": "PCI_SLOT_NAME=" + slot + "\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content+"\n"), 0o644))
	}
	return dir
}

func TestCollectFromSysfs(t *testing.T) {
	root := t.TempDir()

	gpuDir := addPCIDevice(t, root, "0000:01:00.0", "0x030000", "0x10de", "0x2482")
	addPCIDevice(t, root, "0000:00:1f.3", "0x040300", "0x8086", "0xa348") // audio, skipped
	addPCIDevice(t, root, "0000:00:02.0", "0x038000", "0x8086", "0x3e92") // other display controller

	require.NoError(t, os.MkdirAll(filepath.Join(gpuDir, "firmware_node"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(gpuDir, "firmware_node", "path"),
		[]byte(`\_SB_.PCI0.GFX0`+"\n"), 0o644))

	info, warns, err := collectFromSysfs(root)
	require.NoError(t, err)
	assert.Empty(t, warns)
	require.Len(t, info.Devices, 2)

	var discrete *Device
	for i := range info.Devices {
		if info.Devices[i].VendorID == "0x10de" {
			discrete = &info.Devices[i]
		}
	}
	require.NotNil(t, discrete)
	assert.Equal(t, "0x2482", discrete.DeviceID)
	assert.Equal(t, `\_SB_.PCI0.GFX0`, discrete.ACPIPath)
	assert.Equal(t, "PciRoot(0x0)/Pci(0x0,0x0)", discrete.PCIPath)
}

func TestCollectFromSysfsNoRegistry(t *testing.T) {
	_, _, err := collectFromSysfs(t.TempDir())
	assert.Error(t, err)
}

func TestCollectFromSysfsBadClass(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "bus", "pci", "devices", "0000:00:02.0")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "class"), []byte("garbage\n"), 0o644))

	info, warns, err := collectFromSysfs(root)
	require.NoError(t, err)
	assert.Len(t, warns, 1)
	assert.Empty(t, info.Devices)
}
