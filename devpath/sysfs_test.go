// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package devpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSysfs builds a sysfs-shaped tree under a temp dir and returns its root
// plus a device directory wired to the given slot.
func fakeSysfs(t *testing.T, slot, acpiPath string) (root, device string) {
	t.Helper()
	root = t.TempDir()

	device = filepath.Join(root, "class", "drm", "card0", "device")
	require.NoError(t, os.MkdirAll(filepath.Join(device, "firmware_node"), 0o755))
	if acpiPath != "" {
		require.NoError(t, os.WriteFile(filepath.Join(device, "firmware_node", "path"), []byte(acpiPath+"\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(device, "uevent"),
		[]byte("DRIVER=i915\nPCI_SLOT_NAME="+slot+"\nPCI_ID=8086:9A49\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "bus", "pci", "devices", slot), 0o755))
	return root, device
}

// addBridge registers a bridge slot whose directory lists the child slot,
// which is how sysfs exposes the bridge/child relationship.
func addBridge(t *testing.T, root, bridgeSlot, childSlot string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bus", "pci", "devices", bridgeSlot, childSlot), 0o755))
}

func TestResolveWithBridge(t *testing.T) {
	root, device := fakeSysfs(t, "0000:03:00.0", `\_SB_.PCI0.GFX0`)
	addBridge(t, root, "0000:00:1d.0", "0000:03:00.0")

	path := SysfsResolver{Root: root}.Resolve(device)

	assert.Equal(t, `\_SB_.PCI0.GFX0`, path.ACPI)
	assert.Equal(t, "PciRoot(0x0)/Pci(0x1D,0x0)/Pci(0x0,0x0)", path.PCI)
}

func TestResolveDirectDevice(t *testing.T) {
	root, device := fakeSysfs(t, "0000:00:02.0", `\_SB_.PCI0.GFX0`)

	path := SysfsResolver{Root: root}.Resolve(device)

	assert.Equal(t, "PciRoot(0x0)/Pci(0x2,0x0)", path.PCI)
}

func TestResolveNonzeroDomain(t *testing.T) {
	root, device := fakeSysfs(t, "0010:05:00.1", `\_SB_.PCI1`)

	path := SysfsResolver{Root: root}.Resolve(device)

	assert.Equal(t, "PciRoot(0x10)/Pci(0x0,0x1)", path.PCI)
}

func TestResolveMissingFirmwareNode(t *testing.T) {
	root, device := fakeSysfs(t, "0000:00:02.0", "")

	path := SysfsResolver{Root: root}.Resolve(device)

	assert.Equal(t, CanonicalDevicePath{}, path)
}

func TestResolveMissingUevent(t *testing.T) {
	root, device := fakeSysfs(t, "0000:00:02.0", `\_SB_.PCI0`)
	require.NoError(t, os.Remove(filepath.Join(device, "uevent")))

	path := SysfsResolver{Root: root}.Resolve(device)

	assert.Equal(t, CanonicalDevicePath{}, path)
}

func TestResolveNoSlotName(t *testing.T) {
	root, device := fakeSysfs(t, "0000:00:02.0", `\_SB_.PCI0`)
	require.NoError(t, os.WriteFile(filepath.Join(device, "uevent"), []byte("DRIVER=i915\n"), 0o644))

	path := SysfsResolver{Root: root}.Resolve(device)

	assert.Equal(t, `\_SB_.PCI0`, path.ACPI)
	assert.Empty(t, path.PCI)
}

func TestResolveMalformedSlotName(t *testing.T) {
	root, device := fakeSysfs(t, "0000:00:02.0", `\_SB_.PCI0`)
	require.NoError(t, os.WriteFile(filepath.Join(device, "uevent"),
		[]byte("PCI_SLOT_NAME=not-a-slot\n"), 0o644))

	path := SysfsResolver{Root: root}.Resolve(device)

	// the ACPI half survives a slot string the grammar rejects
	assert.Equal(t, `\_SB_.PCI0`, path.ACPI)
	assert.Empty(t, path.PCI)
}

func TestResolveIsDeterministic(t *testing.T) {
	root, device := fakeSysfs(t, "0000:03:00.0", `\_SB_.PCI0.GFX0`)
	addBridge(t, root, "0000:00:1d.0", "0000:03:00.0")
	addBridge(t, root, "0000:00:1c.4", "0000:03:00.0")

	resolver := SysfsResolver{Root: root}
	first := resolver.Resolve(device)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, resolver.Resolve(device))
	}
}

func TestParseSlotName(t *testing.T) {
	addr, err := ParseSlotName("0000:03:00.1")
	require.NoError(t, err)
	assert.Equal(t, DeviceAddress{Domain: 0, Bus: 3, Device: 0, Function: 1}, addr)

	addr, err = ParseSlotName("0010:1c:1f.7")
	require.NoError(t, err)
	assert.Equal(t, DeviceAddress{Domain: 0x10, Bus: 0x1C, Device: 0x1F, Function: 7}, addr)

	for _, bad := range []string{"", "0000:03:00", "03:00.1:extra:fields", "zz00:03:00.1", "0000:03:00.x"} {
		_, err := ParseSlotName(bad)
		assert.ErrorIs(t, err, ErrMalformedAddress, "input %q", bad)
	}
}
