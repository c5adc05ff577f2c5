// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package devpath

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SysfsResolver builds canonical device paths from Linux sysfs topology.
//
// The zero value reads the real /sys; Root exists so tests can point the
// resolver at a fixture tree.
type SysfsResolver struct {
	// Root is the sysfs mount point, "/sys" when empty.
	Root string
}

func (r SysfsResolver) root() string {
	if r.Root == "" {
		return "/sys"
	}
	return r.Root
}

// Resolve reconstructs the firmware address of the device whose sysfs
// directory is devicePath (for example /sys/class/drm/card0/device).
//
// Missing topology is not an error: many virtualized environments carry no
// firmware_node, and a device without a PCI slot gets an ACPI path alone.
// Resolve never fails; at worst it returns an empty path.
func (r SysfsResolver) Resolve(devicePath string) CanonicalDevicePath {
	acpi, err := readTrimmed(filepath.Join(devicePath, "firmware_node", "path"))
	if err != nil {
		return CanonicalDevicePath{}
	}
	uevent, err := readTrimmed(filepath.Join(devicePath, "uevent"))
	if err != nil {
		return CanonicalDevicePath{}
	}

	slot := slotNameFromUevent(uevent)
	if slot == "" {
		return CanonicalDevicePath{ACPI: acpi}
	}

	pci, err := r.assemblePCIPath(slot)
	if err != nil {
		return CanonicalDevicePath{ACPI: acpi}
	}
	return CanonicalDevicePath{ACPI: acpi, PCI: pci}
}

// slotNameFromUevent pulls the PCI_SLOT_NAME value out of a uevent blob.
func slotNameFromUevent(uevent string) string {
	for _, line := range strings.Split(uevent, "\n") {
		key, value, found := strings.Cut(line, "=")
		if found && strings.EqualFold(strings.TrimSpace(key), "PCI_SLOT_NAME") {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// assemblePCIPath builds the PciRoot/Pci chain for the device at the given
// slot.
//
// Ancestor bridges are found by scanning every entry of the PCI device
// registry for one whose directory lists the target slot; this is a
// structural proxy, not a true parent-pointer walk, but the descending sort
// of the device,function pairs places segments root-to-leaf for well-formed
// slot numbering.
func (r SysfsResolver) assemblePCIPath(slot string) (string, error) {
	addr, err := ParseSlotName(slot)
	if err != nil {
		return "", err
	}

	groups := []string{hexPair(addr)}

	registry := filepath.Join(r.root(), "bus", "pci", "devices")
	entries, err := os.ReadDir(registry)
	if err != nil {
		// no registry at all: fall back to the device's own segment
		entries = nil
	}
	for _, entry := range entries {
		if entry.Name() == slot {
			continue
		}
		if !dirContains(filepath.Join(registry, entry.Name()), slot) {
			continue
		}
		ancestor, err := ParseSlotName(entry.Name())
		if err != nil {
			continue
		}
		groups = append(groups, hexPair(ancestor))
	}

	sort.Sort(sort.Reverse(sort.StringSlice(groups)))

	var path strings.Builder
	fmt.Fprintf(&path, "PciRoot(0x%X)", addr.Domain)
	for _, group := range groups {
		path.WriteString("/Pci(" + group + ")")
	}
	return path.String(), nil
}

func hexPair(addr DeviceAddress) string {
	return fmt.Sprintf("0x%X,0x%X", addr.Device, addr.Function)
}

// dirContains reports whether the directory has an entry with the given
// name. Unreadable directories count as not containing it.
func dirContains(dir, name string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.Name() == name {
			return true
		}
	}
	return false
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return "", fmt.Errorf("devpath: %s is empty", path)
	}
	return trimmed, nil
}
