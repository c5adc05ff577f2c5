// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package devpath reconstructs canonical firmware addresses for devices: the
// ACPI namespace path and the UEFI-style PCI device path, from whatever
// fragmentary topology data the platform exposes.
package devpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedAddress is returned when a PCI slot string does not follow the
// domain:bus:device.function grammar.
var ErrMalformedAddress = errors.New("devpath: malformed PCI address")

// CanonicalDevicePath is the firmware address of one device. Either field may
// be absent independently; an empty string means the platform did not expose
// enough topology to build it.
type CanonicalDevicePath struct {
	// ACPI is the namespace path, a backslash followed by dot-separated
	// object names, for example `\_SB_.PCI0.GFX0`.
	ACPI string `json:"acpi_path,omitempty"`
	// PCI is the UEFI device-path notation, a PciRoot segment followed by
	// Pci segments root-to-leaf, for example `PciRoot(0x0)/Pci(0x2,0x0)`.
	PCI string `json:"pci_path,omitempty"`
}

// DeviceAddress locates a PCI function: domain, bus, device and function as
// carried by a Linux slot name such as "0000:03:00.1".
type DeviceAddress struct {
	Domain   int `json:"domain"`
	Bus      int `json:"bus"`
	Device   int `json:"device"`
	Function int `json:"function"`
}

// ParseSlotName parses a domain:bus:device.function string, all fields hex.
func ParseSlotName(slot string) (DeviceAddress, error) {
	parts := strings.Split(slot, ":")
	if len(parts) != 3 {
		return DeviceAddress{}, fmt.Errorf("%w: %q", ErrMalformedAddress, slot)
	}
	devFn := strings.Split(parts[2], ".")
	if len(devFn) != 2 {
		return DeviceAddress{}, fmt.Errorf("%w: %q", ErrMalformedAddress, slot)
	}

	fields := []string{parts[0], parts[1], devFn[0], devFn[1]}
	values := make([]int, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return DeviceAddress{}, fmt.Errorf("%w: %q", ErrMalformedAddress, slot)
		}
		values[i] = int(value)
	}

	return DeviceAddress{
		Domain:   values[0],
		Bus:      values[1],
		Device:   values[2],
		Function: values[3],
	}, nil
}
