// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package devpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A Windows firmware location path is a #-separated string such as
// "PCIROOT(0)#PCI(1D00)#PCI(0000)" or "ACPI(_SB_)#ACPI(PCI0)#ACPI(GFX0)".
// The two formatters below each pull out the segments they understand and
// skip the rest, so a mixed or partially recognized string still yields a
// best-effort path.
var (
	pciRootPattern = regexp.MustCompile(`^PCIROOT\((\d+)\)$`)
	pciHexPattern  = regexp.MustCompile(`^(?i:(PCI|USB))\(([0-9A-Fa-f]{4})\)$`)
	acpiPattern    = regexp.MustCompile(`(?:ACPI|USB)\(([^)]*)\)`)
)

// FormatPCIPath renders the PCI portion of a raw location path in UEFI
// device-path notation. Segments that don't match the grammar are skipped;
// an empty input or a string with no PCI segments yields "".
func FormatPCIPath(raw string) string {
	if raw == "" {
		return ""
	}

	var parts []string
	for _, segment := range strings.Split(raw, "#") {
		if m := pciRootPattern.FindStringSubmatch(segment); m != nil {
			domain, _ := strconv.Atoi(m[1])
			parts = append(parts, fmt.Sprintf("PciRoot(0x%X)", domain))
			continue
		}
		if m := pciHexPattern.FindStringSubmatch(segment); m != nil {
			// the 16-bit value packs the device in the high byte and the
			// function in the low byte
			value, _ := strconv.ParseUint(m[2], 16, 16)
			prefix := "Pci"
			if strings.EqualFold(m[1], "USB") {
				prefix = "Usb"
			}
			parts = append(parts, fmt.Sprintf("%s(0x%X,0x%X)", prefix, value>>8, value&0xFF))
		}
	}
	return strings.Join(parts, "/")
}

// FormatACPIPath renders the ACPI portion of a raw location path: every
// ACPI(name) or USB(name) bracket content in order of appearance, joined
// with dots behind a leading backslash. When the string contains no such
// segment it is returned unchanged as a best-effort fallback; an empty
// input yields "".
func FormatACPIPath(raw string) string {
	if raw == "" {
		return ""
	}

	matches := acpiPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return raw
	}

	segments := make([]string, len(matches))
	for i, m := range matches {
		segments[i] = m[1]
	}
	return `\` + strings.Join(segments, ".")
}

// ResolveLocationPath builds the canonical path for a raw Windows firmware
// location string. Both fields are best-effort and independently absent;
// an empty input yields an empty path.
func ResolveLocationPath(raw string) CanonicalDevicePath {
	return CanonicalDevicePath{
		ACPI: FormatACPIPath(raw),
		PCI:  FormatPCIPath(raw),
	}
}

// ResolveLocationPaths folds a device's full list of location paths into one
// canonical path. Windows reports a device once per addressing scheme, a
// PCIROOT-style entry and an ACPI-style entry; each half of the result comes
// from the first entry that genuinely carries it, so the fallback of
// FormatACPIPath never leaks a PCI string into the ACPI half.
func ResolveLocationPaths(locations []string) CanonicalDevicePath {
	var canonical CanonicalDevicePath
	for _, location := range locations {
		if canonical.PCI == "" {
			canonical.PCI = FormatPCIPath(location)
		}
		if canonical.ACPI == "" {
			if acpi := FormatACPIPath(location); strings.HasPrefix(acpi, `\`) {
				canonical.ACPI = acpi
			}
		}
	}
	return canonical
}
