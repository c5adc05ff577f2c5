// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build windows

package display

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/hwprobe/hwprobe/edid"
	"github.com/hwprobe/hwprobe/internal/log"
)

// monitorEnumKey is where the PnP manager records every monitor ever
// attached; each instance's Device Parameters key holds the raw EDID block.
const monitorEnumKey = `SYSTEM\CurrentControlSet\Enum\DISPLAY`

func collectInfo() (*Info, []string, error) {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, monitorEnumKey, registry.READ)
	if err != nil {
		return nil, nil, fmt.Errorf("display: %w", err)
	}
	defer root.Close()

	vendors, err := root.ReadSubKeyNames(0)
	if err != nil {
		return nil, nil, fmt.Errorf("display: %w", err)
	}

	info := &Info{}
	var warns []string

	for _, vendor := range vendors {
		vendorKey, err := registry.OpenKey(root, vendor, registry.READ)
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: %v", vendor, err))
			continue
		}
		instances, err := vendorKey.ReadSubKeyNames(0)
		vendorKey.Close()
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: %v", vendor, err))
			continue
		}

		for _, instance := range instances {
			connector := vendor + `\` + instance
			raw, err := readEDIDValue(root, connector+`\Device Parameters`)
			if err != nil {
				// instances of unplugged monitors often carry no EDID value
				log.Debugf("display: no EDID for %s: %v", connector, err)
				continue
			}

			descriptor, err := edid.Decode(raw)
			if err != nil {
				warns = append(warns, fmt.Sprintf("%s: %v", connector, err))
				continue
			}
			info.Monitors = append(info.Monitors, Monitor{
				Connector:  connector,
				Descriptor: descriptor,
			})
		}
	}

	return info, warns, nil
}

func readEDIDValue(root registry.Key, subKey string) ([]byte, error) {
	key, err := registry.OpenKey(root, subKey, registry.READ)
	if err != nil {
		return nil, err
	}
	defer key.Close()

	raw, _, err := key.GetBinaryValue("EDID")
	if err != nil {
		return nil, err
	}
	return raw, nil
}
