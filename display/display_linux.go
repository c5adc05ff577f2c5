// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build linux

package display

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hwprobe/hwprobe/edid"
	"github.com/hwprobe/hwprobe/internal/log"
)

// DRM adapters are enumerated as cardN; their connectors as cardN-<name>.
var cardPattern = regexp.MustCompile(`^card\d+$`)

func collectInfo() (*Info, []string, error) {
	return collectFromSysfs("/sys")
}

func collectFromSysfs(root string) (*Info, []string, error) {
	drm := filepath.Join(root, "class", "drm")
	entries, err := os.ReadDir(drm)
	if err != nil {
		// WSL and headless VMs have no DRM class at all
		return nil, nil, fmt.Errorf("display: %w", err)
	}

	info := &Info{}
	var warns []string

	for _, entry := range entries {
		if !cardPattern.MatchString(entry.Name()) {
			continue
		}
		connectors, err := os.ReadDir(filepath.Join(drm, entry.Name()))
		if err != nil {
			warns = append(warns, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}

		for _, connector := range connectors {
			if !strings.HasPrefix(connector.Name(), entry.Name()+"-") {
				continue
			}
			raw, err := os.ReadFile(filepath.Join(drm, entry.Name(), connector.Name(), "edid"))
			if err != nil || len(raw) == 0 {
				// connectors with nothing attached expose an empty edid file
				continue
			}

			descriptor, err := edid.Decode(raw)
			if err != nil {
				warns = append(warns, fmt.Sprintf("%s: %v", connector.Name(), err))
				continue
			}
			log.Debugf("display: decoded EDID for %s", connector.Name())
			info.Monitors = append(info.Monitors, Monitor{
				Connector:  connector.Name(),
				Descriptor: descriptor,
			})
		}
	}

	return info, warns, nil
}
