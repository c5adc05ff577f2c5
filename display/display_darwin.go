// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build darwin

package display

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hwprobe/hwprobe/edid"
)

type spDisplaysReport struct {
	Controllers []spDisplayController `json:"SPDisplaysDataType"`
}

type spDisplayController struct {
	Monitors []spMonitor `json:"spdisplays_ndrvs"`
}

type spMonitor struct {
	Name string `json:"_name"`
	// EDID is a hex string, usually 0x-prefixed
	EDID string `json:"_spdisplays_edid"`
}

func collectInfo() (*Info, []string, error) {
	output, err := exec.Command("system_profiler", "-json", "SPDisplaysDataType").Output()
	if err != nil {
		return nil, nil, err
	}
	return parseSPDisplays(output)
}

func parseSPDisplays(raw []byte) (*Info, []string, error) {
	var report spDisplaysReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, nil, err
	}

	info := &Info{}
	var warns []string

	for _, controller := range report.Controllers {
		for _, monitor := range controller.Monitors {
			if monitor.EDID == "" {
				continue
			}
			block, err := decodeHexEDID(monitor.EDID)
			if err != nil {
				warns = append(warns, fmt.Sprintf("%s: %v", monitor.Name, err))
				continue
			}
			descriptor, err := edid.Decode(block)
			if err != nil {
				warns = append(warns, fmt.Sprintf("%s: %v", monitor.Name, err))
				continue
			}
			info.Monitors = append(info.Monitors, Monitor{
				Connector:  monitor.Name,
				Descriptor: descriptor,
			})
		}
	}

	return info, warns, nil
}

// decodeHexEDID turns the profiler's hex rendering of the EDID block back
// into bytes.
func decodeHexEDID(value string) ([]byte, error) {
	value = strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	return hex.DecodeString(value)
}
