// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build darwin

package audio

import (
	"encoding/json"
	"os/exec"
)

type spAudioReport struct {
	Sections []spAudioSection `json:"SPAudioDataType"`
}

type spAudioSection struct {
	Items []spAudioItem `json:"_items"`
}

type spAudioItem struct {
	Name         string `json:"_name"`
	Manufacturer string `json:"coreaudio_device_manufacturer"`
}

func collectInfo() (*Info, []string, error) {
	output, err := exec.Command("system_profiler", "-json", "SPAudioDataType").Output()
	if err != nil {
		return nil, nil, err
	}
	return parseSPAudio(output)
}

func parseSPAudio(raw []byte) (*Info, []string, error) {
	var report spAudioReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, nil, err
	}

	info := &Info{}
	for _, section := range report.Sections {
		for _, item := range section.Items {
			info.Cards = append(info.Cards, Card{
				Name:         item.Name,
				Manufacturer: item.Manufacturer,
			})
		}
	}
	return info, nil, nil
}
