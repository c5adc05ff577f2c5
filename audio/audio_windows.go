// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build windows

package audio

import (
	"github.com/yusufpapurcu/wmi"
)

// https://docs.microsoft.com/en-us/windows/win32/cimwin32prov/win32-sounddevice
//
//nolint:revive
type Win32_SoundDevice struct {
	Name         string
	Manufacturer *string
}

func collectInfo() (*Info, []string, error) {
	var devices []Win32_SoundDevice
	query := wmi.CreateQuery(&devices, "")
	if err := wmi.Query(query, &devices); err != nil {
		return nil, nil, err
	}

	info := &Info{}
	for _, device := range devices {
		card := Card{Name: device.Name}
		if device.Manufacturer != nil {
			card.Manufacturer = *device.Manufacturer
		}
		info.Cards = append(info.Cards, card)
	}
	return info, nil, nil
}
