// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build linux

package audio

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// /proc/asound/cards lists one header line per card:
//
//	0 [PCH            ]: HDA-Intel - HDA Intel PCH
//	                     HDA Intel PCH at 0xf7210000 irq 32
//
// followed by an indented description line we don't need.
var cardLinePattern = regexp.MustCompile(`^\s*\d+\s+\[\S+\s*\]:\s+(.+?)\s+-\s+(.+)$`)

func collectInfo() (*Info, []string, error) {
	return collectFromProc("/proc/asound/cards")
}

func collectFromProc(path string) (*Info, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("audio: %w", err)
	}
	return parseCards(string(raw)), nil, nil
}

func parseCards(raw string) *Info {
	info := &Info{}
	for _, line := range strings.Split(raw, "\n") {
		m := cardLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		info.Cards = append(info.Cards, Card{
			Name:   strings.TrimSpace(m[2]),
			Driver: m[1],
		})
	}
	return info
}
