// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build darwin

package filesystem

import (
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/hwprobe/hwprobe/internal/log"
)

func collectInfo() ([]MountInfo, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	result := make([]MountInfo, 0, len(partitions))
	for _, partition := range partitions {
		usage, err := disk.Usage(partition.Mountpoint)
		if err != nil {
			log.Debugf("filesystem: usage %s: %v", partition.Mountpoint, err)
			continue
		}
		if usage.Total == 0 {
			continue
		}
		result = append(result, MountInfo{
			Name:      partition.Device,
			SizeKB:    usage.Total / 1024,
			MountedOn: partition.Mountpoint,
		})
	}
	return result, nil
}
