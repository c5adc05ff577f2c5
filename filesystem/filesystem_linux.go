// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build linux

package filesystem

import (
	"strings"

	"github.com/moby/sys/mountinfo"
	"golang.org/x/sys/unix"

	"github.com/hwprobe/hwprobe/internal/log"
)

// pseudo filesystems carry no storage and only add noise to the inventory
var pseudoFSTypes = map[string]struct{}{
	"autofs":      {},
	"bpf":         {},
	"cgroup":      {},
	"cgroup2":     {},
	"configfs":    {},
	"debugfs":     {},
	"devpts":      {},
	"fusectl":     {},
	"hugetlbfs":   {},
	"mqueue":      {},
	"proc":        {},
	"pstore":      {},
	"securityfs":  {},
	"selinuxfs":   {},
	"sysfs":       {},
	"tracefs":     {},
	"binfmt_misc": {},
}

func keepMount(mount *mountinfo.Info) (skip, stop bool) {
	if _, pseudo := pseudoFSTypes[mount.FSType]; pseudo {
		return true, false
	}
	// overlayfs layers and bind mounts of the root device show up once per
	// container; the root-relative ones are enough
	if strings.HasPrefix(mount.Mountpoint, "/proc/") || strings.HasPrefix(mount.Mountpoint, "/sys/") {
		return true, false
	}
	return false, false
}

func collectInfo() ([]MountInfo, error) {
	mounts, err := mountinfo.GetMounts(keepMount)
	if err != nil {
		return nil, err
	}

	result := make([]MountInfo, 0, len(mounts))
	for _, mount := range mounts {
		var stat unix.Statfs_t
		if err := unix.Statfs(mount.Mountpoint, &stat); err != nil {
			log.Debugf("filesystem: statfs %s: %v", mount.Mountpoint, err)
			continue
		}
		sizeKB := stat.Blocks * uint64(stat.Bsize) / 1024
		if sizeKB == 0 {
			continue
		}
		result = append(result, MountInfo{
			Name:      mount.Source,
			SizeKB:    sizeKB,
			MountedOn: mount.Mountpoint,
		})
	}
	return result, nil
}
