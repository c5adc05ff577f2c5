// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package filesystem regroups collecting information about the filesystem
package filesystem

import "strconv"

// MountInfo is one mounted filesystem
type MountInfo struct {
	// Name is the device name backing the mount
	Name string `json:"name"`
	// SizeKB is the size of the filesystem in kilobytes
	SizeKB uint64 `json:"kb_size"`
	// MountedOn is the path the filesystem is mounted on
	MountedOn string `json:"mounted_on"`
}

// CollectInfo returns the list of mounted filesystems for the current
// platform.
func CollectInfo() ([]MountInfo, error) {
	return collectInfo()
}

// AsJSON collects the filesystem information and renders it as a
// marshallable object: one entry per mount, sizes rendered as strings.
func AsJSON() (interface{}, []string, error) {
	mounts, err := CollectInfo()
	if err != nil {
		return nil, nil, err
	}

	rendered := make([]interface{}, 0, len(mounts))
	for _, mount := range mounts {
		rendered = append(rendered, map[string]string{
			"name":       mount.Name,
			"kb_size":    strconv.FormatUint(mount.SizeKB, 10),
			"mounted_on": mount.MountedOn,
		})
	}
	return rendered, nil, nil
}

// FileSystem is the inventory collector for this package.
type FileSystem struct{}

// Name returns the name of the collector
func (*FileSystem) Name() string { return "filesystem" }

// Collect collects the filesystem information
func (*FileSystem) Collect() (interface{}, []string, error) {
	return AsJSON()
}
