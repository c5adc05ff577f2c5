// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build !linux && !darwin && !windows

package audio

import "github.com/hwprobe/hwprobe/utils"

func collectInfo() (*Info, []string, error) {
	return nil, nil, utils.ErrNotCollectable
}
