// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

//go:build !linux && !darwin && !windows

package platform

import "github.com/hwprobe/hwprobe/utils"

func collectInfo() *Info {
	return &Info{
		KernelName:       utils.NewErrorValue[string](utils.ErrNotCollectable),
		KernelRelease:    utils.NewErrorValue[string](utils.ErrNotCollectable),
		KernelVersion:    utils.NewErrorValue[string](utils.ErrNotCollectable),
		Hostname:         utils.NewErrorValue[string](utils.ErrNotCollectable),
		Machine:          utils.NewErrorValue[string](utils.ErrNotCollectable),
		OS:               utils.NewErrorValue[string](utils.ErrNotCollectable),
		Processor:        utils.NewErrorValue[string](utils.ErrNotCollectable),
		HardwarePlatform: utils.NewErrorValue[string](utils.ErrNotCollectable),
	}
}
