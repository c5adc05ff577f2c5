// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwprobe/hwprobe/utils"
)

func TestCollectInfo(t *testing.T) {
	info := CollectInfo()
	require.NotNil(t, info)

	for _, err := range []error{
		info.KernelName.Error(), info.KernelRelease.Error(), info.KernelVersion.Error(),
		info.Hostname.Error(), info.Machine.Error(), info.OS.Error(),
		info.Processor.Error(), info.HardwarePlatform.Error(),
	} {
		assert.NotErrorIs(t, err, utils.ErrNotInitialized)
	}
}

func TestAsJSON(t *testing.T) {
	value, warns, err := CollectInfo().AsJSON()
	if err != nil {
		require.ErrorIs(t, err, utils.ErrNoFieldCollected)
		return
	}
	require.NotNil(t, value)
	for _, warn := range warns {
		assert.NotEmpty(t, warn)
	}
}

func TestCollectorInterface(t *testing.T) {
	collector := &Platform{}
	assert.Equal(t, "platform", collector.Name())
}
