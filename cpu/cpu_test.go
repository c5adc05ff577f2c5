// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwprobe/hwprobe/utils"
)

func TestCollectInfo(t *testing.T) {
	info := CollectInfo()
	require.NotNil(t, info)

	// every field is either collected or carries a collection error; none is
	// left uninitialized
	for _, err := range []error{
		info.VendorID.Error(), info.ModelName.Error(), info.Family.Error(),
		info.Model.Error(), info.Stepping.Error(),
		info.CPUCores.Error(), info.CPULogicalProcessors.Error(), info.Mhz.Error(),
	} {
		assert.NotErrorIs(t, err, utils.ErrNotInitialized)
	}
}

func TestAsJSON(t *testing.T) {
	value, warns, err := CollectInfo().AsJSON()
	if err != nil {
		// a fully failed collection is acceptable in constrained environments
		require.ErrorIs(t, err, utils.ErrNoFieldCollected)
		return
	}
	require.NotNil(t, value)
	for _, warn := range warns {
		assert.NotEmpty(t, warn)
	}
}

func TestCollectorInterface(t *testing.T) {
	collector := &Cpu{}
	assert.Equal(t, "cpu", collector.Name())

	_, _, err := collector.Collect()
	if err != nil {
		assert.True(t, errors.Is(err, utils.ErrNoFieldCollected))
	}
}
