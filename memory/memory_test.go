// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwprobe/hwprobe/utils"
)

func TestCollectInfo(t *testing.T) {
	info := CollectInfo()
	require.NotNil(t, info)
	assert.NotErrorIs(t, info.TotalBytes.Error(), utils.ErrNotInitialized)
	assert.NotErrorIs(t, info.SwapTotalBytes.Error(), utils.ErrNotInitialized)

	if total, err := info.TotalBytes.Value(); err == nil {
		assert.Greater(t, total, uint64(0))
	}
}

func TestCollectorInterface(t *testing.T) {
	collector := &Memory{}
	assert.Equal(t, "memory", collector.Name())
}
