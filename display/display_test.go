// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorInterface(t *testing.T) {
	collector := &Display{}
	assert.Equal(t, "display", collector.Name())
}
