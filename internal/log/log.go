// This file is licensed under the MIT License.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2014-present Datadog, Inc.

// Package log wraps seelog behind package-level helpers so collectors can log
// without carrying a logger around.
package log

import (
	"sync"

	"github.com/cihub/seelog"
)

var (
	mu     sync.RWMutex
	logger seelog.LoggerInterface
)

// SetupLogger installs the given seelog logger. Call it once at startup;
// before that, log calls are dropped.
func SetupLogger(inner seelog.LoggerInterface) {
	inner.SetAdditionalStackDepth(1) //nolint:errcheck

	mu.Lock()
	logger = inner
	mu.Unlock()
}

// SetupDefaultLogger installs a plain console logger at the given level.
func SetupDefaultLogger(level string) error {
	if _, ok := seelog.LogLevelFromString(level); !ok {
		level = "info"
	}
	config := `<seelog minlevel="` + level + `">
	<outputs formatid="common"><console/></outputs>
	<formats><format id="common" format="%Date %Time %LEVEL %Msg%n"/></formats>
</seelog>`
	inner, err := seelog.LoggerFromConfigAsString(config)
	if err != nil {
		return err
	}
	SetupLogger(inner)
	return nil
}

func current() seelog.LoggerInterface {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debugf logs at the debug level
func Debugf(format string, params ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(format, params...)
	}
}

// Infof logs at the info level
func Infof(format string, params ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, params...)
	}
}

// Warnf logs at the warn level
func Warnf(format string, params ...interface{}) {
	if l := current(); l != nil {
		l.Warnf(format, params...) //nolint:errcheck
	}
}

// Errorf logs at the error level
func Errorf(format string, params ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, params...) //nolint:errcheck
	}
}

// Flush flushes any buffered log output.
func Flush() {
	if l := current(); l != nil {
		l.Flush()
	}
}
