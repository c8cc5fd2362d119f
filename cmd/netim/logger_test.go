// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "service=netim")

	buf.Reset()
	log = newLogger(&buf, "chatty")
	assert.Contains(t, buf.String(), "unknown log level")
	log.Debug().Msg("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}
