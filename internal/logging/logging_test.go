package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_FiltersDebugUnlessVerbose(t *testing.T) {
	var quiet, verbose bytes.Buffer

	New(&quiet, false).Debug("Rebuilt project database", "platform", "Windows")
	New(&verbose, true).Debug("Rebuilt project database", "platform", "Windows")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), `msg="Rebuilt project database"`)
	assert.Contains(t, verbose.String(), "platform=Windows")
}
