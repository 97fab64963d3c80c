package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	o := Default()
	assert.Equal(t, uint64(10), o.Runs.Min)
	assert.Nil(t, o.Runs.Max)
	assert.Equal(t, 3.0, o.MinTimeSec)
	assert.Equal(t, RaiseError, o.FailureAction)
	assert.NotEmpty(t, o.Shell)
}

func TestValidatePrepareCountMismatch(t *testing.T) {
	o := Default()
	o.PreparationCommands = []string{"a", "b"}
	assert.ErrorContains(t, o.Validate(3), "'--prepare'")

	// One shared preparation command is always fine.
	o.PreparationCommands = []string{"a"}
	assert.NoError(t, o.Validate(3))

	// As is exactly one per command.
	o.PreparationCommands = []string{"a", "b", "c"}
	assert.NoError(t, o.Validate(3))
}

func TestValidateCleanupCountMismatch(t *testing.T) {
	o := Default()
	o.CleanupCommands = []string{"a", "b", "c"}
	assert.ErrorContains(t, o.Validate(2), "'--cleanup'")
}

func TestValidateRunBounds(t *testing.T) {
	o := Default()
	max := uint64(5)
	o.Runs = RunBounds{Min: 10, Max: &max}
	assert.Error(t, o.Validate(1))

	o.Runs = RunBounds{Min: 0}
	assert.Error(t, o.Validate(1))
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("auto", true)
	require.NoError(t, err)
	assert.Equal(t, StyleFull, s)

	s, err = ParseStyle("auto", false)
	require.NoError(t, err)
	assert.Equal(t, StyleBasic, s)

	s, err = ParseStyle("none", true)
	require.NoError(t, err)
	assert.Equal(t, StyleDisabled, s)

	_, err = ParseStyle("fancy", true)
	assert.Error(t, err)
}
