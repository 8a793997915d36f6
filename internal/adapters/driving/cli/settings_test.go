package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topica/internal/core/domain"
)

func TestSettingsCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"list", "get", "set", "reset"}, names)
}

func TestSettingsCmd_List(t *testing.T) {
	setupTestServices(t)

	for _, args := range [][]string{{"settings"}, {"settings", "list"}} {
		out, err := execute(t, args...)

		require.NoError(t, err)
		assert.Contains(t, out, "model.topics = 5\n")
		assert.Contains(t, out, "model.estimator = variational\n")
		assert.Contains(t, out, "model.alpha = auto\n")
		assert.Contains(t, out, "server.addr = :8080\n")
	}
}

func TestSettingsCmd_Get(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "settings", "get", "model.top_words")

	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestSettingsCmd_SetAndReset(t *testing.T) {
	ts := setupTestServices(t)

	out, err := execute(t, "settings", "set", "model.topics", "8")
	require.NoError(t, err)
	assert.Equal(t, "model.topics = 8\n", out)

	st, err := ts.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 8, st.Model.NumTopics)

	out, err = execute(t, "settings", "reset", "model.topics")
	require.NoError(t, err)
	assert.Equal(t, "model.topics = 5\n", out)
}

func TestSettingsCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"unknown key", []string{"settings", "get", "model.colour"}, domain.ErrInvalidInput},
		{"bad integer", []string{"settings", "set", "model.topics", "many"}, domain.ErrInvalidInput},
		{"bad estimator", []string{"settings", "set", "model.estimator", "nmf"}, domain.ErrUnsupportedType},
		{"reset unknown", []string{"settings", "reset", "nope"}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)

			_, err := execute(t, tt.args...)

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSettingsCmd_NoService(t *testing.T) {
	setupTestServices(t)
	SetServices(Services{})

	_, err := execute(t, "settings", "list")

	assert.ErrorIs(t, err, errNoSettingsService)
}
