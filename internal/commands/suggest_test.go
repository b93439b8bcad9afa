package commands_test

import (
	"testing"

	"github.com/ruminaider/ric/internal/commands"
	"github.com/ruminaider/ric/internal/icons"
	"github.com/ruminaider/ric/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownPackageError_Suggestion(t *testing.T) {
	err := commands.NewUnknownPackageError("fs", []string{"fa", "md", "hi2"})
	assert.Equal(t, "fa", err.Suggestion)
	assert.Equal(t, `unknown icon package "fs" (available: fa, md, hi2); did you mean "fa"?`, err.Error())
}

func TestNewUnknownPackageError_NothingClose(t *testing.T) {
	err := commands.NewUnknownPackageError("weather", []string{"fa", "md"})
	assert.Empty(t, err.Suggestion)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestCheckIcons(t *testing.T) {
	nm := testutil.NodeModules(t, t.TempDir())
	assert.NoError(t, commands.CheckIcons(nm, "fa", []string{"FaBeer", "FaBell"}))
}

func TestCheckIcons_Unknown(t *testing.T) {
	nm := testutil.NodeModules(t, t.TempDir())
	err := commands.CheckIcons(nm, "fa", []string{"FaBeer", "fabel", "FaZzzzzzzzz"})

	var unknown *commands.UnknownIconError
	require.ErrorAs(t, err, &unknown)
	assert.ErrorIs(t, err, icons.ErrIconNotFound)
	assert.Equal(t, []string{"fabel", "FaZzzzzzzzz"}, unknown.Names)
	assert.Equal(t, "FaBell", unknown.Suggestions["fabel"])
	assert.Empty(t, unknown.Suggestions["FaZzzzzzzzz"])
	assert.Contains(t, err.Error(), "fabel (did you mean FaBell?)")
}
