package installer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/solforge/cli/internal/errors"
	"github.com/solforge/cli/internal/testutil"
)

func TestNew_DefaultsToYarn(t *testing.T) {
	assert.Equal(t, "yarn", New("").Tool())
	assert.Equal(t, "npm", New("npm").Tool())
}

func TestIsAvailable_MissingTool(t *testing.T) {
	i := New("definitely-not-a-real-binary-xyz")
	assert.False(t, i.IsAvailable())
}

func TestInstall_ToolNotInstalled(t *testing.T) {
	i := New("definitely-not-a-real-binary-xyz")

	err := i.Install(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrToolNotInstalled)
	assert.NotErrorIs(t, err, errs.ErrInstall)
}

func TestInstall_Succeeds(t *testing.T) {
	testutil.FakeBinary(t, "fake-pm", "exit 0")

	i := New("fake-pm")
	require.True(t, i.IsAvailable())
	assert.NoError(t, i.Install(context.Background(), t.TempDir()))
}

func TestInstall_NonZeroExit(t *testing.T) {
	testutil.FakeBinary(t, "fake-pm", "exit 1")

	i := New("fake-pm")
	err := i.Install(context.Background(), t.TempDir())
	require.Error(t, err)

	assert.ErrorIs(t, err, errs.ErrInstall)
	var instErr *InstallError
	require.ErrorAs(t, err, &instErr)
	assert.Equal(t, "fake-pm", instErr.Tool)
}

func TestInstallHint(t *testing.T) {
	assert.Contains(t, installHint("yarn"), "yarn")
	assert.Contains(t, installHint("npm"), "nodejs.org")
	assert.Contains(t, installHint("other"), "other")
}
