package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	c := NewRootCmd(testRegistry(t))

	assert.Equal(t, "solforge", c.Use)
	assert.True(t, c.SilenceUsage)
	assert.True(t, c.SilenceErrors)

	assert.NotNil(t, c.PersistentFlags().Lookup("config"))
	assert.NotNil(t, c.PersistentFlags().Lookup("verbose"))

	for _, name := range []string{"list", "new", "init", "version"} {
		sub, _, err := c.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRoot_Version(t *testing.T) {
	c := silence(NewRootCmd(testRegistry(t)))
	c.SetArgs([]string{"version"})

	require.NoError(t, c.Execute())
}
