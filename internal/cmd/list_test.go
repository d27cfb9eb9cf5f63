package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solforge/cli/internal/templates"
)

func TestNewListCmd(t *testing.T) {
	c := NewListCmd(testRegistry(t))

	assert.Equal(t, "list", c.Use)
	assert.NotEmpty(t, c.Short)
}

func TestList_Execute(t *testing.T) {
	c := silence(NewListCmd(testRegistry(t)))
	c.SetArgs([]string{})

	require.NoError(t, c.Execute())
}

func TestList_EmptyRegistry(t *testing.T) {
	c := silence(NewListCmd(templates.NewRegistry()))
	c.SetArgs([]string{})

	require.NoError(t, c.Execute())
}

func TestList_RejectsArgs(t *testing.T) {
	c := silence(NewListCmd(testRegistry(t)))
	c.SetArgs([]string{"extra"})

	assert.Error(t, c.Execute())
}
