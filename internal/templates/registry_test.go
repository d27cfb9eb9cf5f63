package templates

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/solforge/cli/internal/errors"
)

type stubGenerator struct{}

func (stubGenerator) Generate(Context) []File               { return nil }
func (stubGenerator) Dependencies(Context) DependencyMap    { return nil }
func (stubGenerator) DevDependencies(Context) DependencyMap { return nil }

func stubDescriptor(id string) Descriptor {
	return Descriptor{
		ID:        id,
		Name:      id,
		Generator: stubGenerator{},
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubDescriptor("a")))

	d, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "a", d.ID)
}

func TestRegistry_DuplicateIdentifier(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubDescriptor("a")))

	err := r.Register(stubDescriptor("a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateTemplate)

	// Prior contents are unchanged.
	assert.Equal(t, []string{"a"}, r.IDs())
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_ListInsertionOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, r.Register(stubDescriptor(id)))
	}

	var got []string
	for _, d := range r.List() {
		got = append(got, d.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, got)

	// Stable across calls.
	var again []string
	for _, d := range r.List() {
		again = append(again, d.ID)
	}
	assert.Equal(t, got, again)
}

func TestRegistry_OptionsForUnknownIsEmpty(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.OptionsFor("missing"))
}

func TestRegistry_RejectsMissingGenerator(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Descriptor{ID: "x"})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestRegistry_RejectsDuplicateFlagWithinTemplate(t *testing.T) {
	d := stubDescriptor("x")
	d.Options = []Option{
		{Name: "a", Flag: "same", Type: TypeString},
		{Name: "b", Flag: "same", Type: TypeString},
	}

	err := NewRegistry().Register(d)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestRegistry_RejectsConflictingFlagTypesAcrossTemplates(t *testing.T) {
	r := NewRegistry()

	d1 := stubDescriptor("x")
	d1.Options = []Option{{Name: "a", Flag: "shared", Type: TypeString}}
	require.NoError(t, r.Register(d1))

	d2 := stubDescriptor("y")
	d2.Options = []Option{{Name: "a", Flag: "shared", Type: TypeNumber}}
	err := r.Register(d2)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewBuiltinRegistry(t *testing.T) {
	r, err := NewBuiltinRegistry()
	require.NoError(t, err)

	want := []string{"nft-mint", "staking", "escrow", "governance", "marketplace", "vault"}
	assert.Equal(t, want, r.IDs())

	for _, id := range want {
		d, ok := r.Get(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Description)
		assert.NotNil(t, d.Generator)
		for _, opt := range d.Options {
			assert.NotEmpty(t, opt.Name, fmt.Sprintf("%s option name", id))
			assert.NotEmpty(t, opt.Flag, fmt.Sprintf("%s option flag", id))
		}
	}
}
