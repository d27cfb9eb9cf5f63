package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/solforge/cli/internal/errors"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		typ     OptionType
		raw     string
		want    Value
		wantErr bool
	}{
		{"string", TypeString, "hello", StringValue("hello"), false},
		{"number", TypeNumber, "42", NumberValue(42), false},
		{"number float", TypeNumber, "2.5", NumberValue(2.5), false},
		{"number invalid", TypeNumber, "abc", Value{}, true},
		{"bool true", TypeBoolean, "true", BoolValue(true), false},
		{"bool false", TypeBoolean, "false", BoolValue(false), false},
		{"bool invalid", TypeBoolean, "maybe", Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.typ, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "9", NumberValue(9).String())
	assert.Equal(t, "2.5", NumberValue(2.5).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "abc", StringValue("abc").String())
}

func TestResolveOptions_Defaulting(t *testing.T) {
	d := Vault()

	// Omitted option resolves to the registered default.
	resolved, err := ResolveOptions(d, nil)
	require.NoError(t, err)
	assert.Equal(t, NumberValue(9), resolved["tokenDecimals"])

	// Explicit value wins over the default.
	resolved, err = ResolveOptions(d, map[string]string{"tokenDecimals": "6"})
	require.NoError(t, err)
	assert.Equal(t, NumberValue(6), resolved["tokenDecimals"])
}

func TestResolveOptions_ValidationFailure(t *testing.T) {
	d := Vault()

	_, err := ResolveOptions(d, map[string]string{"tokenDecimals": "19"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestResolveOptions_CoercionFailure(t *testing.T) {
	d := Vault()

	_, err := ResolveOptions(d, map[string]string{"tokenDecimals": "nine"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestResolveOptions_RequiredWithoutDefault(t *testing.T) {
	d := stubDescriptor("x")
	d.Options = []Option{{Name: "req", Flag: "req", Type: TypeString}}

	_, err := ResolveOptions(d, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)

	resolved, err := ResolveOptions(d, map[string]string{"req": "v"})
	require.NoError(t, err)
	assert.Equal(t, StringValue("v"), resolved["req"])
}

func TestResolveOptions_CompleteAfterFilling(t *testing.T) {
	for _, d := range []Descriptor{NFTMint(), Staking(), Escrow(), Governance(), Marketplace(), Vault()} {
		resolved, err := ResolveOptions(d, nil)
		require.NoError(t, err, d.ID)
		for _, opt := range d.Options {
			_, ok := resolved[opt.Name]
			assert.True(t, ok, "%s: option %s missing after defaulting", d.ID, opt.Name)
		}
	}
}

func TestNumberRange(t *testing.T) {
	v := NumberRange(0, 18)
	assert.NoError(t, v(NumberValue(0)))
	assert.NoError(t, v(NumberValue(18)))
	assert.Error(t, v(NumberValue(19)))
	assert.Error(t, v(NumberValue(-1)))
	assert.Error(t, v(NumberValue(2.5)))
}

func TestMaxLength(t *testing.T) {
	v := MaxLength(3)
	assert.NoError(t, v(StringValue("abc")))
	assert.Error(t, v(StringValue("abcd")))
	assert.Error(t, v(StringValue("")))
}
