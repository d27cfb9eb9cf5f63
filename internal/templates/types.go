// Package templates provides the scaffold template catalog for solforge.
package templates

import (
	"strconv"
	"strings"
)

// OptionType is the primitive type tag of a template option.
type OptionType string

const (
	// TypeString is a free-form string option.
	TypeString OptionType = "string"

	// TypeNumber is a numeric option.
	TypeNumber OptionType = "number"

	// TypeBoolean is a true/false option.
	TypeBoolean OptionType = "boolean"
)

// Value is a tagged option value. Exactly one of the payload fields is
// meaningful, selected by Type. Values are coerced once at context
// construction and never re-coerced downstream.
type Value struct {
	Type OptionType
	Str  string
	Num  float64
	Bool bool
}

// StringValue constructs a string Value.
func StringValue(s string) Value { return Value{Type: TypeString, Str: s} }

// NumberValue constructs a number Value.
func NumberValue(n float64) Value { return Value{Type: TypeNumber, Num: n} }

// BoolValue constructs a boolean Value.
func BoolValue(b bool) Value { return Value{Type: TypeBoolean, Bool: b} }

// String renders the value for embedding in generated text. Numbers are
// rendered without a trailing decimal point when integral.
func (v Value) String() string {
	switch v.Type {
	case TypeNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case TypeBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// Option describes one configurable parameter a template accepts.
// Immutable once registered.
type Option struct {
	// Name is the stable option name used as the context map key.
	Name string

	// Flag is the command-line flag token for the option.
	Flag string

	// Description is the user-facing help text.
	Description string

	// Type is the primitive type tag.
	Type OptionType

	// Default is the value applied when the option is omitted.
	// Nil means the option is required.
	Default *Value

	// Validate is an optional predicate over a coerced candidate value.
	Validate func(Value) error
}

// File is one generated file: a path relative to the destination root
// (slash-separated) plus literal content.
type File struct {
	Path    string
	Content string
}

// DependencyMap maps package names to version constraint strings.
type DependencyMap map[string]string

// Context carries the resolved inputs for one generation run.
// Constructed fresh per request and discarded after use.
type Context struct {
	// ProjectName is the validated project directory name.
	ProjectName string

	// Dir is the absolute destination path.
	Dir string

	// Options maps option name to its coerced value. After resolution it
	// contains a value for every option the selected template declares.
	Options map[string]Value
}

// ProgramName returns the on-chain program identifier for the project:
// the project name with hyphens replaced by underscores.
func (c Context) ProgramName() string {
	return strings.ReplaceAll(c.ProjectName, "-", "_")
}

// StringOpt returns the string payload of a named option.
func (c Context) StringOpt(name string) string { return c.Options[name].Str }

// NumberOpt returns the numeric payload of a named option.
func (c Context) NumberOpt(name string) float64 { return c.Options[name].Num }

// BoolOpt returns the boolean payload of a named option.
func (c Context) BoolOpt(name string) bool { return c.Options[name].Bool }

// Generator encapsulates one scaffold pattern's file content and
// dependency needs. Implementations are pure: deterministic for a fixed
// context, no file-system or process side effects.
type Generator interface {
	// Generate produces the ordered list of files for the context.
	Generate(ctx Context) []File

	// Dependencies returns the runtime dependency map for the context.
	Dependencies(ctx Context) DependencyMap

	// DevDependencies returns the development dependency map for the context.
	DevDependencies(ctx Context) DependencyMap
}

// Descriptor is a registered template: identity, declared options, and
// the generator that produces its files.
type Descriptor struct {
	// ID is the unique registry key.
	ID string

	// Name is the display name.
	Name string

	// Description explains the template's purpose.
	Description string

	// Options is the ordered list of declared options.
	Options []Option

	// Generator produces the template's files and dependencies.
	Generator Generator
}
