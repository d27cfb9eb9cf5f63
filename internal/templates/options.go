package templates

import (
	"fmt"

	"github.com/spf13/cast"

	errs "github.com/solforge/cli/internal/errors"
)

// Coerce converts a loosely typed input (flag string, prompt answer) into
// a tagged Value per the declared type. Coercion happens exactly once, at
// context construction.
func Coerce(t OptionType, raw string) (Value, error) {
	switch t {
	case TypeString:
		return StringValue(raw), nil
	case TypeNumber:
		n, err := cast.ToFloat64E(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not a number", raw)
		}
		return NumberValue(n), nil
	case TypeBoolean:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%q is not a boolean", raw)
		}
		return BoolValue(b), nil
	default:
		return Value{}, fmt.Errorf("unknown option type %q", t)
	}
}

// ResolveOptions builds the complete option map for a descriptor from raw
// string inputs. Omitted options fall back to registered defaults; every
// value is coerced and validated per the declaring option. The returned
// map contains a value for every option the descriptor declares.
func ResolveOptions(d Descriptor, raw map[string]string) (map[string]Value, error) {
	resolved := make(map[string]Value, len(d.Options))

	for _, opt := range d.Options {
		var v Value

		if s, ok := raw[opt.Name]; ok {
			coerced, err := Coerce(opt.Type, s)
			if err != nil {
				return nil, &errs.DetailError{
					Type:    "invalid option value",
					Message: fmt.Sprintf("option --%s: %v", opt.Flag, err),
					Hint:    opt.Description,
					Cause:   errs.ErrValidation,
				}
			}
			v = coerced
		} else if opt.Default != nil {
			v = *opt.Default
		} else {
			return nil, &errs.DetailError{
				Type:    "invalid option value",
				Message: fmt.Sprintf("option --%s requires a value", opt.Flag),
				Hint:    opt.Description,
				Cause:   errs.ErrValidation,
			}
		}

		if opt.Validate != nil {
			if err := opt.Validate(v); err != nil {
				return nil, &errs.DetailError{
					Type:    "invalid option value",
					Message: fmt.Sprintf("option --%s: %v", opt.Flag, err),
					Hint:    opt.Description,
					Cause:   errs.ErrValidation,
				}
			}
		}

		resolved[opt.Name] = v
	}

	return resolved, nil
}

// NumberRange returns a validator asserting an integral value within
// [min, max].
func NumberRange(min, max float64) func(Value) error {
	return func(v Value) error {
		if v.Num != float64(int64(v.Num)) {
			return fmt.Errorf("must be a whole number")
		}
		if v.Num < min || v.Num > max {
			return fmt.Errorf("must be between %d and %d", int64(min), int64(max))
		}
		return nil
	}
}

// MaxLength returns a validator asserting a non-empty string of at most
// n characters.
func MaxLength(n int) func(Value) error {
	return func(v Value) error {
		if v.Str == "" {
			return fmt.Errorf("cannot be empty")
		}
		if len(v.Str) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	}
}
