package templates

import (
	"fmt"

	errs "github.com/solforge/cli/internal/errors"
)

// Registry owns the catalog of known templates. It is populated once at
// process start and read-only thereafter; concurrent reads are safe
// because nothing mutates it during generation.
//
// Construct explicitly with NewRegistry and pass it to entry points;
// there is no package-level instance.
type Registry struct {
	ids  []string
	byID map[string]Descriptor

	// flagTypes tracks option flag tokens across all templates so the
	// non-interactive command can register one flag per token.
	flagTypes map[string]OptionType
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:      make(map[string]Descriptor),
		flagTypes: make(map[string]OptionType),
	}
}

// Register inserts a descriptor. Registration is append-only: a duplicate
// identifier is a hard error and leaves the registry unchanged.
func (r *Registry) Register(d Descriptor) error {
	if d.ID == "" {
		return errs.Wrap(errs.ErrValidation, "template id cannot be empty")
	}
	if _, exists := r.byID[d.ID]; exists {
		return fmt.Errorf("template %q already registered: %w", d.ID, errs.ErrDuplicateTemplate)
	}
	if d.Generator == nil {
		return errs.Wrap(errs.ErrValidation, fmt.Sprintf("template %q has no generator", d.ID))
	}

	seen := make(map[string]bool, len(d.Options))
	for _, opt := range d.Options {
		if opt.Name == "" || opt.Flag == "" {
			return errs.Wrap(errs.ErrValidation,
				fmt.Sprintf("template %q declares an option without a name or flag", d.ID))
		}
		if seen[opt.Flag] {
			return errs.Wrap(errs.ErrValidation,
				fmt.Sprintf("template %q declares flag --%s twice", d.ID, opt.Flag))
		}
		seen[opt.Flag] = true

		// A flag token shared across templates must agree in type so the
		// command layer can register a single flag for it.
		if prev, ok := r.flagTypes[opt.Flag]; ok && prev != opt.Type {
			return errs.Wrap(errs.ErrValidation,
				fmt.Sprintf("flag --%s registered as %s and %s by different templates", opt.Flag, prev, opt.Type))
		}
	}

	for _, opt := range d.Options {
		r.flagTypes[opt.Flag] = opt.Type
	}
	r.ids = append(r.ids, d.ID)
	r.byID[d.ID] = d
	return nil
}

// Get returns the descriptor for an identifier. Absence is a normal,
// expected outcome signaled by the second return value.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// List returns all descriptors in insertion order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// IDs returns all template identifiers in insertion order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// OptionsFor returns the declared options for an identifier. An unknown
// identifier yields nil rather than an error, so option lookup never
// needs its own not-found branch.
func (r *Registry) OptionsFor(id string) []Option {
	d, ok := r.byID[id]
	if !ok {
		return nil
	}
	return d.Options
}

// Flags returns every option flag token registered across all templates
// with its type, for command-line flag registration.
func (r *Registry) Flags() map[string]OptionType {
	out := make(map[string]OptionType, len(r.flagTypes))
	for k, v := range r.flagTypes {
		out[k] = v
	}
	return out
}
