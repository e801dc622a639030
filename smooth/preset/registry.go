package preset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-smooth/smooth"
)

var errDuplicatePreset = errors.New("duplicate preset")

// Registry maps preset names to presets.
type Registry struct {
	presets map[string]Preset
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]Preset)}
}

// Defaults returns a registry holding the built-in presets.
func Defaults() *Registry {
	r := NewRegistry()
	r.MustRegister(Preset{Name: "translate", Retention: float64(smooth.RetentionTranslate), Kind: KindLinear,
		Description: "positions and offsets"})
	r.MustRegister(Preset{Name: "zoom", Retention: float64(smooth.RetentionZoom), Kind: KindLinear,
		Description: "zoom and scale factors"})
	r.MustRegister(Preset{Name: "angle", Retention: float64(smooth.RetentionAngle), Kind: KindLinear,
		Description: "scalar angles"})
	r.MustRegister(Preset{Name: "rotate", Retention: float64(smooth.RetentionRotate), Kind: KindRotation,
		Description: "quaternion orientations"})
	return r
}

// Register adds p. Names must be unique.
func (r *Registry) Register(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := r.presets[p.Name]; exists {
		return fmt.Errorf("%w: %s", errDuplicatePreset, p.Name)
	}
	r.presets[p.Name] = p
	r.order = append(r.order, p.Name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(p Preset) {
	if err := r.Register(p); err != nil {
		panic("preset registry: " + err.Error())
	}
}

// Set adds p, replacing any preset with the same name in place.
func (r *Registry) Set(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := r.presets[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.presets[p.Name] = p
	return nil
}

// Merge copies every preset of other into r, replacing presets with the
// same name.
func (r *Registry) Merge(other *Registry) {
	for _, name := range other.order {
		// Presets in a registry are already validated.
		_ = r.Set(other.presets[name])
	}
}

// Lookup returns the preset with the given name.
func (r *Registry) Lookup(name string) (Preset, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// Len returns the number of presets.
func (r *Registry) Len() int {
	return len(r.order)
}

// Presets returns all presets in registration order.
func (r *Registry) Presets() []Preset {
	out := make([]Preset, len(r.order))
	for i, name := range r.order {
		out[i] = r.presets[name]
	}
	return out
}

// Names returns the preset names sorted alphabetically.
func (r *Registry) Names() []string {
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}
