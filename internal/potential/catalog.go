package potential

import (
	"fmt"
	"sort"
)

// catalog maps config/CLI names to wire tags and documents each variant's
// parameter order.
var catalog = map[string]struct {
	tag    int
	params []string
}{
	"pointmass":     {TypePointMass, []string{"amp"}},
	"miyamotonagai": {TypeMiyamotoNagai, []string{"amp", "a", "b"}},
	"loghalo":       {TypeLogHalo, []string{"amp", "core", "q"}},
	"nfw":           {TypeNFW, []string{"amp", "a"}},
	"interp":        {TypeInterp, []string{"nR", "nz", "R...", "z...", "grid..."}},
}

// TagFor resolves a component name to its wire tag.
func TagFor(name string) (int, error) {
	entry, ok := catalog[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return entry.tag, nil
}

// NameFor returns the catalog name of a tag, or "?" if unregistered.
func NameFor(tag int) string {
	for name, entry := range catalog {
		if entry.tag == tag {
			return name
		}
	}
	return "?"
}

// ParamNames returns the ordered parameter names of a named component.
func ParamNames(name string) []string {
	return catalog[name].params
}

// Names lists the registered component names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
