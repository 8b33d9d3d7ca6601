package registry

import "strings"

// Spec is the declarative description passed to Build. Only Description is
// expected for every tool; the zero value of the remaining fields is valid.
type Spec struct {
	Description string
	Params      []Param
	Category    string
	Tags        []string
	Hints       Hints

	// Name overrides the external name derived from the identifier.
	Name string
}

// Build constructs a Definition from an internal identifier, a declarative
// spec, and an implementation. The external name is derived from id by
// replacing dashes with underscores, unless spec.Name supplies an explicit
// name. Registration stays an explicit call:
//
//	r.Register(registry.Build("list-directory", spec, fn))
func Build(id string, spec Spec, fn Func) Definition {
	name := spec.Name
	if name == "" {
		name = strings.ReplaceAll(id, "-", "_")
	}
	return Definition{
		Name:        name,
		Description: spec.Description,
		Params:      spec.Params,
		Category:    spec.Category,
		Tags:        spec.Tags,
		Hints:       spec.Hints,
		Func:        fn,
	}
}
