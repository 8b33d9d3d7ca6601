// Package registry provides a declarative registry of tool definitions for
// LLM function-calling. A Definition describes one invocable tool (name,
// parameters, category, hints, implementation); a Registry is an ordered,
// append-only collection of them. The registry never invokes a tool itself;
// consumers (LLM client adapters, CLIs) pull definitions and drive invocation.
package registry

import "context"

// Func is the implementation of a tool. Arguments are positional and match
// the definition's declared parameter list in order. It returns a result
// string for the caller (typically relayed to the model) or an error.
type Func func(ctx context.Context, args []string) (string, error)

// Param describes a single declared parameter of a tool.
type Param struct {
	Name        string
	Type        string // "string", "integer", or "boolean"
	Description string
}

// Hints carries client-specific metadata attached to a definition. The
// registry treats hints as opaque; only downstream consumers interpret them.
// Unknown keys in Extra must be ignored by conformant consumers.
type Hints struct {
	// RequiresConfirmation marks tools a consumer should confirm with the
	// user before executing (typically mutating operations).
	RequiresConfirmation bool

	// IncludeByDefault marks tools a consumer should expose without the
	// user opting in.
	IncludeByDefault bool

	// Extra holds forward-compatible, consumer-specific key/value pairs.
	Extra map[string]string
}

// Definition describes one registered tool.
type Definition struct {
	// Name is the external-facing tool name. It uses underscores rather
	// than dashes so it is acceptable to any downstream protocol.
	Name        string
	Description string
	Params      []Param
	Category    string
	Tags        []string
	Hints       Hints
	Func        Func
}

// Schema returns the definition's parameter list as a JSON-Schema object,
// the shape LLM function-calling APIs expect.
func (d Definition) Schema() map[string]interface{} {
	properties := make(map[string]interface{}, len(d.Params))
	required := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		properties[p.Name] = map[string]interface{}{
			"type":        p.Type,
			"description": p.Description,
		}
		required = append(required, p.Name)
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
