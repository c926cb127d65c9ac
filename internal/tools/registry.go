package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// InvokeFunc executes one catalog operation with the caller's arguments.
type InvokeFunc func(ctx context.Context, args map[string]any) (any, error)

// Descriptor is one immutable catalog entry.
type Descriptor struct {
	Name        string
	Description string
	InputSchema mcp.ToolInputSchema
	Invoke      InvokeFunc
}

// Registry is the set of registered tools. Insertion order is preserved and
// exposed verbatim to transport adapters that list tools.
type Registry struct {
	order  []string
	byName map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Descriptor)}
}

// Register adds a descriptor. Registration happens once at startup; a
// duplicate or unusable descriptor is a programmer error and panics.
func (r *Registry) Register(d Descriptor) {
	if d.Name == "" {
		panic("tools: descriptor without a name")
	}
	if d.Invoke == nil {
		panic(fmt.Sprintf("tools: descriptor %s without an invocation", d.Name))
	}
	if _, exists := r.byName[d.Name]; exists {
		panic(fmt.Sprintf("tools: duplicate tool %s", d.Name))
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d.Name)
}

// Lookup returns the descriptor for a tool name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// All returns every descriptor in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

// schema builds an object input schema from property definitions and the
// subset of names that are required.
func schema(props map[string]any, required ...string) mcp.ToolInputSchema {
	if required == nil {
		required = []string{}
	}
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// prop describes one schema property.
func prop(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}
