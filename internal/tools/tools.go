package tools

import (
	"fmt"
	"sync"

	"github.com/sashabaranov/go-openai"
)

// Registry holds declared tool specs in registration order.
//
// Register performs no duplicate check. When two specs share a name,
// Lookup returns the first one registered; callers should not rely on
// this.
type Registry struct {
	mu    sync.RWMutex
	specs []ToolSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a spec to the registry.
func (r *Registry) Register(spec ToolSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs = append(r.specs, spec)
}

// Lookup returns the first spec registered under name.
func (r *Registry) Lookup(name ToolName) (ToolSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, spec := range r.specs {
		if spec.Name == name {
			return spec, true
		}
	}
	return ToolSpec{}, false
}

// Specs returns a copy of the registered specs.
func (r *Registry) Specs() []ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ToolSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// GetToolNames returns registered names in registration order.
func (r *Registry) GetToolNames() []ToolName {
	specs := r.Specs()
	names := make([]ToolName, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name ToolName) bool {
	_, ok := r.Lookup(name)
	return ok
}

// OpenAITools returns the registry as OpenAI tool definitions.
func (r *Registry) OpenAITools() []openai.Tool {
	specs := r.Specs()
	defs := make([]openai.Tool, 0, len(specs))
	for _, spec := range specs {
		defs = append(defs, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        string(spec.Name),
				Description: spec.Description,
				Parameters:  spec.InputSchema(),
			},
		})
	}
	return defs
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%v)", r.GetToolNames())
}
