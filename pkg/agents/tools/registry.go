package tools

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry holds tools by name. Names are unique, and aliases resolve to
// registered names.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]*Tool
	aliases map[string]string // alias -> tool name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:   make(map[string]*Tool),
		aliases: make(map[string]string),
	}
}

// Register adds a tool. It fails if the tool has no name or the name is
// already used by a tool or an alias.
func (r *Registry) Register(tool *Tool) error {
	return r.RegisterAll(tool)
}

// RegisterAll adds every tool or none. It fails on the first tool that has
// no name or whose name is taken, counting names earlier in the batch.
func (r *Registry) RegisterAll(tools ...*Tool) error {
	names := make([]string, len(tools))
	for i, tool := range tools {
		if tool == nil {
			return fmt.Errorf("register: nil tool")
		}
		names[i] = strings.TrimSpace(tool.Name)
		if names[i] == "" {
			return fmt.Errorf("register: tool has no name")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	batch := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := batch[name]; dup || r.taken(name) {
			return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
		}
		batch[name] = struct{}{}
	}
	for i, tool := range tools {
		r.tools[names[i]] = tool
	}
	return nil
}

// RegisterAlias makes alias resolve to the registered tool name.
func (r *Registry) RegisterAlias(alias, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if r.taken(alias) {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, alias)
	}
	r.aliases[alias] = name
	return nil
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.tools[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

// Get returns the tool registered under name or alias, or nil.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	return r.tools[name]
}

// Has reports whether name or alias resolves to a tool.
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// Len returns the number of registered tools. Aliases are not counted.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// All returns every tool sorted by name.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool)
	}
	slices.SortFunc(out, func(a, b *Tool) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// ToolsInGroup returns the sorted names of tools in group.
func (r *Registry) ToolsInGroup(group string) []string {
	var names []string
	for _, tool := range r.All() {
		if tool.Group == group {
			names = append(names, tool.Name)
		}
	}
	return names
}
