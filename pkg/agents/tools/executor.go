package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// Policy decides which tools may run. An explicit deny beats an explicit
// allow, which beats the default. The zero Policy denies everything not
// explicitly allowed.
type Policy struct {
	allow        KeySet
	deny         KeySet
	allowDefault bool
}

// DenyAllPolicy creates a policy that only runs explicitly allowed tools.
func DenyAllPolicy() *Policy {
	return &Policy{allow: NewKeySet(), deny: NewKeySet()}
}

// AllowAllPolicy creates a policy that runs every tool not explicitly denied.
func AllowAllPolicy() *Policy {
	p := DenyAllPolicy()
	p.allowDefault = true
	return p
}

// PolicyFromLists builds a policy from allow and deny lists. An empty allow
// list allows everything not denied.
func PolicyFromLists(allow, deny []string) *Policy {
	p := AllowAllPolicy()
	if len(allow) > 0 {
		p = DenyAllPolicy().Allow(allow...)
	}
	return p.Deny(deny...)
}

// Allow explicitly allows tools.
func (p *Policy) Allow(names ...string) *Policy {
	if p.allow == nil {
		p.allow = NewKeySet()
	}
	for _, name := range names {
		p.allow[name] = struct{}{}
		delete(p.deny, name)
	}
	return p
}

// Deny explicitly denies tools.
func (p *Policy) Deny(names ...string) *Policy {
	if p.deny == nil {
		p.deny = NewKeySet()
	}
	for _, name := range names {
		p.deny[name] = struct{}{}
		delete(p.allow, name)
	}
	return p
}

// AllowGroup allows every tool currently registered in group.
func (p *Policy) AllowGroup(registry *Registry, group string) *Policy {
	return p.Allow(registry.ToolsInGroup(group)...)
}

// DenyGroup denies every tool currently registered in group.
func (p *Policy) DenyGroup(registry *Registry, group string) *Policy {
	return p.Deny(registry.ToolsInGroup(group)...)
}

// IsAllowed reports whether the policy lets name run.
func (p *Policy) IsAllowed(name string) bool {
	switch {
	case p.deny.Has(name):
		return false
	case p.allow.Has(name):
		return true
	default:
		return p.allowDefault
	}
}

// Executor runs registered tools under a policy.
type Executor struct {
	registry *Registry
	policy   *Policy
	guard    *Guard
}

// NewExecutor creates an executor. A nil policy allows everything.
func NewExecutor(registry *Registry, policy *Policy) *Executor {
	return NewExecutorWithGuard(registry, policy, nil)
}

// NewExecutorWithGuard creates an executor that tracks calls in guard.
func NewExecutorWithGuard(registry *Registry, policy *Policy, guard *Guard) *Executor {
	if policy == nil {
		policy = AllowAllPolicy()
	}
	if guard == nil {
		guard = NewGuard(DefaultCallTimeout)
	}
	return &Executor{registry: registry, policy: policy, guard: guard}
}

func (e *Executor) resolve(name string) (*Tool, error) {
	tool := e.registry.Get(name)
	if tool == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if !e.policy.IsAllowed(tool.Name) {
		return nil, fmt.Errorf("%w: %s", ErrToolDenied, tool.Name)
	}
	if tool.Execute == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoExecutor, tool.Name)
	}
	return tool, nil
}

// Execute runs a tool with named arguments. A nil input runs it with none.
func (e *Executor) Execute(ctx context.Context, name string, input map[string]any) (*Result, error) {
	tool, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	if input == nil {
		input = map[string]any{}
	}
	return tool.Execute(ctx, input)
}

// ExecuteJSON runs a tool with raw JSON arguments. Malformed or positional
// arguments never reach the tool.
func (e *Executor) ExecuteJSON(ctx context.Context, name string, raw json.RawMessage) (*Result, error) {
	tool, err := e.resolve(name)
	if err != nil {
		return nil, err
	}
	return tool.ExecuteJSON(ctx, raw)
}

// ExecuteWithID runs a tool as call callID. Only one call with a given id
// may be in flight.
func (e *Executor) ExecuteWithID(ctx context.Context, callID, name string, input map[string]any) (*Result, error) {
	if err := e.guard.Begin(callID, name); err != nil {
		return nil, err
	}
	result, err := e.Execute(ctx, name, input)
	took, _ := e.guard.End(callID)

	log := zerolog.Ctx(ctx).With().
		Str("tool_name", name).
		Str("call_id", callID).
		Dur("took", took).
		Logger()
	if err != nil {
		log.Debug().Err(err).Msg("Tool call failed")
	} else {
		log.Debug().Bool("is_error", result.IsError()).Msg("Tool call finished")
	}
	return result, err
}

// CanExecute reports whether name exists, is allowed and runs locally.
func (e *Executor) CanExecute(name string) bool {
	_, err := e.resolve(name)
	return err == nil
}

// AllowedTools returns the tools the policy allows, sorted by name.
func (e *Executor) AllowedTools() []*Tool {
	var allowed []*Tool
	for _, tool := range e.registry.All() {
		if e.policy.IsAllowed(tool.Name) {
			allowed = append(allowed, tool)
		}
	}
	return allowed
}

// Guard returns the executor's call guard.
func (e *Executor) Guard() *Guard {
	return e.guard
}
