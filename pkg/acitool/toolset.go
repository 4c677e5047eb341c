package acitool

import (
	"context"
	"errors"
	"fmt"

	"github.com/beeper/aci-tools/pkg/agents/tools"
)

// ErrDuplicateFunction is returned when a toolset names a function twice.
var ErrDuplicateFunction = errors.New("acitool: duplicate function identifier")

// Toolset is a list of ACI functions exposed for one linked account.
type Toolset struct {
	Functions            []string
	LinkedAccountOwnerID string
	Options              []Option
}

// Build creates one tool per function, in order. It stops at the first
// failure; definitions are fetched only after the list passes validation.
func (s Toolset) Build(ctx context.Context, backend Backend) ([]*tools.Tool, error) {
	seen := make(map[string]struct{}, len(s.Functions))
	for _, id := range s.Functions {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFunction, id)
		}
		seen[id] = struct{}{}
	}

	built := make([]*tools.Tool, 0, len(s.Functions))
	for _, id := range s.Functions {
		tool, err := FromFunction(ctx, backend, id, s.LinkedAccountOwnerID, s.Options...)
		if err != nil {
			return nil, fmt.Errorf("building tool %s: %w", id, err)
		}
		built = append(built, tool)
	}
	return built, nil
}

// Register builds the toolset and adds it to registry. Nothing is
// registered unless every tool builds and no name collides.
func (s Toolset) Register(ctx context.Context, backend Backend, registry *tools.Registry) ([]*tools.Tool, error) {
	built, err := s.Build(ctx, backend)
	if err != nil {
		return nil, err
	}
	if err := registry.RegisterAll(built...); err != nil {
		return nil, err
	}
	return built, nil
}
