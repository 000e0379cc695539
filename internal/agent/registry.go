// Package agent holds the capability registry, the processing units, and the
// workflow sequencer that drives the content-generation pipeline.
package agent

import (
	"context"
	"fmt"

	"github.com/pagecraft/backend/internal/domain"
)

// Agent is one processing unit: it declares the task identifiers it can
// satisfy and processes inputs for them.
type Agent interface {
	Name() string
	Capabilities() []string
	Process(ctx context.Context, input any) (any, error)
}

// registration pairs an agent with its declared capability set.
type registration struct {
	agent        Agent
	capabilities []string
}

// Registry holds an ordered sequence of agent registrations. Append-only
// during setup, read-only during a run; resolution is a linear scan in
// registration order, so the first registered match always wins.
type Registry struct {
	registrations []registration
}

// NewRegistry creates an empty registry scoped to one pipeline run.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends an agent under its declared capabilities.
func (r *Registry) Register(a Agent) {
	r.registrations = append(r.registrations, registration{
		agent:        a,
		capabilities: a.Capabilities(),
	})
}

// Resolve returns the first registered agent whose capability set contains
// the task identifier, or domain.ErrCapabilityNotFound.
func (r *Registry) Resolve(task string) (Agent, error) {
	for _, reg := range r.registrations {
		for _, capability := range reg.capabilities {
			if capability == task {
				return reg.agent, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrCapabilityNotFound, task)
}

// Agents returns the registered agents in registration order.
func (r *Registry) Agents() []Agent {
	agents := make([]Agent, 0, len(r.registrations))
	for _, reg := range r.registrations {
		agents = append(agents, reg.agent)
	}
	return agents
}
