package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/pagecraft/backend/internal/domain"
)

// fakeAgent echoes its own name so tests can check which unit resolved.
type fakeAgent struct {
	name         string
	capabilities []string
}

func (a *fakeAgent) Name() string           { return a.name }
func (a *fakeAgent) Capabilities() []string { return a.capabilities }

func (a *fakeAgent) Process(_ context.Context, _ any) (any, error) {
	return a.name, nil
}

func TestRegistry(t *testing.T) {
	t.Run("resolves by declared capability, not position", func(t *testing.T) {
		r := NewRegistry()
		r.Register(&fakeAgent{name: "first", capabilities: []string{"parse_product"}})
		r.Register(&fakeAgent{name: "second", capabilities: []string{"generate_comparison"}})

		a, err := r.Resolve("generate_comparison")
		if err != nil {
			t.Fatal(err)
		}
		if a.Name() != "second" {
			t.Errorf("resolved %q, want second", a.Name())
		}
	})

	t.Run("first registered agent wins on overlap", func(t *testing.T) {
		r := NewRegistry()
		r.Register(&fakeAgent{name: "first", capabilities: []string{"generate_faq"}})
		r.Register(&fakeAgent{name: "second", capabilities: []string{"generate_faq"}})

		a, err := r.Resolve("generate_faq")
		if err != nil {
			t.Fatal(err)
		}
		if a.Name() != "first" {
			t.Errorf("resolved %q, want first", a.Name())
		}
	})

	t.Run("unknown capability fails", func(t *testing.T) {
		r := NewRegistry()
		r.Register(&fakeAgent{name: "only", capabilities: []string{"parse_product"}})

		_, err := r.Resolve("teleport_product")
		if !errors.Is(err, domain.ErrCapabilityNotFound) {
			t.Errorf("error = %v, want ErrCapabilityNotFound", err)
		}
	})

	t.Run("empty registry fails", func(t *testing.T) {
		_, err := NewRegistry().Resolve("parse_product")
		if !errors.Is(err, domain.ErrCapabilityNotFound) {
			t.Errorf("error = %v, want ErrCapabilityNotFound", err)
		}
	})

	t.Run("lists agents in registration order", func(t *testing.T) {
		r := NewRegistry()
		r.Register(&fakeAgent{name: "first", capabilities: []string{"a"}})
		r.Register(&fakeAgent{name: "second", capabilities: []string{"b"}})

		agents := r.Agents()
		if len(agents) != 2 || agents[0].Name() != "first" || agents[1].Name() != "second" {
			t.Errorf("Agents() order wrong: %v", agents)
		}
	})
}

func TestBuildRegistry(t *testing.T) {
	r := BuildRegistry(nil, 5)

	for _, capability := range []string{
		CapParseProduct,
		CapGenerateQuestion,
		CapCategorize,
		CapGenerateFAQ,
		CapAnswerQuestions,
		CapGenerateProduct,
		CapExtractBenefits,
		CapCompareProducts,
		CapAnalyzeProducts,
	} {
		if _, err := r.Resolve(capability); err != nil {
			t.Errorf("capability %q unresolved: %v", capability, err)
		}
	}

	if len(r.Agents()) != 5 {
		t.Errorf("registry has %d agents, want 5", len(r.Agents()))
	}
}
