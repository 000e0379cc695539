package domain

import "context"

// TextGenerator is the narrative-text collaborator: one bounded prompt in,
// one string out. Implementations must return an error wrapping
// ErrExternalService for transport failures, timeouts, and empty responses,
// and must not retain state between calls.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PageStore persists and reloads the artifacts of a pipeline run.
type PageStore interface {
	SaveRun(ctx context.Context, result *RunResult) error
	LoadRun(ctx context.Context) (*RunResult, error)
}
