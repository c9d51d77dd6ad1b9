package store

import (
	"context"
	"fmt"

	"github.com/openmcq/openmcq/ent"
	"github.com/openmcq/openmcq/ent/completion"
)

// completionRepo implements CompletionRepo using the ent client.
type completionRepo struct {
	client *ent.Client
}

func (r *completionRepo) Mark(ctx context.Context, kind, ref string) error {
	_, err := r.client.Completion.Create().
		SetKind(kind).
		SetRef(ref).
		Save(ctx)
	if err != nil {
		// The unique (kind, ref) index makes a repeat mark a constraint
		// violation, which is the idempotent success case.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("mark completion %s/%s: %w", kind, ref, err)
	}
	return nil
}

func (r *completionRepo) IsMarked(ctx context.Context, kind, ref string) (bool, error) {
	marked, err := r.client.Completion.Query().
		Where(completion.Kind(kind), completion.Ref(ref)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query completion %s/%s: %w", kind, ref, err)
	}
	return marked, nil
}

func (r *completionRepo) Clear(ctx context.Context) error {
	_, err := r.client.Completion.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear completions: %w", err)
	}
	return nil
}
