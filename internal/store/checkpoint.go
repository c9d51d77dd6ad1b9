package store

import (
	"context"
	"fmt"
	"time"

	"github.com/openmcq/openmcq/ent"
	"github.com/openmcq/openmcq/ent/checkpoint"
)

// checkpointRepo implements CheckpointRepo on the singleton checkpoint row.
type checkpointRepo struct {
	client *ent.Client
}

func (r *checkpointRepo) Save(ctx context.Context, data []byte, at time.Time) error {
	existing, err := r.client.Checkpoint.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query checkpoint: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetData(data).
			SetUpdatedAt(at).
			Save(ctx)
	} else {
		_, err = r.client.Checkpoint.Create().
			SetData(data).
			SetUpdatedAt(at).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

func (r *checkpointRepo) Load(ctx context.Context) ([]byte, time.Time, error) {
	cp, err := r.client.Checkpoint.Query().
		Order(ent.Desc(checkpoint.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, fmt.Errorf("load checkpoint: %w", err)
	}
	return cp.Data, cp.UpdatedAt, nil
}

func (r *checkpointRepo) Touch(ctx context.Context, at time.Time) error {
	n, err := r.client.Checkpoint.Update().
		SetUpdatedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch checkpoint: %w", err)
	}
	_ = n // no row is fine, nothing to keep alive
	return nil
}

func (r *checkpointRepo) Clear(ctx context.Context) error {
	_, err := r.client.Checkpoint.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear checkpoint: %w", err)
	}
	return nil
}
