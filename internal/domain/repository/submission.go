package repository

import (
	"context"

	"github.com/polkiloo/printdesk/internal/domain/model"
)

// SubmissionRepository is the shared intake store read by the admin queue.
// List returns submissions in append order.
type SubmissionRepository interface {
	Append(ctx context.Context, sub model.Submission) (*model.Submission, bool, error)
	List(ctx context.Context) ([]model.Submission, error)
	Get(ctx context.Context, id string) (*model.Submission, error)
	SetState(ctx context.Context, id string, state model.EntryState) error
	Remove(ctx context.Context, id string) error
}
