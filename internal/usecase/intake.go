package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/polkiloo/printdesk/internal/config"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/domain/repository"
)

// SampleIdempotencyKey marks the synthetic record shown on an empty intake store.
const SampleIdempotencyKey = "sample-submission"

// SubmissionInput is a paid order as published to the intake store.
type SubmissionInput struct {
	Files            []model.SubmittedFile
	ShopID           string
	VerificationCode string
	IdempotencyKey   string
}

// IntakeUseCase owns the shared intake store between users and shop owners.
type IntakeUseCase struct {
	submissions  repository.SubmissionRepository
	injectSample bool
	sampleMu     sync.Mutex
	sampleDone   bool
	logger       *slog.Logger
}

// NewIntakeUseCase constructs IntakeUseCase.
func NewIntakeUseCase(submissions repository.SubmissionRepository, cfg *config.Config, logger *slog.Logger) *IntakeUseCase {
	return &IntakeUseCase{submissions: submissions, injectSample: cfg.SeedDemoData, logger: logger}
}

// Submit appends a submission. A repeated idempotency key returns the
// first record with created=false.
func (u *IntakeUseCase) Submit(ctx context.Context, in SubmissionInput) (*model.Submission, bool, error) {
	files := in.Files
	if files == nil {
		files = []model.SubmittedFile{}
	}
	sub, created, err := u.submissions.Append(ctx, model.Submission{
		ID:               newID(),
		Files:            files,
		ShopID:           in.ShopID,
		VerificationCode: in.VerificationCode,
		IdempotencyKey:   strings.TrimSpace(in.IdempotencyKey),
		State:            model.EntryStatePending,
		Timestamp:        time.Now().UTC(),
	})
	if err != nil {
		return nil, false, err
	}
	if created {
		u.logger.Info("submission received",
			slog.String("submission_id", sub.ID),
			slog.String("shop_id", sub.ShopID),
			slog.Int("files", len(sub.Files)),
		)
	} else {
		u.logger.Info("duplicate submission ignored", slog.String("submission_id", sub.ID))
	}
	return sub, created, nil
}

// List returns the intake store in append order. When sample injection is
// enabled, the first listing of the process seeds an empty store with
// SampleSubmission. Later listings never re-seed, so the queue can drain.
func (u *IntakeUseCase) List(ctx context.Context) ([]model.Submission, error) {
	if err := u.seedSampleOnce(ctx); err != nil {
		return nil, err
	}
	return u.submissions.List(ctx)
}

func (u *IntakeUseCase) seedSampleOnce(ctx context.Context) error {
	if !u.injectSample {
		return nil
	}
	u.sampleMu.Lock()
	defer u.sampleMu.Unlock()
	if u.sampleDone {
		return nil
	}

	subs, err := u.submissions.List(ctx)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		if _, _, err := u.Submit(ctx, SampleSubmission()); err != nil {
			return err
		}
	}
	u.sampleDone = true
	return nil
}

// SampleSubmission is the synthetic record used to demo the admin queue.
func SampleSubmission() SubmissionInput {
	return SubmissionInput{
		Files: []model.SubmittedFile{{
			ID:          "1",
			Name:        "Sample Document.pdf",
			Color:       model.ColorModeColor,
			Copies:      2,
			Description: "Test document",
			ExactPages:  5,
		}},
		ShopID:           "shop-1",
		VerificationCode: "12345",
		IdempotencyKey:   SampleIdempotencyKey,
	}
}
