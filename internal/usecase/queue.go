package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/polkiloo/printdesk/internal/config"
	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/domain/repository"
)

// QueueUseCase is the shop owner's view of the intake store.
type QueueUseCase struct {
	mu           sync.Mutex
	intake       *IntakeUseCase
	submissions  repository.SubmissionRepository
	pricePerPage int
	logger       *slog.Logger
}

// NewQueueUseCase constructs QueueUseCase.
func NewQueueUseCase(intake *IntakeUseCase, submissions repository.SubmissionRepository, cfg *config.Config, logger *slog.Logger) *QueueUseCase {
	return &QueueUseCase{
		intake:       intake,
		submissions:  submissions,
		pricePerPage: cfg.PricePerPage,
		logger:       logger,
	}
}

// List returns queue entries matching search (case-insensitive substring on
// the display label) with stats over the whole queue. Queue numbers are
// assigned before filtering.
func (u *QueueUseCase) List(ctx context.Context, search string) ([]model.QueueEntry, model.QueueStats, error) {
	subs, err := u.intake.List(ctx)
	if err != nil {
		return nil, model.QueueStats{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	entries := make([]model.QueueEntry, 0, len(subs))
	var stats model.QueueStats
	for i, sub := range subs {
		entry := u.entryFor(sub, i+1)
		stats.PendingEntries++
		stats.TotalDocuments += len(entry.Documents)
		if needle != "" && !strings.Contains(strings.ToLower(entry.DisplayLabel), needle) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, stats, nil
}

func (u *QueueUseCase) entryFor(sub model.Submission, queueNumber int) model.QueueEntry {
	docs := make([]model.Document, 0, len(sub.Files))
	for i, f := range sub.Files {
		docs = append(docs, u.documentFor(f, queueNumber, i))
	}
	return model.QueueEntry{
		ID:               sub.ID,
		DisplayLabel:     fmt.Sprintf("User %d", sub.Seq),
		QueueNumber:      queueNumber,
		ShopID:           sub.ShopID,
		State:            sub.State,
		Documents:        docs,
		VerificationCode: sub.VerificationCode,
	}
}

func (u *QueueUseCase) documentFor(f model.SubmittedFile, queueNumber, index int) model.Document {
	pages := max(f.ExactPages, 1)
	copies := max(f.Copies, 1)

	doc := model.Document{
		ID:          f.ID,
		Name:        f.Name,
		Type:        model.DocumentTypeBW,
		Amount:      pages * u.pricePerPage * copies,
		Copies:      copies,
		Description: f.Description,
	}
	if doc.ID == "" {
		doc.ID = fmt.Sprintf("doc-%d-%d", queueNumber, index)
	}
	if doc.Name == "" {
		doc.Name = fmt.Sprintf("Document %d", index+1)
	}
	if f.Color == model.ColorModeColor {
		doc.Type = model.DocumentTypeColor
	}
	return doc
}

// Complete moves an entry into verifying; the pickup code is checked next.
func (u *QueueUseCase) Complete(ctx context.Context, entryID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.submissions.SetState(ctx, entryID, model.EntryStateVerifying); err != nil {
		return err
	}
	u.logger.Info("entry awaiting verification", slog.String("entry_id", entryID))
	return nil
}

// Verify compares candidate to the stored code byte for byte. A match
// removes the entry; a mismatch returns it to pending.
func (u *QueueUseCase) Verify(ctx context.Context, entryID, candidate string) (model.VerifyResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sub, err := u.submissions.Get(ctx, entryID)
	if err != nil {
		return "", err
	}
	if sub.State != model.EntryStateVerifying {
		return "", domainErrors.ErrNotVerifying
	}

	if candidate != sub.VerificationCode {
		if err := u.submissions.SetState(ctx, entryID, model.EntryStatePending); err != nil {
			return "", err
		}
		u.logger.Warn("verification code mismatch", slog.String("entry_id", entryID))
		return model.VerifyResultMismatch, nil
	}

	if err := u.submissions.Remove(ctx, entryID); err != nil {
		return "", err
	}
	u.logger.Info("entry verified", slog.String("entry_id", entryID))
	return model.VerifyResultVerified, nil
}

// Reject removes an entry without a code check.
func (u *QueueUseCase) Reject(ctx context.Context, entryID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.submissions.Remove(ctx, entryID); err != nil {
		return err
	}
	u.logger.Info("entry rejected", slog.String("entry_id", entryID))
	return nil
}
