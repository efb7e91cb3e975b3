package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/printdesk/internal/config"
	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/storage/memory"
	testhelpers "github.com/polkiloo/printdesk/internal/test"
)

func newQueue(t *testing.T, seed bool) (*QueueUseCase, *IntakeUseCase) {
	t.Helper()
	cfg := &config.Config{PricePerPage: 2, SeedDemoData: seed}
	subs := memory.New().Submissions()
	intake := NewIntakeUseCase(subs, cfg, testhelpers.DiscardLogger())
	return NewQueueUseCase(intake, subs, cfg, testhelpers.DiscardLogger()), intake
}

func submitN(t *testing.T, intake *IntakeUseCase, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sub, _, err := intake.Submit(context.Background(), SubmissionInput{
			ShopID:           "shop-1",
			VerificationCode: fmt.Sprintf("%d", 10000+i),
			Files:            []model.SubmittedFile{{Name: "a.pdf", Color: model.ColorModeColor, Copies: 1, ExactPages: 1}},
		})
		require.NoError(t, err)
		ids = append(ids, sub.ID)
	}
	return ids
}

func assertDense(t *testing.T, entries []model.QueueEntry) {
	t.Helper()
	for i, e := range entries {
		assert.Equal(t, i+1, e.QueueNumber, "entry %s", e.ID)
	}
}

func TestQueueUseCaseListBuildsDocuments(t *testing.T) {
	q, intake := newQueue(t, false)
	ctx := context.Background()

	_, _, err := intake.Submit(ctx, SubmissionInput{
		ShopID:           "shop-1",
		VerificationCode: "55555",
		Files: []model.SubmittedFile{
			{ID: "f1", Name: "report.pdf", Color: model.ColorModeColor, Copies: 3, ExactPages: 4, Description: "bind"},
			{Color: model.ColorModeBlackAndWhite},
		},
	})
	require.NoError(t, err)

	entries, stats, err := q.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "User 1", e.DisplayLabel)
	assert.Equal(t, 1, e.QueueNumber)
	assert.Equal(t, model.EntryStatePending, e.State)
	require.Len(t, e.Documents, 2)

	assert.Equal(t, model.Document{ID: "f1", Name: "report.pdf", Type: model.DocumentTypeColor, Amount: 4 * 2 * 3, Copies: 3, Description: "bind"}, e.Documents[0])
	assert.Equal(t, model.Document{ID: "doc-1-1", Name: "Document 2", Type: model.DocumentTypeBW, Amount: 2, Copies: 1}, e.Documents[1])
	assert.Equal(t, 26, e.TotalAmount())
	assert.Equal(t, model.QueueStats{PendingEntries: 1, TotalDocuments: 2}, stats)
}

func TestQueueUseCaseListFilterKeepsQueueNumbers(t *testing.T) {
	q, intake := newQueue(t, false)
	submitN(t, intake, 12)

	entries, stats, err := q.List(context.Background(), "user 1")
	require.NoError(t, err)
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.DisplayLabel)
	}
	assert.Equal(t, []string{"User 1", "User 10", "User 11", "User 12"}, labels)
	assert.Equal(t, 10, entries[1].QueueNumber, "filtered view keeps unfiltered numbers")
	assert.Equal(t, 12, stats.PendingEntries)
}

func TestQueueUseCaseSampleShownWhenEmpty(t *testing.T) {
	q, _ := newQueue(t, true)

	entries, _, err := q.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Documents, 1)
	assert.Equal(t, 5*2*2, entries[0].Documents[0].Amount)
	assert.Equal(t, "12345", entries[0].VerificationCode)
}

func TestQueueUseCaseSeededQueueDrains(t *testing.T) {
	q, intake := newQueue(t, true)
	ctx := context.Background()

	entries, stats, err := q.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	sampleID := entries[0].ID
	assert.Equal(t, 1, stats.PendingEntries)

	ids := submitN(t, intake, 1)
	_, stats, err = q.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingEntries)

	require.NoError(t, q.Complete(ctx, ids[0]))
	result, err := q.Verify(ctx, ids[0], "10000")
	require.NoError(t, err)
	assert.Equal(t, model.VerifyResultVerified, result)

	entries, stats, err = q.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, sampleID, entries[0].ID)
	assert.Equal(t, 1, stats.PendingEntries, "verify decrements the pending count")

	require.NoError(t, q.Reject(ctx, sampleID))
	entries, stats, err = q.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0, stats.PendingEntries)
}

func TestQueueUseCaseVerifyFlow(t *testing.T) {
	q, intake := newQueue(t, false)
	ctx := context.Background()
	ids := submitN(t, intake, 4)

	_, err := q.Verify(ctx, ids[1], "10001")
	assert.ErrorIs(t, err, domainErrors.ErrNotVerifying, "complete must come first")

	require.NoError(t, q.Complete(ctx, ids[1]))
	entries, _, err := q.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, model.EntryStateVerifying, entries[1].State)

	result, err := q.Verify(ctx, ids[1], "99999")
	require.NoError(t, err)
	assert.Equal(t, model.VerifyResultMismatch, result)
	entries, _, err = q.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, model.EntryStatePending, entries[1].State, "mismatch returns entry to pending")

	require.NoError(t, q.Complete(ctx, ids[1]))
	result, err = q.Verify(ctx, ids[1], "10001")
	require.NoError(t, err)
	assert.Equal(t, model.VerifyResultVerified, result)

	entries, stats, err := q.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assertDense(t, entries)
	assert.Equal(t, []string{ids[0], ids[2], ids[3]}, []string{entries[0].ID, entries[1].ID, entries[2].ID})
	assert.Equal(t, 3, stats.PendingEntries)

	_, err = q.Verify(ctx, ids[1], "10001")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestQueueUseCaseVerifyIsExactStringMatch(t *testing.T) {
	q, intake := newQueue(t, false)
	ctx := context.Background()
	ids := submitN(t, intake, 1)

	candidates := []string{" 10000", "10000 ", "010000", "1000", "１００００", ""}
	for i := 0; i < 20; i++ {
		if c := testhelpers.RandomDigits(5); c != "10000" {
			candidates = append(candidates, c)
		}
	}

	for _, candidate := range candidates {
		require.NoError(t, q.Complete(ctx, ids[0]))
		result, err := q.Verify(ctx, ids[0], candidate)
		require.NoError(t, err)
		assert.Equal(t, model.VerifyResultMismatch, result, "candidate %q", candidate)
	}

	require.NoError(t, q.Complete(ctx, ids[0]))
	result, err := q.Verify(ctx, ids[0], "10000")
	require.NoError(t, err)
	assert.Equal(t, model.VerifyResultVerified, result)
}

func TestQueueUseCaseRejectRenumbers(t *testing.T) {
	q, intake := newQueue(t, false)
	ctx := context.Background()
	ids := submitN(t, intake, 5)

	require.NoError(t, q.Reject(ctx, ids[0]))
	require.NoError(t, q.Reject(ctx, ids[3]))

	entries, _, err := q.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assertDense(t, entries)
	assert.Equal(t, []string{ids[1], ids[2], ids[4]}, []string{entries[0].ID, entries[1].ID, entries[2].ID})

	assert.ErrorIs(t, q.Reject(ctx, ids[0]), domainErrors.ErrNotFound)
	assert.ErrorIs(t, q.Complete(ctx, ids[0]), domainErrors.ErrNotFound)
}

func TestQueueUseCaseListPropagatesError(t *testing.T) {
	cfg := &config.Config{PricePerPage: 2}
	subs := &testhelpers.SubmissionRepositoryStub{ListErr: testhelpers.ErrStub}
	q := NewQueueUseCase(NewIntakeUseCase(subs, cfg, testhelpers.DiscardLogger()), subs, cfg, testhelpers.DiscardLogger())

	_, _, err := q.List(context.Background(), "")
	assert.ErrorIs(t, err, testhelpers.ErrStub)
}

func TestQueueUseCaseRemoveFailureOnVerify(t *testing.T) {
	cfg := &config.Config{PricePerPage: 2}
	subs := &testhelpers.SubmissionRepositoryStub{}
	q := NewQueueUseCase(NewIntakeUseCase(subs, cfg, testhelpers.DiscardLogger()), subs, cfg, testhelpers.DiscardLogger())
	ctx := context.Background()

	sub, _, err := subs.Append(ctx, model.Submission{ID: "a", VerificationCode: "12345"})
	require.NoError(t, err)
	require.NoError(t, q.Complete(ctx, sub.ID))

	subs.RemoveErr = testhelpers.ErrStub
	_, err = q.Verify(ctx, sub.ID, "12345")
	assert.ErrorIs(t, err, testhelpers.ErrStub)
}
