package model

import "time"

// SubmittedFile is the metadata of a file as published to the intake store.
// File bytes are never part of a submission.
type SubmittedFile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Color       ColorMode `json:"color"`
	Copies      int       `json:"copies"`
	Description string    `json:"description"`
	ExactPages  int       `json:"exactPages"`
}

// EntryState is the admin-side state of a queued submission.
type EntryState string

const (
	EntryStatePending   EntryState = "pending"
	EntryStateVerifying EntryState = "verifying"
)

// Submission is a paid order published to the shared intake store.
type Submission struct {
	ID               string
	Seq              int64
	Files            []SubmittedFile
	ShopID           string
	VerificationCode string
	IdempotencyKey   string
	State            EntryState
	Timestamp        time.Time
}
