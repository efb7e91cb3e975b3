package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// FileID accepts both JSON strings and numbers; browser clients send
// numeric ids.
type FileID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *FileID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FileID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FileID(n.String())
	return nil
}

// SubmittedFile is file metadata inside an intake submission.
type SubmittedFile struct {
	ID          FileID `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Copies      int    `json:"copies"`
	Description string `json:"description"`
	ExactPages  int    `json:"exactPages"`
}

// SubmissionRequest publishes an order to the shared intake store.
type SubmissionRequest struct {
	Files            []SubmittedFile `json:"files"`
	ShopID           string          `json:"shopId"`
	VerificationCode string          `json:"verificationCode"`
	IdempotencyKey   string          `json:"idempotencyKey,omitempty"`
}

// SubmissionResponse acknowledges a submission. Created is false when an
// earlier submission with the same idempotency key was returned instead.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Created bool   `json:"created"`
}

// IntakeDocument is a stored submission returned verbatim.
type IntakeDocument struct {
	ID               string          `json:"id"`
	Seq              int64           `json:"seq"`
	Files            []SubmittedFile `json:"files"`
	ShopID           string          `json:"shopId"`
	VerificationCode string          `json:"verificationCode"`
	State            string          `json:"state"`
	Timestamp        time.Time       `json:"timestamp"`
}

// IntakeDocumentsResponse lists the whole intake store.
type IntakeDocumentsResponse struct {
	Documents []IntakeDocument `json:"documents"`
}

