package model

// DocumentType is the admin-facing print type.
type DocumentType string

const (
	DocumentTypeColor DocumentType = "color"
	DocumentTypeBW    DocumentType = "bw"
)

// Document is a submitted file priced for the shop owner.
type Document struct {
	ID          string
	Name        string
	Type        DocumentType
	Amount      int
	Copies      int
	Description string
}

// QueueEntry is the admin-visible view of a submission awaiting pickup.
type QueueEntry struct {
	ID               string
	DisplayLabel     string
	QueueNumber      int
	ShopID           string
	State            EntryState
	Documents        []Document
	VerificationCode string
}

// TotalAmount sums document amounts.
func (e QueueEntry) TotalAmount() int {
	total := 0
	for _, d := range e.Documents {
		total += d.Amount
	}
	return total
}

// QueueStats mirrors the dashboard counters.
type QueueStats struct {
	PendingEntries int
	TotalDocuments int
}

// VerifyResult is the outcome of a pickup code check.
type VerifyResult string

const (
	VerifyResultVerified VerifyResult = "verified"
	VerifyResultMismatch VerifyResult = "mismatch"
)
