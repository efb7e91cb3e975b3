package dto

// DocumentResponse is a priced document as the shop owner sees it.
type DocumentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Amount      int    `json:"amount"`
	Copies      int    `json:"copies"`
	Description string `json:"description"`
}

// QueueEntryResponse omits the verification code on purpose.
type QueueEntryResponse struct {
	ID           string             `json:"id"`
	DisplayLabel string             `json:"displayLabel"`
	QueueNumber  int                `json:"queueNumber"`
	ShopID       string             `json:"shopId"`
	State        string             `json:"state"`
	Documents    []DocumentResponse `json:"documents"`
	TotalAmount  int                `json:"totalAmount"`
}

// QueueStatsResponse mirrors the dashboard counters.
type QueueStatsResponse struct {
	PendingEntries int `json:"pendingEntries"`
	TotalDocuments int `json:"totalDocuments"`
}

// QueueResponse is the admin queue listing.
type QueueResponse struct {
	Entries []QueueEntryResponse `json:"entries"`
	Stats   QueueStatsResponse   `json:"stats"`
}

// VerifyRequest carries the candidate pickup code. A nil Code means the
// field was absent, which differs from an empty string.
type VerifyRequest struct {
	Code *string `json:"code"`
}

// VerifyResponse reports the outcome of a code check.
type VerifyResponse struct {
	Verified bool   `json:"verified"`
	Result   string `json:"result"`
}
