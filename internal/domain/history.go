package domain

import "time"

// HistoryEntry is the durable per-document summary. Entries are keyed by
// DocumentID: saving the same identifier again replaces the earlier entry,
// so regenerating a document never duplicates history rows.
type HistoryEntry struct {
	DocumentID string       `json:"document_id"`
	IssueDate  string       `json:"issue_date"`
	ClientName string       `json:"client_name"`
	Kind       DocumentKind `json:"document_kind"`
	Total      string       `json:"total"`
	CreatedAt  time.Time    `json:"created_at"`
}

// NewHistoryEntry summarises a record for the ledger.
func NewHistoryEntry(r *InvoiceRecord, now time.Time) HistoryEntry {
	return HistoryEntry{
		DocumentID: r.DocumentID,
		IssueDate:  r.IssueDate.Format(DateLayout),
		ClientName: r.Client.Name,
		Kind:       r.Kind,
		Total:      r.Totals.TotalDisplay,
		CreatedAt:  now,
	}
}
