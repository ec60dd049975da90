package models

// Borrow record states.
const (
	BorrowActive    = "active"
	BorrowReturned  = "returned"
	BorrowOverdue   = "overdue"
	BorrowCancelled = "cancelled"
)

type BorrowRecord struct {
	ID                 string           `json:"id"`
	ItemID             string           `json:"item_id"`
	ItemTitle          string           `json:"item_title"`
	BorrowerID         string           `json:"borrower_id"`
	LenderID           string           `json:"lender_id"`
	BorrowedAt         string           `json:"borrowed_at"`
	ExpectedReturnDate string           `json:"expected_return_date,omitempty"`
	ActualReturnDate   string           `json:"actual_return_date,omitempty"`
	Status             string           `json:"status"`
	Notes              string           `json:"notes,omitempty"`
	Timeline           []BorrowTimeline `json:"timeline"`
}

type BorrowTimeline struct {
	ID             string `json:"id"`
	BorrowRecordID string `json:"borrow_record_id"`
	EventType      string `json:"event_type"`
	EventDate      string `json:"event_date"`
	Notes          string `json:"notes,omitempty"`
}
