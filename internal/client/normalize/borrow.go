package normalize

import "github.com/dmitrijs2005/uniswap/internal/client/models"

// BorrowRecords maps borrow record payloads. Ids may be numbers or strings
// on the wire; they are kept as strings.
func BorrowRecords(raw []any) []models.BorrowRecord {
	out := make([]models.BorrowRecord, 0, len(raw))
	for _, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		r := models.BorrowRecord{
			ID:                 toString(m["id"]),
			ItemID:             toString(m["item_id"]),
			ItemTitle:          toString(m["item_title"]),
			BorrowerID:         toString(m["borrower_id"]),
			LenderID:           toString(m["lender_id"]),
			BorrowedAt:         toString(m["borrowed_at"]),
			ExpectedReturnDate: toString(m["expected_return_date"]),
			ActualReturnDate:   toString(m["actual_return_date"]),
			Status:             toString(m["status"]),
			Notes:              toString(m["notes"]),
			Timeline:           []models.BorrowTimeline{},
		}
		if events, ok := m["timeline"].([]any); ok {
			for _, ev := range events {
				em, ok := ev.(map[string]any)
				if !ok {
					continue
				}
				r.Timeline = append(r.Timeline, models.BorrowTimeline{
					ID:             toString(em["id"]),
					BorrowRecordID: toString(em["borrow_record_id"]),
					EventType:      toString(em["event_type"]),
					EventDate:      toString(em["event_date"]),
					Notes:          toString(em["notes"]),
				})
			}
		}
		out = append(out, r)
	}
	return out
}
