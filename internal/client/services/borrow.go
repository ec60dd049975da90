package services

import (
	"context"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

// BorrowService reads rent/borrow history for a user as lender or as
// borrower.
type BorrowService interface {
	Lent(ctx context.Context, userID int64) ([]models.BorrowRecord, error)
	Borrowed(ctx context.Context, userID int64) ([]models.BorrowRecord, error)
}

type borrowService struct {
	r Requester
}

func NewBorrowService(r Requester) BorrowService {
	return &borrowService{r: r}
}

func (s *borrowService) Lent(ctx context.Context, userID int64) ([]models.BorrowRecord, error) {
	return s.list(ctx, "/api/borrow-records/lender/"+id(userID))
}

func (s *borrowService) Borrowed(ctx context.Context, userID int64) ([]models.BorrowRecord, error) {
	return s.list(ctx, "/api/borrow-records/borrower/"+id(userID))
}

func (s *borrowService) list(ctx context.Context, path string) ([]models.BorrowRecord, error) {
	raw, err := getList(ctx, s.r, path)
	if err != nil {
		return nil, err
	}
	return normalize.BorrowRecords(raw), nil
}
