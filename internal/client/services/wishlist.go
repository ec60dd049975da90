package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

type WishlistService interface {
	ByUser(ctx context.Context, userID int64) ([]models.WishlistEntry, error)
	Add(ctx context.Context, userID, itemID int64, notes string) (*models.WishlistEntry, error)
	Remove(ctx context.Context, userID, itemID int64) error
	Check(ctx context.Context, userID, itemID int64) (*models.WishlistStatus, error)
	UpdateNotes(ctx context.Context, wishlistID int64, notes string) (*models.WishlistEntry, error)
}

type wishlistService struct {
	r Requester
	n *normalize.Normalizer
}

func NewWishlistService(r Requester, n *normalize.Normalizer) WishlistService {
	return &wishlistService{r: r, n: n}
}

func (s *wishlistService) ByUser(ctx context.Context, userID int64) ([]models.WishlistEntry, error) {
	raw, err := getList(ctx, s.r, "/api/wishlist/user/"+id(userID))
	if err != nil {
		return nil, err
	}
	return s.n.Wishlists(raw), nil
}

func (s *wishlistService) Add(ctx context.Context, userID, itemID int64, notes string) (*models.WishlistEntry, error) {
	body := models.WishlistRequest{UserID: userID, ItemID: itemID, Notes: notes}
	raw, err := getObject(ctx, s.r, http.MethodPost, "/api/wishlist/add", body)
	if err != nil {
		return nil, err
	}
	w := s.n.Wishlist(raw)
	return &w, nil
}

// Remove sends its selector in the DELETE body.
func (s *wishlistService) Remove(ctx context.Context, userID, itemID int64) error {
	body := models.WishlistRequest{UserID: userID, ItemID: itemID}
	return s.r.Do(ctx, http.MethodDelete, "/api/wishlist/remove", body, nil)
}

func (s *wishlistService) Check(ctx context.Context, userID, itemID int64) (*models.WishlistStatus, error) {
	var st models.WishlistStatus
	if err := s.r.Do(ctx, http.MethodGet, "/api/wishlist/check/"+id(userID)+"/"+id(itemID), nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *wishlistService) UpdateNotes(ctx context.Context, wishlistID int64, notes string) (*models.WishlistEntry, error) {
	raw, err := getObject(ctx, s.r, http.MethodPut, "/api/wishlist/"+id(wishlistID)+"/notes", map[string]string{"notes": notes})
	if err != nil {
		return nil, err
	}
	w := s.n.Wishlist(raw)
	return &w, nil
}
