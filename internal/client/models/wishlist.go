package models

// WishlistEntry links a user to an item or a tuition with a free-text note.
type WishlistEntry struct {
	WishlistID int64  `json:"wishlistId"`
	UserID     int64  `json:"userId"`
	ItemID     int64  `json:"itemId,omitempty"`
	TuitionID  int64  `json:"tuitionId,omitempty"`
	Notes      string `json:"notes"`
	Items      []Item `json:"items"`
}

type WishlistStatus struct {
	InWishlist bool  `json:"inWishlist"`
	WishlistID int64 `json:"wishlistId,omitempty"`
}

type WishlistRequest struct {
	UserID    int64  `json:"userId"`
	ItemID    int64  `json:"itemId,omitempty"`
	TuitionID int64  `json:"tuitionId,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
