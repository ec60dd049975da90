package normalize

import (
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

// Wishlist maps one wishlist payload, normalizing its nested items.
func (n *Normalizer) Wishlist(raw map[string]any) models.WishlistEntry {
	w := models.WishlistEntry{
		WishlistID: toInt64(firstPresent(raw, "wishlistId", "id")),
		UserID:     toInt64(firstPresent(raw, "userId", "user.userId")),
		ItemID:     toInt64(firstPresent(raw, "itemId", "item.itemId", "item.id")),
		TuitionID:  toInt64(firstPresent(raw, "tuitionId", "tuition.tuitionId")),
		Notes:      strings.TrimSpace(toString(raw["notes"])),
		Items:      []models.Item{},
	}
	if items, ok := raw["items"].([]any); ok {
		w.Items = n.Items(items)
	} else if item, ok := raw["item"].(map[string]any); ok {
		w.Items = []models.Item{n.Item(item)}
	}
	return w
}

func (n *Normalizer) Wishlists(raw []any) []models.WishlistEntry {
	out := make([]models.WishlistEntry, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, n.Wishlist(m))
		}
	}
	return out
}

func firstPresent(raw map[string]any, paths ...string) any {
	for _, p := range paths {
		if v, ok := lookup(raw, p); ok {
			return v
		}
	}
	return nil
}
