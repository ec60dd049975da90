package normalize

import (
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

// Item maps a raw item payload onto models.Item, filling both the canonical
// and the legacy field names.
func (n *Normalizer) Item(raw map[string]any) models.Item {
	if raw == nil {
		raw = map[string]any{}
	}

	it := models.Item{
		ID:          pickString(raw, "id"),
		Title:       pickString(raw, "title"),
		Description: pickString(raw, "description"),
		Condition:   pickString(raw, "condition"),
		Type:        models.ItemType(strings.ToLower(pickString(raw, "type"))),
		Category:    Category(pick(raw, "category")),
		Location:    Location(pick(raw, "location")),
		Images:      n.itemImages(raw),
		Owner:       user(pick(raw, "owner")),
		PostedAt:    pickString(raw, "postedAt"),
		Status:      strings.ToLower(pickString(raw, "status")),
		SwapWith:    pickString(raw, "swapWith"),
		Phone:       pickString(raw, "phone"),
	}

	if exchanged(raw) {
		it.Status = models.ItemStatusExchanged
	}
	if it.Status == "" {
		it.Status = models.ItemStatusAvailable
	}

	it.ItemID = toInt64(it.ID)
	it.ItemName = it.Title
	it.ItemCondition = it.Condition
	it.ItemTypeName = string(it.Type)
	it.PostTime = it.PostedAt
	return it
}

// Items normalizes a list payload. Entries that are not objects are skipped.
func (n *Normalizer) Items(raw []any) []models.Item {
	out := make([]models.Item, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, n.Item(m))
		}
	}
	return out
}

func exchanged(raw map[string]any) bool {
	for _, k := range []string{"is_exchanged", "isExchanged", "exchanged"} {
		switch v := raw[k].(type) {
		case bool:
			if v {
				return true
			}
		case string:
			if strings.EqualFold(v, "true") {
				return true
			}
		}
	}
	return false
}

// user maps a nested user object. Non-objects yield nil.
func user(v any) *models.UserSummary {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	u := User(m)
	return &u
}

// User maps a backend user payload; the display name prefers
// displayUsername over username.
func User(raw map[string]any) models.UserSummary {
	var u models.UserSummary
	b, err := json.Marshal(raw)
	if err != nil {
		return u
	}
	_ = json.Unmarshal(b, &u)
	return u
}

// Users maps a list payload of users.
func Users(raw []any) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, User(m))
		}
	}
	return out
}

// AuthUser builds the session snapshot from a register or login response.
// Without a display name the local part of the email is used.
func AuthUser(resp models.AuthResponse) models.UserSummary {
	name := resp.DisplayUsername
	if name == "" {
		name = resp.Username
	}
	if name == "" {
		name, _, _ = strings.Cut(resp.Email, "@")
	}
	return models.UserSummary{
		UserID:   resp.UserID,
		Email:    resp.Email,
		Username: name,
	}
}
