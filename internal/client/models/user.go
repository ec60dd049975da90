package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// UserSummary is the minimal user snapshot the client renders and persists.
type UserSummary struct {
	UserID         int64  `json:"userId"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	StudentID      string `json:"studentId"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}

type userWire struct {
	UserID          json.RawMessage `json:"userId"`
	ID              json.RawMessage `json:"id"`
	Email           string          `json:"email"`
	Username        string          `json:"username"`
	DisplayUsername string          `json:"displayUsername"`
	StudentID       string          `json:"studentId"`
	Bio             string          `json:"bio"`
	ProfilePicture  string          `json:"profilePicture"`
}

// UnmarshalJSON accepts both the canonical snapshot and backend user
// payloads, where the display name may arrive as displayUsername and the id
// as userId or id, numeric or quoted.
func (u *UserSummary) UnmarshalJSON(b []byte) error {
	var w userWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	id := ParseID(w.UserID)
	if id == 0 {
		id = ParseID(w.ID)
	}

	name := w.DisplayUsername
	if name == "" {
		name = w.Username
	}

	*u = UserSummary{
		UserID:         id,
		Email:          w.Email,
		Username:       name,
		StudentID:      w.StudentID,
		Bio:            w.Bio,
		ProfilePicture: w.ProfilePicture,
	}
	return nil
}

// ParseID reads a JSON number or a quoted integer. Anything else is 0.
func ParseID(raw json.RawMessage) int64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}
	s := strings.Trim(string(raw), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int64(f)
	}
	return n
}

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched when merged onto a UserSummary.
type ProfileUpdate struct {
	Email          *string `json:"email,omitempty"`
	Username       *string `json:"username,omitempty"`
	StudentID      *string `json:"studentId,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// Apply returns a copy of u with the non-nil fields of p applied.
func (p ProfileUpdate) Apply(u UserSummary) UserSummary {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.StudentID != nil {
		u.StudentID = *p.StudentID
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	return u
}

// Availability is the answer of the username/email availability checks.
type Availability struct {
	Available  bool   `json:"available"`
	Suggestion string `json:"suggestion,omitempty"`
}
