package models

// Session is the authenticated token plus the user snapshot held locally.
type Session struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// AuthResponse is what register and login return.
type AuthResponse struct {
	Token           string `json:"token"`
	UserID          int64  `json:"userId"`
	Username        string `json:"username,omitempty"`
	DisplayUsername string `json:"displayUsername,omitempty"`
	Email           string `json:"email"`
}

type SignUpRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	StudentID string `json:"studentId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
