package models

// Conversation is a backend-aggregated thread summary with one partner.
type Conversation struct {
	PartnerID       int64  `json:"partnerId"`
	PartnerUsername string `json:"partnerUsername"`
	LastMessage     string `json:"lastMessage"`
	LastMessageTime string `json:"lastMessageTime"`
	UnreadCount     int    `json:"unreadCount"`
}

type Message struct {
	MessageID int64        `json:"messageId"`
	Text      string       `json:"text"`
	SentTime  string       `json:"sentTime"`
	Sender    *UserSummary `json:"sender,omitempty"`
	Receiver  *UserSummary `json:"receiver,omitempty"`
	ItemID    int64        `json:"itemId,omitempty"`
	Read      bool         `json:"isRead"`
}

type SendMessageRequest struct {
	SenderID   int64  `json:"senderId"`
	ReceiverID int64  `json:"receiverId"`
	Text       string `json:"text"`
	ItemID     int64  `json:"itemId,omitempty"`
}
