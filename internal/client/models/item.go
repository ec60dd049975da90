package models

// ItemType is how an item is offered.
type ItemType string

const (
	ItemTypeFree ItemType = "free"
	ItemTypeSwap ItemType = "swap"
	ItemTypeRent ItemType = "rent"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeFree, ItemTypeSwap, ItemTypeRent:
		return true
	}
	return false
}

const (
	ItemStatusAvailable = "available"
	ItemStatusExchanged = "exchanged"
)

// Descriptor is a resolved category or location.
type Descriptor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Item is the canonical listing shape. The legacy field names (ItemID,
// ItemName, ItemCondition, ItemTypeName, PostTime) are populated alongside
// the canonical ones so either naming convention can be read.
type Item struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    Descriptor   `json:"category"`
	Condition   string       `json:"condition"`
	Type        ItemType     `json:"type"`
	Location    Descriptor   `json:"location"`
	Images      []string     `json:"images"`
	Owner       *UserSummary `json:"owner,omitempty"`
	PostedAt    string       `json:"postedAt,omitempty"`
	Status      string       `json:"status,omitempty"`
	SwapWith    string       `json:"swapWith,omitempty"`
	Phone       string       `json:"phone,omitempty"`

	ItemID        int64  `json:"itemId,omitempty"`
	ItemName      string `json:"itemName,omitempty"`
	ItemCondition string `json:"itemCondition,omitempty"`
	ItemTypeName  string `json:"itemType,omitempty"`
	PostTime      string `json:"postTime,omitempty"`
}

// StatusChange is one entry of an item's locally kept status history.
type StatusChange struct {
	Status    string `json:"status"`
	ChangedAt string `json:"changedAt"`
}

// ItemPayload is the body the backend accepts for creating or updating an
// item. It uses the backend's own field names.
type ItemPayload struct {
	ItemName      string   `json:"itemName"`
	Description   string   `json:"description"`
	ItemType      ItemType `json:"itemType"`
	ItemCondition string   `json:"itemCondition"`
	Status        string   `json:"status"`
	Phone         string   `json:"phone"`
	PostDate      string   `json:"postDate"`
	CategoryID    int      `json:"categoryId"`
	LocationID    int      `json:"locationId"`
	SwapWith      string   `json:"swapWith,omitempty"`
	Post          ItemPost `json:"post"`
}

type ItemPost struct {
	ImageUrls string `json:"imageUrls"`
	PostTime  string `json:"postTime"`
}
