package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

const (
	MsgRequiredFields = "Please fill in all required fields"
	MsgSwapWith       = "Please describe what you want in exchange"
	MsgItemType       = "Choose free, swap or rent"
	MsgUnknownOption  = "Unknown option"
)

// ItemForm is the post/edit item form. CategoryID takes a category slug or
// its 1-based position; LocationID a location id.
type ItemForm struct {
	Title       string
	Description string
	CategoryID  string
	Condition   string
	Type        string
	LocationID  string
	Phone       string
	SwapWith    string
	// ImageURL is the path returned by an earlier upload, if any.
	ImageURL string
}

func (f ItemForm) Validate() error {
	errs := fieldErrors{}
	errs.required("title", f.Title)
	errs.required("description", f.Description)
	errs.required("categoryId", f.CategoryID)
	errs.required("condition", f.Condition)
	errs.required("type", f.Type)
	errs.required("locationId", f.LocationID)
	errs.required("phone", f.Phone)

	t := models.ItemType(strings.ToLower(strings.TrimSpace(f.Type)))
	if _, ok := errs["type"]; !ok && !t.Valid() {
		errs["type"] = MsgItemType
	}
	if t == models.ItemTypeSwap && strings.TrimSpace(f.SwapWith) == "" {
		errs["swapWith"] = MsgSwapWith
	}
	if _, ok := errs["categoryId"]; !ok {
		if _, ok := categoryNumber(f.CategoryID); !ok {
			errs["categoryId"] = MsgUnknownOption
		}
	}
	if _, ok := errs["locationId"]; !ok {
		if _, err := strconv.Atoi(strings.TrimSpace(f.LocationID)); err != nil {
			errs["locationId"] = MsgNumber
		}
	}
	return errs.err(MsgRequiredFields)
}

// Payload validates the form and builds the create/update body, stamped
// with now.
func (f ItemForm) Payload(now time.Time) (models.ItemPayload, error) {
	if err := f.Validate(); err != nil {
		return models.ItemPayload{}, err
	}
	category, _ := categoryNumber(f.CategoryID)
	location, _ := strconv.Atoi(strings.TrimSpace(f.LocationID))

	p := models.ItemPayload{
		ItemName:      strings.TrimSpace(f.Title),
		Description:   strings.TrimSpace(f.Description),
		ItemType:      models.ItemType(strings.ToLower(strings.TrimSpace(f.Type))),
		ItemCondition: strings.TrimSpace(f.Condition),
		Status:        models.ItemStatusAvailable,
		Phone:         strings.TrimSpace(f.Phone),
		PostDate:      now.Format(time.DateOnly),
		CategoryID:    category,
		LocationID:    location,
		Post: models.ItemPost{
			ImageUrls: f.ImageURL,
			PostTime:  now.UTC().Format(time.RFC3339),
		},
	}
	if p.ItemType == models.ItemTypeSwap {
		p.SwapWith = strings.TrimSpace(f.SwapWith)
	}
	return p, nil
}

// categoryNumber maps a category slug or position to the backend's
// numeric category id.
func categoryNumber(v string) (int, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, c := range normalize.Categories() {
		if c.ID == v || strconv.Itoa(i+1) == v {
			return i + 1, true
		}
	}
	return 0, false
}
