package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

// Location types.
const (
	OnCampus  = "on-campus"
	OffCampus = "off-campus"
)

var categories = []models.Descriptor{
	{ID: "textbooks", Name: "Textbooks"},
	{ID: "electronics", Name: "Electronics"},
	{ID: "clothing", Name: "Clothing"},
	{ID: "furniture", Name: "Furniture"},
	{ID: "stationery", Name: "Stationery"},
	{ID: "sports", Name: "Sports"},
	{ID: "kitchen", Name: "Kitchen"},
	{ID: "other", Name: "Other"},
}

var locations = []models.Descriptor{
	{ID: "1", Name: "Tarek Huda Hall", Type: OnCampus},
	{ID: "2", Name: "Shah Hall", Type: OnCampus},
	{ID: "3", Name: "Abu Sayeed Hall", Type: OnCampus},
	{ID: "4", Name: "Kazi Nazrul Islam Hall", Type: OnCampus},
	{ID: "5", Name: "Library", Type: OnCampus},
	{ID: "6", Name: "TSC", Type: OnCampus},
	{ID: "7", Name: "CE Building", Type: OnCampus},
	{ID: "8", Name: "ME Building", Type: OnCampus},
	{ID: "9", Name: "EEE Building", Type: OnCampus},
	{ID: "10", Name: "Muktijoddha Hall", Type: OnCampus},
	{ID: "11", Name: "Sufia Kamal Hall", Type: OnCampus},
	{ID: "12", Name: "Taposhi Rabeya Hall", Type: OnCampus},
	{ID: "13", Name: "Shamsun Nahar Hall", Type: OnCampus},
	{ID: "14", Name: "CSE Building", Type: OnCampus},
	{ID: "15", Name: "Architecture Building", Type: OnCampus},
	{ID: "16", Name: "PME Building", Type: OnCampus},
	{ID: "17", Name: "Incubator", Type: OnCampus},
	{ID: "18", Name: "Dr. Qudrat-E-Khuda Hall", Type: OnCampus},
	{ID: "19", Name: "Teachers Dorm", Type: OnCampus},
	{ID: "20", Name: "West Gate", Type: OnCampus},
	{ID: "21", Name: "Agrabad", Type: OffCampus},
	{ID: "22", Name: "Pahartali", Type: OffCampus},
	{ID: "23", Name: "Chawkbazar", Type: OffCampus},
	{ID: "24", Name: "Nasirabad", Type: OffCampus},
	{ID: "25", Name: "Khulshi", Type: OffCampus},
	{ID: "26", Name: "GEC", Type: OffCampus},
	{ID: "27", Name: "Oxygen", Type: OffCampus},
	{ID: "28", Name: "Muradpur", Type: OffCampus},
	{ID: "29", Name: "Kotwali", Type: OffCampus},
	{ID: "30", Name: "Anderkilla", Type: OffCampus},
	{ID: "31", Name: "Jubilee Road", Type: OffCampus},
	{ID: "32", Name: "Bayezid", Type: OffCampus},
	{ID: "33", Name: "Halishahar", Type: OffCampus},
	{ID: "34", Name: "EPZ", Type: OffCampus},
	{ID: "35", Name: "Patenga", Type: OffCampus},
}

// Categories returns the known item categories in display order.
func Categories() []models.Descriptor { return append([]models.Descriptor(nil), categories...) }

// Locations returns the known pickup locations in display order.
func Locations() []models.Descriptor { return append([]models.Descriptor(nil), locations...) }

// Category resolves a bare category id (slug or its 1-based position, as
// string or number) or passes a descriptor object through.
func Category(v any) models.Descriptor {
	return resolve(v, func(id string) (models.Descriptor, bool) {
		key := strings.ToLower(id)
		for i, c := range categories {
			if c.ID == key || strconv.Itoa(i+1) == key {
				return c, true
			}
		}
		return models.Descriptor{}, false
	}, "categoryId", "categoryName")
}

// Location resolves a bare location id or passes a descriptor through.
func Location(v any) models.Descriptor {
	return resolve(v, func(id string) (models.Descriptor, bool) {
		for _, l := range locations {
			if l.ID == id {
				return l, true
			}
		}
		return models.Descriptor{}, false
	}, "locationId", "locationName")
}

func resolve(v any, find func(string) (models.Descriptor, bool), idKey, nameKey string) models.Descriptor {
	switch t := v.(type) {
	case nil:
		return models.Descriptor{}
	case map[string]any:
		d := models.Descriptor{
			ID:   firstString(t, "id", idKey),
			Name: firstString(t, "name", nameKey),
			Type: firstString(t, "type", "locationType"),
		}
		if d.Name == "" {
			if known, ok := find(d.ID); ok {
				return known
			}
			d.Name = d.ID
		}
		return d
	case models.Descriptor:
		return t
	}

	id := strings.TrimSpace(toString(v))
	if id == "" {
		return models.Descriptor{}
	}
	if d, ok := find(id); ok {
		return d
	}
	return models.Descriptor{ID: id, Name: id}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := toString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// toString renders scalar JSON values; anything else is "".
func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func toInt64(v any) int64 {
	s := strings.TrimSpace(toString(v))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(f)
}
