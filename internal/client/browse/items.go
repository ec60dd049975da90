// Package browse filters item and tuition lists the way the browse views
// do. Filters are parsed from command arguments with package flag.
package browse

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

// ItemFilter narrows an item list. Empty fields do not filter.
type ItemFilter struct {
	// Search matches title, description or owner username, case-insensitively.
	Search       string
	Category     string
	Condition    string
	Type         string
	LocationType string
	Location     string
}

// Active reports whether any field is set.
func (f ItemFilter) Active() bool {
	return f != ItemFilter{}
}

func (f ItemFilter) Match(it models.Item) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		owner := ""
		if it.Owner != nil {
			owner = it.Owner.Username
		}
		if !contains(it.Title, q) && !contains(it.Description, q) && !contains(owner, q) {
			return false
		}
	}
	if f.Category != "" && normalize.Category(f.Category).ID != it.Category.ID {
		return false
	}
	if f.Condition != "" && !strings.EqualFold(f.Condition, it.Condition) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(f.Type, string(it.Type)) {
		return false
	}
	if f.LocationType != "" && !strings.EqualFold(f.LocationType, it.Location.Type) {
		return false
	}
	if f.Location != "" && f.Location != it.Location.ID {
		return false
	}
	return true
}

// Items returns the matching items in their original order.
func (f ItemFilter) Items(items []models.Item) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// ParseItemFilter reads -category, -condition, -type, -location-type and
// -location; the remaining words form the search text.
func ParseItemFilter(args []string) (ItemFilter, error) {
	var f ItemFilter
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.Category, "category", "", "category id or position")
	fs.StringVar(&f.Condition, "condition", "", "item condition")
	fs.StringVar(&f.Type, "type", "", "free, swap or rent")
	fs.StringVar(&f.LocationType, "location-type", "", "on-campus or off-campus")
	fs.StringVar(&f.Location, "location", "", "location id")
	if err := fs.Parse(args); err != nil {
		return ItemFilter{}, err
	}
	f.Search = strings.TrimSpace(strings.Join(fs.Args(), " "))
	return f, nil
}

func contains(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
