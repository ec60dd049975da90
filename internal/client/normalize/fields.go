package normalize

import "strings"

// Field maps one canonical item field to the backend names it has been
// sent under. Names are read in order and the first non-empty value wins;
// dotted names address nested objects.
type Field struct {
	Canonical string
	Aliases   []string
}

// Names returns the canonical name followed by every alias.
func (f Field) Names() []string {
	return append([]string{f.Canonical}, f.Aliases...)
}

// ItemFields is the full alias table for items.
var ItemFields = []Field{
	{Canonical: "id", Aliases: []string{"itemId", "item_id"}},
	{Canonical: "title", Aliases: []string{"itemName", "name"}},
	{Canonical: "description", Aliases: []string{"itemDescription", "post.description"}},
	{Canonical: "condition", Aliases: []string{"itemCondition"}},
	{Canonical: "type", Aliases: []string{"itemType", "post.type"}},
	{Canonical: "category", Aliases: []string{"categoryId", "categoryName"}},
	{Canonical: "location", Aliases: []string{"locationId", "post.location"}},
	{Canonical: "postedAt", Aliases: []string{"postTime", "post.postTime", "postDate", "created_at", "createdAt"}},
	{Canonical: "status", Aliases: []string{"itemStatus"}},
	{Canonical: "owner", Aliases: []string{"user", "post.user"}},
	{Canonical: "swapWith", Aliases: []string{"swap_with", "exchangeFor"}},
	{Canonical: "phone", Aliases: []string{"contactPhone", "post.phone"}},
}

func itemField(name string) Field {
	for _, f := range ItemFields {
		if f.Canonical == name {
			return f
		}
	}
	return Field{Canonical: name}
}

// pick returns the first present value among the field's names.
func pick(raw map[string]any, name string) any {
	for _, n := range itemField(name).Names() {
		if v, ok := lookup(raw, n); ok {
			return v
		}
	}
	return nil
}

func pickString(raw map[string]any, name string) string {
	return strings.TrimSpace(toString(pick(raw, name)))
}

// lookup walks a dotted path. Nil values and blank strings count as absent.
func lookup(raw map[string]any, path string) (any, bool) {
	var cur any = raw
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	if s, ok := cur.(string); ok && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return cur, true
}
